package admin

import (
	"strings"

	"github.com/clientehm/api/pkg/patch"
)

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ToEntity copies the profile fields of a registration. Secrets are hashed
// by the service.
func ToEntity(req *RegisterRequest) *Administrator {
	if req == nil {
		return nil
	}
	return &Administrator{
		Nome:  patch.Value(req.Nome),
		Email: NormalizeEmail(req.Email),
	}
}

func ToDTO(a *Administrator) *AdminData {
	if a == nil {
		return nil
	}
	return &AdminData{
		ID:           a.ID.String(),
		Nome:         a.Nome,
		Email:        a.Email,
		UltimoAcesso: a.UltimoAcesso,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// UpdateEntityFromDTO applies nome and email when present and non-blank.
func UpdateEntityFromDTO(req *VerifiedProfileUpdateRequest, a *Administrator) {
	if req == nil || a == nil {
		return
	}
	patch.String(&a.Nome, req.Nome)
	if req.Email != nil {
		email := NormalizeEmail(*req.Email)
		patch.String(&a.Email, &email)
	}
}
