package doctor

import (
	"strings"

	"github.com/samber/lo"

	"github.com/clientehm/api/pkg/patch"
)

// NormalizeCRM upper-cases and trims a CRM so that "12345/sp" and
// "12345/SP" collide.
func NormalizeCRM(crm string) string {
	return strings.ToUpper(strings.TrimSpace(crm))
}

func ToEntity(req *CreateRequest) *Doctor {
	if req == nil {
		return nil
	}
	return &Doctor{
		NomeCompleto:        strings.TrimSpace(req.NomeCompleto),
		CRM:                 NormalizeCRM(req.CRM),
		Especialidade:       strings.TrimSpace(req.Especialidade),
		ResumoEspecialidade: patch.Trimmed(req.ResumoEspecialidade),
		RQE:                 patch.Trimmed(req.RQE),
	}
}

func ToDTO(d *Doctor) *DTO {
	if d == nil {
		return nil
	}
	return &DTO{
		ID:                  d.ID.String(),
		NomeCompleto:        d.NomeCompleto,
		CRM:                 d.CRM,
		Especialidade:       d.Especialidade,
		ResumoEspecialidade: d.ResumoEspecialidade,
		RQE:                 d.RQE,
		DeletedAt:           d.DeletedAt,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func ToDTOs(ds []*Doctor) []*DTO {
	return lo.Map(ds, func(d *Doctor, _ int) *DTO { return ToDTO(d) })
}

// UpdateEntityFromDTO applies every present, non-blank field.
func UpdateEntityFromDTO(req *UpdateRequest, d *Doctor) {
	if req == nil || d == nil {
		return
	}
	patch.String(&d.NomeCompleto, req.NomeCompleto)
	if req.CRM != nil {
		crm := NormalizeCRM(*req.CRM)
		patch.String(&d.CRM, &crm)
	}
	patch.String(&d.Especialidade, req.Especialidade)
	patch.OptionalString(&d.ResumoEspecialidade, req.ResumoEspecialidade)
	patch.OptionalString(&d.RQE, req.RQE)
}
