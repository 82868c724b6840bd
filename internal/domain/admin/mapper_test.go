package admin

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func mustParse(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("parse id %q: %v", s, err)
	}
	return id
}

func TestToEntity(t *testing.T) {
	if got := ToEntity(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}

	a := ToEntity(&RegisterRequest{Nome: strPtr(" Ana "), Email: " Ana@X.com "})
	if a.Nome != "Ana" {
		t.Errorf("nome = %q, want Ana", a.Nome)
	}
	if a.Email != "ana@x.com" {
		t.Errorf("email = %q, want ana@x.com", a.Email)
	}
	if a.SenhaHash != "" {
		t.Errorf("mapper must not set the password hash, got %q", a.SenhaHash)
	}
}

func TestToDTO(t *testing.T) {
	if got := ToDTO(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}

	now := time.Now()
	a := &Administrator{ID: uuid.New(), Nome: "Ana", Email: "ana@x.com", SenhaHash: "hash", UltimoAcesso: &now}
	d := ToDTO(a)
	if d.ID != a.ID.String() {
		t.Errorf("id = %s, want %s", d.ID, a.ID)
	}
	if d.Nome != "Ana" {
		t.Errorf("nome = %q, want Ana", d.Nome)
	}
	if d.UltimoAcesso == nil || !d.UltimoAcesso.Equal(now) {
		t.Errorf("ultimoAcesso = %v, want %v", d.UltimoAcesso, now)
	}
}

func TestUpdateEntityFromDTO(t *testing.T) {
	a := &Administrator{Nome: "Ana", Email: "ana@x.com"}

	UpdateEntityFromDTO(nil, a)
	UpdateEntityFromDTO(&VerifiedProfileUpdateRequest{}, nil)
	if a.Nome != "Ana" {
		t.Fatalf("nil request changed nome to %q", a.Nome)
	}

	UpdateEntityFromDTO(&VerifiedProfileUpdateRequest{Nome: strPtr(" "), Email: nil}, a)
	if a.Nome != "Ana" || a.Email != "ana@x.com" {
		t.Errorf("blank or absent fields changed the entity: %+v", a)
	}

	UpdateEntityFromDTO(&VerifiedProfileUpdateRequest{Nome: strPtr(" Ana Maria "), Email: strPtr(" NOVA@x.com ")}, a)
	if a.Nome != "Ana Maria" {
		t.Errorf("nome = %q, want Ana Maria", a.Nome)
	}
	if a.Email != "nova@x.com" {
		t.Errorf("email = %q, want nova@x.com", a.Email)
	}
}
