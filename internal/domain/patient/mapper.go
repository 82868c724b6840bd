package patient

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/clientehm/api/pkg/patch"
)

// NormalizeCPF keeps only the digits of a CPF.
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func parseDate(s *string) *time.Time {
	v := patch.Trimmed(s)
	if v == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, *v)
	if err != nil {
		return nil
	}
	return &t
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func ToEntity(req *CreateRequest) *Patient {
	if req == nil {
		return nil
	}
	p := &Patient{
		NomeCompleto:   strings.TrimSpace(req.NomeCompleto),
		CPF:            NormalizeCPF(req.CPF),
		DataNascimento: parseDate(req.DataNascimento),
		Sexo:           patch.Trimmed(req.Sexo),
		Telefone:       patch.Trimmed(req.Telefone),
		Email:          patch.Trimmed(req.Email),
		Endereco:       patch.Trimmed(req.Endereco),
	}
	if p.Email != nil {
		e := strings.ToLower(*p.Email)
		p.Email = &e
	}
	return p
}

// ToDTO maps p; rec, when given, contributes the prontuário id.
func ToDTO(p *Patient, rec *MedicalRecord) *DTO {
	if p == nil {
		return nil
	}
	dto := &DTO{
		ID:             p.ID.String(),
		NomeCompleto:   p.NomeCompleto,
		CPF:            p.CPF,
		DataNascimento: formatDate(p.DataNascimento),
		Sexo:           p.Sexo,
		Telefone:       p.Telefone,
		Email:          p.Email,
		Endereco:       p.Endereco,
		DeletedAt:      p.DeletedAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if rec != nil {
		dto.ProntuarioID = rec.ID.String()
	}
	return dto
}

func ToDTOs(ps []*Patient) []*DTO {
	return lo.Map(ps, func(p *Patient, _ int) *DTO { return ToDTO(p, nil) })
}

// RecordToDTO maps r; p, when given, contributes the patient summary.
func RecordToDTO(r *MedicalRecord, p *Patient) *RecordDTO {
	if r == nil {
		return nil
	}
	dto := &RecordDTO{
		ID:               r.ID.String(),
		PacienteID:       r.PacienteID.String(),
		NumeroProntuario: r.NumeroProntuario,
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if p != nil {
		dto.PacienteNome = p.NomeCompleto
		dto.PacienteCPF = p.CPF
	}
	return dto
}

func UpdateEntityFromDTO(req *UpdateRequest, p *Patient) {
	if req == nil || p == nil {
		return
	}
	patch.String(&p.NomeCompleto, req.NomeCompleto)
	patch.OptionalTime(&p.DataNascimento, parseDate(req.DataNascimento))
	patch.OptionalString(&p.Sexo, req.Sexo)
	patch.OptionalString(&p.Telefone, req.Telefone)
	if patch.OptionalString(&p.Email, req.Email) {
		e := strings.ToLower(*p.Email)
		p.Email = &e
	}
	patch.OptionalString(&p.Endereco, req.Endereco)
}
