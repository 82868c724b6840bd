package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the paciente table.
type Patient struct {
	ID             uuid.UUID
	NomeCompleto   string
	CPF            string
	DataNascimento *time.Time
	Sexo           *string
	Telefone       *string
	Email          *string
	Endereco       *string
	DeletedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (p *Patient) Deleted() bool {
	return p.DeletedAt != nil
}

// RecordStatus is the lifecycle state of a prontuário.
type RecordStatus string

const (
	StatusActive   RecordStatus = "ATIVO"
	StatusArchived RecordStatus = "ARQUIVADO"
)

// MedicalRecord is the prontuário of a patient. There is exactly one per
// patient, created with it.
type MedicalRecord struct {
	ID               uuid.UUID
	PacienteID       uuid.UUID
	NumeroProntuario string
	Status           RecordStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (r *MedicalRecord) Archived() bool {
	return r.Status == StatusArchived
}

type ListFilter struct {
	IncludeDeleted bool
	Nome           string
	CPF            string
	Limit          int
	Offset         int
}
