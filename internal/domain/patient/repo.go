package patient

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	GetByCPF(ctx context.Context, cpf string) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
	List(ctx context.Context, f ListFilter) ([]*Patient, int, error)
}

// RecordRepository stores prontuários.
type RecordRepository interface {
	// Create assigns ID, NumeroProntuario and Status.
	Create(ctx context.Context, r *MedicalRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*MedicalRecord, error)
	GetByPatient(ctx context.Context, patientID uuid.UUID) (*MedicalRecord, error)
	SetStatus(ctx context.Context, id uuid.UUID, status RecordStatus) error
}
