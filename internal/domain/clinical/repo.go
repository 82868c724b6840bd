package clinical

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// The repositories below never return soft-deleted entries.

type ConsultationRepository interface {
	Create(ctx context.Context, c *Consultation) error
	GetByID(ctx context.Context, id uuid.UUID) (*Consultation, error)
	Update(ctx context.Context, c *Consultation) error
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
	ListByRecord(ctx context.Context, recordID uuid.UUID, limit, offset int) ([]*Consultation, int, error)
}

type ProcedureRepository interface {
	Create(ctx context.Context, p *Procedure) error
	GetByID(ctx context.Context, id uuid.UUID) (*Procedure, error)
	Update(ctx context.Context, p *Procedure) error
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
	ListByRecord(ctx context.Context, recordID uuid.UUID, limit, offset int) ([]*Procedure, int, error)
}

type ExamRepository interface {
	Create(ctx context.Context, e *Exam) error
	GetByID(ctx context.Context, id uuid.UUID) (*Exam, error)
	Update(ctx context.Context, e *Exam) error
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
	ListByRecord(ctx context.Context, recordID uuid.UUID, limit, offset int) ([]*Exam, int, error)
}
