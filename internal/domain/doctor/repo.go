package doctor

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	// GetActiveByCRM ignores soft-deleted doctors.
	GetActiveByCRM(ctx context.Context, crm string) (*Doctor, error)
	Update(ctx context.Context, d *Doctor) error
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
	List(ctx context.Context, f ListFilter) ([]*Doctor, int, error)
}
