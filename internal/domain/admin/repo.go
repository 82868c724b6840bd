package admin

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Administrator) error
	GetByID(ctx context.Context, id uuid.UUID) (*Administrator, error)
	// GetByEmail matches case-insensitively.
	GetByEmail(ctx context.Context, email string) (*Administrator, error)
	Update(ctx context.Context, a *Administrator) error
	TouchLastAccess(ctx context.Context, id uuid.UUID, at time.Time) error
}
