package admin

import (
	"time"

	"github.com/google/uuid"
)

// Administrator maps to the administrador table.
type Administrator struct {
	ID               uuid.UUID
	Nome             string
	Email            string
	SenhaHash        string
	PalavraChaveHash *string
	UltimoAcesso     *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
