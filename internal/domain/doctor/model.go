package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the medico table.
type Doctor struct {
	ID                  uuid.UUID
	NomeCompleto        string
	CRM                 string
	Especialidade       string
	ResumoEspecialidade *string
	RQE                 *string
	DeletedAt           *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Deleted reports whether the doctor was soft-deleted.
func (d *Doctor) Deleted() bool {
	return d.DeletedAt != nil
}

// ListFilter narrows List. Nome and Especialidade match case-insensitive
// substrings.
type ListFilter struct {
	IncludeDeleted bool
	Nome           string
	Especialidade  string
	Limit          int
	Offset         int
}
