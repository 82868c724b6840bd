package doctor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/clientehm/api/internal/platform/apperr"
	"github.com/clientehm/api/internal/platform/events"
	"github.com/clientehm/api/pkg/pagination"
)

const (
	MsgNotFound = "Médico não encontrado."
	MsgCRMTaken = "CRM já cadastrado."
	MsgDeleted  = "Médico excluído não pode ser alterado."
	MsgInactive = "Médico excluído não pode ser designado como responsável."
)

type Service struct {
	repo   Repository
	events events.Emitter
	now    func() time.Time
}

func NewService(repo Repository, emitter events.Emitter) *Service {
	return &Service{repo: repo, events: emitter, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req *CreateRequest) (*DTO, error) {
	d := ToEntity(req)
	if err := s.ensureCRMFree(ctx, d.CRM, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	s.events.Emit(ctx, "medico.criado", d.ID, map[string]string{"crm": d.CRM})
	return ToDTO(d), nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*DTO, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDTO(d), nil
}

func (s *Service) List(ctx context.Context, f ListFilter) (*pagination.Page, error) {
	ds, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return pagination.NewPage(ToDTOs(ds), total, pagination.Params{Limit: f.Limit, Offset: f.Offset}), nil
}

// Update applies a partial update. Soft-deleted doctors are read-only.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*DTO, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Deleted() {
		return nil, apperr.InvalidArgument(MsgDeleted)
	}

	previousCRM := d.CRM
	UpdateEntityFromDTO(req, d)
	if d.CRM != previousCRM {
		if err := s.ensureCRMFree(ctx, d.CRM, d.ID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	s.events.Emit(ctx, "medico.atualizado", d.ID, nil)
	return ToDTO(d), nil
}

// Delete soft-deletes the doctor. Deleting twice is a not-found.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, id, s.now().UTC()); err != nil {
		return err
	}
	s.events.Emit(ctx, "medico.excluido", id, nil)
	return nil
}

// Doctor returns the stored doctor if it can still be referenced by a
// clinical record.
func (s *Service) Doctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Deleted() {
		return nil, apperr.InvalidArgument(MsgInactive)
	}
	return d, nil
}

// Find returns the stored doctor regardless of its deletion state.
func (s *Service) Find(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ensureCRMFree(ctx context.Context, crm string, self uuid.UUID) error {
	existing, err := s.repo.GetActiveByCRM(ctx, crm)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != self {
		return apperr.Duplicate(MsgCRMTaken)
	}
	return nil
}
