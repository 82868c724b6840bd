package patient

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/clientehm/api/internal/platform/apperr"
	"github.com/clientehm/api/internal/platform/db"
	"github.com/clientehm/api/internal/platform/events"
	"github.com/clientehm/api/pkg/pagination"
)

const (
	MsgNotFound       = "Paciente não encontrado."
	MsgCPFTaken       = "CPF já cadastrado."
	MsgInvalidCPF     = "CPF inválido"
	MsgDeleted        = "Paciente excluído não pode ser alterado."
	MsgRecordNotFound = "Prontuário não encontrado."
	MsgRecordExists   = "Paciente já possui prontuário."
	MsgRecordArchived = "Prontuário arquivado não aceita novos registros."
)

type Service struct {
	patients Repository
	records  RecordRepository
	tx       db.TxRunner
	events   events.Emitter
	now      func() time.Time
}

func NewService(patients Repository, records RecordRepository, tx db.TxRunner, emitter events.Emitter) *Service {
	return &Service{patients: patients, records: records, tx: tx, events: emitter, now: time.Now}
}

// Create stores the patient and opens its prontuário in one transaction.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*DTO, error) {
	p := ToEntity(req)
	if len(p.CPF) != 11 {
		return nil, apperr.InvalidArgument(MsgInvalidCPF)
	}

	rec := &MedicalRecord{}
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.ensureCPFFree(ctx, p.CPF); err != nil {
			return err
		}
		if err := s.patients.Create(ctx, p); err != nil {
			return err
		}
		rec.PacienteID = p.ID
		return s.records.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, "paciente.criado", p.ID, map[string]string{
		"prontuarioId":     rec.ID.String(),
		"numeroProntuario": rec.NumeroProntuario,
	})
	return ToDTO(p, rec), nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*DTO, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rec, err := s.recordOf(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDTO(p, rec), nil
}

func (s *Service) List(ctx context.Context, f ListFilter) (*pagination.Page, error) {
	f.CPF = NormalizeCPF(f.CPF)
	ps, total, err := s.patients.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return pagination.NewPage(ToDTOs(ps), total, pagination.Params{Limit: f.Limit, Offset: f.Offset}), nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*DTO, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Deleted() {
		return nil, apperr.InvalidArgument(MsgDeleted)
	}
	UpdateEntityFromDTO(req, p)
	if err := s.patients.Update(ctx, p); err != nil {
		return nil, err
	}
	s.events.Emit(ctx, "paciente.atualizado", p.ID, nil)
	rec, err := s.recordOf(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return ToDTO(p, rec), nil
}

// Delete soft-deletes the patient and archives the prontuário.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.patients.SoftDelete(ctx, id, s.now().UTC()); err != nil {
			return err
		}
		rec, err := s.records.GetByPatient(ctx, id)
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return s.records.SetStatus(ctx, rec.ID, StatusArchived)
	})
	if err != nil {
		return err
	}
	s.events.Emit(ctx, "paciente.excluido", id, nil)
	return nil
}

// PatientRecord returns the prontuário of a patient.
func (s *Service) PatientRecord(ctx context.Context, patientID uuid.UUID) (*RecordDTO, error) {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	rec, err := s.records.GetByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return RecordToDTO(rec, p), nil
}

// RecordDetails returns a prontuário with its patient summary.
func (s *Service) RecordDetails(ctx context.Context, id uuid.UUID) (*RecordDTO, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := s.patients.GetByID(ctx, rec.PacienteID)
	if err != nil {
		return nil, err
	}
	return RecordToDTO(rec, p), nil
}

// Record returns the stored prontuário.
func (s *Service) Record(ctx context.Context, id uuid.UUID) (*MedicalRecord, error) {
	return s.records.GetByID(ctx, id)
}

// WritableRecord returns the prontuário if new clinical entries may be
// attached to it.
func (s *Service) WritableRecord(ctx context.Context, id uuid.UUID) (*MedicalRecord, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Archived() {
		return nil, apperr.InvalidArgument(MsgRecordArchived)
	}
	return rec, nil
}

// recordOf returns the prontuário of a patient, or nil if it has none.
func (s *Service) recordOf(ctx context.Context, patientID uuid.UUID) (*MedicalRecord, error) {
	rec, err := s.records.GetByPatient(ctx, patientID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, nil
	}
	return rec, err
}

func (s *Service) ensureCPFFree(ctx context.Context, cpf string) error {
	_, err := s.patients.GetByCPF(ctx, cpf)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return apperr.Duplicate(MsgCPFTaken)
}
