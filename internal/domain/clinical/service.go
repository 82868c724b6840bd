package clinical

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/clientehm/api/internal/domain/admin"
	"github.com/clientehm/api/internal/domain/doctor"
	"github.com/clientehm/api/internal/domain/patient"
	"github.com/clientehm/api/internal/platform/apperr"
	"github.com/clientehm/api/internal/platform/events"
	"github.com/clientehm/api/pkg/pagination"
)

const (
	MsgConsultationNotFound = "Consulta não encontrada."
	MsgProcedureNotFound    = "Procedimento não encontrado."
	MsgExamNotFound         = "Exame não encontrado."
	MsgNoResponsible        = "Responsável pela consulta não identificado."
)

// RecordDirectory resolves prontuários.
type RecordDirectory interface {
	Record(ctx context.Context, id uuid.UUID) (*patient.MedicalRecord, error)
	WritableRecord(ctx context.Context, id uuid.UUID) (*patient.MedicalRecord, error)
	RecordDetails(ctx context.Context, id uuid.UUID) (*patient.RecordDTO, error)
}

// DoctorDirectory resolves doctors. Doctor rejects soft-deleted doctors;
// Find does not.
type DoctorDirectory interface {
	Doctor(ctx context.Context, id uuid.UUID) (*doctor.Doctor, error)
	Find(ctx context.Context, id uuid.UUID) (*doctor.Doctor, error)
}

type AdminDirectory interface {
	Lookup(ctx context.Context, id uuid.UUID) (*admin.Administrator, error)
}

type Service struct {
	consultations ConsultationRepository
	procedures    ProcedureRepository
	exams         ExamRepository
	records       RecordDirectory
	doctors       DoctorDirectory
	admins        AdminDirectory
	events        events.Emitter
	now           func() time.Time
}

func NewService(
	consultations ConsultationRepository,
	procedures ProcedureRepository,
	exams ExamRepository,
	records RecordDirectory,
	doctors DoctorDirectory,
	admins AdminDirectory,
	emitter events.Emitter,
) *Service {
	return &Service{
		consultations: consultations,
		procedures:    procedures,
		exams:         exams,
		records:       records,
		doctors:       doctors,
		admins:        admins,
		events:        emitter,
		now:           time.Now,
	}
}

// activeDoctor resolves an optional doctor reference. A nil id yields nil.
func (s *Service) activeDoctor(ctx context.Context, id *uuid.UUID) (*doctor.Doctor, error) {
	if id == nil {
		return nil, nil
	}
	return s.doctors.Doctor(ctx, *id)
}

func page(p pagination.Params, total int, items interface{}) *pagination.Page {
	return pagination.NewPage(items, total, p)
}

// -- Consultations --

// CreateConsultation attaches a consultation to an active prontuário. The
// responsible party is the doctor named in the request, or else actor.
func (s *Service) CreateConsultation(ctx context.Context, recordID, actor uuid.UUID, req *CreateConsultationRequest) (*ConsultationDTO, error) {
	if _, err := s.records.WritableRecord(ctx, recordID); err != nil {
		return nil, err
	}

	c := ConsultationToEntity(req)
	c.ProntuarioID = recordID

	d, err := s.activeDoctor(ctx, req.MedicoID)
	if err != nil {
		return nil, err
	}
	if d != nil {
		SnapshotDoctor(c, d)
	} else {
		if actor == uuid.Nil {
			return nil, apperr.InvalidArgument(MsgNoResponsible)
		}
		a, err := s.admins.Lookup(ctx, actor)
		if err != nil {
			return nil, err
		}
		SnapshotAdmin(c, a)
	}

	if err := s.consultations.Create(ctx, c); err != nil {
		return nil, err
	}
	s.events.Emit(ctx, "consulta.criada", c.ID, map[string]string{"prontuarioId": recordID.String()})
	return ConsultationToDTO(c), nil
}

func (s *Service) GetConsultation(ctx context.Context, id uuid.UUID) (*ConsultationDTO, error) {
	c, err := s.consultations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ConsultationToDTO(c), nil
}

func (s *Service) ListConsultations(ctx context.Context, recordID uuid.UUID, p pagination.Params) (*pagination.Page, error) {
	if _, err := s.records.Record(ctx, recordID); err != nil {
		return nil, err
	}
	cs, total, err := s.consultations.ListByRecord(ctx, recordID, p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	return page(p, total, lo.Map(cs, func(c *Consultation, _ int) *ConsultationDTO { return ConsultationToDTO(c) })), nil
}

func (s *Service) UpdateConsultation(ctx context.Context, id uuid.UUID, req *UpdateConsultationRequest) (*ConsultationDTO, error) {
	c, err := s.consultations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d, err := s.activeDoctor(ctx, req.MedicoID)
	if err != nil {
		return nil, err
	}
	UpdateConsultationFromDTO(req, c, d)
	if err := s.consultations.Update(ctx, c); err != nil {
		return nil, err
	}
	s.events.Emit(ctx, "consulta.atualizada", c.ID, nil)
	return ConsultationToDTO(c), nil
}

func (s *Service) DeleteConsultation(ctx context.Context, id uuid.UUID) error {
	if err := s.consultations.SoftDelete(ctx, id, s.now().UTC()); err != nil {
		return err
	}
	s.events.Emit(ctx, "consulta.excluida", id, nil)
	return nil
}

// -- Procedures --

func (s *Service) CreateProcedure(ctx context.Context, recordID uuid.UUID, req *CreateProcedureRequest) (*ProcedureDTO, error) {
	if _, err := s.records.WritableRecord(ctx, recordID); err != nil {
		return nil, err
	}
	executor, err := s.activeDoctor(ctx, req.MedicoExecutorID)
	if err != nil {
		return nil, err
	}

	p := ProcedureToEntity(req)
	p.ProntuarioID = recordID
	AssignExecutor(p, executor)

	if err := s.procedures.Create(ctx, p); err != nil {
		return nil, err
	}
	s.events.Emit(ctx, "procedimento.criado", p.ID, map[string]string{"prontuarioId": recordID.String()})
	return ProcedureToDTO(p, executor), nil
}

func (s *Service) GetProcedure(ctx context.Context, id uuid.UUID) (*ProcedureDTO, error) {
	p, err := s.procedures.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	executor, err := s.executorOf(ctx, p, nil)
	if err != nil {
		return nil, err
	}
	return ProcedureToDTO(p, executor), nil
}

func (s *Service) ListProcedures(ctx context.Context, recordID uuid.UUID, p pagination.Params) (*pagination.Page, error) {
	if _, err := s.records.Record(ctx, recordID); err != nil {
		return nil, err
	}
	ps, total, err := s.procedures.ListByRecord(ctx, recordID, p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	dtos, err := s.procedureDTOs(ctx, ps)
	if err != nil {
		return nil, err
	}
	return page(p, total, dtos), nil
}

func (s *Service) UpdateProcedure(ctx context.Context, id uuid.UUID, req *UpdateProcedureRequest) (*ProcedureDTO, error) {
	p, err := s.procedures.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	executor, err := s.activeDoctor(ctx, req.MedicoExecutorID)
	if err != nil {
		return nil, err
	}
	UpdateProcedureFromDTO(req, p, executor)
	if err := s.procedures.Update(ctx, p); err != nil {
		return nil, err
	}
	if executor == nil {
		if executor, err = s.executorOf(ctx, p, nil); err != nil {
			return nil, err
		}
	}
	s.events.Emit(ctx, "procedimento.atualizado", p.ID, nil)
	return ProcedureToDTO(p, executor), nil
}

func (s *Service) DeleteProcedure(ctx context.Context, id uuid.UUID) error {
	if err := s.procedures.SoftDelete(ctx, id, s.now().UTC()); err != nil {
		return err
	}
	s.events.Emit(ctx, "procedimento.excluido", id, nil)
	return nil
}

// executorOf loads the current state of p's executor, consulting and
// filling cache when non-nil. A missing executor yields nil.
func (s *Service) executorOf(ctx context.Context, p *Procedure, cache map[uuid.UUID]*doctor.Doctor) (*doctor.Doctor, error) {
	if p.MedicoExecutorID == nil {
		return nil, nil
	}
	id := *p.MedicoExecutorID
	if d, ok := cache[id]; ok {
		return d, nil
	}
	d, err := s.doctors.Find(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		d, err = nil, nil
	}
	if err != nil {
		return nil, err
	}
	if cache != nil {
		cache[id] = d
	}
	return d, nil
}

func (s *Service) procedureDTOs(ctx context.Context, ps []*Procedure) ([]*ProcedureDTO, error) {
	cache := make(map[uuid.UUID]*doctor.Doctor)
	out := make([]*ProcedureDTO, 0, len(ps))
	for _, p := range ps {
		executor, err := s.executorOf(ctx, p, cache)
		if err != nil {
			return nil, err
		}
		out = append(out, ProcedureToDTO(p, executor))
	}
	return out, nil
}

// -- Exams --

func (s *Service) CreateExam(ctx context.Context, recordID uuid.UUID, req *CreateExamRequest) (*ExamDTO, error) {
	if _, err := s.records.WritableRecord(ctx, recordID); err != nil {
		return nil, err
	}
	d, err := s.activeDoctor(ctx, req.MedicoResponsavelExameID)
	if err != nil {
		return nil, err
	}

	e := ExamToEntity(req)
	e.ProntuarioID = recordID
	AssignExamDoctor(e, d)

	if err := s.exams.Create(ctx, e); err != nil {
		return nil, err
	}
	s.events.Emit(ctx, "exame.criado", e.ID, map[string]string{"prontuarioId": recordID.String()})
	return ExamToDTO(e), nil
}

func (s *Service) GetExam(ctx context.Context, id uuid.UUID) (*ExamDTO, error) {
	e, err := s.exams.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ExamToDTO(e), nil
}

func (s *Service) ListExams(ctx context.Context, recordID uuid.UUID, p pagination.Params) (*pagination.Page, error) {
	if _, err := s.records.Record(ctx, recordID); err != nil {
		return nil, err
	}
	es, total, err := s.exams.ListByRecord(ctx, recordID, p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	return page(p, total, lo.Map(es, func(e *Exam, _ int) *ExamDTO { return ExamToDTO(e) })), nil
}

func (s *Service) UpdateExam(ctx context.Context, id uuid.UUID, req *UpdateExamRequest) (*ExamDTO, error) {
	e, err := s.exams.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d, err := s.activeDoctor(ctx, req.MedicoResponsavelExameID)
	if err != nil {
		return nil, err
	}
	UpdateExamFromDTO(req, e, d)
	if err := s.exams.Update(ctx, e); err != nil {
		return nil, err
	}
	s.events.Emit(ctx, "exame.atualizado", e.ID, nil)
	return ExamToDTO(e), nil
}

func (s *Service) DeleteExam(ctx context.Context, id uuid.UUID) error {
	if err := s.exams.SoftDelete(ctx, id, s.now().UTC()); err != nil {
		return err
	}
	s.events.Emit(ctx, "exame.excluido", id, nil)
	return nil
}
