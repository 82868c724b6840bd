package clinical

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clientehm/api/internal/domain/admin"
	"github.com/clientehm/api/internal/domain/doctor"
	"github.com/clientehm/api/internal/domain/patient"
	"github.com/clientehm/api/internal/platform/apperr"
)

// memStore is an in-memory table of clinical entries keyed by id.
type memStore[T any] struct {
	mu       sync.Mutex
	rows     map[uuid.UUID]*T
	notFound string
	id       func(*T) *uuid.UUID
	record   func(*T) uuid.UUID
	deleted  func(*T) **time.Time
	stamps   func(*T) (*time.Time, *time.Time)
	sortKey  func(*T) time.Time
}

func (m *memStore[T]) Create(_ context.Context, v *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	*m.id(v) = uuid.New()
	created, updated := m.stamps(v)
	*created = time.Now()
	*updated = *created
	cp := *v
	m.rows[*m.id(v)] = &cp
	return nil
}

func (m *memStore[T]) GetByID(_ context.Context, id uuid.UUID) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.rows[id]
	if !ok || *m.deleted(v) != nil {
		return nil, apperr.NotFound(m.notFound)
	}
	cp := *v
	return &cp, nil
}

func (m *memStore[T]) Update(_ context.Context, v *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.rows[*m.id(v)]
	if !ok || *m.deleted(existing) != nil {
		return apperr.NotFound(m.notFound)
	}
	_, updated := m.stamps(v)
	*updated = time.Now()
	cp := *v
	m.rows[*m.id(v)] = &cp
	return nil
}

func (m *memStore[T]) SoftDelete(_ context.Context, id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.rows[id]
	if !ok || *m.deleted(v) != nil {
		return apperr.NotFound(m.notFound)
	}
	*m.deleted(v) = &at
	return nil
}

func (m *memStore[T]) ListByRecord(_ context.Context, recordID uuid.UUID, limit, offset int) ([]*T, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []*T
	for _, v := range m.rows {
		if m.record(v) == recordID && *m.deleted(v) == nil {
			cp := *v
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return m.sortKey(all[i]).After(m.sortKey(all[j])) })
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func newConsultationStore() *memStore[Consultation] {
	return &memStore[Consultation]{
		rows:     make(map[uuid.UUID]*Consultation),
		notFound: MsgConsultationNotFound,
		id:       func(c *Consultation) *uuid.UUID { return &c.ID },
		record:   func(c *Consultation) uuid.UUID { return c.ProntuarioID },
		deleted:  func(c *Consultation) **time.Time { return &c.DeletedAt },
		stamps:   func(c *Consultation) (*time.Time, *time.Time) { return &c.CreatedAt, &c.UpdatedAt },
		sortKey:  func(c *Consultation) time.Time { return c.DataHoraConsulta },
	}
}

func newProcedureStore() *memStore[Procedure] {
	return &memStore[Procedure]{
		rows:     make(map[uuid.UUID]*Procedure),
		notFound: MsgProcedureNotFound,
		id:       func(p *Procedure) *uuid.UUID { return &p.ID },
		record:   func(p *Procedure) uuid.UUID { return p.ProntuarioID },
		deleted:  func(p *Procedure) **time.Time { return &p.DeletedAt },
		stamps:   func(p *Procedure) (*time.Time, *time.Time) { return &p.CreatedAt, &p.UpdatedAt },
		sortKey:  func(p *Procedure) time.Time { return p.DataProcedimento },
	}
}

func newExamStore() *memStore[Exam] {
	return &memStore[Exam]{
		rows:     make(map[uuid.UUID]*Exam),
		notFound: MsgExamNotFound,
		id:       func(e *Exam) *uuid.UUID { return &e.ID },
		record:   func(e *Exam) uuid.UUID { return e.ProntuarioID },
		deleted:  func(e *Exam) **time.Time { return &e.DeletedAt },
		stamps:   func(e *Exam) (*time.Time, *time.Time) { return &e.CreatedAt, &e.UpdatedAt },
		sortKey:  func(e *Exam) time.Time { return e.DataExame },
	}
}

type fakeRecords struct {
	records map[uuid.UUID]*patient.MedicalRecord
}

func (f *fakeRecords) add(status patient.RecordStatus) *patient.MedicalRecord {
	rec := &patient.MedicalRecord{
		ID:               uuid.New(),
		PacienteID:       uuid.New(),
		NumeroProntuario: "PR-00000042",
		Status:           status,
		CreatedAt:        time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	f.records[rec.ID] = rec
	return rec
}

func (f *fakeRecords) Record(_ context.Context, id uuid.UUID) (*patient.MedicalRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, apperr.NotFound(patient.MsgRecordNotFound)
	}
	return rec, nil
}

func (f *fakeRecords) WritableRecord(ctx context.Context, id uuid.UUID) (*patient.MedicalRecord, error) {
	rec, err := f.Record(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Archived() {
		return nil, apperr.InvalidArgument(patient.MsgRecordArchived)
	}
	return rec, nil
}

func (f *fakeRecords) RecordDetails(ctx context.Context, id uuid.UUID) (*patient.RecordDTO, error) {
	rec, err := f.Record(ctx, id)
	if err != nil {
		return nil, err
	}
	return patient.RecordToDTO(rec, &patient.Patient{NomeCompleto: "Maria Silva", CPF: "52998224725"}), nil
}

type fakeDoctors struct {
	doctors map[uuid.UUID]*doctor.Doctor
}

func (f *fakeDoctors) add(nome, especialidade, crm string) *doctor.Doctor {
	d := &doctor.Doctor{ID: uuid.New(), NomeCompleto: nome, Especialidade: especialidade, CRM: crm}
	f.doctors[d.ID] = d
	return d
}

func (f *fakeDoctors) Find(_ context.Context, id uuid.UUID) (*doctor.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, apperr.NotFound(doctor.MsgNotFound)
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDoctors) Doctor(ctx context.Context, id uuid.UUID) (*doctor.Doctor, error) {
	d, err := f.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Deleted() {
		return nil, apperr.InvalidArgument(doctor.MsgInactive)
	}
	return d, nil
}

type fakeAdmins struct {
	admins map[uuid.UUID]*admin.Administrator
}

func (f *fakeAdmins) add(nome, email string) *admin.Administrator {
	a := &admin.Administrator{ID: uuid.New(), Nome: nome, Email: email}
	f.admins[a.ID] = a
	return a
}

func (f *fakeAdmins) Lookup(_ context.Context, id uuid.UUID) (*admin.Administrator, error) {
	a, ok := f.admins[id]
	if !ok {
		return nil, apperr.NotFound(admin.MsgAdminNotFound)
	}
	return a, nil
}
