package patient

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clientehm/api/internal/platform/apperr"
)

type mockRepo struct {
	mu       sync.Mutex
	patients map[uuid.UUID]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.patients[id]
	if !ok {
		return nil, apperr.NotFound(MsgNotFound)
	}
	cp := *p
	return &cp, nil
}

func (m *mockRepo) GetByCPF(_ context.Context, cpf string) (*Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.patients {
		if p.CPF == cpf {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperr.NotFound(MsgNotFound)
}

func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.patients[p.ID]; !ok {
		return apperr.NotFound(MsgNotFound)
	}
	p.UpdatedAt = time.Now()
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockRepo) SoftDelete(_ context.Context, id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.patients[id]
	if !ok || p.DeletedAt != nil {
		return apperr.NotFound(MsgNotFound)
	}
	p.DeletedAt = &at
	return nil
}

func (m *mockRepo) List(_ context.Context, f ListFilter) ([]*Patient, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []*Patient
	for _, p := range m.patients {
		if p.DeletedAt != nil && !f.IncludeDeleted {
			continue
		}
		if f.Nome != "" && !strings.Contains(strings.ToLower(p.NomeCompleto), strings.ToLower(f.Nome)) {
			continue
		}
		if f.CPF != "" && !strings.HasPrefix(p.CPF, f.CPF) {
			continue
		}
		cp := *p
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].NomeCompleto < all[j].NomeCompleto })
	total := len(all)
	if f.Offset >= total {
		return nil, total, nil
	}
	end := f.Offset + f.Limit
	if f.Limit <= 0 || end > total {
		end = total
	}
	return all[f.Offset:end], total, nil
}

type mockRecordRepo struct {
	mu      sync.Mutex
	seq     int
	records map[uuid.UUID]*MedicalRecord
	failOn  error
}

func newMockRecordRepo() *mockRecordRepo {
	return &mockRecordRepo{records: make(map[uuid.UUID]*MedicalRecord)}
}

func (m *mockRecordRepo) Create(_ context.Context, r *MedicalRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn != nil {
		return m.failOn
	}
	m.seq++
	r.ID = uuid.New()
	r.NumeroProntuario = fmt.Sprintf("PR-%08d", m.seq)
	r.Status = StatusActive
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	cp := *r
	m.records[r.ID] = &cp
	return nil
}

func (m *mockRecordRepo) GetByID(_ context.Context, id uuid.UUID) (*MedicalRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok {
		return nil, apperr.NotFound(MsgRecordNotFound)
	}
	cp := *r
	return &cp, nil
}

func (m *mockRecordRepo) GetByPatient(_ context.Context, patientID uuid.UUID) (*MedicalRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.PacienteID == patientID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, apperr.NotFound(MsgRecordNotFound)
}

func (m *mockRecordRepo) SetStatus(_ context.Context, id uuid.UUID, status RecordStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok {
		return apperr.NotFound(MsgRecordNotFound)
	}
	r.Status = status
	return nil
}

// recordingTx counts transactions and runs fn inline.
type recordingTx struct {
	calls int
}

func (t *recordingTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}
