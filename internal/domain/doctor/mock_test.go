package doctor

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clientehm/api/internal/platform/apperr"
)

type mockRepo struct {
	mu      sync.Mutex
	doctors map[uuid.UUID]*Doctor
}

func newMockRepo() *mockRepo {
	return &mockRepo{doctors: make(map[uuid.UUID]*Doctor)}
}

func (m *mockRepo) Create(_ context.Context, d *Doctor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	cp := *d
	m.doctors[d.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.doctors[id]
	if !ok {
		return nil, apperr.NotFound(MsgNotFound)
	}
	cp := *d
	return &cp, nil
}

func (m *mockRepo) GetActiveByCRM(_ context.Context, crm string) (*Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.doctors {
		if d.DeletedAt == nil && strings.EqualFold(d.CRM, crm) {
			cp := *d
			return &cp, nil
		}
	}
	return nil, apperr.NotFound(MsgNotFound)
}

func (m *mockRepo) Update(_ context.Context, d *Doctor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.doctors[d.ID]; !ok {
		return apperr.NotFound(MsgNotFound)
	}
	d.UpdatedAt = time.Now()
	cp := *d
	m.doctors[d.ID] = &cp
	return nil
}

func (m *mockRepo) SoftDelete(_ context.Context, id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.doctors[id]
	if !ok || d.DeletedAt != nil {
		return apperr.NotFound(MsgNotFound)
	}
	d.DeletedAt = &at
	return nil
}

func (m *mockRepo) List(_ context.Context, f ListFilter) ([]*Doctor, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []*Doctor
	for _, d := range m.doctors {
		if d.DeletedAt != nil && !f.IncludeDeleted {
			continue
		}
		if f.Nome != "" && !strings.Contains(strings.ToLower(d.NomeCompleto), strings.ToLower(f.Nome)) {
			continue
		}
		if f.Especialidade != "" && !strings.Contains(strings.ToLower(d.Especialidade), strings.ToLower(f.Especialidade)) {
			continue
		}
		cp := *d
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
