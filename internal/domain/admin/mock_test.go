package admin

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clientehm/api/internal/platform/apperr"
)

type mockRepo struct {
	mu     sync.Mutex
	admins map[uuid.UUID]*Administrator
}

func newMockRepo() *mockRepo {
	return &mockRepo{admins: make(map[uuid.UUID]*Administrator)}
}

func (m *mockRepo) Create(_ context.Context, a *Administrator) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.admins {
		if strings.EqualFold(existing.Email, a.Email) {
			return apperr.Duplicate(MsgEmailTaken)
		}
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	m.admins[a.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Administrator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.admins[id]
	if !ok {
		return nil, apperr.NotFound(MsgAdminNotFound)
	}
	cp := *a
	return &cp, nil
}

func (m *mockRepo) GetByEmail(_ context.Context, email string) (*Administrator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if strings.EqualFold(a.Email, email) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperr.NotFound(MsgAdminNotFound)
}

func (m *mockRepo) Update(_ context.Context, a *Administrator) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.admins[a.ID]; !ok {
		return apperr.NotFound(MsgAdminNotFound)
	}
	a.UpdatedAt = time.Now()
	cp := *a
	m.admins[a.ID] = &cp
	return nil
}

func (m *mockRepo) TouchLastAccess(_ context.Context, id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.admins[id]; ok {
		a.UltimoAcesso = &at
	}
	return nil
}
