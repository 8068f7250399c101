package mocks

import (
	"context"
	"sync"

	"github.com/seu-repo/vocalis/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User

	SaveFunc          func(ctx context.Context, user *domain.User) error
	FindByIDFunc      func(ctx context.Context, id string) (*domain.User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*domain.User, error)
	AppendHistoryFunc func(ctx context.Context, userID, command string) error

	SaveCalls          int
	AppendHistoryCalls int
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	m.SaveCalls++
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id], nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) AppendHistory(ctx context.Context, userID, command string) error {
	m.mu.Lock()
	m.AppendHistoryCalls++
	m.mu.Unlock()
	if m.AppendHistoryFunc != nil {
		return m.AppendHistoryFunc(ctx, userID, command)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[userID]; ok {
		u.History = append(u.History, command)
	}
	return nil
}
