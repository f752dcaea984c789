package directory

import (
	"context"
	"sync"

	"warebell/internal/domain"
)

type InMemoryStore struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{users: make(map[string]domain.User)}
}

// Put adds or replaces a user record.
func (s *InMemoryStore) Put(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Name] = user
}

func (s *InMemoryStore) ActiveByWarehouse(_ context.Context, warehouse string) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.User
	for _, u := range s.users {
		if u.Enabled && u.DefaultWarehouse == warehouse {
			out = append(out, u)
		}
	}
	return out, nil
}
