package notify

import (
	"context"
	"sync"

	"warebell/internal/domain"
	"warebell/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu            sync.RWMutex
	notifications []domain.Notification

	// FailFor makes Insert return an error for the named recipients, so
	// tests can exercise per-recipient delivery isolation.
	FailFor map[string]error
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Insert(_ context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.FailFor[n.ForUser]; ok {
		return err
	}
	s.notifications = append(s.notifications, n)
	return nil
}

func (s *InMemoryStore) ListByUser(_ context.Context, user string) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Notification
	for _, n := range s.notifications {
		if n.ForUser == user {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *InMemoryStore) MarkRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return nil
		}
	}
	return sentinel.ErrNotFound
}
