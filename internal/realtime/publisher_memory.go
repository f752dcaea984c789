package realtime

import (
	"context"
	"sync"
)

// MemoryPublisher records events per user. It is the in-process fallback
// when redis is not configured and the capture double in tests.
type MemoryPublisher struct {
	mu     sync.Mutex
	events map[string][]Event

	// FailFor makes Publish return an error for the named users, so tests
	// can exercise per-recipient delivery isolation.
	FailFor map[string]error
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{events: make(map[string][]Event)}
}

func (p *MemoryPublisher) Publish(_ context.Context, user string, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err, ok := p.FailFor[user]; ok {
		return err
	}
	p.events[user] = append(p.events[user], event)
	return nil
}

// Events returns a copy of the events published to user.
func (p *MemoryPublisher) Events(user string) []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Event{}, p.events[user]...)
}
