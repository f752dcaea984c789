package notify

import (
	"context"

	"warebell/internal/domain"
)

// Store is the durable notification sink. Inserts are at-least-once and the
// caller never retries on failure; read state is flipped by the recipient's
// UI, not by the emitting side.
type Store interface {
	Insert(ctx context.Context, n domain.Notification) error
	ListByUser(ctx context.Context, user string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
