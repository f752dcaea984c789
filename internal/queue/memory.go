package queue

import (
	"context"
	"log/slog"
)

// MemoryQueue is a channel-backed queue for development and tests. Enqueue
// never blocks the caller beyond channel capacity; Run consumes tasks and
// dispatches them to registered handlers.
type MemoryQueue struct {
	inbox    chan Task
	handlers map[string]Handler
	logger   *slog.Logger
}

func NewMemoryQueue(capacity int, logger *slog.Logger) *MemoryQueue {
	if logger == nil {
		logger = slog.Default()
	}
	return &MemoryQueue{
		inbox:    make(chan Task, capacity),
		handlers: make(map[string]Handler),
		logger:   logger,
	}
}

// Register binds a handler to a task name. Not safe to call after Run starts.
func (q *MemoryQueue) Register(name string, handler Handler) {
	q.handlers[name] = handler
}

func (q *MemoryQueue) Enqueue(ctx context.Context, task Task) error {
	select {
	case q.inbox <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryQueue) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task := <-q.inbox:
			q.dispatch(ctx, task)
		}
	}
}

func (q *MemoryQueue) dispatch(ctx context.Context, task Task) {
	handler, ok := q.handlers[task.Name]
	if !ok {
		q.logger.WarnContext(ctx, "no handler for task", "task", task.Name, "job", task.JobName)
		return
	}
	if err := handler(ctx, task); err != nil {
		q.logger.ErrorContext(ctx, "task failed", "task", task.Name, "job", task.JobName, "error", err)
	}
}
