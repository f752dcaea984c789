package queue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMemoryQueue(t *testing.T) {
	t.Run("dispatches enqueued tasks to the registered handler", func(t *testing.T) {
		q := NewMemoryQueue(4, silentLogger())

		got := make(chan Task, 1)
		q.Register("greet", func(_ context.Context, task Task) error {
			got <- task
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = q.Run(ctx) }()

		task := Task{Name: "greet", JobName: "greet once", Args: map[string]string{"who": "carol"}}
		require.NoError(t, q.Enqueue(ctx, task))

		select {
		case received := <-got:
			assert.Equal(t, task, received)
		case <-time.After(time.Second):
			t.Fatal("handler was not invoked")
		}
	})

	t.Run("unknown task and handler errors are absorbed", func(t *testing.T) {
		q := NewMemoryQueue(4, silentLogger())
		q.Register("boom", func(context.Context, Task) error { return errors.New("boom") })

		done := make(chan struct{})
		q.Register("ping", func(context.Context, Task) error { close(done); return nil })

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = q.Run(ctx) }()

		require.NoError(t, q.Enqueue(ctx, Task{Name: "unknown"}))
		require.NoError(t, q.Enqueue(ctx, Task{Name: "boom"}))

		// The queue keeps serving after both.
		require.NoError(t, q.Enqueue(ctx, Task{Name: "ping"}))

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("queue stopped dispatching")
		}
	})

	t.Run("enqueue respects context cancellation when full", func(t *testing.T) {
		q := NewMemoryQueue(0, silentLogger())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := q.Enqueue(ctx, Task{Name: "late"})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
