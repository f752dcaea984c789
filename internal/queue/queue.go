// Package queue is the fire-and-forget boundary for background work. The
// core emits a task description and never observes the outcome; scheduling
// and execution live behind the Enqueuer interface.
package queue

import "context"

// Task names dispatched by workers.
const (
	TaskNotifyAssignedUsers = "notify_assigned_users"
)

// Queue priority hints, mirroring the execution budgets workers apply.
const (
	QueueShort = "short"
)

// Task describes one unit of background work.
type Task struct {
	Name    string            `json:"name"`
	Queue   string            `json:"queue"`
	JobName string            `json:"job_name"`
	Args    map[string]string `json:"args"`
}

// Enqueuer hands a task to the queue with at-most-once-attempt semantics.
type Enqueuer interface {
	Enqueue(ctx context.Context, task Task) error
}

// Handler executes one task. Returned errors are logged by the worker and
// never retried.
type Handler func(ctx context.Context, task Task) error
