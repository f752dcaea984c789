package notify

import (
	"context"
	"fmt"

	"warebell/internal/queue"
)

// TaskHandler adapts the creation-side fan-out to the task queue. The worker
// dispatches queue.TaskNotifyAssignedUsers records through it.
func TaskHandler(n *Notifier) queue.Handler {
	return func(ctx context.Context, task queue.Task) error {
		pickList := task.Args["pick_list"]
		warehouse := task.Args["warehouse"]
		if pickList == "" || warehouse == "" {
			return fmt.Errorf("task %s missing pick_list or warehouse args", task.Name)
		}
		return n.NotifyAssignedUsers(ctx, pickList, warehouse)
	}
}
