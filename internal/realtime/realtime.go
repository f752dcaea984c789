// Package realtime delivers ephemeral events to a user's currently connected
// sessions. Delivery is best-effort: nothing is persisted, nothing is
// retried, and an offline recipient simply misses the event.
package realtime

import "context"

// Topics understood by the frontend. Clients that only know the generic
// alert topic still see something when a richer event fires alongside it.
const (
	TopicMsgprint         = "msgprint"
	TopicPickListUpdate   = "picklist_update_alert"
	TopicPickListAssigned = "pick_list_assigned"
)

// Event is one ephemeral push: a topic and an arbitrary JSON-serializable
// payload.
type Event struct {
	Topic   string
	Payload map[string]any
}

// Publisher pushes an event to one user's connected sessions.
type Publisher interface {
	Publish(ctx context.Context, user string, event Event) error
}
