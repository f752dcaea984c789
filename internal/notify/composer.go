package notify

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"warebell/internal/diff"
	"warebell/internal/realtime"
)

// Composition is deterministic and channel-agnostic: the same composed
// content feeds both the durable record and the realtime payloads.

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func changeLine(c diff.Change) string {
	return fmt.Sprintf("%s: %s → %s", c.ItemCode, formatQty(c.Old), formatQty(c.New))
}

// composeUpdate renders the notification for a picked-quantity change.
func composeUpdate(docName string, changes []diff.Change, actor string) (subject, body string, payload map[string]any) {
	lines := make([]string, 0, len(changes))
	rawChanges := make([]map[string]any, 0, len(changes))
	for _, c := range changes {
		lines = append(lines, changeLine(c))
		rawChanges = append(rawChanges, map[string]any{
			"row":       c.RowName,
			"item_code": c.ItemCode,
			"old":       c.Old,
			"new":       c.New,
		})
	}

	subject = fmt.Sprintf("Pick List %s was updated", docName)

	var b strings.Builder
	fmt.Fprintf(&b, "Pick List %s was updated by %s\n\nChanges:\n", docName, actor)
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• " + line)
	}
	body = b.String()

	payload = map[string]any{
		"picklist":   docName,
		"updated_by": actor,
		"changes":    rawChanges,
		"message":    fmt.Sprintf("Pick List %s updated with %d item change(s)", docName, len(changes)),
	}
	return subject, body, payload
}

// composeAssigned renders the creation-side notification for one warehouse.
func composeAssigned(docName, warehouse string, now time.Time) (subject, message string, assigned realtime.Event, alert realtime.Event) {
	subject = "New Pick List Assigned"
	message = fmt.Sprintf("New Pick List %s has been created for your warehouse %s", docName, warehouse)

	assigned = realtime.Event{
		Topic: realtime.TopicPickListAssigned,
		Payload: map[string]any{
			"message":        message,
			"title":          subject,
			"pick_list_name": docName,
			"warehouse":      warehouse,
			"timestamp":      now.Format(time.RFC3339),
			"type":           "pick_list_alert",
		},
	}
	alert = realtime.Event{
		Topic: realtime.TopicMsgprint,
		Payload: map[string]any{
			"message":   message,
			"title":     subject,
			"alert":     true,
			"indicator": "blue",
		},
	}
	return subject, message, assigned, alert
}
