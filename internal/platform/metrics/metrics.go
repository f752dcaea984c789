package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	NotificationsWritten    prometheus.Counter
	NotificationWriteErrors prometheus.Counter
	RealtimePublished       prometheus.Counter
	RealtimePublishErrors   prometheus.Counter
	NotificationsSuppressed prometheus.Counter
	PickListsCreated        prometheus.Counter
	DeliveryNotesCreated    prometheus.Counter
	StockEntriesCreated     prometheus.Counter
	TasksEnqueued           prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		NotificationsWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "warebell_notifications_written_total",
			Help: "Durable notification records written",
		}),
		NotificationWriteErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "warebell_notification_write_errors_total",
			Help: "Failed durable notification writes",
		}),
		RealtimePublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "warebell_realtime_published_total",
			Help: "Ephemeral realtime events published",
		}),
		RealtimePublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "warebell_realtime_publish_errors_total",
			Help: "Failed ephemeral realtime publishes",
		}),
		NotificationsSuppressed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "warebell_notifications_suppressed_total",
			Help: "Update notifications suppressed by policy",
		}),
		PickListsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "warebell_pick_lists_created_total",
			Help: "Pick lists created from sales orders",
		}),
		DeliveryNotesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "warebell_delivery_notes_created_total",
			Help: "Delivery notes created from pick lists",
		}),
		StockEntriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "warebell_stock_entries_created_total",
			Help: "Stock entries created for default-warehouse transfers",
		}),
		TasksEnqueued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "warebell_tasks_enqueued_total",
			Help: "Background tasks handed to the queue",
		}),
	}
}
