package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"warebell/internal/diff"
	"warebell/internal/directory"
	"warebell/internal/domain"
	"warebell/internal/platform/metrics"
	"warebell/internal/realtime"
	txcontext "warebell/pkg/platform/tx"
)

const docTypePickList = "Pick List"

// Notifier applies the notification policy to pick-list saves and fans out
// creation alerts to warehouse users. All delivery failures are absorbed and
// logged; the triggering save never fails because a notification did.
type Notifier struct {
	store     Store
	publisher realtime.Publisher
	directory directory.Store
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(n *Notifier)

func WithLogger(logger *slog.Logger) Option {
	return func(n *Notifier) { n.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(n *Notifier) { n.metrics = m }
}

func New(store Store, publisher realtime.Publisher, dir directory.Store, opts ...Option) (*Notifier, error) {
	if store == nil {
		return nil, errors.New("notification store is required")
	}
	if publisher == nil {
		return nil, errors.New("realtime publisher is required")
	}
	if dir == nil {
		return nil, errors.New("user directory is required")
	}
	n := &Notifier{
		store:     store,
		publisher: publisher,
		directory: dir,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// PickListUpdated runs on every update-type save of a pick list. Suppression
// rules are checked in order and the first match wins:
//
//  1. the save is the document's first insert
//  2. the store could not supply a before-image
//  3. the actor is the document owner
//  4. the picked quantities did not change
//  5. the document has no resolvable owner (logged as a data-quality warning)
//
// Suppression is silent from the caller's perspective; surviving saves get
// one durable notification plus two realtime events to the owner, both
// realtime publishes deferred until the enclosing transaction commits.
func (n *Notifier) PickListUpdated(ctx context.Context, actor string, before, after *domain.PickList) {
	if after.IsNew {
		n.suppress(ctx, after.Name, "document is being inserted")
		return
	}
	if before == nil {
		n.suppress(ctx, after.Name, "no before-image available")
		return
	}
	if actor == after.Owner {
		n.suppress(ctx, after.Name, "updated by owner")
		return
	}

	changes := diff.Locations(before.Locations, after.Locations)
	if len(changes) == 0 {
		n.suppress(ctx, after.Name, "no picked_qty changes")
		return
	}

	recipient := after.Owner
	if recipient == "" {
		n.logger.WarnContext(ctx, "pick list has no owner to notify",
			"document", after.Name)
		n.countSuppressed()
		return
	}

	subject, body, payload := composeUpdate(after.Name, changes, actor)

	n.writeDurable(ctx, domain.Notification{
		Subject:      subject,
		Message:      body,
		DocumentType: docTypePickList,
		DocumentName: after.Name,
		ForUser:      recipient,
	})

	// Recipients must not see the alert before the save is visible.
	publishCtx := context.WithoutCancel(ctx)
	txcontext.OnCommit(ctx, func() {
		n.publish(publishCtx, recipient, after.Name, realtime.Event{
			Topic:   realtime.TopicPickListUpdate,
			Payload: payload,
		})
		n.publish(publishCtx, recipient, after.Name, realtime.Event{
			Topic: realtime.TopicMsgprint,
			Payload: map[string]any{
				"message": payload["message"],
				"alert":   false,
			},
		})
	})
}

// NotifyAssignedUsers alerts every active user of a warehouse that a pick
// list was created for it. Each recipient is delivered independently: a
// failed durable write or realtime publish for one recipient never stops
// the others, and within one recipient the two sub-steps are independent.
func (n *Notifier) NotifyAssignedUsers(ctx context.Context, pickListName, warehouse string) error {
	users, err := n.directory.ActiveByWarehouse(ctx, warehouse)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		n.logger.WarnContext(ctx, "no active users for warehouse",
			"warehouse", warehouse, "document", pickListName)
		return nil
	}

	subject, message, assigned, alert := composeAssigned(pickListName, warehouse, time.Now())

	var g errgroup.Group
	for _, user := range users {
		user := user
		g.Go(func() error {
			n.writeDurable(ctx, domain.Notification{
				Subject:      subject,
				Message:      message,
				DocumentType: docTypePickList,
				DocumentName: pickListName,
				ForUser:      user.Name,
			})
			n.publish(ctx, user.Name, pickListName, alert)
			n.publish(ctx, user.Name, pickListName, assigned)
			return nil
		})
	}
	_ = g.Wait()

	n.logger.InfoContext(ctx, "pick list notifications sent",
		"document", pickListName, "warehouse", warehouse, "recipients", len(users))
	return nil
}

func (n *Notifier) writeDurable(ctx context.Context, notification domain.Notification) {
	notification.ID = uuid.NewString()
	notification.CreatedAt = time.Now()
	if err := n.store.Insert(ctx, notification); err != nil {
		n.logger.ErrorContext(ctx, "durable notification write failed",
			"recipient", notification.ForUser, "document", notification.DocumentName, "error", err)
		if n.metrics != nil {
			n.metrics.NotificationWriteErrors.Inc()
		}
		return
	}
	if n.metrics != nil {
		n.metrics.NotificationsWritten.Inc()
	}
}

func (n *Notifier) publish(ctx context.Context, user, docName string, event realtime.Event) {
	if err := n.publisher.Publish(ctx, user, event); err != nil {
		n.logger.ErrorContext(ctx, "realtime publish failed",
			"recipient", user, "document", docName, "topic", event.Topic, "error", err)
		if n.metrics != nil {
			n.metrics.RealtimePublishErrors.Inc()
		}
		return
	}
	if n.metrics != nil {
		n.metrics.RealtimePublished.Inc()
	}
}

func (n *Notifier) suppress(ctx context.Context, docName, reason string) {
	n.logger.DebugContext(ctx, "update notification suppressed",
		"document", docName, "reason", reason)
	n.countSuppressed()
}

func (n *Notifier) countSuppressed() {
	if n.metrics != nil {
		n.metrics.NotificationsSuppressed.Inc()
	}
}
