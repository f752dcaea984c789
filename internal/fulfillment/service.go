// Package fulfillment holds the order-to-warehouse workflows: pick-list
// generation, delivery-note consolidation, stock transfers, and the save
// path that feeds the update notifier.
package fulfillment

import (
	"context"
	"errors"
	"log/slog"

	"warebell/internal/docstore"
	"warebell/internal/domain"
	"warebell/internal/platform/metrics"
	"warebell/internal/printing"
	"warebell/internal/queue"
)

// Stores collects the document store boundaries the service consumes.
type Stores struct {
	PickLists        docstore.PickListStore
	SalesOrders      docstore.SalesOrderStore
	DeliveryNotes    docstore.DeliveryNoteStore
	PurchaseReceipts docstore.PurchaseReceiptStore
	StockEntries     docstore.StockEntryStore
	Items            docstore.ItemStore
}

// UpdateNotifier receives the save event for an updated pick list. It never
// fails the save.
type UpdateNotifier interface {
	PickListUpdated(ctx context.Context, actor string, before, after *domain.PickList)
}

// Service orchestrates fulfillment workflows over the document stores.
// Enqueuer, printer and notifier are best-effort collaborators; when unset,
// the corresponding side effect is skipped.
type Service struct {
	stores   Stores
	enqueuer queue.Enqueuer
	printer  *printing.Service
	notifier UpdateNotifier
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithEnqueuer(e queue.Enqueuer) Option {
	return func(s *Service) { s.enqueuer = e }
}

func WithPrinter(p *printing.Service) Option {
	return func(s *Service) { s.printer = p }
}

func WithNotifier(n UpdateNotifier) Option {
	return func(s *Service) { s.notifier = n }
}

func New(stores Stores, opts ...Option) (*Service, error) {
	if stores.PickLists == nil || stores.SalesOrders == nil || stores.DeliveryNotes == nil ||
		stores.PurchaseReceipts == nil || stores.StockEntries == nil || stores.Items == nil {
		return nil, errors.New("all document stores are required")
	}
	s := &Service{
		stores: stores,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// enqueueNotify hands the creation-side notification to the task queue.
// Queue failures are logged and absorbed.
func (s *Service) enqueueNotify(ctx context.Context, pickListName, warehouse string) {
	if s.enqueuer == nil {
		return
	}
	task := queue.Task{
		Name:    queue.TaskNotifyAssignedUsers,
		Queue:   queue.QueueShort,
		JobName: "Notify Users for Pick List " + pickListName,
		Args: map[string]string{
			"pick_list": pickListName,
			"warehouse": warehouse,
		},
	}
	if err := s.enqueuer.Enqueue(ctx, task); err != nil {
		s.logger.ErrorContext(ctx, "enqueue notification task failed",
			"document", pickListName, "warehouse", warehouse, "error", err)
		return
	}
	if s.metrics != nil {
		s.metrics.TasksEnqueued.Inc()
	}
}

func (s *Service) printPickList(ctx context.Context, pickListName, warehouse string) {
	if s.printer == nil {
		return
	}
	s.printer.PrintPickList(ctx, pickListName, warehouse)
}
