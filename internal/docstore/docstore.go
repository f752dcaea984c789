// Package docstore is the boundary to the document persistence layer. The
// core only consumes get/insert/save semantics; validation and transaction
// handling beyond that belong to the store.
package docstore

import (
	"context"

	"warebell/internal/domain"
)

// PickListStore persists pick lists. Get returns a snapshot: mutating the
// result must not change the stored document until Save is called, so a Get
// taken before Save serves as the before-image.
type PickListStore interface {
	Get(ctx context.Context, name string) (*domain.PickList, error)
	// Insert stores a new document and assigns its name.
	Insert(ctx context.Context, pl *domain.PickList) error
	Save(ctx context.Context, pl *domain.PickList) error
}

// SalesOrderStore reads sales orders.
type SalesOrderStore interface {
	Get(ctx context.Context, name string) (*domain.SalesOrder, error)
}

// DeliveryNoteStore persists delivery notes.
type DeliveryNoteStore interface {
	Insert(ctx context.Context, dn *domain.DeliveryNote) error
	Save(ctx context.Context, dn *domain.DeliveryNote) error
}

// PurchaseReceiptStore reads purchase receipts.
type PurchaseReceiptStore interface {
	Get(ctx context.Context, name string) (*domain.PurchaseReceipt, error)
}

// StockEntryStore persists stock entries.
type StockEntryStore interface {
	Insert(ctx context.Context, se *domain.StockEntry) error
}

// ItemStore reads catalog items.
type ItemStore interface {
	Get(ctx context.Context, code string) (*domain.Item, error)
}
