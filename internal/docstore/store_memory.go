package docstore

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"warebell/internal/domain"
	"warebell/pkg/platform/sentinel"
)

// In-memory document stores, one per document type. Get and Save copy
// documents so callers always work on snapshots, never on shared state.

type series struct {
	prefix string
	n      int
}

func (s *series) next() string {
	s.n++
	return fmt.Sprintf("%s-%05d", s.prefix, s.n)
}

func copyPickList(pl *domain.PickList) *domain.PickList {
	cp := *pl
	cp.Locations = slices.Clone(pl.Locations)
	return &cp
}

// InMemoryPickLists implements PickListStore.
type InMemoryPickLists struct {
	mu     sync.RWMutex
	docs   map[string]*domain.PickList
	naming series
}

func NewInMemoryPickLists() *InMemoryPickLists {
	return &InMemoryPickLists{docs: make(map[string]*domain.PickList), naming: series{prefix: "PL"}}
}

func (s *InMemoryPickLists) Get(_ context.Context, name string) (*domain.PickList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pl, ok := s.docs[name]
	if !ok {
		return nil, fmt.Errorf("pick list %s: %w", name, sentinel.ErrNotFound)
	}
	return copyPickList(pl), nil
}

func (s *InMemoryPickLists) Insert(_ context.Context, pl *domain.PickList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pl.Name == "" {
		pl.Name = s.naming.next()
	}
	if _, exists := s.docs[pl.Name]; exists {
		return fmt.Errorf("pick list %s: %w", pl.Name, sentinel.ErrConflict)
	}
	stored := copyPickList(pl)
	stored.IsNew = false
	s.docs[pl.Name] = stored
	return nil
}

func (s *InMemoryPickLists) Save(_ context.Context, pl *domain.PickList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[pl.Name]; !ok {
		return fmt.Errorf("pick list %s: %w", pl.Name, sentinel.ErrNotFound)
	}
	stored := copyPickList(pl)
	stored.IsNew = false
	s.docs[pl.Name] = stored
	return nil
}

// InMemorySalesOrders implements SalesOrderStore.
type InMemorySalesOrders struct {
	mu   sync.RWMutex
	docs map[string]*domain.SalesOrder
}

func NewInMemorySalesOrders() *InMemorySalesOrders {
	return &InMemorySalesOrders{docs: make(map[string]*domain.SalesOrder)}
}

func copySalesOrder(so *domain.SalesOrder) *domain.SalesOrder {
	cp := *so
	cp.Items = slices.Clone(so.Items)
	return &cp
}

func (s *InMemorySalesOrders) Get(_ context.Context, name string) (*domain.SalesOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	so, ok := s.docs[name]
	if !ok {
		return nil, fmt.Errorf("sales order %s: %w", name, sentinel.ErrNotFound)
	}
	return copySalesOrder(so), nil
}

// Put seeds or replaces a sales order.
func (s *InMemorySalesOrders) Put(so *domain.SalesOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[so.Name] = copySalesOrder(so)
}

// InMemoryDeliveryNotes implements DeliveryNoteStore.
type InMemoryDeliveryNotes struct {
	mu     sync.RWMutex
	docs   map[string]*domain.DeliveryNote
	naming series
}

func NewInMemoryDeliveryNotes() *InMemoryDeliveryNotes {
	return &InMemoryDeliveryNotes{docs: make(map[string]*domain.DeliveryNote), naming: series{prefix: "DN"}}
}

func copyDeliveryNote(dn *domain.DeliveryNote) *domain.DeliveryNote {
	cp := *dn
	cp.Items = slices.Clone(dn.Items)
	return &cp
}

func (s *InMemoryDeliveryNotes) Insert(_ context.Context, dn *domain.DeliveryNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dn.Name == "" {
		dn.Name = s.naming.next()
	}
	if _, exists := s.docs[dn.Name]; exists {
		return fmt.Errorf("delivery note %s: %w", dn.Name, sentinel.ErrConflict)
	}
	s.docs[dn.Name] = copyDeliveryNote(dn)
	return nil
}

func (s *InMemoryDeliveryNotes) Save(_ context.Context, dn *domain.DeliveryNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[dn.Name]; !ok {
		return fmt.Errorf("delivery note %s: %w", dn.Name, sentinel.ErrNotFound)
	}
	s.docs[dn.Name] = copyDeliveryNote(dn)
	return nil
}

// Get reads a stored delivery note, for handlers and tests.
func (s *InMemoryDeliveryNotes) Get(_ context.Context, name string) (*domain.DeliveryNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dn, ok := s.docs[name]
	if !ok {
		return nil, fmt.Errorf("delivery note %s: %w", name, sentinel.ErrNotFound)
	}
	return copyDeliveryNote(dn), nil
}

// InMemoryPurchaseReceipts implements PurchaseReceiptStore.
type InMemoryPurchaseReceipts struct {
	mu   sync.RWMutex
	docs map[string]*domain.PurchaseReceipt
}

func NewInMemoryPurchaseReceipts() *InMemoryPurchaseReceipts {
	return &InMemoryPurchaseReceipts{docs: make(map[string]*domain.PurchaseReceipt)}
}

func copyReceipt(pr *domain.PurchaseReceipt) *domain.PurchaseReceipt {
	cp := *pr
	cp.Items = slices.Clone(pr.Items)
	return &cp
}

func (s *InMemoryPurchaseReceipts) Get(_ context.Context, name string) (*domain.PurchaseReceipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pr, ok := s.docs[name]
	if !ok {
		return nil, fmt.Errorf("purchase receipt %s: %w", name, sentinel.ErrNotFound)
	}
	return copyReceipt(pr), nil
}

// Put seeds or replaces a purchase receipt.
func (s *InMemoryPurchaseReceipts) Put(pr *domain.PurchaseReceipt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[pr.Name] = copyReceipt(pr)
}

// InMemoryStockEntries implements StockEntryStore.
type InMemoryStockEntries struct {
	mu     sync.RWMutex
	docs   map[string]*domain.StockEntry
	naming series
}

func NewInMemoryStockEntries() *InMemoryStockEntries {
	return &InMemoryStockEntries{docs: make(map[string]*domain.StockEntry), naming: series{prefix: "STE"}}
}

func copyStockEntry(se *domain.StockEntry) *domain.StockEntry {
	cp := *se
	cp.Items = slices.Clone(se.Items)
	return &cp
}

func (s *InMemoryStockEntries) Insert(_ context.Context, se *domain.StockEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if se.Name == "" {
		se.Name = s.naming.next()
	}
	if _, exists := s.docs[se.Name]; exists {
		return fmt.Errorf("stock entry %s: %w", se.Name, sentinel.ErrConflict)
	}
	s.docs[se.Name] = copyStockEntry(se)
	return nil
}

// Get reads a stored stock entry, for handlers and tests.
func (s *InMemoryStockEntries) Get(_ context.Context, name string) (*domain.StockEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	se, ok := s.docs[name]
	if !ok {
		return nil, fmt.Errorf("stock entry %s: %w", name, sentinel.ErrNotFound)
	}
	return copyStockEntry(se), nil
}

// InMemoryItems implements ItemStore.
type InMemoryItems struct {
	mu   sync.RWMutex
	docs map[string]*domain.Item
}

func NewInMemoryItems() *InMemoryItems {
	return &InMemoryItems{docs: make(map[string]*domain.Item)}
}

func copyItem(it *domain.Item) *domain.Item {
	cp := *it
	cp.UOMConversions = maps.Clone(it.UOMConversions)
	return &cp
}

func (s *InMemoryItems) Get(_ context.Context, code string) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.docs[code]
	if !ok {
		return nil, fmt.Errorf("item %s: %w", code, sentinel.ErrNotFound)
	}
	return copyItem(it), nil
}

// Put seeds or replaces a catalog item.
func (s *InMemoryItems) Put(it *domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[it.Code] = copyItem(it)
}
