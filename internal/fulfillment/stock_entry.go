package fulfillment

import (
	"context"
	"fmt"
	"time"

	"warebell/internal/domain"
)

const entryTypeMaterialTransfer = "Material Transfer"

// MoveToDefaultWarehouse creates one stock entry moving every line of a
// purchase receipt whose warehouse differs from the item's default
// warehouse. The entry is left in draft so the operator reviews it before
// submission.
func (s *Service) MoveToDefaultWarehouse(ctx context.Context, purchaseReceipt string) (string, error) {
	pr, err := s.stores.PurchaseReceipts.Get(ctx, purchaseReceipt)
	if err != nil {
		return "", fmt.Errorf("load purchase receipt %s: %w", purchaseReceipt, err)
	}

	se := &domain.StockEntry{
		EntryType:       entryTypeMaterialTransfer,
		PostingDate:     time.Now().Format("2006-01-02"),
		PurchaseReceipt: pr.Name,
	}

	for _, item := range pr.Items {
		target := s.defaultWarehouse(ctx, item.ItemCode)
		if target == "" || item.Warehouse == target {
			continue
		}
		se.Items = append(se.Items, domain.StockEntryItem{
			ItemCode:        item.ItemCode,
			Qty:             item.Qty,
			UOM:             item.UOM,
			SourceWarehouse: item.Warehouse,
			TargetWarehouse: target,
		})
	}

	if len(se.Items) == 0 {
		return "", domain.Validationf("All items are already in their default warehouses.")
	}

	if err := s.stores.StockEntries.Insert(ctx, se); err != nil {
		return "", fmt.Errorf("insert stock entry: %w", err)
	}

	if s.metrics != nil {
		s.metrics.StockEntriesCreated.Inc()
	}
	s.logger.InfoContext(ctx, "stock entry created",
		"document", se.Name, "purchase_receipt", pr.Name, "lines", len(se.Items))
	return se.Name, nil
}
