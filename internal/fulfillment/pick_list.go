package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"warebell/internal/domain"
	"warebell/pkg/platform/sentinel"
)

const purposeDelivery = "Delivery"

// CreatePickListsByWarehouse generates pick lists for a sales order's pending
// quantities, one pick list per default warehouse of the pending items. Each
// created pick list stays in manual-pick draft, is silently printed on the
// warehouse's format, and triggers an async notification task for the
// warehouse's users.
func (s *Service) CreatePickListsByWarehouse(ctx context.Context, actor, salesOrder string) ([]string, error) {
	so, err := s.stores.SalesOrders.Get(ctx, salesOrder)
	if err != nil {
		return nil, fmt.Errorf("load sales order %s: %w", salesOrder, err)
	}

	groups := make(map[string][]domain.PickListLocation)
	var warehouses []string

	for _, item := range so.Items {
		pending := item.Qty - item.DeliveredQty
		if pending <= 0 {
			continue
		}

		cf := item.ConversionFactor
		if cf == 0 {
			cf = 1
		}

		warehouse := s.defaultWarehouse(ctx, item.ItemCode)
		if _, seen := groups[warehouse]; !seen {
			warehouses = append(warehouses, warehouse)
		}
		groups[warehouse] = append(groups[warehouse], domain.PickListLocation{
			ItemCode:         item.ItemCode,
			ItemName:         item.ItemName,
			UOM:              item.UOM,
			ConversionFactor: cf,
			Qty:              pending,
			StockQty:         pending * cf,
			Warehouse:        warehouse,
			SalesOrder:       so.Name,
			SalesOrderItem:   item.RowName,
		})
	}

	if len(groups) == 0 {
		return nil, domain.Validationf("No pending items to pick for this Sales Order.")
	}

	var created []string
	for _, warehouse := range warehouses {
		pl := &domain.PickList{
			Owner:           actor,
			Purpose:         purposeDelivery,
			SalesOrder:      so.Name,
			ParentWarehouse: warehouse,
			PickManually:    true,
			Locations:       groups[warehouse],
		}
		if err := s.stores.PickLists.Insert(ctx, pl); err != nil {
			return created, fmt.Errorf("insert pick list for %s: %w", warehouse, err)
		}

		s.printPickList(ctx, pl.Name, warehouse)
		s.enqueueNotify(ctx, pl.Name, warehouse)

		if s.metrics != nil {
			s.metrics.PickListsCreated.Inc()
		}
		s.logger.InfoContext(ctx, "pick list created",
			"document", pl.Name, "warehouse", warehouse, "sales_order", so.Name)
		created = append(created, pl.Name)
	}

	return created, nil
}

// CreatePickListForWarehouse generates a single pick list for all pending
// lines of a sales order, picked from one caller-chosen warehouse. Every
// line must have a resolvable conversion factor.
func (s *Service) CreatePickListForWarehouse(ctx context.Context, actor, salesOrder, warehouse string) (string, error) {
	so, err := s.stores.SalesOrders.Get(ctx, salesOrder)
	if err != nil {
		return "", fmt.Errorf("load sales order %s: %w", salesOrder, err)
	}

	if err := s.validateConversionFactors(ctx, so); err != nil {
		return "", err
	}

	deliveryDate := so.DeliveryDate
	if deliveryDate == "" {
		deliveryDate = so.TransactionDate
	}

	pl := &domain.PickList{
		Owner:           actor,
		Company:         so.Company,
		Customer:        so.Customer,
		SalesOrder:      so.Name,
		ParentWarehouse: warehouse,
		Purpose:         purposeDelivery,
		DeliveryDate:    deliveryDate,
		PickManually:    true,
	}

	for _, item := range so.Items {
		if item.DeliveredQty >= item.Qty {
			continue
		}
		cf := item.ConversionFactor
		if cf == 0 {
			cf = 1
		}
		pl.Locations = append(pl.Locations, domain.PickListLocation{
			ItemCode:         item.ItemCode,
			ItemName:         item.ItemName,
			Description:      item.Description,
			UOM:              item.UOM,
			ConversionFactor: cf,
			Qty:              item.Qty,
			StockQty:         item.Qty * cf,
			Warehouse:        warehouse,
			SalesOrder:       so.Name,
			SalesOrderItem:   item.RowName,
		})
	}

	if len(pl.Locations) == 0 {
		return "", domain.Validationf("All items are already delivered for Sales Order %s", so.Name)
	}

	if err := s.stores.PickLists.Insert(ctx, pl); err != nil {
		return "", fmt.Errorf("insert pick list for %s: %w", warehouse, err)
	}

	s.printPickList(ctx, pl.Name, warehouse)
	s.enqueueNotify(ctx, pl.Name, warehouse)

	if s.metrics != nil {
		s.metrics.PickListsCreated.Inc()
	}
	s.logger.InfoContext(ctx, "pick list created",
		"document", pl.Name, "warehouse", warehouse, "sales_order", so.Name)
	return pl.Name, nil
}

// validateConversionFactors rejects an order whose lines have no conversion
// factor either on the line or in the item's UOM conversion table.
func (s *Service) validateConversionFactors(ctx context.Context, so *domain.SalesOrder) error {
	var missing []string
	for _, line := range so.Items {
		if line.ConversionFactor != 0 {
			continue
		}
		item, err := s.stores.Items.Get(ctx, line.ItemCode)
		if err == nil && item.UOMConversions[line.UOM] != 0 {
			continue
		}
		missing = append(missing, line.ItemCode)
	}
	if len(missing) > 0 {
		return domain.Validationf("The following Items are missing UOM Conversion Factor(s): %s",
			strings.Join(missing, ", "))
	}
	return nil
}

// defaultWarehouse resolves an item's default warehouse. A missing catalog
// record groups the line under the empty warehouse and logs the data-quality
// condition.
func (s *Service) defaultWarehouse(ctx context.Context, itemCode string) string {
	item, err := s.stores.Items.Get(ctx, itemCode)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "item has no catalog record", "item_code", itemCode)
		} else {
			s.logger.WarnContext(ctx, "item lookup failed", "item_code", itemCode, "error", err)
		}
		return ""
	}
	return item.DefaultWarehouse
}
