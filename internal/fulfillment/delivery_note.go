package fulfillment

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"warebell/internal/domain"
)

// CreateDeliveryNotes consolidates submitted pick lists into delivery notes,
// one per distinct sales order. Every pick list is validated before anything
// is persisted: a validation failure creates no documents at all. Each
// created delivery note is submitted immediately.
func (s *Service) CreateDeliveryNotes(ctx context.Context, pickListNames []string) ([]string, error) {
	if len(pickListNames) == 0 {
		return nil, domain.Validationf("No Pick Lists selected")
	}

	// Partition pick lists by their single linked sales order, keeping
	// first-seen order so derived documents come out deterministically.
	groups := make(map[string][]*domain.PickList)
	var orderNames []string

	for _, name := range pickListNames {
		pl, err := s.stores.PickLists.Get(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("load pick list %s: %w", name, err)
		}

		if pl.DocStatus != domain.StatusSubmitted {
			return nil, domain.Validationf("Pick List %s must be submitted before creating Delivery Note", name)
		}
		if len(pl.Locations) == 0 {
			return nil, domain.Validationf("Pick List %s has no items in locations table", name)
		}

		orders := make(map[string]struct{})
		for _, loc := range pl.Locations {
			if loc.SalesOrder != "" {
				orders[loc.SalesOrder] = struct{}{}
			}
		}
		if len(orders) == 0 {
			return nil, domain.Validationf("Pick List %s has no linked Sales Order", name)
		}
		if len(orders) > 1 {
			conflicting := make([]string, 0, len(orders))
			for order := range orders {
				conflicting = append(conflicting, order)
			}
			sort.Strings(conflicting)
			return nil, domain.Validationf("Pick List %s contains items from multiple Sales Orders: %s",
				name, strings.Join(conflicting, ", "))
		}

		var order string
		for o := range orders {
			order = o
		}
		if _, seen := groups[order]; !seen {
			orderNames = append(orderNames, order)
		}
		groups[order] = append(groups[order], pl)
	}

	var created []string
	for _, order := range orderNames {
		so, err := s.stores.SalesOrders.Get(ctx, order)
		if err != nil {
			return created, fmt.Errorf("load sales order %s: %w", order, err)
		}

		dn := &domain.DeliveryNote{
			Customer:   so.Customer,
			SalesOrder: order,
		}
		for _, pl := range groups[order] {
			for _, loc := range pl.Locations {
				dn.Items = append(dn.Items, domain.DeliveryNoteItem{
					ItemCode:          loc.ItemCode,
					ItemName:          loc.ItemName,
					UOM:               loc.UOM,
					ConversionFactor:  loc.ConversionFactor,
					Qty:               loc.Qty,
					AgainstSalesOrder: order,
					SalesOrderItem:    loc.SalesOrderItem,
					Warehouse:         loc.Warehouse,
				})
			}
		}

		if err := s.stores.DeliveryNotes.Insert(ctx, dn); err != nil {
			return created, fmt.Errorf("insert delivery note for %s: %w", order, err)
		}
		dn.DocStatus = domain.StatusSubmitted
		if err := s.stores.DeliveryNotes.Save(ctx, dn); err != nil {
			return created, fmt.Errorf("submit delivery note %s: %w", dn.Name, err)
		}

		if s.metrics != nil {
			s.metrics.DeliveryNotesCreated.Inc()
		}
		s.logger.InfoContext(ctx, "delivery note created",
			"document", dn.Name, "sales_order", order, "pick_lists", len(groups[order]))
		created = append(created, dn.Name)
	}

	return created, nil
}
