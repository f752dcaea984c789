package fulfillment

import (
	"context"

	"warebell/internal/domain"
)

func (s *ServiceSuite) submittedPickList(name, order string, items ...string) *domain.PickList {
	pl := &domain.PickList{Name: name, DocStatus: domain.StatusSubmitted}
	for _, item := range items {
		pl.Locations = append(pl.Locations, domain.PickListLocation{
			ItemCode:   item,
			Qty:        1,
			SalesOrder: order,
		})
	}
	return pl
}

func (s *ServiceSuite) TestCreateDeliveryNotesValidation() {
	ctx := context.Background()

	s.Run("empty selection is rejected", func() {
		_, err := s.svc.CreateDeliveryNotes(ctx, nil)
		s.Require().Error(err)
		s.True(domain.IsValidation(err))
	})

	s.Run("draft pick list is rejected", func() {
		pl := s.submittedPickList("PL-DRAFT", "SO-A", "WIDGET")
		pl.DocStatus = domain.StatusDraft
		s.seedPickList(pl)

		_, err := s.svc.CreateDeliveryNotes(ctx, []string{"PL-DRAFT"})
		s.Require().Error(err)
		s.True(domain.IsValidation(err))
		s.Contains(err.Error(), "PL-DRAFT must be submitted")
	})

	s.Run("pick list without locations is rejected", func() {
		s.seedPickList(&domain.PickList{Name: "PL-EMPTY", DocStatus: domain.StatusSubmitted})

		_, err := s.svc.CreateDeliveryNotes(ctx, []string{"PL-EMPTY"})
		s.Require().Error(err)
		s.True(domain.IsValidation(err))
		s.Contains(err.Error(), "PL-EMPTY has no items")
	})

	s.Run("pick list without linked order is rejected", func() {
		s.seedPickList(s.submittedPickList("PL-NOSO", "", "WIDGET"))

		_, err := s.svc.CreateDeliveryNotes(ctx, []string{"PL-NOSO"})
		s.Require().Error(err)
		s.True(domain.IsValidation(err))
		s.Contains(err.Error(), "PL-NOSO has no linked Sales Order")
	})

	s.Run("pick list spanning two orders is rejected naming both", func() {
		pl := s.submittedPickList("PL-MIXED", "SO-A", "WIDGET")
		pl.Locations = append(pl.Locations, domain.PickListLocation{
			ItemCode: "GADGET", Qty: 2, SalesOrder: "SO-B",
		})
		s.seedPickList(pl)
		s.seedPickList(s.submittedPickList("PL-OK", "SO-A", "BOLT"))

		_, err := s.svc.CreateDeliveryNotes(ctx, []string{"PL-OK", "PL-MIXED"})
		s.Require().Error(err)
		s.True(domain.IsValidation(err))
		s.Contains(err.Error(), "PL-MIXED")
		s.Contains(err.Error(), "SO-A, SO-B")

		// No partial creation: validation failed, so nothing persisted.
		_, err = s.deliveryNotes.Get(ctx, "DN-00001")
		s.Error(err)
	})
}

func (s *ServiceSuite) TestCreateDeliveryNotesPartitioning() {
	ctx := context.Background()

	s.salesOrders.Put(&domain.SalesOrder{Name: "SO-A", Customer: "Acme"})
	s.salesOrders.Put(&domain.SalesOrder{Name: "SO-B", Customer: "Globex"})

	s.seedPickList(s.submittedPickList("PL-1", "SO-A", "WIDGET"))
	s.seedPickList(s.submittedPickList("PL-3", "SO-A", "GADGET"))
	s.seedPickList(s.submittedPickList("PL-4", "SO-B", "BOLT"))

	created, err := s.svc.CreateDeliveryNotes(ctx, []string{"PL-1", "PL-3", "PL-4"})
	s.Require().NoError(err)
	s.Require().Len(created, 2)

	first, err := s.deliveryNotes.Get(ctx, created[0])
	s.Require().NoError(err)
	s.Equal("SO-A", first.SalesOrder)
	s.Equal("Acme", first.Customer)
	s.Equal(domain.StatusSubmitted, first.DocStatus)
	s.Require().Len(first.Items, 2)
	s.Equal("WIDGET", first.Items[0].ItemCode)
	s.Equal("GADGET", first.Items[1].ItemCode)
	s.Equal("SO-A", first.Items[0].AgainstSalesOrder)

	second, err := s.deliveryNotes.Get(ctx, created[1])
	s.Require().NoError(err)
	s.Equal("SO-B", second.SalesOrder)
	s.Equal("Globex", second.Customer)
	s.Require().Len(second.Items, 1)
	s.Equal("BOLT", second.Items[0].ItemCode)
}
