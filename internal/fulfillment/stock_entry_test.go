package fulfillment

import (
	"context"

	"warebell/internal/domain"
)

func (s *ServiceSuite) TestMoveToDefaultWarehouse() {
	ctx := context.Background()

	s.items.Put(&domain.Item{Code: "WIDGET", DefaultWarehouse: "WH-Main"})
	s.items.Put(&domain.Item{Code: "GADGET", DefaultWarehouse: "WH-Cold"})

	s.Run("moves only lines away from their default warehouse", func() {
		s.receipts.Put(&domain.PurchaseReceipt{
			Name: "PR-1",
			Items: []domain.PurchaseReceiptItem{
				{ItemCode: "WIDGET", Qty: 5, UOM: "Each", Warehouse: "WH-Receiving"},
				{ItemCode: "GADGET", Qty: 2, UOM: "Each", Warehouse: "WH-Cold"},
			},
		})

		name, err := s.svc.MoveToDefaultWarehouse(ctx, "PR-1")
		s.Require().NoError(err)

		se, err := s.stockEntries.Get(ctx, name)
		s.Require().NoError(err)
		s.Equal("Material Transfer", se.EntryType)
		s.Equal("PR-1", se.PurchaseReceipt)
		s.Equal(domain.StatusDraft, se.DocStatus, "left in draft for review")
		s.Require().Len(se.Items, 1)
		s.Equal("WIDGET", se.Items[0].ItemCode)
		s.Equal("WH-Receiving", se.Items[0].SourceWarehouse)
		s.Equal("WH-Main", se.Items[0].TargetWarehouse)
	})

	s.Run("everything already in place is rejected", func() {
		s.receipts.Put(&domain.PurchaseReceipt{
			Name: "PR-2",
			Items: []domain.PurchaseReceiptItem{
				{ItemCode: "WIDGET", Qty: 1, Warehouse: "WH-Main"},
			},
		})

		_, err := s.svc.MoveToDefaultWarehouse(ctx, "PR-2")
		s.Require().Error(err)
		s.True(domain.IsValidation(err))
		s.Contains(err.Error(), "already in their default warehouses")
	})
}
