package fulfillment

import (
	"context"

	"warebell/internal/domain"
	"warebell/internal/printing"
	"warebell/internal/queue"
)

func (s *ServiceSuite) TestCreatePickListsByWarehouse() {
	ctx := context.Background()

	s.items.Put(&domain.Item{Code: "WIDGET", DefaultWarehouse: "WH-Main"})
	s.items.Put(&domain.Item{Code: "GADGET", DefaultWarehouse: "WH-Cold"})
	s.items.Put(&domain.Item{Code: "BOLT", DefaultWarehouse: "WH-Main"})

	s.Run("pending lines are grouped by default warehouse", func() {
		s.salesOrders.Put(&domain.SalesOrder{
			Name: "SO-1",
			Items: []domain.SalesOrderItem{
				{RowName: "r1", ItemCode: "WIDGET", UOM: "Box", ConversionFactor: 2, Qty: 10, DeliveredQty: 4},
				{RowName: "r2", ItemCode: "GADGET", Qty: 3},
				{RowName: "r3", ItemCode: "BOLT", Qty: 5, DeliveredQty: 5},
			},
		})

		created, err := s.svc.CreatePickListsByWarehouse(ctx, "alice", "SO-1")
		s.Require().NoError(err)
		s.Require().Len(created, 2)

		main, err := s.pickLists.Get(ctx, created[0])
		s.Require().NoError(err)
		s.Equal("WH-Main", main.ParentWarehouse)
		s.Equal("alice", main.Owner)
		s.True(main.PickManually)
		s.Equal(domain.StatusDraft, main.DocStatus)
		s.Require().Len(main.Locations, 1)
		s.Equal(6.0, main.Locations[0].Qty, "pending = ordered - delivered")
		s.Equal(12.0, main.Locations[0].StockQty)
		s.Equal("r1", main.Locations[0].SalesOrderItem)

		cold, err := s.pickLists.Get(ctx, created[1])
		s.Require().NoError(err)
		s.Equal("WH-Cold", cold.ParentWarehouse)
		s.Require().Len(cold.Locations, 1)
		s.Equal(3.0, cold.Locations[0].Qty)
		s.Equal(1.0, cold.Locations[0].ConversionFactor, "missing factor defaults to 1")
		s.Equal(3.0, cold.Locations[0].StockQty)
	})

	s.Run("notification task is enqueued per pick list", func() {
		tasks := s.enqueuer.Tasks()
		s.Require().Len(tasks, 2)
		s.Equal(queue.TaskNotifyAssignedUsers, tasks[0].Name)
		s.Equal(queue.QueueShort, tasks[0].Queue)
		s.Equal("WH-Main", tasks[0].Args["warehouse"])
		s.Equal("WH-Cold", tasks[1].Args["warehouse"])
		s.NotEmpty(tasks[0].Args["pick_list"])
	})

	s.Run("fully delivered order is rejected", func() {
		s.salesOrders.Put(&domain.SalesOrder{
			Name: "SO-DONE",
			Items: []domain.SalesOrderItem{
				{RowName: "r1", ItemCode: "WIDGET", Qty: 5, DeliveredQty: 5},
				{RowName: "r2", ItemCode: "BOLT", Qty: 2, DeliveredQty: 3},
			},
		})

		_, err := s.svc.CreatePickListsByWarehouse(ctx, "alice", "SO-DONE")
		s.Require().Error(err)
		s.True(domain.IsValidation(err))
		s.Contains(err.Error(), "No pending items to pick")
	})
}

func (s *ServiceSuite) TestCreatePickListsByWarehousePendingMath() {
	ctx := context.Background()

	s.items.Put(&domain.Item{Code: "WIDGET", DefaultWarehouse: "WH-Main"})
	s.salesOrders.Put(&domain.SalesOrder{
		Name: "SO-2",
		Items: []domain.SalesOrderItem{
			{RowName: "r1", ItemCode: "WIDGET", Qty: 10, DeliveredQty: 4},
		},
	})

	created, err := s.svc.CreatePickListsByWarehouse(ctx, "alice", "SO-2")
	s.Require().NoError(err)
	s.Require().Len(created, 1)

	pl, err := s.pickLists.Get(ctx, created[0])
	s.Require().NoError(err)
	s.Require().Len(pl.Locations, 1)
	s.Equal(6.0, pl.Locations[0].Qty)
	s.Equal(6.0, pl.Locations[0].StockQty, "conversion factor defaults to 1")
	s.Equal(1.0, pl.Locations[0].ConversionFactor)
}

func (s *ServiceSuite) TestCreatePickListsByWarehousePrinting() {
	ctx := context.Background()

	s.items.Put(&domain.Item{Code: "WIDGET", DefaultWarehouse: "WH-Main"})
	s.items.Put(&domain.Item{Code: "GADGET", DefaultWarehouse: "WH-Cold"})
	s.formats.Put(printing.Format{Warehouse: "WH-Main", PrintFormat: "Pick Slip A5", PrintType: "thermal"})

	s.salesOrders.Put(&domain.SalesOrder{
		Name: "SO-3",
		Items: []domain.SalesOrderItem{
			{RowName: "r1", ItemCode: "WIDGET", Qty: 2},
			{RowName: "r2", ItemCode: "GADGET", Qty: 2},
		},
	})

	created, err := s.svc.CreatePickListsByWarehouse(ctx, "alice", "SO-3")
	s.Require().NoError(err)
	s.Require().Len(created, 2)

	// Only WH-Main has a configured format; WH-Cold is a silent no-op.
	s.Require().Len(s.printer.Jobs, 1)
	s.Equal("Pick List", s.printer.Jobs[0].DocType)
	s.Equal(created[0], s.printer.Jobs[0].DocName)
	s.Equal("Pick Slip A5", s.printer.Jobs[0].Format)
}

func (s *ServiceSuite) TestCreatePickListForWarehouse() {
	ctx := context.Background()

	s.Run("missing conversion factors are rejected listing item codes", func() {
		s.items.Put(&domain.Item{Code: "BOLT", UOMConversions: map[string]float64{"Box": 12}})
		s.salesOrders.Put(&domain.SalesOrder{
			Name: "SO-4",
			Items: []domain.SalesOrderItem{
				{RowName: "r1", ItemCode: "WIDGET", UOM: "Box", Qty: 1},
				{RowName: "r2", ItemCode: "GADGET", UOM: "Each", Qty: 1},
				{RowName: "r3", ItemCode: "BOLT", UOM: "Box", Qty: 1},
			},
		})

		_, err := s.svc.CreatePickListForWarehouse(ctx, "alice", "SO-4", "WH-Main")
		s.Require().Error(err)
		s.True(domain.IsValidation(err))
		s.Contains(err.Error(), "missing UOM Conversion Factor")
		s.Contains(err.Error(), "WIDGET, GADGET")
		s.NotContains(err.Error(), "BOLT")
	})

	s.Run("creates one pick list with all pending lines", func() {
		s.salesOrders.Put(&domain.SalesOrder{
			Name:            "SO-5",
			Company:         "Warebell Ltd",
			Customer:        "Acme",
			TransactionDate: "2026-03-01",
			Items: []domain.SalesOrderItem{
				{RowName: "r1", ItemCode: "WIDGET", ConversionFactor: 2, Qty: 4, DeliveredQty: 1},
				{RowName: "r2", ItemCode: "GADGET", ConversionFactor: 1, Qty: 3, DeliveredQty: 3},
			},
		})

		name, err := s.svc.CreatePickListForWarehouse(ctx, "alice", "SO-5", "WH-Main")
		s.Require().NoError(err)

		pl, err := s.pickLists.Get(ctx, name)
		s.Require().NoError(err)
		s.Equal("Warebell Ltd", pl.Company)
		s.Equal("Acme", pl.Customer)
		s.Equal("WH-Main", pl.ParentWarehouse)
		s.Equal("2026-03-01", pl.DeliveryDate, "falls back to transaction date")
		s.True(pl.PickManually)
		s.Require().Len(pl.Locations, 1)
		s.Equal("WIDGET", pl.Locations[0].ItemCode)
		s.Equal(4.0, pl.Locations[0].Qty)
		s.Equal(8.0, pl.Locations[0].StockQty)
	})

	s.Run("fully delivered order is rejected", func() {
		s.salesOrders.Put(&domain.SalesOrder{
			Name: "SO-6",
			Items: []domain.SalesOrderItem{
				{RowName: "r1", ItemCode: "WIDGET", ConversionFactor: 1, Qty: 2, DeliveredQty: 2},
			},
		})

		_, err := s.svc.CreatePickListForWarehouse(ctx, "alice", "SO-6", "WH-Main")
		s.Require().Error(err)
		s.True(domain.IsValidation(err))
		s.Contains(err.Error(), "All items are already delivered for Sales Order SO-6")
	})
}
