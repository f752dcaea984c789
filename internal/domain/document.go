package domain

// DocStatus tracks a document's lifecycle inside the store.
type DocStatus int

const (
	StatusDraft     DocStatus = 0
	StatusSubmitted DocStatus = 1
	StatusCancelled DocStatus = 2
)

// PickList is the warehouse picking document. Locations is its child row
// collection; row names are stable across the document's lifetime, so the
// same RowName in two snapshots refers to the same line item.
type PickList struct {
	Name            string
	Owner           string
	Purpose         string
	SalesOrder      string
	ParentWarehouse string
	Company         string
	Customer        string
	DeliveryDate    string
	PickManually    bool
	DocStatus       DocStatus
	Locations       []PickListLocation

	// IsNew is set by the document store while the first insert of the
	// document is in flight, and never persisted.
	IsNew bool
}

// PickListLocation is one line of a pick list.
type PickListLocation struct {
	RowName          string
	ItemCode         string
	ItemName         string
	Description      string
	UOM              string
	ConversionFactor float64
	Qty              float64
	StockQty         float64
	PickedQty        float64
	Warehouse        string
	SalesOrder       string
	SalesOrderItem   string
}

// SalesOrder is the source document pick lists and delivery notes derive from.
type SalesOrder struct {
	Name            string
	Customer        string
	Company         string
	DeliveryDate    string
	TransactionDate string
	Items           []SalesOrderItem
}

// SalesOrderItem is one ordered line. DeliveredQty accumulates as delivery
// notes are submitted against the order.
type SalesOrderItem struct {
	RowName          string
	ItemCode         string
	ItemName         string
	Description      string
	UOM              string
	ConversionFactor float64
	Qty              float64
	DeliveredQty     float64
}

// DeliveryNote is derived from submitted pick lists, one per sales order.
type DeliveryNote struct {
	Name       string
	Customer   string
	SalesOrder string
	DocStatus  DocStatus
	Items      []DeliveryNoteItem
}

// DeliveryNoteItem mirrors a pick-list location carried into a delivery note.
type DeliveryNoteItem struct {
	ItemCode          string
	ItemName          string
	UOM               string
	ConversionFactor  float64
	Qty               float64
	AgainstSalesOrder string
	SalesOrderItem    string
	Warehouse         string
}

// PurchaseReceipt records goods received, each line at the warehouse it
// arrived in.
type PurchaseReceipt struct {
	Name  string
	Items []PurchaseReceiptItem
}

// PurchaseReceiptItem is one received line.
type PurchaseReceiptItem struct {
	ItemCode  string
	Qty       float64
	UOM       string
	Warehouse string
}

// StockEntry moves stock between warehouses. Left in draft so the operator
// reviews it before submission.
type StockEntry struct {
	Name            string
	EntryType       string
	PostingDate     string
	PurchaseReceipt string
	DocStatus       DocStatus
	Items           []StockEntryItem
}

// StockEntryItem is one transfer line.
type StockEntryItem struct {
	ItemCode        string
	Qty             float64
	UOM             string
	SourceWarehouse string
	TargetWarehouse string
}

// Item is the catalog record; DefaultWarehouse drives pick-list grouping and
// stock transfers.
type Item struct {
	Code             string
	Name             string
	DefaultWarehouse string
	// UOMConversions maps a unit of measure to its conversion factor
	// against the stock unit.
	UOMConversions map[string]float64
}
