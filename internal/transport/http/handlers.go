package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"warebell/internal/domain"
	"warebell/pkg/platform/sentinel"
)

// actorHeader carries the acting user's identity, set by the fronting
// gateway after authentication. Authorization itself is out of scope here.
const actorHeader = "X-Warebell-User"

// FulfillmentService is the fulfillment workflow boundary consumed by the
// HTTP layer.
type FulfillmentService interface {
	CreateDeliveryNotes(ctx context.Context, pickListNames []string) ([]string, error)
	CreatePickListsByWarehouse(ctx context.Context, actor, salesOrder string) ([]string, error)
	CreatePickListForWarehouse(ctx context.Context, actor, salesOrder, warehouse string) (string, error)
	MoveToDefaultWarehouse(ctx context.Context, purchaseReceipt string) (string, error)
	SavePickList(ctx context.Context, actor string, pl *domain.PickList) error
}

// NotificationReader serves the recipient-facing notification read model.
type NotificationReader interface {
	ListByUser(ctx context.Context, user string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// Handler is the thin HTTP layer over the fulfillment and notification
// services.
type Handler struct {
	fulfillment   FulfillmentService
	notifications NotificationReader
	logger        *slog.Logger
}

func NewHandler(fulfillment FulfillmentService, notifications NotificationReader, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{fulfillment: fulfillment, notifications: notifications, logger: logger}
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type createPickListsRequest struct {
	SalesOrder string `json:"sales_order"`
}

func (h *Handler) handleCreatePickLists(w http.ResponseWriter, r *http.Request) {
	var req createPickListsRequest
	if !decode(w, r, &req) {
		return
	}
	if req.SalesOrder == "" {
		writeError(w, domain.Validationf("sales_order is required"))
		return
	}
	names, err := h.fulfillment.CreatePickListsByWarehouse(r.Context(), actor(r), req.SalesOrder)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"pick_lists": names})
}

type createPickListSingleRequest struct {
	SalesOrder string `json:"sales_order"`
	Warehouse  string `json:"warehouse"`
}

func (h *Handler) handleCreatePickListSingle(w http.ResponseWriter, r *http.Request) {
	var req createPickListSingleRequest
	if !decode(w, r, &req) {
		return
	}
	if req.SalesOrder == "" || req.Warehouse == "" {
		writeError(w, domain.Validationf("sales_order and warehouse are required"))
		return
	}
	name, err := h.fulfillment.CreatePickListForWarehouse(r.Context(), actor(r), req.SalesOrder, req.Warehouse)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"pick_list": name})
}

type createDeliveryNotesRequest struct {
	PickLists []string `json:"pick_lists"`
}

func (h *Handler) handleCreateDeliveryNotes(w http.ResponseWriter, r *http.Request) {
	var req createDeliveryNotesRequest
	if !decode(w, r, &req) {
		return
	}
	names, err := h.fulfillment.CreateDeliveryNotes(r.Context(), req.PickLists)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"delivery_notes": names})
}

type moveToDefaultRequest struct {
	PurchaseReceipt string `json:"purchase_receipt"`
}

func (h *Handler) handleMoveToDefault(w http.ResponseWriter, r *http.Request) {
	var req moveToDefaultRequest
	if !decode(w, r, &req) {
		return
	}
	if req.PurchaseReceipt == "" {
		writeError(w, domain.Validationf("purchase_receipt is required"))
		return
	}
	name, err := h.fulfillment.MoveToDefaultWarehouse(r.Context(), req.PurchaseReceipt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"stock_entry": name})
}

type pickListLocationPayload struct {
	RowName          string  `json:"row_name"`
	ItemCode         string  `json:"item_code"`
	ItemName         string  `json:"item_name"`
	Description      string  `json:"description"`
	UOM              string  `json:"uom"`
	ConversionFactor float64 `json:"conversion_factor"`
	Qty              float64 `json:"qty"`
	StockQty         float64 `json:"stock_qty"`
	PickedQty        float64 `json:"picked_qty"`
	Warehouse        string  `json:"warehouse"`
	SalesOrder       string  `json:"sales_order"`
	SalesOrderItem   string  `json:"sales_order_item"`
}

type savePickListRequest struct {
	Owner           string                    `json:"owner"`
	Purpose         string                    `json:"purpose"`
	SalesOrder      string                    `json:"sales_order"`
	ParentWarehouse string                    `json:"parent_warehouse"`
	PickManually    bool                      `json:"pick_manually"`
	DocStatus       int                       `json:"docstatus"`
	Locations       []pickListLocationPayload `json:"locations"`
}

func (h *Handler) handleSavePickList(w http.ResponseWriter, r *http.Request) {
	var req savePickListRequest
	if !decode(w, r, &req) {
		return
	}

	pl := &domain.PickList{
		Name:            chi.URLParam(r, "name"),
		Owner:           req.Owner,
		Purpose:         req.Purpose,
		SalesOrder:      req.SalesOrder,
		ParentWarehouse: req.ParentWarehouse,
		PickManually:    req.PickManually,
		DocStatus:       domain.DocStatus(req.DocStatus),
	}
	for _, loc := range req.Locations {
		pl.Locations = append(pl.Locations, domain.PickListLocation(loc))
	}

	if err := h.fulfillment.SavePickList(r.Context(), actor(r), pl); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": pl.Name})
}

func (h *Handler) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	if user == "" {
		user = actor(r)
	}
	if user == "" {
		writeError(w, domain.Validationf("user is required"))
		return
	}
	notifications, err := h.notifications.ListByUser(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notifications": notifications})
}

func (h *Handler) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.notifications.MarkRead(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func actor(r *http.Request) string {
	return r.Header.Get(actorHeader)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError centralizes domain error translation to HTTP responses.
// Validation failures present their message verbatim.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"
	switch {
	case domain.IsValidation(err):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, sentinel.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
