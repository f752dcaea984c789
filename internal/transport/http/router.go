package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires all public endpoints. The HTTP layer stays thin: handlers
// decode, delegate to services, and translate errors.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/pick-lists/from-sales-order", h.handleCreatePickLists)
		r.Post("/pick-lists/single-warehouse", h.handleCreatePickListSingle)
		r.Post("/pick-lists/{name}", h.handleSavePickList)
		r.Post("/delivery-notes/from-pick-lists", h.handleCreateDeliveryNotes)
		r.Post("/stock-entries/move-to-default", h.handleMoveToDefault)
		r.Get("/notifications", h.handleListNotifications)
		r.Post("/notifications/{id}/read", h.handleMarkNotificationRead)
	})

	return r
}
