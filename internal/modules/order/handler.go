package order

import (
	"net/http"

	"github.com/georgemunganga/storefront-admin/internal/modules/identity"
	"github.com/georgemunganga/storefront-admin/internal/platform/httpx"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler exposes order HTTP endpoints.
type Handler struct {
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/stores/{storeId}/orders", h.list)
	r.Delete("/api/stores/{storeId}/orders", h.deleteAll)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context(), identity.UserID(r.Context()), chi.URLParam(r, "storeId"))
	if err != nil {
		httpx.Error(w, r, h.log, "ORDERS_GET", err)
		return
	}
	httpx.Respond(w, http.StatusOK, orders)
}

func (h *Handler) deleteAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.DeleteAll(r.Context(), identity.UserID(r.Context()), chi.URLParam(r, "storeId"))
	if err != nil {
		httpx.Error(w, r, h.log, "ORDERS_DELETE", err)
		return
	}
	h.log.Info("orders deleted", zap.String("store_id", chi.URLParam(r, "storeId")), zap.Int64("count", res.Count))
	httpx.Respond(w, http.StatusOK, res)
}
