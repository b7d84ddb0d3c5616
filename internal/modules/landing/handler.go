package landing

import (
	"net/http"

	"github.com/georgemunganga/storefront-admin/internal/modules/identity"
	"github.com/georgemunganga/storefront-admin/internal/platform/httpx"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler exposes landing HTTP endpoints.
type Handler struct {
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/stores/{storeId}/landing", h.create)
	r.Patch("/api/stores/{storeId}/landing", h.update)
	r.Get("/api/stores/{storeId}/landing", h.get)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	l, err := h.service.Create(r.Context(), identity.UserID(r.Context()), chi.URLParam(r, "storeId"))
	if err != nil {
		httpx.Error(w, r, h.log, "LANDING_POST", err)
		return
	}
	httpx.Respond(w, http.StatusOK, l)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, h.log, "LANDING_PATCH", err)
		return
	}
	l, err := h.service.Update(r.Context(), identity.UserID(r.Context()), chi.URLParam(r, "storeId"), req)
	if err != nil {
		httpx.Error(w, r, h.log, "LANDING_PATCH", err)
		return
	}
	httpx.Respond(w, http.StatusOK, l)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	l, err := h.service.Get(r.Context(), chi.URLParam(r, "storeId"))
	if err != nil {
		httpx.Error(w, r, h.log, "LANDING_GET", err)
		return
	}
	httpx.Respond(w, http.StatusOK, l)
}
