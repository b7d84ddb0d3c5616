package store

import (
	"net/http"

	"github.com/georgemunganga/storefront-admin/internal/modules/identity"
	"github.com/georgemunganga/storefront-admin/internal/platform/httpx"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler exposes store HTTP endpoints.
type Handler struct {
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/stores", h.create)
	r.Get("/api/stores", h.list)
	r.Get("/api/stores/{storeId}", h.get)
	r.Patch("/api/stores/{storeId}", h.update)
	r.Delete("/api/stores/{storeId}", h.delete)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req StoreRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, h.log, "STORES_POST", err)
		return
	}
	st, err := h.service.Create(r.Context(), identity.UserID(r.Context()), req)
	if err != nil {
		httpx.Error(w, r, h.log, "STORES_POST", err)
		return
	}
	h.log.Info("store provisioned", zap.String("store_id", st.ID.String()), zap.String("user_id", st.UserID))
	httpx.Respond(w, http.StatusOK, st)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	stores, err := h.service.List(r.Context(), identity.UserID(r.Context()))
	if err != nil {
		httpx.Error(w, r, h.log, "STORES_GET", err)
		return
	}
	httpx.Respond(w, http.StatusOK, stores)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.Get(r.Context(), chi.URLParam(r, "storeId"))
	if err != nil {
		httpx.Error(w, r, h.log, "STORE_GET", err)
		return
	}
	httpx.Respond(w, http.StatusOK, st)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req StoreRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, h.log, "STORE_PATCH", err)
		return
	}
	st, err := h.service.Update(r.Context(), identity.UserID(r.Context()), chi.URLParam(r, "storeId"), req)
	if err != nil {
		httpx.Error(w, r, h.log, "STORE_PATCH", err)
		return
	}
	httpx.Respond(w, http.StatusOK, st)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.Delete(r.Context(), identity.UserID(r.Context()), chi.URLParam(r, "storeId"))
	if err != nil {
		httpx.Error(w, r, h.log, "STORE_DELETE", err)
		return
	}
	httpx.Respond(w, http.StatusOK, st)
}
