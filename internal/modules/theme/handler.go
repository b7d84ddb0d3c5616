package theme

import (
	"net/http"

	"github.com/georgemunganga/storefront-admin/internal/modules/identity"
	"github.com/georgemunganga/storefront-admin/internal/platform/httpx"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler exposes theme HTTP endpoints.
type Handler struct {
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/{storeId}/theme", h.create)
	r.Get("/api/{storeId}/theme", h.list)
	r.Patch("/api/{storeId}/theme", h.update)
	r.Delete("/api/{storeId}/theme", h.delete)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req ColorsRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, h.log, "THEME_POST", err)
		return
	}
	t, err := h.service.Create(r.Context(), identity.UserID(r.Context()), chi.URLParam(r, "storeId"), req)
	if err != nil {
		httpx.Error(w, r, h.log, "THEME_POST", err)
		return
	}
	httpx.Respond(w, http.StatusOK, t)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	themes, err := h.service.List(r.Context(), chi.URLParam(r, "storeId"))
	if err != nil {
		httpx.Error(w, r, h.log, "THEME_GET", err)
		return
	}
	httpx.Respond(w, http.StatusOK, themes)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req ColorsRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, h.log, "THEME_PATCH", err)
		return
	}
	t, err := h.service.Update(r.Context(), identity.UserID(r.Context()), chi.URLParam(r, "storeId"), req)
	if err != nil {
		httpx.Error(w, r, h.log, "THEME_PATCH", err)
		return
	}
	httpx.Respond(w, http.StatusOK, t)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.Delete(r.Context(), identity.UserID(r.Context()), chi.URLParam(r, "storeId"))
	if err != nil {
		httpx.Error(w, r, h.log, "THEME_DELETE", err)
		return
	}
	httpx.Respond(w, http.StatusOK, t)
}
