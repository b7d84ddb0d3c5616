package category

import (
	"net/http"

	"github.com/georgemunganga/storefront-admin/internal/modules/identity"
	"github.com/georgemunganga/storefront-admin/internal/platform/httpx"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler exposes category HTTP endpoints.
type Handler struct {
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/{storeId}/categories", h.create)
	r.Get("/api/{storeId}/categories", h.list)
	r.Get("/api/{storeId}/categories/{categoryId}", h.get)
	r.Patch("/api/{storeId}/categories/{categoryId}", h.update)
	r.Delete("/api/{storeId}/categories/{categoryId}", h.delete)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, h.log, "CATEGORIES_POST", err)
		return
	}
	c, err := h.service.Create(r.Context(), identity.UserID(r.Context()), chi.URLParam(r, "storeId"), req)
	if err != nil {
		httpx.Error(w, r, h.log, "CATEGORIES_POST", err)
		return
	}
	httpx.Respond(w, http.StatusOK, c)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context(), chi.URLParam(r, "storeId"))
	if err != nil {
		httpx.Error(w, r, h.log, "CATEGORIES_GET", err)
		return
	}
	httpx.Respond(w, http.StatusOK, categories)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(r.Context(), chi.URLParam(r, "storeId"), chi.URLParam(r, "categoryId"))
	if err != nil {
		httpx.Error(w, r, h.log, "CATEGORY_GET", err)
		return
	}
	httpx.Respond(w, http.StatusOK, c)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, h.log, "CATEGORY_PATCH", err)
		return
	}
	c, err := h.service.Update(r.Context(), identity.UserID(r.Context()),
		chi.URLParam(r, "storeId"), chi.URLParam(r, "categoryId"), req)
	if err != nil {
		httpx.Error(w, r, h.log, "CATEGORY_PATCH", err)
		return
	}
	httpx.Respond(w, http.StatusOK, c)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Delete(r.Context(), identity.UserID(r.Context()),
		chi.URLParam(r, "storeId"), chi.URLParam(r, "categoryId"))
	if err != nil {
		httpx.Error(w, r, h.log, "CATEGORY_DELETE", err)
		return
	}
	httpx.Respond(w, http.StatusOK, c)
}
