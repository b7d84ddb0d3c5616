package billboard

import (
	"net/http"

	"github.com/georgemunganga/storefront-admin/internal/modules/identity"
	"github.com/georgemunganga/storefront-admin/internal/platform/httpx"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler exposes billboard HTTP endpoints.
type Handler struct {
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/{storeId}/billboards", h.create)
	r.Get("/api/{storeId}/billboards", h.list)
	r.Get("/api/{storeId}/billboards/{billboardId}", h.get)
	r.Patch("/api/{storeId}/billboards/{billboardId}", h.update)
	r.Delete("/api/{storeId}/billboards/{billboardId}", h.delete)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req BillboardRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, h.log, "BILLBOARDS_POST", err)
		return
	}
	b, err := h.service.Create(r.Context(), identity.UserID(r.Context()), chi.URLParam(r, "storeId"), req)
	if err != nil {
		httpx.Error(w, r, h.log, "BILLBOARDS_POST", err)
		return
	}
	httpx.Respond(w, http.StatusOK, b)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	billboards, err := h.service.List(r.Context(), chi.URLParam(r, "storeId"))
	if err != nil {
		httpx.Error(w, r, h.log, "BILLBOARDS_GET", err)
		return
	}
	httpx.Respond(w, http.StatusOK, billboards)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), chi.URLParam(r, "storeId"), chi.URLParam(r, "billboardId"))
	if err != nil {
		httpx.Error(w, r, h.log, "BILLBOARD_GET", err)
		return
	}
	httpx.Respond(w, http.StatusOK, b)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req BillboardRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, h.log, "BILLBOARD_PATCH", err)
		return
	}
	b, err := h.service.Update(r.Context(), identity.UserID(r.Context()),
		chi.URLParam(r, "storeId"), chi.URLParam(r, "billboardId"), req)
	if err != nil {
		httpx.Error(w, r, h.log, "BILLBOARD_PATCH", err)
		return
	}
	httpx.Respond(w, http.StatusOK, b)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Delete(r.Context(), identity.UserID(r.Context()),
		chi.URLParam(r, "storeId"), chi.URLParam(r, "billboardId"))
	if err != nil {
		httpx.Error(w, r, h.log, "BILLBOARD_DELETE", err)
		return
	}
	httpx.Respond(w, http.StatusOK, b)
}
