package product

import (
	"net/http"
	"strconv"

	"github.com/georgemunganga/storefront-admin/internal/modules/identity"
	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/georgemunganga/storefront-admin/internal/platform/httpx"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler exposes product HTTP endpoints.
type Handler struct {
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/{storeId}/products", h.create)
	r.Get("/api/{storeId}/products", h.list)
	r.Get("/api/{storeId}/products/{productId}", h.get)
	r.Patch("/api/{storeId}/products/{productId}", h.update)
	r.Delete("/api/{storeId}/products/{productId}", h.delete)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, h.log, "PRODUCTS_POST", err)
		return
	}
	p, err := h.service.Create(r.Context(), identity.UserID(r.Context()), chi.URLParam(r, "storeId"), req)
	if err != nil {
		httpx.Error(w, r, h.log, "PRODUCTS_POST", err)
		return
	}
	httpx.Respond(w, http.StatusOK, p)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		httpx.Error(w, r, h.log, "PRODUCTS_GET", err)
		return
	}
	products, err := h.service.List(r.Context(), chi.URLParam(r, "storeId"), f)
	if err != nil {
		httpx.Error(w, r, h.log, "PRODUCTS_GET", err)
		return
	}
	httpx.Respond(w, http.StatusOK, products)
}

// parseFilter reads the categoryId and isFeatured query parameters.
func parseFilter(r *http.Request) (ListFilter, error) {
	var f ListFilter
	q := r.URL.Query()
	if raw := q.Get("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, apperr.Validationf("categoryId is invalid")
		}
		f.CategoryID = &id
	}
	if raw := q.Get("isFeatured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return f, apperr.Validationf("isFeatured must be true or false")
		}
		f.IsFeatured = &v
	}
	return f, nil
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context(), chi.URLParam(r, "storeId"), chi.URLParam(r, "productId"))
	if err != nil {
		httpx.Error(w, r, h.log, "PRODUCT_GET", err)
		return
	}
	httpx.Respond(w, http.StatusOK, p)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, h.log, "PRODUCT_PATCH", err)
		return
	}
	p, err := h.service.Update(r.Context(), identity.UserID(r.Context()),
		chi.URLParam(r, "storeId"), chi.URLParam(r, "productId"), req)
	if err != nil {
		httpx.Error(w, r, h.log, "PRODUCT_PATCH", err)
		return
	}
	httpx.Respond(w, http.StatusOK, p)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Delete(r.Context(), identity.UserID(r.Context()),
		chi.URLParam(r, "storeId"), chi.URLParam(r, "productId"))
	if err != nil {
		httpx.Error(w, r, h.log, "PRODUCT_DELETE", err)
		return
	}
	httpx.Respond(w, http.StatusOK, p)
}
