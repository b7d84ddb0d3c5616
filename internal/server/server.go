// Package server assembles the HTTP router from the module handlers.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/georgemunganga/storefront-admin/internal/modules/billboard"
	"github.com/georgemunganga/storefront-admin/internal/modules/category"
	"github.com/georgemunganga/storefront-admin/internal/modules/identity"
	"github.com/georgemunganga/storefront-admin/internal/modules/landing"
	"github.com/georgemunganga/storefront-admin/internal/modules/order"
	"github.com/georgemunganga/storefront-admin/internal/modules/product"
	"github.com/georgemunganga/storefront-admin/internal/modules/store"
	"github.com/georgemunganga/storefront-admin/internal/modules/theme"
	"github.com/georgemunganga/storefront-admin/internal/platform/httpx"
	"github.com/georgemunganga/storefront-admin/internal/platform/metrics"
	"github.com/georgemunganga/storefront-admin/internal/platform/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// Deps are the shared resources the router is built from.
type Deps struct {
	DB       *sqlx.DB
	Verifier *identity.Verifier
	Limiter  *middleware.RateLimiter
	Logger   *zap.Logger
}

// NewRouter wires every module onto a chi router. Routes under /api pass
// through the rate limiter after the caller has been identified.
func NewRouter(d Deps) http.Handler {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Recoverer)
	router.Use(middleware.Observe(d.Logger))
	router.Use(d.Verifier.Middleware(d.Logger))

	router.Get("/health", health(d.DB))
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	// ── Stores & provisioning ───────────────────────────────
	landingRepo := landing.NewPostgresRepository(d.DB)
	themeRepo := theme.NewPostgresRepository(d.DB)
	storeService := store.NewService(store.NewPostgresRepository(d.DB, landingRepo, themeRepo))

	// ── Catalog ─────────────────────────────────────────────
	billboardRepo := billboard.NewPostgresRepository(d.DB)
	billboardService := billboard.NewService(billboardRepo, storeService)
	categoryService := category.NewService(category.NewPostgresRepository(d.DB), billboardRepo, storeService)
	productService := product.NewService(product.NewPostgresRepository(d.DB), storeService)

	// ── Orders & storefront settings ────────────────────────
	orderService := order.NewService(order.NewPostgresRepository(d.DB), storeService)
	landingService := landing.NewService(landingRepo, storeService)
	themeService := theme.NewService(themeRepo, storeService)

	router.Group(func(r chi.Router) {
		if d.Limiter != nil {
			r.Use(d.Limiter.Handler)
		}
		store.NewHandler(storeService, d.Logger).RegisterRoutes(r)
		billboard.NewHandler(billboardService, d.Logger).RegisterRoutes(r)
		category.NewHandler(categoryService, d.Logger).RegisterRoutes(r)
		product.NewHandler(productService, d.Logger).RegisterRoutes(r)
		order.NewHandler(orderService, d.Logger).RegisterRoutes(r)
		landing.NewHandler(landingService, d.Logger).RegisterRoutes(r)
		theme.NewHandler(themeService, d.Logger).RegisterRoutes(r)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Respond(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	})
	return router
}

func health(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			httpx.Respond(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		httpx.Respond(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
