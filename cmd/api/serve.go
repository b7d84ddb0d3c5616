package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/georgemunganga/storefront-admin/internal/config"
	"github.com/georgemunganga/storefront-admin/internal/modules/identity"
	"github.com/georgemunganga/storefront-admin/internal/platform/database"
	"github.com/georgemunganga/storefront-admin/internal/platform/middleware"
	"github.com/georgemunganga/storefront-admin/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const limiterCleanupInterval = 5 * time.Minute

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, opts)
		},
	}
}

func serve(ctx context.Context, opts *rootOptions) error {
	log := opts.logger
	cfg, err := config.Load(opts.envFiles...)
	if err != nil {
		return err
	}

	db, err := database.Open(ctx, cfg.DatabaseURL, database.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("connected to database")

	verifier, err := identity.NewVerifier(identity.Config{
		PublicKeyPEM: cfg.AuthPublicKeyPEM,
		HMACSecret:   cfg.AuthHMACSecret,
		Issuer:       cfg.AuthIssuer,
	})
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, identity.KeyFunc, log)
	limiter.StartCleanup(ctx, limiterCleanupInterval)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: server.NewRouter(server.Deps{
			DB:       db,
			Verifier: verifier,
			Limiter:  limiter,
			Logger:   log,
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("storefront admin API starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
