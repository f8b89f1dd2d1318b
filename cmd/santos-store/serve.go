package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/santos-store/internal/adapter/mailer"
	"github.com/nikolayk812/santos-store/internal/adapter/viacep"
	"github.com/nikolayk812/santos-store/internal/adapter/whatsapp"
	"github.com/nikolayk812/santos-store/internal/api"
	"github.com/nikolayk812/santos-store/internal/migrations"
	"github.com/nikolayk812/santos-store/internal/port"
	"github.com/nikolayk812/santos-store/internal/repository"
	"github.com/nikolayk812/santos-store/internal/service"
	"github.com/nikolayk812/santos-store/internal/telemetry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	sessionPurgeInterval = time.Hour
	shutdownTimeout      = 15 * time.Second
)

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	shutdownTelemetry, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("telemetry.Init: %w", err)
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logger.Warn("telemetry shutdown failed", zap.Error(err))
		}
	}()

	pool, err := initDB(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if migrateFirst {
		applied, err := migrations.Apply(ctx, pool)
		if err != nil {
			return fmt.Errorf("migrations.Apply: %w", err)
		}
		logger.Info("migrations applied", zap.Strings("names", applied))
	}

	verification, err := service.NewVerification(
		repository.NewVerification(pool),
		whatsapp.New(cfg.WhatsApp),
		logger.Named("verification"),
		service.WithDebugCodes(cfg.Verification.DebugCodes),
	)
	if err != nil {
		return fmt.Errorf("service.NewVerification: %w", err)
	}

	auth, err := service.NewAuth(
		repository.NewUser(pool),
		repository.NewSession(pool),
		verification,
		service.AuthConfig{
			SessionTTL:    cfg.Auth.SessionTTL,
			LoginAttempts: cfg.Auth.LoginAttempts,
			LoginWindow:   cfg.Auth.LoginWindow,
			BcryptCost:    cfg.Auth.BcryptCost,
		},
		logger.Named("auth"),
	)
	if err != nil {
		return fmt.Errorf("service.NewAuth: %w", err)
	}

	carts, err := service.NewCart(repository.NewCart(pool))
	if err != nil {
		return fmt.Errorf("service.NewCart: %w", err)
	}

	catalog, err := service.NewCatalog(repository.NewProduct(pool))
	if err != nil {
		return fmt.Errorf("service.NewCatalog: %w", err)
	}

	banners, err := service.NewBanner(repository.NewBanner(pool))
	if err != nil {
		return fmt.Errorf("service.NewBanner: %w", err)
	}

	sendgrid, err := mailer.NewSendGrid(cfg.SendGrid, logger.Named("mailer"))
	if err != nil {
		return fmt.Errorf("mailer.NewSendGrid: %w", err)
	}
	var purchaseMailer port.Mailer
	if sendgrid != nil {
		purchaseMailer = sendgrid
	}

	purchases, err := service.NewPurchase(repository.NewPurchase(pool), purchaseMailer, logger.Named("purchase"))
	if err != nil {
		return fmt.Errorf("service.NewPurchase: %w", err)
	}

	address, err := service.NewAddress(viacep.New(cfg.ViaCEP))
	if err != nil {
		return fmt.Errorf("service.NewAddress: %w", err)
	}

	handler, err := api.NewHandler(api.Services{
		Verification: verification,
		Auth:         auth,
		Cart:         carts,
		Catalog:      catalog,
		Banner:       banners,
		Purchase:     purchases,
		Address:      address,
	}, logger.Named("api"))
	if err != nil {
		return fmt.Errorf("api.NewHandler: %w", err)
	}

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.NewRouter(handler, cfg.Server, cfg.Telemetry.ServiceName),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go purgeSessions(ctx, auth, logger)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}
	return nil
}

func purgeSessions(ctx context.Context, auth *service.AuthService, logger *zap.Logger) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := auth.PurgeExpiredSessions(ctx)
			if err != nil {
				logger.Warn("session purge failed", zap.Error(err))
				continue
			}
			logger.Debug("expired sessions purged", zap.Int64("count", purged))
		}
	}
}
