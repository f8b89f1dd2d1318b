package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/santos-store/internal/config"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/migrations"
	"github.com/nikolayk812/santos-store/internal/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const connectAttempts = 30

func initDB(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	poolCfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	for i := 0; i < connectAttempts; i++ {
		if err := pool.Ping(ctx); err == nil {
			logger.Info("connected to database")
			return pool, nil
		}
		logger.Info("waiting for database", zap.Int("attempt", i+1))

		select {
		case <-ctx.Done():
			pool.Close()
			return nil, ctx.Err()
		case <-time.After(time.Second):
		}
	}

	pool.Close()
	return nil, fmt.Errorf("database is not reachable after %d attempts", connectAttempts)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	pool, err := initDB(cmd.Context(), cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	applied, err := migrations.Apply(cmd.Context(), pool)
	if err != nil {
		return fmt.Errorf("migrations.Apply: %w", err)
	}

	logger.Info("migrations applied", zap.Strings("names", applied))
	return nil
}

func runPromote(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	email, err := domain.NormalizeEmail(args[0])
	if err != nil {
		return err
	}

	pool, err := initDB(cmd.Context(), cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	updated, err := repository.NewUser(pool).SetAdmin(cmd.Context(), email, !revoke)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("no user with e-mail %s", email)
	}

	logger.Info("admin rights changed", zap.String("email", email), zap.Bool("admin", !revoke))
	return nil
}
