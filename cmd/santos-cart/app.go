package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/nikolayk812/santos-store/internal/adapter/localstore"
	"github.com/nikolayk812/santos-store/internal/adapter/storeclient"
	"github.com/nikolayk812/santos-store/internal/adapter/whatsapp"
	"github.com/nikolayk812/santos-store/internal/cart"
	"github.com/nikolayk812/santos-store/internal/config"
	"github.com/nikolayk812/santos-store/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const sessionKey = "santos.session"

// savedSession is persisted next to the cart so later invocations stay logged in.
type savedSession struct {
	storeclient.Session
	Name string `json:"name"`
}

type app struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *localstore.SQLite
	client *storeclient.Client
	engine *cart.Engine
	out    io.Writer
}

func withApp(run func(ctx context.Context, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close(cmd.Context())

		return run(cmd.Context(), a, args)
	}
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("logging.New: %w", err)
	}

	store, err := localstore.OpenSQLite(cfg.Client.LocalDBPath)
	if err != nil {
		return nil, fmt.Errorf("localstore.OpenSQLite: %w", err)
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
		store:  store,
		client: storeclient.New(cfg.Client),
		out:    cmd.OutOrStdout(),
	}
	name := a.restoreSession()

	opts := []cart.Option{
		cart.WithDebounce(cfg.Client.SyncDebounce),
		cart.WithLogger(logger.Named("cart")),
	}
	if cfg.WhatsApp.StorePhone != "" {
		handoff, err := whatsapp.NewLinkHandoff(cfg.WhatsApp.StorePhone, a.printLink)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("whatsapp.NewLinkHandoff: %w", err)
		}
		opts = append(opts, cart.WithCheckout(handoff, a.client))
	}

	engine, err := cart.New(store, a.client, a.client, opts...)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("cart.New: %w", err)
	}
	engine.SetCustomerName(name)
	a.engine = engine

	return a, nil
}

// close pushes whatever the debounce window still holds before the process exits.
func (a *app) close(ctx context.Context) {
	if err := a.engine.SyncNow(ctx); err != nil {
		a.logger.Warn("final cart sync failed", zap.Error(err))
	}
	if err := a.store.Close(); err != nil {
		a.logger.Warn("local store close failed", zap.Error(err))
	}
	_ = a.logger.Sync()
}

func (a *app) restoreSession() string {
	raw, found, err := a.store.Get(sessionKey)
	if err != nil {
		a.logger.Warn("session read failed", zap.Error(err))
		return ""
	}
	if !found {
		return ""
	}

	var saved savedSession
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		a.logger.Warn("saved session is corrupt, ignoring", zap.Error(err))
		return ""
	}

	a.client.SetSession(saved.Session)
	return saved.Name
}

func (a *app) saveSession(name string) error {
	data, err := json.Marshal(savedSession{Session: a.client.Session(), Name: name})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := a.store.Set(sessionKey, string(data)); err != nil {
		return fmt.Errorf("store.Set: %w", err)
	}
	return nil
}

func (a *app) printLink(link string) error {
	_, err := fmt.Fprintf(a.out, "Open this link to send your order:\n%s\n", link)
	return err
}

func (a *app) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
