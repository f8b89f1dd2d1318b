package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nikolayk812/santos-store/internal/domain"
	"go.uber.org/zap"
)

func runLogin(ctx context.Context, a *app, args []string) error {
	pass := password
	if pass == "" {
		pass = os.Getenv("SANTOS_PASSWORD")
	}
	if pass == "" {
		return fmt.Errorf("password is required (--password or SANTOS_PASSWORD)")
	}

	user, err := a.client.Login(ctx, args[0], pass)
	if err != nil {
		return fmt.Errorf("client.Login: %w", err)
	}

	name := strings.Fields(user.Name)
	firstName := ""
	if len(name) > 0 {
		firstName = name[0]
	}
	a.engine.SetCustomerName(firstName)

	if err := a.saveSession(firstName); err != nil {
		a.logger.Warn("session save failed", zap.Error(err))
	}

	if err := a.engine.SyncOnLogin(ctx); err != nil {
		a.logger.Warn("cart merge failed, keeping the local cart", zap.Error(err))
	}

	a.printf("Logged in as %s. Cart has %d item(s).\n", user.Email, a.engine.Count())
	return nil
}

func runLogout(ctx context.Context, a *app, _ []string) error {
	if err := a.engine.SyncNow(ctx); err != nil {
		a.logger.Warn("cart sync before logout failed", zap.Error(err))
	}

	logoutErr := a.engine.Logout(ctx)
	if err := a.store.Remove(sessionKey); err != nil {
		a.logger.Warn("session remove failed", zap.Error(err))
	}
	if logoutErr != nil {
		return logoutErr
	}

	a.printf("Logged out. The local cart was kept.\n")
	return nil
}

func runProducts(ctx context.Context, a *app, _ []string) error {
	products, err := a.client.ListProducts(ctx, category)
	if err != nil {
		return fmt.Errorf("client.ListProducts: %w", err)
	}

	for _, p := range products {
		a.printf("%s  %-30s %-12s %s\n", p.ID, p.Name, p.Category, p.Price)
	}
	return nil
}

func runAdd(ctx context.Context, a *app, args []string) error {
	quantity := 1
	if len(args) == 2 {
		q, err := parseQuantity(args[1])
		if err != nil {
			return err
		}
		quantity = q
	}

	product, err := a.client.GetProduct(ctx, args[0])
	if err != nil {
		return fmt.Errorf("client.GetProduct: %w", err)
	}

	if err := a.engine.AddMultiple(product.ID, quantity, product.Info()); err != nil {
		if errors.Is(err, domain.ErrLoginRequired) {
			return fmt.Errorf("log in first: santos-cart login <email>")
		}
		return err
	}

	a.printf("Added %d x %s. Cart has %d item(s).\n", quantity, product.Name, a.engine.Count())
	return nil
}

func runRemove(_ context.Context, a *app, args []string) error {
	a.engine.Remove(args[0])
	a.printf("Cart has %d item(s).\n", a.engine.Count())
	return nil
}

func runSet(_ context.Context, a *app, args []string) error {
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("quantity %q is not a number", args[1])
	}
	if quantity > domain.MaxQuantity {
		return fmt.Errorf("quantity must not exceed %d", domain.MaxQuantity)
	}

	a.engine.SetQuantity(args[0], quantity)
	a.printf("Cart has %d item(s).\n", a.engine.Count())
	return nil
}

func runList(_ context.Context, a *app, _ []string) error {
	items := a.engine.Items()
	if len(items) == 0 {
		a.printf("Cart is empty.\n")
		return nil
	}

	for _, item := range items {
		a.printf("%-36s %3d x %-30s %s\n", item.ProductID, item.Quantity, item.Name, item.Price.Mul(item.Quantity))
	}
	a.printf("Total: %s (%d item(s))\n", a.engine.Total(), a.engine.Count())
	return nil
}

func runClear(_ context.Context, a *app, _ []string) error {
	a.engine.Clear()
	a.printf("Cart is empty.\n")
	return nil
}

func runSync(ctx context.Context, a *app, _ []string) error {
	if err := a.engine.SyncOnLogin(ctx); err != nil {
		return fmt.Errorf("engine.SyncOnLogin: %w", err)
	}

	a.printf("Synced. Cart has %d item(s).\n", a.engine.Count())
	return nil
}

func runCheckout(ctx context.Context, a *app, _ []string) error {
	summary, err := a.engine.Checkout(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			return fmt.Errorf("cart is empty")
		}
		return err
	}

	a.printf("\n%s\n", summary)
	return nil
}

func runPurchases(ctx context.Context, a *app, _ []string) error {
	purchases, err := a.client.ListPurchases(ctx)
	if err != nil {
		return fmt.Errorf("client.ListPurchases: %w", err)
	}

	for _, p := range purchases {
		a.printf("%s  %s  %s %s  %d line(s)\n", p.CreatedAt.Format("2006-01-02 15:04"), p.ID, p.Currency, p.Total, len(p.Items))
	}
	return nil
}

func parseQuantity(raw string) (int, error) {
	q, err := strconv.Atoi(raw)
	if err != nil || q < 1 || q > domain.MaxQuantity {
		return 0, fmt.Errorf("quantity must be between 1 and %d, got %q", domain.MaxQuantity, raw)
	}
	return q, nil
}
