// Package storeclient is the HTTP client of the store API used by the cart CLI.
package storeclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/nikolayk812/santos-store/internal/api/schema"
	"github.com/nikolayk812/santos-store/internal/config"
	"github.com/nikolayk812/santos-store/internal/domain"
)

// Session is what the client needs to act on behalf of a user.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

type Client struct {
	http *resty.Client

	mu      sync.RWMutex
	session Session
}

func New(cfg config.ClientConfig) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}

	return &Client{http: rc}
}

// UserID reports the logged in user, if any.
func (c *Client) UserID() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.session.UserID, c.session.Token != ""
}

func (c *Client) Session() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.session
}

// SetSession restores a session saved by a previous run.
func (c *Client) SetSession(session Session) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = session
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session.Token != "" {
		req.SetAuthToken(c.session.Token)
	}
	return req
}

func (c *Client) Login(ctx context.Context, email, password string) (schema.User, error) {
	var result schema.LoginResponse
	resp, err := c.request(ctx).
		SetBody(schema.LoginRequest{Email: email, Password: password}).
		SetResult(&result).
		SetError(&schema.ErrorResponse{}).
		Post("/api/auth/login")
	if err := check(resp, err); err != nil {
		return schema.User{}, err
	}

	c.SetSession(Session{Token: result.Token, UserID: result.User.ID})
	return result.User, nil
}

// Logout ends the server session. The local session is dropped even when the call fails.
func (c *Client) Logout(ctx context.Context) error {
	if _, ok := c.UserID(); !ok {
		return nil
	}

	resp, err := c.request(ctx).
		SetError(&schema.ErrorResponse{}).
		Post("/api/auth/logout")
	c.SetSession(Session{})

	return check(resp, err)
}

func (c *Client) GetCart(ctx context.Context) (domain.Cart, error) {
	var result schema.Cart
	resp, err := c.request(ctx).
		SetResult(&result).
		SetError(&schema.ErrorResponse{}).
		Get("/api/cart")
	if err := check(resp, err); err != nil {
		return domain.Cart{}, err
	}

	items, err := schema.CartItemsToDomain(result.Items)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("schema.CartItemsToDomain: %w", err)
	}

	userID, _ := c.UserID()
	return domain.Cart{OwnerID: userID, Items: items}, nil
}

func (c *Client) PutCart(ctx context.Context, cart domain.Cart) error {
	resp, err := c.request(ctx).
		SetBody(schema.CartFromDomain(cart)).
		SetError(&schema.ErrorResponse{}).
		Put("/api/cart")
	return check(resp, err)
}

func (c *Client) RecordPurchase(ctx context.Context, cart domain.Cart, summary string) error {
	resp, err := c.request(ctx).
		SetBody(schema.PurchaseRequest{Items: schema.CartItemsFromDomain(cart.Items), Summary: summary}).
		SetError(&schema.ErrorResponse{}).
		Post("/api/purchases")
	return check(resp, err)
}

func (c *Client) ListPurchases(ctx context.Context) ([]schema.Purchase, error) {
	var result []schema.Purchase
	resp, err := c.request(ctx).
		SetResult(&result).
		SetError(&schema.ErrorResponse{}).
		Get("/api/purchases")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	var result []schema.Product
	req := c.request(ctx).
		SetResult(&result).
		SetError(&schema.ErrorResponse{})
	if category != "" {
		req.SetQueryParam("category", category)
	}

	resp, err := req.Get("/api/products")
	if err := check(resp, err); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(result))
	for _, p := range result {
		product, err := p.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("p.ToDomain: %w", err)
		}
		products = append(products, product)
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	var result schema.Product
	resp, err := c.request(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		SetError(&schema.ErrorResponse{}).
		Get("/api/products/{id}")
	if err := check(resp, err); err != nil {
		return domain.Product{}, err
	}

	product, err := result.ToDomain()
	if err != nil {
		return domain.Product{}, fmt.Errorf("result.ToDomain: %w", err)
	}
	return product, nil
}

// check turns transport failures and error statuses into errors, mapping the
// statuses the cart engine reacts to onto domain errors.
func check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("http: %w", err)
	}
	if !resp.IsError() {
		return nil
	}

	message := http.StatusText(resp.StatusCode())
	if body, ok := resp.Error().(*schema.ErrorResponse); ok && body.Error != "" {
		message = body.Error
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", message, domain.ErrLoginRequired)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", message, domain.ErrNotFound)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w", message, domain.ErrTooManyAttempts)
	}

	return errors.New(message)
}
