// Package cart is the client side cart: local-first, synced to the store in the background.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nikolayk812/santos-store/internal/api/schema"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/port"
	"go.uber.org/zap"
)

const (
	DefaultStorageKey = "santos.cart"
	DefaultDebounce   = 500 * time.Millisecond
)

// Engine owns one cart. Every mutation is written to the local store right
// away and, for a logged in user, pushed to the server after the debounce window.
type Engine struct {
	store    port.LocalStore
	server   port.ServerCart
	identity port.Identity
	checkout port.CheckoutChannel
	history  port.PurchaseLog
	logger   *zap.Logger

	now        func() time.Time
	debounce   time.Duration
	storageKey string

	mu       sync.Mutex
	cart     domain.Cart
	customer string
	sync     debouncer
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithDebounce(d time.Duration) Option {
	return func(e *Engine) { e.debounce = d }
}

func WithStorageKey(key string) Option {
	return func(e *Engine) { e.storageKey = key }
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithCheckout sets where Checkout hands the order over and where it records it.
// history may be nil.
func WithCheckout(channel port.CheckoutChannel, history port.PurchaseLog) Option {
	return func(e *Engine) {
		e.checkout = channel
		e.history = history
	}
}

// New builds an engine and loads the cart persisted in store, if any.
func New(store port.LocalStore, server port.ServerCart, identity port.Identity, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("store is nil")
	}
	if server == nil {
		return nil, fmt.Errorf("server is nil")
	}
	if identity == nil {
		return nil, fmt.Errorf("identity is nil")
	}

	e := &Engine{
		store:      store,
		server:     server,
		identity:   identity,
		logger:     zap.NewNop(),
		now:        time.Now,
		debounce:   DefaultDebounce,
		storageKey: DefaultStorageKey,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.debounce <= 0 {
		return nil, fmt.Errorf("debounce must be positive")
	}

	e.cart = e.load()
	return e, nil
}

// SetCustomerName is used to greet the store in the checkout summary.
func (e *Engine) SetCustomerName(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.customer = name
}

// Add puts one unit of productID in the cart.
func (e *Engine) Add(productID string, info domain.ProductInfo) error {
	return e.AddMultiple(productID, 1, info)
}

// AddMultiple puts quantity units of productID in the cart. Adding requires a
// logged in user, domain.ErrLoginRequired tells the caller to send them to login.
func (e *Engine) AddMultiple(productID string, quantity int, info domain.ProductInfo) error {
	if _, ok := e.identity.UserID(); !ok {
		return domain.ErrLoginRequired
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.cart.Add(productID, quantity, info, e.now().UTC()); err != nil {
		return err
	}
	e.changedLocked()
	return nil
}

// Remove is idempotent.
func (e *Engine) Remove(productID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cart.Remove(productID) {
		e.changedLocked()
	}
}

// SetQuantity overwrites the quantity of a line already in the cart, a
// quantity <= 0 removes it. Unknown products are ignored.
func (e *Engine) SetQuantity(productID string, quantity int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cart.SetQuantity(productID, quantity) {
		e.changedLocked()
	}
}

func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.clearLocked()
}

func (e *Engine) clearLocked() {
	e.cart.Clear()
	e.changedLocked()
}

func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cart.Count()
}

func (e *Engine) Total() domain.Money {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cart.Total()
}

// Items returns a snapshot of the cart lines.
func (e *Engine) Items() []domain.CartItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cart.Clone().Items
}

// SyncOnLogin merges the server cart into the local one right after login.
// Server lines for products missing locally are adopted, local lines always
// win. The merged cart is persisted and pushed back to the server.
func (e *Engine) SyncOnLogin(ctx context.Context) error {
	userID, ok := e.identity.UserID()
	if !ok {
		return domain.ErrLoginRequired
	}

	remote, err := e.server.GetCart(ctx)
	if err != nil {
		return fmt.Errorf("server.GetCart: %w", err)
	}

	e.mu.Lock()
	adopted := e.cart.MergeMissing(remote)
	e.cart.OwnerID = userID
	e.persistLocked()
	snapshot := e.cart.Clone()
	e.sync.reset()
	e.mu.Unlock()

	e.logger.Debug("cart merged", zap.Int("adopted", adopted), zap.Int("lines", len(snapshot.Items)))

	if err := e.server.PutCart(ctx, snapshot); err != nil {
		e.logger.Warn("cart push after login failed", zap.Error(err))

		e.mu.Lock()
		e.sync.schedule(e.now(), e.debounce)
		e.mu.Unlock()
	}

	return nil
}

// Checkout hands the rendered order to the checkout channel, records it in the
// purchase history and takes the ordered lines out of the cart. Changes made
// while the handoff runs stay in the cart. Nothing is removed when the handoff fails.
func (e *Engine) Checkout(ctx context.Context) (string, error) {
	if e.checkout == nil {
		return "", fmt.Errorf("checkout channel is not configured")
	}

	e.mu.Lock()
	snapshot := e.cart.Clone()
	customer := e.customer
	e.mu.Unlock()

	if len(snapshot.Items) == 0 {
		return "", domain.ErrEmptyCart
	}

	summary := domain.OrderSummary(customer, snapshot)
	if err := e.checkout.Handoff(ctx, summary); err != nil {
		return "", fmt.Errorf("checkout.Handoff: %w", err)
	}

	if _, ok := e.identity.UserID(); ok && e.history != nil {
		if err := e.history.RecordPurchase(ctx, snapshot, summary); err != nil {
			e.logger.Warn("purchase history record failed", zap.Error(err))
		}
	}

	e.mu.Lock()
	if e.cart.Subtract(snapshot.Items) {
		e.changedLocked()
	}
	e.mu.Unlock()

	return summary, nil
}

// Logout drops any pending sync and ends the session. The local cart is kept.
func (e *Engine) Logout(ctx context.Context) error {
	e.mu.Lock()
	e.sync.reset()
	e.customer = ""
	e.mu.Unlock()

	if s, ok := e.identity.(interface{ Logout(context.Context) error }); ok {
		if err := s.Logout(ctx); err != nil {
			return fmt.Errorf("identity.Logout: %w", err)
		}
	}

	return nil
}

// changedLocked runs after every mutation.
func (e *Engine) changedLocked() {
	e.persistLocked()

	if _, ok := e.identity.UserID(); ok {
		e.sync.schedule(e.now(), e.debounce)
	}
}

// persistLocked writes the whole cart under one key. Failures are logged, the
// in-memory cart stays authoritative.
func (e *Engine) persistLocked() {
	data, err := json.Marshal(schema.CartFromDomain(e.cart))
	if err != nil {
		e.logger.Warn("cart encode failed", zap.Error(err))
		return
	}

	if err := e.store.Set(e.storageKey, string(data)); err != nil {
		e.logger.Warn("cart local write failed", zap.Error(err))
	}
}

func (e *Engine) load() domain.Cart {
	var cart domain.Cart
	if userID, ok := e.identity.UserID(); ok {
		cart.OwnerID = userID
	}

	raw, found, err := e.store.Get(e.storageKey)
	if err != nil {
		e.logger.Warn("cart local read failed", zap.Error(err))
		return cart
	}
	if !found {
		return cart
	}

	var stored schema.Cart
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		e.logger.Warn("stored cart is corrupt, starting empty", zap.Error(err))
		return cart
	}

	items, err := schema.CartItemsToDomain(stored.Items)
	if err == nil {
		loaded := domain.Cart{OwnerID: cart.OwnerID, Items: items}
		err = loaded.Validate()
		if err == nil {
			return loaded
		}
	}
	e.logger.Warn("stored cart is invalid, starting empty", zap.Error(err))
	return cart
}
