package cart_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/shopspring/decimal"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeIdentity struct {
	mu      sync.Mutex
	userID  string
	logouts int
}

func (i *fakeIdentity) UserID() (string, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.userID, i.userID != ""
}

func (i *fakeIdentity) Login(userID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.userID = userID
}

func (i *fakeIdentity) Logout(context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.userID = ""
	i.logouts++
	return nil
}

type fakeServer struct {
	mu     sync.Mutex
	cart   domain.Cart
	puts   []domain.Cart
	putErr error
	getErr error

	// when set, PutCart signals entered and waits for release
	entered chan struct{}
	release chan struct{}
}

func (s *fakeServer) GetCart(context.Context) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.getErr != nil {
		return domain.Cart{}, s.getErr
	}
	return s.cart.Clone(), nil
}

func (s *fakeServer) PutCart(_ context.Context, cart domain.Cart) error {
	s.mu.Lock()
	entered, release := s.entered, s.release
	s.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
		<-release
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.puts = append(s.puts, cart)
	if s.putErr != nil {
		return s.putErr
	}
	s.cart = cart.Clone()
	return nil
}

func (s *fakeServer) Puts() []domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.Cart(nil), s.puts...)
}

type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) { return "", false, errors.New("disk full") }
func (failingStore) Set(string, string) error         { return errors.New("disk full") }
func (failingStore) Remove(string) error              { return errors.New("disk full") }

type fakeCheckout struct {
	summaries []string
	err       error
	// during runs inside Handoff, e.g. to mutate the cart concurrently.
	during func()
}

func (c *fakeCheckout) Handoff(_ context.Context, summary string) error {
	if c.during != nil {
		c.during()
	}
	if c.err != nil {
		return c.err
	}
	c.summaries = append(c.summaries, summary)
	return nil
}

type fakeHistory struct {
	carts []domain.Cart
	err   error
}

func (h *fakeHistory) RecordPurchase(_ context.Context, cart domain.Cart, _ string) error {
	if h.err != nil {
		return h.err
	}
	h.carts = append(h.carts, cart)
	return nil
}

func info(name, price string) domain.ProductInfo {
	return domain.ProductInfo{
		Name:     name,
		Price:    domain.NewBRL(decimal.RequireFromString(price)),
		Category: "Roupas",
	}
}
