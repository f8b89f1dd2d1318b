package port

import (
	"context"

	"github.com/nikolayk812/santos-store/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	// ReplaceCart swaps the whole cart for items atomically.
	ReplaceCart(ctx context.Context, ownerID string, items []domain.CartItem) error
}

// ServerCart is the remote copy of an authenticated user's cart.
type ServerCart interface {
	GetCart(ctx context.Context) (domain.Cart, error)
	PutCart(ctx context.Context, cart domain.Cart) error
}

// LocalStore is a small persistent key-value store on the client.
// Get reports false for a missing key.
type LocalStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Identity tells whether a user is logged in on the client and who it is.
type Identity interface {
	UserID() (string, bool)
}
