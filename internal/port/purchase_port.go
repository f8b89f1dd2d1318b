package port

import (
	"context"

	"github.com/nikolayk812/santos-store/internal/domain"
)

type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase domain.Purchase) error
	ListPurchases(ctx context.Context, ownerID string) ([]domain.Purchase, error)
}

// PurchaseLog appends checkout records from the client.
type PurchaseLog interface {
	RecordPurchase(ctx context.Context, cart domain.Cart, summary string) error
}

// CheckoutChannel hands a rendered order over to the store, e.g. a WhatsApp chat.
type CheckoutChannel interface {
	Handoff(ctx context.Context, summary string) error
}
