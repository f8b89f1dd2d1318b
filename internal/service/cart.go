package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/port"
)

// CartService owns the server copy of authenticated users' carts.
type CartService struct {
	repo port.CartRepository
}

func NewCart(repo port.CartRepository) (*CartService, error) {
	if repo == nil {
		return nil, fmt.Errorf("repo is nil")
	}

	return &CartService{repo: repo}, nil
}

func (s *CartService) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("repo.GetCart: %w", err)
	}

	return cart, nil
}

// ReplaceCart stores a full client snapshot. Validation runs before the store is touched.
func (s *CartService) ReplaceCart(ctx context.Context, cart domain.Cart) error {
	if err := cart.Validate(); err != nil {
		return err
	}

	if err := s.repo.ReplaceCart(ctx, cart.OwnerID, cart.Items); err != nil {
		return fmt.Errorf("repo.ReplaceCart: %w", err)
	}

	return nil
}
