package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/port"
	"go.uber.org/zap"
)

const purchaseMailSubject = "Santos Store: resumo do seu pedido"

// PurchaseService keeps the append-only purchase history.
type PurchaseService struct {
	repo   port.PurchaseRepository
	mailer port.Mailer
	logger *zap.Logger
	now    func() time.Time
}

// NewPurchase builds the service. mailer may be nil, then no e-mail copy is sent.
func NewPurchase(repo port.PurchaseRepository, mailer port.Mailer, logger *zap.Logger) (*PurchaseService, error) {
	if repo == nil {
		return nil, fmt.Errorf("repo is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &PurchaseService{
		repo:   repo,
		mailer: mailer,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Record appends a checkout of the user's cart. The total is recomputed from the
// snapshotted line prices and the summary is rendered when the client sent none.
func (s *PurchaseService) Record(ctx context.Context, user domain.User, items []domain.CartItem, summary string) (domain.Purchase, error) {
	cart := domain.Cart{OwnerID: user.ID.String(), Items: items}
	if len(cart.Items) == 0 {
		return domain.Purchase{}, domain.ErrEmptyCart
	}
	if err := cart.Validate(); err != nil {
		return domain.Purchase{}, err
	}

	if summary == "" {
		summary = domain.OrderSummary(user.FirstName(), cart)
	}

	purchase := domain.Purchase{
		ID:        uuid.New(),
		OwnerID:   cart.OwnerID,
		Items:     cart.Items,
		Total:     cart.Total(),
		Summary:   summary,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.CreatePurchase(ctx, purchase); err != nil {
		return domain.Purchase{}, fmt.Errorf("repo.CreatePurchase: %w", err)
	}

	if s.mailer != nil && user.Email != "" {
		if err := s.mailer.SendMail(ctx, user.Email, purchaseMailSubject, summary); err != nil {
			s.logger.Warn("purchase e-mail failed",
				zap.String("purchase_id", purchase.ID.String()),
				zap.Error(err))
		}
	}

	return purchase, nil
}

func (s *PurchaseService) List(ctx context.Context, ownerID string) ([]domain.Purchase, error) {
	purchases, err := s.repo.ListPurchases(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("repo.ListPurchases: %w", err)
	}

	return purchases, nil
}
