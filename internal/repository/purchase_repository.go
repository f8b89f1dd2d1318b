package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/santos-store/internal/db"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type purchaseRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewPurchase(pool *pgxpool.Pool) port.PurchaseRepository {
	return &purchaseRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

// purchaseItem is the JSONB shape of one purchased line.
type purchaseItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	AddedAt   time.Time       `json:"added_at"`
}

// CreatePurchase appends the purchase and empties the owner's server cart in one transaction.
func (r *purchaseRepository) CreatePurchase(ctx context.Context, purchase domain.Purchase) error {
	if purchase.OwnerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	items := make([]purchaseItem, 0, len(purchase.Items))
	for _, item := range purchase.Items {
		items = append(items, purchaseItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price.Amount,
			Currency:  item.Price.Currency.String(),
			Name:      item.Name,
			Category:  item.Category,
			AddedAt:   item.CreatedAt,
		})
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	_, err = withTx(ctx, r.pool, func(q *db.Queries) (struct{}, error) {
		err := q.CreatePurchase(ctx, db.CreatePurchaseParams{
			ID:            purchase.ID,
			OwnerID:       purchase.OwnerID,
			Items:         itemsJSON,
			TotalAmount:   purchase.Total.Amount,
			TotalCurrency: purchase.Total.Currency.String(),
			Summary:       purchase.Summary,
			CreatedAt:     purchase.CreatedAt,
		})
		if err != nil {
			return struct{}{}, fmt.Errorf("q.CreatePurchase: %w", err)
		}

		if _, err := q.DeleteCart(ctx, purchase.OwnerID); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteCart: %w", err)
		}

		return struct{}{}, nil
	})

	return err
}

func (r *purchaseRepository) ListPurchases(ctx context.Context, ownerID string) ([]domain.Purchase, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.q.ListPurchases(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("q.ListPurchases: %w", err)
	}

	purchases := make([]domain.Purchase, 0, len(rows))
	for _, row := range rows {
		purchase, err := mapPurchaseToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapPurchaseToDomain: %w", err)
		}
		purchases = append(purchases, purchase)
	}

	return purchases, nil
}

func mapPurchaseToDomain(row db.Purchase) (domain.Purchase, error) {
	totalCurrency, err := currency.ParseISO(row.TotalCurrency)
	if err != nil {
		return domain.Purchase{}, fmt.Errorf("currency[%s] is not valid: %w", row.TotalCurrency, err)
	}

	var items []purchaseItem
	if err := json.Unmarshal(row.Items, &items); err != nil {
		return domain.Purchase{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	cartItems := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		itemCurrency, err := currency.ParseISO(item.Currency)
		if err != nil {
			return domain.Purchase{}, fmt.Errorf("currency[%s] is not valid: %w", item.Currency, err)
		}

		cartItems = append(cartItems, domain.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     domain.Money{Amount: item.Price, Currency: itemCurrency},
			Name:      item.Name,
			Category:  item.Category,
			CreatedAt: item.AddedAt,
		})
	}

	return domain.Purchase{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Items:     cartItems,
		Total:     domain.Money{Amount: row.TotalAmount, Currency: totalCurrency},
		Summary:   row.Summary,
		CreatedAt: row.CreatedAt,
	}, nil
}
