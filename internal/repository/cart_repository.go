package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/santos-store/internal/db"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/port"
	"golang.org/x/text/currency"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	dbCartItems, err := r.q.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	items, err := mapGetCartRowsToDomain(dbCartItems)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Items:   items,
	}, nil
}

// ReplaceCart deletes every line of the owner and inserts items in one transaction,
// so concurrent readers never observe a partial cart.
func (r *cartRepository) ReplaceCart(ctx context.Context, ownerID string, items []domain.CartItem) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	_, err := withTx(ctx, r.pool, func(q *db.Queries) (struct{}, error) {
		if _, err := q.DeleteCart(ctx, ownerID); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteCart: %w", err)
		}

		for _, item := range items {
			if err := q.AddItem(ctx, mapCartItemToAddParams(ownerID, item)); err != nil {
				return struct{}{}, fmt.Errorf("q.AddItem[%s]: %w", item.ProductID, err)
			}
		}

		return struct{}{}, nil
	})

	return err
}

func mapCartItemToAddParams(ownerID string, item domain.CartItem) db.AddItemParams {
	return db.AddItemParams{
		OwnerID:       ownerID,
		ProductID:     item.ProductID,
		Quantity:      int32(item.Quantity),
		PriceAmount:   item.Price.Amount,
		PriceCurrency: item.Price.Currency.String(),
		Name:          item.Name,
		Category:      item.Category,
	}
}

func mapGetCartRowToDomain(row db.GetCartRow) (domain.CartItem, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.CartItem{
		ProductID: row.ProductID,
		Quantity:  int(row.Quantity),
		Price:     domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Name:      row.Name,
		Category:  row.Category,
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for _, row := range rows {
		item, err := mapGetCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
