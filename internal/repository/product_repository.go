package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/santos-store/internal/db"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/port"
	"golang.org/x/text/currency"
)

type productRepository struct {
	q *db.Queries
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q: db.New(pool),
	}
}

func (r *productRepository) CreateProduct(ctx context.Context, product domain.Product) error {
	id, err := uuid.Parse(product.ID)
	if err != nil {
		return fmt.Errorf("product ID[%s] is not valid: %w", product.ID, err)
	}

	err = r.q.CreateProduct(ctx, db.CreateProductParams{
		ID:            id,
		Name:          product.Name,
		Description:   product.Description,
		Category:      product.Category,
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency.String(),
		ImageUrl:      product.ImageURL,
		Active:        product.Active,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("q.CreateProduct: %w", err)
	}

	return nil
}

// GetProduct returns domain.ErrNotFound for unknown and malformed ids alike.
func (r *productRepository) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return domain.Product{}, domain.ErrNotFound
	}

	row, err := r.q.GetProduct(ctx, productID)
	if notFound(err) {
		return domain.Product{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	return mapProductToDomain(row)
}

func (r *productRepository) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		product, err := mapProductToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapProductToDomain: %w", err)
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product domain.Product) (bool, error) {
	id, err := uuid.Parse(product.ID)
	if err != nil {
		return false, nil
	}

	rowsAffected, err := r.q.UpdateProduct(ctx, db.UpdateProductParams{
		ID:            id,
		Name:          product.Name,
		Description:   product.Description,
		Category:      product.Category,
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency.String(),
		ImageUrl:      product.ImageURL,
		Active:        product.Active,
		UpdatedAt:     product.UpdatedAt,
	})
	if err != nil {
		return false, fmt.Errorf("q.UpdateProduct: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) (bool, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	rowsAffected, err := r.q.DeleteProduct(ctx, productID)
	if err != nil {
		return false, fmt.Errorf("q.DeleteProduct: %w", err)
	}

	return rowsAffected > 0, nil
}

func mapProductToDomain(row db.Product) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.Product{
		ID:          row.ID.String(),
		Name:        row.Name,
		Description: row.Description,
		Category:    row.Category,
		Price:       domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		ImageURL:    row.ImageUrl,
		Active:      row.Active,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}
