package port

import (
	"context"

	"github.com/nikolayk812/santos-store/internal/domain"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product domain.Product) error
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	ListProducts(ctx context.Context, category string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (bool, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)
}
