package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/port"
)

// CatalogService serves the product catalog and its admin operations.
type CatalogService struct {
	repo port.ProductRepository
	now  func() time.Time
}

func NewCatalog(repo port.ProductRepository) (*CatalogService, error) {
	if repo == nil {
		return nil, fmt.Errorf("repo is nil")
	}

	return &CatalogService{repo: repo, now: time.Now}, nil
}

func (s *CatalogService) List(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.repo.ListProducts(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, fmt.Errorf("repo.ListProducts: %w", err)
	}

	return products, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (domain.Product, error) {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("repo.GetProduct: %w", err)
	}

	return product, nil
}

func (s *CatalogService) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := validateProduct(&product); err != nil {
		return domain.Product{}, err
	}

	now := s.now().UTC()
	product.ID = uuid.NewString()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return domain.Product{}, fmt.Errorf("repo.CreateProduct: %w", err)
	}

	return product, nil
}

func (s *CatalogService) Update(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := validateProduct(&product); err != nil {
		return domain.Product{}, err
	}
	product.UpdatedAt = s.now().UTC()

	updated, err := s.repo.UpdateProduct(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("repo.UpdateProduct: %w", err)
	}
	if !updated {
		return domain.Product{}, domain.ErrNotFound
	}

	return s.Get(ctx, product.ID)
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("repo.DeleteProduct: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}

	return nil
}

func validateProduct(product *domain.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	product.Category = strings.TrimSpace(product.Category)

	if product.Name == "" {
		return domain.ErrInvalidName
	}
	if product.Price.Currency == (domain.Money{}).Currency {
		product.Price.Currency = domain.StoreCurrency
	}

	return product.Price.ValidatePrice()
}
