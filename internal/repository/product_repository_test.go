package repository_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/port"
	"github.com/nikolayk812/santos-store/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type productRepositorySuite struct {
	suite.Suite

	repo port.ProductRepository
	pool *pgxpool.Pool
}

func TestProductRepositorySuite(t *testing.T) {
	suite.Run(t, new(productRepositorySuite))
}

func (suite *productRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.repo = repository.NewProduct(suite.pool)
}

func (suite *productRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *productRepositorySuite) TestCRUD() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	product := randomProduct("Roupas")

	require.NoError(t, suite.repo.CreateProduct(ctx, product))

	got, err := suite.repo.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(product, got, currencyComparer))

	product.Name = "Camiseta Santos"
	product.Price = domain.NewBRL(decimal.RequireFromString("79.90"))
	product.UpdatedAt = product.UpdatedAt.Add(time.Minute)
	updated, err := suite.repo.UpdateProduct(ctx, product)
	require.NoError(t, err)
	assert.True(t, updated)

	got, err = suite.repo.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(product, got, currencyComparer))

	deleted, err := suite.repo.DeleteProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = suite.repo.GetProduct(ctx, product.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	deleted, err = suite.repo.DeleteProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func (suite *productRepositorySuite) TestMissingProducts() {
	t := suite.T()
	ctx := t.Context()

	_, err := suite.repo.GetProduct(ctx, "not-a-uuid")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = suite.repo.GetProduct(ctx, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrNotFound)

	updated, err := suite.repo.UpdateProduct(ctx, randomProduct("X"))
	require.NoError(t, err)
	assert.False(t, updated)
}

func (suite *productRepositorySuite) TestListProducts() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	shirt := randomProduct("Roupas")
	mug := randomProduct("Casa")
	hidden := randomProduct("Roupas")
	hidden.Active = false

	for _, p := range []domain.Product{shirt, mug, hidden} {
		require.NoError(t, suite.repo.CreateProduct(ctx, p))
	}

	all, err := suite.repo.ListProducts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	clothes, err := suite.repo.ListProducts(ctx, "Roupas")
	require.NoError(t, err)
	require.Len(t, clothes, 1)
	assert.Equal(t, shirt.ID, clothes[0].ID)

	none, err := suite.repo.ListProducts(ctx, "Eletrônicos")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func (suite *productRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE products")
	suite.NoError(err)
}

func randomProduct(category string) domain.Product {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.Product{
		ID:          uuid.NewString(),
		Name:        gofakeit.ProductName(),
		Description: gofakeit.ProductDescription(),
		Category:    category,
		Price:       domain.NewBRL(decimal.NewFromFloat(gofakeit.Price(1, 500))),
		ImageURL:    gofakeit.URL(),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
