package repository_test

import (
	"math"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/port"
	"github.com/nikolayk812/santos-store/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type bannerRepositorySuite struct {
	suite.Suite

	repo port.BannerRepository
	pool *pgxpool.Pool
}

func TestBannerRepositorySuite(t *testing.T) {
	suite.Run(t, new(bannerRepositorySuite))
}

func (suite *bannerRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.repo = repository.NewBanner(suite.pool)
}

func (suite *bannerRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *bannerRepositorySuite) TestCRUD() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	banner := randomBanner(1)

	require.NoError(t, suite.repo.CreateBanner(ctx, banner))

	got, err := suite.repo.GetBanner(ctx, banner.ID)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(banner, got))

	banner.Title = "Liquidação de inverno"
	banner.Position = 5
	banner.Active = false
	banner.UpdatedAt = banner.UpdatedAt.Add(time.Minute)
	updated, err := suite.repo.UpdateBanner(ctx, banner)
	require.NoError(t, err)
	assert.True(t, updated)

	got, err = suite.repo.GetBanner(ctx, banner.ID)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(banner, got))

	deleted, err := suite.repo.DeleteBanner(ctx, banner.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = suite.repo.GetBanner(ctx, banner.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	deleted, err = suite.repo.DeleteBanner(ctx, banner.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func (suite *bannerRepositorySuite) TestMissingBanners() {
	t := suite.T()
	ctx := t.Context()

	_, err := suite.repo.GetBanner(ctx, "not-a-uuid")
	require.ErrorIs(t, err, domain.ErrNotFound)

	updated, err := suite.repo.UpdateBanner(ctx, randomBanner(0))
	require.NoError(t, err)
	assert.False(t, updated)

	deleted, err := suite.repo.DeleteBanner(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func (suite *bannerRepositorySuite) TestCreateBannerRejectsPositionOverflow() {
	t := suite.T()

	err := suite.repo.CreateBanner(t.Context(), randomBanner(math.MaxInt32+1))
	require.Error(t, err)
}

func (suite *bannerRepositorySuite) TestListBanners() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	second := randomBanner(2)
	first := randomBanner(1)
	hidden := randomBanner(0)
	hidden.Active = false

	for _, b := range []domain.Banner{second, first, hidden} {
		require.NoError(t, suite.repo.CreateBanner(ctx, b))
	}

	active, err := suite.repo.ListBanners(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, second.ID, active[1].ID)

	all, err := suite.repo.ListBanners(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, hidden.ID, all[0].ID)
}

func (suite *bannerRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE banners")
	suite.NoError(err)
}

func randomBanner(position int) domain.Banner {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.Banner{
		ID:        uuid.NewString(),
		Title:     gofakeit.ProductName(),
		ImageURL:  gofakeit.URL(),
		LinkURL:   "/produtos",
		Position:  position,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
