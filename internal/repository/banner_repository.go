package repository

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/santos-store/internal/db"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/port"
)

type bannerRepository struct {
	q *db.Queries
}

func NewBanner(pool *pgxpool.Pool) port.BannerRepository {
	return &bannerRepository{
		q: db.New(pool),
	}
}

func (r *bannerRepository) CreateBanner(ctx context.Context, banner domain.Banner) error {
	id, err := uuid.Parse(banner.ID)
	if err != nil {
		return fmt.Errorf("banner ID[%s] is not valid: %w", banner.ID, err)
	}
	position, err := toInt32(banner.Position)
	if err != nil {
		return err
	}

	err = r.q.CreateBanner(ctx, db.CreateBannerParams{
		ID:        id,
		Title:     banner.Title,
		ImageUrl:  banner.ImageURL,
		LinkUrl:   banner.LinkURL,
		Position:  position,
		Active:    banner.Active,
		CreatedAt: banner.CreatedAt,
		UpdatedAt: banner.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("q.CreateBanner: %w", err)
	}

	return nil
}

// GetBanner returns domain.ErrNotFound for unknown and malformed ids alike.
func (r *bannerRepository) GetBanner(ctx context.Context, id string) (domain.Banner, error) {
	bannerID, err := uuid.Parse(id)
	if err != nil {
		return domain.Banner{}, domain.ErrNotFound
	}

	row, err := r.q.GetBanner(ctx, bannerID)
	if notFound(err) {
		return domain.Banner{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Banner{}, fmt.Errorf("q.GetBanner: %w", err)
	}

	return mapBannerToDomain(row), nil
}

func (r *bannerRepository) ListBanners(ctx context.Context, includeInactive bool) ([]domain.Banner, error) {
	rows, err := r.q.ListBanners(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("q.ListBanners: %w", err)
	}

	banners := make([]domain.Banner, 0, len(rows))
	for _, row := range rows {
		banners = append(banners, mapBannerToDomain(row))
	}

	return banners, nil
}

func (r *bannerRepository) UpdateBanner(ctx context.Context, banner domain.Banner) (bool, error) {
	id, err := uuid.Parse(banner.ID)
	if err != nil {
		return false, nil
	}
	position, err := toInt32(banner.Position)
	if err != nil {
		return false, err
	}

	rowsAffected, err := r.q.UpdateBanner(ctx, db.UpdateBannerParams{
		ID:        id,
		Title:     banner.Title,
		ImageUrl:  banner.ImageURL,
		LinkUrl:   banner.LinkURL,
		Position:  position,
		Active:    banner.Active,
		UpdatedAt: banner.UpdatedAt,
	})
	if err != nil {
		return false, fmt.Errorf("q.UpdateBanner: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *bannerRepository) DeleteBanner(ctx context.Context, id string) (bool, error) {
	bannerID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	rowsAffected, err := r.q.DeleteBanner(ctx, bannerID)
	if err != nil {
		return false, fmt.Errorf("q.DeleteBanner: %w", err)
	}

	return rowsAffected > 0, nil
}

func toInt32(n int) (int32, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("position[%d] is out of range", n)
	}
	return int32(n), nil
}

func mapBannerToDomain(row db.Banner) domain.Banner {
	return domain.Banner{
		ID:        row.ID.String(),
		Title:     row.Title,
		ImageURL:  row.ImageUrl,
		LinkURL:   row.LinkUrl,
		Position:  int(row.Position),
		Active:    row.Active,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
