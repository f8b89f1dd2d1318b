package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/port"
)

// BannerService manages the storefront banners.
type BannerService struct {
	repo port.BannerRepository
	now  func() time.Time
}

func NewBanner(repo port.BannerRepository) (*BannerService, error) {
	if repo == nil {
		return nil, fmt.Errorf("repo is nil")
	}

	return &BannerService{repo: repo, now: time.Now}, nil
}

// List returns the active banners in display order.
func (s *BannerService) List(ctx context.Context) ([]domain.Banner, error) {
	banners, err := s.repo.ListBanners(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("repo.ListBanners: %w", err)
	}

	return banners, nil
}

func (s *BannerService) ListAll(ctx context.Context) ([]domain.Banner, error) {
	banners, err := s.repo.ListBanners(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("repo.ListBanners: %w", err)
	}

	return banners, nil
}

func (s *BannerService) Create(ctx context.Context, banner domain.Banner) (domain.Banner, error) {
	if err := banner.Normalize(); err != nil {
		return domain.Banner{}, err
	}

	now := s.now().UTC()
	banner.ID = uuid.NewString()
	banner.CreatedAt = now
	banner.UpdatedAt = now

	if err := s.repo.CreateBanner(ctx, banner); err != nil {
		return domain.Banner{}, fmt.Errorf("repo.CreateBanner: %w", err)
	}

	return banner, nil
}

func (s *BannerService) Update(ctx context.Context, banner domain.Banner) (domain.Banner, error) {
	if err := banner.Normalize(); err != nil {
		return domain.Banner{}, err
	}
	banner.UpdatedAt = s.now().UTC()

	updated, err := s.repo.UpdateBanner(ctx, banner)
	if err != nil {
		return domain.Banner{}, fmt.Errorf("repo.UpdateBanner: %w", err)
	}
	if !updated {
		return domain.Banner{}, domain.ErrNotFound
	}

	stored, err := s.repo.GetBanner(ctx, banner.ID)
	if err != nil {
		return domain.Banner{}, fmt.Errorf("repo.GetBanner: %w", err)
	}

	return stored, nil
}

func (s *BannerService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteBanner(ctx, id)
	if err != nil {
		return fmt.Errorf("repo.DeleteBanner: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}

	return nil
}
