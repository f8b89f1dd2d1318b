package port

import (
	"context"

	"github.com/nikolayk812/santos-store/internal/domain"
)

type BannerRepository interface {
	CreateBanner(ctx context.Context, banner domain.Banner) error
	GetBanner(ctx context.Context, id string) (domain.Banner, error)
	ListBanners(ctx context.Context, includeInactive bool) ([]domain.Banner, error)
	UpdateBanner(ctx context.Context, banner domain.Banner) (bool, error)
	DeleteBanner(ctx context.Context, id string) (bool, error)
}
