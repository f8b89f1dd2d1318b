// Package api exposes the store over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/santos-store/internal/config"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/ratelimit"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type VerificationUseCase interface {
	SendCode(ctx context.Context, phone string) error
	ConfirmCode(ctx context.Context, phone, code string) error
}

type AuthUseCase interface {
	Register(ctx context.Context, reg domain.Registration) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.Session, domain.User, error)
	Authenticate(ctx context.Context, token string) (domain.User, error)
	Logout(ctx context.Context, token string) error
}

type CartUseCase interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	ReplaceCart(ctx context.Context, cart domain.Cart) error
}

type CatalogUseCase interface {
	List(ctx context.Context, category string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	Update(ctx context.Context, product domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type BannerUseCase interface {
	List(ctx context.Context) ([]domain.Banner, error)
	ListAll(ctx context.Context) ([]domain.Banner, error)
	Create(ctx context.Context, banner domain.Banner) (domain.Banner, error)
	Update(ctx context.Context, banner domain.Banner) (domain.Banner, error)
	Delete(ctx context.Context, id string) error
}

type PurchaseUseCase interface {
	Record(ctx context.Context, user domain.User, items []domain.CartItem, summary string) (domain.Purchase, error)
	List(ctx context.Context, ownerID string) ([]domain.Purchase, error)
}

type AddressUseCase interface {
	Lookup(ctx context.Context, cep string) (domain.Address, error)
}

// Services groups the use cases served by the API.
type Services struct {
	Verification VerificationUseCase
	Auth         AuthUseCase
	Cart         CartUseCase
	Catalog      CatalogUseCase
	Banner       BannerUseCase
	Purchase     PurchaseUseCase
	Address      AddressUseCase
}

type Handler struct {
	verification VerificationUseCase
	auth         AuthUseCase
	cart         CartUseCase
	catalog      CatalogUseCase
	banner       BannerUseCase
	purchase     PurchaseUseCase
	address      AddressUseCase

	tracer trace.Tracer
	logger *zap.Logger
}

func NewHandler(services Services, logger *zap.Logger) (*Handler, error) {
	if services.Verification == nil || services.Auth == nil || services.Cart == nil ||
		services.Catalog == nil || services.Banner == nil || services.Purchase == nil || services.Address == nil {
		return nil, fmt.Errorf("all services must be set")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		verification: services.Verification,
		auth:         services.Auth,
		cart:         services.Cart,
		catalog:      services.Catalog,
		banner:       services.Banner,
		purchase:     services.Purchase,
		address:      services.Address,
		tracer:       otel.Tracer("santos-store/api"),
		logger:       logger,
	}, nil
}

// NewRouter wires the routes. Verification and login routes are throttled per client IP.
func NewRouter(h *Handler, cfg config.ServerConfig, serviceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), otelgin.Middleware(serviceName), requestLogger(h.logger))

	r.GET("/health", h.Health)

	perMinute := cfg.RateLimitPerMinute
	if perMinute <= 0 {
		perMinute = 30
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 10
	}
	throttled := rateLimit(ratelimit.NewKeyed(rate.Every(time.Minute/time.Duration(perMinute)), burst), time.Now)

	api := r.Group("/api")

	verification := api.Group("/verification", throttled)
	verification.POST("/send", h.SendCode)
	verification.POST("/confirm", h.ConfirmCode)

	auth := api.Group("/auth")
	auth.POST("/register", throttled, h.Register)
	auth.POST("/login", throttled, h.Login)
	auth.POST("/logout", h.requireAuth, h.Logout)
	auth.GET("/me", h.requireAuth, h.Me)

	api.GET("/address/:cep", h.LookupAddress)

	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/banners", h.ListBanners)

	admin := api.Group("/admin", h.requireAuth, h.requireAdmin)
	admin.POST("/products", h.CreateProduct)
	admin.PUT("/products/:id", h.UpdateProduct)
	admin.DELETE("/products/:id", h.DeleteProduct)
	admin.GET("/banners", h.ListAllBanners)
	admin.POST("/banners", h.CreateBanner)
	admin.PUT("/banners/:id", h.UpdateBanner)
	admin.DELETE("/banners/:id", h.DeleteBanner)

	authed := api.Group("", h.requireAuth)
	authed.GET("/cart", h.GetCart)
	authed.PUT("/cart", h.PutCart)
	authed.POST("/purchases", h.RecordPurchase)
	authed.GET("/purchases", h.ListPurchases)

	return r
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
