package api_test

import (
	"context"

	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockVerification struct{ mock.Mock }

func (m *mockVerification) SendCode(ctx context.Context, phone string) error {
	return m.Called(ctx, phone).Error(0)
}

func (m *mockVerification) ConfirmCode(ctx context.Context, phone, code string) error {
	return m.Called(ctx, phone, code).Error(0)
}

type mockAuth struct{ mock.Mock }

func (m *mockAuth) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	args := m.Called(ctx, reg)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (domain.Session, domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.Session), args.Get(1).(domain.User), args.Error(2)
}

func (m *mockAuth) Authenticate(ctx context.Context, token string) (domain.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockAuth) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type mockCart struct{ mock.Mock }

func (m *mockCart) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *mockCart) ReplaceCart(ctx context.Context, cart domain.Cart) error {
	return m.Called(ctx, cart).Error(0)
}

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) List(ctx context.Context, category string) ([]domain.Product, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockCatalog) Get(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockCatalog) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockCatalog) Update(ctx context.Context, product domain.Product) (domain.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockCatalog) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockBanner struct{ mock.Mock }

func (m *mockBanner) List(ctx context.Context) ([]domain.Banner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Banner), args.Error(1)
}

func (m *mockBanner) ListAll(ctx context.Context) ([]domain.Banner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Banner), args.Error(1)
}

func (m *mockBanner) Create(ctx context.Context, banner domain.Banner) (domain.Banner, error) {
	args := m.Called(ctx, banner)
	return args.Get(0).(domain.Banner), args.Error(1)
}

func (m *mockBanner) Update(ctx context.Context, banner domain.Banner) (domain.Banner, error) {
	args := m.Called(ctx, banner)
	return args.Get(0).(domain.Banner), args.Error(1)
}

func (m *mockBanner) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockPurchase struct{ mock.Mock }

func (m *mockPurchase) Record(ctx context.Context, user domain.User, items []domain.CartItem, summary string) (domain.Purchase, error) {
	args := m.Called(ctx, user, items, summary)
	return args.Get(0).(domain.Purchase), args.Error(1)
}

func (m *mockPurchase) List(ctx context.Context, ownerID string) ([]domain.Purchase, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

type mockAddress struct{ mock.Mock }

func (m *mockAddress) Lookup(ctx context.Context, cep string) (domain.Address, error) {
	args := m.Called(ctx, cep)
	return args.Get(0).(domain.Address), args.Error(1)
}
