package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/stretchr/testify/mock"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// memVerificationRepo mirrors the queries of the postgres repository.
type memVerificationRepo struct {
	mu    sync.Mutex
	codes []domain.VerificationCode
}

func (r *memVerificationRepo) CreateCode(_ context.Context, code domain.VerificationCode) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	code.ID = int64(len(r.codes) + 1)
	r.codes = append(r.codes, code)
	return code.ID, nil
}

func (r *memVerificationRepo) newestFirst(phone string) []domain.VerificationCode {
	var out []domain.VerificationCode
	for _, c := range r.codes {
		if c.Phone == phone {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *memVerificationRepo) GetLatestCode(_ context.Context, phone string) (domain.VerificationCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	codes := r.newestFirst(phone)
	if len(codes) == 0 {
		return domain.VerificationCode{}, domain.ErrNotFound
	}
	return codes[0], nil
}

func (r *memVerificationRepo) FindConfirmable(_ context.Context, phone, code string, now time.Time) (domain.VerificationCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.newestFirst(phone) {
		if c.Code == code && !c.Verified && !c.Expired(now) {
			return c, nil
		}
	}
	return domain.VerificationCode{}, domain.ErrNotFound
}

func (r *memVerificationRepo) MarkVerified(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.codes {
		if r.codes[i].ID == id {
			if r.codes[i].Verified {
				return false, nil
			}
			r.codes[i].Verified = true
			return true, nil
		}
	}
	return false, nil
}

func (r *memVerificationRepo) FindVerified(_ context.Context, phone, code string, now time.Time) (domain.VerificationCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.newestFirst(phone) {
		if c.Code == code && c.Verified && !c.Expired(now) {
			return c, nil
		}
	}
	return domain.VerificationCode{}, domain.ErrNotFound
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendMessage(ctx context.Context, phone, text string) error {
	args := m.Called(ctx, phone, text)
	return args.Error(0)
}

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) CreateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUsers) GetUserByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUsers) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUsers) SetAdmin(ctx context.Context, email string, admin bool) (bool, error) {
	args := m.Called(ctx, email, admin)
	return args.Bool(0), args.Error(1)
}

type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) CreateSession(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessions) GetSession(ctx context.Context, token uuid.UUID) (domain.Session, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *mockSessions) DeleteSession(ctx context.Context, token uuid.UUID) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

func (m *mockSessions) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type mockCodeChecker struct {
	mock.Mock
}

func (m *mockCodeChecker) CheckVerified(ctx context.Context, phone, code string) error {
	args := m.Called(ctx, phone, code)
	return args.Error(0)
}

type mockCartRepo struct {
	mock.Mock
}

func (m *mockCartRepo) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *mockCartRepo) ReplaceCart(ctx context.Context, ownerID string, items []domain.CartItem) error {
	args := m.Called(ctx, ownerID, items)
	return args.Error(0)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) CreateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockProductRepo) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProductRepo) UpdateProduct(ctx context.Context, product domain.Product) (bool, error) {
	args := m.Called(ctx, product)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepo) DeleteProduct(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockPurchaseRepo struct {
	mock.Mock
}

func (m *mockPurchaseRepo) CreatePurchase(ctx context.Context, purchase domain.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *mockPurchaseRepo) ListPurchases(ctx context.Context, ownerID string) ([]domain.Purchase, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendMail(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

type mockAddressLookup struct {
	mock.Mock
}

func (m *mockAddressLookup) LookupCEP(ctx context.Context, cep string) (domain.Address, error) {
	args := m.Called(ctx, cep)
	return args.Get(0).(domain.Address), args.Error(1)
}

type mockBannerRepo struct {
	mock.Mock
}

func (m *mockBannerRepo) CreateBanner(ctx context.Context, banner domain.Banner) error {
	args := m.Called(ctx, banner)
	return args.Error(0)
}

func (m *mockBannerRepo) GetBanner(ctx context.Context, id string) (domain.Banner, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Banner), args.Error(1)
}

func (m *mockBannerRepo) ListBanners(ctx context.Context, includeInactive bool) ([]domain.Banner, error) {
	args := m.Called(ctx, includeInactive)
	return args.Get(0).([]domain.Banner), args.Error(1)
}

func (m *mockBannerRepo) UpdateBanner(ctx context.Context, banner domain.Banner) (bool, error) {
	args := m.Called(ctx, banner)
	return args.Bool(0), args.Error(1)
}

func (m *mockBannerRepo) DeleteBanner(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
