package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/port"
	"github.com/nikolayk812/santos-store/internal/ratelimit"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

const minPasswordLength = 6

type codeChecker interface {
	CheckVerified(ctx context.Context, phone, code string) error
}

type AuthConfig struct {
	SessionTTL    time.Duration
	LoginAttempts int
	LoginWindow   time.Duration
	BcryptCost    int
}

// AuthService registers users and manages their sessions.
type AuthService struct {
	users    port.UserRepository
	sessions port.SessionRepository
	codes    codeChecker
	logger   *zap.Logger
	cfg      AuthConfig
	now      func() time.Time

	limiter   *ratelimit.Keyed
	dummyHash []byte
}

type AuthOption func(*AuthService)

// WithAuthClock replaces time.Now for session expiry and login throttling.
func WithAuthClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

func NewAuth(users port.UserRepository, sessions port.SessionRepository, codes codeChecker, cfg AuthConfig, logger *zap.Logger, opts ...AuthOption) (*AuthService, error) {
	if users == nil || sessions == nil || codes == nil {
		return nil, fmt.Errorf("auth dependencies must not be nil")
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("session TTL must be positive")
	}
	if cfg.LoginAttempts <= 0 || cfg.LoginWindow <= 0 {
		return nil, fmt.Errorf("login throttling must allow at least one attempt per window")
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	// compared against when the e-mail is unknown, so both paths cost a bcrypt round
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("santos-store"), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	s := &AuthService{
		users:     users,
		sessions:  sessions,
		codes:     codes,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
		limiter:   ratelimit.NewKeyed(rate.Every(cfg.LoginWindow/time.Duration(cfg.LoginAttempts)), cfg.LoginAttempts),
		dummyHash: dummyHash,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Register validates the request, cross-checks the phone verification code and stores the user.
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	user, err := s.validateRegistration(reg)
	if err != nil {
		return domain.User{}, err
	}

	if err := s.codes.CheckVerified(ctx, user.Phone, reg.VerificationCode); err != nil {
		return domain.User{}, err
	}

	user.PasswordHash, err = bcrypt.GenerateFromPassword([]byte(reg.Password), s.cfg.BcryptCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("users.CreateUser: %w", err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	return user, nil
}

func (s *AuthService) validateRegistration(reg domain.Registration) (domain.User, error) {
	name := strings.TrimSpace(reg.Name)
	if name == "" {
		return domain.User{}, domain.ErrInvalidName
	}

	email, err := domain.NormalizeEmail(reg.Email)
	if err != nil {
		return domain.User{}, err
	}

	cpf, err := domain.NormalizeCPF(reg.CPF)
	if err != nil {
		return domain.User{}, err
	}

	phone, err := domain.NormalizePhone(reg.Phone)
	if err != nil {
		return domain.User{}, err
	}

	cep, err := domain.NormalizeCEP(reg.Address.CEP)
	if err != nil {
		return domain.User{}, err
	}

	if len(reg.Password) < minPasswordLength {
		return domain.User{}, domain.ErrWeakPassword
	}

	address := reg.Address
	address.CEP = cep
	address.State = strings.ToUpper(strings.TrimSpace(address.State))

	return domain.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CPF:       cpf,
		Phone:     phone,
		Address:   address,
		CreatedAt: s.now().UTC(),
	}, nil
}

// Login checks the credentials and opens a new session.
func (s *AuthService) Login(ctx context.Context, rawEmail, password string) (domain.Session, domain.User, error) {
	email, err := domain.NormalizeEmail(rawEmail)
	if err != nil {
		return domain.Session{}, domain.User{}, domain.ErrInvalidCredentials
	}

	now := s.now()
	if retryAfter, ok := s.limiter.Allow(email, now); !ok {
		return domain.Session{}, domain.User{}, &domain.RetryError{Err: domain.ErrTooManyAttempts, RetryAfter: retryAfter}
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return domain.Session{}, domain.User{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.Session{}, domain.User{}, fmt.Errorf("users.GetUserByEmail: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return domain.Session{}, domain.User{}, domain.ErrInvalidCredentials
	}

	session := domain.Session{
		Token:     uuid.New(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.cfg.SessionTTL).UTC(),
		CreatedAt: now.UTC(),
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return domain.Session{}, domain.User{}, fmt.Errorf("sessions.CreateSession: %w", err)
	}

	return session, user, nil
}

// Authenticate resolves a session token into its user. Unknown, malformed and
// expired tokens yield domain.ErrLoginRequired.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return domain.User{}, domain.ErrLoginRequired
	}

	session, err := s.sessions.GetSession(ctx, parsed)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, domain.ErrLoginRequired
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("sessions.GetSession: %w", err)
	}

	if !s.now().Before(session.ExpiresAt) {
		return domain.User{}, domain.ErrLoginRequired
	}

	user, err := s.users.GetUserByID(ctx, session.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, domain.ErrLoginRequired
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("users.GetUserByID: %w", err)
	}

	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return nil
	}

	if _, err := s.sessions.DeleteSession(ctx, parsed); err != nil {
		return fmt.Errorf("sessions.DeleteSession: %w", err)
	}

	return nil
}

// PurgeExpiredSessions deletes sessions past their expiry.
func (s *AuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	purged, err := s.sessions.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("sessions.DeleteExpiredSessions: %w", err)
	}

	return purged, nil
}
