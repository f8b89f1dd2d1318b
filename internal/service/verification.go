package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/port"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const verificationMessage = "Santos Store: seu código de verificação é %s. Ele expira em 10 minutos."

// VerificationService issues and confirms one-time phone verification codes.
type VerificationService struct {
	repo       port.VerificationRepository
	sender     port.MessageSender
	logger     *zap.Logger
	debugCodes bool

	now     func() time.Time
	newCode func() (string, error)

	sent             metric.Int64Counter
	deliveryFailures metric.Int64Counter
	confirmed        metric.Int64Counter
}

type VerificationOption func(*VerificationService)

// WithVerificationClock replaces time.Now.
func WithVerificationClock(now func() time.Time) VerificationOption {
	return func(s *VerificationService) { s.now = now }
}

// WithCodeGenerator replaces the random code source.
func WithCodeGenerator(newCode func() (string, error)) VerificationOption {
	return func(s *VerificationService) { s.newCode = newCode }
}

// WithDebugCodes logs a code whose delivery failed, so it can be used in development.
func WithDebugCodes(enabled bool) VerificationOption {
	return func(s *VerificationService) { s.debugCodes = enabled }
}

func NewVerification(repo port.VerificationRepository, sender port.MessageSender, logger *zap.Logger, opts ...VerificationOption) (*VerificationService, error) {
	if repo == nil {
		return nil, fmt.Errorf("repo is nil")
	}
	if sender == nil {
		return nil, fmt.Errorf("sender is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &VerificationService{
		repo:    repo,
		sender:  sender,
		logger:  logger,
		now:     time.Now,
		newCode: randomCode,
	}
	for _, opt := range opts {
		opt(s)
	}

	meter := otel.Meter("santos-store/verification")

	var err error
	if s.sent, err = meter.Int64Counter("verification.codes.sent"); err != nil {
		return nil, fmt.Errorf("meter.Int64Counter: %w", err)
	}
	if s.deliveryFailures, err = meter.Int64Counter("verification.delivery.failures"); err != nil {
		return nil, fmt.Errorf("meter.Int64Counter: %w", err)
	}
	if s.confirmed, err = meter.Int64Counter("verification.codes.confirmed"); err != nil {
		return nil, fmt.Errorf("meter.Int64Counter: %w", err)
	}

	return s, nil
}

// SendCode issues a new code for the phone and tries to deliver it.
// Delivery failures are not reported to the caller.
func (s *VerificationService) SendCode(ctx context.Context, rawPhone string) error {
	phone, err := domain.NormalizePhone(rawPhone)
	if err != nil {
		return err
	}

	now := s.now()

	latest, err := s.repo.GetLatestCode(ctx, phone)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return fmt.Errorf("repo.GetLatestCode: %w", err)
	default:
		if left := latest.CooldownLeft(now); left > 0 {
			return &domain.RetryError{Err: domain.ErrResendCooldown, RetryAfter: left}
		}
	}

	code, err := s.newCode()
	if err != nil {
		return fmt.Errorf("newCode: %w", err)
	}

	_, err = s.repo.CreateCode(ctx, domain.VerificationCode{
		Phone:     phone,
		Code:      code,
		ExpiresAt: now.Add(domain.VerificationCodeTTL),
		CreatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("repo.CreateCode: %w", err)
	}
	s.sent.Add(ctx, 1)

	if err := s.sender.SendMessage(ctx, phone, fmt.Sprintf(verificationMessage, code)); err != nil {
		s.deliveryFailures.Add(ctx, 1)
		s.logger.Warn("verification code delivery failed", zap.String("phone", maskPhone(phone)), zap.Error(err))
		if s.debugCodes {
			s.logger.Info("verification code fallback", zap.String("phone", phone), zap.String("code", code))
		}
	}

	return nil
}

// ConfirmCode marks the newest unverified, unexpired code matching the submitted value as verified.
// Wrong, expired and already used codes all yield domain.ErrInvalidCode.
func (s *VerificationService) ConfirmCode(ctx context.Context, rawPhone, code string) error {
	phone, err := domain.NormalizePhone(rawPhone)
	if err != nil {
		return err
	}
	if !domain.WellFormedCode(code) {
		return domain.ErrInvalidCode
	}

	found, err := s.repo.FindConfirmable(ctx, phone, code, s.now())
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrInvalidCode
	}
	if err != nil {
		return fmt.Errorf("repo.FindConfirmable: %w", err)
	}

	marked, err := s.repo.MarkVerified(ctx, found.ID)
	if err != nil {
		return fmt.Errorf("repo.MarkVerified: %w", err)
	}
	if !marked {
		// confirmed concurrently by another request
		return domain.ErrInvalidCode
	}
	s.confirmed.Add(ctx, 1)

	return nil
}

// CheckVerified succeeds when the phone holds a verified, unexpired code equal to code.
func (s *VerificationService) CheckVerified(ctx context.Context, rawPhone, code string) error {
	phone, err := domain.NormalizePhone(rawPhone)
	if err != nil {
		return err
	}
	if !domain.WellFormedCode(code) {
		return domain.ErrInvalidCode
	}

	_, err = s.repo.FindVerified(ctx, phone, code, s.now())
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrInvalidCode
	}
	if err != nil {
		return fmt.Errorf("repo.FindVerified: %w", err)
	}

	return nil
}

var codeRange = big.NewInt(900000)

// randomCode draws uniformly from [100000, 999999].
func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeRange)
	if err != nil {
		return "", fmt.Errorf("rand.Int: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	masked := []byte(phone)
	for i := 2; i < len(masked)-2; i++ {
		masked[i] = '*'
	}
	return string(masked)
}
