package port

import (
	"context"
	"time"

	"github.com/nikolayk812/santos-store/internal/domain"
)

// VerificationRepository is an append-only store of verification codes.
// Lookups that match no row return domain.ErrNotFound.
type VerificationRepository interface {
	CreateCode(ctx context.Context, code domain.VerificationCode) (int64, error)
	GetLatestCode(ctx context.Context, phone string) (domain.VerificationCode, error)
	FindConfirmable(ctx context.Context, phone, code string, now time.Time) (domain.VerificationCode, error)
	// MarkVerified reports false when the code was already verified.
	MarkVerified(ctx context.Context, id int64) (bool, error)
	FindVerified(ctx context.Context, phone, code string, now time.Time) (domain.VerificationCode, error)
}

// MessageSender delivers a text message to a phone number.
type MessageSender interface {
	SendMessage(ctx context.Context, phone, text string) error
}
