package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/santos-store/internal/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	// SetAdmin reports false when no user has the e-mail.
	SetAdmin(ctx context.Context, email string, admin bool) (bool, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSession(ctx context.Context, token uuid.UUID) (domain.Session, error)
	DeleteSession(ctx context.Context, token uuid.UUID) (bool, error)
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// AddressLookup resolves a CEP into a street address.
type AddressLookup interface {
	LookupCEP(ctx context.Context, cep string) (domain.Address, error)
}

// Mailer sends a plain text e-mail.
type Mailer interface {
	SendMail(ctx context.Context, to, subject, body string) error
}
