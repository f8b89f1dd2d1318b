package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/santos-store/internal/db"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/port"
)

const pgUniqueViolation = "23505"

type userRepository struct {
	q *db.Queries
}

func NewUser(pool *pgxpool.Pool) port.UserRepository {
	return &userRepository{
		q: db.New(pool),
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user domain.User) error {
	if user.ID == uuid.Nil {
		return fmt.Errorf("user ID is empty")
	}

	err := r.q.CreateUser(ctx, db.CreateUserParams{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Cpf:          user.CPF,
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
		Cep:          user.Address.CEP,
		Street:       user.Address.Street,
		Number:       user.Address.Number,
		Complement:   user.Address.Complement,
		Neighborhood: user.Address.Neighborhood,
		City:         user.Address.City,
		State:        user.Address.State,
		IsAdmin:      user.IsAdmin,
		CreatedAt:    user.CreatedAt,
	})
	if err != nil {
		if taken := mapUniqueViolation(err); taken != nil {
			return taken
		}
		return fmt.Errorf("q.CreateUser: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if notFound(err) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("q.GetUserByID: %w", err)
	}

	return mapUserToDomain(row), nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if notFound(err) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("q.GetUserByEmail: %w", err)
	}

	return mapUserToDomain(row), nil
}

func (r *userRepository) SetAdmin(ctx context.Context, email string, admin bool) (bool, error) {
	updated, err := r.q.SetUserAdmin(ctx, db.SetUserAdminParams{Email: email, IsAdmin: admin})
	if err != nil {
		return false, fmt.Errorf("q.SetUserAdmin: %w", err)
	}

	return updated > 0, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}

	switch pgErr.ConstraintName {
	case "users_email_key":
		return domain.ErrEmailTaken
	case "users_cpf_key":
		return domain.ErrCPFTaken
	case "users_phone_key":
		return domain.ErrPhoneTaken
	}
	return nil
}

func mapUserToDomain(row db.User) domain.User {
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		CPF:          row.Cpf,
		Phone:        row.Phone,
		PasswordHash: row.PasswordHash,
		Address: domain.Address{
			CEP:          row.Cep,
			Street:       row.Street,
			Number:       row.Number,
			Complement:   row.Complement,
			Neighborhood: row.Neighborhood,
			City:         row.City,
			State:        row.State,
		},
		IsAdmin:   row.IsAdmin,
		CreatedAt: row.CreatedAt,
	}
}

type sessionRepository struct {
	q *db.Queries
}

func NewSession(pool *pgxpool.Pool) port.SessionRepository {
	return &sessionRepository{
		q: db.New(pool),
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session domain.Session) error {
	err := r.q.CreateSession(ctx, db.CreateSessionParams{
		Token:     session.Token,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("q.CreateSession: %w", err)
	}

	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context, token uuid.UUID) (domain.Session, error) {
	row, err := r.q.GetSession(ctx, token)
	if notFound(err) {
		return domain.Session{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("q.GetSession: %w", err)
	}

	return domain.Session{
		Token:     row.Token,
		UserID:    row.UserID,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, token uuid.UUID) (bool, error) {
	rowsAffected, err := r.q.DeleteSession(ctx, token)
	if err != nil {
		return false, fmt.Errorf("q.DeleteSession: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	rowsAffected, err := r.q.DeleteExpiredSessions(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("q.DeleteExpiredSessions: %w", err)
	}

	return rowsAffected, nil
}
