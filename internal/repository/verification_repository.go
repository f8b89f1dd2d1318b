package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/santos-store/internal/db"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/port"
)

type verificationRepository struct {
	q *db.Queries
}

func NewVerification(pool *pgxpool.Pool) port.VerificationRepository {
	return &verificationRepository{
		q: db.New(pool),
	}
}

func (r *verificationRepository) CreateCode(ctx context.Context, code domain.VerificationCode) (int64, error) {
	if code.Phone == "" {
		return 0, fmt.Errorf("phone is empty")
	}

	id, err := r.q.CreateVerificationCode(ctx, db.CreateVerificationCodeParams{
		Phone:     code.Phone,
		Code:      code.Code,
		ExpiresAt: code.ExpiresAt,
		CreatedAt: code.CreatedAt,
	})
	if err != nil {
		return 0, fmt.Errorf("q.CreateVerificationCode: %w", err)
	}

	return id, nil
}

func (r *verificationRepository) GetLatestCode(ctx context.Context, phone string) (domain.VerificationCode, error) {
	row, err := r.q.GetLatestVerificationCode(ctx, phone)
	if notFound(err) {
		return domain.VerificationCode{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.VerificationCode{}, fmt.Errorf("q.GetLatestVerificationCode: %w", err)
	}

	return mapVerificationCodeToDomain(row), nil
}

func (r *verificationRepository) FindConfirmable(ctx context.Context, phone, code string, now time.Time) (domain.VerificationCode, error) {
	row, err := r.q.FindConfirmableCode(ctx, db.FindConfirmableCodeParams{
		Phone:     phone,
		Code:      code,
		ExpiresAt: now,
	})
	if notFound(err) {
		return domain.VerificationCode{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.VerificationCode{}, fmt.Errorf("q.FindConfirmableCode: %w", err)
	}

	return mapVerificationCodeToDomain(row), nil
}

func (r *verificationRepository) MarkVerified(ctx context.Context, id int64) (bool, error) {
	rowsAffected, err := r.q.MarkCodeVerified(ctx, id)
	if err != nil {
		return false, fmt.Errorf("q.MarkCodeVerified: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *verificationRepository) FindVerified(ctx context.Context, phone, code string, now time.Time) (domain.VerificationCode, error) {
	row, err := r.q.FindVerifiedCode(ctx, db.FindVerifiedCodeParams{
		Phone:     phone,
		Code:      code,
		ExpiresAt: now,
	})
	if notFound(err) {
		return domain.VerificationCode{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.VerificationCode{}, fmt.Errorf("q.FindVerifiedCode: %w", err)
	}

	return mapVerificationCodeToDomain(row), nil
}

func mapVerificationCodeToDomain(row db.VerificationCode) domain.VerificationCode {
	return domain.VerificationCode{
		ID:        row.ID,
		Phone:     row.Phone,
		Code:      row.Code,
		ExpiresAt: row.ExpiresAt,
		Verified:  row.Verified,
		CreatedAt: row.CreatedAt,
	}
}
