package domain

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors.
var (
	ErrEmptyProductID   = errors.New("product id is empty")
	ErrInvalidQuantity  = errors.New("quantity must be between 1 and 9999")
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrPricePrecision   = errors.New("price must not have fractions of a cent")
	ErrInvalidCurrency  = errors.New("currency is not a valid ISO 4217 code")
	ErrForeignCurrency  = errors.New("prices must be in BRL")
	ErrDuplicateProduct = errors.New("cart contains the same product twice")
	ErrInvalidPhone     = errors.New("phone must have 10 or 11 digits")
	ErrInvalidCPF       = errors.New("cpf is not valid")
	ErrInvalidCEP       = errors.New("cep must have 8 digits")
	ErrInvalidEmail     = errors.New("email is not valid")
	ErrInvalidName      = errors.New("name is empty")
	ErrWeakPassword     = errors.New("password must have at least 6 characters")
	ErrInvalidTitle     = errors.New("title is empty")
	ErrInvalidImageURL  = errors.New("image url must be an absolute http(s) url")
	ErrInvalidLinkURL   = errors.New("link url must be a path or an absolute http(s) url")
	ErrInvalidPosition  = errors.New("position must be between 0 and 9999")
)

// Rate-limit errors.
var (
	ErrResendCooldown  = errors.New("a code was sent recently, wait before requesting another one")
	ErrTooManyAttempts = errors.New("too many attempts, try again later")
)

var (
	// ErrLoginRequired signals that an identity must be established first.
	ErrLoginRequired = errors.New("login required")
	ErrForbidden     = errors.New("forbidden")

	// ErrInvalidCode never tells a wrong code apart from an expired or used one.
	ErrInvalidCode = errors.New("invalid or expired code")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrCPFTaken           = errors.New("cpf is already registered")
	ErrPhoneTaken         = errors.New("phone is already registered")

	ErrNotFound  = errors.New("not found")
	ErrEmptyCart = errors.New("cart is empty")
)

// RetryError wraps a rate-limit error with the time the caller should wait.
type RetryError struct {
	Err        error
	RetryAfter time.Duration
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("%s (retry after %s)", e.Err, e.RetryAfter.Round(time.Second))
}

func (e *RetryError) Unwrap() error {
	return e.Err
}
