package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Address struct {
	CEP          string
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
}

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	CPF          string
	Phone        string
	PasswordHash []byte
	Address      Address
	IsAdmin      bool

	CreatedAt time.Time
}

// FirstName is used to greet the user in messages.
func (u User) FirstName() string {
	name, _, _ := strings.Cut(strings.TrimSpace(u.Name), " ")
	return name
}

type Session struct {
	Token     uuid.UUID
	UserID    uuid.UUID
	ExpiresAt time.Time

	CreatedAt time.Time
}

// Registration is a validated sign-up request.
type Registration struct {
	Name             string
	Email            string
	CPF              string
	Phone            string
	VerificationCode string
	Password         string
	Address          Address
}
