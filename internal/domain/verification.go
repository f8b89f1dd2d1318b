package domain

import "time"

const (
	VerificationCodeLength = 6
	VerificationCodeTTL    = 10 * time.Minute
	VerificationCooldown   = 60 * time.Second
)

type VerificationCode struct {
	ID        int64
	Phone     string
	Code      string
	ExpiresAt time.Time
	Verified  bool

	CreatedAt time.Time
}

// WellFormedCode reports whether code could have been issued: exactly
// VerificationCodeLength ASCII digits.
func WellFormedCode(code string) bool {
	if len(code) != VerificationCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

func (v VerificationCode) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}

// CooldownLeft returns how long a new code for the same phone must wait.
func (v VerificationCode) CooldownLeft(now time.Time) time.Duration {
	left := v.CreatedAt.Add(VerificationCooldown).Sub(now)
	if left < 0 {
		return 0
	}
	return left
}
