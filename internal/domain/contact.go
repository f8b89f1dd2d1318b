package domain

import (
	"net/mail"
	"strings"
)

func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone keeps digits only. Brazilian numbers have a two digit area
// code followed by an 8 digit landline or a 9 digit mobile number.
func NormalizePhone(raw string) (string, error) {
	phone := OnlyDigits(raw)
	if len(phone) != 10 && len(phone) != 11 {
		return "", ErrInvalidPhone
	}
	return phone, nil
}

// WhatsAppNumber prefixes the Brazil country code unless it is already present.
func WhatsAppNumber(phone string) string {
	if len(phone) > 11 && strings.HasPrefix(phone, "55") {
		return phone
	}
	return "55" + phone
}

func NormalizeCEP(raw string) (string, error) {
	cep := OnlyDigits(raw)
	if len(cep) != 8 {
		return "", ErrInvalidCEP
	}
	return cep, nil
}

func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return "", ErrInvalidEmail
	}
	return email, nil
}
