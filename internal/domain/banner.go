package domain

import (
	"net/url"
	"strings"
	"time"
)

const MaxBannerPosition = 9999

// Banner is a storefront slide. Lower positions are shown first.
type Banner struct {
	ID       string
	Title    string
	ImageURL string
	LinkURL  string
	Position int
	Active   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Normalize trims the text fields and checks them.
func (b *Banner) Normalize() error {
	b.Title = strings.TrimSpace(b.Title)
	b.ImageURL = strings.TrimSpace(b.ImageURL)
	b.LinkURL = strings.TrimSpace(b.LinkURL)

	if b.Title == "" {
		return ErrInvalidTitle
	}
	if !absoluteHTTP(b.ImageURL) {
		return ErrInvalidImageURL
	}
	if b.Position < 0 || b.Position > MaxBannerPosition {
		return ErrInvalidPosition
	}
	if b.LinkURL != "" && !strings.HasPrefix(b.LinkURL, "/") && !absoluteHTTP(b.LinkURL) {
		return ErrInvalidLinkURL
	}

	return nil
}

func absoluteHTTP(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
