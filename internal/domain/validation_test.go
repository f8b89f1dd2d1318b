package domain_test

import (
	"strings"
	"testing"

	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCPF(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "formatted valid cpf", raw: "529.982.247-25", want: "52998224725"},
		{name: "digits only valid cpf", raw: "52998224725", want: "52998224725"},
		{name: "second check digit wrong", raw: "529.982.247-20", wantErr: true},
		{name: "first check digit wrong", raw: "529.982.247-35", wantErr: true},
		{name: "repeated digits", raw: "111.111.111-11", wantErr: true},
		{name: "repeated zeros", raw: "000.000.000-00", wantErr: true},
		{name: "too short", raw: "529.982.247-2", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NormalizeCPF(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidCPF)
				assert.False(t, domain.ValidCPF(tt.raw))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "529.982.247-25", domain.FormatCPF(got))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "mobile with mask", raw: "(11) 98765-4321", want: "11987654321"},
		{name: "landline", raw: "11 3456-7890", want: "1134567890"},
		{name: "too short", raw: "987654321", wantErr: true},
		{name: "with country code", raw: "+55 11 98765-4321", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NormalizePhone(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "55"+tt.want, domain.WhatsAppNumber(got))
		})
	}
}

func TestNormalizeCEP(t *testing.T) {
	got, err := domain.NormalizeCEP("01001-000")
	require.NoError(t, err)
	assert.Equal(t, "01001000", got)

	_, err = domain.NormalizeCEP("0100-100")
	require.ErrorIs(t, err, domain.ErrInvalidCEP)
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: " Maria@Example.com ", want: "maria@example.com"},
		{raw: "maria@example", wantErr: true},
		{raw: "Maria <maria@example.com>", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := domain.NormalizeEmail(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWellFormedCode(t *testing.T) {
	assert.True(t, domain.WellFormedCode("012345"))

	for _, code := range []string{"", "12345", "1234567", "123456 ", " 12345", "12a456", "１２３４５６"} {
		assert.False(t, domain.WellFormedCode(code), code)
	}
}

func TestBannerNormalize(t *testing.T) {
	tests := []struct {
		name    string
		banner  domain.Banner
		wantErr error
	}{
		{name: "ok", banner: domain.Banner{Title: " Verão ", ImageURL: "https://cdn.example.com/v.jpg", LinkURL: "/produtos"}},
		{name: "absolute link", banner: domain.Banner{Title: "Verão", ImageURL: "http://cdn.example.com/v.jpg", LinkURL: "https://santos.com.br/promo"}},
		{name: "blank title", banner: domain.Banner{Title: "  ", ImageURL: "https://cdn.example.com/v.jpg"}, wantErr: domain.ErrInvalidTitle},
		{name: "missing image", banner: domain.Banner{Title: "Verão"}, wantErr: domain.ErrInvalidImageURL},
		{name: "ftp image", banner: domain.Banner{Title: "Verão", ImageURL: "ftp://cdn.example.com/v.jpg"}, wantErr: domain.ErrInvalidImageURL},
		{name: "script link", banner: domain.Banner{Title: "Verão", ImageURL: "https://cdn.example.com/v.jpg", LinkURL: "javascript:void(0)"}, wantErr: domain.ErrInvalidLinkURL},
		{name: "negative position", banner: domain.Banner{Title: "Verão", ImageURL: "https://cdn.example.com/v.jpg", Position: -3}, wantErr: domain.ErrInvalidPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.banner
			err := b.Normalize()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.banner.Title), b.Title)
		})
	}
}
