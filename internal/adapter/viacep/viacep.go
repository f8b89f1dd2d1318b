// Package viacep resolves Brazilian postal codes through the public ViaCEP service.
package viacep

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/nikolayk812/santos-store/internal/config"
	"github.com/nikolayk812/santos-store/internal/domain"
)

type Client struct {
	http *resty.Client
}

type response struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	// ViaCEP answers an unknown CEP with 200 and "erro": true, newer deployments send "true".
	Erro any `json:"erro"`
}

func New(cfg config.ViaCEPConfig) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}

	return &Client{http: rc}
}

// LookupCEP expects an 8 digit CEP.
func (c *Client) LookupCEP(ctx context.Context, cep string) (domain.Address, error) {
	var body response
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("cep", cep).
		SetResult(&body).
		Get("/ws/{cep}/json/")
	if err != nil {
		return domain.Address{}, fmt.Errorf("http.Get: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusBadRequest:
		return domain.Address{}, domain.ErrInvalidCEP
	case resp.IsError():
		return domain.Address{}, fmt.Errorf("viacep status=%d", resp.StatusCode())
	case isErro(body.Erro):
		return domain.Address{}, domain.ErrNotFound
	}

	return domain.Address{
		CEP:          domain.OnlyDigits(body.CEP),
		Street:       body.Street,
		Complement:   body.Complement,
		Neighborhood: body.Neighborhood,
		City:         body.City,
		State:        body.State,
	}, nil
}

func isErro(v any) bool {
	switch e := v.(type) {
	case bool:
		return e
	case string:
		return e == "true"
	default:
		return false
	}
}
