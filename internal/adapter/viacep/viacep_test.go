package viacep_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nikolayk812/santos-store/internal/adapter/viacep"
	"github.com/nikolayk812/santos-store/internal/config"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		switch r.URL.Path {
		case "/ws/01001000/json/":
			_, _ = w.Write([]byte(`{"cep":"01001-000","logradouro":"Praça da Sé","complemento":"lado ímpar","bairro":"Sé","localidade":"São Paulo","uf":"SP"}`))
		case "/ws/99999999/json/":
			_, _ = w.Write([]byte(`{"erro": true}`))
		case "/ws/99999998/json/":
			_, _ = w.Write([]byte(`{"erro": "true"}`))
		case "/ws/0100100/json/":
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestClient_LookupCEP(t *testing.T) {
	client := viacep.New(config.ViaCEPConfig{BaseURL: newServer(t).URL})

	address, err := client.LookupCEP(context.Background(), "01001000")
	require.NoError(t, err)

	assert.Equal(t, domain.Address{
		CEP:          "01001000",
		Street:       "Praça da Sé",
		Complement:   "lado ímpar",
		Neighborhood: "Sé",
		City:         "São Paulo",
		State:        "SP",
	}, address)
}

func TestClient_LookupCEP_Errors(t *testing.T) {
	client := viacep.New(config.ViaCEPConfig{BaseURL: newServer(t).URL})
	ctx := context.Background()

	_, err := client.LookupCEP(ctx, "99999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = client.LookupCEP(ctx, "99999998")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = client.LookupCEP(ctx, "0100100")
	assert.ErrorIs(t, err, domain.ErrInvalidCEP)

	_, err = client.LookupCEP(ctx, "12345678")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
