package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/port"
)

// AddressService fills address fields from a CEP.
type AddressService struct {
	lookup port.AddressLookup
}

func NewAddress(lookup port.AddressLookup) (*AddressService, error) {
	if lookup == nil {
		return nil, fmt.Errorf("lookup is nil")
	}

	return &AddressService{lookup: lookup}, nil
}

func (s *AddressService) Lookup(ctx context.Context, rawCEP string) (domain.Address, error) {
	cep, err := domain.NormalizeCEP(rawCEP)
	if err != nil {
		return domain.Address{}, err
	}

	address, err := s.lookup.LookupCEP(ctx, cep)
	if err != nil {
		return domain.Address{}, fmt.Errorf("lookup.LookupCEP: %w", err)
	}

	return address, nil
}
