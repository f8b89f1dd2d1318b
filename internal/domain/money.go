package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// StoreCurrency is the currency every price in the store is quoted in.
var StoreCurrency = currency.BRL

// PriceScale is the number of decimal places kept for stored prices.
const PriceScale = 2

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewBRL(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: StoreCurrency}
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// ValidatePrice accepts non-negative store currency amounts in whole cents.
func (m Money) ValidatePrice() error {
	if m.IsNegative() {
		return ErrNegativePrice
	}
	if m.Currency != StoreCurrency {
		return ErrForeignCurrency
	}
	if !m.Amount.Equal(m.Amount.Truncate(PriceScale)) {
		return ErrPricePrecision
	}
	return nil
}

func (m Money) Mul(quantity int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(quantity))), Currency: m.Currency}
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency, m.Amount.StringFixed(2))
}
