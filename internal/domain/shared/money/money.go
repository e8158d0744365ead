package money

import (
	"errors"
	"strings"

	"github.com/dustin/go-humanize"
)

var ErrInvalidCurrency = errors.New("money: invalid currency code")

// DefaultCurrency is the currency every rate in the catalog is quoted in.
const DefaultCurrency = "COP"

// Money is a priced amount. Amounts may be fractional after a pricing
// strategy is applied; no rounding happens here.
type Money struct {
	Amount   float64
	Currency string
}

// New constructs Money validating the currency code.
func New(amount float64, currency string) (Money, error) {
	if len(currency) != 3 {
		return Money{}, ErrInvalidCurrency
	}
	return Money{Amount: amount, Currency: strings.ToUpper(currency)}, nil
}

// Must creates Money and panics if validation fails; useful in tests and fixtures.
func Must(amount float64, currency string) Money {
	m, err := New(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// String renders the amount with thousands separators followed by the currency,
// e.g. "525,000 COP" or "270,000.5 COP".
func (m Money) String() string {
	return Format(m.Amount) + " " + m.Currency
}

// Format renders an amount with thousands separators and only the decimals it needs.
func Format(amount float64) string {
	return humanize.Commaf(amount)
}
