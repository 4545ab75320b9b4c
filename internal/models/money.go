package models

import (
	"github.com/shopspring/decimal"
)

// Money is a fixed-point monetary amount with exactly 2 fractional digits.
// It embeds decimal.Decimal for exact arithmetic and overrides the JSON
// encoding to emit a bare number like 2954.50 instead of a quoted string.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal value, rounded to the cent.
func NewMoney(d decimal.Decimal) Money {
	return Money{d.Round(2)}
}

// MoneyFromString parses a decimal string such as "-45.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(d), nil
}

// MarshalJSON emits the amount as an unquoted number with 2 decimal places.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(2)), nil
}

// UnmarshalJSON accepts both bare numbers and quoted decimal strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	m.Decimal = d
	return nil
}
