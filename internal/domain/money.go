package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BalanceScale is the number of decimal places stored for account
// balances. Amounts are only rounded to this scale at the storage
// boundary, never during conversion.
const BalanceScale = 4

// Money is an exact decimal amount tagged with an ISO 4217 currency
// code. Arithmetic between different currencies is an error.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// NewMoney creates a Money value. The currency code is uppercased.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{
		Amount:   amount,
		Currency: strings.ToUpper(currency),
	}
}

// NewMoneyFromString creates a Money value from a decimal string.
func NewMoneyFromString(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return NewMoney(d, currency), nil
}

// ParseMoney parses the "EUR 12.50" form.
func ParseMoney(s string) (Money, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return NewMoneyFromString(parts[1], parts[0])
}

// MustParseMoney is ParseMoney that panics on error, for tests and
// static values.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns m + other.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Sub returns m - other.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) (bool, error) {
	if m.Currency != other.Currency {
		return false, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return m.Amount.LessThan(other.Amount), nil
}

// Negate returns -m.
func (m Money) Negate() Money {
	return Money{Amount: m.Amount.Neg(), Currency: m.Currency}
}

// IsPositive reports whether the amount is strictly positive.
func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// Equal reports whether two Money values have the same currency and
// numerically equal amounts.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// RoundToScale rounds the amount to the given number of decimal places
// using banker's rounding.
func (m Money) RoundToScale(scale int32) Money {
	return Money{Amount: m.Amount.RoundBank(scale), Currency: m.Currency}
}

// String renders the "EUR 12.50" form.
func (m Money) String() string {
	return m.Currency + " " + m.Amount.String()
}
