package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finvo/transferd/internal/domain"
)

func TestMoneyArithmetic(t *testing.T) {
	a := domain.NewMoney(decimal.RequireFromString("12.00"), "EUR")
	b := domain.NewMoney(decimal.RequireFromString("1.005"), "EUR")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "EUR 13.005", sum.String())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, "EUR 10.995", diff.String())

	// The operands are untouched.
	assert.Equal(t, "EUR 12", a.String())
}

func TestMoneyCurrencyMismatch(t *testing.T) {
	eur := domain.MustParseMoney("EUR 10")
	usd := domain.MustParseMoney("USD 10")

	_, err := eur.Add(usd)
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)

	_, err = eur.Sub(usd)
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)

	_, err = eur.LessThan(usd)
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)
}

func TestMoneyComparison(t *testing.T) {
	small := domain.MustParseMoney("EUR 9.9999")
	big := domain.MustParseMoney("EUR 10")

	less, err := small.LessThan(big)
	require.NoError(t, err)
	assert.True(t, less)

	less, err = big.LessThan(small)
	require.NoError(t, err)
	assert.False(t, less)

	// Equal values are not less than each other.
	less, err = big.LessThan(big)
	require.NoError(t, err)
	assert.False(t, less)
}

func TestParseMoney(t *testing.T) {
	m, err := domain.ParseMoney("usd 1.50")
	require.NoError(t, err)
	assert.Equal(t, "USD", m.Currency)
	assert.True(t, m.Amount.Equal(decimal.RequireFromString("1.5")))

	_, err = domain.ParseMoney("1.50")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = domain.ParseMoney("EUR one")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestMoneyRoundToScale(t *testing.T) {
	// Banker's rounding: ties go to the even neighbour.
	tests := []struct {
		in   string
		want string
	}{
		{"EUR 1.00005", "EUR 1"},
		{"EUR 1.00015", "EUR 1.0002"},
		{"EUR 1.00012", "EUR 1.0001"},
		{"EUR 1.2345", "EUR 1.2345"},
	}

	for _, tt := range tests {
		got := domain.MustParseMoney(tt.in).RoundToScale(domain.BalanceScale)
		assert.Equal(t, tt.want, got.String(), "rounding %s", tt.in)
	}
}

func TestMoneyNegate(t *testing.T) {
	m := domain.MustParseMoney("EUR 5")
	n := m.Negate()

	assert.Equal(t, "EUR -5", n.String())
	assert.True(t, m.IsPositive())
	assert.False(t, n.IsPositive())
	assert.True(t, domain.NewMoney(decimal.Zero, "EUR").IsZero())
}
