package usecase

import (
	"context"
	"fmt"

	"github.com/finvo/transferd/internal/domain"
)

// CurrencyNormalizer converts amounts into the ledger's settlement
// currency, the single currency all balances are stored in.
type CurrencyNormalizer struct {
	rates      RateProvider
	settlement string
}

// NewCurrencyNormalizer creates a CurrencyNormalizer.
func NewCurrencyNormalizer(rates RateProvider, settlementCurrency string) *CurrencyNormalizer {
	return &CurrencyNormalizer{
		rates:      rates,
		settlement: settlementCurrency,
	}
}

// SettlementCurrency returns the currency balances are stored in.
func (n *CurrencyNormalizer) SettlementCurrency() string {
	return n.settlement
}

// Convert returns m expressed in the settlement currency. When m
// already carries it, the input is returned as-is without a rate
// lookup. The converted amount keeps full precision; rounding happens
// at the storage boundary.
func (n *CurrencyNormalizer) Convert(ctx context.Context, m domain.Money) (domain.Money, error) {
	if m.Currency == n.settlement {
		return m, nil
	}

	rate, err := n.rates.Rate(ctx, m.Currency, n.settlement)
	if err != nil {
		return domain.Money{}, fmt.Errorf("%w: %s->%s: %v", domain.ErrRateUnavailable, m.Currency, n.settlement, err)
	}

	return domain.NewMoney(m.Amount.Mul(rate), n.settlement), nil
}
