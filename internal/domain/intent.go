package domain

import "fmt"

// TransferIntent is the caller's request to move funds between two
// accounts. It is validated at the boundary; the engine assumes a
// well-formed intent.
type TransferIntent struct {
	FromAccountID string
	ToAccountID   string
	Amount        Money
}

// Validate checks the intent's shape: presence of both account ids and
// the amount, a strictly positive value, and a supported currency.
func (i TransferIntent) Validate(supportedCurrencies map[string]bool) error {
	if i.FromAccountID == "" {
		return fmt.Errorf("%w: 'fromAccountId'", ErrMissingField)
	}

	if i.ToAccountID == "" {
		return fmt.Errorf("%w: 'toAccountId'", ErrMissingField)
	}

	if i.Amount.Currency == "" && i.Amount.Amount.IsZero() {
		return fmt.Errorf("%w: 'amount'", ErrMissingField)
	}

	if !i.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if !supportedCurrencies[i.Amount.Currency] {
		return fmt.Errorf("%w: %q", ErrUnsupportedCurrency, i.Amount.Currency)
	}

	return nil
}
