package domain

import "errors"

var (
	// Request validation errors
	ErrMissingField        = errors.New("missing required field")
	ErrInvalidAmount       = errors.New("only nonzero positive amount is valid")
	ErrUnsupportedCurrency = errors.New("unsupported currency code")

	// Transfer errors
	ErrInvalidAccount      = errors.New("invalid account")
	ErrInsufficientBalance = errors.New("not enough balance in the account to perform this transaction")
	ErrRateUnavailable     = errors.New("exchange rate unavailable")

	// Lookup errors
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCurrencyMismatch guards Money arithmetic. The engine only
	// combines normalized values, so it never reaches a client.
	ErrCurrencyMismatch = errors.New("cannot combine amounts in different currencies")
)
