package domain

import "time"

// Transaction is the immutable record of one committed transfer. Amount
// keeps the currency and value the client originally requested, before
// normalization to the settlement currency.
type Transaction struct {
	ID            string
	Amount        Money
	FromAccountID string
	ToAccountID   string
	CreatedAt     time.Time
}
