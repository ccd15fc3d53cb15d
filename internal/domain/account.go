package domain

import "time"

// Account holds a balance in the ledger's settlement currency. Rows are
// created by provisioning (seed data or migrations) and mutated only by
// the transfer engine while the row is lock-held.
type Account struct {
	ID        string
	OwnerID   string
	Balance   Money
	CreatedAt time.Time
	UpdatedAt time.Time
}
