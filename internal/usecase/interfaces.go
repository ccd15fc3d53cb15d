package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvo/transferd/internal/domain"
)

//go:generate mockgen -destination=mocks/mock_rates.go -package=mocks github.com/finvo/transferd/internal/usecase RateProvider

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	// GetPairForUpdate locks and loads both rows of a transfer in one
	// FOR UPDATE statement. Locking both ids together, rather than one
	// at a time, is what makes opposite-direction transfers over the
	// same pair unable to deadlock. Precondition: tx is an active
	// transaction; the locks live until it commits or rolls back.
	GetPairForUpdate(ctx context.Context, tx Transaction, fromID, toID string) ([]*domain.Account, error)
	// UpdateBalance writes one row's balance. Precondition: the caller
	// holds the row lock through tx.
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance domain.Money, updatedAt time.Time) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// TransactionRepository defines append-only data access for transfer
// records. Records are immutable: there is no update or delete.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error)
}

// RateProvider supplies exchange rates between two currencies.
type RateProvider interface {
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
