package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finvo/transferd/internal/domain"
	"github.com/finvo/transferd/internal/infrastructure/postgres/generated"
	"github.com/finvo/transferd/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository. The
// transactions table is append-only: this type deliberately has no
// update or delete methods.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create appends one transaction record inside tx. The record's amount
// column stores the value at the column scale; the currency code is the
// one the client originally requested.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	amount := txn.Amount.RoundToScale(domain.BalanceScale)

	_, err := queries.CreateTransaction(ctx, generated.CreateTransactionParams{
		ID:           txn.ID,
		Amount:       decimalToNumeric(amount.Amount),
		CurrencyCode: txn.Amount.Currency,
		FromAccount:  txn.FromAccountID,
		ToAccount:    txn.ToAccountID,
		CreatedAt:    timeToPgTimestamptz(txn.CreatedAt),
	})

	return err
}

// GetByID retrieves a transaction record by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row, err := r.queries.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return rowToTransaction(row), nil
}

// ListByAccount lists records where the account is either side.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListTransactionsByAccount(ctx, generated.ListTransactionsByAccountParams{
		FromAccount: accountID,
		Limit:       int32(limit),
		Offset:      int32(offset),
	})
	if err != nil {
		return nil, err
	}

	txns := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		txns = append(txns, rowToTransaction(row))
	}

	return txns, nil
}

func rowToTransaction(row generated.Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:            row.ID,
		Amount:        domain.NewMoney(numericToDecimal(row.Amount), row.CurrencyCode),
		FromAccountID: row.FromAccount,
		ToAccountID:   row.ToAccount,
		CreatedAt:     row.CreatedAt.Time,
	}
}
