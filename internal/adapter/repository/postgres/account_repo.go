package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finvo/transferd/internal/domain"
	"github.com/finvo/transferd/internal/infrastructure/postgres/generated"
	"github.com/finvo/transferd/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository. Loaded
// balances are tagged with the settlement currency, the only currency
// the balance column stores.
type AccountRepository struct {
	pool       *pgxpool.Pool
	queries    *generated.Queries
	settlement string
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool, settlementCurrency string) *AccountRepository {
	return &AccountRepository{
		pool:       pool,
		queries:    generated.New(pool),
		settlement: settlementCurrency,
	}
}

// GetPairForUpdate locks and loads both accounts of a transfer with a
// single FOR UPDATE statement scoped to tx. Ids that do not resolve are
// simply absent from the result; the caller decides what that means.
func (r *AccountRepository) GetPairForUpdate(ctx context.Context, tx usecase.Transaction, fromID, toID string) ([]*domain.Account, error) {
	queries := generated.New(tx.(*Tx).PgxTx())

	ids := []string{fromID, toID}
	if fromID == toID {
		ids = ids[:1]
	}

	rows, err := queries.GetAccountsForTransfer(ctx, ids)
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, r.rowToAccount(row))
	}

	return accounts, nil
}

// UpdateBalance writes one row's balance, rounding to the column scale.
// The caller must hold the row lock through tx.
func (r *AccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance domain.Money, updatedAt time.Time) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	rounded := balance.RoundToScale(domain.BalanceScale)

	return queries.UpdateAccountBalance(ctx, generated.UpdateAccountBalanceParams{
		ID:        id,
		Balance:   decimalToNumeric(rounded.Amount),
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	})
}

// GetByID retrieves an account by ID without locking.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row, err := r.queries.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return r.rowToAccount(row), nil
}

// List lists accounts with pagination.
func (r *AccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	rows, err := r.queries.ListAccounts(ctx, generated.ListAccountsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, r.rowToAccount(row))
	}

	return accounts, nil
}

func (r *AccountRepository) rowToAccount(row generated.Account) *domain.Account {
	return &domain.Account{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Balance:   domain.NewMoney(numericToDecimal(row.Balance), r.settlement),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
