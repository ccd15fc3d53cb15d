package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/finvo/transferd/internal/domain"
	"github.com/finvo/transferd/internal/infrastructure/metrics"
)

// TransferUseCase executes transfer intents: it locks both accounts,
// normalizes the requested amount, checks sufficiency, applies both
// balance writes and appends the transaction record, all inside one
// storage transaction.
type TransferUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	txnRepo     TransactionRepository
	normalizer  *CurrencyNormalizer
	idGen       IDGenerator
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	txnRepo TransactionRepository,
	normalizer *CurrencyNormalizer,
	idGen IDGenerator,
	metrics *metrics.Metrics,
	logger zerolog.Logger,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		normalizer:  normalizer,
		idGen:       idGen,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute runs one transfer as a single all-or-nothing unit and returns
// the stored transaction record. The intent must already be validated
// at the boundary. On any failure the enclosing transaction is rolled
// back and neither balances nor the transaction table are touched.
func (uc *TransferUseCase) Execute(ctx context.Context, intent domain.TransferIntent) (*domain.Transaction, error) {
	start := time.Now()

	txn, err := uc.execute(ctx, intent)

	if uc.metrics != nil {
		if err != nil {
			uc.metrics.TransactionErrors.WithLabelValues(errorLabel(err)).Inc()
		} else {
			uc.metrics.TransactionsExecuted.Inc()
			uc.metrics.TransactionDuration.Observe(time.Since(start).Seconds())
		}
	}

	return txn, err
}

func (uc *TransferUseCase) execute(ctx context.Context, intent domain.TransferIntent) (*domain.Transaction, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	uc.logger.Debug().
		Str("from", intent.FromAccountID).
		Str("to", intent.ToAccountID).
		Stringer("amount", intent.Amount).
		Msg("executing transfer")

	// Both rows are locked by one statement; this is the only point a
	// transfer may block on another in-flight transfer.
	accounts, err := uc.accountRepo.GetPairForUpdate(ctx, tx, intent.FromAccountID, intent.ToAccountID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	fromAccount := byID[intent.FromAccountID]
	if fromAccount == nil {
		return nil, fmt.Errorf("%w: the from account '%s' is not a valid account", domain.ErrInvalidAccount, intent.FromAccountID)
	}

	toAccount := byID[intent.ToAccountID]
	if toAccount == nil {
		return nil, fmt.Errorf("%w: the to account '%s' is not a valid account", domain.ErrInvalidAccount, intent.ToAccountID)
	}

	normalized, err := uc.normalizer.Convert(ctx, intent.Amount)
	if err != nil {
		return nil, err
	}

	insufficient, err := fromAccount.Balance.LessThan(normalized)
	if err != nil {
		return nil, err
	}

	if insufficient {
		return nil, domain.ErrInsufficientBalance
	}

	now := time.Now().UTC()

	newToBalance, err := toAccount.Balance.Add(normalized)
	if err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, toAccount.ID, newToBalance, now); err != nil {
		return nil, err
	}
	toAccount.Balance = newToBalance

	newFromBalance, err := fromAccount.Balance.Sub(normalized)
	if err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, fromAccount.ID, newFromBalance, now); err != nil {
		return nil, err
	}
	fromAccount.Balance = newFromBalance

	// The record keeps the original requested amount and currency, not
	// the normalized value.
	txn := &domain.Transaction{
		ID:            uc.idGen.Generate(),
		Amount:        intent.Amount,
		FromAccountID: intent.FromAccountID,
		ToAccountID:   intent.ToAccountID,
		CreatedAt:     now,
	}

	if err := uc.txnRepo.Create(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	uc.logger.Debug().Str("transaction_id", txn.ID).Msg("transfer committed")

	return txn, nil
}

// errorLabel buckets transfer failures for the error counter.
func errorLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAccount):
		return "invalid_account"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, domain.ErrRateUnavailable):
		return "rate_unavailable"
	default:
		return "internal"
	}
}

// GetTransaction retrieves a transaction record by ID.
func (uc *TransferUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.txnRepo.GetByID(ctx, id)
}

// ListTransactionsByAccountInput represents input for listing records.
type ListTransactionsByAccountInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListTransactionsByAccount lists transaction records touching an account.
func (uc *TransferUseCase) ListTransactionsByAccount(ctx context.Context, input ListTransactionsByAccountInput) ([]*domain.Transaction, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.txnRepo.ListByAccount(ctx, input.AccountID, input.Limit, input.Offset)
}
