package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finvo/transferd/internal/domain"
)

// CreateTransactionRequest represents a request to move funds between
// two accounts.
type CreateTransactionRequest struct {
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
}

// ToIntent converts the request to a transfer intent.
func (r *CreateTransactionRequest) ToIntent() domain.TransferIntent {
	return domain.TransferIntent{
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Amount:        domain.NewMoney(r.Amount, r.Currency),
	}
}
