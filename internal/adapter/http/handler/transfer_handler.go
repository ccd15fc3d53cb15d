package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finvo/transferd/internal/adapter/http/dto"
	"github.com/finvo/transferd/internal/domain"
	"github.com/finvo/transferd/internal/usecase"
)

// TransferService defines the behavior needed by TransferHandler.
type TransferService interface {
	Execute(ctx context.Context, intent domain.TransferIntent) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, input usecase.ListTransactionsByAccountInput) ([]*domain.Transaction, error)
}

// Retryer re-runs an operation on transient storage failures. The
// transfer engine itself never retries; the handler is the retrying
// caller.
type Retryer interface {
	Retry(ctx context.Context, operation func() error) error
}

// TransferHandler handles transaction-related HTTP requests.
type TransferHandler struct {
	transferUC          TransferService
	retrier             Retryer
	supportedCurrencies map[string]bool
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferUC TransferService, retrier Retryer, supportedCurrencies map[string]bool) *TransferHandler {
	return &TransferHandler{
		transferUC:          transferUC,
		retrier:             retrier,
		supportedCurrencies: supportedCurrencies,
	}
}

// Create executes a transfer and stores its transaction record.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	intent := req.ToIntent()
	if err := intent.Validate(h.supportedCurrencies); err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction request", err.Error())
		return
	}

	var txn *domain.Transaction

	err := h.retrier.Retry(r.Context(), func() error {
		var execErr error
		txn, execErr = h.transferUC.Execute(r.Context(), intent)
		return execErr
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to execute transaction", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.CreateTransactionResponse{TransactionID: txn.ID})
}

// Get retrieves a transaction record by ID.
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	txn, err := h.transferUC.GetTransaction(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get transaction", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(txn))
}

// ListByAccount lists transaction records touching an account.
func (h *TransferHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	txns, err := h.transferUC.ListTransactionsByAccount(r.Context(), usecase.ListTransactionsByAccountInput{
		AccountID: accountID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(txns))
}
