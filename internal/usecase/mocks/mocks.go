package mocks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/finvo/transferd/internal/domain"
	"github.com/finvo/transferd/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
// Without overrides it behaves as an in-memory store.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	GetPairForUpdateFunc func(ctx context.Context, tx usecase.Transaction, fromID, toID string) ([]*domain.Account, error)
	UpdateBalanceFunc    func(ctx context.Context, tx usecase.Transaction, id string, balance domain.Money, updatedAt time.Time) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Account, error)
	ListFunc             func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// Seed stores an account directly, bypassing any overrides.
func (m *MockAccountRepository) Seed(accounts ...*domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range accounts {
		m.accounts[a.ID] = a
	}
}

func (m *MockAccountRepository) GetPairForUpdate(ctx context.Context, tx usecase.Transaction, fromID, toID string) ([]*domain.Account, error) {
	if m.GetPairForUpdateFunc != nil {
		return m.GetPairForUpdateFunc(ctx, tx, fromID, toID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	if acc, ok := m.accounts[fromID]; ok {
		accounts = append(accounts, acc)
	}
	if acc, ok := m.accounts[toID]; ok && toID != fromID {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance domain.Money, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[id]; ok {
		acc.Balance = balance.RoundToScale(domain.BalanceScale)
		acc.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.Transaction
	order   []string

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Transaction, error)
	ListByAccountFunc func(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		records: make(map[string]*domain.Transaction),
	}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[txn.ID] = txn
	m.order = append(m.order, txn.ID)
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if txn, ok := m.records[id]; ok {
		return txn, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Transaction
	for _, id := range m.order {
		txn := m.records[id]
		if txn.FromAccountID == accountID || txn.ToAccountID == accountID {
			out = append(out, txn)
		}
	}
	return out, nil
}

// Count returns the number of stored records.
func (m *MockTransactionRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	mu         sync.Mutex
	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
// Without overrides every Begin hands out a fresh MockTransaction; the
// last one is retained for assertions.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	mu     sync.Mutex
	LastTx *MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.LastTx = tx
	return tx, nil
}

// SerializingTransactionManager simulates row-lock serialization: the
// transaction handed out by Begin holds a mutex until it commits or
// rolls back, so concurrent transfers execute one at a time the way
// conflicting FOR UPDATE transactions do.
type SerializingTransactionManager struct {
	mu sync.Mutex
}

func NewSerializingTransactionManager() *SerializingTransactionManager {
	return &SerializingTransactionManager{}
}

func (m *SerializingTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	m.mu.Lock()
	tx := &serializedTx{release: m.mu.Unlock}
	return tx, nil
}

type serializedTx struct {
	once    sync.Once
	release func()
}

func (t *serializedTx) Commit(ctx context.Context) error {
	t.once.Do(t.release)
	return nil
}

func (t *serializedTx) Rollback(ctx context.Context) error {
	t.once.Do(t.release)
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator producing
// sequential ids.
type MockIDGenerator struct {
	GenerateFunc func() string

	mu   sync.Mutex
	next int
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return "txn-" + strconv.Itoa(m.next)
}
