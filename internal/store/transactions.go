package store

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrackapp/fintrack/internal/common"
	"github.com/fintrackapp/fintrack/internal/model"
	"github.com/fintrackapp/fintrack/internal/storage"
)

// TransactionInput is the caller-supplied part of a new transaction.
type TransactionInput struct {
	Date          time.Time
	Description   string
	Type          model.TransactionType
	CategoryID    string
	SubCategoryID string
	Amount        float64
}

// AddTransaction assigns an id, appends the transaction, recomputes the
// aggregates, persists, and re-evaluates budget thresholds.
func (s *Store) AddTransaction(ctx context.Context, input TransactionInput) (model.Transaction, error) {
	var alerts []budgetAlert
	defer func() { s.dispatchBudgetAlerts(ctx, alerts) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return model.Transaction{}, err
	}
	if input.Amount <= 0 {
		return model.Transaction{}, fmt.Errorf("%w: amount must be positive", common.ErrInvalidInput)
	}
	if !input.Type.Valid() {
		return model.Transaction{}, fmt.Errorf("%w: unknown transaction type %q", common.ErrInvalidInput, input.Type)
	}

	date := input.Date
	if date.IsZero() {
		date = s.now()
	}

	t := model.Transaction{
		ID:            newID(),
		Amount:        input.Amount,
		Description:   input.Description,
		Date:          date,
		Type:          input.Type,
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
	}

	s.transactions = append(s.transactions, t)
	alerts = s.afterTransactionChangeLocked()
	return t, nil
}

// UpdateTransaction replaces the transaction with a matching id. An unknown
// id is a silent no-op so stale references from callers never error.
func (s *Store) UpdateTransaction(ctx context.Context, t model.Transaction) error {
	var alerts []budgetAlert
	defer func() { s.dispatchBudgetAlerts(ctx, alerts) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return err
	}

	for i := range s.transactions {
		if s.transactions[i].ID == t.ID {
			s.transactions[i] = t
			alerts = s.afterTransactionChangeLocked()
			return nil
		}
	}
	return nil
}

// DeleteTransaction removes the matching entry. Unknown ids are a no-op.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	var alerts []budgetAlert
	defer func() { s.dispatchBudgetAlerts(ctx, alerts) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return err
	}

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			alerts = s.afterTransactionChangeLocked()
			return nil
		}
	}
	return nil
}

// Transactions returns a copy of the current collection.
func (s *Store) Transactions() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Summary returns the current derived aggregates.
func (s *Store) Summary() model.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// afterTransactionChangeLocked runs the bookkeeping every transaction-set
// mutation triggers: aggregate recompute, write-through, and threshold
// evaluation. Callers must hold s.mu and dispatch the returned alerts after
// releasing it.
func (s *Store) afterTransactionChangeLocked() []budgetAlert {
	s.summary = model.Summarize(s.transactions)
	s.enqueueLocked(storage.KeyTransactions, snapshotSlice(s.transactions))
	return s.evaluateBudgetsLocked()
}

// snapshotSlice copies a collection so the background writer never sees a
// slice the store is still appending to.
func snapshotSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
