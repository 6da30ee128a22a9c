package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fintrackapp/fintrack/internal/model"
	"github.com/fintrackapp/fintrack/internal/storage"
)

// ExportPayload is the share-data shape: the user's records plus the moment
// they were exported. Read-only; there is no import path.
type ExportPayload struct {
	ExportDate   time.Time           `json:"exportDate"`
	Transactions []model.Transaction `json:"transactions"`
	Debts        []model.Debt        `json:"debts"`
	Budgets      []model.Budget      `json:"budgets"`
}

// ExportData serializes transactions, debts and budgets to indented JSON.
func (s *Store) ExportData() ([]byte, error) {
	s.mu.Lock()
	payload := ExportPayload{
		Transactions: snapshotSlice(s.transactions),
		Debts:        snapshotDebts(s.debts),
		Budgets:      snapshotSlice(s.budgets),
		ExportDate:   s.now(),
	}
	s.mu.Unlock()

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}
	return data, nil
}

// ClearData empties every user collection and re-seeds the default
// categories, mirroring the settings screen's "clear all data" action.
func (s *Store) ClearData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return err
	}

	s.transactions = nil
	s.debts = nil
	s.budgets = nil
	s.categories = model.DefaultCategories()
	s.summary = model.Summary{}

	s.enqueueLocked(storage.KeyTransactions, []model.Transaction{})
	s.enqueueLocked(storage.KeyDebts, []model.Debt{})
	s.enqueueLocked(storage.KeyBudgets, []model.Budget{})
	s.enqueueLocked(storage.KeyCategories, snapshotCategories(s.categories))
	return nil
}
