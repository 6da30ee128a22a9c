package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fintrackapp/fintrack/internal/common"
	"github.com/fintrackapp/fintrack/internal/model"
	"github.com/fintrackapp/fintrack/internal/notify"
	"github.com/fintrackapp/fintrack/internal/storage"
)

// DefaultThresholds is the canonical alert ladder: a budget fires one
// notification the first time spending crosses each tier, highest tier wins.
var DefaultThresholds = []int{70, 80, 90, 100}

// Options tunes store behavior. The zero value is usable.
type Options struct {
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
	// Thresholds is the budget alert ladder in ascending order.
	// Defaults to DefaultThresholds.
	Thresholds []int
}

// Store owns the in-memory domain collections and coordinates derived
// aggregates, alert bookkeeping, and write-through persistence.
//
// Mutations return once in-memory state is updated; persistence runs on a
// single background writer so partial writes never interleave, and failures
// are logged rather than surfaced (the next evaluation cycle self-heals).
type Store struct {
	persister Persister
	notifier  notify.Notifier
	now       func() time.Time

	mu           sync.Mutex
	transactions []model.Transaction
	categories   []model.ExpenseCategory
	debts        []model.Debt
	budgets      []model.Budget
	settings     model.NotificationSettings
	theme        model.Theme
	currency     model.Currency
	summary      model.Summary
	loaded       bool

	thresholds []int

	// write-through queue, drained by a single writer goroutine
	queue      []write
	wake       chan struct{}
	writerDone chan struct{}
	closed     bool
}

type write struct {
	payload any
	key     string
}

// New creates a store backed by the given persister and notifier. Call Load
// before using it and Close when done.
func New(persister Persister, notifier notify.Notifier, opts Options) *Store {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	thresholds := opts.Thresholds
	if len(thresholds) == 0 {
		thresholds = DefaultThresholds
	}

	s := &Store{
		persister:  persister,
		notifier:   notifier,
		now:        now,
		thresholds: thresholds,
		theme:      model.ThemeSystem,
		currency:   model.DefaultCurrency,
		wake:       make(chan struct{}, 1),
		writerDone: make(chan struct{}),
	}
	go s.runWriter()
	return s
}

// Load reads every collection from the persister. Missing keys are empty
// collections; when no categories are stored the default set is seeded and
// persisted. Load must complete before any other operation.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	if err := s.loadCollection(ctx, storage.KeyTransactions, &s.transactions); err != nil {
		return err
	}
	if err := s.loadCollection(ctx, storage.KeyDebts, &s.debts); err != nil {
		return err
	}
	if err := s.loadCollection(ctx, storage.KeyBudgets, &s.budgets); err != nil {
		return err
	}
	if err := s.loadCollection(ctx, storage.KeyCategories, &s.categories); err != nil {
		return err
	}
	if err := s.loadCollection(ctx, storage.KeyNotificationSettings, &s.settings); err != nil {
		return err
	}
	if err := s.loadCollection(ctx, storage.KeyTheme, &s.theme); err != nil {
		return err
	}
	if err := s.loadCollection(ctx, storage.KeyUserCurrency, &s.currency); err != nil {
		return err
	}

	if len(s.categories) == 0 {
		s.categories = model.DefaultCategories()
		s.enqueueLocked(storage.KeyCategories, snapshotCategories(s.categories))
	}
	if s.theme == "" {
		s.theme = model.ThemeSystem
	}
	if s.currency.Code == "" {
		s.currency = model.DefaultCurrency
	}

	s.summary = model.Summarize(s.transactions)
	s.loaded = true
	return nil
}

// loadCollection reads one key, treating an absent key as "keep the zero
// value".
func (s *Store) loadCollection(ctx context.Context, key string, v any) error {
	err := s.persister.GetJSON(ctx, key, v)
	if err == nil || errors.Is(err, common.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", key, err)
}

// Close drains pending writes and stops the background writer. The store
// must not be used afterwards.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	<-s.writerDone
	return nil
}

// requireLoaded guards mutations against use before Load. This is an
// initialization-order programming error, not a runtime condition.
func (s *Store) requireLoaded() error {
	if !s.loaded {
		return common.ErrStoreNotLoaded
	}
	return nil
}

// enqueueLocked snapshots a collection for the background writer. Callers
// must hold s.mu. The caller's mutation is "done" at this point; durability
// is best-effort.
func (s *Store) enqueueLocked(key string, payload any) {
	if s.closed {
		return
	}
	s.queue = append(s.queue, write{key: key, payload: payload})
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// runWriter drains the queue in order. One writer per store, so writes for
// a key can never interleave or apply out of order.
func (s *Store) runWriter() {
	defer close(s.writerDone)

	for {
		s.mu.Lock()
		pending := s.queue
		s.queue = nil
		closed := s.closed
		s.mu.Unlock()

		for _, w := range pending {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := s.persister.PutJSON(ctx, w.key, w.payload); err != nil {
				common.LogError(err, "failed to persist collection", common.Fields{"key": w.key})
			}
			cancel()
		}

		if closed {
			s.mu.Lock()
			done := len(s.queue) == 0
			s.mu.Unlock()
			if done {
				return
			}
			continue
		}

		<-s.wake
	}
}
