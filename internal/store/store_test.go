package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackapp/fintrack/internal/common"
	"github.com/fintrackapp/fintrack/internal/model"
	"github.com/fintrackapp/fintrack/internal/notify"
	"github.com/fintrackapp/fintrack/internal/storage"
)

// memPersister is an in-memory Persister for tests.
type memPersister struct {
	data map[string][]byte
	mu   sync.Mutex
}

func newMemPersister() *memPersister {
	return &memPersister{data: make(map[string][]byte)}
}

func (m *memPersister) GetJSON(_ context.Context, key string, v any) error {
	m.mu.Lock()
	raw, ok := m.data[key]
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: key %q", common.ErrNotFound, key)
	}
	return json.Unmarshal(raw, v)
}

func (m *memPersister) PutJSON(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *memPersister) get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	return raw, ok
}

func newTestStore(t *testing.T, opts Options) (*Store, *memPersister, *notify.Recorder) {
	t.Helper()
	p := newMemPersister()
	rec := notify.NewRecorder()
	s := New(p, rec, opts)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Load(context.Background()))
	return s, p, rec
}

func TestStore_LoadSeedsDefaultCategories(t *testing.T) {
	s, _, _ := newTestStore(t, Options{})

	categories := s.Categories()
	require.Len(t, categories, 12)
	assert.Equal(t, "Housing", categories[0].Name)
	assert.Equal(t, "Rent", categories[0].SubCategories[0].Name)

	// Loading twice is a no-op.
	require.NoError(t, s.Load(context.Background()))
	assert.Len(t, s.Categories(), 12)
}

func TestStore_LoadKeepsStoredCategories(t *testing.T) {
	p := newMemPersister()
	stored := []model.ExpenseCategory{{ID: "c1", Name: "Groceries", Color: "#fff"}}
	require.NoError(t, p.PutJSON(context.Background(), storage.KeyCategories, stored))

	s := New(p, notify.NewRecorder(), Options{})
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Load(context.Background()))

	categories := s.Categories()
	require.Len(t, categories, 1)
	assert.Equal(t, "Groceries", categories[0].Name)
}

func TestStore_UseBeforeLoad(t *testing.T) {
	s := New(newMemPersister(), notify.NewRecorder(), Options{})
	t.Cleanup(func() { _ = s.Close() })

	_, err := s.AddTransaction(context.Background(), TransactionInput{Amount: 10, Type: model.TypeIncome})
	assert.ErrorIs(t, err, common.ErrStoreNotLoaded)
}

func TestStore_AddIncomeTransaction(t *testing.T) {
	s, _, _ := newTestStore(t, Options{})
	ctx := context.Background()

	txn, err := s.AddTransaction(ctx, TransactionInput{
		Amount:      1000,
		Description: "Paycheck",
		Type:        model.TypeIncome,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, txn.ID)

	summary := s.Summary()
	assert.Equal(t, 1000.0, summary.TotalIncome)
	assert.Equal(t, 0.0, summary.TotalExpenses)
	assert.Equal(t, 1000.0, summary.Balance)
}

func TestStore_AddExpenseUpdatesBalance(t *testing.T) {
	s, _, _ := newTestStore(t, Options{})
	ctx := context.Background()

	_, err := s.AddTransaction(ctx, TransactionInput{Amount: 1000, Type: model.TypeIncome})
	require.NoError(t, err)
	_, err = s.AddTransaction(ctx, TransactionInput{Amount: 300, Type: model.TypeExpense, CategoryID: "2"})
	require.NoError(t, err)

	summary := s.Summary()
	assert.Equal(t, 300.0, summary.TotalExpenses)
	assert.Equal(t, 700.0, summary.Balance)
}

func TestStore_AddTransactionValidation(t *testing.T) {
	s, _, _ := newTestStore(t, Options{})
	ctx := context.Background()

	_, err := s.AddTransaction(ctx, TransactionInput{Amount: 0, Type: model.TypeIncome})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = s.AddTransaction(ctx, TransactionInput{Amount: -5, Type: model.TypeExpense})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = s.AddTransaction(ctx, TransactionInput{Amount: 5, Type: "transfer"})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestStore_UpdateTransaction(t *testing.T) {
	s, _, _ := newTestStore(t, Options{})
	ctx := context.Background()

	txn, err := s.AddTransaction(ctx, TransactionInput{Amount: 100, Type: model.TypeExpense})
	require.NoError(t, err)

	txn.Amount = 250
	require.NoError(t, s.UpdateTransaction(ctx, txn))
	assert.Equal(t, 250.0, s.Summary().TotalExpenses)
}

func TestStore_DeleteTransactionUnknownIDIsNoop(t *testing.T) {
	s, _, _ := newTestStore(t, Options{})
	ctx := context.Background()

	_, err := s.AddTransaction(ctx, TransactionInput{Amount: 100, Type: model.TypeExpense})
	require.NoError(t, err)
	before := s.Summary()

	require.NoError(t, s.DeleteTransaction(ctx, "no-such-id"))
	assert.Len(t, s.Transactions(), 1)
	assert.Equal(t, before, s.Summary())

	require.NoError(t, s.UpdateTransaction(ctx, model.Transaction{ID: "no-such-id", Amount: 999, Type: model.TypeExpense}))
	assert.Equal(t, before, s.Summary())
}

func TestStore_CloseFlushesWrites(t *testing.T) {
	p := newMemPersister()
	s := New(p, notify.NewRecorder(), Options{})
	require.NoError(t, s.Load(context.Background()))

	_, err := s.AddTransaction(context.Background(), TransactionInput{Amount: 42, Type: model.TypeExpense})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	raw, ok := p.get(storage.KeyTransactions)
	require.True(t, ok, "transactions were not persisted before Close returned")

	var persisted []model.Transaction
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, 42.0, persisted[0].Amount)
}

// slowPersister delays every write so the background writer is still
// marshaling earlier snapshots while the test mutates live state.
type slowPersister struct {
	*memPersister
	delay time.Duration
}

func (p *slowPersister) PutJSON(ctx context.Context, key string, v any) error {
	time.Sleep(p.delay)
	return p.memPersister.PutJSON(ctx, key, v)
}

func TestStore_WriterSnapshotsAreIsolatedFromLaterMutations(t *testing.T) {
	p := &slowPersister{memPersister: newMemPersister(), delay: 50 * time.Millisecond}
	s := New(p, notify.NewRecorder(), Options{})
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	d, err := s.AddDebt(ctx, DebtInput{PersonName: "Alice", Amount: 500, Type: model.DebtBorrowed})
	require.NoError(t, err)
	require.NoError(t, s.AddPayment(ctx, d.ID, PaymentInput{Amount: 100}))
	require.NoError(t, s.AddPayment(ctx, d.ID, PaymentInput{Amount: 100}))

	// Shift the payment list in place while the writer drains the earlier
	// snapshots; their marshaled output must not be affected.
	got, ok := s.DebtByID(d.ID)
	require.True(t, ok)
	require.NoError(t, s.DeletePayment(ctx, d.ID, got.Payments[0].ID))

	sub, err := s.AddSubCategory(ctx, "Takeout", "2")
	require.NoError(t, err)
	sub.Name = "Takeout & Delivery"
	require.NoError(t, s.UpdateSubCategory(ctx, sub))

	require.NoError(t, s.Close())

	var persisted []model.Debt
	require.NoError(t, p.memPersister.GetJSON(ctx, storage.KeyDebts, &persisted))
	require.Len(t, persisted, 1)
	require.Len(t, persisted[0].Payments, 1)
	assert.Equal(t, model.DebtPartiallyPaid, persisted[0].Status)
	assert.Equal(t, 100.0, persisted[0].Payments[0].Amount)

	var cats []model.ExpenseCategory
	require.NoError(t, p.memPersister.GetJSON(ctx, storage.KeyCategories, &cats))
	found, ok2 := cats[1].SubCategoryByID(sub.ID)
	require.True(t, ok2)
	assert.Equal(t, "Takeout & Delivery", found.Name)
}

func TestStore_ReturnedCollectionsAreDetached(t *testing.T) {
	s, _, _ := newTestStore(t, Options{})
	ctx := context.Background()

	d, err := s.AddDebt(ctx, DebtInput{PersonName: "Alice", Amount: 500, Type: model.DebtLent})
	require.NoError(t, err)
	require.NoError(t, s.AddPayment(ctx, d.ID, PaymentInput{Amount: 100}))

	debts := s.Debts()
	require.Len(t, debts[0].Payments, 1)
	debts[0].Payments[0].Amount = 9999

	got, ok := s.DebtByID(d.ID)
	require.True(t, ok)
	assert.Equal(t, 100.0, got.Payments[0].Amount, "caller writes must not reach live state")
	got.Payments[0].Amount = 7777
	assert.Equal(t, 100.0, s.Debts()[0].Payments[0].Amount)

	cats := s.Categories()
	require.NotEmpty(t, cats[0].SubCategories)
	cats[0].SubCategories[0].Name = "tampered"

	c, ok := s.CategoryByID(cats[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "tampered", c.SubCategories[0].Name)
	c.SubCategories[0].Name = "tampered again"
	fresh, ok := s.CategoryByID(cats[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "tampered again", fresh.SubCategories[0].Name)
}

func TestStore_ExportData(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s, _, _ := newTestStore(t, Options{Now: func() time.Time { return now }})
	ctx := context.Background()

	_, err := s.AddTransaction(ctx, TransactionInput{Amount: 10, Type: model.TypeExpense})
	require.NoError(t, err)
	_, err = s.AddDebt(ctx, DebtInput{PersonName: "Alice", Amount: 500, Type: model.DebtLent})
	require.NoError(t, err)

	data, err := s.ExportData()
	require.NoError(t, err)

	var payload ExportPayload
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Len(t, payload.Transactions, 1)
	assert.Len(t, payload.Debts, 1)
	assert.Empty(t, payload.Budgets)
	assert.True(t, payload.ExportDate.Equal(now))
}

func TestStore_ClearData(t *testing.T) {
	s, _, _ := newTestStore(t, Options{})
	ctx := context.Background()

	_, err := s.AddTransaction(ctx, TransactionInput{Amount: 10, Type: model.TypeExpense})
	require.NoError(t, err)
	_, err = s.AddCategory(ctx, "Custom", "#123456")
	require.NoError(t, err)

	require.NoError(t, s.ClearData(ctx))
	assert.Empty(t, s.Transactions())
	assert.Empty(t, s.Debts())
	assert.Empty(t, s.Budgets())
	assert.Len(t, s.Categories(), 12)
	assert.Equal(t, model.Summary{}, s.Summary())
}

func TestStore_Settings(t *testing.T) {
	s, _, _ := newTestStore(t, Options{})
	ctx := context.Background()

	assert.False(t, s.NotificationSettings().BudgetAlerts)
	require.NoError(t, s.SetNotificationSettings(ctx, model.NotificationSettings{BudgetAlerts: true}))
	assert.True(t, s.NotificationSettings().BudgetAlerts)

	assert.Equal(t, model.ThemeSystem, s.Theme())
	require.NoError(t, s.SetTheme(ctx, model.ThemeDark))
	assert.Equal(t, model.ThemeDark, s.Theme())
	assert.ErrorIs(t, s.SetTheme(ctx, "sepia"), common.ErrInvalidInput)

	assert.Equal(t, "USD", s.Currency().Code)
	require.NoError(t, s.SetCurrency(ctx, model.Currency{Code: "EUR", Symbol: "€", Name: "Euro"}))
	assert.Equal(t, "€", s.Currency().Symbol)
}

func TestStore_ReloadRoundTrip(t *testing.T) {
	p := newMemPersister()
	ctx := context.Background()

	s := New(p, notify.NewRecorder(), Options{})
	require.NoError(t, s.Load(ctx))
	_, err := s.AddTransaction(ctx, TransactionInput{Amount: 75, Type: model.TypeExpense, CategoryID: "2"})
	require.NoError(t, err)
	_, err = s.AddDebt(ctx, DebtInput{PersonName: "Bob", Amount: 200, Type: model.DebtBorrowed})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// A fresh store over the same persister sees the same state.
	s2 := New(p, notify.NewRecorder(), Options{})
	t.Cleanup(func() { _ = s2.Close() })
	require.NoError(t, s2.Load(ctx))

	assert.Len(t, s2.Transactions(), 1)
	assert.Equal(t, 75.0, s2.Summary().TotalExpenses)
	debts := s2.Debts()
	require.Len(t, debts, 1)
	assert.Equal(t, model.DebtPending, debts[0].Status)
}
