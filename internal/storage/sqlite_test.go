package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fintrackapp/fintrack/internal/common"
	"github.com/fintrackapp/fintrack/internal/model"
)

// Helper function to create test storage.
func createTestStore(t *testing.T) *KVStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	kv, err := NewKVStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })

	ctx := context.Background()
	if err := kv.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return kv
}

func TestKVStore_PutGet(t *testing.T) {
	kv := createTestStore(t)
	ctx := context.Background()

	if err := kv.Put(ctx, "theme", []byte(`"dark"`)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := kv.Get(ctx, "theme")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `"dark"` {
		t.Errorf("Get() = %s, want %s", got, `"dark"`)
	}

	// Overwrite replaces the previous value.
	if err := kv.Put(ctx, "theme", []byte(`"light"`)); err != nil {
		t.Fatalf("Put() overwrite error = %v", err)
	}
	got, err = kv.Get(ctx, "theme")
	if err != nil {
		t.Fatalf("Get() after overwrite error = %v", err)
	}
	if string(got) != `"light"` {
		t.Errorf("Get() after overwrite = %s, want %s", got, `"light"`)
	}
}

func TestKVStore_GetMissingKey(t *testing.T) {
	kv := createTestStore(t)

	_, err := kv.Get(context.Background(), "transactions")
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Get() on missing key error = %v, want ErrNotFound", err)
	}
}

func TestKVStore_Delete(t *testing.T) {
	kv := createTestStore(t)
	ctx := context.Background()

	if err := kv.Put(ctx, "budgets", []byte(`[]`)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := kv.Delete(ctx, "budgets"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := kv.Get(ctx, "budgets"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}

	// Deleting an absent key is not an error.
	if err := kv.Delete(ctx, "budgets"); err != nil {
		t.Errorf("Delete() on absent key error = %v", err)
	}
}

func TestKVStore_Keys(t *testing.T) {
	kv := createTestStore(t)
	ctx := context.Background()

	for _, key := range []string{KeyTransactions, KeyDebts, KeyBudgets} {
		if err := kv.Put(ctx, key, []byte(`[]`)); err != nil {
			t.Fatalf("Put(%s) error = %v", key, err)
		}
	}

	keys, err := kv.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	if len(keys) != 3 {
		t.Errorf("Keys() returned %d keys, want 3", len(keys))
	}
}

func TestKVStore_JSONRoundTrip(t *testing.T) {
	kv := createTestStore(t)
	ctx := context.Background()

	want := []model.Debt{
		{
			ID:         "d1",
			PersonName: "Alice",
			Type:       model.DebtLent,
			Status:     model.DebtPartiallyPaid,
			Amount:     500,
			Payments:   []model.Payment{{ID: "p1", Amount: 200}},
		},
	}

	if err := kv.PutJSON(ctx, KeyDebts, want); err != nil {
		t.Fatalf("PutJSON() error = %v", err)
	}

	var got []model.Debt
	if err := kv.GetJSON(ctx, KeyDebts, &got); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "d1" || got[0].Status != model.DebtPartiallyPaid {
		t.Errorf("GetJSON() = %+v, want %+v", got, want)
	}
	if len(got[0].Payments) != 1 || got[0].Payments[0].Amount != 200 {
		t.Errorf("GetJSON() payments = %+v, want embedded payment preserved", got[0].Payments)
	}
}

func TestKVStore_Validation(t *testing.T) {
	kv := createTestStore(t)
	ctx := context.Background()

	if _, err := kv.Get(ctx, ""); !errors.Is(err, ErrEmptyString) {
		t.Errorf("Get() with empty key error = %v, want ErrEmptyString", err)
	}
	if err := kv.Put(ctx, "key", nil); !errors.Is(err, ErrNilParameter) {
		t.Errorf("Put() with nil value error = %v, want ErrNilParameter", err)
	}
}

func TestKVStore_MigrateIdempotent(t *testing.T) {
	kv := createTestStore(t)

	// Re-running migrations on a current database is a no-op.
	if err := kv.Migrate(context.Background()); err != nil {
		t.Errorf("second Migrate() error = %v", err)
	}
}
