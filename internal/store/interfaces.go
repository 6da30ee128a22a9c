// Package store implements the domain store: the in-memory collections of
// transactions, debts, budgets and categories, their derived aggregates, and
// the budget-threshold alert bookkeeping. It owns all collections for the
// lifetime of the process; the persistence layer holds the durable copy.
package store

import "context"

// Persister is the key-value persistence contract the store depends on.
// *storage.KVStore satisfies it; tests substitute an in-memory fake.
type Persister interface {
	GetJSON(ctx context.Context, key string, v any) error
	PutJSON(ctx context.Context, key string, v any) error
}
