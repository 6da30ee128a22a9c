package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackapp/fintrack/internal/model"
)

func TestStore_CategoryLookups(t *testing.T) {
	s, _, _ := newTestStore(t, Options{})

	c, ok := s.CategoryByID("2")
	require.True(t, ok)
	assert.Equal(t, "Food", c.Name)

	sc, ok := s.SubCategoryByID("2-1")
	require.True(t, ok)
	assert.Equal(t, "Groceries", sc.Name)
	assert.Equal(t, "2", sc.ParentID)

	_, ok = s.CategoryByID("nope")
	assert.False(t, ok)
	_, ok = s.SubCategoryByID("nope")
	assert.False(t, ok)
}

func TestStore_AddAndUpdateCategory(t *testing.T) {
	s, _, _ := newTestStore(t, Options{})
	ctx := context.Background()

	c, err := s.AddCategory(ctx, "Pets", "#aabbcc")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Empty(t, c.SubCategories)

	c.Name = "Pet Care"
	require.NoError(t, s.UpdateCategory(ctx, c))

	got, ok := s.CategoryByID(c.ID)
	require.True(t, ok)
	assert.Equal(t, "Pet Care", got.Name)
}

func TestStore_DeleteCategoryCascades(t *testing.T) {
	s, _, _ := newTestStore(t, Options{})
	ctx := context.Background()

	_, err := s.AddTransaction(ctx, TransactionInput{Amount: 50, Type: model.TypeExpense, CategoryID: "2"})
	require.NoError(t, err)
	_, err = s.AddTransaction(ctx, TransactionInput{Amount: 30, Type: model.TypeExpense, CategoryID: "3"})
	require.NoError(t, err)
	_, err = s.AddBudget(ctx, BudgetInput{CategoryID: "2", Amount: 100, Period: model.PeriodMonthly})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCategory(ctx, "2"))

	_, ok := s.CategoryByID("2")
	assert.False(t, ok)
	assert.Len(t, s.Transactions(), 1, "transactions in the deleted category go with it")
	assert.Empty(t, s.Budgets(), "budgets scoped to the deleted category go with it")
	assert.Equal(t, 30.0, s.Summary().TotalExpenses, "aggregates reflect the cascade")
}

func TestStore_SubCategoryCRUD(t *testing.T) {
	s, _, _ := newTestStore(t, Options{})
	ctx := context.Background()

	sc, err := s.AddSubCategory(ctx, "Coffee", "2")
	require.NoError(t, err)
	require.NotEmpty(t, sc.ID)

	sc.Name = "Coffee & Tea"
	require.NoError(t, s.UpdateSubCategory(ctx, sc))

	got, ok := s.SubCategoryByID(sc.ID)
	require.True(t, ok)
	assert.Equal(t, "Coffee & Tea", got.Name)

	// Cascade: a transaction tagged with the subcategory goes when it does.
	_, err = s.AddTransaction(ctx, TransactionInput{Amount: 5, Type: model.TypeExpense, CategoryID: "2", SubCategoryID: sc.ID})
	require.NoError(t, err)
	require.NoError(t, s.DeleteSubCategory(ctx, sc.ID))

	_, ok = s.SubCategoryByID(sc.ID)
	assert.False(t, ok)
	assert.Empty(t, s.Transactions())
}

func TestStore_AddSubCategoryUnknownParentIsNoop(t *testing.T) {
	s, _, _ := newTestStore(t, Options{})

	sc, err := s.AddSubCategory(context.Background(), "Orphan", "no-such-category")
	require.NoError(t, err)
	assert.Empty(t, sc.ID, "no subcategory is created for an unknown parent")
}

func TestStore_DeleteCategoryUnknownIDIsNoop(t *testing.T) {
	s, _, _ := newTestStore(t, Options{})

	require.NoError(t, s.DeleteCategory(context.Background(), "no-such-id"))
	assert.Len(t, s.Categories(), 12)
}
