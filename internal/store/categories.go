package store

import (
	"context"
	"fmt"

	"github.com/fintrackapp/fintrack/internal/common"
	"github.com/fintrackapp/fintrack/internal/model"
	"github.com/fintrackapp/fintrack/internal/storage"
)

// Categories returns a copy of the current category collection.
func (s *Store) Categories() []model.ExpenseCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotCategories(s.categories)
}

// snapshotCategories deep-copies the collection. SubCategories are embedded
// slices, so a flat copy would leave the snapshot sharing backing arrays with
// live state that subcategory mutations rewrite in place.
func snapshotCategories(in []model.ExpenseCategory) []model.ExpenseCategory {
	out := make([]model.ExpenseCategory, len(in))
	copy(out, in)
	for i := range out {
		out[i].SubCategories = append([]model.SubCategory(nil), out[i].SubCategories...)
	}
	return out
}

// CategoryByID does a flat lookup across the category list. Callers render a
// miss as "Unknown Category" rather than failing.
func (s *Store) CategoryByID(id string) (model.ExpenseCategory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.ID == id {
			c.SubCategories = append([]model.SubCategory(nil), c.SubCategories...)
			return c, true
		}
	}
	return model.ExpenseCategory{}, false
}

// SubCategoryByID scans every category's subcategory list. Subcategory ids
// are unique across the repository, so the flat search is unambiguous.
func (s *Store) SubCategoryByID(id string) (model.SubCategory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if sc, ok := c.SubCategoryByID(id); ok {
			return sc, true
		}
	}
	return model.SubCategory{}, false
}

// AddCategory creates a category with an empty subcategory set.
func (s *Store) AddCategory(ctx context.Context, name, color string) (model.ExpenseCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return model.ExpenseCategory{}, err
	}
	if name == "" {
		return model.ExpenseCategory{}, fmt.Errorf("%w: category name is required", common.ErrInvalidInput)
	}

	c := model.ExpenseCategory{
		ID:            newID(),
		Name:          name,
		Color:         color,
		SubCategories: []model.SubCategory{},
	}
	s.categories = append(s.categories, c)
	s.enqueueLocked(storage.KeyCategories, snapshotCategories(s.categories))
	return c, nil
}

// UpdateCategory replaces the category with a matching id. Unknown ids are a
// silent no-op.
func (s *Store) UpdateCategory(ctx context.Context, c model.ExpenseCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return err
	}

	for i := range s.categories {
		if s.categories[i].ID == c.ID {
			s.categories[i] = c
			s.enqueueLocked(storage.KeyCategories, snapshotCategories(s.categories))
			return nil
		}
	}
	return nil
}

// DeleteCategory removes a category and cascades: transactions referencing
// it and budgets scoped to it are removed as well, so no dangling category
// references survive the delete.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	var alerts []budgetAlert
	defer func() { s.dispatchBudgetAlerts(ctx, alerts) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return err
	}

	kept := s.categories[:0]
	found := false
	for _, c := range s.categories {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return nil
	}
	s.categories = kept
	s.enqueueLocked(storage.KeyCategories, snapshotCategories(s.categories))

	keptTx := s.transactions[:0]
	txChanged := false
	for _, t := range s.transactions {
		if t.CategoryID == id {
			txChanged = true
			continue
		}
		keptTx = append(keptTx, t)
	}
	if txChanged {
		s.transactions = keptTx
	}

	keptBudgets := s.budgets[:0]
	budgetsChanged := false
	for _, b := range s.budgets {
		if b.CategoryID == id {
			budgetsChanged = true
			continue
		}
		keptBudgets = append(keptBudgets, b)
	}
	if budgetsChanged {
		s.budgets = keptBudgets
		s.enqueueLocked(storage.KeyBudgets, snapshotSlice(s.budgets))
	}

	if txChanged {
		alerts = s.afterTransactionChangeLocked()
	}
	return nil
}

// AddSubCategory appends a subcategory to its parent category. An unknown
// parent is a silent no-op, matching the update/delete miss policy.
func (s *Store) AddSubCategory(ctx context.Context, name, parentID string) (model.SubCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return model.SubCategory{}, err
	}
	if name == "" {
		return model.SubCategory{}, fmt.Errorf("%w: subcategory name is required", common.ErrInvalidInput)
	}

	sc := model.SubCategory{ID: newID(), Name: name, ParentID: parentID}
	for i := range s.categories {
		if s.categories[i].ID == parentID {
			s.categories[i].SubCategories = append(s.categories[i].SubCategories, sc)
			s.enqueueLocked(storage.KeyCategories, snapshotCategories(s.categories))
			return sc, nil
		}
	}
	return model.SubCategory{}, nil
}

// UpdateSubCategory replaces a subcategory within its parent category.
func (s *Store) UpdateSubCategory(ctx context.Context, sc model.SubCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return err
	}

	for i := range s.categories {
		if s.categories[i].ID != sc.ParentID {
			continue
		}
		for j := range s.categories[i].SubCategories {
			if s.categories[i].SubCategories[j].ID == sc.ID {
				s.categories[i].SubCategories[j] = sc
				s.enqueueLocked(storage.KeyCategories, snapshotCategories(s.categories))
				return nil
			}
		}
	}
	return nil
}

// DeleteSubCategory removes a subcategory wherever it lives and cascades to
// transactions referencing it.
func (s *Store) DeleteSubCategory(ctx context.Context, id string) error {
	var alerts []budgetAlert
	defer func() { s.dispatchBudgetAlerts(ctx, alerts) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return err
	}

	found := false
	for i := range s.categories {
		subs := s.categories[i].SubCategories
		for j := range subs {
			if subs[j].ID == id {
				s.categories[i].SubCategories = append(subs[:j], subs[j+1:]...)
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return nil
	}
	s.enqueueLocked(storage.KeyCategories, snapshotCategories(s.categories))

	keptTx := s.transactions[:0]
	txChanged := false
	for _, t := range s.transactions {
		if t.SubCategoryID == id {
			txChanged = true
			continue
		}
		keptTx = append(keptTx, t)
	}
	if txChanged {
		s.transactions = keptTx
		alerts = s.afterTransactionChangeLocked()
	}
	return nil
}
