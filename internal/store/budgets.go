package store

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrackapp/fintrack/internal/common"
	"github.com/fintrackapp/fintrack/internal/model"
	"github.com/fintrackapp/fintrack/internal/storage"
)

// BudgetInput is the caller-supplied part of a new budget.
type BudgetInput struct {
	StartDate  time.Time
	EndDate    *time.Time
	CategoryID string
	Period     model.BudgetPeriod
	Amount     float64
}

// AddBudget assigns an id with the alert ratchet at zero, persists, and runs
// an immediate threshold evaluation against current spending.
func (s *Store) AddBudget(ctx context.Context, input BudgetInput) (model.Budget, error) {
	var alerts []budgetAlert
	defer func() { s.dispatchBudgetAlerts(ctx, alerts) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return model.Budget{}, err
	}
	if input.Amount <= 0 {
		return model.Budget{}, fmt.Errorf("%w: amount must be positive", common.ErrInvalidInput)
	}
	if input.CategoryID == "" {
		return model.Budget{}, fmt.Errorf("%w: category is required", common.ErrInvalidInput)
	}
	if !input.Period.Valid() {
		return model.Budget{}, fmt.Errorf("%w: unknown budget period %q", common.ErrInvalidInput, input.Period)
	}

	start := input.StartDate
	if start.IsZero() {
		start = s.now()
	}

	b := model.Budget{
		ID:                        newID(),
		CategoryID:                input.CategoryID,
		Amount:                    input.Amount,
		Period:                    input.Period,
		StartDate:                 start,
		EndDate:                   input.EndDate,
		LastNotificationThreshold: 0,
	}

	s.budgets = append(s.budgets, b)
	s.enqueueLocked(storage.KeyBudgets, snapshotSlice(s.budgets))
	alerts = s.evaluateBudgetsLocked()
	return b, nil
}

// UpdateBudget replaces the budget with a matching id, then immediately
// re-evaluates thresholds. Unknown ids are a silent no-op.
func (s *Store) UpdateBudget(ctx context.Context, b model.Budget) error {
	var alerts []budgetAlert
	defer func() { s.dispatchBudgetAlerts(ctx, alerts) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return err
	}

	for i := range s.budgets {
		if s.budgets[i].ID == b.ID {
			s.budgets[i] = b
			s.enqueueLocked(storage.KeyBudgets, snapshotSlice(s.budgets))
			alerts = s.evaluateBudgetsLocked()
			return nil
		}
	}
	return nil
}

// DeleteBudget removes the matching budget. Budgets own nothing, so there is
// no cascade. Unknown ids are a no-op.
func (s *Store) DeleteBudget(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return err
	}

	for i := range s.budgets {
		if s.budgets[i].ID == id {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			s.enqueueLocked(storage.KeyBudgets, snapshotSlice(s.budgets))
			return nil
		}
	}
	return nil
}

// Budgets returns a copy of the current collection.
func (s *Store) Budgets() []model.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// SpentForBudget recomputes current spending for the budget's category and
// window from scratch.
func (s *Store) SpentForBudget(b model.Budget) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return b.SpentWithin(s.transactions, s.now())
}

// EvaluateBudgets re-runs threshold evaluation for every budget. The
// periodic evaluator calls this; mutations trigger it internally.
func (s *Store) EvaluateBudgets(ctx context.Context) error {
	s.mu.Lock()
	if err := s.requireLoaded(); err != nil {
		s.mu.Unlock()
		return err
	}
	alerts := s.evaluateBudgetsLocked()
	s.mu.Unlock()

	s.dispatchBudgetAlerts(ctx, alerts)
	return nil
}

// budgetAlert is a notification decided during evaluation. Dispatch happens
// after the store lock is released, so a slow notifier never stalls other
// store operations.
type budgetAlert struct {
	body     string
	budgetID string
}

// evaluateBudgetsLocked walks the alert ladder for each budget. For a budget
// at p percent spent, the highest tier ≤ p that is above the stored ratchet
// moves the ratchet up to that tier and yields exactly one alert. Lower
// tiers never re-fire after a higher one. Evaluation reads transactions and
// persists ratchet movement; the caller dispatches the returned alerts once
// the lock is released.
func (s *Store) evaluateBudgetsLocked() []budgetAlert {
	if !s.settings.BudgetAlerts || s.notifier == nil {
		return nil
	}

	now := s.now()
	var alerts []budgetAlert

	for i := range s.budgets {
		b := &s.budgets[i]
		if b.Amount <= 0 {
			continue
		}

		spent := b.SpentWithin(s.transactions, now)
		percentage := spent / b.Amount * 100

		tier := 0
		for _, t := range s.thresholds {
			if percentage >= float64(t) && t > b.LastNotificationThreshold && t > tier {
				tier = t
			}
		}
		if tier == 0 {
			continue
		}

		b.LastNotificationThreshold = tier

		name := "Unknown Category"
		for _, c := range s.categories {
			if c.ID == b.CategoryID {
				name = c.Name
				break
			}
		}

		body := fmt.Sprintf("You've used %d%% of your %s budget.", tier, name)
		if tier >= 100 {
			body = fmt.Sprintf("You've exceeded your %s budget!", name)
		}
		alerts = append(alerts, budgetAlert{body: body, budgetID: b.ID})
	}

	if len(alerts) > 0 {
		s.enqueueLocked(storage.KeyBudgets, snapshotSlice(s.budgets))
	}
	return alerts
}

// dispatchBudgetAlerts sends the alerts evaluation produced. Must be called
// without holding s.mu.
func (s *Store) dispatchBudgetAlerts(ctx context.Context, alerts []budgetAlert) {
	for _, a := range alerts {
		if err := s.notifier.Notify(ctx, "Budget Alert", a.body); err != nil {
			common.LogError(err, "failed to dispatch budget alert", common.Fields{"budget": a.budgetID})
		}
	}
}
