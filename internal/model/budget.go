package model

import "time"

// BudgetPeriod is an advisory label for the window a budget covers. It does
// not auto-roll the window; StartDate/EndDate define the actual range.
type BudgetPeriod string

const (
	// PeriodMonthly labels a budget as covering a month.
	PeriodMonthly BudgetPeriod = "monthly"
	// PeriodYearly labels a budget as covering a year.
	PeriodYearly BudgetPeriod = "yearly"
)

// Valid reports whether the period is one of the known literals.
func (p BudgetPeriod) Valid() bool {
	return p == PeriodMonthly || p == PeriodYearly
}

// Budget is a spending limit scoped to one category and a time window.
// LastNotificationThreshold is the highest alert tier already fired for this
// budget; it only moves up (the ratchet) unless the budget is edited.
type Budget struct {
	StartDate                 time.Time    `json:"startDate"`
	EndDate                   *time.Time   `json:"endDate,omitempty"`
	ID                        string       `json:"id"`
	CategoryID                string       `json:"categoryId"`
	Period                    BudgetPeriod `json:"period"`
	Amount                    float64      `json:"amount"`
	LastNotificationThreshold int          `json:"lastNotificationThreshold"`
}

// Window returns the effective evaluation window. An open-ended budget runs
// through now.
func (b *Budget) Window(now time.Time) (start, end time.Time) {
	if b.EndDate != nil {
		return b.StartDate, *b.EndDate
	}
	return b.StartDate, now
}

// SpentWithin sums expense transactions in the budget's category that fall
// inside the window. Always recomputed from scratch; evaluation must stay
// idempotent even if persisted bookkeeping lags behind.
func (b *Budget) SpentWithin(transactions []Transaction, now time.Time) float64 {
	start, end := b.Window(now)
	var spent float64
	for _, t := range transactions {
		if t.Type != TypeExpense || t.CategoryID != b.CategoryID {
			continue
		}
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		spent += t.Amount
	}
	return spent
}
