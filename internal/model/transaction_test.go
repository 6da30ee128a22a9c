package model

import (
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name         string
		transactions []Transaction
		want         Summary
	}{
		{
			name:         "empty collection",
			transactions: nil,
			want:         Summary{},
		},
		{
			name: "single income",
			transactions: []Transaction{
				{ID: "1", Type: TypeIncome, Amount: 1000},
			},
			want: Summary{TotalIncome: 1000, TotalExpenses: 0, Balance: 1000},
		},
		{
			name: "income and expense",
			transactions: []Transaction{
				{ID: "1", Type: TypeIncome, Amount: 1000},
				{ID: "2", Type: TypeExpense, Amount: 300, CategoryID: "2"},
			},
			want: Summary{TotalIncome: 1000, TotalExpenses: 300, Balance: 700},
		},
		{
			name: "expenses only give negative balance",
			transactions: []Transaction{
				{ID: "1", Type: TypeExpense, Amount: 50},
				{ID: "2", Type: TypeExpense, Amount: 25},
			},
			want: Summary{TotalIncome: 0, TotalExpenses: 75, Balance: -75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.transactions)
			if got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}

			// Recomputing on an unchanged collection must be identical.
			if again := Summarize(tt.transactions); again != got {
				t.Errorf("Summarize() not idempotent: %+v vs %+v", again, got)
			}
		})
	}
}

func TestDebt_DeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		payments []Payment
		amount   float64
		want     DebtStatus
	}{
		{
			name:   "no payments is pending",
			amount: 500,
			want:   DebtPending,
		},
		{
			name:     "partial payment",
			amount:   500,
			payments: []Payment{{ID: "p1", Amount: 200}},
			want:     DebtPartiallyPaid,
		},
		{
			name:     "two partials below amount stay partial",
			amount:   500,
			payments: []Payment{{ID: "p1", Amount: 200}, {ID: "p2", Amount: 200}},
			want:     DebtPartiallyPaid,
		},
		{
			name:     "exact payoff",
			amount:   500,
			payments: []Payment{{ID: "p1", Amount: 500}},
			want:     DebtPaid,
		},
		{
			name:     "overpayment is still paid",
			amount:   500,
			payments: []Payment{{ID: "p1", Amount: 600}},
			want:     DebtPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Debt{ID: "d1", Amount: tt.amount, Payments: tt.payments}
			if got := d.DeriveStatus(); got != tt.want {
				t.Errorf("DeriveStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBudget_SpentWithin(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	transactions := []Transaction{
		{ID: "1", Type: TypeExpense, CategoryID: "2", Amount: 100, Date: start.AddDate(0, 0, 2)},
		{ID: "2", Type: TypeExpense, CategoryID: "2", Amount: 50, Date: start.AddDate(0, 0, 10)},
		{ID: "3", Type: TypeExpense, CategoryID: "3", Amount: 999, Date: start.AddDate(0, 0, 3)},
		{ID: "4", Type: TypeIncome, CategoryID: "2", Amount: 400, Date: start.AddDate(0, 0, 4)},
		{ID: "5", Type: TypeExpense, CategoryID: "2", Amount: 75, Date: start.AddDate(0, -1, 0)},
	}

	tests := []struct {
		name   string
		budget Budget
		want   float64
	}{
		{
			name:   "bounded window counts matching expenses only",
			budget: Budget{CategoryID: "2", Amount: 300, StartDate: start, EndDate: &end},
			want:   150,
		},
		{
			name:   "open-ended window runs through now",
			budget: Budget{CategoryID: "2", Amount: 300, StartDate: start},
			want:   150,
		},
		{
			name:   "no matching category",
			budget: Budget{CategoryID: "99", Amount: 300, StartDate: start, EndDate: &end},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.budget.SpentWithin(transactions, now); got != tt.want {
				t.Errorf("SpentWithin() = %v, want %v", got, tt.want)
			}
		})
	}
}
