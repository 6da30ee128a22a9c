package model

import "time"

// TransactionType indicates whether a transaction is income or expense.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the transaction type is one of the known literals.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single recorded money movement.
type Transaction struct {
	Date          time.Time       `json:"date"`
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Type          TransactionType `json:"type"`
	CategoryID    string          `json:"categoryId,omitempty"`
	SubCategoryID string          `json:"subCategoryId,omitempty"`
	Amount        float64         `json:"amount"`
}

// Summary holds the aggregates derived from a transaction collection.
type Summary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Balance       float64 `json:"balance"`
}

// Summarize recomputes the aggregate totals from scratch. It is a pure
// function over the collection; callers recompute rather than cache.
func Summarize(transactions []Transaction) Summary {
	var s Summary
	for _, t := range transactions {
		switch t.Type {
		case TypeIncome:
			s.TotalIncome += t.Amount
		case TypeExpense:
			s.TotalExpenses += t.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpenses
	return s
}
