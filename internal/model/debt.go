package model

import "time"

// DebtType indicates the direction of a debt from the user's perspective.
type DebtType string

const (
	// DebtLent is money the user gave out and expects back.
	DebtLent DebtType = "lent"
	// DebtBorrowed is money the user owes someone else.
	DebtBorrowed DebtType = "borrowed"
)

// Valid reports whether the debt type is one of the known literals.
func (t DebtType) Valid() bool {
	return t == DebtLent || t == DebtBorrowed
}

// DebtStatus is the repayment state derived from a debt's payment history.
type DebtStatus string

const (
	// DebtPending means no payments have been recorded.
	DebtPending DebtStatus = "pending"
	// DebtPartiallyPaid means some but not all of the amount is paid back.
	DebtPartiallyPaid DebtStatus = "partially_paid"
	// DebtPaid means the payments cover the full amount.
	DebtPaid DebtStatus = "paid"
)

// Payment is a single repayment recorded against a debt. Payments are
// embedded in their owning debt and never referenced elsewhere.
type Payment struct {
	Date   time.Time `json:"date"`
	ID     string    `json:"id"`
	Note   string    `json:"note,omitempty"`
	Amount float64   `json:"amount"`
}

// Debt records money lent to or borrowed from a named person, with its
// partial-payment history.
type Debt struct {
	Date        time.Time  `json:"date"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	ID          string     `json:"id"`
	PersonName  string     `json:"personName"`
	Description string     `json:"description"`
	Type        DebtType   `json:"type"`
	Status      DebtStatus `json:"status"`
	Payments    []Payment  `json:"payments"`
	Amount      float64    `json:"amount"`
}

// TotalPaid sums the recorded payments.
func (d *Debt) TotalPaid() float64 {
	var total float64
	for _, p := range d.Payments {
		total += p.Amount
	}
	return total
}

// DeriveStatus computes the repayment status from the payment history.
// paid iff Σpayments ≥ amount, partially_paid iff 0 < Σ < amount,
// pending iff Σ == 0. This is the single source of the status rule; every
// mutation that can change the outcome re-derives through it.
func (d *Debt) DeriveStatus() DebtStatus {
	paid := d.TotalPaid()
	switch {
	case paid <= 0:
		return DebtPending
	case paid >= d.Amount:
		return DebtPaid
	default:
		return DebtPartiallyPaid
	}
}
