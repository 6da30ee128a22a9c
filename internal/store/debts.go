package store

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrackapp/fintrack/internal/common"
	"github.com/fintrackapp/fintrack/internal/model"
	"github.com/fintrackapp/fintrack/internal/storage"
)

// DebtInput is the caller-supplied part of a new debt.
type DebtInput struct {
	Date        time.Time
	DueDate     *time.Time
	PersonName  string
	Description string
	Type        model.DebtType
	Amount      float64
}

// PaymentInput is the caller-supplied part of a new payment.
type PaymentInput struct {
	Date   time.Time
	Note   string
	Amount float64
}

// AddDebt assigns an id, starts with an empty payment history and pending
// status, and persists.
func (s *Store) AddDebt(ctx context.Context, input DebtInput) (model.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return model.Debt{}, err
	}
	if input.Amount <= 0 {
		return model.Debt{}, fmt.Errorf("%w: amount must be positive", common.ErrInvalidInput)
	}
	if input.PersonName == "" {
		return model.Debt{}, fmt.Errorf("%w: person name is required", common.ErrInvalidInput)
	}
	if !input.Type.Valid() {
		return model.Debt{}, fmt.Errorf("%w: unknown debt type %q", common.ErrInvalidInput, input.Type)
	}

	date := input.Date
	if date.IsZero() {
		date = s.now()
	}

	d := model.Debt{
		ID:          newID(),
		PersonName:  input.PersonName,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        date,
		DueDate:     input.DueDate,
		Type:        input.Type,
		Status:      model.DebtPending,
		Payments:    []model.Payment{},
	}

	s.debts = append(s.debts, d)
	s.enqueueLocked(storage.KeyDebts, snapshotDebts(s.debts))
	return d, nil
}

// UpdateDebt replaces the debt with a matching id and re-derives its status,
// so editing the amount directly can never leave a stale status behind.
// Unknown ids are a silent no-op.
func (s *Store) UpdateDebt(ctx context.Context, d model.Debt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return err
	}

	for i := range s.debts {
		if s.debts[i].ID == d.ID {
			if d.Payments == nil {
				d.Payments = s.debts[i].Payments
			}
			d.Status = d.DeriveStatus()
			s.debts[i] = d
			s.enqueueLocked(storage.KeyDebts, snapshotDebts(s.debts))
			return nil
		}
	}
	return nil
}

// DeleteDebt removes a debt and, because payments are embedded, its whole
// payment history with it.
func (s *Store) DeleteDebt(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return err
	}

	for i := range s.debts {
		if s.debts[i].ID == id {
			s.debts = append(s.debts[:i], s.debts[i+1:]...)
			s.enqueueLocked(storage.KeyDebts, snapshotDebts(s.debts))
			return nil
		}
	}
	return nil
}

// AddPayment appends a payment to the named debt and recomputes its stored
// status. An unknown debt id is a silent no-op.
func (s *Store) AddPayment(ctx context.Context, debtID string, input PaymentInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return err
	}
	if input.Amount <= 0 {
		return fmt.Errorf("%w: payment amount must be positive", common.ErrInvalidInput)
	}

	date := input.Date
	if date.IsZero() {
		date = s.now()
	}

	for i := range s.debts {
		if s.debts[i].ID != debtID {
			continue
		}
		s.debts[i].Payments = append(s.debts[i].Payments, model.Payment{
			ID:     newID(),
			Amount: input.Amount,
			Date:   date,
			Note:   input.Note,
		})
		s.debts[i].Status = s.debts[i].DeriveStatus()
		s.enqueueLocked(storage.KeyDebts, snapshotDebts(s.debts))
		return nil
	}
	return nil
}

// DeletePayment removes a payment from the named debt and recomputes its
// status. Unknown debt or payment ids are a silent no-op.
func (s *Store) DeletePayment(ctx context.Context, debtID, paymentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return err
	}

	for i := range s.debts {
		if s.debts[i].ID != debtID {
			continue
		}
		payments := s.debts[i].Payments
		for j := range payments {
			if payments[j].ID == paymentID {
				s.debts[i].Payments = append(payments[:j], payments[j+1:]...)
				s.debts[i].Status = s.debts[i].DeriveStatus()
				s.enqueueLocked(storage.KeyDebts, snapshotDebts(s.debts))
				return nil
			}
		}
		return nil
	}
	return nil
}

// Debts returns a copy of the current collection.
func (s *Store) Debts() []model.Debt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotDebts(s.debts)
}

// DebtByID returns the debt with the given id.
func (s *Store) DebtByID(id string) (model.Debt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.debts {
		if d.ID == id {
			d.Payments = append([]model.Payment(nil), d.Payments...)
			return d, true
		}
	}
	return model.Debt{}, false
}

// snapshotDebts deep-copies the collection. Payments are embedded slices, so
// a flat copy would leave the snapshot sharing backing arrays with live state
// that payment mutations shift in place.
func snapshotDebts(in []model.Debt) []model.Debt {
	out := make([]model.Debt, len(in))
	copy(out, in)
	for i := range out {
		out[i].Payments = append([]model.Payment(nil), out[i].Payments...)
	}
	return out
}
