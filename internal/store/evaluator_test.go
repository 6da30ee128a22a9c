package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackapp/fintrack/internal/model"
	"github.com/fintrackapp/fintrack/internal/notify"
)

func TestEvaluator_DueDebtReminderFiresOncePerDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	s, _, _ := newTestStore(t, Options{Now: func() time.Time { return now }})
	ctx := context.Background()

	due := now.Add(12 * time.Hour)
	_, err := s.AddDebt(ctx, DebtInput{PersonName: "Alice", Amount: 500, Type: model.DebtBorrowed, DueDate: &due})
	require.NoError(t, err)

	rec := notify.NewRecorder()
	ev := NewEvaluator(s, rec, time.Hour)

	ev.check(ctx)
	require.Equal(t, 1, rec.Count())
	alert := rec.Recorded()[0]
	assert.Equal(t, "Debt Payment Reminder", alert.Title)
	assert.Contains(t, alert.Body, "Alice")
	assert.Contains(t, alert.Body, "borrowed")

	// A second check the same day stays quiet.
	ev.check(ctx)
	assert.Equal(t, 1, rec.Count())
}

func TestEvaluator_SkipsPaidAndFarOffDebts(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	s, _, _ := newTestStore(t, Options{Now: func() time.Time { return now }})
	ctx := context.Background()

	soon := now.Add(6 * time.Hour)
	d, err := s.AddDebt(ctx, DebtInput{PersonName: "Bob", Amount: 100, Type: model.DebtLent, DueDate: &soon})
	require.NoError(t, err)
	require.NoError(t, s.AddPayment(ctx, d.ID, PaymentInput{Amount: 100}))

	farOff := now.AddDate(0, 1, 0)
	_, err = s.AddDebt(ctx, DebtInput{PersonName: "Carol", Amount: 100, Type: model.DebtLent, DueDate: &farOff})
	require.NoError(t, err)

	_, err = s.AddDebt(ctx, DebtInput{PersonName: "Dave", Amount: 100, Type: model.DebtLent})
	require.NoError(t, err)

	rec := notify.NewRecorder()
	ev := NewEvaluator(s, rec, time.Hour)
	ev.check(ctx)
	assert.Equal(t, 0, rec.Count())
}

func TestEvaluator_RemindsRemainingAmount(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	s, _, _ := newTestStore(t, Options{Now: func() time.Time { return now }})
	ctx := context.Background()

	due := now.Add(20 * time.Hour)
	d, err := s.AddDebt(ctx, DebtInput{PersonName: "Eve", Amount: 500, Type: model.DebtBorrowed, DueDate: &due})
	require.NoError(t, err)
	require.NoError(t, s.AddPayment(ctx, d.ID, PaymentInput{Amount: 200}))

	rec := notify.NewRecorder()
	ev := NewEvaluator(s, rec, time.Hour)
	ev.check(ctx)

	require.Equal(t, 1, rec.Count())
	assert.Contains(t, rec.Recorded()[0].Body, "300.00")
}

func TestEvaluator_DailySummaryFiresOnRollover(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)
	s, _, _ := newTestStore(t, Options{Now: func() time.Time { return now }})
	ctx := context.Background()

	require.NoError(t, s.SetNotificationSettings(ctx, model.NotificationSettings{DailySummary: true}))
	_, err := s.AddTransaction(ctx, TransactionInput{Amount: 1000, Type: model.TypeIncome})
	require.NoError(t, err)

	rec := notify.NewRecorder()
	ev := NewEvaluator(s, rec, time.Hour)

	// First check establishes the baseline day; nothing fires yet.
	ev.check(ctx)
	assert.Equal(t, 0, rec.Count())

	// Day rolls over.
	now = now.Add(2 * time.Hour)
	ev.check(ctx)
	require.Equal(t, 1, rec.Count())
	alert := rec.Recorded()[0]
	assert.Equal(t, "Daily Summary", alert.Title)
	assert.Contains(t, alert.Body, "1000.00")

	// Same day again: quiet.
	ev.check(ctx)
	assert.Equal(t, 1, rec.Count())
}

func TestEvaluator_RunStopsOnCancel(t *testing.T) {
	s, _, _ := newTestStore(t, Options{})
	rec := notify.NewRecorder()
	ev := NewEvaluator(s, rec, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ev.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("evaluator did not stop after cancellation")
	}
}

func TestEvaluator_NotifyTriggersImmediateCheck(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	s, _, _ := newTestStore(t, Options{Now: func() time.Time { return now }})
	ctx := context.Background()

	rec := notify.NewRecorder()
	ev := NewEvaluator(s, rec, time.Hour)

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		ev.Run(runCtx)
		close(done)
	}()

	// Add a due debt after the initial check, then poke the evaluator.
	due := now.Add(12 * time.Hour)
	_, err := s.AddDebt(ctx, DebtInput{PersonName: "Heidi", Amount: 50, Type: model.DebtLent, DueDate: &due})
	require.NoError(t, err)
	ev.Notify()

	require.Eventually(t, func() bool { return rec.Count() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
