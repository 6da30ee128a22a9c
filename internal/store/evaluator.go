package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackapp/fintrack/internal/model"
	"github.com/fintrackapp/fintrack/internal/notify"
)

// Evaluator periodically re-runs budget threshold evaluation and sends
// due-date reminders for debts. Its lifecycle belongs to the caller: Run
// returns when the context is cancelled, so no callback outlives the store.
type Evaluator struct {
	store    *Store
	notifier notify.Notifier
	interval time.Duration
	notifyCh chan struct{}

	// remindedAt dedupes due-date reminders: one per debt per day.
	remindedAt map[string]string
	// lastSummaryDay dedupes the daily summary notification.
	lastSummaryDay string
}

// NewEvaluator creates an evaluator for the given store. A zero interval
// defaults to one hour.
func NewEvaluator(s *Store, notifier notify.Notifier, interval time.Duration) *Evaluator {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Evaluator{
		store:      s,
		notifier:   notifier,
		interval:   interval,
		notifyCh:   make(chan struct{}, 1),
		remindedAt: make(map[string]string),
	}
}

// Notify triggers an immediate check. Non-blocking if a check is already pending.
func (e *Evaluator) Notify() {
	select {
	case e.notifyCh <- struct{}{}:
	default:
	}
}

// Run loops until the context is cancelled, checking on every tick and on
// every Notify call.
func (e *Evaluator) Run(ctx context.Context) {
	slog.Info("evaluator started", "interval", e.interval)
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	e.check(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("evaluator stopped")
			return
		case <-ticker.C:
			e.check(ctx)
		case <-e.notifyCh:
			e.check(ctx)
		}
	}
}

func (e *Evaluator) check(ctx context.Context) {
	if err := e.store.EvaluateBudgets(ctx); err != nil {
		slog.Error("budget evaluation failed", "error", err)
	}
	e.checkDueDebts(ctx)
	e.checkDailySummary(ctx)
}

// checkDueDebts reminds about unpaid debts due within the next 24 hours,
// at most once per debt per day.
func (e *Evaluator) checkDueDebts(ctx context.Context) {
	now := e.store.now()
	today := now.Format("2006-01-02")

	for _, d := range e.store.Debts() {
		if d.DueDate == nil || d.Status == model.DebtPaid {
			continue
		}
		until := d.DueDate.Sub(now)
		if until < 0 || until > 24*time.Hour {
			continue
		}
		if e.remindedAt[d.ID] == today {
			continue
		}

		body := fmt.Sprintf("Your %s payment of %.2f to %s is due tomorrow!",
			d.Type, d.Amount-d.TotalPaid(), d.PersonName)
		if err := e.notifier.Notify(ctx, "Debt Payment Reminder", body); err != nil {
			slog.Error("failed to dispatch debt reminder", "debt", d.ID, "error", err)
			continue
		}
		e.remindedAt[d.ID] = today
	}
}

// checkDailySummary sends one balance summary per day when enabled.
func (e *Evaluator) checkDailySummary(ctx context.Context) {
	if !e.store.NotificationSettings().DailySummary {
		return
	}

	today := e.store.now().Format("2006-01-02")
	if e.lastSummaryDay == "" {
		// First check of a run establishes the baseline; summaries fire on
		// day rollover, not on startup.
		e.lastSummaryDay = today
		return
	}
	if e.lastSummaryDay == today {
		return
	}

	summary := e.store.Summary()
	body := fmt.Sprintf("Income %.2f, expenses %.2f, balance %.2f.",
		summary.TotalIncome, summary.TotalExpenses, summary.Balance)
	if err := e.notifier.Notify(ctx, "Daily Summary", body); err != nil {
		slog.Error("failed to dispatch daily summary", "error", err)
		return
	}
	e.lastSummaryDay = today
}
