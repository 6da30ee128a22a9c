// Package notify defines the local notification dispatcher consumed by the
// domain store.
package notify

import (
	"context"
	"log/slog"
	"time"
)

// Notifier delivers a user-visible alert. Immediate delivery goes through
// Notify; Schedule requests delivery at a future time.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
	Schedule(ctx context.Context, title, body string, at time.Time) error
}

// LogNotifier delivers notifications through the default slog logger. It is
// the dispatcher used by the CLI, where there is no platform notification
// center to hand off to.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(_ context.Context, title, body string) error {
	slog.Info("notification", "title", title, "body", body)
	return nil
}

// Schedule implements Notifier. The log notifier has no delivery backend to
// park a future notification with, so it records the request and the time.
func (n *LogNotifier) Schedule(_ context.Context, title, body string, at time.Time) error {
	slog.Info("notification scheduled", "title", title, "body", body, "at", at)
	return nil
}
