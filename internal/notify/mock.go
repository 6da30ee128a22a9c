package notify

import (
	"context"
	"sync"
	"time"
)

// Recorder is a mock implementation of Notifier for testing.
type Recorder struct {
	NotifyFunc    func(ctx context.Context, title, body string) error
	Notifications []Notification
	mu            sync.Mutex
}

// Notification represents a single recorded dispatch.
type Notification struct {
	At    *time.Time
	Title string
	Body  string
}

// NewRecorder creates a new recording notifier.
func NewRecorder() *Recorder {
	return &Recorder{
		Notifications: make([]Notification, 0),
	}
}

// Notify implements the Notifier interface.
func (r *Recorder) Notify(ctx context.Context, title, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Notifications = append(r.Notifications, Notification{Title: title, Body: body})

	if r.NotifyFunc != nil {
		return r.NotifyFunc(ctx, title, body)
	}
	return nil
}

// Schedule implements the Notifier interface.
func (r *Recorder) Schedule(_ context.Context, title, body string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Notifications = append(r.Notifications, Notification{Title: title, Body: body, At: &at})
	return nil
}

// Count returns the number of recorded notifications.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Notifications)
}

// Recorded returns a copy of the recorded notifications.
func (r *Recorder) Recorded() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.Notifications))
	copy(out, r.Notifications)
	return out
}
