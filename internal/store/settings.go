package store

import (
	"context"
	"fmt"

	"github.com/fintrackapp/fintrack/internal/common"
	"github.com/fintrackapp/fintrack/internal/model"
	"github.com/fintrackapp/fintrack/internal/storage"
)

// NotificationSettings returns the current alert gates.
func (s *Store) NotificationSettings() model.NotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetNotificationSettings replaces the alert gates and persists them.
func (s *Store) SetNotificationSettings(ctx context.Context, settings model.NotificationSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return err
	}

	s.settings = settings
	s.enqueueLocked(storage.KeyNotificationSettings, settings)
	return nil
}

// Theme returns the stored display preference.
func (s *Store) Theme() model.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme validates and persists the display preference.
func (s *Store) SetTheme(ctx context.Context, t model.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return err
	}
	if !t.Valid() {
		return fmt.Errorf("%w: unknown theme %q", common.ErrInvalidInput, t)
	}

	s.theme = t
	s.enqueueLocked(storage.KeyTheme, t)
	return nil
}

// Currency returns the user's display currency.
func (s *Store) Currency() model.Currency {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currency
}

// SetCurrency persists the user's display currency.
func (s *Store) SetCurrency(ctx context.Context, c model.Currency) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return err
	}
	if c.Code == "" {
		return fmt.Errorf("%w: currency code is required", common.ErrInvalidInput)
	}

	s.currency = c
	s.enqueueLocked(storage.KeyUserCurrency, c)
	return nil
}
