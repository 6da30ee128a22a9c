package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/fintrackapp/fintrack/internal/config"
	"github.com/fintrackapp/fintrack/internal/notify"
	"github.com/fintrackapp/fintrack/internal/storage"
	"github.com/fintrackapp/fintrack/internal/store"
)

// initStore opens the database, runs migrations, and loads a ready-to-use
// store. The returned cleanup drains pending writes and closes the database.
func initStore(ctx context.Context) (*store.Store, func(), error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	kv, err := storage.NewKVStore(config.ExpandPath(dbPath))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := kv.Migrate(ctx); err != nil {
		_ = kv.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	s := store.New(kv, notify.NewLogNotifier(), store.Options{
		Thresholds: viper.GetIntSlice("budgets.thresholds"),
	})
	if err := s.Load(ctx); err != nil {
		_ = s.Close()
		_ = kv.Close()
		return nil, nil, fmt.Errorf("failed to load store: %w", err)
	}

	cleanup := func() {
		if err := s.Close(); err != nil {
			slog.Error("failed to close store", "error", err)
		}
		if err := kv.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}
	return s, cleanup, nil
}
