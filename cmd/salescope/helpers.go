package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mlawkins/salescope/internal/model"
	"github.com/mlawkins/salescope/internal/storage"
)

// openStore opens the configured database, runs first-run bootstrap, and
// loads the region catalog for the session. The caller owns the handle and
// must Close it.
func openStore(ctx context.Context) (*storage.SQLiteStorage, *model.Catalog, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		return nil, nil, fmt.Errorf("database path is not configured")
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to migrate store: %w", err)
	}

	catalog, err := store.LoadCatalog(ctx)
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to load region catalog: %w", err)
	}

	return store, catalog, nil
}
