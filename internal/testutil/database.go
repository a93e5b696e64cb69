// Package testutil provides test helpers shared across salescope packages.
package testutil

import (
	"context"
	"testing"

	"github.com/mlawkins/salescope/internal/model"
	"github.com/mlawkins/salescope/internal/storage"
)

// TestDB bundles an in-memory store with its loaded region catalog.
type TestDB struct {
	Store   *storage.SQLiteStorage
	Catalog *model.Catalog
	t       *testing.T
}

// SetupTestDB creates a migrated in-memory database with the default
// seeded region catalog. Cleanup is registered automatically.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	catalog, err := store.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("failed to load region catalog: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Store:   store,
		Catalog: catalog,
		t:       t,
	}
}
