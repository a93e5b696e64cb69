package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. A database that cannot reach it is unusable.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS regions (
					code TEXT PRIMARY KEY,
					name TEXT NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS sales (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					amount TEXT NOT NULL,
					sales_date TEXT NOT NULL,
					region TEXT NOT NULL REFERENCES regions(code),
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_sales_date ON sales(sales_date)`,
				`CREATE INDEX idx_sales_region ON sales(region)`,

				`CREATE TABLE IF NOT EXISTS imported_files (
					file_name TEXT PRIMARY KEY,
					imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Seed default region catalog",
		Up: func(tx *sql.Tx) error {
			var count int
			if err := tx.QueryRow(`SELECT COUNT(*) FROM regions`).Scan(&count); err != nil {
				return fmt.Errorf("failed to count regions: %w", err)
			}
			if count > 0 {
				return nil
			}

			seeds := [][2]string{
				{"EAST", "East Coast"},
				{"NORTH", "Northern Territory"},
				{"SOUTH", "Southern Territory"},
				{"WEST", "West Coast"},
			}
			for _, seed := range seeds {
				if _, err := tx.Exec(`INSERT INTO regions (code, name) VALUES (?, ?)`, seed[0], seed[1]); err != nil {
					return fmt.Errorf("failed to seed region %s: %w", seed[0], err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to the expected version. It runs
// on first open and is a no-op afterwards.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
