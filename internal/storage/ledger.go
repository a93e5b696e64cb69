package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// HasBeenImported reports whether a file name is recorded in the import
// ledger.
func (s *SQLiteStorage) HasBeenImported(ctx context.Context, name string) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateString(name, "name"); err != nil {
		return false, err
	}

	var found string
	err := s.db.QueryRowContext(ctx, `
		SELECT file_name
		FROM imported_files
		WHERE file_name = ?
	`, name).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check import ledger: %w", err)
	}
	return true, nil
}

// MarkImported records a file name in the import ledger so subsequent
// attempts are rejected as duplicates.
func (s *SQLiteStorage) MarkImported(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO imported_files (file_name)
		VALUES (?)
	`, name)
	if err != nil {
		return fmt.Errorf("failed to mark file as imported: %w", err)
	}
	return nil
}
