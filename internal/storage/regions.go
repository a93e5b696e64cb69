package storage

import (
	"context"
	"fmt"

	"github.com/mlawkins/salescope/internal/model"
)

// ListRegions returns the region catalog rows in code order.
func (s *SQLiteStorage) ListRegions(ctx context.Context) ([]model.Region, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT code, name
		FROM regions
		ORDER BY code
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query regions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var regions []model.Region
	for rows.Next() {
		var r model.Region
		if err := rows.Scan(&r.Code, &r.Name); err != nil {
			return nil, fmt.Errorf("failed to scan region: %w", err)
		}
		regions = append(regions, r)
	}

	return regions, rows.Err()
}

// LoadCatalog reads the full region catalog. It is called once at session
// start; the catalog is read-only afterwards.
func (s *SQLiteStorage) LoadCatalog(ctx context.Context) (*model.Catalog, error) {
	regions, err := s.ListRegions(ctx)
	if err != nil {
		return nil, err
	}
	return model.NewCatalog(regions), nil
}
