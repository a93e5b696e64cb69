// Package service defines the persistence boundary the core depends on.
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mlawkins/salescope/internal/analysis"
	"github.com/mlawkins/salescope/internal/model"
)

// Store is the narrow interface between the import/aggregation core and
// whatever persists the records. The host application owns the open/close
// lifecycle and passes the handle explicitly; there is no process-global
// connection.
type Store interface {
	// ListRegions returns the region catalog rows, read once at session start.
	ListRegions(ctx context.Context) ([]model.Region, error)

	// AppendSales persists freshly parsed records (ID must be 0 on every
	// record). The whole batch is written in one transaction or not at all.
	AppendSales(ctx context.Context, records []model.DailySales) error

	// AllSales returns every stored record, ordered by date then region code.
	AllSales(ctx context.Context) ([]model.DailySales, error)

	// FilteredSales returns the records matching the predicate, same order
	// as AllSales. Behavior is identical to filtering AllSales client-side.
	FilteredSales(ctx context.Context, pred analysis.SlicePredicate) ([]model.DailySales, error)

	// SalesByDateAndRegion returns the single record for a date and region
	// code, or common.ErrNotFound.
	SalesByDateAndRegion(ctx context.Context, date time.Time, code string) (*model.DailySales, error)

	// UpdateAmount changes one stored record's amount. Returns
	// common.ErrNotFound when the id has no row.
	UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) error

	// HasBeenImported reports whether a file name is in the import ledger.
	HasBeenImported(ctx context.Context, name string) (bool, error)

	// MarkImported records a file name in the import ledger.
	MarkImported(ctx context.Context, name string) error

	Close() error
}
