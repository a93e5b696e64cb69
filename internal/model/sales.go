package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the canonical date layout used everywhere: input rows,
// filter text, storage, and export.
const DateFormat = "2006-01-02"

// Validation errors for sales records.
var (
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrMissingDate       = errors.New("sales date is required")
	ErrUnknownRegion     = errors.New("unknown region")
)

// DailySales is one day's sales figure for a region. ID 0 means the record
// has not been persisted yet; a positive ID is the store's primary key.
type DailySales struct {
	Date   time.Time
	Region Region
	Amount decimal.Decimal
	ID     int64
}

// Quarter derives the calendar quarter (1-4) from the sales date.
func (d *DailySales) Quarter() int {
	return (int(d.Date.Month())-1)/3 + 1
}

// Validate enforces the data-model invariants before persistence: the
// amount must be positive, the date set, and the region known to the
// catalog. Freshly parsed records are not validated by the parser, so this
// is the boundary that catches bad file content.
func (d *DailySales) Validate(catalog *Catalog) error {
	if !d.Amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrNonPositiveAmount, d.Amount)
	}
	if d.Date.IsZero() {
		return ErrMissingDate
	}
	if _, ok := catalog.Lookup(d.Region.Code); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRegion, d.Region.Code)
	}
	return nil
}
