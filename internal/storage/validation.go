package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mlawkins/salescope/internal/model"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
	ErrEmptySlice  = errors.New("slice cannot be empty")
	ErrInvalidSale = errors.New("invalid sales record")
	ErrInvalidID   = errors.New("id must be positive")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateSales validates a batch of records for appending. This is the
// boundary that rejects non-positive amounts a parser let through.
func validateSales(records []model.DailySales) error {
	if len(records) == 0 {
		return fmt.Errorf("%w: records", ErrEmptySlice)
	}

	for i, d := range records {
		if err := validateSale(&d); err != nil {
			return fmt.Errorf("record at index %d: %w", i, err)
		}
	}
	return nil
}

// validateSale validates a single record destined for insertion.
func validateSale(d *model.DailySales) error {
	if d.ID != 0 {
		return fmt.Errorf("%w: already persisted (id %d)", ErrInvalidSale, d.ID)
	}
	if !d.Amount.IsPositive() {
		return fmt.Errorf("%w: %v", ErrInvalidSale, model.ErrNonPositiveAmount)
	}
	if d.Date.IsZero() {
		return fmt.Errorf("%w: %v", ErrInvalidSale, model.ErrMissingDate)
	}
	if strings.TrimSpace(d.Region.Code) == "" {
		return fmt.Errorf("%w: missing region code", ErrInvalidSale)
	}
	return nil
}

// validateAmount ensures an amount update keeps the positivity invariant.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", model.ErrNonPositiveAmount, amount)
	}
	return nil
}
