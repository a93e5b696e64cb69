package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mlawkins/salescope/internal/analysis"
	"github.com/mlawkins/salescope/internal/common"
	"github.com/mlawkins/salescope/internal/model"
)

const salesSelect = `
	SELECT s.id, s.amount, s.sales_date, r.code, r.name
	FROM sales s
	JOIN regions r ON s.region = r.code
`

const salesOrder = ` ORDER BY date(s.sales_date), s.region`

// AppendSales persists a batch of freshly parsed records in a single
// transaction. Every record must carry ID 0 and a positive amount; one bad
// record fails the whole batch.
func (s *SQLiteStorage) AppendSales(ctx context.Context, records []model.DailySales) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSales(records); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := verifyRegions(ctx, tx, records); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO sales (amount, sales_date, region)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, d := range records {
		_, err = stmt.ExecContext(ctx,
			d.Amount.String(),
			d.Date.Format(model.DateFormat),
			d.Region.Code,
		)
		if err != nil {
			return fmt.Errorf("failed to insert sales record for %s/%s: %w",
				d.Date.Format(model.DateFormat), d.Region.Code, err)
		}
	}

	return tx.Commit()
}

// verifyRegions checks every distinct region code in the batch against the
// regions table before any insert happens, so a record for a code outside
// the catalog fails with a typed error instead of a constraint failure.
func verifyRegions(ctx context.Context, tx *sql.Tx, records []model.DailySales) error {
	stmt, err := tx.PrepareContext(ctx, `SELECT EXISTS(SELECT 1 FROM regions WHERE code = ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare region check: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	checked := make(map[string]bool)
	for _, d := range records {
		if checked[d.Region.Code] {
			continue
		}
		checked[d.Region.Code] = true

		var exists bool
		if err := stmt.QueryRowContext(ctx, d.Region.Code).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check region %q: %w", d.Region.Code, err)
		}
		if !exists {
			return fmt.Errorf("%w: %q", model.ErrUnknownRegion, d.Region.Code)
		}
	}
	return nil
}

// AllSales returns every stored record ordered by date then region code.
func (s *SQLiteStorage) AllSales(ctx context.Context) ([]model.DailySales, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, salesSelect+salesOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanSales(rows)
}

// FilteredSales returns the records matching the predicate, in the same
// order as AllSales. The predicate is translated to a WHERE clause so the
// database does the narrowing; the result is identical to filtering
// AllSales client-side.
func (s *SQLiteStorage) FilteredSales(ctx context.Context, pred analysis.SlicePredicate) ([]model.DailySales, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	where, args := buildFilters(pred)
	rows, err := s.db.QueryContext(ctx, salesSelect+where+salesOrder, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query filtered sales: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanSales(rows)
}

// buildFilters translates a slice predicate into a WHERE clause with
// inclusive date bounds.
func buildFilters(pred analysis.SlicePredicate) (string, []any) {
	var clauses []string
	var args []any

	if pred.Start != nil {
		clauses = append(clauses, "date(s.sales_date) >= date(?)")
		args = append(args, pred.Start.Format(model.DateFormat))
	}
	if pred.End != nil {
		clauses = append(clauses, "date(s.sales_date) <= date(?)")
		args = append(args, pred.End.Format(model.DateFormat))
	}
	if pred.RegionCode != "" {
		clauses = append(clauses, "s.region = ?")
		args = append(args, pred.RegionCode)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	where := " WHERE " + clauses[0]
	for _, clause := range clauses[1:] {
		where += " AND " + clause
	}
	return where, args
}

// SalesByDateAndRegion returns the record for an exact date and region
// code, or common.ErrNotFound.
func (s *SQLiteStorage) SalesByDateAndRegion(ctx context.Context, date time.Time, code string) (*model.DailySales, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(code, "code"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, salesSelect+` WHERE s.sales_date = ? AND s.region = ?`,
		date.Format(model.DateFormat), code)

	d, err := scanSale(row)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sales record: %w", err)
	}
	return d, nil
}

// UpdateAmount changes one stored record's amount. The id must refer to a
// persisted row and the new amount must keep the positivity invariant.
func (s *SQLiteStorage) UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	if err := validateAmount(amount); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE sales
		SET amount = ?
		WHERE id = ?
	`, amount.String(), id)
	if err != nil {
		return fmt.Errorf("failed to update sales amount: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSale(row rowScanner) (*model.DailySales, error) {
	var d model.DailySales
	var amountText, dateText string

	if err := row.Scan(&d.ID, &amountText, &dateText, &d.Region.Code, &d.Region.Name); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return nil, fmt.Errorf("corrupt amount %q for record %d: %w", amountText, d.ID, err)
	}
	d.Amount = amount

	date, err := time.Parse(model.DateFormat, dateText)
	if err != nil {
		return nil, fmt.Errorf("corrupt date %q for record %d: %w", dateText, d.ID, err)
	}
	d.Date = date

	return &d, nil
}

func scanSales(rows *sql.Rows) ([]model.DailySales, error) {
	var records []model.DailySales
	for rows.Next() {
		d, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales record: %w", err)
		}
		records = append(records, *d)
	}
	return records, rows.Err()
}
