// Package export writes filtered sales slices as delimited files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mlawkins/salescope/internal/model"
)

// Header is the column layout of an exported slice.
var Header = []string{"ID", "Date", "Region Code", "Region Name", "Amount", "Quarter"}

// Write renders records as CSV rows in the order given (the store returns
// them date then region ascending). Amounts carry two decimal places and
// dates the canonical YYYY-MM-DD layout.
func Write(w io.Writer, records []model.DailySales) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, d := range records {
		row := []string{
			strconv.FormatInt(d.ID, 10),
			d.Date.Format(model.DateFormat),
			d.Region.Code,
			d.Region.Name,
			d.Amount.StringFixed(2),
			strconv.Itoa(d.Quarter()),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", d.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes records to a new file at path.
func WriteFile(path string, records []model.DailySales) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := Write(f, records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
