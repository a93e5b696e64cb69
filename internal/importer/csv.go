package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mlawkins/salescope/internal/model"
)

// ParseFailure identifies why a sales file could not be parsed.
type ParseFailure string

// Parse failure kinds. A missing file is reported distinctly from
// malformed content.
const (
	ParseFileNotFound ParseFailure = "file_not_found"
	ParseMalformedRow ParseFailure = "malformed_row"
)

// ImportParseError is a recoverable failure to turn a file into records.
// No partial batch survives it; the import is all-or-nothing per file.
type ImportParseError struct {
	Err    error
	Reason ParseFailure
	Name   string
	Row    int
}

func (e *ImportParseError) Error() string {
	switch e.Reason {
	case ParseFileNotFound:
		return fmt.Sprintf("file %q not found", e.Name)
	case ParseMalformedRow:
		return fmt.Sprintf("file %q: malformed row %d: %v", e.Name, e.Row, e.Err)
	default:
		return fmt.Sprintf("file %q: %v", e.Name, e.Err)
	}
}

func (e *ImportParseError) Unwrap() error {
	return e.Err
}

// ParseSalesFile opens a delimited sales file and parses every row. The
// region resolved from the file name, not from row content, is attached to
// each record.
func ParseSalesFile(f ImportFilename) ([]model.DailySales, error) {
	if f.Region == nil {
		return nil, fmt.Errorf("import file %q has no resolved region", f.RawName)
	}

	file, err := os.Open(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ImportParseError{Reason: ParseFileNotFound, Name: f.RawName, Err: err}
		}
		return nil, fmt.Errorf("failed to open %q: %w", f.RawName, err)
	}
	defer func() { _ = file.Close() }()

	return ParseSalesRows(file, f.RawName, *f.Region)
}

// ParseSalesRows converts raw delimited rows into sales records tagged
// with the given region. Each row maps positionally to (amount, date); a
// wrong field count, non-numeric amount, or unparseable date fails the
// whole batch. Amount positivity is deliberately not checked here; the
// store boundary enforces it so that a bad file is reported, not silently
// trimmed.
func ParseSalesRows(r io.Reader, name string, region model.Region) ([]model.DailySales, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	var records []model.DailySales
	row := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, &ImportParseError{Reason: ParseMalformedRow, Name: name, Row: row, Err: err}
		}

		amount, err := decimal.NewFromString(fields[0])
		if err != nil {
			return nil, &ImportParseError{
				Reason: ParseMalformedRow,
				Name:   name,
				Row:    row,
				Err:    fmt.Errorf("invalid amount %q: %w", fields[0], err),
			}
		}

		date, err := time.Parse(model.DateFormat, fields[1])
		if err != nil {
			return nil, &ImportParseError{
				Reason: ParseMalformedRow,
				Name:   name,
				Row:    row,
				Err:    fmt.Errorf("invalid date %q: %w", fields[1], err),
			}
		}

		records = append(records, model.DailySales{
			ID:     0, // not yet persisted
			Amount: amount,
			Date:   date,
			Region: region,
		})
	}

	return records, nil
}
