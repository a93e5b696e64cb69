// Package analysis builds record filters and computes summary statistics
// over stored sales records.
package analysis

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mlawkins/salescope/internal/model"
)

// AllRegions is the sentinel region choice meaning no region filter.
const AllRegions = "All regions"

// Predicate construction errors.
var (
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidDateRange = errors.New("start date must be before or equal to end date")
)

// SlicePredicate narrows stored records to an inclusive date range and an
// optional single region. A nil bound is unbounded on that side; an empty
// RegionCode matches every region.
type SlicePredicate struct {
	Start      *time.Time
	End        *time.Time
	RegionCode string
}

// BuildSlice normalizes possibly-blank user inputs into a predicate.
// Blank date text yields an unbounded side; the all-regions sentinel (or
// blank) yields no region filter. Malformed date text and an inverted
// range are reported here, before any predicate reaches the engine.
func BuildSlice(startText, endText, regionChoice string) (SlicePredicate, error) {
	var p SlicePredicate

	start, err := parseDateText(startText, "start date")
	if err != nil {
		return p, err
	}
	end, err := parseDateText(endText, "end date")
	if err != nil {
		return p, err
	}
	if start != nil && end != nil && start.After(*end) {
		return p, ErrInvalidDateRange
	}
	p.Start = start
	p.End = end

	choice := strings.TrimSpace(regionChoice)
	if choice != "" && choice != AllRegions {
		p.RegionCode = choice
	}
	return p, nil
}

// Matches reports whether a record falls inside the slice. Both date
// bounds are inclusive.
func (p SlicePredicate) Matches(d model.DailySales) bool {
	if p.Start != nil && d.Date.Before(*p.Start) {
		return false
	}
	if p.End != nil && d.Date.After(*p.End) {
		return false
	}
	if p.RegionCode != "" && d.Region.Code != p.RegionCode {
		return false
	}
	return true
}

func parseDateText(text, label string) (*time.Time, error) {
	value := strings.TrimSpace(text)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(model.DateFormat, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q", ErrInvalidDate, label, value)
	}
	return &t, nil
}
