package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegionTotal is one row of the per-region breakdown.
type RegionTotal struct {
	Code  string
	Name  string
	Total decimal.Decimal
	Count int
}

// QuarterTotal is one row of the per-quarter breakdown. Quarters with no
// matching records are absent, not zero-filled.
type QuarterTotal struct {
	Quarter int
	Total   decimal.Decimal
}

// DayTotal is the single day with the highest summed amount in a slice.
type DayTotal struct {
	Date  time.Time
	Total decimal.Decimal
}

// SummaryResult holds the aggregate metrics for one filtered slice of sales
// records. It is recomputed fresh on every query.
type SummaryResult struct {
	TopDay    *DayTotal
	ByRegion  []RegionTotal
	ByQuarter []QuarterTotal
	Total     decimal.Decimal
	Average   decimal.Decimal
	Count     int
}
