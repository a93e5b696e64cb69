package analysis

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mlawkins/salescope/internal/model"
)

// Summarize computes the aggregate metrics for the records matching the
// predicate. Each call is stateless and idempotent: the same predicate and
// records always produce the same result, and nothing is cached.
//
// The store may have pushed the filter down already; applying the
// predicate again over pre-filtered records is a no-op, so both retrieval
// paths behave identically.
func Summarize(pred SlicePredicate, records []model.DailySales) model.SummaryResult {
	result := model.SummaryResult{
		Total:   decimal.Zero,
		Average: decimal.Zero,
	}

	type regionAcc struct {
		name  string
		total decimal.Decimal
		count int
	}
	byRegion := make(map[string]*regionAcc)
	byQuarter := make(map[int]decimal.Decimal)
	byDay := make(map[time.Time]decimal.Decimal)

	for _, d := range records {
		if !pred.Matches(d) {
			continue
		}

		result.Count++
		result.Total = result.Total.Add(d.Amount)

		acc, ok := byRegion[d.Region.Code]
		if !ok {
			acc = &regionAcc{name: d.Region.Name, total: decimal.Zero}
			byRegion[d.Region.Code] = acc
		}
		acc.total = acc.total.Add(d.Amount)
		acc.count++

		q := d.Quarter()
		byQuarter[q] = byQuarter[q].Add(d.Amount)

		day := time.Date(d.Date.Year(), d.Date.Month(), d.Date.Day(), 0, 0, 0, 0, time.UTC)
		byDay[day] = byDay[day].Add(d.Amount)
	}

	if result.Count == 0 {
		result.ByRegion = []model.RegionTotal{}
		result.ByQuarter = []model.QuarterTotal{}
		return result
	}

	result.Average = result.Total.Div(decimal.NewFromInt(int64(result.Count)))

	codes := make([]string, 0, len(byRegion))
	for code := range byRegion {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	result.ByRegion = make([]model.RegionTotal, 0, len(codes))
	for _, code := range codes {
		acc := byRegion[code]
		result.ByRegion = append(result.ByRegion, model.RegionTotal{
			Code:  code,
			Name:  acc.name,
			Total: acc.total,
			Count: acc.count,
		})
	}

	quarters := make([]int, 0, len(byQuarter))
	for q := range byQuarter {
		quarters = append(quarters, q)
	}
	sort.Ints(quarters)
	result.ByQuarter = make([]model.QuarterTotal, 0, len(quarters))
	for _, q := range quarters {
		result.ByQuarter = append(result.ByQuarter, model.QuarterTotal{Quarter: q, Total: byQuarter[q]})
	}

	// Highest daily total wins; ties go to the earliest date.
	var top *model.DayTotal
	for day, total := range byDay {
		if top == nil || total.GreaterThan(top.Total) ||
			(total.Equal(top.Total) && day.Before(top.Date)) {
			top = &model.DayTotal{Date: day, Total: total}
		}
	}
	result.TopDay = top

	return result
}
