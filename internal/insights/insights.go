// Package insights derives spending summaries from the full bill set.
// Everything is recomputed from scratch on each call against the caller's
// clock; no state survives between calls.
package insights

import (
	"sort"
	"time"

	"billtracker/internal/entity"
)

const dateLayout = "2006-01-02"

// categoryAccumulator sums amounts per category while remembering
// first-seen order, so equal totals keep a stable ordering.
type categoryAccumulator struct {
	totals map[string]float64
	counts map[string]int
	order  []string
}

func newCategoryAccumulator() *categoryAccumulator {
	return &categoryAccumulator{
		totals: make(map[string]float64),
		counts: make(map[string]int),
	}
}

func (a *categoryAccumulator) add(category string, amount float64) {
	if _, seen := a.totals[category]; !seen {
		a.order = append(a.order, category)
	}
	a.totals[category] += amount
	a.counts[category]++
}

// sorted returns the accumulated categories descending by total.
func (a *categoryAccumulator) sorted() []entity.CategoryTotal {
	out := make([]entity.CategoryTotal, 0, len(a.order))
	for _, c := range a.order {
		out = append(out, entity.CategoryTotal{Category: c, Total: a.totals[c]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

func (a *categoryAccumulator) sortedBreakdown() []entity.CategoryBreakdown {
	out := make([]entity.CategoryBreakdown, 0, len(a.order))
	for _, c := range a.order {
		out = append(out, entity.CategoryBreakdown{
			Category: c,
			Total:    a.totals[c],
			Count:    a.counts[c],
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// Build computes the six dashboard views from bills as of now. Bills
// whose date is empty or unparseable cannot be bucketed and are excluded
// from every view.
func Build(bills []entity.Bill, now time.Time) *entity.InsightsReport {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	windowStart := today.AddDate(0, -12, 0)

	byCategoryMonth := newCategoryAccumulator()
	byCategoryYear := newCategoryAccumulator()
	trendTotals := make(map[string]float64)
	breakdown := make(map[string]*categoryAccumulator)

	var totalThisMonth, totalThisYear float64

	for _, b := range bills {
		d, err := time.Parse(dateLayout, b.Date)
		if err != nil {
			continue
		}

		if d.Year() == now.Year() {
			byCategoryYear.add(b.Category, b.Amount)
			totalThisYear += b.Amount
			if d.Month() == now.Month() {
				byCategoryMonth.add(b.Category, b.Amount)
				totalThisMonth += b.Amount
			}
		}

		// Trailing 12 calendar months, inclusive of the partial current month.
		if d.Before(windowStart) || d.After(today) {
			continue
		}
		month := d.Format("2006-01")
		trendTotals[month] += b.Amount
		acc, ok := breakdown[month]
		if !ok {
			acc = newCategoryAccumulator()
			breakdown[month] = acc
		}
		acc.add(b.Category, b.Amount)
	}

	// Months with no bills produce no entry; YYYY-MM sorts correctly as a string.
	months := make([]string, 0, len(trendTotals))
	for m := range trendTotals {
		months = append(months, m)
	}
	sort.Strings(months)

	trend := make([]entity.MonthTotal, 0, len(months))
	for _, m := range months {
		trend = append(trend, entity.MonthTotal{Month: m, Total: trendTotals[m]})
	}

	monthlyBreakdown := make([]entity.MonthBreakdown, 0, len(months))
	for i := len(months) - 1; i >= 0; i-- {
		m := months[i]
		monthlyBreakdown = append(monthlyBreakdown, entity.MonthBreakdown{
			Month:      m,
			Total:      trendTotals[m],
			Categories: breakdown[m].sortedBreakdown(),
		})
	}

	spendingByCategory := byCategoryMonth.sorted()
	spendingByCategoryYear := byCategoryYear.sorted()

	var topCategory *string
	if len(spendingByCategory) > 0 {
		topCategory = &spendingByCategory[0].Category
	} else if len(spendingByCategoryYear) > 0 {
		topCategory = &spendingByCategoryYear[0].Category
	}

	return &entity.InsightsReport{
		SpendingByCategory:     spendingByCategory,
		SpendingByCategoryYear: spendingByCategoryYear,
		MonthlyTrend:           trend,
		TopCategoryThisMonth:   topCategory,
		TotalThisMonth:         totalThisMonth,
		TotalThisYear:          totalThisYear,
		MonthlyBreakdown:       monthlyBreakdown,
	}
}
