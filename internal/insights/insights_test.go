package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billtracker/internal/entity"
)

func bill(date, category string, amount float64) entity.Bill {
	return entity.Bill{Date: date, Category: category, Amount: amount}
}

func TestBuild_Empty(t *testing.T) {
	report := Build(nil, time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC))

	assert.Empty(t, report.SpendingByCategory)
	assert.Empty(t, report.SpendingByCategoryYear)
	assert.Empty(t, report.MonthlyTrend)
	assert.Nil(t, report.TopCategoryThisMonth)
	assert.Zero(t, report.TotalThisMonth)
	assert.Zero(t, report.TotalThisYear)
	assert.Empty(t, report.MonthlyBreakdown)
}

func TestBuild_SpecExample(t *testing.T) {
	// Jan: food 10 + food 5, Feb: travel 20, with "now" in February.
	bills := []entity.Bill{
		bill("2024-01-10", "food", 10),
		bill("2024-01-20", "food", 5),
		bill("2024-02-05", "travel", 20),
	}
	now := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)

	report := Build(bills, now)

	assert.Equal(t, []entity.CategoryTotal{
		{Category: "travel", Total: 20},
		{Category: "food", Total: 15},
	}, report.SpendingByCategoryYear)
	assert.Equal(t, []entity.CategoryTotal{
		{Category: "travel", Total: 20},
	}, report.SpendingByCategory)

	require.NotNil(t, report.TopCategoryThisMonth)
	assert.Equal(t, "travel", *report.TopCategoryThisMonth)
	assert.Equal(t, 20.0, report.TotalThisMonth)
	assert.Equal(t, 35.0, report.TotalThisYear)

	assert.Equal(t, []entity.MonthTotal{
		{Month: "2024-01", Total: 15},
		{Month: "2024-02", Total: 20},
	}, report.MonthlyTrend)

	require.Len(t, report.MonthlyBreakdown, 2)
	assert.Equal(t, entity.MonthBreakdown{
		Month: "2024-02",
		Total: 20,
		Categories: []entity.CategoryBreakdown{
			{Category: "travel", Total: 20, Count: 1},
		},
	}, report.MonthlyBreakdown[0])
	assert.Equal(t, entity.MonthBreakdown{
		Month: "2024-01",
		Total: 15,
		Categories: []entity.CategoryBreakdown{
			{Category: "food", Total: 15, Count: 2},
		},
	}, report.MonthlyBreakdown[1])
}

func TestBuild_TopCategoryFallsBackToYear(t *testing.T) {
	// Nothing this month; the year view still has entries.
	bills := []entity.Bill{
		bill("2024-01-10", "utilities", 40),
		bill("2024-01-11", "food", 10),
	}
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	report := Build(bills, now)

	assert.Empty(t, report.SpendingByCategory)
	assert.Zero(t, report.TotalThisMonth)
	require.NotNil(t, report.TopCategoryThisMonth)
	assert.Equal(t, "utilities", *report.TopCategoryThisMonth)
}

func TestBuild_UnbucketableDatesExcluded(t *testing.T) {
	bills := []entity.Bill{
		bill("", "food", 10),
		bill("not-a-date", "food", 10),
		bill("2024-02", "food", 10),
		bill("2024-02-05", "travel", 20),
	}
	now := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	report := Build(bills, now)

	assert.Equal(t, 20.0, report.TotalThisMonth)
	assert.Equal(t, 20.0, report.TotalThisYear)
	require.Len(t, report.MonthlyTrend, 1)
	assert.Equal(t, "2024-02", report.MonthlyTrend[0].Month)
}

func TestBuild_TrailingWindowBounds(t *testing.T) {
	now := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	bills := []entity.Bill{
		bill("2023-06-14", "food", 1),  // one day before the window
		bill("2023-06-15", "food", 2),  // exactly twelve months back
		bill("2024-06-15", "food", 4),  // today
		bill("2024-06-16", "food", 8),  // tomorrow, outside the window
		bill("2023-11-01", "travel", 16),
	}

	report := Build(bills, now)

	require.Len(t, report.MonthlyTrend, 3)
	assert.Equal(t, []entity.MonthTotal{
		{Month: "2023-06", Total: 2},
		{Month: "2023-11", Total: 16},
		{Month: "2024-06", Total: 4},
	}, report.MonthlyTrend)

	// Breakdown is the same window, most recent month first.
	require.Len(t, report.MonthlyBreakdown, 3)
	assert.Equal(t, "2024-06", report.MonthlyBreakdown[0].Month)
	assert.Equal(t, "2023-11", report.MonthlyBreakdown[1].Month)
	assert.Equal(t, "2023-06", report.MonthlyBreakdown[2].Month)

	// Prior-year bills stay out of the year views even when inside the
	// trailing window. Tomorrow's bill still counts for month/year totals.
	assert.Equal(t, 12.0, report.TotalThisMonth)
	assert.Equal(t, 12.0, report.TotalThisYear)
}

func TestBuild_CategoryTiesKeepFirstSeenOrder(t *testing.T) {
	bills := []entity.Bill{
		bill("2024-02-01", "shopping", 10),
		bill("2024-02-02", "healthcare", 10),
	}
	now := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	report := Build(bills, now)

	assert.Equal(t, []entity.CategoryTotal{
		{Category: "shopping", Total: 10},
		{Category: "healthcare", Total: 10},
	}, report.SpendingByCategory)
}

func TestBuild_NestedCategoriesSortedByTotal(t *testing.T) {
	bills := []entity.Bill{
		bill("2024-02-01", "food", 5),
		bill("2024-02-02", "travel", 50),
		bill("2024-02-03", "food", 10),
		bill("2024-02-04", "utilities", 20),
	}
	now := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	report := Build(bills, now)

	require.Len(t, report.MonthlyBreakdown, 1)
	assert.Equal(t, []entity.CategoryBreakdown{
		{Category: "travel", Total: 50, Count: 1},
		{Category: "utilities", Total: 20, Count: 1},
		{Category: "food", Total: 15, Count: 2},
	}, report.MonthlyBreakdown[0].Categories)
}

func TestBuild_Idempotent(t *testing.T) {
	bills := []entity.Bill{
		bill("2024-01-10", "food", 10),
		bill("2024-02-05", "travel", 20),
	}
	now := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	first := Build(bills, now)
	second := Build(bills, now)

	assert.Equal(t, first, second)
}
