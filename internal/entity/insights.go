package entity

// CategoryTotal is one row of a by-category spending view.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// MonthTotal is one row of the trailing monthly trend.
type MonthTotal struct {
	Month string  `json:"month"` // YYYY-MM
	Total float64 `json:"total"`
}

// CategoryBreakdown is a per-category slice of one month's spending.
type CategoryBreakdown struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// MonthBreakdown holds one month's total plus its per-category detail.
type MonthBreakdown struct {
	Month      string              `json:"month"` // YYYY-MM
	Total      float64             `json:"total"`
	Categories []CategoryBreakdown `json:"categories"`
}

// InsightsReport is computed on demand from the full bill set; it is
// never cached between calls.
type InsightsReport struct {
	SpendingByCategory     []CategoryTotal  `json:"spending_by_category"`
	SpendingByCategoryYear []CategoryTotal  `json:"spending_by_category_year"`
	MonthlyTrend           []MonthTotal     `json:"monthly_trend"`
	TopCategoryThisMonth   *string          `json:"top_category_this_month"`
	TotalThisMonth         float64          `json:"total_this_month"`
	TotalThisYear          float64          `json:"total_this_year"`
	MonthlyBreakdown       []MonthBreakdown `json:"monthly_breakdown"`
}
