package salesreport

// Snapshot is the sales analysis payload. Field names mirror the JSON
// the analysis view consumes.
type Snapshot struct {
	MonthlySales []MonthlySalesPoint `json:"monthlySales"`
	DailySales   []DaySalesPoint     `json:"dailySales"`
	CostRatio    []CostRatioPoint    `json:"costRatio"`
	LaborCost    []LaborCostPoint    `json:"laborCost"`
	CurrentKPI   KPI                 `json:"currentKPI"`
}

// MonthlySalesPoint is one month's sales against last year and target.
// Months without a current-year record are omitted from the series.
type MonthlySalesPoint struct {
	Month          string  `json:"month"`
	Sales          int64   `json:"sales"`
	LastYear       int64   `json:"lastYear"`
	Target         int64   `json:"target"`
	CostRatio      float64 `json:"costRatio"`
	LaborCostRatio float64 `json:"laborCostRatio"`
}

// DaySalesPoint is the average performance of one weekday across the
// trailing 30 days, all values rounded to integers.
type DaySalesPoint struct {
	Day                  string `json:"day"`
	Sales                int64  `json:"sales"`
	AverageCustomerSpend int64  `json:"averageCustomerSpend"`
	CustomerCount        int64  `json:"customerCount"`
}

// CostRatioPoint splits one month's cost ratio into food and beverage,
// one decimal each.
type CostRatioPoint struct {
	Month    string  `json:"month"`
	Food     float64 `json:"food"`
	Beverage float64 `json:"beverage"`
	Total    float64 `json:"total"`
}

// LaborCostPoint is one month's labor cost and its ratio to sales.
type LaborCostPoint struct {
	Month string  `json:"month"`
	Cost  int64   `json:"cost"`
	Ratio float64 `json:"ratio"`
}

// KPI is the current month's headline block. All ratios carry one
// decimal; a missing current-month record yields the zero value.
type KPI struct {
	Sales                   int64   `json:"sales"`
	CostRatio               float64 `json:"costRatio"`
	LaborCostRatio          float64 `json:"laborCostRatio"`
	CustomerCount           int64   `json:"customerCount"`
	TargetAchievementRate   float64 `json:"targetAchievementRate"`
	PreviousMonthComparison float64 `json:"previousMonthComparison"`
}
