package dashboard

// Snapshot is the full dashboard payload. Field names mirror the JSON
// the dashboard view consumes.
type Snapshot struct {
	DailyStats        DailyStats        `json:"dailyStats"`
	MonthlyStats      MonthlyStats      `json:"monthlyStats"`
	YearlyStats       YearlyStats       `json:"yearlyStats"`
	SalesComposition  SalesComposition  `json:"salesComposition"`
	CostComposition   CostComposition   `json:"costComposition"`
	ProfitComposition ProfitComposition `json:"profitComposition"`
	StaffDistribution StaffDistribution `json:"staffDistribution"`
	StaffTraining     []TrainingSummary `json:"staffTraining"`
	Trends            Trends            `json:"trends"`

	// Empty is true when none of the underlying reads produced a row.
	// Cached snapshots round-trip it; responses omit it when false.
	Empty bool `json:"empty,omitempty"`
}

// DailyStats summarises today against yesterday.
type DailyStats struct {
	Sales                 int64   `json:"sales"`
	CostRatio             float64 `json:"costRatio"`
	LaborCostRatio        float64 `json:"laborCostRatio"`
	AverageCustomerSpend  float64 `json:"averageCustomerSpend"`
	PreviousDayComparison float64 `json:"previousDayComparison"`
	CustomerCount         int64   `json:"customerCount"`
	Profit                int64   `json:"profit"`
	ProfitMargin          float64 `json:"profitMargin"`
}

// MonthlyStats summarises the current month against the previous one.
type MonthlyStats struct {
	Sales                   int64   `json:"sales"`
	CostRatio               float64 `json:"costRatio"`
	LaborCostRatio          float64 `json:"laborCostRatio"`
	AverageCustomerSpend    float64 `json:"averageCustomerSpend"`
	PreviousMonthComparison float64 `json:"previousMonthComparison"`
	CustomerCount           int64   `json:"customerCount"`
	Profit                  int64   `json:"profit"`
	ProfitMargin            float64 `json:"profitMargin"`
	TargetAchievementRate   float64 `json:"targetAchievementRate"`
}

// YearlyStats sums the current year's months against last year's.
type YearlyStats struct {
	Sales                  int64   `json:"sales"`
	CostRatio              float64 `json:"costRatio"`
	LaborCostRatio         float64 `json:"laborCostRatio"`
	AverageCustomerSpend   float64 `json:"averageCustomerSpend"`
	PreviousYearComparison float64 `json:"previousYearComparison"`
	CustomerCount          int64   `json:"customerCount"`
	Profit                 int64   `json:"profit"`
	ProfitMargin           float64 `json:"profitMargin"`
}

// SalesComposition splits sales into food and beverage.
type SalesComposition struct {
	Food     int64 `json:"food"`
	Beverage int64 `json:"beverage"`
}

// CostComposition splits the month's costs into display buckets. The
// utility/other 40/60 split of other_cost is a presentation heuristic
// carried over from the dashboard's original layout.
type CostComposition struct {
	FoodCost    int64 `json:"foodCost"`
	LaborCost   int64 `json:"laborCost"`
	UtilityCost int64 `json:"utilityCost"`
	OtherCost   int64 `json:"otherCost"`
}

// ProfitComposition shows where the month's sales went.
type ProfitComposition struct {
	Sales  int64 `json:"sales"`
	Cost   int64 `json:"cost"`
	Profit int64 `json:"profit"`
}

// StaffDistribution counts active members per dashboard bucket.
type StaffDistribution struct {
	Kitchen    int `json:"kitchen"`
	Hall       int `json:"hall"`
	Cashier    int `json:"cashier"`
	Management int `json:"management"`
}

// TrainingSummary is one member's aggregate training line. Members
// with no training records are omitted from the summary.
type TrainingSummary struct {
	Name            string `json:"name"`
	Progress        int    `json:"progress"`
	Position        string `json:"position"`
	SkillsCompleted int    `json:"skillsCompleted"`
	TotalSkills     int    `json:"totalSkills"`
}

// Trends carries the sales trend points and the week-over-week sums.
type Trends struct {
	SalesTrend       []TrendPoint     `json:"salesTrend"`
	WeeklyComparison WeeklyComparison `json:"weeklyComparison"`
}

// TrendPoint is one day on the sales trend chart.
type TrendPoint struct {
	Date      string  `json:"date"`
	Sales     int64   `json:"sales"`
	CostRatio float64 `json:"costRatio"`
}

// WeeklyComparison sums the trailing 14 days split into halves.
type WeeklyComparison struct {
	ThisWeek      int64   `json:"thisWeek"`
	LastWeek      int64   `json:"lastWeek"`
	ChangePercent float64 `json:"changePercent"`
}
