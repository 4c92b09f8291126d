package salesreport

// FallbackSnapshot returns the fixed sample dataset served when the
// store lacks enough data to compute a real analysis.
func FallbackSnapshot() Snapshot {
	return Snapshot{
		MonthlySales: []MonthlySalesPoint{
			{Month: "1月", Sales: 2800000, LastYear: 2600000, Target: 2700000, CostRatio: 28.5, LaborCostRatio: 22.0},
			{Month: "2月", Sales: 2950000, LastYear: 2750000, Target: 2800000, CostRatio: 27.8, LaborCostRatio: 21.5},
			{Month: "3月", Sales: 3250000, LastYear: 2900000, Target: 3000000, CostRatio: 26.9, LaborCostRatio: 21.0},
			{Month: "4月", Sales: 3100000, LastYear: 2850000, Target: 2950000, CostRatio: 27.5, LaborCostRatio: 21.8},
			{Month: "5月", Sales: 3400000, LastYear: 3100000, Target: 3200000, CostRatio: 26.2, LaborCostRatio: 20.5},
			{Month: "6月", Sales: 3600000, LastYear: 3250000, Target: 3400000, CostRatio: 25.8, LaborCostRatio: 20.0},
		},
		DailySales: []DaySalesPoint{
			{Day: "月", Sales: 85000, AverageCustomerSpend: 2125, CustomerCount: 40},
			{Day: "火", Sales: 78000, AverageCustomerSpend: 2000, CustomerCount: 39},
			{Day: "水", Sales: 92000, AverageCustomerSpend: 2095, CustomerCount: 44},
			{Day: "木", Sales: 88000, AverageCustomerSpend: 2200, CustomerCount: 40},
			{Day: "金", Sales: 120000, AverageCustomerSpend: 2400, CustomerCount: 50},
			{Day: "土", Sales: 150000, AverageCustomerSpend: 2500, CustomerCount: 60},
			{Day: "日", Sales: 135000, AverageCustomerSpend: 2455, CustomerCount: 55},
		},
		CostRatio: []CostRatioPoint{
			{Month: "1月", Food: 22.5, Beverage: 6.0, Total: 28.5},
			{Month: "2月", Food: 21.8, Beverage: 6.0, Total: 27.8},
			{Month: "3月", Food: 20.9, Beverage: 6.0, Total: 26.9},
			{Month: "4月", Food: 21.5, Beverage: 6.0, Total: 27.5},
			{Month: "5月", Food: 20.2, Beverage: 6.0, Total: 26.2},
			{Month: "6月", Food: 19.8, Beverage: 6.0, Total: 25.8},
		},
		LaborCost: []LaborCostPoint{
			{Month: "1月", Cost: 616000, Ratio: 22.0},
			{Month: "2月", Cost: 634250, Ratio: 21.5},
			{Month: "3月", Cost: 682500, Ratio: 21.0},
			{Month: "4月", Cost: 675800, Ratio: 21.8},
			{Month: "5月", Cost: 697000, Ratio: 20.5},
			{Month: "6月", Cost: 720000, Ratio: 20.0},
		},
		CurrentKPI: KPI{
			Sales:                   3600000,
			CostRatio:               25.8,
			LaborCostRatio:          20.0,
			CustomerCount:           1250,
			TargetAchievementRate:   105.9,
			PreviousMonthComparison: 5.9,
		},
	}
}
