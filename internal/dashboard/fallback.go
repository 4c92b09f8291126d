package dashboard

// FallbackSnapshot returns the fixed sample dataset served when the
// store has no data yet or a read failed. The numbers are stable so a
// brand-new install still renders a plausible dashboard.
func FallbackSnapshot() Snapshot {
	return Snapshot{
		DailyStats: DailyStats{
			Sales:                 150000,
			CostRatio:             28.5,
			LaborCostRatio:        18.2,
			AverageCustomerSpend:  1250,
			PreviousDayComparison: 5.2,
			CustomerCount:         120,
			Profit:                80250,
			ProfitMargin:          53.5,
		},
		MonthlyStats: MonthlyStats{
			Sales:                   4500000,
			CostRatio:               27.8,
			LaborCostRatio:          19.1,
			AverageCustomerSpend:    1250,
			PreviousMonthComparison: 8.1,
			CustomerCount:           3600,
			Profit:                  2385000,
			ProfitMargin:            53.0,
			TargetAchievementRate:   95.2,
		},
		YearlyStats: YearlyStats{
			Sales:                  54000000,
			CostRatio:              28.2,
			LaborCostRatio:         19.5,
			AverageCustomerSpend:   1300,
			PreviousYearComparison: 12.3,
			CustomerCount:          41538,
			Profit:                 28350000,
			ProfitMargin:           52.5,
		},
		SalesComposition: SalesComposition{
			Food:     3150000,
			Beverage: 1350000,
		},
		CostComposition: CostComposition{
			FoodCost:    945000,
			LaborCost:   855000,
			UtilityCost: 180000,
			OtherCost:   135000,
		},
		ProfitComposition: ProfitComposition{
			Sales:  4500000,
			Cost:   2115000,
			Profit: 2385000,
		},
		StaffDistribution: StaffDistribution{
			Kitchen:    8,
			Hall:       12,
			Cashier:    4,
			Management: 3,
		},
		StaffTraining: []TrainingSummary{
			{Name: "田中太郎", Progress: 85, Position: "キッチン", SkillsCompleted: 17, TotalSkills: 20},
			{Name: "佐藤花子", Progress: 92, Position: "ホール", SkillsCompleted: 23, TotalSkills: 25},
			{Name: "鈴木一郎", Progress: 78, Position: "管理", SkillsCompleted: 14, TotalSkills: 18},
			{Name: "山田次郎", Progress: 65, Position: "ホール", SkillsCompleted: 13, TotalSkills: 20},
			{Name: "高橋美咲", Progress: 88, Position: "キッチン", SkillsCompleted: 22, TotalSkills: 25},
		},
		Trends: Trends{
			SalesTrend: []TrendPoint{
				{Date: "2024-01-01", Sales: 145000, CostRatio: 28.2},
				{Date: "2024-01-02", Sales: 152000, CostRatio: 27.8},
				{Date: "2024-01-03", Sales: 148000, CostRatio: 28.5},
				{Date: "2024-01-04", Sales: 155000, CostRatio: 27.2},
				{Date: "2024-01-05", Sales: 150000, CostRatio: 28.1},
			},
			WeeklyComparison: WeeklyComparison{
				ThisWeek:      1050000,
				LastWeek:      985000,
				ChangePercent: 6.6,
			},
		},
		Empty: true,
	}
}
