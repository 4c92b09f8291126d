package monthly

import (
	"time"

	"github.com/google/uuid"

	"github.com/noren-ops/noren/internal/kpi"
)

// Record is one month of aggregate figures and targets for a store.
type Record struct {
	ID                      uuid.UUID `json:"id"`
	StoreID                 uuid.UUID `json:"store_id"`
	Year                    int       `json:"year"`
	Month                   int       `json:"month"`
	Sales                   int64     `json:"sales"`
	FoodCost                int64     `json:"food_cost"`
	BeverageCost            int64     `json:"beverage_cost"`
	LaborCost               int64     `json:"labor_cost"`
	OtherCost               int64     `json:"other_cost"`
	CustomerCount           int64     `json:"customer_count"`
	TargetSales             int64     `json:"target_sales"`
	TargetFoodCostRatio     float64   `json:"target_food_cost_ratio"`
	TargetBeverageCostRatio float64   `json:"target_beverage_cost_ratio"`
	TargetLaborCostRatio    float64   `json:"target_labor_cost_ratio"`
	Notes                   *string   `json:"notes,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// Metrics carries the month's indicators plus target comparisons.
// Targets are lower-is-better for cost and labor ratios and
// higher-is-better for sales.
type Metrics struct {
	TotalCost            int64   `json:"total_cost"`
	TotalCostRatio       float64 `json:"total_cost_ratio"`
	FoodCostRatio        float64 `json:"food_cost_ratio"`
	BeverageCostRatio    float64 `json:"beverage_cost_ratio"`
	LaborCostRatio       float64 `json:"labor_cost_ratio"`
	OtherCostRatio       float64 `json:"other_cost_ratio"`
	OperatingProfit      int64   `json:"operating_profit"`
	OperatingProfitRatio float64 `json:"operating_profit_ratio"`
	AverageSpending      float64 `json:"average_spending"`

	SalesVsTargetPct       float64 `json:"sales_vs_target_pct"`
	FoodCostRatioDelta     float64 `json:"food_cost_ratio_delta"`
	BeverageCostRatioDelta float64 `json:"beverage_cost_ratio_delta"`
	LaborCostRatioDelta    float64 `json:"labor_cost_ratio_delta"`

	SalesOnTarget        bool `json:"sales_on_target"`
	FoodCostOnTarget     bool `json:"food_cost_on_target"`
	BeverageCostOnTarget bool `json:"beverage_cost_on_target"`
	LaborCostOnTarget    bool `json:"labor_cost_on_target"`
}

// Derive computes the month's indicators. Pure, no I/O; every division
// by a zero base is defined as zero.
func Derive(r Record) Metrics {
	totalCost := r.FoodCost + r.BeverageCost
	profit := r.Sales - totalCost - r.LaborCost - r.OtherCost

	foodRatio := kpi.Ratio(r.FoodCost, r.Sales)
	beverageRatio := kpi.Ratio(r.BeverageCost, r.Sales)
	laborRatio := kpi.Ratio(r.LaborCost, r.Sales)

	return Metrics{
		TotalCost:            totalCost,
		TotalCostRatio:       kpi.Ratio(totalCost, r.Sales),
		FoodCostRatio:        foodRatio,
		BeverageCostRatio:    beverageRatio,
		LaborCostRatio:       laborRatio,
		OtherCostRatio:       kpi.Ratio(r.OtherCost, r.Sales),
		OperatingProfit:      profit,
		OperatingProfitRatio: kpi.Ratio(profit, r.Sales),
		AverageSpending:      averageSpending(r.Sales, r.CustomerCount),

		SalesVsTargetPct:       kpi.Ratio(r.Sales, r.TargetSales),
		FoodCostRatioDelta:     foodRatio - r.TargetFoodCostRatio,
		BeverageCostRatioDelta: beverageRatio - r.TargetBeverageCostRatio,
		LaborCostRatioDelta:    laborRatio - r.TargetLaborCostRatio,

		SalesOnTarget:        r.Sales >= r.TargetSales,
		FoodCostOnTarget:     foodRatio <= r.TargetFoodCostRatio,
		BeverageCostOnTarget: beverageRatio <= r.TargetBeverageCostRatio,
		LaborCostOnTarget:    laborRatio <= r.TargetLaborCostRatio,
	}
}

func averageSpending(sales, customers int64) float64 {
	if customers == 0 {
		return 0
	}
	return float64(sales) / float64(customers)
}
