package daily

import (
	"time"

	"github.com/google/uuid"

	"github.com/noren-ops/noren/internal/kpi"
)

// Record is one business day of sales and cost figures for a store.
// Monetary amounts are non-negative integers in the smallest currency unit.
type Record struct {
	ID            uuid.UUID `json:"id"`
	StoreID       uuid.UUID `json:"store_id"`
	Date          time.Time `json:"date"`
	Sales         int64     `json:"sales"`
	FoodSales     int64     `json:"food_sales"`
	BeverageSales int64     `json:"beverage_sales"`
	FoodCost      int64     `json:"food_cost"`
	BeverageCost  int64     `json:"beverage_cost"`
	LaborCost     int64     `json:"labor_cost"`
	OtherCost     int64     `json:"other_cost"`
	CustomerCount int64     `json:"customer_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Metrics carries the per-day indicators derived from a single record.
// Ratios are percentages. When Sales is zero the raw divisions are not
// finite; call Sanitized before handing values to a renderer.
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
}

// Derive computes the day's indicators. Pure, no I/O.
func Derive(r Record) Metrics {
	totalCost := r.FoodCost + r.BeverageCost
	profit := r.Sales - totalCost - r.LaborCost - r.OtherCost
	sales := float64(r.Sales)
	return Metrics{
		TotalCost:            totalCost,
		TotalCostRatio:       float64(totalCost) / sales * 100,
		FoodCostRatio:        float64(r.FoodCost) / sales * 100,
		BeverageCostRatio:    float64(r.BeverageCost) / sales * 100,
		LaborCostRatio:       float64(r.LaborCost) / sales * 100,
		OtherCostRatio:       float64(r.OtherCost) / sales * 100,
		OperatingProfit:      profit,
		OperatingProfitRatio: float64(profit) / sales * 100,
		AverageSpending:      sales / float64(r.CustomerCount),
	}
}

// Sanitized returns a copy with every non-finite value replaced by zero,
// which is what the rendering layer expects for zero-sales days.
func (m Metrics) Sanitized() Metrics {
	m.TotalCostRatio = kpi.Finite(m.TotalCostRatio)
	m.FoodCostRatio = kpi.Finite(m.FoodCostRatio)
	m.BeverageCostRatio = kpi.Finite(m.BeverageCostRatio)
	m.LaborCostRatio = kpi.Finite(m.LaborCostRatio)
	m.OtherCostRatio = kpi.Finite(m.OtherCostRatio)
	m.OperatingProfitRatio = kpi.Finite(m.OperatingProfitRatio)
	m.AverageSpending = kpi.Finite(m.AverageSpending)
	return m
}
