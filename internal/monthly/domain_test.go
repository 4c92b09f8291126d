package monthly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTargetDeltas(t *testing.T) {
	rec := Record{
		Sales:                   4500000,
		FoodCost:                990000,
		BeverageCost:            270000,
		LaborCost:               900000,
		OtherCost:               300000,
		CustomerCount:           3600,
		TargetSales:             4700000,
		TargetFoodCostRatio:     22.0,
		TargetBeverageCostRatio: 6.5,
		TargetLaborCostRatio:    21.0,
	}
	m := Derive(rec)

	assert.InDelta(t, 22.0, m.FoodCostRatio, 0.001)
	assert.InDelta(t, 6.0, m.BeverageCostRatio, 0.001)
	assert.InDelta(t, 20.0, m.LaborCostRatio, 0.001)
	assert.InDelta(t, 0.0, m.FoodCostRatioDelta, 0.001)
	assert.InDelta(t, -0.5, m.BeverageCostRatioDelta, 0.001)
	assert.InDelta(t, -1.0, m.LaborCostRatioDelta, 0.001)
	assert.InDelta(t, 4500000.0/4700000.0*100, m.SalesVsTargetPct, 0.001)
}

func TestDeriveOnTargetDirectionality(t *testing.T) {
	// Sales on target means actual at or above; cost and labor ratios
	// on target mean actual at or below.
	rec := Record{
		Sales:                   5000000,
		FoodCost:                1250000, // 25%
		BeverageCost:            250000,  // 5%
		LaborCost:               1100000, // 22%
		TargetSales:             4800000,
		TargetFoodCostRatio:     24.0,
		TargetBeverageCostRatio: 6.0,
		TargetLaborCostRatio:    22.0,
	}
	m := Derive(rec)

	assert.True(t, m.SalesOnTarget)
	assert.False(t, m.FoodCostOnTarget)
	assert.True(t, m.BeverageCostOnTarget)
	assert.True(t, m.LaborCostOnTarget, "equal to target still counts")
}

func TestDeriveZeroSales(t *testing.T) {
	m := Derive(Record{FoodCost: 80000, TargetSales: 100000})

	assert.Zero(t, m.FoodCostRatio)
	assert.Zero(t, m.TotalCostRatio)
	assert.Zero(t, m.SalesVsTargetPct)
	assert.Zero(t, m.AverageSpending)
}
