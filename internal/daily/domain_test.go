package daily

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveRatios(t *testing.T) {
	rec := Record{
		Sales:         150000,
		FoodCost:      30000,
		BeverageCost:  12750,
		LaborCost:     27300,
		OtherCost:     9500,
		CustomerCount: 120,
	}
	m := Derive(rec)

	assert.Equal(t, int64(42750), m.TotalCost)
	assert.InDelta(t, 28.5, m.TotalCostRatio, 0.001)
	assert.InDelta(t, 18.2, m.LaborCostRatio, 0.001)
	assert.Equal(t, int64(150000-42750-27300-9500), m.OperatingProfit)
	assert.InDelta(t, 1250, m.AverageSpending, 0.001)
}

func TestDeriveRatioSumIdentity(t *testing.T) {
	rec := Record{Sales: 312345, FoodCost: 70999, BeverageCost: 21001, LaborCost: 64000, OtherCost: 18700}
	m := Derive(rec)

	assert.InDelta(t, m.FoodCostRatio+m.BeverageCostRatio, m.TotalCostRatio, 1e-9)
	// profit + costs reconstructs sales exactly, integer arithmetic.
	assert.Equal(t, rec.Sales, m.OperatingProfit+m.TotalCost+rec.LaborCost+rec.OtherCost)
}

func TestDeriveZeroSales(t *testing.T) {
	m := Derive(Record{FoodCost: 1000, LaborCost: 500})
	require.True(t, math.IsInf(m.TotalCostRatio, 1), "raw derive keeps the non-finite division")

	s := m.Sanitized()
	assert.Zero(t, s.TotalCostRatio)
	assert.Zero(t, s.FoodCostRatio)
	assert.Zero(t, s.LaborCostRatio)
	assert.Zero(t, s.OperatingProfitRatio)
	assert.Zero(t, s.AverageSpending)
	assert.Equal(t, int64(-1500), s.OperatingProfit)
}

func TestDeriveZeroCustomers(t *testing.T) {
	s := Derive(Record{Sales: 5000}).Sanitized()
	assert.Zero(t, s.AverageSpending)
}
