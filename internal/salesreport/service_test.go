package salesreport

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noren-ops/noren/internal/daily"
	"github.com/noren-ops/noren/internal/locale"
	"github.com/noren-ops/noren/internal/monthly"
)

type fakeSources struct {
	dailies []daily.Record
	months  map[int][]monthly.Record
}

func (f *fakeSources) ListRange(_ context.Context, _ uuid.UUID, from, to time.Time) ([]daily.Record, error) {
	var out []daily.Record
	for _, rec := range f.dailies {
		if !rec.Date.Before(from) && !rec.Date.After(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeSources) ListYear(_ context.Context, _ uuid.UUID, year int) ([]monthly.Record, error) {
	return f.months[year], nil
}

type fixedStore struct{ id uuid.UUID }

func (s fixedStore) Resolve(context.Context) uuid.UUID { return s.id }

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func newTestService(src *fakeSources) *Service {
	svc := NewService(fixedStore{id: uuid.New()}, src, src)
	svc.now = func() time.Time { return testNow }
	return svc
}

func japaneseLabels() locale.Labels { return locale.Match("ja") }

func oneDaily(date time.Time) daily.Record {
	return daily.Record{Date: date, Sales: 150000, CustomerCount: 120}
}

func TestLoadInsufficientData(t *testing.T) {
	// No monthly rows at all.
	_, ok, err := newTestService(&fakeSources{
		dailies: []daily.Record{oneDaily(testNow.Truncate(24 * time.Hour))},
	}).Load(context.Background(), japaneseLabels())
	require.NoError(t, err)
	assert.False(t, ok)

	// Monthly rows but no dailies in the window.
	_, ok, err = newTestService(&fakeSources{
		months: map[int][]monthly.Record{2026: {{Year: 2026, Month: 8, Sales: 1000}}},
	}).Load(context.Background(), japaneseLabels())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMonthlySalesOmitsMissingMonths(t *testing.T) {
	src := &fakeSources{
		dailies: []daily.Record{oneDaily(testNow.Truncate(24 * time.Hour))},
		months: map[int][]monthly.Record{
			2026: {
				{Year: 2026, Month: 3, Sales: 4200000, TargetSales: 4300000, FoodCost: 900000, BeverageCost: 260000, LaborCost: 850000},
				{Year: 2026, Month: 8, Sales: 4500000, FoodCost: 990000, BeverageCost: 270000, LaborCost: 900000},
			},
			2025: {
				{Year: 2025, Month: 8, Sales: 4100000},
			},
		},
	}
	snap, ok, err := newTestService(src).Load(context.Background(), japaneseLabels())
	require.NoError(t, err)
	require.True(t, ok)

	require.Len(t, snap.MonthlySales, 2, "months without records are omitted")
	assert.Equal(t, "3月", snap.MonthlySales[0].Month)
	assert.Equal(t, int64(4300000), snap.MonthlySales[0].Target, "stored target wins")
	assert.Zero(t, snap.MonthlySales[0].LastYear)

	aug := snap.MonthlySales[1]
	assert.Equal(t, "8月", aug.Month)
	assert.Equal(t, int64(4050000), aug.Target, "missing target falls back to 90% of sales")
	assert.Equal(t, int64(4100000), aug.LastYear)
}

func TestDaySalesAveragesPerWeekday(t *testing.T) {
	today := testNow.Truncate(24 * time.Hour) // 2026-08-30, a Sunday
	src := &fakeSources{
		dailies: []daily.Record{
			{Date: today, Sales: 160000, CustomerCount: 130},
			{Date: today.AddDate(0, 0, -7), Sales: 140001, CustomerCount: 110},
			{Date: today.AddDate(0, 0, -1), Sales: 180000, CustomerCount: 150}, // Saturday
		},
		months: map[int][]monthly.Record{2026: {{Year: 2026, Month: 8, Sales: 4500000}}},
	}
	snap, ok, err := newTestService(src).Load(context.Background(), japaneseLabels())
	require.NoError(t, err)
	require.True(t, ok)

	require.Len(t, snap.DailySales, 7)
	sunday := snap.DailySales[0]
	assert.Equal(t, "日", sunday.Day)
	assert.Equal(t, int64(150001), sunday.Sales, "average rounds to an integer")
	assert.Equal(t, int64(120), sunday.CustomerCount)

	saturday := snap.DailySales[6]
	assert.Equal(t, "土", saturday.Day)
	assert.Equal(t, int64(180000), saturday.Sales)
	assert.Equal(t, int64(1200), saturday.AverageCustomerSpend)

	monday := snap.DailySales[1]
	assert.Zero(t, monday.Sales, "weekday with no records stays zero")
}

func TestCostRatioTrendSkipsZeroSalesMonths(t *testing.T) {
	src := &fakeSources{
		dailies: []daily.Record{oneDaily(testNow.Truncate(24 * time.Hour))},
		months: map[int][]monthly.Record{
			2026: {
				{Year: 2026, Month: 7, Sales: 0, FoodCost: 100},
				{Year: 2026, Month: 8, Sales: 4500000, FoodCost: 990000, BeverageCost: 272000, LaborCost: 900000},
			},
		},
	}
	snap, ok, err := newTestService(src).Load(context.Background(), japaneseLabels())
	require.NoError(t, err)
	require.True(t, ok)

	require.Len(t, snap.CostRatio, 1)
	point := snap.CostRatio[0]
	assert.Equal(t, "8月", point.Month)
	assert.InDelta(t, 22.0, point.Food, 0.001)
	assert.InDelta(t, 6.0, point.Beverage, 0.001)
	assert.InDelta(t, 28.0, point.Total, 0.001)

	require.Len(t, snap.LaborCost, 2, "labor trend keeps zero-sales months")
	assert.Zero(t, snap.LaborCost[0].Ratio)
}

func TestCurrentKPIDecemberWrapsToPriorYear(t *testing.T) {
	src := &fakeSources{
		dailies: []daily.Record{oneDaily(time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC))},
		months: map[int][]monthly.Record{
			2027: {{Year: 2027, Month: 1, Sales: 3600000, FoodCost: 792000, BeverageCost: 136800, LaborCost: 720000, CustomerCount: 1250, TargetSales: 3400000}},
			2026: {{Year: 2026, Month: 12, Sales: 3400000}},
		},
	}
	svc := newTestService(src)
	svc.now = func() time.Time { return time.Date(2027, 1, 15, 9, 0, 0, 0, time.UTC) }

	snap, ok, err := svc.Load(context.Background(), japaneseLabels())
	require.NoError(t, err)
	require.True(t, ok)

	k := snap.CurrentKPI
	assert.Equal(t, int64(3600000), k.Sales)
	assert.InDelta(t, 25.8, k.CostRatio, 0.001)
	assert.InDelta(t, 20.0, k.LaborCostRatio, 0.001)
	assert.InDelta(t, 105.9, k.TargetAchievementRate, 0.001)
	assert.InDelta(t, 5.9, k.PreviousMonthComparison, 0.001)
}

func TestCurrentKPIZeroPreviousSales(t *testing.T) {
	src := &fakeSources{
		dailies: []daily.Record{oneDaily(testNow.Truncate(24 * time.Hour))},
		months: map[int][]monthly.Record{
			2026: {
				{Year: 2026, Month: 7, Sales: 0},
				{Year: 2026, Month: 8, Sales: 4500000},
			},
		},
	}
	snap, ok, err := newTestService(src).Load(context.Background(), japaneseLabels())
	require.NoError(t, err)
	require.True(t, ok)

	assert.Zero(t, snap.CurrentKPI.PreviousMonthComparison, "comparison suppressed against a zero month")
}
