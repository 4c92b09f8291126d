package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noren-ops/noren/internal/daily"
	"github.com/noren-ops/noren/internal/monthly"
	"github.com/noren-ops/noren/internal/staff"
	"github.com/noren-ops/noren/internal/training"
)

type fakeSources struct {
	dailies   map[string]daily.Record
	window    []daily.Record
	months    map[[2]int]monthly.Record
	members   []staff.Member
	trainings map[uuid.UUID][]training.Record
}

func (f *fakeSources) GetByDate(_ context.Context, _ uuid.UUID, date time.Time) (*daily.Record, error) {
	rec, ok := f.dailies[date.Format("2006-01-02")]
	if !ok {
		return nil, daily.ErrNotFound
	}
	return &rec, nil
}

func (f *fakeSources) ListRange(_ context.Context, _ uuid.UUID, from, to time.Time) ([]daily.Record, error) {
	var out []daily.Record
	for _, rec := range f.window {
		if !rec.Date.Before(from) && !rec.Date.After(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeSources) GetByYearMonth(_ context.Context, _ uuid.UUID, year, month int) (*monthly.Record, error) {
	rec, ok := f.months[[2]int{year, month}]
	if !ok {
		return nil, monthly.ErrNotFound
	}
	return &rec, nil
}

func (f *fakeSources) ListYear(_ context.Context, _ uuid.UUID, year int) ([]monthly.Record, error) {
	var out []monthly.Record
	for key, rec := range f.months {
		if key[0] == year {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeSources) ListActive(context.Context, uuid.UUID) ([]staff.Member, error) {
	return f.members, nil
}

func (f *fakeSources) ListByStore(context.Context, uuid.UUID) (map[uuid.UUID][]training.Record, error) {
	if f.trainings == nil {
		return map[uuid.UUID][]training.Record{}, nil
	}
	return f.trainings, nil
}

type fixedStore struct{ id uuid.UUID }

func (s fixedStore) Resolve(context.Context) uuid.UUID { return s.id }

var testToday = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

func newTestService(src *fakeSources) *Service {
	svc := NewService(fixedStore{id: uuid.New()}, src, src, src, src, nil)
	svc.now = func() time.Time { return testToday }
	return svc
}

func TestLoadTodayOnly(t *testing.T) {
	src := &fakeSources{
		dailies: map[string]daily.Record{
			"2026-08-30": {
				Date:          testToday,
				Sales:         150000,
				FoodCost:      30000,
				BeverageCost:  12750,
				LaborCost:     27300,
				OtherCost:     9500,
				CustomerCount: 120,
			},
		},
	}
	snap, err := newTestService(src).Load(context.Background())
	require.NoError(t, err)

	assert.False(t, snap.Empty, "one real row means real data")
	assert.Equal(t, int64(150000), snap.DailyStats.Sales)
	assert.InDelta(t, 28.5, snap.DailyStats.CostRatio, 0.001)
	assert.InDelta(t, 18.2, snap.DailyStats.LaborCostRatio, 0.001)
	assert.Zero(t, snap.DailyStats.PreviousDayComparison, "no yesterday row")
	assert.Zero(t, snap.MonthlyStats.Sales)
	assert.Zero(t, snap.MonthlyStats.CostRatio)
	assert.Zero(t, snap.YearlyStats.Sales)
}

func TestLoadEmptyStore(t *testing.T) {
	snap, err := newTestService(&fakeSources{}).Load(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.Empty)
}

func TestWeeklyComparison(t *testing.T) {
	// 1,050,000 across the last seven days, 985,000 across the seven
	// before that.
	src := &fakeSources{}
	for i := 0; i < 7; i++ {
		src.window = append(src.window, daily.Record{
			Date:  testToday.AddDate(0, 0, -i),
			Sales: 150000,
		})
	}
	for i := 7; i < 14; i++ {
		sales := int64(140000)
		if i == 7 {
			sales = 145000
		}
		src.window = append(src.window, daily.Record{
			Date:  testToday.AddDate(0, 0, -i),
			Sales: sales,
		})
	}

	snap, err := newTestService(src).Load(context.Background())
	require.NoError(t, err)

	wc := snap.Trends.WeeklyComparison
	assert.Equal(t, int64(1050000), wc.ThisWeek)
	assert.Equal(t, int64(985000), wc.LastWeek)
	assert.InDelta(t, 6.6, wc.ChangePercent, 0.05)
	assert.Len(t, snap.Trends.SalesTrend, 7)
}

func TestPreviousMonthWrapsDecember(t *testing.T) {
	year, month := previousMonth(2026, 1)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 12, month)

	year, month = previousMonth(2026, 8)
	assert.Equal(t, 2026, year)
	assert.Equal(t, 7, month)
}

func TestStaffDistributionAndTrainingSummary(t *testing.T) {
	chef := staff.Member{ID: uuid.New(), Name: "田中太郎", Role: staff.RoleChef, Status: staff.StatusActive}
	hall := staff.Member{ID: uuid.New(), Name: "佐藤花子", Role: staff.RoleHall, Status: staff.StatusActive}
	manager := staff.Member{ID: uuid.New(), Name: "鈴木一郎", Role: staff.RoleManager, Status: staff.StatusActive}
	other := staff.Member{ID: uuid.New(), Name: "山本三郎", Role: staff.RoleStaff, Status: staff.StatusActive}

	src := &fakeSources{
		members: []staff.Member{chef, hall, manager, other},
		trainings: map[uuid.UUID][]training.Record{
			chef.ID: {{Progress: 100}, {Progress: 50}, {Progress: 0}},
			hall.ID: {{Progress: 80}},
		},
	}

	snap, err := newTestService(src).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StaffDistribution{Kitchen: 1, Hall: 1, Management: 1, Cashier: 1}, snap.StaffDistribution)

	require.Len(t, snap.StaffTraining, 2, "members without training rows are omitted")
	assert.Equal(t, "田中太郎", snap.StaffTraining[0].Name)
	assert.Equal(t, 50, snap.StaffTraining[0].Progress)
	assert.Equal(t, "キッチン", snap.StaffTraining[0].Position)
	assert.Equal(t, 1, snap.StaffTraining[0].SkillsCompleted)
	assert.Equal(t, 3, snap.StaffTraining[0].TotalSkills)
}

func TestMonthlyStatsComparison(t *testing.T) {
	src := &fakeSources{
		months: map[[2]int]monthly.Record{
			{2026, 8}: {Year: 2026, Month: 8, Sales: 4500000, FoodCost: 990000, BeverageCost: 270000, LaborCost: 900000, TargetSales: 4700000, CustomerCount: 3600},
			{2026, 7}: {Year: 2026, Month: 7, Sales: 4000000},
		},
	}
	snap, err := newTestService(src).Load(context.Background())
	require.NoError(t, err)

	ms := snap.MonthlyStats
	assert.InDelta(t, 12.5, ms.PreviousMonthComparison, 0.001)
	assert.InDelta(t, 28.0, ms.CostRatio, 0.001)
	assert.InDelta(t, 4500000.0/4700000.0*100, ms.TargetAchievementRate, 0.001)

	// Yearly block sums both months of the current year.
	assert.Equal(t, int64(8500000), snap.YearlyStats.Sales)
}
