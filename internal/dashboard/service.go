package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/noren-ops/noren/internal/daily"
	"github.com/noren-ops/noren/internal/kpi"
	"github.com/noren-ops/noren/internal/monthly"
	"github.com/noren-ops/noren/internal/staff"
	"github.com/noren-ops/noren/internal/training"
)

// DailyReader is the slice of daily persistence the aggregator needs.
type DailyReader interface {
	GetByDate(ctx context.Context, storeID uuid.UUID, date time.Time) (*daily.Record, error)
	ListRange(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]daily.Record, error)
}

// MonthlyReader is the slice of monthly persistence the aggregator needs.
type MonthlyReader interface {
	GetByYearMonth(ctx context.Context, storeID uuid.UUID, year, month int) (*monthly.Record, error)
	ListYear(ctx context.Context, storeID uuid.UUID, year int) ([]monthly.Record, error)
}

// StaffReader lists the store's active members.
type StaffReader interface {
	ListActive(ctx context.Context, storeID uuid.UUID) ([]staff.Member, error)
}

// TrainingReader loads training rows grouped by staff member.
type TrainingReader interface {
	ListByStore(ctx context.Context, storeID uuid.UUID) (map[uuid.UUID][]training.Record, error)
}

// StoreResolver yields the active store id for scoping queries.
type StoreResolver interface {
	Resolve(ctx context.Context) uuid.UUID
}

// Service aggregates the dashboard snapshot. Read-only; a not-found on
// any single-row lookup counts as a zero record, any other failure
// aborts the build.
type Service struct {
	stores   StoreResolver
	dailies  DailyReader
	months   MonthlyReader
	members  StaffReader
	trainees TrainingReader
	cache    *Cache
	now      func() time.Time
}

// NewService builds a Service instance.
func NewService(stores StoreResolver, dailies DailyReader, months MonthlyReader, members StaffReader, trainees TrainingReader, cache *Cache) *Service {
	return &Service{
		stores:   stores,
		dailies:  dailies,
		months:   months,
		members:  members,
		trainees: trainees,
		cache:    cache,
		now:      time.Now,
	}
}

// Load returns the snapshot for the active store, consulting the
// versioned cache first. Writes bump the version, so a cached empty
// snapshot stays valid until data arrives.
func (s *Service) Load(ctx context.Context) (Snapshot, error) {
	storeID := s.stores.Resolve(ctx)
	today := s.now().UTC().Truncate(24 * time.Hour)

	key, err := s.cache.BuildKey(ctx, snapshotKey(storeID.String(), today))
	if err != nil {
		return s.build(ctx, storeID, today)
	}

	var snap Snapshot
	err = s.cache.FetchJSON(ctx, key, &snap, func(ctx context.Context) (interface{}, error) {
		return s.build(ctx, storeID, today)
	})
	if err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

type sourceData struct {
	today     *daily.Record
	yesterday *daily.Record
	window    []daily.Record
	curMonth  *monthly.Record
	prevMonth *monthly.Record
	curYear   []monthly.Record
	prevYear  []monthly.Record
	members   []staff.Member
	trainings map[uuid.UUID][]training.Record
}

func (s *Service) build(ctx context.Context, storeID uuid.UUID, today time.Time) (Snapshot, error) {
	yesterday := today.AddDate(0, 0, -1)
	windowStart := today.AddDate(0, 0, -13)
	year, month := today.Year(), int(today.Month())
	prevYearNum, prevMonthNum := previousMonth(year, month)

	var src sourceData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		src.today, err = zeroOnMissing(s.dailies.GetByDate(gctx, storeID, today))
		return err
	})
	g.Go(func() (err error) {
		src.yesterday, err = zeroOnMissing(s.dailies.GetByDate(gctx, storeID, yesterday))
		return err
	})
	g.Go(func() (err error) {
		src.window, err = s.dailies.ListRange(gctx, storeID, windowStart, today)
		return err
	})
	g.Go(func() (err error) {
		src.curMonth, err = zeroOnMissingMonthly(s.months.GetByYearMonth(gctx, storeID, year, month))
		return err
	})
	g.Go(func() (err error) {
		src.prevMonth, err = zeroOnMissingMonthly(s.months.GetByYearMonth(gctx, storeID, prevYearNum, prevMonthNum))
		return err
	})
	g.Go(func() (err error) {
		src.curYear, err = s.months.ListYear(gctx, storeID, year)
		return err
	})
	g.Go(func() (err error) {
		src.prevYear, err = s.months.ListYear(gctx, storeID, year-1)
		return err
	})
	g.Go(func() (err error) {
		src.members, err = s.members.ListActive(gctx, storeID)
		if err != nil {
			return err
		}
		src.trainings, err = s.trainees.ListByStore(gctx, storeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, fmt.Errorf("dashboard: load sources: %w", err)
	}

	return compose(src, today), nil
}

func compose(src sourceData, today time.Time) Snapshot {
	snap := Snapshot{
		DailyStats:        dailyStats(src.today, src.yesterday),
		MonthlyStats:      monthlyStats(src.curMonth, src.prevMonth),
		YearlyStats:       yearlyStats(src.curYear, src.prevYear),
		SalesComposition:  salesComposition(src.today, src.curMonth),
		CostComposition:   costComposition(src.curMonth),
		ProfitComposition: profitComposition(src.curMonth),
		StaffDistribution: staffDistribution(src.members),
		StaffTraining:     trainingSummaries(src.members, src.trainings),
		Trends:            trends(src.window, today),
	}
	snap.Empty = src.today == nil && src.curMonth == nil &&
		len(src.curYear) == 0 && len(src.trainings) == 0
	return snap
}

func dailyStats(today, yesterday *daily.Record) DailyStats {
	if today == nil {
		today = &daily.Record{}
	}
	totalCost := today.FoodCost + today.BeverageCost
	profit := today.Sales - totalCost - today.LaborCost - today.OtherCost

	var prevSales int64
	if yesterday != nil {
		prevSales = yesterday.Sales
	}
	return DailyStats{
		Sales:                 today.Sales,
		CostRatio:             kpi.Ratio(totalCost, today.Sales),
		LaborCostRatio:        kpi.Ratio(today.LaborCost, today.Sales),
		AverageCustomerSpend:  averageSpend(today.Sales, today.CustomerCount),
		PreviousDayComparison: kpi.ChangePercent(float64(today.Sales), float64(prevSales)),
		CustomerCount:         today.CustomerCount,
		Profit:                profit,
		ProfitMargin:          kpi.Ratio(profit, today.Sales),
	}
}

func monthlyStats(cur, prev *monthly.Record) MonthlyStats {
	if cur == nil {
		cur = &monthly.Record{}
	}
	totalCost := cur.FoodCost + cur.BeverageCost
	profit := cur.Sales - totalCost - cur.LaborCost - cur.OtherCost

	var prevSales int64
	if prev != nil {
		prevSales = prev.Sales
	}
	return MonthlyStats{
		Sales:                   cur.Sales,
		CostRatio:               kpi.Ratio(totalCost, cur.Sales),
		LaborCostRatio:          kpi.Ratio(cur.LaborCost, cur.Sales),
		AverageCustomerSpend:    averageSpend(cur.Sales, cur.CustomerCount),
		PreviousMonthComparison: kpi.ChangePercent(float64(cur.Sales), float64(prevSales)),
		CustomerCount:           cur.CustomerCount,
		Profit:                  profit,
		ProfitMargin:            kpi.Ratio(profit, cur.Sales),
		TargetAchievementRate:   kpi.Ratio(cur.Sales, cur.TargetSales),
	}
}

type yearTotals struct {
	sales, foodCost, beverageCost, laborCost, otherCost, customers int64
}

func sumYear(records []monthly.Record) yearTotals {
	var t yearTotals
	for _, rec := range records {
		t.sales += rec.Sales
		t.foodCost += rec.FoodCost
		t.beverageCost += rec.BeverageCost
		t.laborCost += rec.LaborCost
		t.otherCost += rec.OtherCost
		t.customers += rec.CustomerCount
	}
	return t
}

func yearlyStats(cur, prev []monthly.Record) YearlyStats {
	totals := sumYear(cur)
	prevTotals := sumYear(prev)
	totalCost := totals.foodCost + totals.beverageCost
	profit := totals.sales - totalCost - totals.laborCost - totals.otherCost

	return YearlyStats{
		Sales:                  totals.sales,
		CostRatio:              kpi.Ratio(totalCost, totals.sales),
		LaborCostRatio:         kpi.Ratio(totals.laborCost, totals.sales),
		AverageCustomerSpend:   averageSpend(totals.sales, totals.customers),
		PreviousYearComparison: kpi.ChangePercent(float64(totals.sales), float64(prevTotals.sales)),
		CustomerCount:          totals.customers,
		Profit:                 profit,
		ProfitMargin:           kpi.Ratio(profit, totals.sales),
	}
}

// salesComposition prefers today's actual split; when absent it
// approximates from the month's sales at the historical 70/30 split.
func salesComposition(today *daily.Record, cur *monthly.Record) SalesComposition {
	var comp SalesComposition
	if today != nil && today.FoodSales > 0 {
		comp.Food = today.FoodSales
	} else if cur != nil {
		comp.Food = int64(math.Round(float64(cur.Sales) * 0.7))
	}
	if today != nil && today.BeverageSales > 0 {
		comp.Beverage = today.BeverageSales
	} else if cur != nil {
		comp.Beverage = int64(math.Round(float64(cur.Sales) * 0.3))
	}
	return comp
}

func costComposition(cur *monthly.Record) CostComposition {
	if cur == nil {
		return CostComposition{}
	}
	return CostComposition{
		FoodCost:    cur.FoodCost,
		LaborCost:   cur.LaborCost,
		UtilityCost: int64(math.Round(float64(cur.OtherCost) * 0.4)),
		OtherCost:   int64(math.Round(float64(cur.OtherCost) * 0.6)),
	}
}

func profitComposition(cur *monthly.Record) ProfitComposition {
	if cur == nil {
		return ProfitComposition{}
	}
	cost := cur.FoodCost + cur.BeverageCost + cur.LaborCost + cur.OtherCost
	return ProfitComposition{
		Sales:  cur.Sales,
		Cost:   cost,
		Profit: cur.Sales - cost,
	}
}

func staffDistribution(members []staff.Member) StaffDistribution {
	var dist StaffDistribution
	for _, m := range members {
		switch m.Role.Bucket() {
		case staff.BucketKitchen:
			dist.Kitchen++
		case staff.BucketHall:
			dist.Hall++
		case staff.BucketManagement:
			dist.Management++
		default:
			dist.Cashier++
		}
	}
	return dist
}

func trainingSummaries(members []staff.Member, trainings map[uuid.UUID][]training.Record) []TrainingSummary {
	summaries := make([]TrainingSummary, 0, len(members))
	for _, m := range members {
		records := trainings[m.ID]
		if len(records) == 0 {
			continue
		}
		completed := 0
		for _, rec := range records {
			if rec.Progress >= 100 {
				completed++
			}
		}
		summaries = append(summaries, TrainingSummary{
			Name:            m.Name,
			Progress:        training.OverallProgress(records),
			Position:        m.Role.PositionLabel(),
			SkillsCompleted: completed,
			TotalSkills:     len(records),
		})
	}
	return summaries
}

// trends splits the trailing 14 days at the 7-day mark and plots the
// most recent half.
func trends(window []daily.Record, today time.Time) Trends {
	weekStart := today.AddDate(0, 0, -6)

	var thisWeek, lastWeek int64
	points := make([]TrendPoint, 0, 7)
	for _, rec := range window {
		if rec.Date.Before(weekStart) {
			lastWeek += rec.Sales
			continue
		}
		thisWeek += rec.Sales
		points = append(points, TrendPoint{
			Date:      rec.Date.Format("2006-01-02"),
			Sales:     rec.Sales,
			CostRatio: kpi.Ratio(rec.FoodCost+rec.BeverageCost, rec.Sales),
		})
	}
	return Trends{
		SalesTrend: points,
		WeeklyComparison: WeeklyComparison{
			ThisWeek:      thisWeek,
			LastWeek:      lastWeek,
			ChangePercent: kpi.ChangePercent(float64(thisWeek), float64(lastWeek)),
		},
	}
}

func previousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

func averageSpend(sales, customers int64) float64 {
	if customers == 0 {
		return 0
	}
	return float64(sales) / float64(customers)
}

func zeroOnMissing(rec *daily.Record, err error) (*daily.Record, error) {
	if errors.Is(err, daily.ErrNotFound) {
		return nil, nil
	}
	return rec, err
}

func zeroOnMissingMonthly(rec *monthly.Record, err error) (*monthly.Record, error) {
	if errors.Is(err, monthly.ErrNotFound) {
		return nil, nil
	}
	return rec, err
}
