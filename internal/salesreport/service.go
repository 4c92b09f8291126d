package salesreport

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/noren-ops/noren/internal/daily"
	"github.com/noren-ops/noren/internal/kpi"
	"github.com/noren-ops/noren/internal/locale"
	"github.com/noren-ops/noren/internal/monthly"
)

// DailyReader is the slice of daily persistence the analysis needs.
type DailyReader interface {
	ListRange(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]daily.Record, error)
}

// MonthlyReader is the slice of monthly persistence the analysis needs.
type MonthlyReader interface {
	ListYear(ctx context.Context, storeID uuid.UUID, year int) ([]monthly.Record, error)
}

// StoreResolver yields the active store id for scoping queries.
type StoreResolver interface {
	Resolve(ctx context.Context) uuid.UUID
}

// Service builds the sales analysis snapshot from the current and
// prior year's monthly records plus the trailing 30 days of dailies.
type Service struct {
	stores  StoreResolver
	dailies DailyReader
	months  MonthlyReader
	now     func() time.Time
}

// NewService builds a Service instance.
func NewService(stores StoreResolver, dailies DailyReader, months MonthlyReader) *Service {
	return &Service{stores: stores, dailies: dailies, months: months, now: time.Now}
}

// Load computes the analysis. The second return reports whether the
// store had enough data; the caller decides what to render when not.
func (s *Service) Load(ctx context.Context, labels locale.Labels) (Snapshot, bool, error) {
	storeID := s.stores.Resolve(ctx)
	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour)
	year, month := now.Year(), int(now.Month())

	var (
		curYear  []monthly.Record
		prevYear []monthly.Record
		dailies  []daily.Record
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		curYear, err = s.months.ListYear(gctx, storeID, year)
		return err
	})
	g.Go(func() (err error) {
		prevYear, err = s.months.ListYear(gctx, storeID, year-1)
		return err
	})
	g.Go(func() (err error) {
		dailies, err = s.dailies.ListRange(gctx, storeID, today.AddDate(0, 0, -30), today)
		return err
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, false, fmt.Errorf("salesreport: load sources: %w", err)
	}

	if len(curYear) == 0 && len(prevYear) == 0 {
		return Snapshot{}, false, nil
	}
	if len(dailies) == 0 {
		return Snapshot{}, false, nil
	}

	byMonth := indexByMonth(curYear)
	prevByMonth := indexByMonth(prevYear)

	snap := Snapshot{
		MonthlySales: monthlySales(byMonth, prevByMonth, labels),
		DailySales:   daySales(dailies, labels),
		CostRatio:    costRatioTrend(byMonth, labels),
		LaborCost:    laborCostTrend(byMonth, labels),
		CurrentKPI:   currentKPI(byMonth, prevByMonth, year, month),
	}
	return snap, true, nil
}

func indexByMonth(records []monthly.Record) map[int]monthly.Record {
	indexed := make(map[int]monthly.Record, len(records))
	for _, rec := range records {
		indexed[rec.Month] = rec
	}
	return indexed
}

// monthlySales emits one point per month that has a current-year
// record. A missing stored target falls back to 90% of actual sales.
func monthlySales(cur, prev map[int]monthly.Record, labels locale.Labels) []MonthlySalesPoint {
	points := make([]MonthlySalesPoint, 0, 12)
	for month := 1; month <= 12; month++ {
		rec, ok := cur[month]
		if !ok {
			continue
		}
		target := rec.TargetSales
		if target == 0 {
			target = int64(math.Round(float64(rec.Sales) * 0.9))
		}
		var lastYear int64
		if prevRec, ok := prev[month]; ok {
			lastYear = prevRec.Sales
		}
		points = append(points, MonthlySalesPoint{
			Month:          labels.Month(month),
			Sales:          rec.Sales,
			LastYear:       lastYear,
			Target:         target,
			CostRatio:      kpi.Ratio(rec.FoodCost+rec.BeverageCost, rec.Sales),
			LaborCostRatio: kpi.Ratio(rec.LaborCost, rec.Sales),
		})
	}
	return points
}

// daySales averages sales and customer counts per weekday across the
// fetched records, Sunday first.
func daySales(records []daily.Record, labels locale.Labels) []DaySalesPoint {
	type bucket struct {
		sales, customers, count int64
	}
	var buckets [7]bucket
	for _, rec := range records {
		day := int(rec.Date.Weekday())
		buckets[day].sales += rec.Sales
		buckets[day].customers += rec.CustomerCount
		buckets[day].count++
	}

	points := make([]DaySalesPoint, 0, 7)
	for day := 0; day < 7; day++ {
		b := buckets[day]
		var avgSales, avgCustomers float64
		if b.count > 0 {
			avgSales = float64(b.sales) / float64(b.count)
			avgCustomers = float64(b.customers) / float64(b.count)
		}
		var spend float64
		if avgCustomers > 0 {
			spend = avgSales / avgCustomers
		}
		points = append(points, DaySalesPoint{
			Day:                  labels.Weekday(day),
			Sales:                int64(math.Round(avgSales)),
			AverageCustomerSpend: int64(math.Round(spend)),
			CustomerCount:        int64(math.Round(avgCustomers)),
		})
	}
	return points
}

// costRatioTrend includes only months with sales, since the split is
// meaningless against a zero base.
func costRatioTrend(cur map[int]monthly.Record, labels locale.Labels) []CostRatioPoint {
	points := make([]CostRatioPoint, 0, 12)
	for month := 1; month <= 12; month++ {
		rec, ok := cur[month]
		if !ok || rec.Sales == 0 {
			continue
		}
		food := kpi.Ratio(rec.FoodCost, rec.Sales)
		beverage := kpi.Ratio(rec.BeverageCost, rec.Sales)
		points = append(points, CostRatioPoint{
			Month:    labels.Month(month),
			Food:     kpi.Round1(food),
			Beverage: kpi.Round1(beverage),
			Total:    kpi.Round1(food + beverage),
		})
	}
	return points
}

func laborCostTrend(cur map[int]monthly.Record, labels locale.Labels) []LaborCostPoint {
	points := make([]LaborCostPoint, 0, 12)
	for month := 1; month <= 12; month++ {
		rec, ok := cur[month]
		if !ok {
			continue
		}
		points = append(points, LaborCostPoint{
			Month: labels.Month(month),
			Cost:  rec.LaborCost,
			Ratio: kpi.Round1(kpi.Ratio(rec.LaborCost, rec.Sales)),
		})
	}
	return points
}

// currentKPI reads the current month, comparing against the most
// recent prior month with December wrapping into last year.
func currentKPI(cur, prev map[int]monthly.Record, year, month int) KPI {
	rec, ok := cur[month]
	if !ok {
		return KPI{}
	}

	var prevRec monthly.Record
	var hasPrev bool
	if month == 1 {
		prevRec, hasPrev = prev[12]
	} else {
		prevRec, hasPrev = cur[month-1]
	}

	var comparison float64
	if hasPrev && prevRec.Sales > 0 {
		comparison = kpi.ChangePercent(float64(rec.Sales), float64(prevRec.Sales))
	}
	return KPI{
		Sales:                   rec.Sales,
		CostRatio:               kpi.Round1(kpi.Ratio(rec.FoodCost+rec.BeverageCost, rec.Sales)),
		LaborCostRatio:          kpi.Round1(kpi.Ratio(rec.LaborCost, rec.Sales)),
		CustomerCount:           rec.CustomerCount,
		TargetAchievementRate:   kpi.Round1(kpi.Ratio(rec.Sales, rec.TargetSales)),
		PreviousMonthComparison: kpi.Round1(comparison),
	}
}
