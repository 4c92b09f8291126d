package monthly

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RepositoryPort defines data access methods for monthly records.
type RepositoryPort interface {
	Upsert(ctx context.Context, rec Record) (Record, error)
	GetByYearMonth(ctx context.Context, storeID uuid.UUID, year, month int) (*Record, error)
	ListYear(ctx context.Context, storeID uuid.UUID, year int) ([]Record, error)
	List(ctx context.Context, storeID uuid.UUID) ([]Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// StoreResolver yields the active store id for scoping queries.
type StoreResolver interface {
	Resolve(ctx context.Context) uuid.UUID
}

// SnapshotInvalidator drops cached dashboard snapshots after writes.
type SnapshotInvalidator interface {
	Bump(ctx context.Context) error
}

// Service handles monthly record business logic.
type Service struct {
	repo     RepositoryPort
	stores   StoreResolver
	snapshot SnapshotInvalidator
	now      func() time.Time
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, stores StoreResolver, snapshot SnapshotInvalidator) *Service {
	return &Service{repo: repo, stores: stores, snapshot: snapshot, now: time.Now}
}

// Save upserts one month of figures keyed by (store, year, month).
func (s *Service) Save(ctx context.Context, req UpsertRequest) (Record, error) {
	rec := Record{
		StoreID:                 s.stores.Resolve(ctx),
		Year:                    req.Year,
		Month:                   req.Month,
		Sales:                   req.Sales,
		FoodCost:                req.FoodCost,
		BeverageCost:            req.BeverageCost,
		LaborCost:               req.LaborCost,
		OtherCost:               req.OtherCost,
		CustomerCount:           req.CustomerCount,
		TargetSales:             req.TargetSales,
		TargetFoodCostRatio:     req.TargetFoodCostRatio,
		TargetBeverageCostRatio: req.TargetBeverageCostRatio,
		TargetLaborCostRatio:    req.TargetLaborCostRatio,
		Notes:                   req.Notes,
	}

	saved, err := s.repo.Upsert(ctx, rec)
	if err != nil {
		return Record{}, fmt.Errorf("monthly: save record: %w", err)
	}
	s.invalidate(ctx)
	return saved, nil
}

// List returns records for the given year, or every record newest
// first when year is zero.
func (s *Service) List(ctx context.Context, year int) ([]RecordView, error) {
	storeID := s.stores.Resolve(ctx)

	var (
		records []Record
		err     error
	)
	if year > 0 {
		records, err = s.repo.ListYear(ctx, storeID, year)
	} else {
		records, err = s.repo.List(ctx, storeID)
	}
	if err != nil {
		return nil, fmt.Errorf("monthly: list records: %w", err)
	}

	views := make([]RecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, RecordView{Record: rec, Metrics: Derive(rec)})
	}
	return views, nil
}

// Get returns one calendar month with its metrics.
func (s *Service) Get(ctx context.Context, year, month int) (RecordView, error) {
	rec, err := s.repo.GetByYearMonth(ctx, s.stores.Resolve(ctx), year, month)
	if err != nil {
		return RecordView{}, err
	}
	return RecordView{Record: *rec, Metrics: Derive(*rec)}, nil
}

// Delete removes one record.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.snapshot == nil {
		return
	}
	_ = s.snapshot.Bump(ctx)
}
