package daily

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RepositoryPort defines data access methods for daily records.
type RepositoryPort interface {
	Upsert(ctx context.Context, rec Record) (Record, error)
	GetByDate(ctx context.Context, storeID uuid.UUID, date time.Time) (*Record, error)
	ListRange(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]Record, error)
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

// Service handles daily record business logic.
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

// Save upserts one day of figures keyed by (store, date).
func (s *Service) Save(ctx context.Context, req UpsertRequest) (Record, error) {
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		return Record{}, fmt.Errorf("daily: parse date: %w", err)
	}

	rec := Record{
		StoreID:       s.stores.Resolve(ctx),
		Date:          date,
		Sales:         req.Sales,
		FoodSales:     req.FoodSales,
		BeverageSales: req.BeverageSales,
		FoodCost:      req.FoodCost,
		BeverageCost:  req.BeverageCost,
		LaborCost:     req.LaborCost,
		OtherCost:     req.OtherCost,
		CustomerCount: req.CustomerCount,
	}

	saved, err := s.repo.Upsert(ctx, rec)
	if err != nil {
		return Record{}, fmt.Errorf("daily: save record: %w", err)
	}
	s.invalidate(ctx)
	return saved, nil
}

// List returns records in the requested range, defaulting to the
// trailing 30 days ending today.
func (s *Service) List(ctx context.Context, from, to *time.Time) ([]RecordView, error) {
	end := s.now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -30)
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}

	records, err := s.repo.ListRange(ctx, s.stores.Resolve(ctx), start, end)
	if err != nil {
		return nil, fmt.Errorf("daily: list records: %w", err)
	}

	views := make([]RecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, RecordView{Record: rec, Metrics: Derive(rec).Sanitized()})
	}
	return views, nil
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
	// Cache invalidation is best effort; the TTL bounds staleness anyway.
	_ = s.snapshot.Bump(ctx)
}
