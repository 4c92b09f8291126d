package training

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RepositoryPort defines data access methods for training records.
type RepositoryPort interface {
	Create(ctx context.Context, rec Record) (Record, error)
	Update(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	ListByStaff(ctx context.Context, staffID uuid.UUID) ([]Record, error)
	CertificationHistory(ctx context.Context, storeID uuid.UUID) ([]CertificationEntry, error)
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

// Service handles training record business logic, including the
// auto-certification rule.
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

// Add creates a record. Reaching 100% progress certifies the skill and
// stamps today's date when none was supplied.
func (s *Service) Add(ctx context.Context, req AddRequest) (Record, error) {
	staffID, err := uuid.Parse(req.StaffID)
	if err != nil {
		return Record{}, fmt.Errorf("training: parse staff id: %w", err)
	}
	certDate, err := parseCertDate(req.CertificationDate)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		StaffID:           staffID,
		SkillName:         req.SkillName,
		Progress:          req.Progress,
		Certified:         req.Certified,
		CertificationDate: certDate,
		Notes:             req.Notes,
	}
	s.applyCertification(&rec)

	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		return Record{}, fmt.Errorf("training: add record: %w", err)
	}
	s.invalidate(ctx)
	return created, nil
}

// Update edits a record's progress and certification state. The skill
// name is immutable after creation.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (Record, error) {
	certDate, err := parseCertDate(req.CertificationDate)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:                id,
		Progress:          req.Progress,
		Certified:         req.Certified,
		CertificationDate: certDate,
		Notes:             req.Notes,
	}
	s.applyCertification(&rec)

	updated, err := s.repo.Update(ctx, rec)
	if err != nil {
		return Record{}, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// ListForStaff returns a member's records with statuses and the
// recomputed overall progress.
func (s *Service) ListForStaff(ctx context.Context, staffID uuid.UUID) (StaffProgressView, error) {
	records, err := s.repo.ListByStaff(ctx, staffID)
	if err != nil {
		return StaffProgressView{}, fmt.Errorf("training: list staff records: %w", err)
	}

	skills := make([]SkillView, 0, len(records))
	for _, rec := range records {
		skills = append(skills, SkillView{Record: rec, Status: rec.Status()})
	}
	return StaffProgressView{
		StaffID:         staffID.String(),
		Skills:          skills,
		OverallProgress: OverallProgress(records),
	}, nil
}

// History lists the store's certified skills, newest first.
func (s *Service) History(ctx context.Context) ([]CertificationEntry, error) {
	entries, err := s.repo.CertificationHistory(ctx, s.stores.Resolve(ctx))
	if err != nil {
		return nil, fmt.Errorf("training: certification history: %w", err)
	}
	return entries, nil
}

// Delete removes one record.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// applyCertification enforces the certification rule: full progress
// certifies, and a certified record without a date gets today's.
func (s *Service) applyCertification(rec *Record) {
	if rec.Progress == 100 {
		rec.Certified = true
	}
	if rec.Certified && rec.CertificationDate == nil {
		today := s.now().UTC().Truncate(24 * time.Hour)
		rec.CertificationDate = &today
	}
}

func (s *Service) invalidate(ctx context.Context) {
	if s.snapshot == nil {
		return
	}
	_ = s.snapshot.Bump(ctx)
}

func parseCertDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", *raw, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("training: parse certification date: %w", err)
	}
	return &t, nil
}
