package staff

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RepositoryPort defines data access methods for staff members.
type RepositoryPort interface {
	Create(ctx context.Context, m Member) (Member, error)
	Update(ctx context.Context, m Member) (Member, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Member, error)
	List(ctx context.Context, storeID uuid.UUID) ([]Member, error)
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

// Service handles staff member business logic.
type Service struct {
	repo     RepositoryPort
	stores   StoreResolver
	snapshot SnapshotInvalidator
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, stores StoreResolver, snapshot SnapshotInvalidator) *Service {
	return &Service{repo: repo, stores: stores, snapshot: snapshot}
}

// Create inserts a new member for the active store.
func (s *Service) Create(ctx context.Context, req SaveRequest) (Member, error) {
	member, err := memberFromRequest(req)
	if err != nil {
		return Member{}, err
	}
	member.StoreID = s.stores.Resolve(ctx)

	created, err := s.repo.Create(ctx, member)
	if err != nil {
		return Member{}, fmt.Errorf("staff: create member: %w", err)
	}
	s.invalidate(ctx)
	return created, nil
}

// Update rewrites a member's editable fields.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req SaveRequest) (Member, error) {
	member, err := memberFromRequest(req)
	if err != nil {
		return Member{}, err
	}
	member.ID = id

	updated, err := s.repo.Update(ctx, member)
	if err != nil {
		return Member{}, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// Get returns one member.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Member, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the active store's members.
func (s *Service) List(ctx context.Context) ([]Member, error) {
	members, err := s.repo.List(ctx, s.stores.Resolve(ctx))
	if err != nil {
		return nil, fmt.Errorf("staff: list members: %w", err)
	}
	return members, nil
}

// Delete removes a member along with their training records.
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

func memberFromRequest(req SaveRequest) (Member, error) {
	joined, err := time.ParseInLocation("2006-01-02", req.JoinDate, time.UTC)
	if err != nil {
		return Member{}, fmt.Errorf("staff: parse join date: %w", err)
	}
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}
	return Member{
		Name:     req.Name,
		Position: req.Position,
		Role:     Role(req.Role),
		Email:    req.Email,
		Phone:    req.Phone,
		JoinDate: joined,
		Status:   Status(req.Status),
		Skills:   skills,
	}, nil
}
