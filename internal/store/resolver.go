package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// DefaultName is used when the resolver has to create the first store.
const DefaultName = "デフォルト店舗"

// RepositoryPort is the slice of store persistence the resolver needs.
type RepositoryPort interface {
	First(ctx context.Context) (*Store, error)
	Create(ctx context.Context, id uuid.UUID, name string) (*Store, error)
}

// Resolver yields the id every query is scoped by. It looks up the
// existing store, lazily creates one when the table is empty, and on
// any failure falls back to the configured default id so downstream
// reads still have a scoping value. Resolve never returns an error.
type Resolver struct {
	logger    *slog.Logger
	repo      RepositoryPort
	defaultID uuid.UUID

	mu     sync.Mutex
	cached uuid.UUID
}

// NewResolver constructs a Resolver. defaultID doubles as the id for
// the lazily created store and the fallback value.
func NewResolver(logger *slog.Logger, repo RepositoryPort, defaultID uuid.UUID) *Resolver {
	return &Resolver{logger: logger, repo: repo, defaultID: defaultID}
}

// Resolve returns the active store id. Repeated calls are idempotent;
// the first successful lookup is cached.
func (r *Resolver) Resolve(ctx context.Context) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cached != uuid.Nil {
		return r.cached
	}

	existing, err := r.repo.First(ctx)
	if err == nil {
		r.cached = existing.ID
		return r.cached
	}
	if !errors.Is(err, ErrNotFound) {
		r.logger.Warn("store lookup failed, using default id",
			slog.Any("error", err), slog.String("store_id", r.defaultID.String()))
		return r.defaultID
	}

	created, err := r.repo.Create(ctx, r.defaultID, DefaultName)
	if err != nil {
		r.logger.Warn("store create failed, using default id",
			slog.Any("error", err), slog.String("store_id", r.defaultID.String()))
		return r.defaultID
	}
	r.cached = created.ID
	return r.cached
}
