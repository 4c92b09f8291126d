package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no store row exists.
var ErrNotFound = errors.New("store not found")

// Store is one tenant row. Everything else in the schema hangs off it.
type Store struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository provides PostgreSQL backed persistence for stores.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// First returns the oldest store row.
func (r *Repository) First(ctx context.Context) (*Store, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM stores
		 ORDER BY created_at LIMIT 1`)
	var s Store
	if err := row.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts a store with a fixed id. A concurrent insert of the
// same id is treated as success.
func (r *Repository) Create(ctx context.Context, id uuid.UUID, name string) (*Store, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO stores (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET updated_at = stores.updated_at
		RETURNING id, name, created_at, updated_at`, id, name)
	var s Store
	if err := row.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Rename updates the store name.
func (r *Repository) Rename(ctx context.Context, id uuid.UUID, name string) (*Store, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE stores SET name = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, created_at, updated_at`, id, name)
	var s Store
	if err := row.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}
