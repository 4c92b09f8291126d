package staff

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the staff member does not exist.
var ErrNotFound = errors.New("staff member not found")

const memberColumns = `id, store_id, name, position, role, email, phone,
	join_date, status, skills, created_at, updated_at`

// Repository provides PostgreSQL backed persistence for staff members.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new member.
func (r *Repository) Create(ctx context.Context, m Member) (Member, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, store_id, name, position, role, email, phone,
			join_date, status, skills)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+memberColumns,
		uuid.New(), m.StoreID, m.Name, m.Position, m.Role, m.Email, m.Phone,
		m.JoinDate, m.Status, m.Skills,
	)
	return scanMember(row)
}

// Update rewrites an existing member's mutable fields.
func (r *Repository) Update(ctx context.Context, m Member) (Member, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET
			name = $2, position = $3, role = $4, email = $5, phone = $6,
			join_date = $7, status = $8, skills = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING `+memberColumns,
		m.ID, m.Name, m.Position, m.Role, m.Email, m.Phone,
		m.JoinDate, m.Status, m.Skills,
	)
	member, err := scanMember(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Member{}, ErrNotFound
		}
		return Member{}, err
	}
	return member, nil
}

// GetByID returns one member.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Member, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+memberColumns+` FROM users WHERE id = $1`, id)
	member, err := scanMember(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

// List returns the store's members ordered by name.
func (r *Repository) List(ctx context.Context, storeID uuid.UUID) ([]Member, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+memberColumns+` FROM users
		 WHERE store_id = $1 ORDER BY name`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

// ListActive returns active members only.
func (r *Repository) ListActive(ctx context.Context, storeID uuid.UUID) ([]Member, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+memberColumns+` FROM users
		 WHERE store_id = $1 AND status = 'active' ORDER BY name`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

// Delete removes a member. Training rows go with it via the FK cascade.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMember(row pgx.Row) (Member, error) {
	var m Member
	err := row.Scan(
		&m.ID, &m.StoreID, &m.Name, &m.Position, &m.Role, &m.Email, &m.Phone,
		&m.JoinDate, &m.Status, &m.Skills, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}
