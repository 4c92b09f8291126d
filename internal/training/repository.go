package training

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the training record does not exist.
var ErrNotFound = errors.New("training record not found")

const recordColumns = `id, staff_id, skill_name, progress, certified,
	certification_date, notes, created_at, updated_at`

// Repository provides PostgreSQL backed persistence for training
// records.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new record.
func (r *Repository) Create(ctx context.Context, rec Record) (Record, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO staff_training (id, staff_id, skill_name, progress,
			certified, certification_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+recordColumns,
		uuid.New(), rec.StaffID, rec.SkillName, rec.Progress,
		rec.Certified, rec.CertificationDate, rec.Notes,
	)
	return scanRecord(row)
}

// Update rewrites the mutable fields. The skill name stays as created.
func (r *Repository) Update(ctx context.Context, rec Record) (Record, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE staff_training SET
			progress = $2, certified = $3, certification_date = $4,
			notes = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING `+recordColumns,
		rec.ID, rec.Progress, rec.Certified, rec.CertificationDate, rec.Notes,
	)
	updated, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return updated, nil
}

// GetByID returns one record.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM staff_training WHERE id = $1`, id)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// ListByStaff returns one member's records ordered by skill name.
func (r *Repository) ListByStaff(ctx context.Context, staffID uuid.UUID) ([]Record, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+recordColumns+` FROM staff_training
		 WHERE staff_id = $1 ORDER BY skill_name`, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

// ListByStore returns every record for the store's members, grouped by
// staff id.
func (r *Repository) ListByStore(ctx context.Context, storeID uuid.UUID) (map[uuid.UUID][]Record, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.staff_id, t.skill_name, t.progress, t.certified,
			t.certification_date, t.notes, t.created_at, t.updated_at
		FROM staff_training t
		JOIN users u ON u.id = t.staff_id
		WHERE u.store_id = $1
		ORDER BY t.staff_id, t.skill_name`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grouped := make(map[uuid.UUID][]Record)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		grouped[rec.StaffID] = append(grouped[rec.StaffID], rec)
	}
	return grouped, rows.Err()
}

// CertificationEntry is one row of the certification history view.
type CertificationEntry struct {
	RecordID          uuid.UUID `json:"record_id"`
	StaffID           uuid.UUID `json:"staff_id"`
	StaffName         string    `json:"staff_name"`
	SkillName         string    `json:"skill_name"`
	CertificationDate time.Time `json:"certification_date"`
}

// CertificationHistory lists certified skills with a date, newest
// certification first.
func (r *Repository) CertificationHistory(ctx context.Context, storeID uuid.UUID) ([]CertificationEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.staff_id, u.name, t.skill_name, t.certification_date
		FROM staff_training t
		JOIN users u ON u.id = t.staff_id
		WHERE u.store_id = $1
			AND t.certified = TRUE
			AND t.certification_date IS NOT NULL
		ORDER BY t.certification_date DESC`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []CertificationEntry
	for rows.Next() {
		var entry CertificationEntry
		if err := rows.Scan(&entry.RecordID, &entry.StaffID, &entry.StaffName,
			&entry.SkillName, &entry.CertificationDate); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Delete removes one record.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM staff_training WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectRecords(rows pgx.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanRecord(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID, &rec.StaffID, &rec.SkillName, &rec.Progress, &rec.Certified,
		&rec.CertificationDate, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}
