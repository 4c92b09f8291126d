package daily

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no record exists for the requested key.
var ErrNotFound = errors.New("daily record not found")

const recordColumns = `id, store_id, date, sales, food_sales, beverage_sales,
	food_cost, beverage_cost, labor_cost, other_cost, customer_count,
	created_at, updated_at`

// Repository provides PostgreSQL backed persistence for daily records.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Upsert inserts the record or, when a row already exists for the same
// store and date, updates it in place. The natural key closes the race
// the old check-then-act flow had.
func (r *Repository) Upsert(ctx context.Context, rec Record) (Record, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO daily_data (
			id, store_id, date, sales, food_sales, beverage_sales,
			food_cost, beverage_cost, labor_cost, other_cost, customer_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (store_id, date) DO UPDATE SET
			sales = EXCLUDED.sales,
			food_sales = EXCLUDED.food_sales,
			beverage_sales = EXCLUDED.beverage_sales,
			food_cost = EXCLUDED.food_cost,
			beverage_cost = EXCLUDED.beverage_cost,
			labor_cost = EXCLUDED.labor_cost,
			other_cost = EXCLUDED.other_cost,
			customer_count = EXCLUDED.customer_count,
			updated_at = NOW()
		RETURNING `+recordColumns,
		uuid.New(), rec.StoreID, rec.Date, rec.Sales, rec.FoodSales, rec.BeverageSales,
		rec.FoodCost, rec.BeverageCost, rec.LaborCost, rec.OtherCost, rec.CustomerCount,
	)
	return scanRecord(row)
}

// GetByDate returns the record for one calendar day.
func (r *Repository) GetByDate(ctx context.Context, storeID uuid.UUID, date time.Time) (*Record, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM daily_data WHERE store_id = $1 AND date = $2`,
		storeID, date)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// ListRange returns records between from and to inclusive, oldest first.
func (r *Repository) ListRange(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]Record, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+recordColumns+` FROM daily_data
		 WHERE store_id = $1 AND date >= $2 AND date <= $3
		 ORDER BY date`,
		storeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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

// Delete removes one record by id.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM daily_data WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRecord(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID, &rec.StoreID, &rec.Date, &rec.Sales, &rec.FoodSales, &rec.BeverageSales,
		&rec.FoodCost, &rec.BeverageCost, &rec.LaborCost, &rec.OtherCost, &rec.CustomerCount,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}
