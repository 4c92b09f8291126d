package monthly

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no record exists for the requested key.
var ErrNotFound = errors.New("monthly record not found")

const recordColumns = `id, store_id, year, month, sales, food_cost, beverage_cost,
	labor_cost, other_cost, customer_count, target_sales, target_food_cost_ratio,
	target_beverage_cost_ratio, target_labor_cost_ratio, notes, created_at, updated_at`

// Repository provides PostgreSQL backed persistence for monthly records.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Upsert inserts the record or updates the existing row keyed by
// (store, year, month).
func (r *Repository) Upsert(ctx context.Context, rec Record) (Record, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO monthly_data (
			id, store_id, year, month, sales, food_cost, beverage_cost,
			labor_cost, other_cost, customer_count, target_sales,
			target_food_cost_ratio, target_beverage_cost_ratio,
			target_labor_cost_ratio, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (store_id, year, month) DO UPDATE SET
			sales = EXCLUDED.sales,
			food_cost = EXCLUDED.food_cost,
			beverage_cost = EXCLUDED.beverage_cost,
			labor_cost = EXCLUDED.labor_cost,
			other_cost = EXCLUDED.other_cost,
			customer_count = EXCLUDED.customer_count,
			target_sales = EXCLUDED.target_sales,
			target_food_cost_ratio = EXCLUDED.target_food_cost_ratio,
			target_beverage_cost_ratio = EXCLUDED.target_beverage_cost_ratio,
			target_labor_cost_ratio = EXCLUDED.target_labor_cost_ratio,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING `+recordColumns,
		uuid.New(), rec.StoreID, rec.Year, rec.Month, rec.Sales, rec.FoodCost,
		rec.BeverageCost, rec.LaborCost, rec.OtherCost, rec.CustomerCount,
		rec.TargetSales, rec.TargetFoodCostRatio, rec.TargetBeverageCostRatio,
		rec.TargetLaborCostRatio, rec.Notes,
	)
	return scanRecord(row)
}

// GetByYearMonth returns the record for one calendar month.
func (r *Repository) GetByYearMonth(ctx context.Context, storeID uuid.UUID, year, month int) (*Record, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM monthly_data
		 WHERE store_id = $1 AND year = $2 AND month = $3`,
		storeID, year, month)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// ListYear returns all records for one calendar year ordered by month.
func (r *Repository) ListYear(ctx context.Context, storeID uuid.UUID, year int) ([]Record, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+recordColumns+` FROM monthly_data
		 WHERE store_id = $1 AND year = $2 ORDER BY month`,
		storeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

// List returns all records for the store, newest first.
func (r *Repository) List(ctx context.Context, storeID uuid.UUID) ([]Record, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+recordColumns+` FROM monthly_data
		 WHERE store_id = $1 ORDER BY year DESC, month DESC`,
		storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

// Delete removes one record by id.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM monthly_data WHERE id = $1`, id)
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
		&rec.ID, &rec.StoreID, &rec.Year, &rec.Month, &rec.Sales, &rec.FoodCost,
		&rec.BeverageCost, &rec.LaborCost, &rec.OtherCost, &rec.CustomerCount,
		&rec.TargetSales, &rec.TargetFoodCostRatio, &rec.TargetBeverageCostRatio,
		&rec.TargetLaborCostRatio, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}
