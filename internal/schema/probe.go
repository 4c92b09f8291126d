package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// undefinedTable is the SQLSTATE Postgres raises for a query against a
// relation that does not exist.
const undefinedTable = "42P01"

// requiredTables is every relation the aggregators query.
var requiredTables = []string{"stores", "daily_data", "monthly_data", "users", "staff_training"}

// Status reports which expected tables are present.
type Status struct {
	Ready   bool     `json:"ready"`
	Missing []string `json:"missing,omitempty"`
}

// Message is the operator-facing description of a not-ready schema.
func (s Status) Message() string {
	if s.Ready {
		return ""
	}
	return "データベース設定が不完全です: " + strings.Join(s.Missing, ", ")
}

// Prober checks schema readiness with a trivial probe per table. The
// result is cached briefly so dashboard loads don't re-probe on every
// request.
type Prober struct {
	pool *pgxpool.Pool

	mu      sync.Mutex
	cached  *Status
	checked time.Time
	ttl     time.Duration
}

// NewProber constructs a Prober.
func NewProber(pool *pgxpool.Pool) *Prober {
	return &Prober{pool: pool, ttl: time.Minute}
}

// Check probes each required table and reports the missing ones.
func (p *Prober) Check(ctx context.Context) (Status, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cached != nil && time.Since(p.checked) < p.ttl {
		return *p.cached, nil
	}

	var missing []string
	for _, table := range requiredTables {
		rows, err := p.pool.Query(ctx, "SELECT 1 FROM "+table+" LIMIT 1")
		if err != nil {
			if isUndefinedTable(err) {
				missing = append(missing, table)
				continue
			}
			return Status{}, fmt.Errorf("schema: probe %s: %w", table, err)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			if isUndefinedTable(err) {
				missing = append(missing, table)
				continue
			}
			return Status{}, fmt.Errorf("schema: probe %s: %w", table, err)
		}
	}

	status := Status{Ready: len(missing) == 0, Missing: missing}
	p.cached = &status
	p.checked = time.Now()
	return status, nil
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedTable
}
