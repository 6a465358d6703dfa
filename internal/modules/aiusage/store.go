// README: itinerary_usage persistence backed by PostgreSQL.
package aiusage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles itinerary_usage persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Insert appends one usage row.
func (s *Store) Insert(ctx context.Context, r Record) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO itinerary_usage (id, source, model, destination, days, latency_ms, failure_reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.ID, r.Source, r.Model, r.Destination, r.Days, r.LatencyMs, r.FailureReason, r.CreatedAt)
	return err
}

// Summarize aggregates all rows by source.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	sum := Summary{BySource: map[string]int64{}}

	rows, err := s.db.Query(ctx, `
		SELECT source, COUNT(*), COUNT(*) FILTER (WHERE failure_reason <> '')
		FROM itinerary_usage
		GROUP BY source
	`)
	if err != nil {
		return Summary{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			source        string
			count, failed int64
		)
		if err := rows.Scan(&source, &count, &failed); err != nil {
			return Summary{}, err
		}
		sum.BySource[source] = count
		sum.Total += count
		sum.Fallbacks += failed
	}
	return sum, rows.Err()
}
