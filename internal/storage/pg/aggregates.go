package pg

import (
	"context"
	"log/slog"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/aggregates"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
)

var _ aggregates.Repository = (*AggregateRepository)(nil)

type AggregateRepository struct {
	pool *ConnectionPool
}

func NewAggregateRepository(pool *ConnectionPool) *AggregateRepository {
	return &AggregateRepository{pool: pool}
}

func (r *AggregateRepository) FindAggregates(ctx context.Context, stateCode, territoryID string) ([]domain.Aggregate, error) {
	ctx, cancel := r.pool.newQueryCtx(ctx)
	defer cancel()

	var aggregatesSQL string
	var args []any

	if territoryID == "" {
		aggregatesSQL = `
			SELECT territory_id, state_code, file_path, year, last_updated, hash_info, file_size_mb
			FROM aggregates
			WHERE state_code = $1 AND territory_id IS NULL
			ORDER BY year DESC
		`
		args = []any{stateCode}
	} else {
		aggregatesSQL = `
			SELECT territory_id, state_code, file_path, year, last_updated, hash_info, file_size_mb
			FROM aggregates
			WHERE state_code = $1 AND territory_id = $2
			ORDER BY year DESC
		`
		args = []any{stateCode, territoryID}
	}

	rows, err := r.pool.conn.Query(ctx, aggregatesSQL, args...)
	if err != nil {
		slog.Error("Aggregates lookup failed", "state_code", stateCode, "territory_id", territoryID, "error", err)
		return nil, classify(err)
	}
	defer rows.Close()

	found := make([]domain.Aggregate, 0)
	for rows.Next() {
		var a domain.Aggregate
		if err := rows.Scan(
			&a.TerritoryID,
			&a.StateCode,
			&a.URL,
			&a.Year,
			&a.LastUpdated,
			&a.HashInfo,
			&a.FileSizeMB,
		); err != nil {
			return nil, classify(err)
		}
		found = append(found, a)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return found, nil
}
