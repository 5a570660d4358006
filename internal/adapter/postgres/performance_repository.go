package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// PerformanceRepository implements port.PerformanceRepository using
// pgxpool. Performance rows are written by the ingestion pipeline; this
// repository only reads them.
type PerformanceRepository struct {
	pool *pgxpool.Pool
}

// NewPerformanceRepository returns a new repository instance.
func NewPerformanceRepository(pool *pgxpool.Pool) *PerformanceRepository {
	return &PerformanceRepository{pool: pool}
}

const performanceColumns = `id, strategy_id, spend, conversions, window_start, window_end, created_at`

func scanPerformance(row pgx.CollectableRow) (domain.PerformanceData, error) {
	var p domain.PerformanceData
	err := row.Scan(&p.ID, &p.StrategyID, &p.Spend, &p.Conversions,
		&p.WindowStart, &p.WindowEnd, &p.CreatedAt)
	return p, err
}

// ListByStrategy returns all recorded windows for one strategy.
func (r *PerformanceRepository) ListByStrategy(ctx context.Context, strategyID int64) ([]domain.PerformanceData, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+performanceColumns+` FROM performance_data
		 WHERE strategy_id = $1 ORDER BY window_start`, strategyID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanPerformance)
}

// ListByCampaign returns recorded windows for every strategy of the
// campaign, keyed by strategy id.
func (r *PerformanceRepository) ListByCampaign(ctx context.Context, campaignID int64) (map[int64][]domain.PerformanceData, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.strategy_id, p.spend, p.conversions, p.window_start, p.window_end, p.created_at
		 FROM performance_data p
		 JOIN strategies s ON s.id = p.strategy_id
		 WHERE s.campaign_id = $1 ORDER BY p.window_start`, campaignID)
	if err != nil {
		return nil, err
	}
	all, err := pgx.CollectRows(rows, scanPerformance)
	if err != nil {
		return nil, err
	}
	byStrategy := make(map[int64][]domain.PerformanceData)
	for _, p := range all {
		byStrategy[p.StrategyID] = append(byStrategy[p.StrategyID], p)
	}
	return byStrategy, nil
}
