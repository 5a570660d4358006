package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// PerformanceRepository reads metrics recorded by the external ingestion
// pipeline. The control loop never writes performance rows.
type PerformanceRepository interface {
	// ListByStrategy returns all recorded windows for one strategy.
	ListByStrategy(ctx context.Context, strategyID int64) ([]domain.PerformanceData, error)
	// ListByCampaign returns recorded windows for every strategy of the
	// campaign, keyed by strategy id.
	ListByCampaign(ctx context.Context, campaignID int64) (map[int64][]domain.PerformanceData, error)
}
