package usecase

import (
	"context"
	"log/slog"

	"adpilot/internal/core/port"
)

// RollbackService restores a campaign's most recent strategy generation.
// All versions stamped with the latest versioned_at are restored together
// and every currently active strategy is deactivated, in one transaction,
// so a rollback either fully applies or not at all.
type RollbackService struct {
	strategies port.StrategyRepository
	logger     *slog.Logger
}

// NewRollbackService wires a rollback service.
func NewRollbackService(strategies port.StrategyRepository, logger *slog.Logger) *RollbackService {
	return &RollbackService{strategies: strategies, logger: logger}
}

// Rollback restores the latest generation of the campaign's strategies.
// It returns false when the campaign has no versions to restore or the
// restore itself fails.
func (r *RollbackService) Rollback(ctx context.Context, campaignID int64) bool {
	generation, err := r.strategies.LatestGeneration(ctx, campaignID)
	if err != nil {
		r.logger.Error("rollback: find generation", slog.Int64("campaign_id", campaignID), slog.Any("error", err))
		return false
	}
	if generation == nil {
		r.logger.Warn("rollback: nothing to restore", slog.Int64("campaign_id", campaignID), slog.Any("error", port.ErrNothingToRollback))
		return false
	}

	if err = r.strategies.RestoreGeneration(ctx, campaignID, *generation); err != nil {
		r.logger.Error("rollback: restore generation",
			slog.Int64("campaign_id", campaignID),
			slog.Time("versioned_at", *generation),
			slog.Any("error", err))
		return false
	}
	r.logger.Info("rollback: generation restored",
		slog.Int64("campaign_id", campaignID),
		slog.Time("versioned_at", *generation))
	return true
}
