package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// PortfolioOptimizer evaluates each active campaign's ROAS against fixed
// thresholds and upserts pending recommendations. The thresholds are
// advisory gates: nothing here pauses campaigns or moves money, and any
// later application of a recommendation must pass the conflict gate.
type PortfolioOptimizer struct {
	campaigns  port.CampaignRepository
	strategies port.StrategyRepository
	perf       port.PerformanceRepository
	reviews    port.ReviewRepository
	agg        *PerformanceAggregator
	pauseBelow float64
	scaleAbove float64
	increasePct int
	logger     *slog.Logger
}

// NewPortfolioOptimizer wires an optimizer with its thresholds. Campaigns
// with ROAS below pauseBelow get a pause recommendation; above scaleAbove,
// a budget increase of increasePct percent.
func NewPortfolioOptimizer(
	campaigns port.CampaignRepository,
	strategies port.StrategyRepository,
	perf port.PerformanceRepository,
	reviews port.ReviewRepository,
	agg *PerformanceAggregator,
	pauseBelow, scaleAbove float64,
	increasePct int,
	logger *slog.Logger,
) *PortfolioOptimizer {
	return &PortfolioOptimizer{
		campaigns:   campaigns,
		strategies:  strategies,
		perf:        perf,
		reviews:     reviews,
		agg:         agg,
		pauseBelow:  pauseBelow,
		scaleAbove:  scaleAbove,
		increasePct: increasePct,
		logger:      logger,
	}
}

// Scan walks the customer's active campaigns and upserts at most one
// pending recommendation per (campaign, type). Re-running on unchanged
// data updates the pending rows in place instead of duplicating them.
// Per-campaign failures are logged and do not abort the rest of the scan.
func (o *PortfolioOptimizer) Scan(ctx context.Context, customerID int64) bool {
	active, err := o.campaigns.ListActiveCampaigns(ctx, customerID)
	if err != nil {
		o.logger.Error("optimizer: list campaigns", slog.Int64("customer_id", customerID), slog.Any("error", err))
		return false
	}

	ok := true
	for i := range active {
		if err := o.scanCampaign(ctx, &active[i]); err != nil {
			o.logger.Error("optimizer: scan campaign", slog.Int64("campaign_id", active[i].ID), slog.Any("error", err))
			ok = false
		}
	}
	return ok
}

func (o *PortfolioOptimizer) scanCampaign(ctx context.Context, c *domain.Campaign) error {
	strategies, err := o.strategies.ListActiveStrategies(ctx, c.ID)
	if err != nil {
		return err
	}
	perf, err := o.perf.ListByCampaign(ctx, c.ID)
	if err != nil {
		return err
	}

	// A campaign with no spend at all has no signal yet; recommending a
	// pause before the first unit is spent would kill it untested.
	var spent int64
	for _, windows := range perf {
		for i := range windows {
			spent += windows[i].Spend
		}
	}
	if spent == 0 {
		o.logger.Debug("optimizer: no spend yet, skipping", slog.Int64("campaign_id", c.ID))
		return nil
	}

	roas := o.agg.CampaignROAS(strategies, perf)

	switch {
	case roas < o.pauseBelow:
		rec := &domain.Recommendation{
			CampaignID:       c.ID,
			Type:             domain.RecommendPauseCampaign,
			Rationale:        fmt.Sprintf("ROAS %.2f below pause threshold %.2f", roas, o.pauseBelow),
			RequiresApproval: true,
			Status:           domain.RecommendationPending,
		}
		if err := o.reviews.UpsertPendingRecommendation(ctx, rec); err != nil {
			return err
		}
		o.logger.Info("optimizer: pause recommended", slog.Int64("campaign_id", c.ID), slog.Float64("roas", roas))
	case roas > o.scaleAbove:
		params, _ := json.Marshal(map[string]int{"increase_pct": o.increasePct})
		rec := &domain.Recommendation{
			CampaignID:       c.ID,
			Type:             domain.RecommendIncreaseBudget,
			Params:           params,
			Rationale:        fmt.Sprintf("ROAS %.2f above scale threshold %.2f", roas, o.scaleAbove),
			RequiresApproval: true,
			Status:           domain.RecommendationPending,
		}
		if err := o.reviews.UpsertPendingRecommendation(ctx, rec); err != nil {
			return err
		}
		o.logger.Info("optimizer: budget increase recommended", slog.Int64("campaign_id", c.ID), slog.Float64("roas", roas))
	}
	return nil
}
