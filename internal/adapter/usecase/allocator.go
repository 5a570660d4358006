package usecase

import (
	"context"
	"log/slog"
	"math"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// BudgetAllocator redistributes a customer's total daily budget across
// their active campaigns, weighted by observed performance. Every active
// campaign keeps a floor share of the total so no campaign is starved
// entirely; the remainder is split proportionally to campaign weight.
type BudgetAllocator struct {
	campaigns  port.CampaignRepository
	strategies port.StrategyRepository
	perf       port.PerformanceRepository
	agg        *PerformanceAggregator
	floorPct   float64
	logger     *slog.Logger
}

// NewBudgetAllocator wires an allocator. floorPct is the fraction of the
// total budget guaranteed to every active campaign.
func NewBudgetAllocator(
	campaigns port.CampaignRepository,
	strategies port.StrategyRepository,
	perf port.PerformanceRepository,
	agg *PerformanceAggregator,
	floorPct float64,
	logger *slog.Logger,
) *BudgetAllocator {
	return &BudgetAllocator{
		campaigns:  campaigns,
		strategies: strategies,
		perf:       perf,
		agg:        agg,
		floorPct:   floorPct,
		logger:     logger,
	}
}

// Allocate recomputes and persists daily budgets for the customer's active
// campaigns. It returns false without mutating anything when the customer
// is unknown, has no active campaigns, or has too many campaigns for the
// budget floor. No platform call happens here; pushing budgets out to the
// platforms is a separate asynchronous concern.
func (b *BudgetAllocator) Allocate(ctx context.Context, customerID int64) bool {
	customer, err := b.campaigns.GetCustomer(ctx, customerID)
	if err != nil {
		b.logger.Error("allocator: load customer", slog.Int64("customer_id", customerID), slog.Any("error", err))
		return false
	}
	if customer == nil {
		b.logger.Error("allocator: customer not found", slog.Int64("customer_id", customerID))
		return false
	}

	active, err := b.campaigns.ListActiveCampaigns(ctx, customerID)
	if err != nil {
		b.logger.Error("allocator: list campaigns", slog.Int64("customer_id", customerID), slog.Any("error", err))
		return false
	}
	if len(active) == 0 {
		b.logger.Warn("allocator: nothing to allocate", slog.Int64("customer_id", customerID), slog.Any("error", port.ErrNoActiveCampaigns))
		return false
	}

	total := float64(customer.TotalDailyBudget)
	minBudget := total * b.floorPct
	pool := total * (1 - b.floorPct*float64(len(active)))
	if pool < 0 {
		b.logger.Warn("allocator: floor exceeds budget",
			slog.Int64("customer_id", customerID),
			slog.Int("campaigns", len(active)),
			slog.Any("error", port.ErrBudgetFloorExceeded))
		return false
	}

	weights := make([]float64, len(active))
	var totalWeight float64
	for i := range active {
		w, err := b.campaignWeight(ctx, &active[i])
		if err != nil {
			b.logger.Error("allocator: campaign weight", slog.Int64("campaign_id", active[i].ID), slog.Any("error", err))
			return false
		}
		weights[i] = w
		totalWeight += w
	}

	budgets := make(map[int64]int64, len(active))
	if totalWeight == 0 {
		// No campaign produced a usable weight; split evenly.
		even := customer.TotalDailyBudget / int64(len(active))
		for i := range active {
			budgets[active[i].ID] = even
		}
	} else {
		for i := range active {
			budgets[active[i].ID] = int64(math.Round(minBudget + pool*(weights[i]/totalWeight)))
		}
	}

	if err = b.campaigns.ApplyDailyBudgets(ctx, budgets); err != nil {
		b.logger.Error("allocator: apply budgets", slog.Int64("customer_id", customerID), slog.Any("error", err))
		return false
	}
	b.logger.Info("allocator: budgets applied",
		slog.Int64("customer_id", customerID),
		slog.Int("campaigns", len(active)),
		slog.Int64("total", customer.TotalDailyBudget))
	return true
}

func (b *BudgetAllocator) campaignWeight(ctx context.Context, c *domain.Campaign) (float64, error) {
	strategies, err := b.strategies.ListActiveStrategies(ctx, c.ID)
	if err != nil {
		return 0, err
	}
	perf, err := b.perf.ListByCampaign(ctx, c.ID)
	if err != nil {
		return 0, err
	}
	return b.agg.CampaignWeight(strategies, perf), nil
}
