package usecase

import (
	"adpilot/internal/core/domain"
)

// defaultWeight is the performance weight attributed to a strategy with no
// recorded spend. Untested strategies score neutral rather than zero so
// new campaigns are not starved of budget before they have data.
const defaultWeight = 0.5

// PerformanceAggregator derives return-on-ad-spend figures from recorded
// performance windows. Revenue is estimated as conversions multiplied by
// the strategy's CPA target and a configurable revenue multiple.
type PerformanceAggregator struct {
	revenueMultiple float64
}

// NewPerformanceAggregator creates an aggregator with the given revenue
// multiple.
func NewPerformanceAggregator(revenueMultiple float64) *PerformanceAggregator {
	return &PerformanceAggregator{revenueMultiple: revenueMultiple}
}

// StrategyROAS computes the return on ad spend for one strategy across all
// of its recorded windows. A strategy with zero spend returns the default
// weight.
func (a *PerformanceAggregator) StrategyROAS(s *domain.Strategy, rows []domain.PerformanceData) float64 {
	var spend, conversions int64
	for _, row := range rows {
		spend += row.Spend
		conversions += row.Conversions
	}
	if spend == 0 {
		return defaultWeight
	}
	revenue := float64(conversions) * float64(s.CPATarget) * a.revenueMultiple
	return revenue / float64(spend)
}

// CampaignROAS computes the spend-weighted ROAS across the campaign's
// strategies. Strategies without spend contribute nothing to the weighting;
// a campaign with no spend at all returns the default weight.
func (a *PerformanceAggregator) CampaignROAS(strategies []domain.Strategy, perf map[int64][]domain.PerformanceData) float64 {
	var weighted, totalSpend float64
	for i := range strategies {
		s := &strategies[i]
		var spend int64
		for _, row := range perf[s.ID] {
			spend += row.Spend
		}
		if spend == 0 {
			continue
		}
		weighted += a.StrategyROAS(s, perf[s.ID]) * float64(spend)
		totalSpend += float64(spend)
	}
	if totalSpend == 0 {
		return defaultWeight
	}
	return weighted / totalSpend
}

// CampaignWeight computes the allocation weight of a campaign as the mean
// of its strategies' ROAS values. A campaign without strategies scores the
// default weight, same as an untested strategy.
func (a *PerformanceAggregator) CampaignWeight(strategies []domain.Strategy, perf map[int64][]domain.PerformanceData) float64 {
	if len(strategies) == 0 {
		return defaultWeight
	}
	var sum float64
	for i := range strategies {
		sum += a.StrategyROAS(&strategies[i], perf[strategies[i].ID])
	}
	return sum / float64(len(strategies))
}
