package usecase

import (
	"testing"

	"adpilot/internal/core/domain"
)

// TestStrategyROASZeroSpend ensures untested strategies score the neutral
// default weight instead of zero.
func TestStrategyROASZeroSpend(t *testing.T) {
	agg := NewPerformanceAggregator(2.0)
	s := domain.Strategy{ID: 1, CPATarget: 2500}

	got := agg.StrategyROAS(&s, nil)
	if got != 0.5 {
		t.Fatalf("expected default weight 0.5, got %v", got)
	}
}

// TestStrategyROASFormula checks revenue estimation: conversions times CPA
// target times the revenue multiple, divided by spend.
func TestStrategyROASFormula(t *testing.T) {
	agg := NewPerformanceAggregator(2.0)
	s := domain.Strategy{ID: 1, CPATarget: 2500}
	rows := []domain.PerformanceData{
		{StrategyID: 1, Spend: 50000, Conversions: 10},
		{StrategyID: 1, Spend: 50000, Conversions: 20},
	}

	// (30 conversions * 2500 * 2.0) / 100000 spend = 1.5
	got := agg.StrategyROAS(&s, rows)
	if got != 1.5 {
		t.Fatalf("expected ROAS 1.5, got %v", got)
	}
}

// TestCampaignROASSpendWeighted verifies that strategies with more spend
// dominate the campaign figure.
func TestCampaignROASSpendWeighted(t *testing.T) {
	agg := NewPerformanceAggregator(2.0)
	strategies := []domain.Strategy{
		{ID: 1, CPATarget: 2500},
		{ID: 2, CPATarget: 2500},
	}
	perf := map[int64][]domain.PerformanceData{
		// ROAS 1.0 with 90% of the spend
		1: {{StrategyID: 1, Spend: 90000, Conversions: 18}},
		// ROAS 5.0 with 10% of the spend
		2: {{StrategyID: 2, Spend: 10000, Conversions: 10}},
	}

	got := agg.CampaignROAS(strategies, perf)
	want := (1.0*90000 + 5.0*10000) / 100000
	if got != want {
		t.Fatalf("expected ROAS %v, got %v", want, got)
	}
}

// TestCampaignROASNoSpend falls back to the default weight.
func TestCampaignROASNoSpend(t *testing.T) {
	agg := NewPerformanceAggregator(2.0)
	strategies := []domain.Strategy{{ID: 1, CPATarget: 2500}}

	if got := agg.CampaignROAS(strategies, nil); got != 0.5 {
		t.Fatalf("expected default weight 0.5, got %v", got)
	}
}
