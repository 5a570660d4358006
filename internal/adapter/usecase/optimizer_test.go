package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port/mocks"
)

func optimizerFixture(t *testing.T) (*mocks.MockCampaignRepository, *mocks.MockStrategyRepository, *mocks.MockPerformanceRepository, *mocks.MockReviewRepository, *PortfolioOptimizer) {
	campaigns := mocks.NewMockCampaignRepository(t)
	strategies := mocks.NewMockStrategyRepository(t)
	perf := mocks.NewMockPerformanceRepository(t)
	reviews := mocks.NewMockReviewRepository(t)
	opt := NewPortfolioOptimizer(campaigns, strategies, perf, reviews,
		NewPerformanceAggregator(2.0), 0.8, 2.5, 20, testLogger())
	return campaigns, strategies, perf, reviews, opt
}

// expectCampaignROAS wires one active campaign whose ROAS works out to
// conversions/100 (spend 500000, CPA target 2500, revenue multiple 2.0).
func expectCampaignROAS(campaigns *mocks.MockCampaignRepository, strategies *mocks.MockStrategyRepository, perf *mocks.MockPerformanceRepository, id int64, conversions int64) {
	strategies.EXPECT().ListActiveStrategies(mock.Anything, id).
		Return([]domain.Strategy{{ID: id * 10, CampaignID: id, CPATarget: 2500}}, nil)
	perf.EXPECT().ListByCampaign(mock.Anything, id).
		Return(map[int64][]domain.PerformanceData{
			id * 10: {{StrategyID: id * 10, Spend: 500000, Conversions: conversions}},
		}, nil)
}

// TestScanThresholds exercises both gates plus the quiet middle band:
// ROAS 0.79 pauses, 0.80 and 2.50 sit exactly on the thresholds and do
// nothing, 2.51 scales.
func TestScanThresholds(t *testing.T) {
	campaigns, strategies, perf, reviews, opt := optimizerFixture(t)

	active := []domain.Campaign{
		{ID: 1, Status: domain.CampaignActive},
		{ID: 2, Status: domain.CampaignActive},
		{ID: 3, Status: domain.CampaignActive},
		{ID: 4, Status: domain.CampaignActive},
	}
	campaigns.EXPECT().ListActiveCampaigns(mock.Anything, int64(7)).Return(active, nil)

	expectCampaignROAS(campaigns, strategies, perf, 1, 79)
	expectCampaignROAS(campaigns, strategies, perf, 2, 80)
	expectCampaignROAS(campaigns, strategies, perf, 3, 250)
	expectCampaignROAS(campaigns, strategies, perf, 4, 251)

	var recs []domain.Recommendation
	reviews.EXPECT().UpsertPendingRecommendation(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, rec *domain.Recommendation) {
			recs = append(recs, *rec)
		}).
		Return(nil)

	if !opt.Scan(context.Background(), 7) {
		t.Fatalf("expected scan to succeed")
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].CampaignID != 1 || recs[0].Type != domain.RecommendPauseCampaign {
		t.Fatalf("expected pause for campaign 1, got %+v", recs[0])
	}
	if !recs[0].RequiresApproval {
		t.Fatalf("pause recommendation must require approval")
	}
	if recs[1].CampaignID != 4 || recs[1].Type != domain.RecommendIncreaseBudget {
		t.Fatalf("expected budget increase for campaign 4, got %+v", recs[1])
	}
	if string(recs[1].Params) != `{"increase_pct":20}` {
		t.Fatalf("unexpected params: %s", recs[1].Params)
	}
}

// TestScanSkipsUnspentCampaigns leaves a campaign alone while it has no
// spend at all: a weighted default ROAS of 0.5 would otherwise pause it
// before its first unit of budget is spent.
func TestScanSkipsUnspentCampaigns(t *testing.T) {
	campaigns, strategies, perf, _, opt := optimizerFixture(t)

	active := []domain.Campaign{{ID: 1, Status: domain.CampaignActive}}
	campaigns.EXPECT().ListActiveCampaigns(mock.Anything, int64(7)).Return(active, nil)

	strategies.EXPECT().ListActiveStrategies(mock.Anything, int64(1)).
		Return([]domain.Strategy{{ID: 10, CampaignID: 1, CPATarget: 2500}}, nil)
	perf.EXPECT().ListByCampaign(mock.Anything, int64(1)).
		Return(map[int64][]domain.PerformanceData{
			10: {{StrategyID: 10, Spend: 0, Conversions: 0}},
		}, nil)

	// No UpsertPendingRecommendation expectation: any call fails the test.
	if !opt.Scan(context.Background(), 7) {
		t.Fatalf("expected scan to succeed")
	}
}

// TestScanRerunTargetsSameRecommendation re-runs a scan on unchanged data
// and checks both passes go through the upsert with the identical
// (campaign, type) key, so the pending row is updated rather than
// duplicated.
func TestScanRerunTargetsSameRecommendation(t *testing.T) {
	campaigns, strategies, perf, reviews, opt := optimizerFixture(t)

	active := []domain.Campaign{{ID: 1, Status: domain.CampaignActive}}
	campaigns.EXPECT().ListActiveCampaigns(mock.Anything, int64(7)).Return(active, nil)
	expectCampaignROAS(campaigns, strategies, perf, 1, 79)

	var recs []domain.Recommendation
	reviews.EXPECT().UpsertPendingRecommendation(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, rec *domain.Recommendation) {
			recs = append(recs, *rec)
		}).
		Return(nil)

	for i := 0; i < 2; i++ {
		if !opt.Scan(context.Background(), 7) {
			t.Fatalf("run %d: expected scan to succeed", i)
		}
	}
	if len(recs) != 2 {
		t.Fatalf("expected one upsert per run, got %d", len(recs))
	}
	if recs[0].CampaignID != recs[1].CampaignID || recs[0].Type != recs[1].Type {
		t.Fatalf("reruns must target the same pending row, got %+v and %+v", recs[0], recs[1])
	}
	if recs[1].Status != domain.RecommendationPending {
		t.Fatalf("rerun must keep the recommendation pending, got %s", recs[1].Status)
	}
}

// TestScanContinuesPastFailures keeps scanning after a per-campaign error
// and reports the partial failure.
func TestScanContinuesPastFailures(t *testing.T) {
	campaigns, strategies, perf, reviews, opt := optimizerFixture(t)

	active := []domain.Campaign{
		{ID: 1, Status: domain.CampaignActive},
		{ID: 2, Status: domain.CampaignActive},
	}
	campaigns.EXPECT().ListActiveCampaigns(mock.Anything, int64(7)).Return(active, nil)

	strategies.EXPECT().ListActiveStrategies(mock.Anything, int64(1)).
		Return(nil, context.DeadlineExceeded)
	expectCampaignROAS(campaigns, strategies, perf, 2, 300)

	reviews.EXPECT().UpsertPendingRecommendation(mock.Anything, mock.MatchedBy(func(rec *domain.Recommendation) bool {
		return rec.CampaignID == 2 && rec.Type == domain.RecommendIncreaseBudget
	})).Return(nil)

	if opt.Scan(context.Background(), 7) {
		t.Fatalf("expected scan to report the partial failure")
	}
}
