package usecase

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/mock"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func allocatorFixture(t *testing.T) (*mocks.MockCampaignRepository, *mocks.MockStrategyRepository, *mocks.MockPerformanceRepository, *BudgetAllocator) {
	campaigns := mocks.NewMockCampaignRepository(t)
	strategies := mocks.NewMockStrategyRepository(t)
	perf := mocks.NewMockPerformanceRepository(t)
	alloc := NewBudgetAllocator(campaigns, strategies, perf,
		NewPerformanceAggregator(2.0), 0.05, testLogger())
	return campaigns, strategies, perf, alloc
}

// TestAllocateSumAndFloor covers the performance-weighted split: the
// allocated budgets sum to the total, every campaign keeps its floor, and
// the higher-ROAS campaign receives the larger absolute share.
func TestAllocateSumAndFloor(t *testing.T) {
	campaigns, strategies, perf, alloc := allocatorFixture(t)

	customer := &domain.Customer{ID: 7, TotalDailyBudget: 100000}
	active := []domain.Campaign{
		{ID: 1, CustomerID: 7, Status: domain.CampaignActive},
		{ID: 2, CustomerID: 7, Status: domain.CampaignActive},
	}
	campaigns.EXPECT().GetCustomer(mock.Anything, int64(7)).Return(customer, nil)
	campaigns.EXPECT().ListActiveCampaigns(mock.Anything, int64(7)).Return(active, nil)

	// campaign 1: ROAS 0.4 (16 conversions * 2500 * 2.0 / 200000 spend)
	strategies.EXPECT().ListActiveStrategies(mock.Anything, int64(1)).
		Return([]domain.Strategy{{ID: 10, CampaignID: 1, CPATarget: 2500}}, nil)
	perf.EXPECT().ListByCampaign(mock.Anything, int64(1)).
		Return(map[int64][]domain.PerformanceData{10: {{StrategyID: 10, Spend: 200000, Conversions: 16}}}, nil)

	// campaign 2: ROAS 3.0 (30 conversions * 2500 * 2.0 / 50000 spend)
	strategies.EXPECT().ListActiveStrategies(mock.Anything, int64(2)).
		Return([]domain.Strategy{{ID: 20, CampaignID: 2, CPATarget: 2500}}, nil)
	perf.EXPECT().ListByCampaign(mock.Anything, int64(2)).
		Return(map[int64][]domain.PerformanceData{20: {{StrategyID: 20, Spend: 50000, Conversions: 30}}}, nil)

	var applied map[int64]int64
	campaigns.EXPECT().ApplyDailyBudgets(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, budgets map[int64]int64) {
			applied = budgets
		}).
		Return(nil)

	if !alloc.Allocate(context.Background(), 7) {
		t.Fatalf("expected allocation to succeed")
	}

	var sum int64
	for _, b := range applied {
		sum += b
	}
	if math.Abs(float64(sum-100000)) > 1 {
		t.Fatalf("budgets must sum to the total, got %d", sum)
	}
	for id, b := range applied {
		if b < 5000 {
			t.Fatalf("campaign %d got %d, below the 5%% floor", id, b)
		}
	}
	if applied[2] <= applied[1] {
		t.Fatalf("higher-ROAS campaign must get the larger share: got %d vs %d", applied[2], applied[1])
	}
}

// TestAllocateEvenSplitWithoutSpend checks the untested-portfolio case:
// all campaigns score the default weight, so everyone gets an equal share.
func TestAllocateEvenSplitWithoutSpend(t *testing.T) {
	campaigns, strategies, perf, alloc := allocatorFixture(t)

	customer := &domain.Customer{ID: 7, TotalDailyBudget: 100000}
	active := []domain.Campaign{
		{ID: 1, Status: domain.CampaignActive},
		{ID: 2, Status: domain.CampaignActive},
	}
	campaigns.EXPECT().GetCustomer(mock.Anything, int64(7)).Return(customer, nil)
	campaigns.EXPECT().ListActiveCampaigns(mock.Anything, int64(7)).Return(active, nil)
	for _, id := range []int64{1, 2} {
		strategies.EXPECT().ListActiveStrategies(mock.Anything, id).
			Return([]domain.Strategy{{ID: id * 10, CampaignID: id, CPATarget: 2500}}, nil)
		perf.EXPECT().ListByCampaign(mock.Anything, id).
			Return(map[int64][]domain.PerformanceData{}, nil)
	}

	var applied map[int64]int64
	campaigns.EXPECT().ApplyDailyBudgets(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, budgets map[int64]int64) {
			applied = budgets
		}).
		Return(nil)

	if !alloc.Allocate(context.Background(), 7) {
		t.Fatalf("expected allocation to succeed")
	}
	for id, b := range applied {
		if b != 50000 {
			t.Fatalf("campaign %d: expected even split 50000, got %d", id, b)
		}
	}
}

// TestAllocateNoActiveCampaigns fails without mutating anything.
func TestAllocateNoActiveCampaigns(t *testing.T) {
	campaigns, _, _, alloc := allocatorFixture(t)

	campaigns.EXPECT().GetCustomer(mock.Anything, int64(7)).
		Return(&domain.Customer{ID: 7, TotalDailyBudget: 100000}, nil)
	campaigns.EXPECT().ListActiveCampaigns(mock.Anything, int64(7)).
		Return(nil, nil)

	if alloc.Allocate(context.Background(), 7) {
		t.Fatalf("expected allocation to fail with no active campaigns")
	}
}

// TestAllocateFloorExceedsBudget fails when the 5% floor times the
// campaign count would exceed the total budget.
func TestAllocateFloorExceedsBudget(t *testing.T) {
	campaigns, _, _, alloc := allocatorFixture(t)

	active := make([]domain.Campaign, 21)
	for i := range active {
		active[i] = domain.Campaign{ID: int64(i + 1), Status: domain.CampaignActive}
	}
	campaigns.EXPECT().GetCustomer(mock.Anything, int64(7)).
		Return(&domain.Customer{ID: 7, TotalDailyBudget: 100000}, nil)
	campaigns.EXPECT().ListActiveCampaigns(mock.Anything, int64(7)).Return(active, nil)

	if alloc.Allocate(context.Background(), 7) {
		t.Fatalf("expected allocation to fail when the floor exceeds the budget")
	}
}
