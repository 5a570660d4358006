package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

func TestDeployCampaignHappyPath(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	strategies := mocks.NewMockStrategyRepository(t)
	deployer := mocks.NewMockDeployer(t)
	orch := NewDeploymentOrchestrator(campaigns, strategies,
		map[domain.ChannelType]port.Deployer{domain.ChannelGoogleDisplay: deployer}, testLogger())

	campaign := &domain.Campaign{ID: 3, Channel: domain.ChannelGoogleDisplay, Status: domain.CampaignActive}
	campaigns.EXPECT().GetCampaign(mock.Anything, int64(3)).Return(campaign, nil)
	strategies.EXPECT().ListActiveStrategies(mock.Anything, int64(3)).
		Return([]domain.Strategy{
			{ID: 30, CampaignID: 3, Platform: domain.PlatformGoogle},
			{ID: 31, CampaignID: 3, Platform: domain.PlatformFacebook}, // skipped
			{ID: 32, CampaignID: 3, Platform: domain.PlatformGoogle},
		}, nil)

	deployer.EXPECT().Deploy(mock.Anything, campaign, mock.MatchedBy(func(s *domain.Strategy) bool {
		return s.Platform == domain.PlatformGoogle
	})).Return(true).Twice()

	if !orch.DeployCampaign(context.Background(), 3) {
		t.Fatalf("expected deployment to succeed")
	}
}

func TestDeployCampaignUnknownCampaign(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	strategies := mocks.NewMockStrategyRepository(t)
	orch := NewDeploymentOrchestrator(campaigns, strategies,
		map[domain.ChannelType]port.Deployer{}, testLogger())

	campaigns.EXPECT().GetCampaign(mock.Anything, int64(3)).Return(nil, nil)

	if orch.DeployCampaign(context.Background(), 3) {
		t.Fatalf("expected deployment of an unknown campaign to fail")
	}
}

func TestDeployCampaignUnsupportedChannel(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	strategies := mocks.NewMockStrategyRepository(t)
	orch := NewDeploymentOrchestrator(campaigns, strategies,
		map[domain.ChannelType]port.Deployer{}, testLogger())

	campaigns.EXPECT().GetCampaign(mock.Anything, int64(3)).
		Return(&domain.Campaign{ID: 3, Channel: domain.ChannelGoogleDisplay}, nil)

	if orch.DeployCampaign(context.Background(), 3) {
		t.Fatalf("expected deployment to fail without a registered deployer")
	}
}

// TestDeployCampaignFailFast aborts on the first failed strategy and does
// not touch the rest.
func TestDeployCampaignFailFast(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	strategies := mocks.NewMockStrategyRepository(t)
	deployer := mocks.NewMockDeployer(t)
	orch := NewDeploymentOrchestrator(campaigns, strategies,
		map[domain.ChannelType]port.Deployer{domain.ChannelFacebookVideo: deployer}, testLogger())

	campaign := &domain.Campaign{ID: 3, Channel: domain.ChannelFacebookVideo}
	campaigns.EXPECT().GetCampaign(mock.Anything, int64(3)).Return(campaign, nil)
	strategies.EXPECT().ListActiveStrategies(mock.Anything, int64(3)).
		Return([]domain.Strategy{
			{ID: 30, CampaignID: 3, Platform: domain.PlatformFacebook},
			{ID: 31, CampaignID: 3, Platform: domain.PlatformFacebook},
		}, nil)

	deployer.EXPECT().Deploy(mock.Anything, campaign, mock.MatchedBy(func(s *domain.Strategy) bool {
		return s.ID == 30
	})).Return(false).Once()

	if orch.DeployCampaign(context.Background(), 3) {
		t.Fatalf("expected deployment to abort on the first failed strategy")
	}
}

func TestDeployCampaignNoMatchingStrategies(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	strategies := mocks.NewMockStrategyRepository(t)
	deployer := mocks.NewMockDeployer(t)
	orch := NewDeploymentOrchestrator(campaigns, strategies,
		map[domain.ChannelType]port.Deployer{domain.ChannelGoogleVideo: deployer}, testLogger())

	campaigns.EXPECT().GetCampaign(mock.Anything, int64(3)).
		Return(&domain.Campaign{ID: 3, Channel: domain.ChannelGoogleVideo}, nil)
	strategies.EXPECT().ListActiveStrategies(mock.Anything, int64(3)).
		Return([]domain.Strategy{{ID: 30, Platform: domain.PlatformFacebook}}, nil)

	if orch.DeployCampaign(context.Background(), 3) {
		t.Fatalf("expected deployment to fail with nothing to deploy")
	}
}
