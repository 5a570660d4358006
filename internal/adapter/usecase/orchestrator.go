package usecase

import (
	"context"
	"log/slog"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// DeploymentOrchestrator deploys a campaign's active strategies through
// the deployer registered for the campaign's channel. Step sequencing,
// idempotent resource reuse and checkpoint persistence all live in the
// per-channel deployers; the orchestrator selects the deployer and walks
// the strategies.
type DeploymentOrchestrator struct {
	campaigns  port.CampaignRepository
	strategies port.StrategyRepository
	deployers  map[domain.ChannelType]port.Deployer
	logger     *slog.Logger
}

// NewDeploymentOrchestrator wires an orchestrator over the given deployer
// registry.
func NewDeploymentOrchestrator(
	campaigns port.CampaignRepository,
	strategies port.StrategyRepository,
	deployers map[domain.ChannelType]port.Deployer,
	logger *slog.Logger,
) *DeploymentOrchestrator {
	return &DeploymentOrchestrator{
		campaigns:  campaigns,
		strategies: strategies,
		deployers:  deployers,
		logger:     logger,
	}
}

// DeployCampaign deploys every active strategy of the campaign that
// belongs to the campaign's platform. It fails fast: the first strategy
// that does not deploy aborts the rest. Partially deployed state stays in
// place as checkpoints for the next attempt; remote resources are never
// rolled back.
func (d *DeploymentOrchestrator) DeployCampaign(ctx context.Context, campaignID int64) bool {
	campaign, err := d.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		d.logger.Error("deploy: load campaign", slog.Int64("campaign_id", campaignID), slog.Any("error", err))
		return false
	}
	if campaign == nil {
		d.logger.Error("deploy: campaign not found", slog.Int64("campaign_id", campaignID))
		return false
	}

	deployer, ok := d.deployers[campaign.Channel]
	if !ok {
		d.logger.Error("deploy: unsupported channel",
			slog.Int64("campaign_id", campaignID),
			slog.String("channel", string(campaign.Channel)))
		return false
	}
	platform, err := campaign.Channel.Platform()
	if err != nil {
		d.logger.Error("deploy: unsupported channel", slog.Int64("campaign_id", campaignID), slog.Any("error", err))
		return false
	}

	strategies, err := d.strategies.ListActiveStrategies(ctx, campaignID)
	if err != nil {
		d.logger.Error("deploy: list strategies", slog.Int64("campaign_id", campaignID), slog.Any("error", err))
		return false
	}

	deployed := 0
	for i := range strategies {
		if strategies[i].Platform != platform {
			continue
		}
		if !deployer.Deploy(ctx, campaign, &strategies[i]) {
			d.logger.Error("deploy: strategy failed",
				slog.Int64("campaign_id", campaignID),
				slog.Int64("strategy_id", strategies[i].ID))
			return false
		}
		deployed++
	}
	if deployed == 0 {
		d.logger.Warn("deploy: no active strategies for platform",
			slog.Int64("campaign_id", campaignID),
			slog.String("platform", string(platform)))
		return false
	}
	d.logger.Info("deploy: campaign deployed",
		slog.Int64("campaign_id", campaignID),
		slog.Int("strategies", deployed))
	return true
}
