package platform

import (
	"context"
	"log/slog"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// GoogleVideo deploys video strategies to the Google ads network. The
// sequence mirrors display but creates a video campaign and an in-stream
// video ad referencing the uploaded video asset.
type GoogleVideo struct {
	deps *Deps
}

// NewGoogleVideo creates the deployer for google_video campaigns.
func NewGoogleVideo(deps *Deps) *GoogleVideo {
	return &GoogleVideo{deps: deps}
}

// Deploy runs the video step sequence: campaign, ad group, video asset
// upload, video ad. Fail-fast, resumable from persisted step references.
func (g *GoogleVideo) Deploy(ctx context.Context, campaign *domain.Campaign, strategy *domain.Strategy) bool {
	const p = domain.PlatformGoogle
	d := g.deps

	customer, err := d.customerFor(ctx, campaign)
	if err != nil {
		d.Logger.Error("google video: load customer", slog.Int64("campaign_id", campaign.ID), slog.Any("error", err))
		return false
	}
	if customer.GoogleAccountRef == nil {
		d.Logger.Error("google video: customer has no linked google account",
			slog.Int64("customer_id", customer.ID), slog.Int64("campaign_id", campaign.ID))
		return false
	}
	account := *customer.GoogleAccountRef

	campRef, err := d.ensureStep(ctx, p, strategy, port.StepCampaign, strategy.RemoteCampaignRef, account, port.ResourceSpec{
		Kind: "campaign",
		Name: campaignName(campaign),
		Attrs: map[string]any{
			"channel":      "video",
			"daily_budget": campaign.DailyBudget,
			"status":       "paused",
		},
	})
	if err != nil {
		return d.failStep(campaign, strategy, port.StepCampaign, err)
	}
	if err = d.recordCampaignRef(ctx, campaign, p, campRef); err != nil {
		return d.failStep(campaign, strategy, port.StepCampaign, err)
	}

	groupRef, err := d.ensureStep(ctx, p, strategy, port.StepAdGroup, strategy.RemoteAdGroupRef, campRef, port.ResourceSpec{
		Kind: "ad_group",
		Name: strategyName(strategy, "adgroup"),
		Attrs: map[string]any{
			"cpv_bid":   strategy.BidAmount,
			"format":    "in_stream",
			"targeting": strategy.Targeting,
		},
	})
	if err != nil {
		return d.failStep(campaign, strategy, port.StepAdGroup, err)
	}

	videoRef, err := d.ensureAsset(ctx, p, strategy, account)
	if err != nil {
		return d.failStep(campaign, strategy, port.StepCreative, err)
	}

	_, err = d.ensureStep(ctx, p, strategy, port.StepAd, strategy.RemoteAdRef, groupRef, port.ResourceSpec{
		Kind: "ad",
		Name: strategyName(strategy, "ad"),
		Attrs: map[string]any{
			"headline":    strategy.Headline,
			"description": strategy.Description,
			"video_id":    videoRef,
			"format":      "in_stream",
		},
	})
	if err != nil {
		return d.failStep(campaign, strategy, port.StepAd, err)
	}

	d.Logger.Info("google video: strategy deployed",
		slog.Int64("campaign_id", campaign.ID), slog.Int64("strategy_id", strategy.ID))
	return true
}
