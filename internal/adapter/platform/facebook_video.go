package platform

import (
	"context"
	"log/slog"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// FacebookVideo deploys video strategies to the Facebook network. Same
// page-identity precondition as display; the ad set carries a video
// placement and the ad references the uploaded video asset.
type FacebookVideo struct {
	deps *Deps
}

// NewFacebookVideo creates the deployer for facebook_video campaigns.
func NewFacebookVideo(deps *Deps) *FacebookVideo {
	return &FacebookVideo{deps: deps}
}

// Deploy runs the facebook video sequence. Fail-fast, resumable from
// persisted step references.
func (f *FacebookVideo) Deploy(ctx context.Context, campaign *domain.Campaign, strategy *domain.Strategy) bool {
	const p = domain.PlatformFacebook
	d := f.deps

	customer, err := d.customerFor(ctx, campaign)
	if err != nil {
		d.Logger.Error("facebook video: load customer", slog.Int64("campaign_id", campaign.ID), slog.Any("error", err))
		return false
	}
	if customer.FacebookAccountRef == nil {
		d.Logger.Error("facebook video: customer has no linked facebook account",
			slog.Int64("customer_id", customer.ID), slog.Int64("campaign_id", campaign.ID))
		return false
	}
	if customer.FacebookPageRef == nil {
		d.Logger.Error("facebook video: customer has no linked facebook page",
			slog.Int64("customer_id", customer.ID), slog.Int64("campaign_id", campaign.ID))
		return false
	}
	account := *customer.FacebookAccountRef
	page := *customer.FacebookPageRef

	campRef, err := d.ensureStep(ctx, p, strategy, port.StepCampaign, strategy.RemoteCampaignRef, account, port.ResourceSpec{
		Kind: "campaign",
		Name: campaignName(campaign),
		Attrs: map[string]any{
			"objective":    "OUTCOME_AWARENESS",
			"daily_budget": campaign.DailyBudget,
			"status":       "PAUSED",
		},
	})
	if err != nil {
		return d.failStep(campaign, strategy, port.StepCampaign, err)
	}
	if err = d.recordCampaignRef(ctx, campaign, p, campRef); err != nil {
		return d.failStep(campaign, strategy, port.StepCampaign, err)
	}

	setRef, err := d.ensureStep(ctx, p, strategy, port.StepAdGroup, strategy.RemoteAdGroupRef, campRef, port.ResourceSpec{
		Kind: "ad_set",
		Name: strategyName(strategy, "adset"),
		Attrs: map[string]any{
			"bid_amount": strategy.BidAmount,
			"placement":  "video_feeds",
			"targeting":  strategy.Targeting,
		},
	})
	if err != nil {
		return d.failStep(campaign, strategy, port.StepAdGroup, err)
	}

	videoRef, err := d.ensureAsset(ctx, p, strategy, account)
	if err != nil {
		return d.failStep(campaign, strategy, port.StepCreative, err)
	}

	_, err = d.ensureStep(ctx, p, strategy, port.StepAd, strategy.RemoteAdRef, setRef, port.ResourceSpec{
		Kind: "ad",
		Name: strategyName(strategy, "ad"),
		Attrs: map[string]any{
			"headline":    strategy.Headline,
			"description": strategy.Description,
			"video_id":    videoRef,
			"page_id":     page,
		},
	})
	if err != nil {
		return d.failStep(campaign, strategy, port.StepAd, err)
	}

	d.Logger.Info("facebook video: strategy deployed",
		slog.Int64("campaign_id", campaign.ID), slog.Int64("strategy_id", strategy.ID))
	return true
}
