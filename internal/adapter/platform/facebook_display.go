package platform

import (
	"context"
	"log/slog"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// FacebookDisplay deploys display strategies to the Facebook network.
// Facebook additionally requires a linked page identity: ads are published
// on behalf of a page, so its absence fails before any remote call.
type FacebookDisplay struct {
	deps *Deps
}

// NewFacebookDisplay creates the deployer for facebook_display campaigns.
func NewFacebookDisplay(deps *Deps) *FacebookDisplay {
	return &FacebookDisplay{deps: deps}
}

// Deploy runs the facebook display sequence: campaign, ad set with
// targeting, creative upload, ad. Fail-fast, resumable from persisted step
// references.
func (f *FacebookDisplay) Deploy(ctx context.Context, campaign *domain.Campaign, strategy *domain.Strategy) bool {
	const p = domain.PlatformFacebook
	d := f.deps

	customer, err := d.customerFor(ctx, campaign)
	if err != nil {
		d.Logger.Error("facebook display: load customer", slog.Int64("campaign_id", campaign.ID), slog.Any("error", err))
		return false
	}
	if customer.FacebookAccountRef == nil {
		d.Logger.Error("facebook display: customer has no linked facebook account",
			slog.Int64("customer_id", customer.ID), slog.Int64("campaign_id", campaign.ID))
		return false
	}
	if customer.FacebookPageRef == nil {
		d.Logger.Error("facebook display: customer has no linked facebook page",
			slog.Int64("customer_id", customer.ID), slog.Int64("campaign_id", campaign.ID))
		return false
	}
	account := *customer.FacebookAccountRef
	page := *customer.FacebookPageRef

	campRef, err := d.ensureStep(ctx, p, strategy, port.StepCampaign, strategy.RemoteCampaignRef, account, port.ResourceSpec{
		Kind: "campaign",
		Name: campaignName(campaign),
		Attrs: map[string]any{
			"objective":    "OUTCOME_TRAFFIC",
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
			"targeting":  strategy.Targeting,
		},
	})
	if err != nil {
		return d.failStep(campaign, strategy, port.StepAdGroup, err)
	}

	creativeRef, err := d.ensureAsset(ctx, p, strategy, account)
	if err != nil {
		return d.failStep(campaign, strategy, port.StepCreative, err)
	}

	_, err = d.ensureStep(ctx, p, strategy, port.StepAd, strategy.RemoteAdRef, setRef, port.ResourceSpec{
		Kind: "ad",
		Name: strategyName(strategy, "ad"),
		Attrs: map[string]any{
			"headline":    strategy.Headline,
			"description": strategy.Description,
			"creative_id": creativeRef,
			"page_id":     page,
		},
	})
	if err != nil {
		return d.failStep(campaign, strategy, port.StepAd, err)
	}

	d.Logger.Info("facebook display: strategy deployed",
		slog.Int64("campaign_id", campaign.ID), slog.Int64("strategy_id", strategy.ID))
	return true
}
