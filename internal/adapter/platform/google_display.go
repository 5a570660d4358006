package platform

import (
	"context"
	"log/slog"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// GoogleDisplay deploys display strategies to the Google ads network:
// campaign, ad group with targeting, creative upload, then the display ad.
type GoogleDisplay struct {
	deps *Deps
}

// NewGoogleDisplay creates the deployer for google_display campaigns.
func NewGoogleDisplay(deps *Deps) *GoogleDisplay {
	return &GoogleDisplay{deps: deps}
}

// Deploy runs the display step sequence. Steps are strictly sequential and
// fail fast; already-created remote resources are kept and reused on the
// next attempt.
func (g *GoogleDisplay) Deploy(ctx context.Context, campaign *domain.Campaign, strategy *domain.Strategy) bool {
	const p = domain.PlatformGoogle
	d := g.deps

	customer, err := d.customerFor(ctx, campaign)
	if err != nil {
		d.Logger.Error("google display: load customer", slog.Int64("campaign_id", campaign.ID), slog.Any("error", err))
		return false
	}
	if customer.GoogleAccountRef == nil {
		d.Logger.Error("google display: customer has no linked google account",
			slog.Int64("customer_id", customer.ID), slog.Int64("campaign_id", campaign.ID))
		return false
	}
	account := *customer.GoogleAccountRef

	campRef, err := d.ensureStep(ctx, p, strategy, port.StepCampaign, strategy.RemoteCampaignRef, account, port.ResourceSpec{
		Kind: "campaign",
		Name: campaignName(campaign),
		Attrs: map[string]any{
			"channel":      "display",
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
			"cpc_bid":   strategy.BidAmount,
			"targeting": strategy.Targeting,
		},
	})
	if err != nil {
		return d.failStep(campaign, strategy, port.StepAdGroup, err)
	}

	creativeRef, err := d.ensureAsset(ctx, p, strategy, account)
	if err != nil {
		return d.failStep(campaign, strategy, port.StepCreative, err)
	}

	_, err = d.ensureStep(ctx, p, strategy, port.StepAd, strategy.RemoteAdRef, groupRef, port.ResourceSpec{
		Kind: "ad",
		Name: strategyName(strategy, "ad"),
		Attrs: map[string]any{
			"headline":    strategy.Headline,
			"description": strategy.Description,
			"creative_id": creativeRef,
		},
	})
	if err != nil {
		return d.failStep(campaign, strategy, port.StepAd, err)
	}

	d.Logger.Info("google display: strategy deployed",
		slog.Int64("campaign_id", campaign.ID), slog.Int64("strategy_id", strategy.ID))
	return true
}
