// Package platform contains the per-channel deployment implementations.
// Each deployer runs an ordered sequence of idempotent remote
// resource-creation steps: look up the resource by its deterministic name,
// create it only when absent, and persist the produced identifier locally
// before the next step runs. A failed deploy therefore leaves a resumable
// checkpoint, never an orphaned remote resource without a local reference.
package platform

import (
	"context"
	"fmt"
	"log/slog"

	"adpilot/internal/breaker"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Deps bundles the collaborators every deployer needs. Clients is keyed by
// platform so one Deps value can serve deployers for several networks.
type Deps struct {
	Clients    map[domain.Platform]port.PlatformClient
	Assets     port.AssetStore
	Breaker    *breaker.Breaker
	Campaigns  port.CampaignRepository
	Strategies port.StrategyRepository
	Logger     *slog.Logger
}

// serviceName keys circuit breaker state per platform.
func serviceName(p domain.Platform) string {
	return "ads:" + string(p)
}

// campaignName is the deterministic remote name for a campaign resource.
func campaignName(c *domain.Campaign) string {
	return fmt.Sprintf("adpilot-c%d", c.ID)
}

// strategyName is the deterministic remote name for a strategy-scoped
// resource.
func strategyName(s *domain.Strategy, suffix string) string {
	return fmt.Sprintf("adpilot-c%d-s%d-%s", s.CampaignID, s.ID, suffix)
}

// call runs one remote operation through the platform's circuit breaker.
// A tripped breaker rejects the call locally; retryable platform errors
// count toward tripping it, success resets it.
func (d *Deps) call(ctx context.Context, p domain.Platform, fn func(ctx context.Context) (*port.ResourceRef, error)) (*port.ResourceRef, error) {
	svc := serviceName(p)
	if !d.Breaker.IsAvailable(svc) {
		return nil, fmt.Errorf("%s: %w", svc, port.ErrBreakerOpen)
	}
	ref, err := fn(ctx)
	if err != nil {
		if port.IsRetryablePlatformError(err) {
			d.Breaker.RecordFailure(svc)
		}
		return nil, err
	}
	d.Breaker.RecordSuccess(svc)
	return ref, nil
}

// ensureResource finds a resource by its deterministic name under
// parentRef, creating it when absent. Both the lookup and the creation go
// through the breaker.
func (d *Deps) ensureResource(ctx context.Context, p domain.Platform, parentRef string, spec port.ResourceSpec) (*port.ResourceRef, error) {
	client := d.Clients[p]
	existing, err := d.call(ctx, p, func(ctx context.Context) (*port.ResourceRef, error) {
		return client.FindResourceByName(ctx, parentRef, spec.Kind, spec.Name)
	})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return d.call(ctx, p, func(ctx context.Context) (*port.ResourceRef, error) {
		return client.CreateResource(ctx, parentRef, spec)
	})
}

// saveStep persists a step's remote identifier and mirrors it onto the
// in-memory strategy so the next step reads the fresh checkpoint.
func (d *Deps) saveStep(ctx context.Context, s *domain.Strategy, step port.DeployStep, ref string) error {
	if err := d.Strategies.SetStepRef(ctx, s.ID, step, ref); err != nil {
		return err
	}
	switch step {
	case port.StepCampaign:
		s.RemoteCampaignRef = &ref
	case port.StepAdGroup:
		s.RemoteAdGroupRef = &ref
	case port.StepCreative:
		s.RemoteCreativeRef = &ref
	case port.StepAd:
		s.RemoteAdRef = &ref
	}
	return nil
}

// ensureStep resolves one deployment step: reuse the persisted checkpoint
// when present, otherwise find-or-create the resource and persist its
// identifier before returning.
func (d *Deps) ensureStep(ctx context.Context, p domain.Platform, s *domain.Strategy, step port.DeployStep, current *string, parentRef string, spec port.ResourceSpec) (string, error) {
	if current != nil {
		return *current, nil
	}
	ref, err := d.ensureResource(ctx, p, parentRef, spec)
	if err != nil {
		return "", err
	}
	if err = d.saveStep(ctx, s, step, ref.ID); err != nil {
		return "", err
	}
	return ref.ID, nil
}

// ensureAsset resolves the creative upload step. The asset library is
// searched by deterministic name first so a re-run after a crash between
// upload and checkpoint persist does not upload twice.
func (d *Deps) ensureAsset(ctx context.Context, p domain.Platform, s *domain.Strategy, accountRef string) (string, error) {
	if s.RemoteCreativeRef != nil {
		return *s.RemoteCreativeRef, nil
	}
	if s.AssetPath == "" {
		return "", fmt.Errorf("strategy %d has no creative asset", s.ID)
	}
	client := d.Clients[p]
	name := strategyName(s, "creative")
	ref, err := d.call(ctx, p, func(ctx context.Context) (*port.ResourceRef, error) {
		return client.FindResourceByName(ctx, accountRef, "asset", name)
	})
	if err != nil {
		return "", err
	}
	if ref == nil {
		data, err := d.Assets.GetObject(ctx, s.AssetPath)
		if err != nil {
			return "", fmt.Errorf("load asset %s: %w", s.AssetPath, err)
		}
		ref, err = d.call(ctx, p, func(ctx context.Context) (*port.ResourceRef, error) {
			return client.UploadAsset(ctx, accountRef, data, name)
		})
		if err != nil {
			return "", err
		}
	}
	if err = d.saveStep(ctx, s, port.StepCreative, ref.ID); err != nil {
		return "", err
	}
	return ref.ID, nil
}

// customerFor loads the owning customer of a campaign; preconditions on
// linked accounts are checked by the deployers before any remote call.
func (d *Deps) customerFor(ctx context.Context, c *domain.Campaign) (*domain.Customer, error) {
	customer, err := d.Campaigns.GetCustomer(ctx, c.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %d not found", c.CustomerID)
	}
	return customer, nil
}

// recordCampaignRef mirrors the platform campaign id onto the campaign row
// the first time a deployment produces it.
func (d *Deps) recordCampaignRef(ctx context.Context, c *domain.Campaign, p domain.Platform, ref string) error {
	var current *string
	switch p {
	case domain.PlatformGoogle:
		current = c.GoogleCampaignRef
	case domain.PlatformFacebook:
		current = c.FacebookCampaignRef
	}
	if current != nil && *current == ref {
		return nil
	}
	return d.Campaigns.SetPlatformCampaignRef(ctx, c.ID, p, ref)
}

func (d *Deps) failStep(c *domain.Campaign, s *domain.Strategy, step port.DeployStep, err error) bool {
	d.Logger.Error("deploy step failed",
		slog.Int64("campaign_id", c.ID),
		slog.Int64("strategy_id", s.ID),
		slog.String("step", string(step)),
		slog.Any("error", err))
	return false
}
