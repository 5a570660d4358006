package platform

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"adpilot/internal/adapter/memory"
	"adpilot/internal/breaker"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

type fixture struct {
	client     *mocks.MockPlatformClient
	assets     *mocks.MockAssetStore
	campaigns  *mocks.MockCampaignRepository
	strategies *mocks.MockStrategyRepository
	breaker    *breaker.Breaker
	deps       *Deps
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		client:     mocks.NewMockPlatformClient(t),
		assets:     mocks.NewMockAssetStore(t),
		campaigns:  mocks.NewMockCampaignRepository(t),
		strategies: mocks.NewMockStrategyRepository(t),
		breaker:    breaker.New(memory.NewBreakerStore(), 3, time.Minute, 10*time.Minute),
	}
	f.deps = &Deps{
		Clients: map[domain.Platform]port.PlatformClient{
			domain.PlatformGoogle:   f.client,
			domain.PlatformFacebook: f.client,
		},
		Assets:     f.assets,
		Breaker:    f.breaker,
		Campaigns:  f.campaigns,
		Strategies: f.strategies,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return f
}

func strPtr(s string) *string { return &s }

func googleCustomer() *domain.Customer {
	return &domain.Customer{ID: 1, GoogleAccountRef: strPtr("g-acct-1")}
}

func googleCampaign() *domain.Campaign {
	return &domain.Campaign{ID: 3, CustomerID: 1, Channel: domain.ChannelGoogleDisplay, DailyBudget: 50000}
}

func googleStrategy() *domain.Strategy {
	return &domain.Strategy{
		ID: 30, CampaignID: 3, Platform: domain.PlatformGoogle,
		Headline: "h", Description: "d", AssetPath: "creatives/30.png",
		CPATarget: 2500, BidAmount: 150,
	}
}

// TestGoogleDisplayDeployFromScratch walks all four steps, creating every
// resource and persisting each checkpoint in order.
func TestGoogleDisplayDeployFromScratch(t *testing.T) {
	f := newFixture(t)
	campaign := googleCampaign()
	strategy := googleStrategy()

	f.campaigns.EXPECT().GetCustomer(mock.Anything, int64(1)).Return(googleCustomer(), nil)

	// Nothing exists remotely yet.
	f.client.EXPECT().FindResourceByName(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)

	f.client.EXPECT().CreateResource(mock.Anything, "g-acct-1", mock.MatchedBy(func(spec port.ResourceSpec) bool {
		return spec.Kind == "campaign" && spec.Name == "adpilot-c3"
	})).Return(&port.ResourceRef{ID: "rc-1", Name: "adpilot-c3"}, nil)
	f.campaigns.EXPECT().SetPlatformCampaignRef(mock.Anything, int64(3), domain.PlatformGoogle, "rc-1").Return(nil)

	f.client.EXPECT().CreateResource(mock.Anything, "rc-1", mock.MatchedBy(func(spec port.ResourceSpec) bool {
		return spec.Kind == "ad_group" && spec.Name == "adpilot-c3-s30-adgroup"
	})).Return(&port.ResourceRef{ID: "rg-1"}, nil)

	f.assets.EXPECT().GetObject(mock.Anything, "creatives/30.png").Return([]byte("png"), nil)
	f.client.EXPECT().UploadAsset(mock.Anything, "g-acct-1", []byte("png"), "adpilot-c3-s30-creative").
		Return(&port.ResourceRef{ID: "rcr-1"}, nil)

	f.client.EXPECT().CreateResource(mock.Anything, "rg-1", mock.MatchedBy(func(spec port.ResourceSpec) bool {
		return spec.Kind == "ad" && spec.Attrs["creative_id"] == "rcr-1"
	})).Return(&port.ResourceRef{ID: "ra-1"}, nil)

	var steps []port.DeployStep
	f.strategies.EXPECT().SetStepRef(mock.Anything, int64(30), mock.Anything, mock.Anything).
		Run(func(ctx context.Context, strategyID int64, step port.DeployStep, ref string) {
			steps = append(steps, step)
		}).
		Return(nil)

	if !NewGoogleDisplay(f.deps).Deploy(context.Background(), campaign, strategy) {
		t.Fatalf("expected deploy to succeed")
	}

	want := []port.DeployStep{port.StepCampaign, port.StepAdGroup, port.StepCreative, port.StepAd}
	if len(steps) != len(want) {
		t.Fatalf("expected %d checkpoints, got %v", len(want), steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("checkpoint %d: expected %s, got %s", i, want[i], steps[i])
		}
	}
}

// TestGoogleDisplayDeployResumes reuses every persisted checkpoint and
// only performs the one remaining step.
func TestGoogleDisplayDeployResumes(t *testing.T) {
	f := newFixture(t)
	campaign := googleCampaign()
	campaign.GoogleCampaignRef = strPtr("rc-1")
	strategy := googleStrategy()
	strategy.RemoteCampaignRef = strPtr("rc-1")
	strategy.RemoteAdGroupRef = strPtr("rg-1")
	strategy.RemoteCreativeRef = strPtr("rcr-1")

	f.campaigns.EXPECT().GetCustomer(mock.Anything, int64(1)).Return(googleCustomer(), nil)

	// The final ad was created on a prior attempt that crashed before the
	// checkpoint persisted; the lookup finds it so nothing is re-created.
	f.client.EXPECT().FindResourceByName(mock.Anything, "rg-1", "ad", "adpilot-c3-s30-ad").
		Return(&port.ResourceRef{ID: "ra-1"}, nil)
	f.strategies.EXPECT().SetStepRef(mock.Anything, int64(30), port.StepAd, "ra-1").Return(nil)

	if !NewGoogleDisplay(f.deps).Deploy(context.Background(), campaign, strategy) {
		t.Fatalf("expected resumed deploy to succeed")
	}
}

// TestGoogleDisplayDeployAfterRestore deploys a strategy re-created from a
// version snapshot: the row has a fresh id but carries every remote
// reference, so all four steps short-circuit and no remote resource is
// touched or duplicated.
func TestGoogleDisplayDeployAfterRestore(t *testing.T) {
	f := newFixture(t)
	campaign := googleCampaign()
	campaign.GoogleCampaignRef = strPtr("rc-1")
	strategy := googleStrategy()
	strategy.ID = 31 // restored rows get new ids
	strategy.RemoteCampaignRef = strPtr("rc-1")
	strategy.RemoteAdGroupRef = strPtr("rg-1")
	strategy.RemoteCreativeRef = strPtr("rcr-1")
	strategy.RemoteAdRef = strPtr("ra-1")

	f.campaigns.EXPECT().GetCustomer(mock.Anything, int64(1)).Return(googleCustomer(), nil)

	if !NewGoogleDisplay(f.deps).Deploy(context.Background(), campaign, strategy) {
		t.Fatalf("expected restored deploy to succeed")
	}
}

// TestGoogleDisplayNoLinkedAccount fails before any remote call.
func TestGoogleDisplayNoLinkedAccount(t *testing.T) {
	f := newFixture(t)

	f.campaigns.EXPECT().GetCustomer(mock.Anything, int64(1)).
		Return(&domain.Customer{ID: 1}, nil)

	if NewGoogleDisplay(f.deps).Deploy(context.Background(), googleCampaign(), googleStrategy()) {
		t.Fatalf("expected deploy to fail without a linked account")
	}
}

// TestDeployRejectedByOpenBreaker fails locally once the platform breaker
// is tripped, without touching the client.
func TestDeployRejectedByOpenBreaker(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 3; i++ {
		f.breaker.RecordFailure("ads:google")
	}
	f.campaigns.EXPECT().GetCustomer(mock.Anything, int64(1)).Return(googleCustomer(), nil)

	if NewGoogleDisplay(f.deps).Deploy(context.Background(), googleCampaign(), googleStrategy()) {
		t.Fatalf("expected deploy to fail with the breaker open")
	}
}

// TestRetryableFailuresTripBreaker counts retryable platform errors toward
// the threshold; the fourth deploy attempt is rejected locally.
func TestRetryableFailuresTripBreaker(t *testing.T) {
	f := newFixture(t)
	campaign := googleCampaign()
	strategy := googleStrategy()

	f.campaigns.EXPECT().GetCustomer(mock.Anything, int64(1)).Return(googleCustomer(), nil).Times(4)
	f.client.EXPECT().FindResourceByName(mock.Anything, "g-acct-1", "campaign", "adpilot-c3").
		Return(nil, &port.PlatformError{Platform: "google", Code: "RATE_LIMITED", Retryable: true}).
		Times(3)

	d := NewGoogleDisplay(f.deps)
	for i := 0; i < 4; i++ {
		if d.Deploy(context.Background(), campaign, strategy) {
			t.Fatalf("attempt %d: expected deploy to fail", i)
		}
	}
	if f.breaker.IsAvailable("ads:google") {
		t.Fatalf("expected the breaker to be open after 3 retryable failures")
	}
}

// TestFacebookDisplayRequiresPage fails before any remote call when the
// customer has an ad account but no page identity.
func TestFacebookDisplayRequiresPage(t *testing.T) {
	f := newFixture(t)

	f.campaigns.EXPECT().GetCustomer(mock.Anything, int64(1)).
		Return(&domain.Customer{ID: 1, FacebookAccountRef: strPtr("fb-acct-1")}, nil)

	campaign := &domain.Campaign{ID: 3, CustomerID: 1, Channel: domain.ChannelFacebookDisplay}
	strategy := &domain.Strategy{ID: 30, CampaignID: 3, Platform: domain.PlatformFacebook, AssetPath: "creatives/30.png"}
	if NewFacebookDisplay(f.deps).Deploy(context.Background(), campaign, strategy) {
		t.Fatalf("expected deploy to fail without a linked page")
	}
}

// TestDeployMissingAsset fails the creative step when the strategy has no
// asset path to upload.
func TestDeployMissingAsset(t *testing.T) {
	f := newFixture(t)
	campaign := googleCampaign()
	campaign.GoogleCampaignRef = strPtr("rc-1")
	strategy := googleStrategy()
	strategy.AssetPath = ""
	strategy.RemoteCampaignRef = strPtr("rc-1")
	strategy.RemoteAdGroupRef = strPtr("rg-1")

	f.campaigns.EXPECT().GetCustomer(mock.Anything, int64(1)).Return(googleCustomer(), nil)

	if NewGoogleDisplay(f.deps).Deploy(context.Background(), campaign, strategy) {
		t.Fatalf("expected deploy to fail without a creative asset")
	}
}

// TestDeployersCoverAllChannels keeps the registry exhaustive over the
// channel type set.
func TestDeployersCoverAllChannels(t *testing.T) {
	deployers := Deployers(&Deps{})
	for _, ch := range []domain.ChannelType{
		domain.ChannelGoogleDisplay,
		domain.ChannelGoogleVideo,
		domain.ChannelFacebookDisplay,
		domain.ChannelFacebookVideo,
	} {
		if deployers[ch] == nil {
			t.Fatalf("no deployer registered for channel %s", ch)
		}
	}
}
