package httpadapter

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"adpilot/internal/adapter/memory"
	"adpilot/internal/breaker"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port/mocks"
)

type unitFunc func(ctx context.Context, id int64) bool

func (f unitFunc) Allocate(ctx context.Context, customerID int64) bool { return f(ctx, customerID) }
func (f unitFunc) Scan(ctx context.Context, customerID int64) bool     { return f(ctx, customerID) }
func (f unitFunc) DeployCampaign(ctx context.Context, campaignID int64) bool {
	return f(ctx, campaignID)
}
func (f unitFunc) Rollback(ctx context.Context, campaignID int64) bool { return f(ctx, campaignID) }

type gateFunc func(ctx context.Context, rec *domain.Recommendation, c *domain.Campaign) bool

func (f gateFunc) Resolve(ctx context.Context, rec *domain.Recommendation, c *domain.Campaign) bool {
	return f(ctx, rec, c)
}

type handlerMocks struct {
	campaigns   *mocks.MockCampaignRepository
	strategies  *mocks.MockStrategyRepository
	performance *mocks.MockPerformanceRepository
	reviews     *mocks.MockReviewRepository
	assets      *mocks.MockAssetStore
}

func newTestHandler(t *testing.T, outcome bool) (*Handler, *handlerMocks) {
	t.Helper()
	m := &handlerMocks{
		campaigns:   mocks.NewMockCampaignRepository(t),
		strategies:  mocks.NewMockStrategyRepository(t),
		performance: mocks.NewMockPerformanceRepository(t),
		reviews:     mocks.NewMockReviewRepository(t),
		assets:      mocks.NewMockAssetStore(t),
	}
	unit := unitFunc(func(ctx context.Context, id int64) bool { return outcome })
	gate := gateFunc(func(ctx context.Context, rec *domain.Recommendation, c *domain.Campaign) bool {
		return false
	})
	brk := breaker.New(memory.NewBreakerStore(), 3, time.Minute, 10*time.Minute)
	h := NewHandler(m.campaigns, m.strategies, m.performance, m.reviews, m.assets,
		unit, unit, unit, unit, gate, brk,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	return h, m
}

func TestControlRoutesReportOutcome(t *testing.T) {
	routes := []string{
		"/api/v1/customers/7/allocate",
		"/api/v1/customers/7/optimize",
		"/api/v1/campaigns/3/deploy",
		"/api/v1/campaigns/3/rollback",
	}
	for _, route := range routes {
		ok, _ := newTestHandler(t, true)
		rr := httptest.NewRecorder()
		ok.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, route, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 on success, got %d", route, rr.Code)
		}

		failed, _ := newTestHandler(t, false)
		rr = httptest.NewRecorder()
		failed.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, route, nil))
		if rr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422 on refusal, got %d", route, rr.Code)
		}
	}
}

func TestControlRoutesRejectBadID(t *testing.T) {
	h, _ := newTestHandler(t, true)
	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/customers/nope/allocate", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed id, got %d", rr.Code)
	}
}

func TestApplyRecommendationBlocked(t *testing.T) {
	h, m := newTestHandler(t, true)

	m.reviews.EXPECT().GetRecommendation(mock.Anything, int64(42)).
		Return(&domain.Recommendation{ID: 42, CampaignID: 3, Type: domain.RecommendPauseCampaign}, nil)
	m.campaigns.EXPECT().GetCampaign(mock.Anything, int64(3)).
		Return(&domain.Campaign{ID: 3, Status: domain.CampaignActive}, nil)

	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/42/apply", nil))
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 when the gate blocks, got %d", rr.Code)
	}
}

func TestApplyRecommendationNotFound(t *testing.T) {
	h, m := newTestHandler(t, true)

	m.reviews.EXPECT().GetRecommendation(mock.Anything, int64(42)).Return(nil, nil)

	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/42/apply", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown recommendation, got %d", rr.Code)
	}
}

func TestCreativePreview(t *testing.T) {
	h, m := newTestHandler(t, true)

	m.strategies.EXPECT().GetStrategy(mock.Anything, int64(30)).
		Return(&domain.Strategy{ID: 30, AssetPath: "creatives/30.png"}, nil)
	m.assets.EXPECT().URLFor(mock.Anything, "creatives/30.png").
		Return("https://assets.example/creatives/30.png?sig=abc", nil)

	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/strategies/30/creative", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestCreativePreviewUnknownStrategy(t *testing.T) {
	h, m := newTestHandler(t, true)

	m.strategies.EXPECT().GetStrategy(mock.Anything, int64(30)).Return(nil, nil)

	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/strategies/30/creative", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestApproveRecommendation(t *testing.T) {
	h, m := newTestHandler(t, true)

	m.reviews.EXPECT().GetRecommendation(mock.Anything, int64(42)).
		Return(&domain.Recommendation{ID: 42, Status: domain.RecommendationPending}, nil)
	m.reviews.EXPECT().SetRecommendationStatus(mock.Anything, int64(42), domain.RecommendationApproved).
		Return(nil)

	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/42/approve", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestRejectAlreadyReviewedRecommendation(t *testing.T) {
	h, m := newTestHandler(t, true)

	m.reviews.EXPECT().GetRecommendation(mock.Anything, int64(42)).
		Return(&domain.Recommendation{ID: 42, Status: domain.RecommendationApproved}, nil)

	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/42/reject", nil))
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 for a non-pending recommendation, got %d", rr.Code)
	}
}

func TestSnapshotCampaign(t *testing.T) {
	h, m := newTestHandler(t, true)

	m.strategies.EXPECT().SnapshotActiveStrategies(mock.Anything, int64(3), mock.Anything).
		Return(nil)

	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/3/snapshot", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestStrategyPerformance(t *testing.T) {
	h, m := newTestHandler(t, true)

	m.performance.EXPECT().ListByStrategy(mock.Anything, int64(30)).
		Return([]domain.PerformanceData{{ID: 1, StrategyID: 30, Spend: 1000, Conversions: 2}}, nil)

	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/strategies/30/performance", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestBreakerStatus(t *testing.T) {
	h, _ := newTestHandler(t, true)

	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/breakers", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestListRecommendations(t *testing.T) {
	h, m := newTestHandler(t, true)

	m.reviews.EXPECT().ListRecommendations(mock.Anything, int64(3)).
		Return([]domain.Recommendation{{ID: 1, CampaignID: 3}}, nil)

	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/3/recommendations", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected a JSON response, got %q", got)
	}
}
