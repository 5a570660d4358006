package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP
// adapter: every route delegates straight to a control-loop port and
// reports the unit's outcome. Routes are registered on a chi.Router.
type Handler struct {
	campaigns    port.CampaignRepository
	strategies   port.StrategyRepository
	performance  port.PerformanceRepository
	reviews      port.ReviewRepository
	assets       port.AssetStore
	allocator    port.Allocator
	optimizer    port.Optimizer
	orchestrator port.Orchestrator
	rollbacker   port.Rollbacker
	gate         port.ConflictGate
	breakers     port.BreakerInspector
	logger       *slog.Logger
	router       chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	campaigns port.CampaignRepository,
	strategies port.StrategyRepository,
	performance port.PerformanceRepository,
	reviews port.ReviewRepository,
	assets port.AssetStore,
	allocator port.Allocator,
	optimizer port.Optimizer,
	orchestrator port.Orchestrator,
	rollbacker port.Rollbacker,
	gate port.ConflictGate,
	breakers port.BreakerInspector,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		campaigns:    campaigns,
		strategies:   strategies,
		performance:  performance,
		reviews:      reviews,
		assets:       assets,
		allocator:    allocator,
		optimizer:    optimizer,
		orchestrator: orchestrator,
		rollbacker:   rollbacker,
		gate:         gate,
		breakers:     breakers,
		logger:       logger,
	}
	r := chi.NewRouter()
	r.Use(h.requestLogger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/customers/{id}/allocate", h.handleAllocate)
		r.Post("/customers/{id}/optimize", h.handleOptimize)
		r.Post("/campaigns/{id}/deploy", h.handleDeploy)
		r.Post("/campaigns/{id}/rollback", h.handleRollback)
		r.Get("/campaigns/{id}/recommendations", h.handleListRecommendations)
		r.Get("/campaigns/{id}/conflicts", h.handleListConflicts)
		r.Post("/campaigns/{id}/snapshot", h.handleSnapshot)
		r.Post("/recommendations/{id}/apply", h.handleApplyRecommendation)
		r.Post("/recommendations/{id}/approve", h.handleReviewRecommendation(domain.RecommendationApproved))
		r.Post("/recommendations/{id}/reject", h.handleReviewRecommendation(domain.RecommendationRejected))
		r.Get("/strategies/{id}/creative", h.handleCreativePreview)
		r.Get("/strategies/{id}/performance", h.handleStrategyPerformance)
		r.Get("/breakers", h.handleBreakerStatus)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// idParam parses the {id} path parameter. It writes a 400 and returns
// false on malformed input.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
