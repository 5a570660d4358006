package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"adpilot/internal/core/domain"
)

type outcomeResponse struct {
	OK bool `json:"ok"`
}

// handleAllocate triggers budget allocation for one customer. The unit's
// boolean outcome maps to 200 on success and 422 when the allocation
// refused to run (no active campaigns, floor exceeded, unknown customer).
func (h *Handler) handleAllocate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if h.allocator.Allocate(r.Context(), id) {
		h.writeJSON(w, http.StatusOK, outcomeResponse{OK: true})
		return
	}
	h.writeJSON(w, http.StatusUnprocessableEntity, outcomeResponse{OK: false})
}

// handleOptimize triggers a portfolio scan for one customer.
func (h *Handler) handleOptimize(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if h.optimizer.Scan(r.Context(), id) {
		h.writeJSON(w, http.StatusOK, outcomeResponse{OK: true})
		return
	}
	h.writeJSON(w, http.StatusUnprocessableEntity, outcomeResponse{OK: false})
}

// handleDeploy deploys a campaign's active strategies. A failed deploy
// leaves whatever checkpoints the successful steps persisted; re-invoking
// resumes from them.
func (h *Handler) handleDeploy(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if h.orchestrator.DeployCampaign(r.Context(), id) {
		h.writeJSON(w, http.StatusOK, outcomeResponse{OK: true})
		return
	}
	h.writeJSON(w, http.StatusUnprocessableEntity, outcomeResponse{OK: false})
}

// handleSnapshot versions the campaign's active strategies as one
// generation, so a later rollback can restore exactly this configuration.
// Call it before superseding a signed-off strategy.
func (h *Handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.strategies.SnapshotActiveStrategies(r.Context(), id, time.Now().UTC()); err != nil {
		h.logger.Error("snapshot error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, outcomeResponse{OK: true})
}

// handleBreakerStatus reports circuit breaker state per platform, for
// operational inspection. A zero state means the platform is healthy.
func (h *Handler) handleBreakerStatus(w http.ResponseWriter, r *http.Request) {
	states := make(map[string]domain.BreakerState, 2)
	for _, p := range []domain.Platform{domain.PlatformGoogle, domain.PlatformFacebook} {
		states[string(p)] = h.breakers.State("ads:" + string(p))
	}
	h.writeJSON(w, http.StatusOK, states)
}

// handleRollback restores the campaign's most recent strategy generation.
func (h *Handler) handleRollback(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if h.rollbacker.Rollback(r.Context(), id) {
		h.writeJSON(w, http.StatusOK, outcomeResponse{OK: true})
		return
	}
	h.writeJSON(w, http.StatusUnprocessableEntity, outcomeResponse{OK: false})
}
