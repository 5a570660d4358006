package httpadapter

import (
	"log/slog"
	"net/http"

	"adpilot/internal/core/domain"
)

// handleListRecommendations returns the campaign's recommendations,
// newest first.
func (h *Handler) handleListRecommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	recs, err := h.reviews.ListRecommendations(r.Context(), id)
	if err != nil {
		h.logger.Error("list recommendations error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, recs)
}

// handleListConflicts returns the campaign's conflict audit trail.
func (h *Handler) handleListConflicts(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	conflicts, err := h.reviews.ListConflicts(r.Context(), id)
	if err != nil {
		h.logger.Error("list conflicts error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, conflicts)
}

// handleApplyRecommendation attempts to act on a recommendation. Every
// attempt passes the conflict gate, which records a conflict and blocks;
// the caller gets 409 with the recommendation left pending for human
// review. Unknown recommendations or campaigns produce 404.
func (h *Handler) handleApplyRecommendation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	rec, err := h.reviews.GetRecommendation(r.Context(), id)
	if err != nil {
		h.logger.Error("load recommendation error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if rec == nil {
		http.NotFound(w, r)
		return
	}
	campaign, err := h.campaigns.GetCampaign(r.Context(), rec.CampaignID)
	if err != nil {
		h.logger.Error("load campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if campaign == nil {
		http.NotFound(w, r)
		return
	}

	if !h.gate.Resolve(r.Context(), rec, campaign) {
		h.writeJSON(w, http.StatusConflict, outcomeResponse{OK: false})
		return
	}
	h.writeJSON(w, http.StatusOK, outcomeResponse{OK: true})
}

// handleReviewRecommendation moves a pending recommendation to the given
// review status. Approving does not apply anything; application is a
// separate step that still passes the conflict gate.
func (h *Handler) handleReviewRecommendation(status domain.RecommendationStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		rec, err := h.reviews.GetRecommendation(r.Context(), id)
		if err != nil {
			h.logger.Error("load recommendation error", slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if rec == nil {
			http.NotFound(w, r)
			return
		}
		if rec.Status != domain.RecommendationPending {
			h.writeJSON(w, http.StatusConflict, outcomeResponse{OK: false})
			return
		}
		if err = h.reviews.SetRecommendationStatus(r.Context(), id, status); err != nil {
			h.logger.Error("set recommendation status error", slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		h.writeJSON(w, http.StatusOK, outcomeResponse{OK: true})
	}
}

// handleStrategyPerformance returns a strategy's observed reporting
// windows, newest first.
func (h *Handler) handleStrategyPerformance(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	windows, err := h.performance.ListByStrategy(r.Context(), id)
	if err != nil {
		h.logger.Error("list performance error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, windows)
}

// handleCreativePreview returns a time-limited URL for a strategy's
// creative so a reviewer can inspect it before approving anything.
func (h *Handler) handleCreativePreview(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	strategy, err := h.strategies.GetStrategy(r.Context(), id)
	if err != nil {
		h.logger.Error("load strategy error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if strategy == nil || strategy.AssetPath == "" {
		http.NotFound(w, r)
		return
	}
	url, err := h.assets.URLFor(r.Context(), strategy.AssetPath)
	if err != nil {
		h.logger.Error("presign creative error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
