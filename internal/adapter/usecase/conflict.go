package usecase

import (
	"context"
	"log/slog"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// ConflictGate guards every attempt to act on a recommendation against
// live campaign state. The gate is deliberately conservative: an unattended
// system moving real ad spend must never silently merge an automated
// recommendation with current state, so every invocation writes a durable
// Conflict record and blocks. Whether a blocked recommendation is escalated
// for human approval is the surrounding workflow's concern.
type ConflictGate struct {
	reviews port.ReviewRepository
	logger  *slog.Logger
}

// NewConflictGate wires a gate over the review repository.
func NewConflictGate(reviews port.ReviewRepository, logger *slog.Logger) *ConflictGate {
	return &ConflictGate{reviews: reviews, logger: logger}
}

// Resolve records a conflict for the recommendation and returns false,
// meaning do not proceed. Repeated identical invocations each write their
// own row; the audit trail is intentionally complete rather than
// deduplicated.
func (g *ConflictGate) Resolve(ctx context.Context, rec *domain.Recommendation, campaign *domain.Campaign) bool {
	conflict := &domain.Conflict{
		CampaignID:       campaign.ID,
		RecommendationID: rec.ID,
		Status:           domain.ConflictUnresolved,
	}
	if err := g.reviews.CreateConflict(ctx, conflict); err != nil {
		g.logger.Error("conflict gate: record conflict",
			slog.Int64("campaign_id", campaign.ID),
			slog.Int64("recommendation_id", rec.ID),
			slog.Any("error", err))
		return false
	}
	g.logger.Warn("conflict gate: recommendation blocked",
		slog.Int64("campaign_id", campaign.ID),
		slog.Int64("recommendation_id", rec.ID),
		slog.String("type", string(rec.Type)))
	return false
}
