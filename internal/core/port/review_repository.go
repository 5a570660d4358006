package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// ReviewRepository persists recommendations and the conflict audit trail.
type ReviewRepository interface {
	// UpsertPendingRecommendation creates a pending recommendation or,
	// when a pending row for the same (campaign, type) already exists,
	// updates its params and rationale in place. The recommendation's ID
	// is populated on return.
	UpsertPendingRecommendation(ctx context.Context, rec *domain.Recommendation) error
	// GetRecommendation returns a recommendation by id, or nil when not
	// found.
	GetRecommendation(ctx context.Context, id int64) (*domain.Recommendation, error)
	// ListRecommendations returns the campaign's recommendations, newest
	// first.
	ListRecommendations(ctx context.Context, campaignID int64) ([]domain.Recommendation, error)
	// SetRecommendationStatus moves a recommendation through review.
	SetRecommendationStatus(ctx context.Context, id int64, status domain.RecommendationStatus) error
	// CreateConflict appends one conflict row. Repeated identical
	// conflicts each produce a new row.
	CreateConflict(ctx context.Context, conflict *domain.Conflict) error
	// ListConflicts returns the campaign's conflicts, newest first.
	ListConflicts(ctx context.Context, campaignID int64) ([]domain.Conflict, error)
}
