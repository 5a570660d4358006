package domain

import (
	"encoding/json"
	"time"
)

// RecommendationType enumerates the mutations the optimizer may propose.
type RecommendationType string

const (
	RecommendPauseCampaign  RecommendationType = "PAUSE_CAMPAIGN"
	RecommendIncreaseBudget RecommendationType = "INCREASE_BUDGET"
)

// RecommendationStatus tracks a recommendation through review.
type RecommendationStatus string

const (
	RecommendationPending  RecommendationStatus = "pending"
	RecommendationApproved RecommendationStatus = "approved"
	RecommendationRejected RecommendationStatus = "rejected"
	RecommendationApplied  RecommendationStatus = "applied"
)

// Recommendation is a proposed campaign mutation produced by the portfolio
// optimizer. Recommendations are advisory: nothing applies them
// automatically, and application must pass the conflict gate first. At most
// one pending recommendation exists per (campaign, type); re-running the
// optimizer updates the pending row in place.
type Recommendation struct {
	ID               int64
	CampaignID       int64
	Type             RecommendationType
	Params           json.RawMessage
	Rationale        string
	RequiresApproval bool
	Status           RecommendationStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
