package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// The control-loop ports below all report their outcome as a bool so the
// scheduler and HTTP layer can record per-unit results without one
// failure aborting a batch. Failures are logged where they occur.

// Allocator redistributes a customer's total daily budget across their
// active campaigns, weighted by observed performance.
type Allocator interface {
	Allocate(ctx context.Context, customerID int64) bool
}

// Optimizer scans a customer's active campaigns and upserts pending
// recommendations for under- and over-performing ones.
type Optimizer interface {
	Scan(ctx context.Context, customerID int64) bool
}

// Orchestrator deploys every active strategy of a campaign to its
// platform.
type Orchestrator interface {
	DeployCampaign(ctx context.Context, campaignID int64) bool
}

// Deployer runs the platform-specific step sequence for one strategy.
// One implementation exists per channel type.
type Deployer interface {
	Deploy(ctx context.Context, campaign *domain.Campaign, strategy *domain.Strategy) bool
}

// ConflictGate decides whether a recommendation may be acted on against
// the campaign's live state. Every invocation writes a Conflict row.
type ConflictGate interface {
	Resolve(ctx context.Context, rec *domain.Recommendation, campaign *domain.Campaign) bool
}

// Rollbacker restores the most recent strategy generation of a campaign.
type Rollbacker interface {
	Rollback(ctx context.Context, campaignID int64) bool
}
