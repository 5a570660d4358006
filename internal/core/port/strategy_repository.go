package port

import (
	"context"
	"time"

	"adpilot/internal/core/domain"
)

// DeployStep names the checkpoint a deployment step's remote reference is
// persisted under.
type DeployStep string

const (
	StepCampaign DeployStep = "campaign"
	StepAdGroup  DeployStep = "ad_group"
	StepCreative DeployStep = "creative"
	StepAd       DeployStep = "ad"
)

// StrategyRepository is the persistence port for strategies and their
// immutable version history.
type StrategyRepository interface {
	// GetStrategy returns a strategy by id, or nil when not found.
	GetStrategy(ctx context.Context, id int64) (*domain.Strategy, error)
	// ListActiveStrategies returns the campaign's signed-off strategies.
	ListActiveStrategies(ctx context.Context, campaignID int64) ([]domain.Strategy, error)
	// SetStepRef persists the external identifier produced by one
	// deployment step. It is written before the next step runs so a crash
	// leaves a resumable checkpoint.
	SetStepRef(ctx context.Context, strategyID int64, step DeployStep, ref string) error
	// SnapshotActiveStrategies writes one StrategyVersion per active
	// strategy of the campaign, all sharing versionedAt, in a single
	// transaction.
	SnapshotActiveStrategies(ctx context.Context, campaignID int64, versionedAt time.Time) error
	// LatestGeneration returns the most recent versioned_at among the
	// campaign's strategy versions, or nil when the campaign has none.
	LatestGeneration(ctx context.Context, campaignID int64) (*time.Time, error)
	// RestoreGeneration deactivates every active strategy of the campaign
	// and re-creates active strategies from all versions stamped
	// versionedAt, atomically.
	RestoreGeneration(ctx context.Context, campaignID int64, versionedAt time.Time) error
}
