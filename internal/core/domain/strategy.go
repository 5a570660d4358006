package domain

import "time"

// Strategy is one platform-specific configuration of a campaign: ad copy,
// creative asset, bidding parameters and the external resource references
// recorded step by step during deployment. A strategy is active while
// SignedOffAt is set; clearing the timestamp deactivates it. At most one
// active strategy exists per (campaign, platform).
type Strategy struct {
	ID          int64
	CampaignID  int64
	Platform    Platform
	Headline    string
	Description string
	AssetPath   string
	Targeting   Targeting
	CPATarget   int64 // target cost per acquisition, integer units
	BidAmount   int64

	// Remote references persisted immediately after each successful
	// deployment step so a failed deploy resumes from its checkpoint.
	RemoteCampaignRef *string
	RemoteAdGroupRef  *string
	RemoteCreativeRef *string
	RemoteAdRef       *string

	SignedOffAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive reports whether the strategy is the live configuration for its
// (campaign, platform) pair.
func (s *Strategy) IsActive() bool {
	return s.SignedOffAt != nil
}

// StrategyVersion is an immutable snapshot of a strategy taken whenever an
// active strategy is superseded. All versions of one campaign sharing the
// same VersionedAt timestamp form one generation, restored together on
// rollback. Remote references are part of the snapshot so a restored
// strategy resumes from its deployment checkpoints instead of recreating
// remote resources.
type StrategyVersion struct {
	ID          int64
	StrategyID  int64
	CampaignID  int64
	Platform    Platform
	Headline    string
	Description string
	AssetPath   string
	Targeting   Targeting
	CPATarget   int64
	BidAmount   int64

	RemoteCampaignRef *string
	RemoteAdGroupRef  *string
	RemoteCreativeRef *string
	RemoteAdRef       *string

	VersionedAt time.Time
	CreatedAt   time.Time
}
