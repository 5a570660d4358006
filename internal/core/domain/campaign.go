package domain

import "time"

// CampaignStatus enumerates the lifecycle states of a campaign.
type CampaignStatus string

const (
	CampaignDraft   CampaignStatus = "draft"
	CampaignActive  CampaignStatus = "active"
	CampaignPaused  CampaignStatus = "paused"
	CampaignRemoved CampaignStatus = "removed"
)

// Campaign represents an advertising campaign managed by the control loop.
// Budgets are stored in integer units (e.g. cents). Per-platform external
// campaign references are filled in incrementally by deployment and stay
// set for as long as the remote resources exist; a campaign carrying any
// external reference is never hard-deleted.
type Campaign struct {
	ID                  int64
	CustomerID          int64
	Name                string
	Channel             ChannelType
	DailyBudget         int64
	TotalBudget         int64
	Status              CampaignStatus
	GoogleCampaignRef   *string
	FacebookCampaignRef *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsActive reports whether the campaign participates in budget allocation
// and portfolio optimization.
func (c *Campaign) IsActive() bool {
	return c.Status == CampaignActive
}
