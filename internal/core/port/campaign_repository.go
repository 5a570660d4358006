package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// CampaignRepository is the persistence port for customers and campaigns.
// Implementations must be concurrency-safe; budget mutations that span
// several campaigns must be atomic.
type CampaignRepository interface {
	// GetCustomer returns a customer by id, or nil when not found.
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	// ListCustomerIDs returns all customer ids, used by the scheduler to
	// fan out per-customer control-loop units.
	ListCustomerIDs(ctx context.Context) ([]int64, error)
	// GetCampaign returns a campaign by id, or nil when not found.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListActiveCampaigns returns the customer's campaigns with status
	// active, the population for allocation and optimization.
	ListActiveCampaigns(ctx context.Context, customerID int64) ([]domain.Campaign, error)
	// ApplyDailyBudgets persists new daily budgets for several campaigns
	// inside a single transaction.
	ApplyDailyBudgets(ctx context.Context, budgets map[int64]int64) error
	// SetPlatformCampaignRef records the external campaign identifier a
	// deployment step produced for the given platform.
	SetPlatformCampaignRef(ctx context.Context, campaignID int64, platform domain.Platform, ref string) error
}
