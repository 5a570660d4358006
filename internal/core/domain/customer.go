package domain

import "time"

// Customer owns campaigns and carries the linked external account
// identities required before any deployment may touch a platform.
// TotalDailyBudget is the amount the allocator redistributes across the
// customer's active campaigns, in integer units.
type Customer struct {
	ID                 int64
	Name               string
	TotalDailyBudget   int64
	GoogleAccountRef   *string
	FacebookAccountRef *string
	FacebookPageRef    *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AccountRef returns the linked account identifier for the given platform,
// or nil when the customer has not linked that platform.
func (c *Customer) AccountRef(p Platform) *string {
	switch p {
	case PlatformGoogle:
		return c.GoogleAccountRef
	case PlatformFacebook:
		return c.FacebookAccountRef
	default:
		return nil
	}
}
