package domain

import "time"

// ConflictStatus tracks whether an operator has dealt with a conflict.
type ConflictStatus string

const (
	ConflictUnresolved ConflictStatus = "unresolved"
	ConflictResolved   ConflictStatus = "resolved"
)

// Conflict is the durable audit record written whenever the conflict gate
// blocks a recommendation against live campaign state. Conflicts are never
// resolved automatically; every gate invocation writes a new row so the
// trail is complete even for repeated identical collisions.
type Conflict struct {
	ID               int64
	CampaignID       int64
	RecommendationID int64
	Status           ConflictStatus
	CreatedAt        time.Time
}
