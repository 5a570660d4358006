package port

import (
	"errors"
	"fmt"

	"adpilot/internal/core/domain"
)

var (
	// ErrNoActiveCampaigns is returned when an allocation or scan finds
	// nothing to work on.
	ErrNoActiveCampaigns = errors.New("no active campaigns")

	// ErrBudgetFloorExceeded is returned when the per-campaign budget floor
	// would consume more than the total daily budget.
	ErrBudgetFloorExceeded = errors.New("budget floor exceeds total budget")

	// ErrNothingToRollback is returned when a campaign has no strategy
	// versions to restore.
	ErrNothingToRollback = errors.New("no strategy versions to roll back to")

	// ErrBreakerOpen is returned when a platform's circuit breaker rejects
	// a call locally instead of hitting a known-failing dependency.
	ErrBreakerOpen = errors.New("circuit breaker open")
)

// PlatformError is a typed failure from an external ads platform. The
// Retryable discriminant is the platform client's judgement: rate limits
// and transient faults are retryable, policy rejections and invalid specs
// are not. Callers branch on the value instead of inspecting wire formats.
type PlatformError struct {
	Platform  domain.Platform
	Code      string
	Message   string
	Retryable bool
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform %s: %s (%s)", e.Platform, e.Message, e.Code)
}

// IsRetryablePlatformError reports whether err is a PlatformError marked
// retryable. Only retryable errors feed circuit breaker failure counts.
func IsRetryablePlatformError(err error) bool {
	var pe *PlatformError
	return errors.As(err, &pe) && pe.Retryable
}
