package configs

import "time"

// Breaker configures the per-platform circuit breaker. A platform trips
// open after MaxFailures retryable failures and rejects calls locally for
// Cooldown; individual failures age out after FailureTTL so sporadic
// errors never accumulate into a trip.
type Breaker struct {
	MaxFailures int           `env:"MAX_FAILURES" envDefault:"3"`
	Cooldown    time.Duration `env:"COOLDOWN" envDefault:"60s"`
	FailureTTL  time.Duration `env:"FAILURE_TTL" envDefault:"10m"`
}
