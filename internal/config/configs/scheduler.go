package configs

import "time"

// Scheduler configures the background control loop. Every Interval the
// scheduler fans out one allocation and one optimization unit per
// customer, at most Concurrency units in flight at once.
type Scheduler struct {
	// Enabled turns the background loop on. The HTTP endpoints work
	// either way; disabling is useful for one-off operational runs.
	Enabled     bool          `env:"ENABLED" envDefault:"true"`
	Interval    time.Duration `env:"INTERVAL" envDefault:"15m"`
	Concurrency int           `env:"CONCURRENCY" envDefault:"4"`
}
