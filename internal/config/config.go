package config

import (
	"github.com/caarlos0/env/v11"

	"adpilot/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Optimizer configures ROAS thresholds and budget weighting.
	Optimizer configs.Optimizer `envPrefix:"OPTIMIZER_"`

	// Breaker configures the per-platform circuit breaker.
	Breaker configs.Breaker `envPrefix:"BREAKER_"`

	// Scheduler configures the control-loop worker pool.
	Scheduler configs.Scheduler `envPrefix:"SCHEDULER_"`

	// Assets configures the S3 bucket holding creative assets.
	Assets configs.Assets `envPrefix:"ASSETS_"`

	// Google configures the Google ads platform endpoint.
	Google configs.PlatformEndpoint `envPrefix:"GOOGLE_"`

	// Facebook configures the Facebook ads platform endpoint.
	Facebook configs.PlatformEndpoint `envPrefix:"FACEBOOK_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
