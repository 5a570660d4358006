package configs

import "time"

// PlatformEndpoint configures one external ads platform gateway. Timeout
// bounds every call; giving up across a burst of failures is the circuit
// breaker's job, not the client's.
type PlatformEndpoint struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:9080"`
	APIKey  string        `env:"API_KEY"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
