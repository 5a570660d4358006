package configs

import "time"

// Assets configures the S3 bucket creative assets are read from. Endpoint
// overrides the AWS endpoint for local development (e.g. MinIO) and
// switches the client to path-style addressing.
type Assets struct {
	Bucket   string        `env:"BUCKET" envDefault:"adpilot-assets"`
	Region   string        `env:"REGION" envDefault:"us-east-1"`
	Endpoint string        `env:"ENDPOINT"`
	URLTTL   time.Duration `env:"URL_TTL" envDefault:"15m"`
}
