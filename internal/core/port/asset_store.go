package port

import "context"

// AssetStore reads creative assets referenced by strategies. Paths are
// object keys in whatever bucket the deployment is configured with.
type AssetStore interface {
	// GetObject returns the asset bytes at path.
	GetObject(ctx context.Context, path string) ([]byte, error)
	// URLFor returns a time-limited URL for the asset at path.
	URLFor(ctx context.Context, path string) (string, error)
}
