package port

import (
	"context"
)

// ResourceRef identifies a remote platform resource.
type ResourceRef struct {
	ID   string
	Name string
}

// ResourceSpec describes a resource to create on a platform. Kind selects
// the remote resource type (campaign, ad_group, ad); Attrs carries the
// platform-agnostic parameters the concrete client translates into its
// wire format.
type ResourceSpec struct {
	Kind  string
	Name  string
	Attrs map[string]any
}

// PlatformClient is the outbound port to one external ads platform. The
// wire protocol is the implementation's concern; errors it returns are
// *PlatformError values carrying the retryable discriminant.
type PlatformClient interface {
	// FindResourceByName looks up an existing resource under parentRef by
	// its deterministic name. It returns nil when no such resource exists;
	// deployment steps call it before creating anything so re-runs reuse
	// prior work instead of duplicating it.
	FindResourceByName(ctx context.Context, parentRef, kind, name string) (*ResourceRef, error)
	// CreateResource creates a resource under parentRef.
	CreateResource(ctx context.Context, parentRef string, spec ResourceSpec) (*ResourceRef, error)
	// UploadAsset uploads creative bytes to the account's asset library.
	UploadAsset(ctx context.Context, accountRef string, data []byte, name string) (*ResourceRef, error)
}
