package domain

import "fmt"

// Platform names an external advertising network. It keys circuit breaker
// state and selects which linked account reference a deployment needs.
type Platform string

const (
	PlatformGoogle   Platform = "google"
	PlatformFacebook Platform = "facebook"
)

// ChannelType is the closed set of supported campaign placements. Each
// variant maps to exactly one deployment step sequence; dispatch over the
// set is exhaustive and an unknown value is rejected up front rather than
// falling through at call time.
type ChannelType string

const (
	ChannelGoogleDisplay   ChannelType = "google_display"
	ChannelGoogleVideo     ChannelType = "google_video"
	ChannelFacebookDisplay ChannelType = "facebook_display"
	ChannelFacebookVideo   ChannelType = "facebook_video"
)

// Platform returns the network a channel deploys to.
func (c ChannelType) Platform() (Platform, error) {
	switch c {
	case ChannelGoogleDisplay, ChannelGoogleVideo:
		return PlatformGoogle, nil
	case ChannelFacebookDisplay, ChannelFacebookVideo:
		return PlatformFacebook, nil
	default:
		return "", fmt.Errorf("unsupported channel type %q", string(c))
	}
}

// Valid reports whether c is one of the supported channel types.
func (c ChannelType) Valid() bool {
	_, err := c.Platform()
	return err == nil
}
