package platform

import (
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Deployers builds the full channel-to-deployer registry. Adding a channel
// type without extending this map is caught by TestDeployersCoverAllChannels
// rather than surfacing as a runtime fallthrough during a deploy.
func Deployers(deps *Deps) map[domain.ChannelType]port.Deployer {
	return map[domain.ChannelType]port.Deployer{
		domain.ChannelGoogleDisplay:   NewGoogleDisplay(deps),
		domain.ChannelGoogleVideo:     NewGoogleVideo(deps),
		domain.ChannelFacebookDisplay: NewFacebookDisplay(deps),
		domain.ChannelFacebookVideo:   NewFacebookVideo(deps),
	}
}
