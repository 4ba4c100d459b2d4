package configs

// AdPlatforms holds OAuth client identifiers of the ad platforms organizers
// can connect for campaign tracking.
type AdPlatforms struct {
	FacebookAppID  string `env:"FACEBOOK_APP_ID"`
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`
	TikTokAppID    string `env:"TIKTOK_APP_ID"`
}
