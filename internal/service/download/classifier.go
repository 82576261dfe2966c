package download

import (
	"net/url"
	"strings"
)

// platformHosts maps host fragments to platforms.
// Matching is done on the parsed host only, never on the full URL,
// so a path or query mentioning another platform cannot change the verdict.
//
//nolint:gochecknoglobals // This is immutable lookup data used during classification.
var platformHosts = []struct {
	fragment string
	platform Platform
}{
	{"youtube.com", PlatformYouTube},
	{"youtu.be", PlatformYouTube},
	{"soundcloud.com", PlatformSoundCloud},
	{"spotify.com", PlatformSpotify},
}

// DetectPlatform classifies a raw URL by its host.
// Anything that does not parse as an absolute http(s) URL,
// or whose host matches no known platform, is reported as unknown.
func DetectPlatform(rawURL string) Platform {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return PlatformUnknown
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return PlatformUnknown
	}

	for _, entry := range platformHosts {
		if strings.Contains(host, entry.fragment) {
			return entry.platform
		}
	}

	return PlatformUnknown
}
