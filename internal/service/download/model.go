package download

import "time"

// Platform identifies the service a track URL belongs to.
type Platform int

const (
	// PlatformUnknown means the URL matched no supported platform.
	PlatformUnknown Platform = iota
	// PlatformYouTube covers youtube.com and youtu.be links.
	PlatformYouTube
	// PlatformSoundCloud covers soundcloud.com links.
	PlatformSoundCloud
	// PlatformSpotify covers open.spotify.com links.
	PlatformSpotify
)

// String returns the human-readable platform name.
func (p Platform) String() string {
	switch p {
	case PlatformYouTube:
		return "YouTube"
	case PlatformSoundCloud:
		return "SoundCloud"
	case PlatformSpotify:
		return "Spotify"
	case PlatformUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// Result describes a successfully acquired track.
type Result struct {
	// LocalPath is where the downloaded audio file was staged.
	LocalPath string
	// FileSizeBytes is the size of the staged file.
	FileSizeBytes int64
	// Title is the track title to present and tag.
	Title string
	// Artist is the artist line to present and tag.
	Artist string
	// Duration is the track length.
	Duration time.Duration
	// Platform is the platform the original URL belonged to.
	Platform Platform
}
