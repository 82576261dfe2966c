package download

import "errors"

// Static error definitions for better error handling.
// These are the only errors Acquire returns,
// so callers can map each one to a user-facing message.
var (
	// ErrUnsupportedPlatform indicates that the URL does not belong to a known platform.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrTooLong indicates that the track exceeds the configured duration limit.
	ErrTooLong = errors.New("track is too long")
	// ErrTooLarge indicates that the downloaded file exceeds the configured size limit.
	ErrTooLarge = errors.New("file is too large")
	// ErrSpotifyUnavailable indicates that Spotify lookups cannot be served right now.
	ErrSpotifyUnavailable = errors.New("spotify is unavailable")
	// ErrDownloadFailed is the catch-all for any other acquisition failure.
	ErrDownloadFailed = errors.New("download failed")
)
