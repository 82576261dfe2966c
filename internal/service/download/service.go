package download

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/phasegym/tunegrab/internal/client/spotify"
	"github.com/phasegym/tunegrab/internal/client/youtube"
	"github.com/phasegym/tunegrab/internal/client/ytsearch"
	"github.com/phasegym/tunegrab/internal/config"
	"github.com/phasegym/tunegrab/internal/constants"
	"github.com/phasegym/tunegrab/internal/logger"
	"github.com/phasegym/tunegrab/internal/service/session"
)

// Service defines the interface for acquiring a track from a pasted URL.
type Service interface {
	// Acquire classifies the URL, downloads the audio,
	// and returns the staged file with its metadata.
	Acquire(ctx context.Context, rawURL string) (*Result, error)
}

// ServiceImpl implements the Service interface.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// youtubeClient fetches video metadata and audio streams.
	youtubeClient youtube.Client
	// searchClient resolves free-text queries to watch URLs.
	searchClient ytsearch.Client
	// spotifyClient fetches Spotify track metadata.
	spotifyClient spotify.Client
	// sessionManager holds the Spotify access token.
	// A nil manager means Spotify support is disabled.
	sessionManager session.Manager
	// tagProcessor writes metadata tags to downloaded files.
	tagProcessor TagProcessor
}

// NewService creates and returns a new instance of ServiceImpl.
func NewService(
	cfg *config.Config,
	youtubeClient youtube.Client,
	searchClient ytsearch.Client,
	spotifyClient spotify.Client,
	sessionManager session.Manager,
	tagProcessor TagProcessor,
) Service {
	return &ServiceImpl{
		cfg:            cfg,
		youtubeClient:  youtubeClient,
		searchClient:   searchClient,
		spotifyClient:  spotifyClient,
		sessionManager: sessionManager,
		tagProcessor:   tagProcessor,
	}
}

// Acquire classifies the URL, routes it to the matching acquirer,
// and maps failures onto the sentinel error set.
func (s *ServiceImpl) Acquire(ctx context.Context, rawURL string) (*Result, error) {
	platform := DetectPlatform(rawURL)

	logger.Infof(ctx, "Acquiring track, platform: %s, URL: %s", platform, rawURL)

	var (
		result *Result
		err    error
	)

	switch platform {
	case PlatformYouTube:
		result, err = s.acquireYouTube(ctx, rawURL)
	case PlatformSoundCloud:
		result, err = s.acquireSoundCloud(ctx, rawURL)
	case PlatformSpotify:
		result, err = s.acquireSpotify(ctx, rawURL)
	case PlatformUnknown:
		return nil, ErrUnsupportedPlatform
	default:
		return nil, ErrUnsupportedPlatform
	}

	if err != nil {
		return nil, s.mapAcquireError(ctx, platform, err)
	}

	logger.Infof(ctx, "Acquired '%s - %s' (%d bytes) from %s",
		result.Artist, result.Title, result.FileSizeBytes, result.Platform)

	return result, nil
}

// mapAcquireError passes the user-meaningful sentinels through verbatim
// and collapses everything else to the generic download failure,
// logging the detail so it is not lost.
func (s *ServiceImpl) mapAcquireError(ctx context.Context, platform Platform, err error) error {
	switch {
	case errors.Is(err, ErrTooLong),
		errors.Is(err, ErrTooLarge),
		errors.Is(err, ErrSpotifyUnavailable),
		errors.Is(err, ErrUnsupportedPlatform):
		return err
	default:
		logger.Errorf(ctx, "Acquisition via %s failed: %v", platform, err)

		return ErrDownloadFailed
	}
}

// newTempFilePath returns a unique file path under the configured temp directory.
// Uniqueness matters because concurrent requests download into the same directory.
func (s *ServiceImpl) newTempFilePath() string {
	return filepath.Join(s.cfg.TempDir, uuid.NewString()+constants.ExtensionMP3)
}

// removeTempFile deletes a staged file, logging any unexpected failure.
func (s *ServiceImpl) removeTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warnf(ctx, "Failed to remove temporary file %s: %v", path, err)
	}
}
