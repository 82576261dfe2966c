package download

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/phasegym/tunegrab/internal/client/spotify"
	"github.com/phasegym/tunegrab/internal/utils"
)

// ErrNoTrackID indicates that no track identifier could be extracted from the URL.
var ErrNoTrackID = errors.New("no track identifier in URL")

// acquireSpotify is a metadata-driven redirect into the YouTube acquirer.
// Spotify exposes no downloadable audio, so the track's title and artists
// are used to locate the same recording on YouTube, and the downloaded
// result is relabeled with the Spotify identity.
func (s *ServiceImpl) acquireSpotify(ctx context.Context, rawURL string) (*Result, error) {
	if s.sessionManager == nil {
		return nil, fmt.Errorf("%w: credentials are not configured", ErrSpotifyUnavailable)
	}

	accessToken, err := s.sessionManager.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpotifyUnavailable, err) //nolint:errorlint // The sentinel must be the match target.
	}

	trackID, err := extractTrackID(rawURL)
	if err != nil {
		return nil, err
	}

	track, err := s.spotifyClient.GetTrack(ctx, accessToken, trackID)
	if err != nil {
		if errors.Is(err, spotify.ErrTokenRejected) {
			// The token went stale between renewal and use.
			// Drop it so the next request authenticates from scratch.
			s.sessionManager.Invalidate()

			return nil, fmt.Errorf("%w: access token rejected", ErrSpotifyUnavailable)
		}

		return nil, fmt.Errorf("failed to resolve track metadata: %w", err)
	}

	title := orDefault(track.Name, utils.DefaultTrackTitle)
	artist := orDefault(track.ArtistNames(), utils.DefaultTrackArtist)

	query := fmt.Sprintf("%s - %s audio", artist, title)

	watchURL, err := s.searchClient.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to find a playable match: %w", err)
	}

	result, err := s.acquireYouTube(ctx, watchURL)
	if err != nil {
		// TooLong and TooLarge pass through untouched.
		return nil, err
	}

	// The audio is YouTube content, but the displayed identity is the Spotify track's.
	result.Title = title
	result.Artist = artist
	result.Platform = PlatformSpotify

	if track.DurationMs > 0 {
		result.Duration = time.Duration(track.DurationMs) * time.Millisecond
	}

	// Retag with the Spotify identity. Unlike the best-effort tagging in the
	// YouTube step, a failure here would hand the caller a mislabeled file,
	// so the staged file is removed and the acquisition fails.
	err = s.tagProcessor.WriteTags(ctx, &WriteTagsRequest{
		TrackPath: result.LocalPath,
		Title:     result.Title,
		Artist:    result.Artist,
	})
	if err != nil {
		s.removeTempFile(ctx, result.LocalPath)

		return nil, fmt.Errorf("failed to relabel downloaded track: %w", err)
	}

	return result, nil
}

// extractTrackID pulls the track identifier out of an open.spotify.com track URL.
// The identifier is the last path segment, with any query or fragment stripped.
func extractTrackID(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	trimmedPath := strings.Trim(parsed.Path, "/")
	if trimmedPath == "" {
		return "", fmt.Errorf("%w: %s", ErrNoTrackID, rawURL)
	}

	segments := strings.Split(trimmedPath, "/")

	trackID := segments[len(segments)-1]
	if trackID == "" {
		return "", fmt.Errorf("%w: %s", ErrNoTrackID, rawURL)
	}

	return trackID, nil
}
