package download

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/phasegym/tunegrab/internal/constants"
	"github.com/phasegym/tunegrab/internal/logger"
	"github.com/phasegym/tunegrab/internal/utils"
)

// acquireYouTube downloads the best audio-only encoding of a YouTube video.
// The duration ceiling is enforced before any bytes are transferred,
// the size ceiling after the file is on disk.
func (s *ServiceImpl) acquireYouTube(ctx context.Context, rawURL string) (*Result, error) {
	info, err := s.youtubeClient.GetVideoInfo(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video metadata: %w", err)
	}

	if info.Duration > s.cfg.ParsedMaxDuration {
		return nil, fmt.Errorf("%w: %s exceeds the %s limit",
			ErrTooLong,
			utils.FormatTrackDuration(info.Duration),
			utils.FormatTrackDuration(s.cfg.ParsedMaxDuration))
	}

	stream, reportedSize, err := s.youtubeClient.StreamAudio(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio stream: %w", err)
	}

	defer stream.Close() //nolint:errcheck // Error on close is not critical here.

	// A size reported up front lets the download be refused
	// before a single byte hits the disk.
	if reportedSize > s.cfg.ParsedMaxFileSize {
		return nil, s.tooLargeError(reportedSize)
	}

	trackPath := s.newTempFilePath()

	fileSize, err := s.writeStream(trackPath, stream)
	if err != nil {
		s.removeTempFile(ctx, trackPath)

		return nil, fmt.Errorf("failed to write audio stream: %w", err)
	}

	if fileSize > s.cfg.ParsedMaxFileSize {
		s.removeTempFile(ctx, trackPath)

		return nil, s.tooLargeError(fileSize)
	}

	result := &Result{
		LocalPath:     trackPath,
		FileSizeBytes: fileSize,
		Title:         orDefault(info.Title, utils.DefaultTrackTitle),
		Artist:        orDefault(info.Author, utils.DefaultTrackArtist),
		Duration:      info.Duration,
		Platform:      PlatformYouTube,
	}

	// Tagging is best-effort, an untagged file is still worth sending.
	tagErr := s.tagProcessor.WriteTags(ctx, &WriteTagsRequest{
		TrackPath: trackPath,
		Title:     result.Title,
		Artist:    result.Artist,
	})
	if tagErr != nil {
		logger.Warnf(ctx, "Failed to tag %s: %v", trackPath, tagErr)
	}

	return result, nil
}

// writeStream stages the stream into a freshly created file and returns its size.
func (s *ServiceImpl) writeStream(trackPath string, stream io.Reader) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(trackPath), constants.DefaultFolderPermissions); err != nil {
		return 0, err
	}

	file, err := os.OpenFile(filepath.Clean(trackPath),
		os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.DefaultFilePermissions)
	if err != nil {
		return 0, err
	}

	written, err := io.Copy(file, stream)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return 0, err
	}

	return written, nil
}

func (s *ServiceImpl) tooLargeError(size int64) error {
	return fmt.Errorf("%w: %s exceeds the %s limit",
		ErrTooLarge,
		humanize.IBytes(uint64(size)),              //nolint:gosec // Size is non-negative here.
		humanize.IBytes(uint64(s.cfg.ParsedMaxFileSize))) //nolint:gosec // Validated to be positive.
}

// orDefault substitutes a fallback for empty display strings.
func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}
