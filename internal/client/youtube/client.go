package youtube

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	yt "github.com/kkdai/youtube/v2"

	http_transport "github.com/phasegym/tunegrab/internal/transport/http"
	"github.com/phasegym/tunegrab/internal/utils"
)

// Client defines the interface for fetching video metadata and audio streams.
type Client interface {
	// GetVideoInfo resolves a watch URL to video metadata without transferring audio.
	GetVideoInfo(ctx context.Context, rawURL string) (*VideoInfo, error)
	// StreamAudio opens the best available audio-only stream for a previously resolved video.
	StreamAudio(ctx context.Context, info *VideoInfo) (io.ReadCloser, int64, error)
}

// VideoInfo holds the metadata needed to vet and label a download.
type VideoInfo struct {
	// Title is the video title, used as the track title.
	Title string
	// Author is the channel name, used as the artist when no better source exists.
	Author string
	// Duration is the video length.
	Duration time.Duration

	// video is the underlying resolved video, kept for the streaming step.
	video *yt.Video
}

// ClientImpl implements the Client interface on top of the YouTube download library.
type ClientImpl struct {
	// ytClient is the underlying YouTube library client.
	ytClient *yt.Client
}

// Static error definitions for better error handling.
var (
	// ErrNoAudioFormats indicates that the video exposes no audio-only formats.
	ErrNoAudioFormats = errors.New("no audio formats available")
	// ErrNilVideoInfo indicates that StreamAudio was called without a resolved video.
	ErrNilVideoInfo = errors.New("video info is nil")
)

// NewClient creates and returns a new instance of ClientImpl.
func NewClient() Client {
	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http.DefaultTransport,
			utils.NewSimpleUserAgentProvider(http_transport.DefaultUserAgent)),
	}

	return &ClientImpl{
		ytClient: &yt.Client{
			HTTPClient: httpClient,
		},
	}
}

// GetVideoInfo resolves a watch URL to video metadata without transferring audio.
func (c *ClientImpl) GetVideoInfo(ctx context.Context, rawURL string) (*VideoInfo, error) {
	video, err := c.ytClient.GetVideoContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve video: %w", err)
	}

	return &VideoInfo{
		Title:    video.Title,
		Author:   video.Author,
		Duration: video.Duration,
		video:    video,
	}, nil
}

// StreamAudio opens the best available audio-only stream for a previously resolved video.
// Returns the stream, its size in bytes, and an error.
// The caller owns the stream and must close it.
func (c *ClientImpl) StreamAudio(ctx context.Context, info *VideoInfo) (io.ReadCloser, int64, error) {
	if info == nil || info.video == nil {
		return nil, 0, ErrNilVideoInfo
	}

	format, err := bestAudioFormat(info.video)
	if err != nil {
		return nil, 0, err
	}

	stream, size, err := c.ytClient.GetStreamContext(ctx, info.video, format)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open audio stream: %w", err)
	}

	return stream, size, nil
}

// bestAudioFormat picks the audio-only format with the highest bitrate.
func bestAudioFormat(video *yt.Video) (*yt.Format, error) {
	formats := video.Formats.Type("audio").WithAudioChannels()
	if len(formats) == 0 {
		return nil, ErrNoAudioFormats
	}

	best := &formats[0]
	for i := range formats {
		if formats[i].Bitrate > best.Bitrate {
			best = &formats[i]
		}
	}

	return best, nil
}
