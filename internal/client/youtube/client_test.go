package youtube

import (
	"context"
	"testing"

	yt "github.com/kkdai/youtube/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBestAudioFormat tests that the highest-bitrate audio-only format wins.
func TestBestAudioFormat(t *testing.T) {
	t.Parallel()

	video := &yt.Video{
		Formats: yt.FormatList{
			{ItagNo: 18, MimeType: `video/mp4; codecs="avc1.42001E, mp4a.40.2"`, Bitrate: 500000, AudioChannels: 2},
			{ItagNo: 249, MimeType: `audio/webm; codecs="opus"`, Bitrate: 60000, AudioChannels: 2},
			{ItagNo: 251, MimeType: `audio/webm; codecs="opus"`, Bitrate: 150000, AudioChannels: 2},
			{ItagNo: 140, MimeType: `audio/mp4; codecs="mp4a.40.2"`, Bitrate: 130000, AudioChannels: 2},
		},
	}

	format, err := bestAudioFormat(video)
	require.NoError(t, err)
	assert.Equal(t, 251, format.ItagNo)
}

// TestBestAudioFormat_NoAudio tests that a video without audio-only formats is rejected.
func TestBestAudioFormat_NoAudio(t *testing.T) {
	t.Parallel()

	video := &yt.Video{
		Formats: yt.FormatList{
			{ItagNo: 137, MimeType: `video/mp4; codecs="avc1.640028"`, Bitrate: 4000000},
		},
	}

	_, err := bestAudioFormat(video)
	require.ErrorIs(t, err, ErrNoAudioFormats)
}

// TestStreamAudio_NilInfo tests that streaming without resolved metadata is rejected.
func TestStreamAudio_NilInfo(t *testing.T) {
	t.Parallel()

	client := NewClient()

	_, _, err := client.StreamAudio(context.Background(), nil)
	require.ErrorIs(t, err, ErrNilVideoInfo)

	_, _, err = client.StreamAudio(context.Background(), &VideoInfo{Title: "detached"})
	require.ErrorIs(t, err, ErrNilVideoInfo)
}
