package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/phasegym/tunegrab/internal/service/download"
	"github.com/phasegym/tunegrab/internal/service/stats"
	"github.com/phasegym/tunegrab/internal/utils"
)

// User-facing message templates.
const (
	msgWelcome = `Hi, %s! 👋

I'm your assistant for downloading music from the internet! 🎵

Just send me a track link from YouTube, SoundCloud or Spotify, and I'll send you the audio file.

Use /help for more information.`

	msgHelp = `📋 *How to use this bot*

This bot downloads music from popular platforms.

*Supported platforms:*
• YouTube
• SoundCloud
• Spotify

*How it works:*
1. Copy a track link from one of the supported platforms
2. Send the link to the bot
3. Wait for the download and receive the audio file

*Limits:*
• Maximum track duration: %s
• Maximum file size: %s

*Available commands:*
/start - Start working with the bot
/help - Show this help
/about - About the bot
/stats - Your download statistics

Enjoy! 🎵`

	msgAbout = `ℹ️ *About this bot*

This bot was built for convenient music downloads from popular platforms.

*Features:*
• Audio downloads from YouTube
• Track downloads from SoundCloud
• Music downloads from Spotify

*Technical details:*
Built with Go and the Telegram Bot API.

Thanks for using the bot! 🎵`

	msgFetchingInfo = `🔄 Fetching track info...

Platform: %s`

	msgDownloading = `🔄 Downloading the track from %s... This can take a while.`

	msgSearchingSpotify = `🔄 Looking the track up from Spotify... This can take a while.`

	msgDownloaded = `✅ Track downloaded! Sending the file...

Title: %s
Artist: %s
Duration: %s
Size: %s`

	msgAudioCaption = `🎵 %s - %s`

	msgInvalidURL = `❌ That doesn't look like a valid link. Send a track URL from YouTube, SoundCloud or Spotify.`

	msgUnsupportedPlatform = `❌ This platform is not supported. Send a link from YouTube, SoundCloud or Spotify.`

	msgTooLong = `❌ This track is too long. Try something shorter.`

	msgTooLarge = `❌ The audio file is too large to send over Telegram. Try a shorter track.`

	msgSpotifyUnavailable = `❌ Spotify downloads are unavailable right now. Try again later or send a YouTube link instead.`

	msgDownloadFailed = `❌ Couldn't download the track. Check the link and try again.`
)

// errorMessage maps a download failure onto its user-facing text.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, download.ErrUnsupportedPlatform):
		return msgUnsupportedPlatform
	case errors.Is(err, download.ErrTooLong):
		return msgTooLong
	case errors.Is(err, download.ErrTooLarge):
		return msgTooLarge
	case errors.Is(err, download.ErrSpotifyUnavailable):
		return msgSpotifyUnavailable
	default:
		return msgDownloadFailed
	}
}

// statsMessage renders the /stats reply from the user's and the global summaries.
func statsMessage(userStats *stats.UserStats, globalStats *stats.GlobalStats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 *Your download statistics:*\n\nTotal downloads: %d\n\n", userStats.Downloads)

	if len(userStats.PopularTracks) > 0 {
		b.WriteString("*Your most downloaded tracks:*\n")
		writeTrackRanking(&b, userStats.PopularTracks)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "*Global statistics:*\nTotal downloads: %d\nUsers: %d\n\n*Popular tracks:*\n",
		globalStats.TotalDownloads, globalStats.UserCount)

	if len(globalStats.PopularTracks) > 0 {
		writeTrackRanking(&b, globalStats.PopularTracks)
	} else {
		b.WriteString("No data yet\n")
	}

	return b.String()
}

func writeTrackRanking(b *strings.Builder, tracks []stats.PopularTrack) {
	for i, track := range tracks {
		fmt.Fprintf(b, "%d. %s - %s (%d times)\n", i+1, track.Artist, track.Title, track.Count)
	}
}

// downloadedMessage renders the success notice shown while the file uploads.
func downloadedMessage(result *download.Result) string {
	return fmt.Sprintf(msgDownloaded,
		result.Title,
		result.Artist,
		utils.FormatTrackDuration(result.Duration),
		humanize.IBytes(uint64(result.FileSizeBytes))) //nolint:gosec // Size is non-negative here.
}
