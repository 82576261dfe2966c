package utils

import (
	"fmt"
	"math"
	"mime"
	"regexp"
	"strings"
	"time"
)

// textContentTypePatterns is a slice of regular expressions that match content types
// considered to be text-based. This includes "text/*", "application/json", and
// "application/xml".
//
//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var textContentTypePatterns = []*regexp.Regexp{
	regexp.MustCompile("^text/.+"),
	regexp.MustCompile("^application/json$"),
	regexp.MustCompile(`^application/xml$`),
}

const (
	// DefaultTrackTitle is the sentinel shown when a track has no usable title.
	DefaultTrackTitle = "Untitled"
	// DefaultTrackArtist is the sentinel shown when a track has no usable artist.
	DefaultTrackArtist = "Unknown"
)

// SafeUint64ToInt64 converts a uint64 value to an int64 safely,
// ensuring that the value does not exceed the maximum limit of int64.
func SafeUint64ToInt64(val uint64) int64 {
	if val > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(val)
}

// FormatTrackDuration formats a track duration as M:SS, the way music players display it.
func FormatTrackDuration(d time.Duration) string {
	totalSeconds := int64(d.Seconds())
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// TrackKey builds a normalized "artist - title" key used to aggregate download counts.
// Missing values fall back to the "Unknown"/"Untitled" sentinels.
func TrackKey(title, artist string) string {
	if artist == "" {
		artist = DefaultTrackArtist
	}

	if title == "" {
		title = DefaultTrackTitle
	}

	return strings.ToLower(artist + " - " + title)
}

// ExtractNamedGroup extracts the value of a named capturing group from a regex match.
// It returns an empty string if the group is not found or if there is no match.
func ExtractNamedGroup(re *regexp.Regexp, groupName, input string) string {
	match := re.FindStringSubmatch(input)
	if match == nil {
		return ""
	}

	// Map group names to their corresponding values.
	for i, name := range re.SubexpNames() {
		if name == groupName {
			return match[i]
		}
	}

	return ""
}

// IsTextContentType checks if the given content type represents a text-based format.
// It supports common text content types like "text/*", "application/json", and "application/xml".
// It also checks that the charset, if present, is either "utf-8" or "us-ascii".
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}
