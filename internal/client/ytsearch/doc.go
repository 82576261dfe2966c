// Package ytsearch resolves free-text queries to YouTube watch URLs
// by scraping the public results page.
// It exists for tracks that arrive as metadata only (e.g., Spotify links),
// where the audio has to be located on YouTube before it can be downloaded.
// Successful lookups are cached because popular tracks repeat often.
package ytsearch
