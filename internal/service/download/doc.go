// Package download turns a pasted track URL into a tagged local audio file.
//
// A URL is first classified by platform, then routed to the matching
// acquirer. YouTube links are downloaded directly. Spotify links carry no
// audio, so their metadata is used to find the same track on YouTube and the
// result is relabeled with the Spotify title and artists. SoundCloud links
// are recognized but not yet downloadable.
//
// Every rejection surfaces as one of a small set of sentinel errors so the
// chat layer can pick a user-facing message without inspecting internals.
// Temporary files are removed on every failure path.
package download
