// Package youtube wraps the YouTube download library behind a small interface
// split into two steps: metadata lookup first, byte streaming second.
// The split lets callers reject a track by duration before a single
// audio byte is transferred.
package youtube
