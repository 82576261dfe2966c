// Package spotify provides a Go client for the parts of the Spotify Web API
// the bot relies on: the client-credentials token grant, track metadata lookup,
// and a lightweight token freshness probe.
// Spotify exposes no downloadable audio, so the client deals in metadata only.
// Track lookups are cached to avoid redundant API calls for popular tracks,
// and all HTTP traffic goes through the shared logging/user-agent transport.
package spotify
