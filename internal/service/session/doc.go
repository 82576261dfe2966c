// Package session maintains the Spotify client-credentials token.
// A token moves through three states: absent, authenticating, and live.
// Concurrent callers asking for a token while one is being fetched share
// a single grant request instead of stampeding the accounts service,
// and a background timer renews the token before it expires.
package session
