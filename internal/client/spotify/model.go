package spotify

import "strings"

// Token represents an access token issued by the client-credentials grant.
type Token struct {
	// AccessToken is the opaque bearer token.
	AccessToken string `json:"access_token"`
	// TokenType is always "Bearer" for the client-credentials grant.
	TokenType string `json:"token_type"`
	// ExpiresInSeconds is the token lifetime reported by Spotify (typically 3600).
	ExpiresInSeconds int64 `json:"expires_in"`
}

// Artist represents a single artist entry on a track.
type Artist struct {
	// Name is the artist's display name.
	Name string `json:"name"`
}

// Track represents the track metadata returned by the tracks endpoint.
type Track struct {
	// ID is the Spotify track identifier.
	ID string `json:"id"`
	// Name is the track title.
	Name string `json:"name"`
	// Artists lists the artists credited on the track.
	Artists []Artist `json:"artists"`
	// DurationMs is the track duration in milliseconds.
	DurationMs int64 `json:"duration_ms"`
}

// ArtistNames returns all artist names joined by ", ",
// the form used for display and for the fallback search query.
func (t *Track) ArtistNames() string {
	names := make([]string, 0, len(t.Artists))
	for _, artist := range t.Artists {
		if artist.Name == "" {
			continue
		}

		names = append(names, artist.Name)
	}

	return strings.Join(names, ", ")
}
