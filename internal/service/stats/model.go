package stats

import "time"

// TrackRecord aggregates downloads of a single track.
type TrackRecord struct {
	// Count is how many times the track was downloaded.
	Count int64 `json:"count"`
	// Title is the track title as last seen.
	Title string `json:"title"`
	// Artist is the artist line as last seen.
	Artist string `json:"artist"`
	// Platform is the platform the track was last downloaded from.
	Platform string `json:"platform"`
	// LastDownload is when the track was last downloaded.
	LastDownload time.Time `json:"last_download"`
}

// UserRecord aggregates one user's activity.
type UserRecord struct {
	// FirstSeen is when the user first talked to the bot.
	FirstSeen time.Time `json:"first_seen"`
	// LastSeen is when the user last talked to the bot.
	LastSeen time.Time `json:"last_seen"`
	// Downloads is the user's lifetime download count.
	Downloads int64 `json:"downloads"`
	// DownloadedTracks maps normalized track keys to the user's own counts.
	DownloadedTracks map[string]*TrackRecord `json:"downloaded_tracks"`
}

// PopularTrack is one entry in a popularity ranking.
type PopularTrack struct {
	// Key is the normalized "artist - title" aggregation key.
	Key string `json:"key,omitempty"`
	// Title is the track title.
	Title string `json:"title"`
	// Artist is the artist line.
	Artist string `json:"artist"`
	// Count is the download count backing the ranking.
	Count int64 `json:"count"`
	// Platform is the platform the track was last downloaded from.
	Platform string `json:"platform"`
}

// UserStats is the per-user summary served to the chat layer.
type UserStats struct {
	// Downloads is the user's lifetime download count.
	Downloads int64
	// PopularTracks are the user's most downloaded tracks.
	PopularTracks []PopularTrack
}

// GlobalStats is the bot-wide summary served to the chat layer.
type GlobalStats struct {
	// TotalDownloads is the all-time download count.
	TotalDownloads int64
	// UserCount is how many distinct users the bot has seen.
	UserCount int
	// PopularTracks are the most downloaded tracks across all users.
	PopularTracks []PopularTrack
}

// document is the on-disk layout of the stats file.
type document struct {
	// Users maps user IDs to their activity records.
	Users map[string]*UserRecord `json:"users"`
	// Downloads maps normalized track keys to global counts.
	Downloads map[string]*TrackRecord `json:"downloads"`
	// PopularTracks is the persisted top-N ranking, refreshed on every record.
	PopularTracks []PopularTrack `json:"popular_tracks"`
	// TotalDownloads is the all-time download count.
	TotalDownloads int64 `json:"total_downloads"`
}

// newDocument returns an empty stats layout.
func newDocument() *document {
	return &document{
		Users:          make(map[string]*UserRecord),
		Downloads:      make(map[string]*TrackRecord),
		PopularTracks:  []PopularTrack{},
		TotalDownloads: 0,
	}
}
