package stats

//go:generate $MOCKGEN -source=store.go -destination=mocks/store_mock.go

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/phasegym/tunegrab/internal/constants"
	"github.com/phasegym/tunegrab/internal/logger"
	"github.com/phasegym/tunegrab/internal/utils"
)

// Store defines the interface for recording and querying download statistics.
type Store interface {
	// UpdateUserSeen marks the user as active right now,
	// creating the record on first contact.
	UpdateUserSeen(ctx context.Context, userID int64)
	// RecordDownload appends one successful download to the user's
	// and the global counters.
	RecordDownload(ctx context.Context, userID int64, title, artist, platform string)
	// UserStats returns the user's lifetime summary.
	UserStats(userID int64) *UserStats
	// GlobalStats returns the bot-wide summary.
	GlobalStats() *GlobalStats
}

// StoreImpl implements the Store interface over a flat JSON file.
type StoreImpl struct {
	// filePath is where the stats document is persisted.
	filePath string
	// mu guards the document.
	mu sync.Mutex
	// doc is the in-memory state, flushed to disk after every mutation.
	doc *document
}

const (
	// popularTracksLimit is how many tracks the persisted ranking keeps.
	popularTracksLimit = 10
	// summaryTracksLimit is how many tracks the chat summaries show.
	summaryTracksLimit = 5
)

// NewStore creates a store backed by the given file,
// loading existing counters if the file is present.
// A corrupt file is replaced with a fresh document rather than
// taking the bot down over lost counters.
func NewStore(ctx context.Context, filePath string) (Store, error) {
	store := &StoreImpl{
		filePath: filePath,
		doc:      newDocument(),
	}

	data, err := os.ReadFile(filepath.Clean(filePath))

	switch {
	case err == nil:
		if unmarshalErr := json.Unmarshal(data, store.doc); unmarshalErr != nil {
			logger.Warnf(ctx, "Stats file %s is corrupt, starting fresh: %v", filePath, unmarshalErr)

			store.doc = newDocument()
		}
	case errors.Is(err, os.ErrNotExist):
		logger.Infof(ctx, "Stats file %s not found, starting fresh", filePath)
	default:
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}

	if err = store.persist(ctx); err != nil {
		return nil, err
	}

	return store, nil
}

// UpdateUserSeen marks the user as active right now.
func (s *StoreImpl) UpdateUserSeen(ctx context.Context, userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchUserLocked(userID)

	if err := s.persist(ctx); err != nil {
		logger.Errorf(ctx, "Failed to persist stats: %v", err)
	}
}

// RecordDownload appends one successful download.
func (s *StoreImpl) RecordDownload(ctx context.Context, userID int64, title, artist, platform string) {
	trackKey := utils.TrackKey(title, artist)
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.touchUserLocked(userID)
	user.Downloads++

	bumpTrack(user.DownloadedTracks, trackKey, title, artist, platform, now)
	bumpTrack(s.doc.Downloads, trackKey, title, artist, platform, now)

	s.doc.TotalDownloads++
	s.doc.PopularTracks = rankTracks(s.doc.Downloads, popularTracksLimit, true)

	if err := s.persist(ctx); err != nil {
		logger.Errorf(ctx, "Failed to persist stats: %v", err)
	}
}

// UserStats returns the user's lifetime summary with their top tracks.
func (s *StoreImpl) UserStats(userID int64) *UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.doc.Users[userKey(userID)]
	if !ok {
		return &UserStats{
			Downloads:     0,
			PopularTracks: []PopularTrack{},
		}
	}

	return &UserStats{
		Downloads:     user.Downloads,
		PopularTracks: rankTracks(user.DownloadedTracks, summaryTracksLimit, false),
	}
}

// GlobalStats returns the bot-wide summary.
func (s *StoreImpl) GlobalStats() *GlobalStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	popular := s.doc.PopularTracks
	if len(popular) > summaryTracksLimit {
		popular = popular[:summaryTracksLimit]
	}

	return &GlobalStats{
		TotalDownloads: s.doc.TotalDownloads,
		UserCount:      len(s.doc.Users),
		PopularTracks:  popular,
	}
}

// touchUserLocked returns the user's record,
// creating it on first contact and refreshing the last-seen time otherwise.
// Must be called with the mutex held.
func (s *StoreImpl) touchUserLocked(userID int64) *UserRecord {
	now := time.Now().UTC()
	key := userKey(userID)

	user, ok := s.doc.Users[key]
	if !ok {
		user = &UserRecord{
			FirstSeen:        now,
			LastSeen:         now,
			Downloads:        0,
			DownloadedTracks: make(map[string]*TrackRecord),
		}
		s.doc.Users[key] = user

		return user
	}

	user.LastSeen = now

	return user
}

// persist flushes the document to disk.
// Must be called with the mutex held (or before the store is shared).
func (s *StoreImpl) persist(_ context.Context) error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err = os.WriteFile(s.filePath, data, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}

	return nil
}

// userKey converts a chat user ID to the document's string key form.
func userKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// bumpTrack increments a track counter in place, creating it on first download.
func bumpTrack(tracks map[string]*TrackRecord, trackKey, title, artist, platform string, now time.Time) {
	record, ok := tracks[trackKey]
	if !ok {
		tracks[trackKey] = &TrackRecord{
			Count:        1,
			Title:        title,
			Artist:       artist,
			Platform:     platform,
			LastDownload: now,
		}

		return
	}

	record.Count++
	record.LastDownload = now
}

// rankTracks turns a counter map into a descending top-N list.
// Ties break alphabetically by key so the ranking is stable across runs.
func rankTracks(tracks map[string]*TrackRecord, limit int, includeKeys bool) []PopularTrack {
	ranked := make([]PopularTrack, 0, len(tracks))

	for key, record := range tracks {
		entry := PopularTrack{
			Title:    record.Title,
			Artist:   record.Artist,
			Count:    record.Count,
			Platform: record.Platform,
		}

		if includeKeys {
			entry.Key = key
		}

		ranked = append(ranked, entry)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}

		left := utils.TrackKey(ranked[i].Title, ranked[i].Artist)
		right := utils.TrackKey(ranked[j].Title, ranked[j].Artist)

		return left < right
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
