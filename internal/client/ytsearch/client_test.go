package ytsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSearch tests resolving a query to a watch URL and caching the result.
func TestSearch(t *testing.T) {
	t.Parallel()

	var requestCount int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++

		assert.Equal(t, "/results", r.URL.Path)
		assert.Equal(t, "test artist - test song audio", r.URL.Query().Get("search_query"))

		_, _ = w.Write([]byte(`<html><script>var ytInitialData = ` +
			`{"contents":[{"videoRenderer":{"videoId":"dQw4w9WgXcQ"}},` +
			`{"videoRenderer":{"videoId":"abcdefghijk"}}]};</script></html>`))
	}))
	defer server.Close()

	client, err := NewClient(WithBaseURL(server.URL))
	require.NoError(t, err)

	ctx := context.Background()

	watchURL, err := client.Search(ctx, "test artist - test song audio")
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", watchURL)

	// Second lookup must come from the cache.
	cached, err := client.Search(ctx, "test artist - test song audio")
	require.NoError(t, err)
	assert.Equal(t, watchURL, cached)
	assert.Equal(t, 1, requestCount)
}

// TestSearch_NoResults tests that a page without video IDs is reported.
func TestSearch_NoResults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body>No results found</body></html>`))
	}))
	defer server.Close()

	client, err := NewClient(WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "gibberish query")
	require.ErrorIs(t, err, ErrNoResults)
}

// TestSearch_BadStatus tests that a non-OK response surfaces the HTTP status.
func TestSearch_BadStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewClient(WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "anything")
	require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
}
