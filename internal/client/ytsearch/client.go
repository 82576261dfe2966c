package ytsearch

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/phasegym/tunegrab/internal/logger"
	http_transport "github.com/phasegym/tunegrab/internal/transport/http"
	"github.com/phasegym/tunegrab/internal/utils"
)

// Client defines the interface for resolving search queries to YouTube watch URLs.
type Client interface {
	// Search returns the watch URL of the first result for the given query.
	Search(ctx context.Context, query string) (string, error)
}

// ClientImpl implements the Client interface by scraping the public results page.
type ClientImpl struct {
	// baseURL is the YouTube base URL.
	baseURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// resultsCache caches query results to avoid re-scraping for repeated queries.
	resultsCache *lru.Cache[string, string]
}

const (
	// defaultBaseURL is the production YouTube base URL.
	defaultBaseURL = "https://www.youtube.com"

	// resultsURI is the URI path for the search results page.
	resultsURI = "results"

	// watchURLFormat builds a canonical watch URL from a video ID.
	watchURLFormat = "https://www.youtube.com/watch?v=%s"

	// resultsCacheSize defines the maximum number of query results to cache.
	resultsCacheSize = 1000

	// maxResultsPageSize caps how much of the results page is read.
	// The first video ID appears well within the first megabyte.
	maxResultsPageSize = 2 * 1024 * 1024
)

// videoIDPattern matches the first video ID embedded in the results page markup.
var videoIDPattern = regexp.MustCompile(`"videoId":"([A-Za-z0-9_-]{11})"`)

// Static error definitions for better error handling.
var (
	// ErrNoResults indicates that the search returned no playable videos.
	ErrNoResults = errors.New("no search results")
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
)

// Option customizes a ClientImpl, primarily for tests.
type Option func(*ClientImpl)

// WithBaseURL overrides the production YouTube base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *ClientImpl) {
		c.baseURL = baseURL
	}
}

// NewClient creates and returns a new instance of ClientImpl.
func NewClient(opts ...Option) (Client, error) {
	resultsCache, err := lru.New[string, string](resultsCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create results cache: %w", err)
	}

	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(http.DefaultTransport, 0),
			utils.NewSimpleUserAgentProvider(http_transport.DefaultUserAgent)),
		Timeout: http_transport.DefaultTimeout,
	}

	client := &ClientImpl{
		baseURL:      defaultBaseURL,
		httpClient:   httpClient,
		resultsCache: resultsCache,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Search returns the watch URL of the first result for the given query.
func (c *ClientImpl) Search(ctx context.Context, query string) (string, error) {
	if cached, ok := c.resultsCache.Get(query); ok {
		logger.Debugf(ctx, "Search cache hit for query: %s", query)

		return cached, nil
	}

	route, err := url.JoinPath(c.baseURL, resultsURI)
	if err != nil {
		return "", err
	}

	route += "?search_query=" + url.QueryEscape(query)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return "", err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	page, err := io.ReadAll(io.LimitReader(response.Body, maxResultsPageSize))
	if err != nil {
		return "", err
	}

	match := videoIDPattern.FindSubmatch(page)
	if match == nil {
		return "", fmt.Errorf("%w for query '%s'", ErrNoResults, query)
	}

	watchURL := fmt.Sprintf(watchURLFormat, match[1])
	c.resultsCache.Add(query, watchURL)

	return watchURL, nil
}
