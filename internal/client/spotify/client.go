package spotify

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/phasegym/tunegrab/internal/config"
	"github.com/phasegym/tunegrab/internal/logger"
	http_transport "github.com/phasegym/tunegrab/internal/transport/http"
	"github.com/phasegym/tunegrab/internal/utils"
)

// Client defines the interface for interacting with the Spotify Web API.
type Client interface {
	// RequestToken performs a client-credentials grant and returns a fresh access token.
	RequestToken(ctx context.Context) (*Token, error)
	// GetTrack retrieves metadata for a single track.
	GetTrack(ctx context.Context, accessToken, trackID string) (*Track, error)
	// Probe makes a cheap authenticated request to verify the token is still accepted.
	Probe(ctx context.Context, accessToken string) error
}

// ClientImpl implements the Client interface for interacting with the Spotify Web API.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// apiBaseURL is the base URL for Web API requests.
	apiBaseURL string
	// accountsBaseURL is the base URL for the token endpoint.
	accountsBaseURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// tracksCache caches track metadata to reduce duplicate API calls for popular tracks.
	tracksCache *lru.Cache[string, *Track]
}

const (
	// defaultAPIBaseURL is the production Web API base URL.
	defaultAPIBaseURL = "https://api.spotify.com"
	// defaultAccountsBaseURL is the production accounts service base URL.
	defaultAccountsBaseURL = "https://accounts.spotify.com"

	// tokenURI is the URI path for the client-credentials token endpoint.
	tokenURI = "api/token"
	// trackURI is the URI path for the track metadata endpoint.
	trackURI = "v1/tracks"
	// probeURI is the URI path used for token freshness probes.
	// The markets list is the cheapest endpoint available to a client-credentials token.
	probeURI = "v1/markets"

	// tracksCacheSize defines the maximum number of track entries to cache.
	// Sized to hold the tracks a busy bot sees within a token lifetime.
	tracksCacheSize = 2000
)

// Static error definitions for better error handling.
var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrMissingCredentials indicates that Spotify credentials are not configured.
	ErrMissingCredentials = errors.New("spotify credentials are not configured")
	// ErrTokenRejected indicates that the API rejected the access token.
	ErrTokenRejected = errors.New("access token rejected")
	// ErrTrackNotFound indicates that the requested track does not exist.
	ErrTrackNotFound = errors.New("track not found")
	// ErrEmptyAccessToken indicates that the token response carried no access token.
	ErrEmptyAccessToken = errors.New("token response contains no access token")
)

// Option customizes a ClientImpl, primarily for tests.
type Option func(*ClientImpl)

// WithBaseURLs overrides the production API and accounts base URLs.
func WithBaseURLs(apiBaseURL, accountsBaseURL string) Option {
	return func(c *ClientImpl) {
		c.apiBaseURL = apiBaseURL
		c.accountsBaseURL = accountsBaseURL
	}
}

// NewClient creates and returns a new instance of ClientImpl.
func NewClient(cfg *config.Config, opts ...Option) (Client, error) {
	tracksCache, err := lru.New[string, *Track](tracksCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracks cache: %w", err)
	}

	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(http.DefaultTransport, 0),
			utils.NewSimpleUserAgentProvider(http_transport.DefaultUserAgent)),
		Timeout: http_transport.DefaultTimeout,
	}

	client := &ClientImpl{
		cfg:             cfg,
		apiBaseURL:      defaultAPIBaseURL,
		accountsBaseURL: defaultAccountsBaseURL,
		httpClient:      httpClient,
		tracksCache:     tracksCache,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// RequestToken performs a client-credentials grant and returns a fresh access token.
func (c *ClientImpl) RequestToken(ctx context.Context) (*Token, error) {
	if !c.cfg.IsSpotifyEnabled() {
		return nil, ErrMissingCredentials
	}

	route, err := url.JoinPath(c.accountsBaseURL, tokenURI)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, route, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	request.SetBasicAuth(c.cfg.SpotifyClientID, c.cfg.SpotifyClientSecret)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var token Token
	if err = json.NewDecoder(response.Body).Decode(&token); err != nil {
		return nil, err
	}

	if token.AccessToken == "" {
		return nil, ErrEmptyAccessToken
	}

	return &token, nil
}

// GetTrack retrieves metadata for a single track.
// Uses an LRU cache to avoid redundant API calls for the same tracks.
func (c *ClientImpl) GetTrack(ctx context.Context, accessToken, trackID string) (*Track, error) {
	if cached, ok := c.tracksCache.Get(trackID); ok {
		logger.Debugf(ctx, "Track cache hit for ID: %s", trackID)

		return cached, nil
	}

	route, err := url.JoinPath(c.apiBaseURL, trackURI, trackID)
	if err != nil {
		return nil, err
	}

	response, err := c.doAuthorized(ctx, accessToken, route)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	switch response.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrTokenRejected
	case http.StatusNotFound:
		return nil, ErrTrackNotFound
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var track Track
	if err = json.NewDecoder(response.Body).Decode(&track); err != nil {
		return nil, err
	}

	c.tracksCache.Add(trackID, &track)

	return &track, nil
}

// Probe makes a cheap authenticated request to verify the token is still accepted.
func (c *ClientImpl) Probe(ctx context.Context, accessToken string) error {
	route, err := url.JoinPath(c.apiBaseURL, probeURI)
	if err != nil {
		return err
	}

	response, err := c.doAuthorized(ctx, accessToken, route)
	if err != nil {
		return err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	// Drain the body so the connection can be reused.
	_, _ = io.Copy(io.Discard, response.Body)

	switch response.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrTokenRejected
	default:
		return fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}
}

func (c *ClientImpl) doAuthorized(ctx context.Context, accessToken, route string) (*http.Response, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, err
	}

	request.Header.Set("Authorization", "Bearer "+accessToken)

	return c.httpClient.Do(request)
}
