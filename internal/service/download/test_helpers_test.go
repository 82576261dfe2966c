package download

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	mock_spotify "github.com/phasegym/tunegrab/internal/client/spotify/mocks"
	mock_youtube "github.com/phasegym/tunegrab/internal/client/youtube/mocks"
	mock_ytsearch "github.com/phasegym/tunegrab/internal/client/ytsearch/mocks"
	"github.com/phasegym/tunegrab/internal/config"
	mock_session "github.com/phasegym/tunegrab/internal/service/session/mocks"
)

// testServiceMocks bundles the mocked collaborators of a service under test.
type testServiceMocks struct {
	youtubeClient  *mock_youtube.MockClient
	searchClient   *mock_ytsearch.MockClient
	spotifyClient  *mock_spotify.MockClient
	sessionManager *mock_session.MockManager
}

// countingTagProcessor is a hand-rolled fake that starts failing
// from the failFrom-th WriteTags call.
type countingTagProcessor struct {
	calls    int
	failFrom int
	err      error
}

func (f *countingTagProcessor) WriteTags(_ context.Context, _ *WriteTagsRequest) error {
	f.calls++
	if f.calls >= f.failFrom {
		return f.err
	}

	return nil
}

// newTestConfig returns a service configuration with roomy limits
// and a per-test temp directory.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		TempDir:           t.TempDir(),
		ParsedMaxFileSize: 50 * 1024 * 1024,
		ParsedMaxDuration: 20 * time.Minute,
	}
}

// newTestService builds a service wired entirely to mocks.
func newTestService(t *testing.T, cfg *config.Config) (*ServiceImpl, *testServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mocks := &testServiceMocks{
		youtubeClient:  mock_youtube.NewMockClient(ctrl),
		searchClient:   mock_ytsearch.NewMockClient(ctrl),
		spotifyClient:  mock_spotify.NewMockClient(ctrl),
		sessionManager: mock_session.NewMockManager(ctrl),
	}

	service, ok := NewService(
		cfg,
		mocks.youtubeClient,
		mocks.searchClient,
		mocks.spotifyClient,
		mocks.sessionManager,
		NewTagProcessor(),
	).(*ServiceImpl)
	if !ok {
		t.Fatal("NewService did not return a *ServiceImpl")
	}

	return service, mocks
}
