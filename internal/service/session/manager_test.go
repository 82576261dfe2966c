package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/phasegym/tunegrab/internal/client/spotify"
	mock_spotify "github.com/phasegym/tunegrab/internal/client/spotify/mocks"
)

// liveToken returns a token with a comfortable lifetime.
func liveToken(accessToken string) *spotify.Token {
	return &spotify.Token{
		AccessToken:      accessToken,
		TokenType:        "Bearer",
		ExpiresInSeconds: 3600,
	}
}

// TestToken_FetchesOnce tests that a live token is reused without another grant.
func TestToken_FetchesOnce(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_spotify.NewMockClient(ctrl)
	client.EXPECT().RequestToken(gomock.Any()).Return(liveToken("token-1"), nil).Times(1)

	manager := NewManager(client)
	defer manager.Close()

	ctx := context.Background()

	token, err := manager.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
	assert.Equal(t, StateLive, manager.State())

	// Second call must not hit the client again.
	token, err = manager.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
}

// TestToken_ConcurrentCallersShareOneGrant tests the request-collapsing behavior.
func TestToken_ConcurrentCallersShareOneGrant(t *testing.T) {
	t.Parallel()

	const callers = 16

	release := make(chan struct{})

	ctrl := gomock.NewController(t)
	client := mock_spotify.NewMockClient(ctrl)
	client.EXPECT().RequestToken(gomock.Any()).DoAndReturn(
		func(context.Context) (*spotify.Token, error) {
			<-release

			return liveToken("shared-token"), nil
		}).Times(1)

	manager := NewManager(client)
	defer manager.Close()

	var wg sync.WaitGroup

	results := make([]string, callers)

	for i := range callers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			token, err := manager.Token(context.Background())
			assert.NoError(t, err)

			results[i] = token
		}()
	}

	close(release)
	wg.Wait()

	for _, token := range results {
		assert.Equal(t, "shared-token", token)
	}
}

// TestToken_GrantFailure tests that a failed grant leaves the session absent.
func TestToken_GrantFailure(t *testing.T) {
	t.Parallel()

	grantErr := errors.New("accounts service down")

	ctrl := gomock.NewController(t)
	client := mock_spotify.NewMockClient(ctrl)
	client.EXPECT().RequestToken(gomock.Any()).Return(nil, grantErr).Times(1)

	manager := NewManager(client)
	defer manager.Close()

	_, err := manager.Token(context.Background())
	require.ErrorIs(t, err, grantErr)
	assert.Equal(t, StateAbsent, manager.State())
}

// TestInvalidate tests that invalidation forces a fresh grant.
func TestInvalidate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_spotify.NewMockClient(ctrl)

	first := client.EXPECT().RequestToken(gomock.Any()).Return(liveToken("token-1"), nil)
	client.EXPECT().RequestToken(gomock.Any()).Return(liveToken("token-2"), nil).After(first)

	manager := NewManager(client)
	defer manager.Close()

	ctx := context.Background()

	token, err := manager.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	manager.Invalidate()
	assert.Equal(t, StateAbsent, manager.State())

	token, err = manager.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", token)
}
