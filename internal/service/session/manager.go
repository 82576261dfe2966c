package session

//go:generate $MOCKGEN -source=manager.go -destination=mocks/manager_mock.go

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/phasegym/tunegrab/internal/client/spotify"
	"github.com/phasegym/tunegrab/internal/logger"
)

// State describes the lifecycle stage of the credential session.
type State int

const (
	// StateAbsent means no token is held.
	StateAbsent State = iota
	// StateAuthenticating means a grant request is in flight.
	StateAuthenticating
	// StateLive means a token is held and has not expired.
	StateLive
)

// String returns the human-readable state name.
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateAuthenticating:
		return "authenticating"
	case StateLive:
		return "live"
	default:
		return "unknown"
	}
}

// Manager defines the interface for obtaining and invalidating the Spotify access token.
type Manager interface {
	// Token returns a live access token, fetching one if necessary.
	Token(ctx context.Context) (string, error)
	// Invalidate drops the held token so the next Token call fetches a fresh one.
	Invalidate()
	// State reports the current session state.
	State() State
	// Close stops the background renewal timer.
	Close()
}

// ManagerImpl implements the Manager interface.
type ManagerImpl struct {
	// client is the Spotify client used for the token grant.
	client spotify.Client
	// group collapses concurrent refresh attempts into a single grant request.
	group singleflight.Group

	// mu guards the fields below.
	mu sync.Mutex
	// state is the current session state.
	state State
	// accessToken is the held token, valid only in the live state.
	accessToken string
	// expiresAt is when the held token stops being usable.
	expiresAt time.Time
	// renewTimer fires shortly before expiry to renew the token in the background.
	renewTimer *time.Timer
}

const (
	// renewalSafetyMargin is how long before expiry the token is renewed.
	renewalSafetyMargin = 10 * time.Minute

	// refreshGroupKey is the singleflight key shared by all refresh attempts.
	refreshGroupKey = "token"
)

// NewManager creates and returns a new instance of ManagerImpl.
func NewManager(client spotify.Client) Manager {
	return &ManagerImpl{
		client: client,
		state:  StateAbsent,
	}
}

// Token returns a live access token, fetching one if necessary.
func (m *ManagerImpl) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	if m.state == StateLive && time.Now().Before(m.expiresAt) {
		token := m.accessToken
		m.mu.Unlock()

		return token, nil
	}
	m.mu.Unlock()

	return m.refresh(ctx)
}

// Invalidate drops the held token so the next Token call fetches a fresh one.
func (m *ManagerImpl) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dropLocked()
}

// State reports the current session state.
func (m *ManagerImpl) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Close stops the background renewal timer.
func (m *ManagerImpl) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.renewTimer != nil {
		m.renewTimer.Stop()
		m.renewTimer = nil
	}
}

// refresh performs the token grant,
// collapsing concurrent callers into one request.
func (m *ManagerImpl) refresh(ctx context.Context) (string, error) {
	result, err, _ := m.group.Do(refreshGroupKey, func() (any, error) {
		m.mu.Lock()
		m.state = StateAuthenticating
		m.mu.Unlock()

		token, requestErr := m.client.RequestToken(ctx)
		if requestErr != nil {
			m.mu.Lock()
			m.dropLocked()
			m.mu.Unlock()

			return nil, fmt.Errorf("failed to obtain access token: %w", requestErr)
		}

		lifetime := time.Duration(token.ExpiresInSeconds) * time.Second

		m.mu.Lock()
		m.state = StateLive
		m.accessToken = token.AccessToken
		m.expiresAt = time.Now().Add(lifetime)
		m.scheduleRenewalLocked(lifetime)
		m.mu.Unlock()

		logger.Infof(ctx, "Spotify session is live, token expires in %s", lifetime)

		return token.AccessToken, nil
	})
	if err != nil {
		return "", err
	}

	accessToken, _ := result.(string)

	return accessToken, nil
}

// scheduleRenewalLocked arms the renewal timer.
// Must be called with the mutex held.
func (m *ManagerImpl) scheduleRenewalLocked(lifetime time.Duration) {
	if m.renewTimer != nil {
		m.renewTimer.Stop()
	}

	renewAfter := lifetime - renewalSafetyMargin
	if renewAfter <= 0 {
		// Short-lived token, renew at half its lifetime.
		renewAfter = lifetime / 2
	}

	m.renewTimer = time.AfterFunc(renewAfter, func() {
		ctx := context.Background()

		if _, err := m.refresh(ctx); err != nil {
			logger.Warnf(ctx, "Background token renewal failed: %v", err)
		}
	})
}

// dropLocked clears the held token and stops the renewal timer.
// Must be called with the mutex held.
func (m *ManagerImpl) dropLocked() {
	m.state = StateAbsent
	m.accessToken = ""
	m.expiresAt = time.Time{}

	if m.renewTimer != nil {
		m.renewTimer.Stop()
		m.renewTimer = nil
	}
}
