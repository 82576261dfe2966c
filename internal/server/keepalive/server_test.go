package keepalive

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phasegym/tunegrab/internal/config"
)

// TestHealthEndpoint tests the monitoring endpoint.
func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	server := NewServer(&config.Config{Port: 8080})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)

	server.Handler().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}

// TestStatusPage tests the human-readable root page.
func TestStatusPage(t *testing.T) {
	t.Parallel()

	server := NewServer(&config.Config{Port: 8080})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", http.NoBody)

	server.Handler().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/html")

	body := recorder.Body.String()
	assert.Contains(t, body, "Telegram Music Bot")
	assert.Contains(t, body, "Uptime:")
	assert.Contains(t, body, "/stats")
}

// TestPinger tests that pings reach the target until the context is canceled.
func TestPinger(t *testing.T) {
	t.Parallel()

	pinged := make(chan struct{}, 8)

	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		pinged <- struct{}{}

		_, _ = io.WriteString(w, "OK")
	}))
	defer target.Close()

	pinger := &Pinger{
		targetURL:  target.URL,
		interval:   10 * time.Millisecond,
		httpClient: target.Client(),
	}

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})

	go func() {
		pinger.Run(ctx)
		close(done)
	}()

	// The first ping is immediate, the second proves the ticker works.
	for range 2 {
		select {
		case <-pinged:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for a ping")
		}
	}

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pinger did not stop after cancellation")
	}
}

// TestNewPinger tests the default target construction.
func TestNewPinger(t *testing.T) {
	t.Parallel()

	pinger := NewPinger(&config.Config{Port: 9090, ParsedPingInterval: 5 * time.Minute})

	require.NotNil(t, pinger)
	assert.Equal(t, "http://localhost:9090/health", pinger.targetURL)
	assert.Equal(t, 5*time.Minute, pinger.interval)
}
