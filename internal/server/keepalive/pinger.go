package keepalive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/phasegym/tunegrab/internal/config"
	"github.com/phasegym/tunegrab/internal/logger"
)

// Pinger periodically hits the keep-alive health endpoint.
// Hosting platforms that idle out quiet processes see the traffic
// and keep the bot running.
type Pinger struct {
	// targetURL is the health endpoint to hit.
	targetURL string
	// interval is how often to ping.
	interval time.Duration
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
}

// pingTimeout bounds a single ping request.
const pingTimeout = 5 * time.Second

// NewPinger creates a pinger aimed at the local keep-alive server.
func NewPinger(cfg *config.Config) *Pinger {
	return &Pinger{
		targetURL: fmt.Sprintf("http://localhost:%d/health", cfg.Port),
		interval:  cfg.ParsedPingInterval,
		httpClient: &http.Client{
			Timeout: pingTimeout,
		},
	}
}

// Run pings immediately, then on every interval tick until the context is canceled.
func (p *Pinger) Run(ctx context.Context) {
	logger.Infof(ctx, "Pinger started with interval %s", p.interval)

	p.ping(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.ping(ctx)
		}
	}
}

func (p *Pinger) ping(ctx context.Context) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, p.targetURL, http.NoBody)
	if err != nil {
		logger.Errorf(ctx, "Failed to build ping request: %v", err)

		return
	}

	response, err := p.httpClient.Do(request)
	if err != nil {
		logger.Warnf(ctx, "Ping failed: %v", err)

		return
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	_, _ = io.Copy(io.Discard, response.Body)

	if response.StatusCode != http.StatusOK {
		logger.Warnf(ctx, "Ping returned unexpected status: %d", response.StatusCode)

		return
	}

	logger.Debugf(ctx, "Ping successful")
}
