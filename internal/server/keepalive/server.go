package keepalive

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phasegym/tunegrab/internal/config"
	"github.com/phasegym/tunegrab/internal/logger"
)

// Server is the keep-alive HTTP server.
type Server struct {
	// httpServer is the underlying HTTP server.
	httpServer *http.Server
	// router handles the two exposed routes.
	router *gin.Engine
	// startedAt is when the server was created, shown as uptime on the status page.
	startedAt time.Time
}

const (
	// readHeaderTimeout bounds how long a client may take to send headers.
	readHeaderTimeout = 10 * time.Second

	// shutdownTimeout bounds the graceful shutdown on context cancellation.
	shutdownTimeout = 5 * time.Second
)

// statusPageTemplate is the HTML served at the root route.
const statusPageTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>Telegram Music Bot Status</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body { font-family: Arial, sans-serif; background-color: #f5f5f5; color: #333; margin: 20px; text-align: center; }
        .container { max-width: 800px; margin: 0 auto; background-color: white; border-radius: 10px; padding: 20px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        h1 { color: #4CAF50; }
        .status { padding: 10px; border-radius: 5px; margin: 20px 0; font-weight: bold; background-color: #e8f5e9; color: #2e7d32; }
        .platforms { display: flex; justify-content: center; gap: 20px; margin: 20px 0; }
        .platform { padding: 10px; border-radius: 5px; background-color: #f1f1f1; }
        ul { text-align: left; display: inline-block; }
    </style>
</head>
<body>
    <div class="container">
        <h1>🎵 Telegram Music Bot</h1>
        <div class="status">✅ The bot is up and waiting for requests</div>
        <p>Uptime: %s</p>
        <p>Send a track link in Telegram to download music from the supported platforms.</p>
        <div class="platforms">
            <div class="platform" style="color: #FF0000;">YouTube ✅</div>
            <div class="platform" style="color: #FF7700;">SoundCloud ✅</div>
            <div class="platform" style="color: #1DB954;">Spotify ✅</div>
        </div>
        <h3>Available commands:</h3>
        <ul>
            <li><code>/start</code> - Start working with the bot</li>
            <li><code>/help</code> - Show usage help</li>
            <li><code>/about</code> - About the bot</li>
            <li><code>/stats</code> - Download statistics</li>
        </ul>
    </div>
</body>
</html>`

// NewServer creates and returns a new keep-alive server listening on the configured port.
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		router:    router,
		startedAt: time.Now(),
	}

	router.GET("/", server.handleIndex)
	router.GET("/health", server.handleHealth)

	server.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return server
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		logger.Infof(ctx, "Keep-alive server listening on %s", s.httpServer.Addr)

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down keep-alive server: %w", err)
		}

		return ctx.Err()
	case err := <-errCh:
		return fmt.Errorf("keep-alive server failed: %w", err)
	}
}

// Handler exposes the route tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleIndex(c *gin.Context) {
	uptime := time.Since(s.startedAt).Round(time.Second)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, fmt.Sprintf(statusPageTemplate, uptime))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
