package app

import (
	"context"
	"errors"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/phasegym/tunegrab/internal/bot"
	"github.com/phasegym/tunegrab/internal/client/spotify"
	"github.com/phasegym/tunegrab/internal/client/youtube"
	"github.com/phasegym/tunegrab/internal/client/ytsearch"
	"github.com/phasegym/tunegrab/internal/config"
	"github.com/phasegym/tunegrab/internal/constants"
	"github.com/phasegym/tunegrab/internal/logger"
	"github.com/phasegym/tunegrab/internal/server/keepalive"
	"github.com/phasegym/tunegrab/internal/service/download"
	"github.com/phasegym/tunegrab/internal/service/session"
	"github.com/phasegym/tunegrab/internal/service/stats"
)

// statsFilename is where download counters are persisted,
// relative to the working directory.
const statsFilename = "user_stats.json"

// ExecuteRootCommand is the entry point for the application.
// It wires every component together and serves until the context is canceled.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config) {
	prepareTempDirectory(ctx, cfg)

	statsStore, err := stats.NewStore(ctx, statsFilename)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize stats store: %v", err)
	}

	searchClient, err := ytsearch.NewClient()
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize search client: %v", err)
	}

	var (
		spotifyClient  spotify.Client
		sessionManager session.Manager
	)

	if cfg.IsSpotifyEnabled() {
		spotifyClient, err = spotify.NewClient(cfg)
		if err != nil {
			logger.Fatalf(ctx, "Failed to initialize Spotify client: %v", err)
		}

		sessionManager = session.NewManager(spotifyClient)
		defer sessionManager.Close()

		probeSpotifySession(ctx, spotifyClient, sessionManager)
	} else {
		logger.Infof(ctx, "Spotify credentials are not configured, Spotify links will be rejected")
	}

	downloadService := download.NewService(
		cfg,
		youtube.NewClient(),
		searchClient,
		spotifyClient,
		sessionManager,
		download.NewTagProcessor(),
	)

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to Telegram: %v", err)
	}

	api.Debug = logger.IsDebugLevel()

	logger.Infof(ctx, "Authorized on Telegram as @%s", api.Self.UserName)

	server := keepalive.NewServer(cfg)

	go func() {
		if serveErr := server.Run(ctx); serveErr != nil && !errors.Is(serveErr, context.Canceled) {
			logger.Errorf(ctx, "Keep-alive server stopped: %v", serveErr)
		}
	}()

	go keepalive.NewPinger(cfg).Run(ctx)

	musicBot := bot.New(cfg, api, downloadService, statsStore)

	if err = musicBot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf(ctx, "Bot stopped: %v", err)
	}
}

// prepareTempDirectory clears leftovers from previous runs and recreates
// the staging directory. Files in it are worthless across restarts because
// their chat requests are long gone.
func prepareTempDirectory(ctx context.Context, cfg *config.Config) {
	if err := os.RemoveAll(cfg.TempDir); err != nil {
		logger.Warnf(ctx, "Failed to clear temp directory %s: %v", cfg.TempDir, err)
	}

	if err := os.MkdirAll(cfg.TempDir, constants.DefaultFolderPermissions); err != nil {
		logger.Fatalf(ctx, "Failed to create temp directory %s: %v", cfg.TempDir, err)
	}
}

// probeSpotifySession establishes the token early and verifies it is accepted,
// so credential problems show up in the logs at startup instead of on the
// first user request.
func probeSpotifySession(ctx context.Context, client spotify.Client, manager session.Manager) {
	accessToken, err := manager.Token(ctx)
	if err != nil {
		logger.Warnf(ctx, "Spotify authentication failed, links will be rejected until it recovers: %v", err)

		return
	}

	if err = client.Probe(ctx, accessToken); err != nil {
		manager.Invalidate()
		logger.Warnf(ctx, "Spotify token probe failed: %v", err)

		return
	}

	logger.Infof(ctx, "Spotify session established")
}
