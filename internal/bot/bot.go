package bot

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/phasegym/tunegrab/internal/config"
	"github.com/phasegym/tunegrab/internal/logger"
	"github.com/phasegym/tunegrab/internal/service/download"
	"github.com/phasegym/tunegrab/internal/service/stats"
	"github.com/phasegym/tunegrab/internal/utils"
)

// Bot wires the Telegram update stream to the download pipeline.
type Bot struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// api is the Telegram Bot API surface.
	api API
	// downloadService acquires tracks from pasted URLs.
	downloadService download.Service
	// statsStore records user activity and download counters.
	statsStore stats.Store
	// handlers tracks in-flight update handlers so Run can drain them on shutdown.
	handlers sync.WaitGroup
}

// updateTimeoutSeconds is the long-polling timeout passed to Telegram.
const updateTimeoutSeconds = 30

// New creates and returns a new Bot instance.
func New(cfg *config.Config, api API, downloadService download.Service, statsStore stats.Store) *Bot {
	return &Bot{
		cfg:             cfg,
		api:             api,
		downloadService: downloadService,
		statsStore:      statsStore,
	}
}

// Run long-polls for updates until the context is canceled.
func (b *Bot) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = updateTimeoutSeconds

	updates := b.api.GetUpdatesChan(updateConfig)

	logger.Infof(ctx, "Bot is running, waiting for updates")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.handlers.Wait()

			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				b.handlers.Wait()

				return nil
			}

			// Each update runs on its own goroutine so a chat waiting on a
			// slow download never holds up the other chats.
			b.handlers.Add(1)

			go func() {
				defer b.handlers.Done()

				b.handleUpdate(ctx, update)
			}()
		}
	}
}

// handleUpdate routes one incoming update.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	message := update.Message
	if message == nil || message.From == nil {
		return
	}

	b.statsStore.UpdateUserSeen(ctx, message.From.ID)

	if message.IsCommand() {
		b.handleCommand(ctx, message)

		return
	}

	text := strings.TrimSpace(message.Text)
	if text == "" {
		return
	}

	b.handleTrackURL(ctx, message, text)
}

// handleCommand answers the fixed command set.
func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		b.reply(ctx, chatID, fmt.Sprintf(msgWelcome, message.From.FirstName), "")
	case "help":
		helpText := fmt.Sprintf(msgHelp,
			utils.FormatTrackDuration(b.cfg.ParsedMaxDuration),
			humanize.IBytes(uint64(b.cfg.ParsedMaxFileSize))) //nolint:gosec // Validated to be positive.

		b.reply(ctx, chatID, helpText, tgbotapi.ModeMarkdown)
	case "about":
		b.reply(ctx, chatID, msgAbout, tgbotapi.ModeMarkdown)
	case "stats":
		userStats := b.statsStore.UserStats(message.From.ID)
		globalStats := b.statsStore.GlobalStats()

		b.reply(ctx, chatID, statsMessage(userStats, globalStats), tgbotapi.ModeMarkdown)
	default:
		// Unknown commands are ignored, like any other noise.
	}
}

// handleTrackURL walks a pasted URL through the download pipeline,
// editing a single progress message as the phases complete.
func (b *Bot) handleTrackURL(ctx context.Context, message *tgbotapi.Message, text string) {
	chatID := message.Chat.ID

	platform := download.DetectPlatform(text)
	if platform == download.PlatformUnknown {
		b.replyToUnknownText(ctx, chatID, text)

		return
	}

	progress, err := b.api.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf(msgFetchingInfo, platform)))
	if err != nil {
		logger.Errorf(ctx, "Failed to send progress message: %v", err)

		return
	}

	phaseText := fmt.Sprintf(msgDownloading, platform)
	if platform == download.PlatformSpotify {
		phaseText = msgSearchingSpotify
	}

	b.editMessage(ctx, chatID, progress.MessageID, phaseText)

	result, err := b.downloadService.Acquire(ctx, text)
	if err != nil {
		b.editMessage(ctx, chatID, progress.MessageID, errorMessage(err))

		return
	}

	b.editMessage(ctx, chatID, progress.MessageID, downloadedMessage(result))

	// Counters track delivered files, not attempts, so the stats append
	// is gated on the upload actually reaching Telegram.
	if err = b.sendAudio(ctx, chatID, result); err == nil {
		b.statsStore.RecordDownload(ctx, message.From.ID, result.Title, result.Artist, result.Platform.String())
	}

	// The file was staged by the acquirer, but after the hand-off attempt
	// it belongs to the bot, which must reclaim the disk space.
	if err = os.Remove(result.LocalPath); err != nil {
		logger.Warnf(ctx, "Failed to remove sent file %s: %v", result.LocalPath, err)
	}
}

// replyToUnknownText answers text that classified to no platform.
// A well-formed link to an unrecognized site gets the unsupported-platform
// notice, broken link-shaped text gets a correction, chatter is ignored.
func (b *Bot) replyToUnknownText(ctx context.Context, chatID int64, text string) {
	parsed, err := url.Parse(text)
	if err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != "" {
		b.reply(ctx, chatID, msgUnsupportedPlatform, "")

		return
	}

	if strings.Contains(text, "http") || strings.Contains(text, "www") {
		b.reply(ctx, chatID, msgInvalidURL, "")
	}
}

// sendAudio uploads the staged file as a playable audio message.
func (b *Bot) sendAudio(ctx context.Context, chatID int64, result *download.Result) error {
	audio := tgbotapi.NewAudio(chatID, tgbotapi.FilePath(result.LocalPath))
	audio.Performer = result.Artist
	audio.Title = result.Title
	audio.Caption = fmt.Sprintf(msgAudioCaption, result.Artist, result.Title)

	if _, err := b.api.Send(audio); err != nil {
		logger.Errorf(ctx, "Failed to send audio to chat %d: %v", chatID, err)

		return err
	}

	return nil
}

// reply sends a plain message, logging delivery failures.
func (b *Bot) reply(ctx context.Context, chatID int64, text, parseMode string) {
	message := tgbotapi.NewMessage(chatID, text)
	message.ParseMode = parseMode

	if _, err := b.api.Send(message); err != nil {
		logger.Errorf(ctx, "Failed to send message to chat %d: %v", chatID, err)
	}
}

// editMessage replaces the text of a previously sent message.
func (b *Bot) editMessage(ctx context.Context, chatID int64, messageID int, text string) {
	if _, err := b.api.Send(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		logger.Errorf(ctx, "Failed to edit message %d in chat %d: %v", messageID, chatID, err)
	}
}
