package bot

//go:generate $MOCKGEN -source=api.go -destination=mocks/api_mock.go

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// API is the slice of the Telegram Bot API the bot actually uses.
// *tgbotapi.BotAPI satisfies it; tests substitute a mock.
type API interface {
	// Send delivers a message, edit, or upload to Telegram.
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	// GetUpdatesChan starts long polling and returns the update stream.
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	// StopReceivingUpdates shuts the update stream down.
	StopReceivingUpdates()
}
