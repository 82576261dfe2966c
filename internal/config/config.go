package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/phasegym/tunegrab/internal/logger"
	"github.com/phasegym/tunegrab/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// TelegramToken is the Telegram bot API token. The process refuses to start without it.
	TelegramToken string `mapstructure:"telegram_token"`
	// SpotifyClientID is the Spotify application client ID.
	// Leaving it empty disables the Spotify acquirer.
	SpotifyClientID string `mapstructure:"spotify_client_id"`
	// SpotifyClientSecret is the Spotify application client secret.
	// Leaving it empty disables the Spotify acquirer.
	SpotifyClientSecret string `mapstructure:"spotify_client_secret"`
	// MaxFileSize is the maximum size of a downloaded file (e.g., "50 MiB").
	// Files larger than this are rejected because Telegram refuses them anyway.
	MaxFileSize string `mapstructure:"max_file_size"`
	// MaxDuration is the maximum acceptable track duration (e.g., "20m").
	// Tracks longer than this are rejected before any bytes are downloaded.
	MaxDuration string `mapstructure:"max_duration"`
	// TempDir is the directory where downloaded files are staged before upload.
	TempDir string `mapstructure:"temp_dir"`
	// Port is the listen port for the keep-alive HTTP server.
	Port int `mapstructure:"port"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// PingInterval is how often the self-pinger hits the keep-alive server (e.g., "5m").
	PingInterval string `mapstructure:"ping_interval"`
	// ParsedMaxFileSize is the parsed maximum file size in bytes.
	ParsedMaxFileSize int64
	// ParsedMaxDuration is the parsed maximum track duration.
	ParsedMaxDuration time.Duration
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedPingInterval is the parsed self-ping interval.
	ParsedPingInterval time.Duration
}

const (
	// DefaultMaxFileSize matches the Telegram bot API upload ceiling.
	DefaultMaxFileSize = "50 MiB"

	// DefaultMaxDuration is the default maximum track duration.
	DefaultMaxDuration = "20m"

	// DefaultTempDir is the default directory for staging downloaded files.
	DefaultTempDir = "temp_downloads"

	// DefaultPort is the default listen port for the keep-alive server.
	DefaultPort = 8080

	// DefaultLogLevel is the default logging verbosity.
	DefaultLogLevel = "info"

	// DefaultPingInterval is the default self-ping interval.
	DefaultPingInterval = "5m"

	// DefaultMaxLogLength is the default maximum size (in bytes) for HTTP debug dumps.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// maxPort is the highest valid TCP port number.
	maxPort = 65535
)

// Static error definitions for better error handling.
var (
	// ErrEmptyTelegramToken indicates that the Telegram bot token is missing.
	ErrEmptyTelegramToken = errors.New("telegram token cannot be empty")
	// ErrInvalidMaxFileSize indicates that the maximum file size setting is invalid.
	ErrInvalidMaxFileSize = errors.New("max_file_size must be positive")
	// ErrInvalidMaxDuration indicates that the maximum duration setting is invalid.
	ErrInvalidMaxDuration = errors.New("max_duration must be positive")
	// ErrInvalidPort indicates that the listen port is out of range.
	ErrInvalidPort = errors.New("port must be between 1 and 65535")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidPingInterval indicates that the ping interval setting is invalid.
	ErrInvalidPingInterval = errors.New("ping_interval must be positive")
	// ErrEmptyTempDir indicates that the temp directory path is missing.
	ErrEmptyTempDir = errors.New("temp_dir cannot be empty")
)

// environmentBindings maps configuration keys to the environment variables that supply them.
//
//nolint:gochecknoglobals // This is immutable lookup data used during configuration loading.
var environmentBindings = map[string]string{
	"telegram_token":        "TELEGRAM_TOKEN",
	"spotify_client_id":     "SPOTIFY_CLIENT_ID",
	"spotify_client_secret": "SPOTIFY_CLIENT_SECRET",
	"max_file_size":         "MAX_FILE_SIZE",
	"max_duration":          "MAX_DURATION",
	"temp_dir":              "TEMP_DIR",
	"port":                  "PORT",
	"log_level":             "LOG_LEVEL",
	"ping_interval":         "PING_INTERVAL",
}

// LoadConfig loads configuration settings from the environment
// and, optionally, from a YAML file.
// Environment variables take precedence over file values.
func LoadConfig(configFilename string) (*Config, error) {
	v := viper.New()

	v.SetDefault("max_file_size", DefaultMaxFileSize)
	v.SetDefault("max_duration", DefaultMaxDuration)
	v.SetDefault("temp_dir", DefaultTempDir)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("ping_interval", DefaultPingInterval)

	for key, envName := range environmentBindings {
		if err := v.BindEnv(key, envName); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", envName, err)
		}
	}

	if configFilename != "" {
		v.SetConfigFile(configFilename)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	token := strings.TrimSpace(cfg.TelegramToken)
	if token == "" {
		return ErrEmptyTelegramToken
	}

	parsedMaxFileSize, err := humanize.ParseBytes(cfg.MaxFileSize)
	if err != nil {
		return fmt.Errorf("failed to parse max file size: %w", err)
	}

	if parsedMaxFileSize == 0 {
		return ErrInvalidMaxFileSize
	}

	cfg.ParsedMaxFileSize = utils.SafeUint64ToInt64(parsedMaxFileSize)

	cfg.ParsedMaxDuration, err = time.ParseDuration(cfg.MaxDuration)
	if err != nil {
		return fmt.Errorf("failed to parse max duration: %w", err)
	}

	if cfg.ParsedMaxDuration <= 0 {
		return ErrInvalidMaxDuration
	}

	if strings.TrimSpace(cfg.TempDir) == "" {
		return ErrEmptyTempDir
	}

	if cfg.Port < 1 || cfg.Port > maxPort {
		return ErrInvalidPort
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedPingInterval, err = time.ParseDuration(cfg.PingInterval)
	if err != nil {
		return fmt.Errorf("failed to parse ping interval: %w", err)
	}

	if cfg.ParsedPingInterval <= 0 {
		return ErrInvalidPingInterval
	}

	return nil
}

// IsSpotifyEnabled reports whether Spotify credentials are configured.
// When they are not, the Spotify acquirer degrades gracefully to an unavailable state.
func (cfg *Config) IsSpotifyEnabled() bool {
	return strings.TrimSpace(cfg.SpotifyClientID) != "" && strings.TrimSpace(cfg.SpotifyClientSecret) != ""
}
