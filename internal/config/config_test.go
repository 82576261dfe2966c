package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// validTestConfig returns a configuration that passes validation.
func validTestConfig() *Config {
	return &Config{
		TelegramToken: "123456:test-token",
		MaxFileSize:   DefaultMaxFileSize,
		MaxDuration:   DefaultMaxDuration,
		TempDir:       DefaultTempDir,
		Port:          DefaultPort,
		LogLevel:      DefaultLogLevel,
		PingInterval:  DefaultPingInterval,
	}
}

// TestLoadConfig_Defaults tests that defaults are applied when no file is given.
func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxFileSize, cfg.MaxFileSize)
	assert.Equal(t, DefaultMaxDuration, cfg.MaxDuration)
	assert.Equal(t, DefaultTempDir, cfg.TempDir)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultPingInterval, cfg.PingInterval)
}

// TestLoadConfig_Environment tests that environment variables override defaults.
func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "env-token")
	t.Setenv("MAX_DURATION", "10m")
	t.Setenv("SPOTIFY_CLIENT_ID", "env-client-id")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.TelegramToken)
	assert.Equal(t, "10m", cfg.MaxDuration)
	assert.Equal(t, "env-client-id", cfg.SpotifyClientID)
}

// TestLoadConfig_MissingFile tests that a missing config file is reported.
func TestLoadConfig_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig("does-not-exist.yaml")
	require.Error(t, err)
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		mutate      func(cfg *Config)
		expectedErr error
	}{
		{
			name:        "valid config",
			mutate:      func(*Config) {},
			expectedErr: nil,
		},
		{
			name: "missing telegram token",
			mutate: func(cfg *Config) {
				cfg.TelegramToken = "   "
			},
			expectedErr: ErrEmptyTelegramToken,
		},
		{
			name: "zero max file size",
			mutate: func(cfg *Config) {
				cfg.MaxFileSize = "0"
			},
			expectedErr: ErrInvalidMaxFileSize,
		},
		{
			name: "negative max duration",
			mutate: func(cfg *Config) {
				cfg.MaxDuration = "-5m"
			},
			expectedErr: ErrInvalidMaxDuration,
		},
		{
			name: "empty temp dir",
			mutate: func(cfg *Config) {
				cfg.TempDir = ""
			},
			expectedErr: ErrEmptyTempDir,
		},
		{
			name: "port out of range",
			mutate: func(cfg *Config) {
				cfg.Port = 70000
			},
			expectedErr: ErrInvalidPort,
		},
		{
			name: "unknown log level",
			mutate: func(cfg *Config) {
				cfg.LogLevel = "loud"
			},
			expectedErr: ErrUnknownLogLevel,
		},
		{
			name: "negative ping interval",
			mutate: func(cfg *Config) {
				cfg.PingInterval = "-1m"
			},
			expectedErr: ErrInvalidPingInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validTestConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)

				return
			}

			require.NoError(t, err)
		})
	}
}

// TestValidateConfig_DerivedFields tests that validation fills parsed fields.
func TestValidateConfig_DerivedFields(t *testing.T) {
	t.Parallel()

	cfg := validTestConfig()
	cfg.MaxFileSize = "4 MiB"
	cfg.MaxDuration = "15m"
	cfg.LogLevel = "debug"
	cfg.PingInterval = "2m"

	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, int64(4*1024*1024), cfg.ParsedMaxFileSize)
	assert.Equal(t, 15*time.Minute, cfg.ParsedMaxDuration)
	assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
	assert.Equal(t, 2*time.Minute, cfg.ParsedPingInterval)
}

// TestIsSpotifyEnabled tests the IsSpotifyEnabled method.
func TestIsSpotifyEnabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		id       string
		secret   string
		expected bool
	}{
		{
			name:     "both set",
			id:       "client-id",
			secret:   "client-secret",
			expected: true,
		},
		{
			name:     "missing secret",
			id:       "client-id",
			secret:   "",
			expected: false,
		},
		{
			name:     "missing id",
			id:       "",
			secret:   "client-secret",
			expected: false,
		},
		{
			name:     "whitespace only",
			id:       "  ",
			secret:   "  ",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &Config{SpotifyClientID: tt.id, SpotifyClientSecret: tt.secret}
			assert.Equal(t, tt.expected, cfg.IsSpotifyEnabled())
		})
	}
}
