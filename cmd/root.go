// Package cmd wires the command-line interface to the application core.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/phasegym/tunegrab/internal/app"
	"github.com/phasegym/tunegrab/internal/config"
	"github.com/phasegym/tunegrab/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "tunegrab [flags]",
		Short: "Telegram bot that downloads music from YouTube, SoundCloud and Spotify links.",
		Long: `TuneGrab is a Telegram bot that turns pasted track links into audio files.

Send the bot a track URL from YouTube, SoundCloud or Spotify and it replies
with the audio, tagged with the track's title and artist. The bot also serves
a small keep-alive HTTP endpoint so hosting platforms see it as alive.

Configuration comes from environment variables (TELEGRAM_TOKEN and friends),
optionally overridden by a YAML file and command-line flags.`,
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteRootCommand(cmd.Context(), appConfig)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		"path to the configuration file (environment variables are used when omitted)")

	rootCmdFlags := rootCmd.Flags()

	rootCmdFlags.IntP(
		"port",
		"p",
		0,
		"listen port for the keep-alive HTTP server.")

	rootCmdFlags.StringP(
		"temp-dir",
		"t",
		"",
		"directory for staging downloaded files before upload.")

	rootCmdFlags.StringP(
		"log-level",
		"l",
		"",
		"logging verbosity: debug, info, warn, error.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("port"); flag != nil && flag.Changed {
		cfg.Port, _ = flags.GetInt("port")
	}

	if flag := flags.Lookup("temp-dir"); flag != nil && flag.Changed {
		cfg.TempDir, _ = flags.GetString("temp-dir")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	logger.SetLevel(cfg.ParsedLogLevel)

	return nil
}
