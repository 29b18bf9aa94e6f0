// Command velfield builds 2D interval velocity fields from sparse
// velocity picks and exports them for migration workflows.
package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seisgo/velfield/internal/config"
)

var (
	configDir string
	logLevel  string

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "velfield",
	Short:         "Build seismic velocity fields from picked velocities",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(configDir); err != nil {
			return err
		}
		if logLevel != "" {
			viper.Set("logLevel", logLevel)
		}
		setupLogging()
		return nil
	},
}

func setupLogging() {
	var level zerolog.Level
	switch strings.ToUpper(config.GetString("logLevel")) {
	case "DEBUG":
		level = zerolog.DebugLevel
	case "INFO":
		level = zerolog.InfoLevel
	case "WARN":
		level = zerolog.WarnLevel
	case "ERROR":
		level = zerolog.ErrorLevel
	case "TRACE":
		level = zerolog.TraceLevel
	default:
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}

func main() {
	// Replaced once the config is loaded; covers Execute errors raised
	// before PersistentPreRunE runs.
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".",
		"directory searched for "+config.ConfigFileName)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level override (trace|debug|info|warn|error)")

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
