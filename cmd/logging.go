package cmd

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogging installs the global logger described by cfg and returns it.
// Logs go to stderr so that they never mix with the dashboard.
func setupLogging(cfg LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.WarnLevel
	}
	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	if cfg.Format == "json" {
		w = os.Stderr
	}
	log.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return log.Logger
}
