// Package logger configures zerolog for zwq.
package logger

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/yyyoichi/zerowidth/internal/config"
)

const (
	// Text is the human readable console format.
	Text = "text"
	// JSON writes one JSON object per event.
	JSON = "json"
)

// FromConfig returns a logger writing to w with settings matching cfg.
// Unknown levels fall back to info.
func FromConfig(cfg config.LoggingConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	if cfg.Format == Text {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
