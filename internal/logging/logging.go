// Package logging builds the zerolog logger shared by the engine and the TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jask/amountfield/internal/config"
)

// New returns a logger writing JSON lines to cfg.Path. The terminal belongs to
// the TUI, so an empty path yields a no-op logger rather than stderr. The
// returned closer must be called on shutdown.
func New(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	if cfg.Path == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}
	return NewWriter(f, level), f, nil
}

// NewWriter returns a timestamped logger on w at the given level.
func NewWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a config level name to a zerolog level. Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return level, nil
}
