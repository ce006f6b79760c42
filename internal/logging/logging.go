// Package logging builds the zerolog logger used by the kruskals command.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvLogLevel overrides the configured level when set to a known level name.
const EnvLogLevel = "KRUSKALS_LOG_LEVEL"

// Config controls logger construction.
type Config struct {
	Level     zerolog.Level
	NoColor   bool
	Timestamp bool
}

// DefaultConfig logs at info with timestamps and colours.
func DefaultConfig() Config {
	return Config{
		Level:     zerolog.InfoLevel,
		Timestamp: true,
	}
}

// New returns a console logger writing to w, tagged with app.
func New(w io.Writer, app string, cfg Config) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	ctx := zerolog.New(output).Level(cfg.Level).With().Str("app", app)
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}

	return ctx.Logger()
}

// ApplyEnv overrides cfg.Level from EnvLogLevel when it holds a valid name.
func ApplyEnv(cfg *Config) {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
}

// ParseLevel maps a level name to a zerolog.Level. The second result is false
// for empty or unknown names, in which case the level is info.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
