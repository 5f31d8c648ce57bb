// Package logging holds the process-wide structured logger.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVar enables logging at start-up when set. A level name ("debug",
// "info", "warn", "error") selects that level; any other non-empty value
// means debug.
const EnvVar = "UCELL_LOG"

// L is the global logger instance. It discards all output unless EnvVar is
// set or Init is called with Enabled.
var L = fromEnv(os.Getenv(EnvVar))

// Options configures the logger initialization.
type Options struct {
	Enabled     bool   // If false, all logging is discarded
	Level       string // Minimum level name. Default: debug
	Development bool   // Console encoding instead of JSON
}

// Init replaces L. Call from main() before any log calls.
func Init(opts Options) error {
	if !opts.Enabled {
		L = zap.NewNop()
		return nil
	}

	var cfg zap.Config
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(opts.Level))
	cfg.OutputPaths = []string{"stderr"}

	lg, err := cfg.Build()
	if err != nil {
		return err
	}
	L = lg
	return nil
}

// Named returns a child of L for one subsystem.
func Named(name string) *zap.Logger {
	return L.Named(name)
}

// Sync flushes buffered entries, ignoring the errors stderr returns on some platforms.
func Sync() {
	_ = L.Sync()
}

// ParseLevel maps a level name to a zap level. Unknown names map to debug.
func ParseLevel(s string) zapcore.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zapcore.DebugLevel
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return zapcore.DebugLevel
	}
	return lvl
}

func fromEnv(v string) *zap.Logger {
	if v == "" {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(v))
	lg, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return lg
}
