// Package logging wires a file-backed zap logger. TUI mode owns the
// terminal, so logs never go to stderr unless verbose one-shot mode
// asks for it.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/youngsunson/spellv3/internal/config"
)

// New opens (or creates) the log file under the config directory and
// returns a logger writing to it. Callers that cannot log should keep
// working, so failures degrade to a no-op logger.
func New(debug bool) *zap.Logger {
	dir, err := config.ConfigDir()
	if err != nil {
		return zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return zap.NewNop()
	}

	path := filepath.Join(dir, "spellv3.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return zap.NewNop()
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(f),
		level,
	)
	return zap.New(core)
}
