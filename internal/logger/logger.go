// Package logger holds the process-wide structured logger.
package logger

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger. It discards everything until Initialize is called.
var Logger *zap.SugaredLogger

func init() {
	Logger = zap.NewNop().Sugar()
}

// Options selects the logger output.
type Options struct {
	// JSON switches from the console encoder to JSON lines.
	JSON bool
	// Verbose lowers the level from info to debug.
	Verbose bool
	// File receives log output instead of stderr when set.
	File string
}

// Initialize replaces the global logger according to opts.
func Initialize(opts Options) error {
	level := zap.InfoLevel
	if opts.Verbose {
		level = zap.DebugLevel
	}

	var encoder zapcore.Encoder

	if opts.JSON {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

		if opts.File != "" {
			cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		}

		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	sink := zapcore.Lock(os.Stderr)

	if opts.File != "" {
		f, _, err := zap.Open(opts.File)
		if err != nil {
			return errors.Wrapf(err, "opening log file %s", opts.File)
		}

		sink = f
	}

	Logger = zap.New(zapcore.NewCore(encoder, sink, level)).Sugar()

	return nil
}

// Cleanup flushes any buffered log entries.
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
