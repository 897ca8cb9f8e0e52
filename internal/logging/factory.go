package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"

	FormatText = "text"
	FormatJSON = "json"
)

// Options select and tune a backend.
type Options struct {
	Backend string    // slog (default) or zap
	Format  string    // text (default) or json
	Level   string    // debug, info (default), warn, error
	Output  io.Writer // required
}

// New builds a Logger for opts. Unknown levels fall back to info; an
// unknown backend or format is an error.
func New(opts Options) (Logger, error) {
	if opts.Output == nil {
		return nil, fmt.Errorf("logging: output writer is required")
	}

	switch strings.ToLower(opts.Backend) {
	case "", BackendSlog:
		return newSlog(opts)
	case BackendZap:
		return newZap(opts)
	default:
		return nil, fmt.Errorf("logging: unknown backend %q", opts.Backend)
	}
}

func newSlog(opts Options) (Logger, error) {
	ho := &slog.HandlerOptions{Level: slogLevel(opts.Level)}

	var h slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		h = slog.NewTextHandler(opts.Output, ho)
	case FormatJSON:
		h = slog.NewJSONHandler(opts.Output, ho)
	default:
		return nil, fmt.Errorf("logging: unknown format %q", opts.Format)
	}
	return NewSlogLogger(slog.New(h)), nil
}

func newZap(opts Options) (Logger, error) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeDuration = zapcore.StringDurationEncoder

	var enc zapcore.Encoder
	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		enc = zapcore.NewConsoleEncoder(encCfg)
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("logging: unknown format %q", opts.Format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(opts.Output), zapLevel(opts.Level))
	return NewZapLogger(zap.New(core)), nil
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zapLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
