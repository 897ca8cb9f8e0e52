package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/gophatm/internal/flagx"
)

// parseFlags overrides logging settings from -l, -b and -f. Other flags in
// args are ignored.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("atm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogBackend, "b", cfg.LogBackend, "log backend (slog, zap)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json)")

	return fs.Parse(flagx.Filter(args, "l", "b", "f"))
}
