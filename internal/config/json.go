package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophatm/internal/flagx"
)

// JsonConfig is the on-disk shape of Config. Empty fields leave the current
// value alone.
type JsonConfig struct {
	LogLevel   string          `json:"log_level"`
	LogBackend string          `json:"log_backend"`
	LogFormat  string          `json:"log_format"`
	Accounts   []AccountConfig `json:"accounts"`
}

// parseJson overlays cfg with the file given by -c or -config in args. It is
// a no-op when neither flag is present.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	if len(jc.Accounts) > 0 {
		cfg.Accounts = jc.Accounts
	}
	return nil
}
