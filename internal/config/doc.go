// Package config loads runtime configuration for the ATM simulator.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-l string   log level: debug, info, warn, error
//	-b string   log backend: slog or zap
//	-f string   log format: text or json
//
// # JSON schema
//
// Accounts can only be given in the JSON file. Balances may be numbers or
// decimal strings:
//
//	{
//	  "log_level": "debug",
//	  "log_backend": "zap",
//	  "log_format": "json",
//	  "accounts": [
//	    {"number": "123456", "type": "SAVING", "card_id": "1111-2222-3333-4444", "pin": "1234", "balance": "500"}
//	  ]
//	}
//
// A JSON file that lists accounts replaces the default demo account.
package config
