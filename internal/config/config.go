package config

import (
	"fmt"

	"github.com/dmitrijs2005/gophatm/internal/bank"
	"github.com/shopspring/decimal"
)

// AccountConfig describes one account to open at startup.
type AccountConfig struct {
	Number  string          `json:"number"`
	Type    string          `json:"type"`
	CardID  string          `json:"card_id"`
	Pin     string          `json:"pin"`
	Balance decimal.Decimal `json:"balance"`
}

// Config holds runtime settings for the simulator.
type Config struct {
	LogLevel   string
	LogBackend string
	LogFormat  string
	Accounts   []AccountConfig
}

// LoadDefaults populates c with the demo setup.
func (c *Config) LoadDefaults() {
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.LogFormat = "text"
	c.Accounts = []AccountConfig{{
		Number:  "123456",
		Type:    string(bank.Saving),
		CardID:  "1111-2222-3333-4444",
		Pin:     "1234",
		Balance: decimal.NewFromInt(500),
	}}
}

// LoadConfig applies defaults, then the JSON file named in args (if any),
// then flags from args. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Seed opens every configured account in l and credits its opening balance.
func (c *Config) Seed(l *bank.Ledger) error {
	for _, ac := range c.Accounts {
		t, err := bank.ParseAccountType(ac.Type)
		if err != nil {
			return fmt.Errorf("account %s: %w", ac.Number, err)
		}
		if ac.Balance.IsNegative() {
			return fmt.Errorf("account %s: negative opening balance %s", ac.Number, ac.Balance)
		}

		acc, err := l.AddAccount(ac.Number, t, ac.CardID, ac.Pin)
		if err != nil {
			return fmt.Errorf("account %s: %w", ac.Number, err)
		}
		if ac.Balance.IsPositive() {
			if err := l.Deposit(acc, ac.Balance); err != nil {
				return fmt.Errorf("account %s: %w", ac.Number, err)
			}
		}
	}
	return nil
}
