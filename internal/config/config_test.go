package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophatm/internal/bank"
	"github.com/dmitrijs2005/gophatm/internal/common"
	"github.com/dmitrijs2005/gophatm/internal/cryptox"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decimalEq lets cmp compare decimals by value.
var decimalEq = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func writeTempJSON(t *testing.T, data any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "atm.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "slog", c.LogBackend)
	assert.Equal(t, "text", c.LogFormat)
	require.Len(t, c.Accounts, 1)
	assert.Equal(t, "123456", c.Accounts[0].Number)
	assert.Equal(t, "SAVING", c.Accounts[0].Type)
	assert.True(t, c.Accounts[0].Balance.Equal(decimal.NewFromInt(500)))
}

func TestLoadConfig(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"log_level":   "debug",
		"log_backend": "zap",
		"accounts": []map[string]any{
			{"number": "1", "type": "CHECKING", "card_id": "c1", "pin": "0000", "balance": 12.5},
			{"number": "2", "type": "saving", "card_id": "c2", "pin": "9999", "balance": "7"},
		},
	})

	tests := []struct {
		name    string
		args    []string
		want    *Config
		wantErr bool
	}{
		{
			name: "defaults only",
			args: nil,
			want: defaults(),
		},
		{
			name: "flags override defaults",
			args: []string{"-l", "warn", "-f", "json", "-unrelated", "x"},
			want: func() *Config {
				c := defaults()
				c.LogLevel = "warn"
				c.LogFormat = "json"
				return c
			}(),
		},
		{
			name: "json then flags",
			args: []string{"-c", path, "-l", "error"},
			want: &Config{
				LogLevel:   "error",
				LogBackend: "zap",
				LogFormat:  "text",
				Accounts: []AccountConfig{
					{Number: "1", Type: "CHECKING", CardID: "c1", Pin: "0000", Balance: decimal.RequireFromString("12.5")},
					{Number: "2", Type: "saving", CardID: "c2", Pin: "9999", Balance: decimal.NewFromInt(7)},
				},
			},
		},
		{
			name:    "missing file",
			args:    []string{"-config", filepath.Join(t.TempDir(), "nope.json")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadConfig(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.want, got, decimalEq))
		})
	}
}

func TestParseJson_Invalid(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

	err := parseJson(defaults(), []string{"-c", bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestParseJson_EmptyFieldsKeepValues(t *testing.T) {
	path := writeTempJSON(t, map[string]any{"log_format": "json"})

	cfg := defaults()
	require.NoError(t, parseJson(cfg, []string{"-c", path}))

	want := defaults()
	want.LogFormat = "json"
	assert.Empty(t, cmp.Diff(want, cfg, decimalEq))
}

func TestSeed(t *testing.T) {
	l := bank.NewLedger(bank.WithPinParams(cryptox.PinParams{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32}))
	cfg := defaults()
	cfg.Accounts = append(cfg.Accounts, AccountConfig{Number: "777", Type: "checking", CardID: "c-777", Pin: "7777"})

	require.NoError(t, cfg.Seed(l))

	acc, err := l.AccountByCard("1111-2222-3333-4444")
	require.NoError(t, err)
	assert.True(t, acc.Balance().Equal(decimal.NewFromInt(500)))
	assert.True(t, l.CheckPin("1111-2222-3333-4444", "1234"))

	acc, err = l.AccountByNumber("777")
	require.NoError(t, err)
	assert.Equal(t, bank.Checking, acc.Type())
	assert.True(t, acc.Balance().IsZero())
}

func TestSeed_Errors(t *testing.T) {
	tests := []struct {
		name     string
		accounts []AccountConfig
		target   error
	}{
		{
			name:     "unknown type",
			accounts: []AccountConfig{{Number: "1", Type: "GOLD", CardID: "c", Pin: "1"}},
			target:   common.ErrorValidation,
		},
		{
			name: "duplicate card",
			accounts: []AccountConfig{
				{Number: "1", Type: "SAVING", CardID: "c", Pin: "1"},
				{Number: "2", Type: "SAVING", CardID: "c", Pin: "2"},
			},
			target: common.ErrorAlreadyExists,
		},
		{
			name:     "negative balance",
			accounts: []AccountConfig{{Number: "1", Type: "SAVING", CardID: "c", Pin: "1", Balance: decimal.NewFromInt(-1)}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := bank.NewLedger(bank.WithPinParams(cryptox.PinParams{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32}))
			err := (&Config{Accounts: tt.accounts}).Seed(l)
			require.Error(t, err)
			if tt.target != nil {
				assert.True(t, errors.Is(err, tt.target))
			}
		})
	}
}
