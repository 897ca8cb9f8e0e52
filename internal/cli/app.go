package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophatm/internal/atm"
	"github.com/dmitrijs2005/gophatm/internal/atm/hardware"
	"github.com/dmitrijs2005/gophatm/internal/bank"
	"github.com/dmitrijs2005/gophatm/internal/config"
	"github.com/dmitrijs2005/gophatm/internal/logging"
	"github.com/dmitrijs2005/gophatm/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "atm"

type App struct {
	config   *config.Config
	logger   logging.Logger
	registry *prometheus.Registry

	ledger  *bank.Ledger
	machine *atm.Machine

	reader *hardware.CardReader
	keypad *hardware.Keypad
	slot   *hardware.DepositSlot

	out io.Writer
}

// NewApp builds the simulator with stdout for customer-facing output and
// stderr for logs.
func NewApp(c *config.Config) (*App, error) {
	return newApp(c, os.Stdout, os.Stderr)
}

func newApp(c *config.Config, out, logOut io.Writer, ledgerOpts ...bank.Option) (*App, error) {
	logger, err := logging.New(logging.Options{
		Backend: c.LogBackend,
		Format:  c.LogFormat,
		Level:   c.LogLevel,
		Output:  logOut,
	})
	if err != nil {
		return nil, err
	}

	ledger := bank.NewLedger(append([]bank.Option{bank.WithLogger(logger.With("component", "ledger"))}, ledgerOpts...)...)
	if err := c.Seed(ledger); err != nil {
		return nil, fmt.Errorf("seed accounts: %w", err)
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewPrometheusCollector(metricsNamespace)
	if err := collector.Register(registry); err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	machine := atm.NewMachine(
		ledger,
		hardware.NewConsoleDisplay(out),
		hardware.NewCashDispenser(out),
		atm.WithLogger(logger.With("component", "atm")),
		atm.WithMetrics(collector),
	)

	return &App{
		config:   c,
		logger:   logger,
		registry: registry,
		ledger:   ledger,
		machine:  machine,
		reader:   hardware.NewCardReader(machine),
		keypad:   hardware.NewKeypad(machine),
		slot:     hardware.NewDepositSlot(machine),
		out:      out,
	}, nil
}

func (a *App) status() string {
	return a.machine.State().String()
}

// Run starts the REPL on stdin and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.syncLogger()

	a.logger.Info(ctx, "simulator started", "accounts", len(a.ledger.Accounts()))
	printlnFn("ATM simulator (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) syncLogger() {
	if s, ok := a.logger.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
