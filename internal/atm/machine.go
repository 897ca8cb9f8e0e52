package atm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophatm/internal/bank"
	"github.com/dmitrijs2005/gophatm/internal/common"
	"github.com/dmitrijs2005/gophatm/internal/logging"
	"github.com/dmitrijs2005/gophatm/internal/metrics"
	"github.com/shopspring/decimal"
)

// Machine is the ATM controller. It serves one session at a time; concurrent
// Handle calls are serialized.
type Machine struct {
	mu      sync.Mutex
	state   State
	session Session

	env       env
	display   Display
	dispenser CashDispenser
}

// Option configures a Machine.
type Option func(*Machine)

func WithLogger(l logging.Logger) Option {
	return func(m *Machine) { m.env.logger = l }
}

func WithMetrics(c metrics.Collector) Option {
	return func(m *Machine) { m.env.metrics = c }
}

// NewMachine returns a machine in Idle with no session.
func NewMachine(ledger Ledger, display Display, dispenser CashDispenser, opts ...Option) *Machine {
	m := &Machine{
		state:     Idle,
		display:   display,
		dispenser: dispenser,
		env: env{
			ledger:  ledger,
			logger:  logging.NopLogger{},
			metrics: metrics.Nop{},
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the active state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Session returns a copy of the current session.
func (m *Machine) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// Handle delivers ev to the active state. It returns an error only for
// invariant violations; state and session are then left as they were.
func (m *Machine) Handle(ctx context.Context, ev Event) error {
	if ev == nil {
		return fmt.Errorf("nil event: %w", common.ErrInvariantViolation)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	from := m.state
	log := m.env.logger.With("session", m.session.ID, "state", from.String(), "event", ev.Kind().String())

	p, ok := policies[from]
	if !ok {
		return fmt.Errorf("no policy for state %d: %w", int(from), common.ErrInvariantViolation)
	}

	log.Debug(ctx, "event received")
	start := time.Now()
	out, err := p(ctx, &m.env, m.session, ev)
	m.env.metrics.RecordEvent(from.String(), ev.Kind().String(), time.Since(start))
	if err != nil {
		log.Error(ctx, "event rejected by invariant check", "error", err)
		return err
	}

	for _, eff := range out.effects {
		switch eff.kind {
		case effectDispense:
			m.dispenser.Dispense(eff.amount)
		case effectShow:
			m.display.Show(eff.message)
		}
	}

	if out.rejection != "" {
		m.env.metrics.RecordRejection(out.rejection)
		log.Info(ctx, "input rejected", "reason", out.rejection)
	}
	if out.next != from {
		m.env.metrics.RecordTransition(from.String(), out.next.String())
		log.Info(ctx, "state changed", "to", out.next.String(), "new_session", out.session.ID)
	}

	m.state = out.next
	m.session = out.session
	return nil
}

func (m *Machine) InsertCard(ctx context.Context, cardID string) error {
	return m.Handle(ctx, CardInserted{CardID: cardID})
}

func (m *Machine) EjectCard(ctx context.Context) error {
	return m.Handle(ctx, CardEjected{})
}

func (m *Machine) EnterPin(ctx context.Context, pin string) error {
	return m.Handle(ctx, PinEntered{Pin: pin})
}

func (m *Machine) SelectTransaction(ctx context.Context, t bank.TransactionType) error {
	return m.Handle(ctx, TransactionSelected{Type: t})
}

func (m *Machine) EnterAmount(ctx context.Context, amount decimal.Decimal) error {
	return m.Handle(ctx, AmountEntered{Amount: amount})
}

func (m *Machine) CollectDeposit(ctx context.Context, amount decimal.Decimal) error {
	return m.Handle(ctx, CashDeposited{Amount: amount})
}
