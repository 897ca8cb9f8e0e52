package atm

import (
	"context"

	"github.com/dmitrijs2005/gophatm/internal/bank"
	"github.com/shopspring/decimal"
)

// Display renders messages to the customer.
type Display interface {
	Show(message string)
	LastMessage() string
}

// CashDispenser hands out notes. The controller treats it as instantaneous.
type CashDispenser interface {
	Dispense(amount decimal.Decimal)
}

// EventSink accepts events from input peripherals. *Machine implements it.
type EventSink interface {
	Handle(ctx context.Context, ev Event) error
}

// CardReader turns card movements into CardInserted and CardEjected events.
type CardReader interface {
	InsertCard(ctx context.Context, cardID string) error
	EjectCard(ctx context.Context) error
	CurrentCardID() (string, bool)
}

// Keypad turns key presses into PinEntered, TransactionSelected and
// AmountEntered events.
type Keypad interface {
	EnterPin(ctx context.Context, pin string) error
	SelectTransaction(ctx context.Context, t bank.TransactionType) error
	EnterAmount(ctx context.Context, amount decimal.Decimal) error
}

// DepositSlot turns collected cash into CashDeposited events.
type DepositSlot interface {
	AcceptDeposit(ctx context.Context, amount decimal.Decimal) error
}

// Ledger is the part of *bank.Ledger the controller uses.
type Ledger interface {
	ValidateCard(cardID string) bool
	CheckPin(cardID, pin string) bool
	AccountByCard(cardID string) (*bank.Account, error)
	Withdraw(acc *bank.Account, amount decimal.Decimal) (bool, error)
	Deposit(acc *bank.Account, amount decimal.Decimal) error
}
