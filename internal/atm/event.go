package atm

import (
	"github.com/dmitrijs2005/gophatm/internal/bank"
	"github.com/shopspring/decimal"
)

// EventKind names an event for logs and metrics.
type EventKind string

const (
	KindCardInserted        EventKind = "card_inserted"
	KindCardEjected         EventKind = "card_ejected"
	KindPinEntered          EventKind = "pin_entered"
	KindTransactionSelected EventKind = "transaction_selected"
	KindAmountEntered       EventKind = "amount_entered"
	KindCashDeposited       EventKind = "cash_deposited"
)

func (k EventKind) String() string { return string(k) }

// Event is one of the six inputs the controller understands. The set is
// closed: only the types in this file implement it.
type Event interface {
	Kind() EventKind
	event()
}

type CardInserted struct{ CardID string }

type CardEjected struct{}

type PinEntered struct{ Pin string }

type TransactionSelected struct{ Type bank.TransactionType }

type AmountEntered struct{ Amount decimal.Decimal }

type CashDeposited struct{ Amount decimal.Decimal }

func (CardInserted) Kind() EventKind        { return KindCardInserted }
func (CardEjected) Kind() EventKind         { return KindCardEjected }
func (PinEntered) Kind() EventKind          { return KindPinEntered }
func (TransactionSelected) Kind() EventKind { return KindTransactionSelected }
func (AmountEntered) Kind() EventKind       { return KindAmountEntered }
func (CashDeposited) Kind() EventKind       { return KindCashDeposited }

func (CardInserted) event()        {}
func (CardEjected) event()         {}
func (PinEntered) event()          {}
func (TransactionSelected) event() {}
func (AmountEntered) event()       {}
func (CashDeposited) event()       {}
