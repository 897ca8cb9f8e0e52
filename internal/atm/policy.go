package atm

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophatm/internal/bank"
	"github.com/dmitrijs2005/gophatm/internal/common"
	"github.com/dmitrijs2005/gophatm/internal/logging"
	"github.com/dmitrijs2005/gophatm/internal/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// env is what a policy may consult besides the session.
type env struct {
	ledger  Ledger
	logger  logging.Logger
	metrics metrics.Collector
}

type effectKind int

const (
	effectShow effectKind = iota
	effectDispense
)

type effect struct {
	kind    effectKind
	message string
	amount  decimal.Decimal
}

func show(msg string) effect                 { return effect{kind: effectShow, message: msg} }
func dispense(amount decimal.Decimal) effect { return effect{kind: effectDispense, amount: amount} }

// outcome is a policy's decision. The machine applies effects in order and
// then commits next and session.
type outcome struct {
	next      State
	session   Session
	effects   []effect
	rejection string
}

// policy handles one event in one state. It returns an error only for
// invariant violations, in which case the machine commits nothing.
type policy func(ctx context.Context, e *env, s Session, ev Event) (outcome, error)

var policies = map[State]policy{
	Idle:                 idlePolicy,
	PinEntry:             pinEntryPolicy,
	TransactionSelection: transactionSelectionPolicy,
	WithdrawAmountEntry:  withdrawAmountEntryPolicy,
	DepositCollection:    depositCollectionPolicy,
}

func invalidAction(state State, s Session) outcome {
	return outcome{next: state, session: s, effects: []effect{show(MsgInvalidAction)}, rejection: metrics.RejectInvalidAction}
}

func reject(state State, s Session, msg, reason string) outcome {
	return outcome{next: state, session: s, effects: []effect{show(msg)}, rejection: reason}
}

func moveTo(state State, s Session, effects ...effect) outcome {
	return outcome{next: state, session: s, effects: effects}
}

func violation(state State, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", state, fmt.Sprintf(format, args...), common.ErrInvariantViolation)
}

// resolveAccount looks the session's card up on every call so a ledger change
// mid-session is never masked by a stale account.
func resolveAccount(e *env, state State, s Session) (*bank.Account, error) {
	if !s.Active() {
		return nil, violation(state, "no card in session")
	}
	acc, err := e.ledger.AccountByCard(s.CardID)
	if err != nil {
		return nil, violation(state, "card %s does not resolve to an account (%v)", s.CardID, err)
	}
	return acc, nil
}

func idlePolicy(_ context.Context, e *env, s Session, ev Event) (outcome, error) {
	switch ev := ev.(type) {
	case CardInserted:
		if !e.ledger.ValidateCard(ev.CardID) {
			return reject(Idle, s, MsgInvalidCard, metrics.RejectInvalidCard), nil
		}
		return moveTo(PinEntry, Session{ID: uuid.NewString(), CardID: ev.CardID}, show(MsgEnterPin)), nil
	default:
		return invalidAction(Idle, s), nil
	}
}

func pinEntryPolicy(_ context.Context, e *env, s Session, ev Event) (outcome, error) {
	switch ev := ev.(type) {
	case CardEjected:
		return moveTo(Idle, Session{}, show(MsgCardEjected)), nil
	case PinEntered:
		if !s.Active() {
			return outcome{}, violation(PinEntry, "no card in session")
		}
		if !e.ledger.CheckPin(s.CardID, ev.Pin) {
			return reject(PinEntry, s, MsgInvalidPin, metrics.RejectInvalidPin), nil
		}
		return moveTo(TransactionSelection, s, show(MsgPinCorrect)), nil
	default:
		return invalidAction(PinEntry, s), nil
	}
}

func transactionSelectionPolicy(_ context.Context, _ *env, s Session, ev Event) (outcome, error) {
	switch ev := ev.(type) {
	case CardEjected:
		return moveTo(Idle, Session{}, show(MsgSelectionCancelled)), nil
	case TransactionSelected:
		s.Pending = ev.Type
		switch ev.Type {
		case bank.TransactionWithdraw:
			return moveTo(WithdrawAmountEntry, s, show(MsgEnterAmount)), nil
		case bank.TransactionDeposit:
			return moveTo(DepositCollection, s, show(MsgDepositCash)), nil
		default:
			return outcome{}, violation(TransactionSelection, "unknown transaction type %d", int(ev.Type))
		}
	default:
		return invalidAction(TransactionSelection, s), nil
	}
}

func withdrawAmountEntryPolicy(_ context.Context, e *env, s Session, ev Event) (outcome, error) {
	switch ev := ev.(type) {
	case CardEjected:
		return moveTo(Idle, Session{}, show(MsgTransactionCancelled)), nil
	case AmountEntered:
		if !ev.Amount.IsPositive() {
			return reject(WithdrawAmountEntry, s, MsgInvalidAmount, metrics.RejectInvalidAmount), nil
		}
		acc, err := resolveAccount(e, WithdrawAmountEntry, s)
		if err != nil {
			return outcome{}, err
		}

		s.PendingAmount = ev.Amount
		ok, err := e.ledger.Withdraw(acc, ev.Amount)
		if err != nil {
			return outcome{}, violation(WithdrawAmountEntry, "ledger refused withdrawal of %s: %v", ev.Amount, err)
		}
		e.metrics.RecordWithdrawal(ev.Amount.InexactFloat64(), ok)

		if !ok {
			return reject(TransactionSelection, s.settled(), MsgInsufficientFunds, metrics.RejectInsufficientFunds), nil
		}
		return moveTo(TransactionSelection, s.settled(), dispense(ev.Amount), show(MsgTakeCash)), nil
	default:
		return invalidAction(WithdrawAmountEntry, s), nil
	}
}

func depositCollectionPolicy(_ context.Context, e *env, s Session, ev Event) (outcome, error) {
	switch ev := ev.(type) {
	case CardEjected:
		return moveTo(Idle, Session{}, show(MsgTransactionCancelled)), nil
	case CashDeposited:
		if !ev.Amount.IsPositive() {
			return reject(DepositCollection, s, MsgInvalidAmount, metrics.RejectInvalidAmount), nil
		}
		acc, err := resolveAccount(e, DepositCollection, s)
		if err != nil {
			return outcome{}, err
		}

		s.PendingAmount = ev.Amount
		if err := e.ledger.Deposit(acc, ev.Amount); err != nil {
			return outcome{}, violation(DepositCollection, "ledger refused deposit of %s: %v", ev.Amount, err)
		}
		e.metrics.RecordDeposit(ev.Amount.InexactFloat64())

		return moveTo(TransactionSelection, s.settled(), show(depositMessage(ev.Amount, acc.Number()))), nil
	default:
		return invalidAction(DepositCollection, s), nil
	}
}
