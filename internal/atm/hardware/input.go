package hardware

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophatm/internal/atm"
	"github.com/dmitrijs2005/gophatm/internal/bank"
	"github.com/shopspring/decimal"
)

// CardReader tracks the card physically in the slot and reports movements.
type CardReader struct {
	sink atm.EventSink

	mu     sync.Mutex
	cardID string
}

func NewCardReader(sink atm.EventSink) *CardReader {
	return &CardReader{sink: sink}
}

func (r *CardReader) InsertCard(ctx context.Context, cardID string) error {
	r.mu.Lock()
	r.cardID = cardID
	r.mu.Unlock()
	return r.sink.Handle(ctx, atm.CardInserted{CardID: cardID})
}

func (r *CardReader) EjectCard(ctx context.Context) error {
	r.mu.Lock()
	r.cardID = ""
	r.mu.Unlock()
	return r.sink.Handle(ctx, atm.CardEjected{})
}

func (r *CardReader) CurrentCardID() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cardID, r.cardID != ""
}

// Keypad forwards PIN, selection and amount keys.
type Keypad struct {
	sink atm.EventSink
}

func NewKeypad(sink atm.EventSink) *Keypad {
	return &Keypad{sink: sink}
}

func (k *Keypad) EnterPin(ctx context.Context, pin string) error {
	return k.sink.Handle(ctx, atm.PinEntered{Pin: pin})
}

func (k *Keypad) SelectTransaction(ctx context.Context, t bank.TransactionType) error {
	return k.sink.Handle(ctx, atm.TransactionSelected{Type: t})
}

func (k *Keypad) EnterAmount(ctx context.Context, amount decimal.Decimal) error {
	return k.sink.Handle(ctx, atm.AmountEntered{Amount: amount})
}

// DepositSlot reports cash placed in the deposit box.
type DepositSlot struct {
	sink atm.EventSink
}

func NewDepositSlot(sink atm.EventSink) *DepositSlot {
	return &DepositSlot{sink: sink}
}

func (d *DepositSlot) AcceptDeposit(ctx context.Context, amount decimal.Decimal) error {
	return d.sink.Handle(ctx, atm.CashDeposited{Amount: amount})
}

var (
	_ atm.Display       = (*ConsoleDisplay)(nil)
	_ atm.CashDispenser = (*CashDispenser)(nil)
	_ atm.CardReader    = (*CardReader)(nil)
	_ atm.Keypad        = (*Keypad)(nil)
	_ atm.DepositSlot   = (*DepositSlot)(nil)
)
