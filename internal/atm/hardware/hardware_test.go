package hardware

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophatm/internal/atm"
	"github.com/dmitrijs2005/gophatm/internal/bank"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sinkMock struct {
	got []atm.Event
	err error
}

func (s *sinkMock) Handle(_ context.Context, ev atm.Event) error {
	s.got = append(s.got, ev)
	return s.err
}

func TestConsoleDisplay(t *testing.T) {
	var buf bytes.Buffer
	d := NewConsoleDisplay(&buf)

	assert.Equal(t, "", d.LastMessage())
	d.Show("first")
	d.Show("second")

	assert.Equal(t, "second", d.LastMessage())
	assert.Equal(t, "[display] first\n[display] second\n", buf.String())
}

func TestConsoleDisplay_NilWriter(t *testing.T) {
	d := NewConsoleDisplay(nil)
	assert.NotPanics(t, func() { d.Show("hello") })
	assert.Equal(t, "hello", d.LastMessage())
}

func TestCashDispenser(t *testing.T) {
	var buf bytes.Buffer
	c := NewCashDispenser(&buf)

	assert.True(t, c.Total().IsZero())
	c.Dispense(decimal.NewFromInt(20))
	c.Dispense(decimal.RequireFromString("12.50"))

	assert.True(t, c.Total().Equal(decimal.RequireFromString("32.5")))
	require.Len(t, c.Payouts(), 2)
	assert.Equal(t, "[dispenser] 20\n[dispenser] 12.5\n", buf.String())

	p := c.Payouts()
	p[0] = decimal.Zero
	assert.True(t, c.Payouts()[0].Equal(decimal.NewFromInt(20)), "Payouts must return a copy")
}

func TestCardReader_TracksCard(t *testing.T) {
	ctx := context.Background()
	sink := &sinkMock{}
	r := NewCardReader(sink)

	_, ok := r.CurrentCardID()
	assert.False(t, ok)

	require.NoError(t, r.InsertCard(ctx, "1111"))
	id, ok := r.CurrentCardID()
	assert.True(t, ok)
	assert.Equal(t, "1111", id)

	require.NoError(t, r.EjectCard(ctx))
	_, ok = r.CurrentCardID()
	assert.False(t, ok)

	assert.Equal(t, []atm.Event{atm.CardInserted{CardID: "1111"}, atm.CardEjected{}}, sink.got)
}

func TestInputDevices_Forward(t *testing.T) {
	ctx := context.Background()
	sink := &sinkMock{}
	k := NewKeypad(sink)
	slot := NewDepositSlot(sink)

	require.NoError(t, k.EnterPin(ctx, "1234"))
	require.NoError(t, k.SelectTransaction(ctx, bank.TransactionDeposit))
	require.NoError(t, k.EnterAmount(ctx, decimal.NewFromInt(5)))
	require.NoError(t, slot.AcceptDeposit(ctx, decimal.NewFromInt(7)))

	require.Len(t, sink.got, 4)
	assert.Equal(t, atm.PinEntered{Pin: "1234"}, sink.got[0])
	assert.Equal(t, atm.TransactionSelected{Type: bank.TransactionDeposit}, sink.got[1])
	assert.Equal(t, atm.KindAmountEntered, sink.got[2].Kind())
	assert.Equal(t, atm.KindCashDeposited, sink.got[3].Kind())
}

func TestInputDevices_PropagateErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	sink := &sinkMock{err: boom}

	assert.ErrorIs(t, NewCardReader(sink).InsertCard(ctx, "x"), boom)
	assert.ErrorIs(t, NewKeypad(sink).EnterPin(ctx, "1"), boom)
	assert.ErrorIs(t, NewDepositSlot(sink).AcceptDeposit(ctx, decimal.NewFromInt(1)), boom)
}
