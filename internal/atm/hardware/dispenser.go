package hardware

import (
	"fmt"
	"io"
	"sync"

	"github.com/shopspring/decimal"
)

// CashDispenser records every payout. A real driver would move notes here.
type CashDispenser struct {
	mu       sync.Mutex
	w        io.Writer
	payouts  []decimal.Decimal
	totalOut decimal.Decimal
}

// NewCashDispenser returns a dispenser echoing to w; w may be nil.
func NewCashDispenser(w io.Writer) *CashDispenser {
	return &CashDispenser{w: w}
}

func (c *CashDispenser) Dispense(amount decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payouts = append(c.payouts, amount)
	c.totalOut = c.totalOut.Add(amount)
	if c.w != nil {
		fmt.Fprintf(c.w, "[dispenser] %s\n", amount)
	}
}

// Payouts returns the dispensed amounts in order.
func (c *CashDispenser) Payouts() []decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]decimal.Decimal, len(c.payouts))
	copy(out, c.payouts)
	return out
}

// Total returns the sum of all payouts.
func (c *CashDispenser) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalOut
}
