package atm

import (
	"github.com/dmitrijs2005/gophatm/internal/bank"
	"github.com/shopspring/decimal"
)

// Session is the context of one card insertion. The zero value means no card
// is inserted. It lives only in memory and is reset on ejection.
type Session struct {
	ID            string
	CardID        string
	Pending       bank.TransactionType
	PendingAmount decimal.Decimal // set only while an amount is being processed
}

// Active reports whether a card is inserted.
func (s Session) Active() bool { return s.CardID != "" }

// settled returns s with the pending transaction cleared.
func (s Session) settled() Session {
	s.Pending = bank.TransactionNone
	s.PendingAmount = decimal.Decimal{}
	return s
}
