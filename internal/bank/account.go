// Package bank holds the account store the cash machine authenticates and
// transacts against.
//
// A Ledger indexes every Account twice, by account number and by card id, and
// keeps both indexes in step. Balances are exact decimals. Every balance
// mutation goes through Ledger.Execute, which holds the account's lock across
// the validity check and the update, so several machines can share one ledger.
package bank

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophatm/internal/common"
	"github.com/dmitrijs2005/gophatm/internal/cryptox"
	"github.com/shopspring/decimal"
)

// AccountType classifies an account.
type AccountType string

const (
	Checking AccountType = "CHECKING"
	Saving   AccountType = "SAVING"
)

// ParseAccountType accepts "checking" or "saving" in any case.
func ParseAccountType(s string) (AccountType, error) {
	switch t := AccountType(strings.ToUpper(strings.TrimSpace(s))); t {
	case Checking, Saving:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown account type %q", common.ErrorValidation, s)
	}
}

func (t AccountType) String() string { return string(t) }

// Account is a single ledger entry. Identity fields are immutable; the
// balance is guarded by mu.
type Account struct {
	number     string
	cardID     string
	kind       AccountType
	credential cryptox.PinCredential

	mu      sync.Mutex
	balance decimal.Decimal
}

func (a *Account) Number() string    { return a.number }
func (a *Account) CardID() string    { return a.cardID }
func (a *Account) Type() AccountType { return a.kind }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *Account) verifyPin(pin string) bool {
	return a.credential.Verify(pin)
}
