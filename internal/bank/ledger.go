package bank

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophatm/internal/common"
	"github.com/dmitrijs2005/gophatm/internal/cryptox"
	"github.com/dmitrijs2005/gophatm/internal/logging"
	"github.com/shopspring/decimal"
)

// Ledger is the account store: two indexes over the same accounts plus the
// card, PIN and balance operations the controller needs.
type Ledger struct {
	mu       sync.RWMutex
	byNumber map[string]*Account
	byCard   map[string]*Account

	pinParams cryptox.PinParams
	decoy     cryptox.PinCredential
	logger    logging.Logger
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the ledger's logger.
func WithLogger(l logging.Logger) Option {
	return func(lg *Ledger) { lg.logger = l }
}

// WithPinParams overrides the argon2id cost used for new credentials.
func WithPinParams(p cryptox.PinParams) Option {
	return func(lg *Ledger) { lg.pinParams = p }
}

// NewLedger returns an empty ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		byNumber:  make(map[string]*Account),
		byCard:    make(map[string]*Account),
		pinParams: cryptox.DefaultPinParams,
		logger:    logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(l)
	}
	// Unknown cards are checked against a random credential so they cost the
	// same as known ones.
	l.decoy = cryptox.NewPinCredential(string(common.GenerateRandByteArray(8)), l.pinParams)
	return l
}

// AddAccount registers a zero-balance account linked to cardID. Neither index
// is touched when the account number or the card id is already taken.
func (l *Ledger) AddAccount(accountNumber string, t AccountType, cardID, pin string) (*Account, error) {
	accountNumber = strings.TrimSpace(accountNumber)
	cardID = strings.TrimSpace(cardID)
	if accountNumber == "" || cardID == "" || pin == "" {
		return nil, fmt.Errorf("%w: account number, card id and pin are required", common.ErrorValidation)
	}
	if t != Checking && t != Saving {
		return nil, fmt.Errorf("%w: unknown account type %q", common.ErrorValidation, t)
	}

	acc := &Account{
		number:     accountNumber,
		cardID:     cardID,
		kind:       t,
		credential: cryptox.NewPinCredential(pin, l.pinParams),
		balance:    decimal.Zero,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.byNumber[accountNumber]; ok {
		return nil, &DuplicateAccountError{AccountNumber: accountNumber}
	}
	if _, ok := l.byCard[cardID]; ok {
		return nil, &DuplicateAccountError{AccountNumber: accountNumber, CardID: cardID}
	}
	l.byNumber[accountNumber] = acc
	l.byCard[cardID] = acc

	l.logger.Info(context.Background(), "account added", "account", accountNumber, "type", t.String())
	return acc, nil
}

// ValidateCard reports whether cardID is linked to an account.
func (l *Ledger) ValidateCard(cardID string) bool {
	_, err := l.AccountByCard(cardID)
	return err == nil
}

// CheckPin reports whether pin matches the credential of the account linked
// to cardID. Unknown cards yield false.
func (l *Ledger) CheckPin(cardID, pin string) bool {
	acc, err := l.AccountByCard(cardID)
	if err != nil {
		l.decoy.Verify(pin)
		return false
	}
	return acc.verifyPin(pin)
}

// AccountByCard looks an account up by card id.
func (l *Ledger) AccountByCard(cardID string) (*Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	acc, ok := l.byCard[cardID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return acc, nil
}

// AccountByNumber looks an account up by account number.
func (l *Ledger) AccountByNumber(accountNumber string) (*Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	acc, ok := l.byNumber[accountNumber]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return acc, nil
}

// Accounts returns every account ordered by account number.
func (l *Ledger) Accounts() []*Account {
	l.mu.RLock()
	out := make([]*Account, 0, len(l.byNumber))
	for _, a := range l.byNumber {
		out = append(out, a)
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].number < out[j].number })
	return out
}

// Execute runs tx atomically: the account stays locked from Validate through
// Apply. It returns false without touching the balance when Validate fails.
// A nil account or a negative amount is a caller error.
func (l *Ledger) Execute(tx Transaction) (bool, error) {
	acc := tx.Account()
	if acc == nil {
		return false, fmt.Errorf("%s: %w", tx.Type(), common.ErrorNotFound)
	}
	if tx.Amount().IsNegative() {
		return false, fmt.Errorf("%s %s: %w", tx.Type(), tx.Amount(), common.ErrorInvalidAmount)
	}

	acc.mu.Lock()
	ok := tx.Validate()
	if ok {
		tx.Apply()
	}
	balance := acc.balance
	acc.mu.Unlock()

	ctx := context.Background()
	if ok {
		l.logger.Info(ctx, "transaction applied",
			"tx", tx.ID(), "type", tx.Type().String(), "account", acc.number,
			"amount", tx.Amount().String(), "balance", balance.String())
	} else {
		l.logger.Warn(ctx, "transaction declined",
			"tx", tx.ID(), "type", tx.Type().String(), "account", acc.number,
			"amount", tx.Amount().String())
	}
	return ok, nil
}

// Withdraw debits amount from acc if the balance covers it.
func (l *Ledger) Withdraw(acc *Account, amount decimal.Decimal) (bool, error) {
	return l.Execute(NewWithdrawTransaction(acc, amount))
}

// Deposit credits amount to acc.
func (l *Ledger) Deposit(acc *Account, amount decimal.Decimal) error {
	_, err := l.Execute(NewDepositTransaction(acc, amount))
	return err
}
