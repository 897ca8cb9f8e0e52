package bank

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the kind of operation a customer selects. The zero
// value means nothing is selected.
type TransactionType int

const (
	TransactionNone TransactionType = iota
	TransactionWithdraw
	TransactionDeposit
)

func (t TransactionType) String() string {
	switch t {
	case TransactionWithdraw:
		return "WITHDRAW"
	case TransactionDeposit:
		return "DEPOSIT"
	default:
		return "NONE"
	}
}

// ParseTransactionType accepts "withdraw" or "deposit" in any case.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "WITHDRAW":
		return TransactionWithdraw, nil
	case "DEPOSIT":
		return TransactionDeposit, nil
	default:
		return TransactionNone, fmt.Errorf("unknown transaction type %q", s)
	}
}

// Transaction pairs an account with an amount. Validate decides whether Apply
// may run; a transaction is never applied and then rolled back.
//
// Validate and Apply touch the balance without locking. Run transactions
// through Ledger.Execute.
type Transaction interface {
	ID() string
	Type() TransactionType
	Account() *Account
	Amount() decimal.Decimal
	Validate() bool
	Apply()
}

type baseTransaction struct {
	id      string
	account *Account
	amount  decimal.Decimal
}

func (b baseTransaction) ID() string              { return b.id }
func (b baseTransaction) Account() *Account       { return b.account }
func (b baseTransaction) Amount() decimal.Decimal { return b.amount }

// WithdrawTransaction debits an account. It is valid iff amount <= balance;
// withdrawing the whole balance is allowed.
type WithdrawTransaction struct {
	baseTransaction
}

func NewWithdrawTransaction(account *Account, amount decimal.Decimal) *WithdrawTransaction {
	return &WithdrawTransaction{baseTransaction{id: uuid.NewString(), account: account, amount: amount}}
}

func (w *WithdrawTransaction) Type() TransactionType { return TransactionWithdraw }

func (w *WithdrawTransaction) Validate() bool {
	return w.amount.LessThanOrEqual(w.account.balance)
}

func (w *WithdrawTransaction) Apply() {
	w.account.balance = w.account.balance.Sub(w.amount)
}

// DepositTransaction credits an account. Deposits are always valid.
type DepositTransaction struct {
	baseTransaction
}

func NewDepositTransaction(account *Account, amount decimal.Decimal) *DepositTransaction {
	return &DepositTransaction{baseTransaction{id: uuid.NewString(), account: account, amount: amount}}
}

func (d *DepositTransaction) Type() TransactionType { return TransactionDeposit }

func (d *DepositTransaction) Validate() bool { return true }

func (d *DepositTransaction) Apply() {
	d.account.balance = d.account.balance.Add(d.amount)
}
