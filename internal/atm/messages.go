package atm

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Display texts.
const (
	MsgInvalidAction        = "Invalid action, please try again."
	MsgEnterPin             = "Please enter your PIN"
	MsgInvalidCard          = "Invalid card. Please try again."
	MsgCardEjected          = "Card ejected"
	MsgPinCorrect           = "PIN correct, select transaction type"
	MsgInvalidPin           = "Invalid PIN. Please try again"
	MsgSelectionCancelled   = "Card ejected, transaction cancelled."
	MsgEnterAmount          = "Enter amount to withdraw:"
	MsgDepositCash          = "Please deposit cash into the deposit box."
	MsgTransactionCancelled = "Transaction cancelled, card ejected"
	MsgTakeCash             = "Please take your cash."
	MsgInsufficientFunds    = "Insufficient funds, please try again."
	MsgInvalidAmount        = "Invalid amount, please try again."
)

func depositMessage(amount decimal.Decimal, accountNumber string) string {
	return fmt.Sprintf("Deposit successful. Deposited amount: %s to account: %s", amount, accountNumber)
}
