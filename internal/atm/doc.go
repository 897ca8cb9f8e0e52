// Package atm implements the cash-machine controller.
//
// A Machine holds exactly one active State and the Session of the card that
// is currently inserted. Peripherals deliver Events through Machine.Handle;
// the active state's policy decides whether the event is legal, talks to the
// Ledger, and returns the next state, the next session and the output to
// render. Policies are plain functions and keep no data of their own.
//
// Transition table:
//
//	Idle                  CardInserted        valid card -> PinEntry, else stay
//	PinEntry              PinEntered          correct PIN -> TransactionSelection, else stay
//	PinEntry              CardEjected         -> Idle
//	TransactionSelection  TransactionSelected WITHDRAW -> WithdrawAmountEntry, DEPOSIT -> DepositCollection
//	TransactionSelection  CardEjected         -> Idle
//	WithdrawAmountEntry   AmountEntered       -> TransactionSelection (dispensed or declined)
//	WithdrawAmountEntry   CardEjected         -> Idle
//	DepositCollection     CashDeposited       -> TransactionSelection
//	DepositCollection     CardEjected         -> Idle
//
// Any other pairing shows "Invalid action, please try again." and keeps the
// state. User mistakes (unknown card, wrong PIN, insufficient funds, bad
// amount) are shown on the display and never returned as errors. Handle only
// returns an error, wrapping common.ErrInvariantViolation, when the caller
// broke the controller's contract.
package atm
