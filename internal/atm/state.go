package atm

// State is the controller's current step. The zero value is Idle.
type State int

const (
	Idle State = iota
	PinEntry
	TransactionSelection
	WithdrawAmountEntry
	DepositCollection
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PinEntry:
		return "pin_entry"
	case TransactionSelection:
		return "transaction_selection"
	case WithdrawAmountEntry:
		return "withdraw_amount_entry"
	case DepositCollection:
		return "deposit_collection"
	default:
		return "unknown"
	}
}
