// Package metrics defines the counters the controller reports and ships a
// no-op and a Prometheus implementation.
package metrics

import "time"

// Collector receives controller and ledger observations.
type Collector interface {
	// RecordEvent records one dispatched event and how long its handling took.
	RecordEvent(state, event string, duration time.Duration)
	// RecordTransition records a state change. Self-transitions are not reported.
	RecordTransition(from, to string)
	// RecordRejection records a recoverable user-input rejection.
	RecordRejection(reason string)
	// RecordWithdrawal records a withdrawal attempt and its outcome.
	RecordWithdrawal(amount float64, ok bool)
	// RecordDeposit records a credited deposit.
	RecordDeposit(amount float64)
}

// Rejection reasons.
const (
	RejectInvalidCard       = "invalid_card"
	RejectInvalidPin        = "invalid_pin"
	RejectInsufficientFunds = "insufficient_funds"
	RejectInvalidAmount     = "invalid_amount"
	RejectInvalidAction     = "invalid_action"
)

// Nop discards every observation.
type Nop struct{}

func (Nop) RecordEvent(string, string, time.Duration) {}
func (Nop) RecordTransition(string, string)           {}
func (Nop) RecordRejection(string)                    {}
func (Nop) RecordWithdrawal(float64, bool)            {}
func (Nop) RecordDeposit(float64)                     {}
