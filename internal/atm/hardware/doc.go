// Package hardware provides simulated ATM peripherals.
//
// Output devices (ConsoleDisplay, CashDispenser) record what they were asked
// to do and optionally echo it to a writer. Input devices (CardReader,
// Keypad, DepositSlot) forward user actions to an atm.EventSink, normally the
// Machine.
package hardware
