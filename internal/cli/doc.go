// Package cli provides the interactive ATM simulator.
//
// It wires configuration, the ledger, the controller, simulated peripherals
// and a Prometheus registry, then runs a REPL in which each command plays the
// part of one peripheral: the card reader (insert, eject), the keypad (pin,
// withdraw, deposit, amount) or the deposit slot (cash). The prompt shows the
// controller's state.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
