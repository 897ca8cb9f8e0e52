package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophatm/internal/bank"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App satisfies it.
type execIface interface {
	InsertCard(ctx context.Context, cardID string) error
	EjectCard(ctx context.Context) error
	EnterPin(ctx context.Context, pin string) error
	Select(ctx context.Context, t bank.TransactionType) error
	EnterAmount(ctx context.Context, raw string) error
	DepositCash(ctx context.Context, raw string) error
	ListAccounts(ctx context.Context) error
	Stats(ctx context.Context) error
}

const helpText = `Available commands:
  insert <card>   insert a card
  eject           eject the card
  pin [pin]       enter the PIN (prompted without echo when omitted)
  withdraw        select a withdrawal
  deposit         select a deposit
  amount <n>      key in the amount to withdraw
  cash <n>        put cash into the deposit box
  accounts        list accounts and balances
  stats           show counters
  exit | quit     leave the simulator`

// runREPL reads commands from scanner until EOF or exit/quit. The prompt
// shows statusFn. Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("atm [%s] > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, arg := parts[0], ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		var err error
		switch cmd {
		case "help":
			printlnFn(helpText)
		case "insert":
			err = a.InsertCard(ctx, arg)
		case "eject":
			err = a.EjectCard(ctx)
		case "pin":
			err = a.EnterPin(ctx, arg)
		case "withdraw":
			err = a.Select(ctx, bank.TransactionWithdraw)
		case "deposit":
			err = a.Select(ctx, bank.TransactionDeposit)
		case "amount":
			err = a.EnterAmount(ctx, arg)
		case "cash":
			err = a.DepositCash(ctx, arg)
		case "accounts":
			err = a.ListAccounts(ctx)
		case "stats":
			err = a.Stats(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("error:", err)
		}
	}
}
