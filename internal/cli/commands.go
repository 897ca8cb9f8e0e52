package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophatm/internal/bank"
	"github.com/dmitrijs2005/gophatm/internal/common"
	"github.com/dmitrijs2005/gophatm/internal/metrics"
	"github.com/shopspring/decimal"
)

// ErrBadInput marks operator input the simulator refused before it reached
// the controller.
var ErrBadInput = errors.New("bad input")

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: amount is required", ErrBadInput)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", ErrBadInput, raw)
	}
	return d, nil
}

// report logs controller errors; invariant violations are flagged as such.
func (a *App) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, common.ErrInvariantViolation) {
		a.logger.Error(ctx, "controller invariant violated", "error", err)
	}
	return err
}

func (a *App) InsertCard(ctx context.Context, cardID string) error {
	if cardID == "" {
		return fmt.Errorf("%w: usage: insert <card>", ErrBadInput)
	}
	return a.report(ctx, a.reader.InsertCard(ctx, cardID))
}

func (a *App) EjectCard(ctx context.Context) error {
	return a.report(ctx, a.reader.EjectCard(ctx))
}

// EnterPin sends pin to the keypad. An empty pin is read from the terminal
// without echo.
func (a *App) EnterPin(ctx context.Context, pin string) error {
	if pin == "" {
		raw, err := GetPin(a.out)
		if err != nil {
			return err
		}
		pin = string(raw)
		common.WipeByteArray(raw)
	}
	return a.report(ctx, a.keypad.EnterPin(ctx, pin))
}

func (a *App) Select(ctx context.Context, t bank.TransactionType) error {
	return a.report(ctx, a.keypad.SelectTransaction(ctx, t))
}

func (a *App) EnterAmount(ctx context.Context, raw string) error {
	amount, err := parseAmount(raw)
	if err != nil {
		return err
	}
	return a.report(ctx, a.keypad.EnterAmount(ctx, amount))
}

func (a *App) DepositCash(ctx context.Context, raw string) error {
	amount, err := parseAmount(raw)
	if err != nil {
		return err
	}
	return a.report(ctx, a.slot.AcceptDeposit(ctx, amount))
}

// ListAccounts prints every account with its card and balance. PINs are
// never shown.
func (a *App) ListAccounts(_ context.Context) error {
	for _, acc := range a.ledger.Accounts() {
		printlnFn(fmt.Sprintf("%-10s %-8s card=%s balance=%s", acc.Number(), acc.Type(), acc.CardID(), acc.Balance().StringFixed(2)))
	}
	return nil
}

// Stats prints the counters gathered so far.
func (a *App) Stats(_ context.Context) error {
	samples, err := metrics.Counters(a.registry)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		printlnFn("no activity yet")
		return nil
	}
	for _, s := range samples {
		if s.Labels == "" {
			printlnFn(fmt.Sprintf("%s %g", s.Name, s.Value))
			continue
		}
		printlnFn(fmt.Sprintf("%s{%s} %g", s.Name, s.Labels, s.Value))
	}
	return nil
}
