package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	"github.com/bobmcallan/folio/internal/models"
	"github.com/bobmcallan/folio/internal/ui"
)

// txAddCmd records a buy or sell against an asset.
type txAddCmd struct {
	date     string
	txType   string
	quantity float64
	price    float64
}

func (*txAddCmd) Name() string     { return "tx" }
func (*txAddCmd) Synopsis() string { return "record a buy or sell transaction" }
func (*txAddCmd) Usage() string {
	return `folio tx [-date 2026-01-15] -type buy -qty 10 -price 231.50 <symbol>

  Records a transaction against an asset and refreshes the dashboard.
  The date defaults to today.
`
}

func (c *txAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "transaction date (YYYY-MM-DD, default today)")
	f.StringVar(&c.txType, "type", "buy", "buy or sell")
	f.Float64Var(&c.quantity, "qty", 0, "quantity")
	f.Float64Var(&c.price, "price", 0, "price per unit")
}

func (c *txAddCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return subcommands.ExitUsageError
	}
	tx, err := c.row()
	if err != nil {
		return fail(err)
	}

	a, err := newApp()
	if err != nil {
		return fail(err)
	}

	// the transaction form is bound to its symbol for the duration of
	// the submission, as the web client binds its modal form action
	err = a.Modals.WithOpen(ui.ModalAddTransaction, f.Arg(0), func(symbol string) error {
		return a.ActionService.AddTransaction(ctx, symbol, tx)
	})
	if err != nil {
		return fail(err)
	}
	printMarkdown(fmt.Sprintf("Recorded %s of %g %s at %g.\n", tx.Type, tx.Quantity, f.Arg(0), tx.Price))
	return subcommands.ExitSuccess
}

func (c *txAddCmd) row() (*models.TransactionRow, error) {
	txType := models.TransactionType(c.txType)
	if txType != models.TransactionBuy && txType != models.TransactionSell {
		return nil, fmt.Errorf("invalid transaction type %q, want buy or sell", c.txType)
	}
	if c.quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	if c.price <= 0 {
		return nil, fmt.Errorf("price must be positive")
	}

	date := c.date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	return &models.TransactionRow{
		Date:     date,
		Type:     txType,
		Quantity: c.quantity,
		Price:    c.price,
	}, nil
}

// txDeleteCmd removes the transaction matching date, type, quantity
// and price.
type txDeleteCmd struct {
	txAddCmd
	yes bool
}

func (*txDeleteCmd) Name() string     { return "tx-delete" }
func (*txDeleteCmd) Synopsis() string { return "delete a recorded transaction" }
func (*txDeleteCmd) Usage() string {
	return `folio tx-delete -date 2026-01-15 -type buy -qty 10 -price 231.50 [-y] <symbol>

  Deletes the transaction matching the given date, type, quantity and
  price, after confirmation.
`
}

func (c *txDeleteCmd) SetFlags(f *flag.FlagSet) {
	c.txAddCmd.SetFlags(f)
	f.BoolVar(&c.yes, "y", false, "skip the confirmation prompt")
}

func (c *txDeleteCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return subcommands.ExitUsageError
	}
	tx, err := c.row()
	if err != nil {
		return fail(err)
	}

	a, err := newApp()
	if err != nil {
		return fail(err)
	}

	if err := a.ActionService.DeleteTransaction(ctx, f.Arg(0), tx, confirmer(c.yes)); err != nil {
		return fail(err)
	}
	printMarkdown("Transaction deleted.\n")
	return subcommands.ExitSuccess
}
