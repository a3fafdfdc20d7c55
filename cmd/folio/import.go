package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/bobmcallan/folio/internal/ui"
)

// importCmd uploads a CSV of transactions for an asset.
type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions for an asset from a CSV file" }
func (*importCmd) Usage() string {
	return `folio import <symbol> <file.csv>

  Uploads a CSV of transactions (date, type, quantity, price) for an
  asset and refreshes the dashboard.
`
}
func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		return fail(err)
	}

	err = a.Modals.WithOpen(ui.ModalCSVUpload, f.Arg(0), func(symbol string) error {
		return a.ActionService.ImportTransactions(ctx, symbol, f.Arg(1))
	})
	if err != nil {
		return fail(err)
	}
	printMarkdown("Imported transactions for **" + f.Arg(0) + "**.\n")
	return subcommands.ExitSuccess
}
