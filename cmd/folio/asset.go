package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/bobmcallan/folio/internal/models"
	"github.com/bobmcallan/folio/internal/ui"
)

// assetAddCmd registers an asset directly by symbol.
type assetAddCmd struct {
	name     string
	price    float64
	currency string
	asset    string
}

func (*assetAddCmd) Name() string     { return "add" }
func (*assetAddCmd) Synopsis() string { return "add an asset to the portfolio" }
func (*assetAddCmd) Usage() string {
	return `folio add [-name <name>] [-price <price>] [-currency EUR] [-type stock] <symbol>

  Adds an asset to the portfolio and refreshes the dashboard.
`
}

func (c *assetAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "display name")
	f.Float64Var(&c.price, "price", 0, "last known price")
	f.StringVar(&c.currency, "currency", "EUR", "trading currency")
	f.StringVar(&c.asset, "type", "stock", "asset type")
}

func (c *assetAddCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

	a, err := newApp()
	if err != nil {
		return fail(err)
	}

	asset := &models.SearchResult{
		Symbol:   symbol,
		Name:     c.name,
		Price:    c.price,
		Currency: c.currency,
		Type:     c.asset,
	}
	if asset.Name == "" {
		asset.Name = symbol
	}

	err = a.Modals.WithOpen(ui.ModalAddAsset, symbol, func(string) error {
		return a.ActionService.AddAsset(ctx, asset)
	})
	if err != nil {
		return fail(err)
	}
	printMarkdown("Added **" + symbol + "**.\n")
	return subcommands.ExitSuccess
}

// assetDeleteCmd removes an asset and all its transactions.
type assetDeleteCmd struct {
	yes bool
}

func (*assetDeleteCmd) Name() string     { return "remove" }
func (*assetDeleteCmd) Synopsis() string { return "remove an asset and its transactions" }
func (*assetDeleteCmd) Usage() string {
	return `folio remove [-y] <symbol>

  Removes an asset and all its transactions after confirmation.
`
}

func (c *assetDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "skip the confirmation prompt")
}

func (c *assetDeleteCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

	a, err := newApp()
	if err != nil {
		return fail(err)
	}

	if err := a.ActionService.DeleteAsset(ctx, symbol, confirmer(c.yes)); err != nil {
		return fail(err)
	}
	printMarkdown("Removed **" + symbol + "**.\n")
	return subcommands.ExitSuccess
}

// portfolioDeleteCmd removes the whole portfolio.
type portfolioDeleteCmd struct {
	yes bool
}

func (*portfolioDeleteCmd) Name() string     { return "delete-portfolio" }
func (*portfolioDeleteCmd) Synopsis() string { return "delete the whole portfolio" }
func (*portfolioDeleteCmd) Usage() string {
	return `folio delete-portfolio [-y]

  Deletes the configured portfolio and everything in it.
`
}

func (c *portfolioDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "skip the confirmation prompt")
}

func (c *portfolioDeleteCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail(err)
	}

	if err := a.ActionService.DeletePortfolio(ctx, confirmer(c.yes)); err != nil {
		return fail(err)
	}
	printMarkdown("Portfolio deleted.\n")
	return subcommands.ExitSuccess
}
