package main

import (
	"context"
	"errors"
	"flag"
	"strings"
	"sync"

	"github.com/google/subcommands"

	"github.com/bobmcallan/folio/internal/models"
	searchsvc "github.com/bobmcallan/folio/internal/services/search"
	"github.com/bobmcallan/folio/internal/ui"
)

// errSkipped marks a declined add prompt, which is not a failure.
var errSkipped = errors.New("add skipped")

// searchCmd looks up tradeable assets by name or symbol fragment.
type searchCmd struct {
	add bool
	yes bool
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search for tradeable assets" }
func (*searchCmd) Usage() string {
	return `folio search [-add] <query>

  Searches the server for assets matching the query. With -add, the
  first result is added to the portfolio after confirmation.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "add the first result to the portfolio")
	f.BoolVar(&c.yes, "y", false, "skip the confirmation prompt")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	query := strings.Join(f.Args(), " ")
	if query == "" {
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		return fail(err)
	}

	// the debounced service is built for interactive input; a one-shot
	// command flushes immediately instead of waiting out the interval
	var mu sync.Mutex
	var results []*models.SearchResult
	svc := searchsvc.NewService(a.Client, func(q string, r []*models.SearchResult) {
		mu.Lock()
		results = r
		mu.Unlock()
	}, a.Config.Refresh.GetDebounce(), a.Logger)
	defer svc.Close()

	svc.OnQueryChange(query)
	svc.Flush()

	mu.Lock()
	found := results
	mu.Unlock()

	printMarkdown(FormatSearchResults(query, found))

	if !c.add || len(found) == 0 || found[0].Type == searchsvc.ErrorResultType {
		return subcommands.ExitSuccess
	}

	first := found[0]
	err = a.Modals.WithOpen(ui.ModalAddAsset, first.Symbol, func(string) error {
		if !confirmer(c.yes)("Add " + first.Symbol + " (" + first.Name + ") to the portfolio?") {
			return errSkipped
		}
		return a.ActionService.AddAsset(ctx, first)
	})
	if err == errSkipped {
		return subcommands.ExitSuccess
	}
	if err != nil {
		return fail(err)
	}
	printMarkdown("Added **" + first.Symbol + "**.\n")
	return subcommands.ExitSuccess
}
