package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"github.com/bobmcallan/folio/internal/app"
	"github.com/bobmcallan/folio/internal/models"
)

// dashboardCmd refreshes prices and renders the dashboard once.
type dashboardCmd struct {
	skipPeriods bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "refresh prices and display the portfolio dashboard" }
func (*dashboardCmd) Usage() string {
	return `folio dashboard [-no-periods]

  Refreshes live prices, recomputes the portfolio summary and renders
  the holdings table with period performance.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.skipPeriods, "no-periods", false, "skip the period performance strip")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail(err)
	}

	state, err := a.DashboardService.Refresh(ctx)
	if err != nil {
		return fail(err)
	}

	var periods map[string]*models.PeriodReturn
	if !c.skipPeriods {
		periods = a.DashboardService.LoadPeriods(ctx)
	}

	printMarkdown(FormatDashboard(state, periods))
	return subcommands.ExitSuccess
}

// watchCmd redraws the dashboard on the configured schedule until
// interrupted.
type watchCmd struct{}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "periodically refresh and redraw the dashboard" }
func (*watchCmd) Usage() string {
	return `folio watch

  Refreshes the dashboard on the schedule from the refresh.schedule
  config key (default every 5 minutes) until interrupted.
`
}
func (*watchCmd) SetFlags(f *flag.FlagSet) {}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail(err)
	}

	draw := func() {
		fmt.Println("\033[2J")
		periods := a.DashboardService.LoadPeriods(ctx)
		printMarkdown(FormatDashboard(a.DashboardService.State(), periods))
	}

	// first paint before the schedule kicks in
	if _, err := a.DashboardService.Refresh(ctx); err != nil {
		return fail(err)
	}
	draw()

	scheduler := app.NewScheduler(a)
	if err := scheduler.Start(ctx, draw); err != nil {
		return fail(err)
	}
	defer scheduler.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	return subcommands.ExitSuccess
}
