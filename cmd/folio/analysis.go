package main

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"

	"github.com/bobmcallan/folio/internal/models"
)

// analysisCmd fetches analysis data for a period and renders the six
// charts plus metric summaries.
type analysisCmd struct {
	period   string
	prefetch bool
}

func (*analysisCmd) Name() string     { return "analysis" }
func (*analysisCmd) Synopsis() string { return "render the analysis charts for a period" }
func (*analysisCmd) Usage() string {
	return `folio analysis [-period 1y] [-prefetch]

  Fetches the analysis payload for a period (1m, 3m, 6m, ytd, 1y, all),
  renders the six charts as PNG images and prints the metric summary
  with the image locations. -prefetch warms the cache for the other
  periods afterwards.
`
}

func (c *analysisCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "1y", "analysis period: "+strings.Join(models.AnalysisPeriods, ", "))
	f.BoolVar(&c.prefetch, "prefetch", false, "warm the cache for the remaining periods")
}

func (c *analysisCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail(err)
	}

	report, err := a.AnalysisService.Load(ctx, c.period)
	if err != nil {
		return fail(err)
	}

	printMarkdown(FormatAnalysisReport(report))

	if c.prefetch {
		var rest []string
		for _, p := range models.AnalysisPeriods {
			if p != c.period {
				rest = append(rest, p)
			}
		}
		a.AnalysisService.Prefetch(ctx, rest)
	}

	return subcommands.ExitSuccess
}
