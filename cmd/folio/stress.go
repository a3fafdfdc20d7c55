package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/bobmcallan/folio/internal/models"
	"github.com/bobmcallan/folio/internal/services/stress"
)

// stressCmd simulates a market scenario against current holdings.
type stressCmd struct {
	scenario string
	impacts  string
}

func (*stressCmd) Name() string     { return "stress" }
func (*stressCmd) Synopsis() string { return "run a stress-test scenario against the portfolio" }
func (*stressCmd) Usage() string {
	return `folio stress [-scenario crisis_2008] [-impacts Equity=-20,Crypto=-50]

  Runs a preset scenario (crisis_2008, covid_2020, inflation_2022,
  rates_shock) or, with -impacts, a custom scenario with per-class
  percent shocks. Classes without an explicit shock default to -15%.
`
}

func (c *stressCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "scenario", models.ScenarioCrisis2008, "preset scenario id")
	f.StringVar(&c.impacts, "impacts", "", "custom per-class percent shocks, e.g. Equity=-20,Bond=-5")
}

func (c *stressCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail(err)
	}

	scenario := &models.StressScenario{Scenario: c.scenario}
	if c.impacts != "" {
		percents, err := parseImpacts(c.impacts)
		if err != nil {
			return fail(err)
		}
		scenario = stress.NewCustomScenario(percents)
	}

	_, markdown, err := a.StressService.Run(ctx, scenario)
	if err != nil {
		return fail(err)
	}

	printMarkdown(markdown)
	return subcommands.ExitSuccess
}

// parseImpacts parses "Equity=-20,Bond=-5" into percent values.
func parseImpacts(spec string) (map[string]float64, error) {
	impacts := make(map[string]float64)
	for _, pair := range strings.Split(spec, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid impact %q, want Class=Percent", pair)
		}
		pct, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid impact value %q: %w", parts[1], err)
		}
		impacts[parts[0]] = pct
	}
	return impacts, nil
}
