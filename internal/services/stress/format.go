package stress

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/models"
)

// FormatResult renders a stress-test result as markdown: the scenario
// header, a summary line and the per-asset impact table.
func FormatResult(result *models.StressResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Stress Test: %s\n\n", scenarioTitle(result.Scenario)))
	if result.Description != "" {
		sb.WriteString(result.Description + "\n\n")
	}

	sb.WriteString(fmt.Sprintf("**Current Value:** %s\n", common.FormatMoney(result.CurrentValue)))
	sb.WriteString(fmt.Sprintf("**Stressed Value:** %s\n", common.FormatMoney(result.StressedValue)))
	sb.WriteString(fmt.Sprintf("**Impact:** %s (%s)\n\n",
		common.FormatSignedMoney(result.AbsoluteImpact),
		common.FormatSignedPct(result.PercentageImpact)))

	if len(result.ImpactByAsset) == 0 {
		return sb.String()
	}

	sb.WriteString("## Impact by Asset\n\n")
	sb.WriteString("| Asset | Type | Impact % | Original | Stressed | Impact |\n")
	sb.WriteString("|-------|------|----------|----------|----------|--------|\n")

	names := make([]string, 0, len(result.ImpactByAsset))
	for name := range result.ImpactByAsset {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		impact := result.ImpactByAsset[name]
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |\n",
			name,
			impact.Type,
			common.FormatSignedPct(impact.ImpactPct),
			common.FormatMoney(impact.OriginalValue),
			common.FormatMoney(impact.StressedValue),
			common.FormatSignedMoney(impact.AbsoluteImpact)))
	}

	return sb.String()
}

// scenarioTitle maps a scenario id to its display name.
func scenarioTitle(scenario string) string {
	switch scenario {
	case models.ScenarioCrisis2008:
		return "2008 Financial Crisis"
	case models.ScenarioCovid2020:
		return "COVID-19 Crash (2020)"
	case models.ScenarioInflation2022:
		return "2022 Inflation Shock"
	case models.ScenarioRatesShock:
		return "Interest Rate Shock"
	case models.ScenarioCustom:
		return "Custom Scenario"
	default:
		return scenario
	}
}
