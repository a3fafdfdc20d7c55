package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/models"
)

// FormatDashboard renders the dashboard state as markdown: the
// aggregate summary block followed by the asset card table and,
// when available, the period performance strip.
func FormatDashboard(state *models.DashboardState, periods map[string]*models.PeriodReturn) string {
	var sb strings.Builder

	sb.WriteString("# Portfolio Dashboard\n\n")
	if !state.RefreshedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("**Refreshed:** %s\n", state.RefreshedAt.Format("2006-01-02 15:04")))
	}
	sb.WriteString(fmt.Sprintf("**Total Value:** %s\n", common.FormatMoney(state.Summary.TotalValue)))
	sb.WriteString(fmt.Sprintf("**Day Change:** %s (%s)\n", common.FormatSignedMoney(state.Summary.DailyChangeAbsolute), common.FormatSignedPct(state.Summary.DailyChangePercent)))
	sb.WriteString(fmt.Sprintf("**Total Performance:** %s (%s)\n\n", common.FormatSignedMoney(state.Summary.TotalPerformanceAbsolute), common.FormatSignedPct(state.Summary.TotalPerformancePercent)))

	cards := state.CardList()
	if len(cards) == 0 {
		sb.WriteString("No assets in portfolio.\n")
		return sb.String()
	}

	sb.WriteString("## Holdings\n\n")
	sb.WriteString("| Symbol | Price | Qty | Avg Cost | Value | P/L | P/L % | 1d | 1w | 1mo | YTD | 3y | 5y | 10y |\n")
	sb.WriteString("|--------|-------|-----|----------|-------|-----|-------|----|----|-----|-----|----|----|-----|\n")
	for _, card := range cards {
		p := card.Position
		sb.WriteString(fmt.Sprintf("| %s | %s | %.2f | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			p.Symbol,
			common.FormatMoney(p.CurrentPrice),
			p.NetQuantity,
			common.FormatMoney(p.AvgCost),
			common.FormatMoney(p.CurrentValue),
			common.FormatSignedMoney(p.PLValue),
			common.FormatSignedPct(p.PLPercent),
			common.FormatSignedPct(p.DailyChange),
			common.FormatSignedPct(p.WeeklyChange),
			common.FormatSignedPct(p.MonthlyChange),
			common.FormatSignedPct(p.YTDChange),
			common.FormatOptionalPct(p.ThreeYearChange),
			common.FormatOptionalPct(p.FiveYearChange),
			common.FormatOptionalPct(p.TenYearChange)))
	}
	sb.WriteString("\n")

	if len(periods) > 0 {
		sb.WriteString("## Performance\n\n")
		sb.WriteString("| Period | Return |\n")
		sb.WriteString("|--------|--------|\n")
		for _, period := range models.DashboardPeriods {
			ret, ok := periods[period]
			if !ok {
				sb.WriteString(fmt.Sprintf("| %s | N/A |\n", strings.ToUpper(period)))
				continue
			}
			sb.WriteString(fmt.Sprintf("| %s | %s |\n", strings.ToUpper(period), common.FormatSignedPct(ret.PercentReturn)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatSearchResults renders asset search results as markdown.
func FormatSearchResults(query string, results []*models.SearchResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Search: %s\n\n", query))
	if len(results) == 0 {
		sb.WriteString("No results.\n")
		return sb.String()
	}

	sb.WriteString("| Symbol | Name | Price | Currency | Type |\n")
	sb.WriteString("|--------|------|-------|----------|------|\n")
	for _, r := range results {
		currency := r.Currency
		if currency == "" {
			currency = "USD"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %.2f | %s | %s |\n",
			r.Symbol, r.Name, r.Price, currency, r.Type))
	}

	return sb.String()
}

// FormatAnalysisReport renders an analysis load as markdown: metric
// summaries plus the chart image locations.
func FormatAnalysisReport(report *models.AnalysisReport) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Analysis: %s\n\n", strings.ToUpper(report.Period)))

	if perf := report.Data.Performance; perf != nil && perf.Metrics != nil {
		m := perf.Metrics
		sb.WriteString("## Performance Metrics\n\n")
		sb.WriteString(fmt.Sprintf("**Total Return:** %s\n", common.FormatOptionalPct(m.TotalReturn)))
		sb.WriteString(fmt.Sprintf("**Annualized Return:** %s\n", common.FormatOptionalPct(m.AnnualizedReturn)))
		sb.WriteString(fmt.Sprintf("**Alpha:** %s\n", common.FormatOptionalPct(m.Alpha)))
		sb.WriteString(fmt.Sprintf("**Beta:** %s\n", formatOptionalNumber(m.Beta)))
		sb.WriteString(fmt.Sprintf("**Sharpe Ratio:** %s\n", formatOptionalNumber(m.SharpeRatio)))
		sb.WriteString(fmt.Sprintf("**Volatility:** %s\n\n", common.FormatOptionalPct(m.Volatility)))
	}

	if dd := report.Data.Drawdown; dd != nil && dd.Metrics != nil {
		m := dd.Metrics
		sb.WriteString("## Drawdown Metrics\n\n")
		sb.WriteString(fmt.Sprintf("**Max Drawdown:** %s\n", common.FormatOptionalPct(m.MaxDrawdown)))
		sb.WriteString(fmt.Sprintf("**Current Drawdown:** %s\n", common.FormatOptionalPct(m.CurrentDrawdown)))
		sb.WriteString(fmt.Sprintf("**Avg Drawdown Duration:** %s days\n", formatOptionalNumber(m.AvgDrawdownDuration)))
		sb.WriteString(fmt.Sprintf("**Avg Recovery Time:** %s days\n\n", formatOptionalNumber(m.AvgRecoveryTime)))
	}

	if report.CorrelationNote != "" {
		sb.WriteString(fmt.Sprintf("**Correlation:** %s\n\n", report.CorrelationNote))
	}

	if len(report.Charts) > 0 {
		sb.WriteString("## Charts\n\n")
		keys := make([]string, 0, len(report.Charts))
		for key := range report.Charts {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", key, report.Charts[key]))
		}
	}

	return sb.String()
}

func formatOptionalNumber(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}
