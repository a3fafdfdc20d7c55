package main

import (
	"strings"
	"testing"
	"time"

	"github.com/bobmcallan/folio/internal/models"
)

func sampleState() *models.DashboardState {
	three := 42.5
	return &models.DashboardState{
		Summary: models.PortfolioSummary{
			TotalValue:               15250.75,
			DailyChangeAbsolute:      120.5,
			DailyChangePercent:       0.8,
			TotalPerformanceAbsolute: 2250.75,
			TotalPerformancePercent:  17.3,
		},
		Cards: map[string]*models.AssetCard{
			"AAPL": {Key: "AAPL", Position: models.AssetPosition{
				Symbol:          "AAPL",
				CurrentPrice:    231.5,
				NetQuantity:     10,
				AvgCost:         180,
				CurrentValue:    2315,
				PLValue:         515,
				PLPercent:       28.6,
				DailyChange:     1.2,
				ThreeYearChange: &three,
			}},
		},
		Order:       []string{"AAPL"},
		RefreshedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
}

func TestFormatDashboard(t *testing.T) {
	periods := map[string]*models.PeriodReturn{
		"1m": {Period: "1m", PercentReturn: 2.1},
		"1y": {Period: "1y", PercentReturn: 14.9},
	}

	md := FormatDashboard(sampleState(), periods)

	for _, want := range []string{
		"# Portfolio Dashboard",
		"€15,250.75",
		"+€120.50",
		"| AAPL |",
		"+28.60%",
		"42.50%", // optional horizon present
		"| 1M | +2.10% |",
		"| YTD | N/A |", // missing period renders N/A
	} {
		if !strings.Contains(md, want) {
			t.Errorf("dashboard markdown missing %q\n%s", want, md)
		}
	}
}

func TestFormatDashboard_NullableHorizons(t *testing.T) {
	state := sampleState()
	state.Cards["AAPL"].Position.ThreeYearChange = nil

	md := FormatDashboard(state, nil)
	if !strings.Contains(md, "N/A") {
		t.Error("nil horizon should render N/A")
	}
	if strings.Contains(md, "## Performance") {
		t.Error("no periods given, strip should be absent")
	}
}

func TestFormatDashboard_Empty(t *testing.T) {
	state := &models.DashboardState{Cards: map[string]*models.AssetCard{}}
	md := FormatDashboard(state, nil)
	if !strings.Contains(md, "No assets") {
		t.Errorf("empty dashboard should say so:\n%s", md)
	}
}

func TestFormatSearchResults(t *testing.T) {
	results := []*models.SearchResult{
		{Symbol: "AAPL", Name: "Apple Inc.", Price: 231.5, Currency: "USD", Type: "stock"},
	}
	md := FormatSearchResults("apple", results)
	if !strings.Contains(md, "| AAPL | Apple Inc. | 231.50 | USD | stock |") {
		t.Errorf("search markdown malformed:\n%s", md)
	}

	md = FormatSearchResults("zzz", nil)
	if !strings.Contains(md, "No results") {
		t.Errorf("empty search should say so:\n%s", md)
	}
}

func TestFormatAnalysisReport(t *testing.T) {
	total, sharpe := 12.4, 1.31
	report := &models.AnalysisReport{
		Period: "1y",
		Data: &models.AnalysisData{
			Performance: &models.PerformanceData{
				Metrics: &models.PerformanceMetrics{TotalReturn: &total, SharpeRatio: &sharpe},
			},
		},
		Charts: map[string]string{
			"performance": "/tmp/charts/performance-x.png",
		},
		CorrelationNote: "Correlation needs at least two assets.",
	}

	md := FormatAnalysisReport(report)
	for _, want := range []string{
		"# Analysis: 1Y",
		"**Total Return:** 12.40%",
		"**Sharpe Ratio:** 1.31",
		"**Alpha:** N/A",
		"two assets",
		"performance-x.png",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("analysis markdown missing %q\n%s", want, md)
		}
	}
}
