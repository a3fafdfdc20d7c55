package folio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/models"
)

// GetAnalysisData retrieves the consolidated analysis payload for a
// period. Servers that predate the consolidated endpoint answer 404,
// mapped to interfaces.ErrNotSupported so callers can fall back to the
// per-chart endpoints.
func (c *Client) GetAnalysisData(ctx context.Context, period string) (*models.AnalysisData, error) {
	var data models.AnalysisData
	path := c.apiPath("/analysis-data?period=%s", url.QueryEscape(period))
	if err := c.get(ctx, path, &data); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, interfaces.ErrNotSupported
		}
		return nil, err
	}
	return &data, nil
}

// GetPerformanceSeries retrieves the portfolio value series for a period.
func (c *Client) GetPerformanceSeries(ctx context.Context, period string) (*models.PerformanceData, error) {
	var data models.PerformanceData
	path := c.apiPath("/performance-data?period=%s", url.QueryEscape(period))
	if err := c.get(ctx, path, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetDrawdown retrieves the drawdown series for a period.
func (c *Client) GetDrawdown(ctx context.Context, period string) (*models.DrawdownData, error) {
	var data models.DrawdownData
	path := c.apiPath("/drawdown-data?period=%s", url.QueryEscape(period))
	if err := c.get(ctx, path, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetAllocation retrieves the current allocation breakdown.
func (c *Client) GetAllocation(ctx context.Context, period string) (*models.AllocationData, error) {
	var data models.AllocationData
	path := c.apiPath("/allocation-data?period=%s", url.QueryEscape(period))
	if err := c.get(ctx, path, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetRiskReturn retrieves per-asset risk/return coordinates for a period.
func (c *Client) GetRiskReturn(ctx context.Context, period string) (*models.RiskReturnData, error) {
	var data models.RiskReturnData
	path := c.apiPath("/risk-return-data?period=%s", url.QueryEscape(period))
	if err := c.get(ctx, path, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetReturnsDistribution retrieves the daily-return histogram for a period.
func (c *Client) GetReturnsDistribution(ctx context.Context, period string) (*models.ReturnsDistribution, error) {
	var data models.ReturnsDistribution
	path := c.apiPath("/returns-distribution?period=%s", url.QueryEscape(period))
	if err := c.get(ctx, path, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetCorrelation retrieves the pairwise correlation matrix for a period.
func (c *Client) GetCorrelation(ctx context.Context, period string) (*models.CorrelationData, error) {
	var data models.CorrelationData
	path := c.apiPath("/correlation-data?period=%s", url.QueryEscape(period))
	if err := c.get(ctx, path, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetBenchmark retrieves a benchmark value series for the period.
func (c *Client) GetBenchmark(ctx context.Context, symbol string, period string) (*models.BenchmarkSeries, error) {
	var data models.BenchmarkSeries
	path := fmt.Sprintf("/api/benchmark/%s?period=%s&portfolio_id=%s",
		url.PathEscape(symbol), url.QueryEscape(period), url.QueryEscape(c.portfolioID))
	if err := c.get(ctx, path, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// RunStressTest simulates a market scenario against current holdings.
func (c *Client) RunStressTest(ctx context.Context, scenario *models.StressScenario) (*models.StressResult, error) {
	var result models.StressResult
	path := c.apiPath("/stress-test")
	if err := c.postJSON(ctx, path, scenario, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
