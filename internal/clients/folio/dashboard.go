package folio

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bobmcallan/folio/internal/models"
)

// UpdatePrices asks the server to refresh live prices for every
// position and returns the updated records.
func (c *Client) UpdatePrices(ctx context.Context) ([]*models.AssetPosition, error) {
	var resp updatePricesResponse
	path := c.portfolioPath("/update_prices")
	if err := c.postJSON(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		reason := resp.Error
		if reason == "" {
			reason = "unknown error"
		}
		return nil, &MutationError{Endpoint: path, Reason: reason}
	}

	positions := make([]*models.AssetPosition, len(resp.Data))
	for i := range resp.Data {
		positions[i] = &resp.Data[i]
	}
	return positions, nil
}

type updatePricesResponse struct {
	Success bool                   `json:"success"`
	Error   string                 `json:"error"`
	Data    []models.AssetPosition `json:"data"`
}

// GetPerformance retrieves the portfolio return for one period.
func (c *Client) GetPerformance(ctx context.Context, period string) (*models.PeriodReturn, error) {
	var resp performanceResponse
	path := c.portfolioPath("/performance?period=%s", url.QueryEscape(period))
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &models.PeriodReturn{Period: period, PercentReturn: resp.PercentReturn}, nil
}

type performanceResponse struct {
	PercentReturn float64 `json:"percent_return"`
}

// SearchAssets looks up tradeable assets by name or symbol fragment.
func (c *Client) SearchAssets(ctx context.Context, query string) ([]*models.SearchResult, error) {
	var resp searchResponse
	path := fmt.Sprintf("/search_assets?q=%s", url.QueryEscape(query))
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	results := make([]*models.SearchResult, len(resp.Results))
	for i := range resp.Results {
		results[i] = &resp.Results[i]
	}
	return results, nil
}

type searchResponse struct {
	Results []models.SearchResult `json:"results"`
}
