// Package models defines data structures for Folio
package models

import "strings"

// SafeSymbol sanitizes a ticker symbol for use as a card key,
// replacing dots with underscores (e.g. "ENI.MI" -> "ENI_MI").
func SafeSymbol(symbol string) string {
	return strings.ReplaceAll(symbol, ".", "_")
}

// AssetPosition is the per-asset record returned by the price-update
// endpoint. Long-horizon changes are nullable: assets younger than the
// horizon report nothing and render as "N/A".
type AssetPosition struct {
	Symbol               string   `json:"symbol"`
	CurrentPrice         float64  `json:"current_price"`
	NetQuantity          float64  `json:"net_quantity"`
	AvgCost              float64  `json:"avg_cost"`
	CurrentValue         float64  `json:"current_value"`
	PLValue              float64  `json:"pl_value"`
	PLPercent            float64  `json:"pl_percent"`
	DailyChange          float64  `json:"daily_change"`
	WeeklyChange         float64  `json:"weekly_change"`
	MonthlyChange        float64  `json:"monthly_change"`
	YTDChange            float64  `json:"ytd_change"`
	ThreeYearChange      *float64 `json:"three_year_change"`
	FiveYearChange       *float64 `json:"five_year_change"`
	TenYearChange        *float64 `json:"ten_year_change"`
	SinceInceptionChange float64  `json:"since_inception_change"`
}

// PortfolioSummary holds the aggregate figures shown at the top of the
// dashboard. Rebuilt on every refresh, never persisted.
type PortfolioSummary struct {
	TotalValue               float64
	DailyChangeAbsolute      float64
	DailyChangePercent       float64
	TotalPerformanceAbsolute float64
	TotalPerformancePercent  float64
}

// TransactionType is a buy or sell marker on a transaction row.
type TransactionType string

const (
	TransactionBuy  TransactionType = "buy"
	TransactionSell TransactionType = "sell"
)

// TransactionRow is a single transaction as rendered on an asset card.
// Used by the degraded-mode aggregate recomputation when the server
// omits per-asset cost figures.
type TransactionRow struct {
	Date     string          `json:"date"`
	Type     TransactionType `json:"type"`
	Quantity float64         `json:"quantity"`
	Price    float64         `json:"price"`
}

// Signed returns the row's contribution to net quantity and cost basis:
// buys add, sells subtract.
func (r TransactionRow) Signed() (quantity, cost float64) {
	total := r.Quantity * r.Price
	if r.Type == TransactionSell {
		return -r.Quantity, -total
	}
	return r.Quantity, total
}

// SearchResult is one entry from the asset search endpoint.
type SearchResult struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Type     string  `json:"type"`
}

// PeriodReturn is the percent return for one lookback window.
type PeriodReturn struct {
	Period        string  `json:"period"`
	PercentReturn float64 `json:"percent_return"`
}
