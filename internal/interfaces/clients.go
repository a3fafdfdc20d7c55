// Package interfaces defines service contracts for Folio
package interfaces

import (
	"context"
	"io"

	"github.com/bobmcallan/folio/internal/models"
)

// FolioClient provides access to the portfolio server API. Every call
// is scoped to the portfolio the client was constructed with.
type FolioClient interface {
	// UpdatePrices asks the server to refresh live prices and returns
	// the updated positions
	UpdatePrices(ctx context.Context) ([]*models.AssetPosition, error)

	// GetPerformance retrieves the portfolio return for one period
	// (1m, 3m, 6m, ytd, 1y)
	GetPerformance(ctx context.Context, period string) (*models.PeriodReturn, error)

	// GetAnalysisData retrieves the consolidated analysis payload for a
	// period. Returns ErrNotSupported when the server predates the
	// consolidated endpoint.
	GetAnalysisData(ctx context.Context, period string) (*models.AnalysisData, error)

	// Legacy per-chart endpoints, used when GetAnalysisData is not
	// supported by the server.
	GetPerformanceSeries(ctx context.Context, period string) (*models.PerformanceData, error)
	GetDrawdown(ctx context.Context, period string) (*models.DrawdownData, error)
	GetAllocation(ctx context.Context, period string) (*models.AllocationData, error)
	GetRiskReturn(ctx context.Context, period string) (*models.RiskReturnData, error)
	GetReturnsDistribution(ctx context.Context, period string) (*models.ReturnsDistribution, error)
	GetCorrelation(ctx context.Context, period string) (*models.CorrelationData, error)

	// GetBenchmark retrieves a benchmark value series for alignment
	// against the portfolio series
	GetBenchmark(ctx context.Context, symbol string, period string) (*models.BenchmarkSeries, error)

	// SearchAssets looks up tradeable assets by name or symbol fragment
	SearchAssets(ctx context.Context, query string) ([]*models.SearchResult, error)

	// AddAsset registers a new asset in the portfolio
	AddAsset(ctx context.Context, asset *models.SearchResult) error

	// AddTransaction records a buy or sell against an asset
	AddTransaction(ctx context.Context, symbol string, tx *models.TransactionRow) error

	// DeleteAsset removes an asset and all its transactions
	DeleteAsset(ctx context.Context, symbol string) error

	// DeleteTransaction removes the transaction matching the given
	// date, type, quantity and price
	DeleteTransaction(ctx context.Context, symbol string, tx *models.TransactionRow) error

	// DeletePortfolio removes the whole portfolio
	DeletePortfolio(ctx context.Context) error

	// ImportTransactions uploads a CSV of transactions for an asset
	ImportTransactions(ctx context.Context, symbol string, filename string, r io.Reader) error

	// RunStressTest simulates a market scenario against current holdings
	RunStressTest(ctx context.Context, scenario *models.StressScenario) (*models.StressResult, error)
}
