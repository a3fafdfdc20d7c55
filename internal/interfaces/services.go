// Package interfaces defines service contracts for Folio
package interfaces

import (
	"context"

	"github.com/bobmcallan/folio/internal/models"
)

// DashboardService keeps the local view of the portfolio current
type DashboardService interface {
	// Refresh asks the server for live prices, patches the local card
	// set and recomputes the aggregate summary. Concurrent calls
	// collapse into the in-flight refresh.
	Refresh(ctx context.Context) (*models.DashboardState, error)

	// State returns the last refreshed dashboard state
	State() *models.DashboardState

	// LoadPeriods fetches the period performance strip. Individual
	// period failures do not fail the whole load.
	LoadPeriods(ctx context.Context) map[string]*models.PeriodReturn

	// RecordTransaction keeps a locally submitted transaction on its
	// asset card, feeding the degraded-mode cost recomputation used
	// when a price update omits cost figures
	RecordTransaction(symbol string, tx *models.TransactionRow)
}

// AnalysisService drives the analysis chart set
type AnalysisService interface {
	// Load fetches analysis data for a period and renders all charts.
	// A Load superseded by a newer call returns ErrSuperseded.
	Load(ctx context.Context, period string) (*models.AnalysisReport, error)

	// Prefetch warms the period cache without rendering
	Prefetch(ctx context.Context, periods []string)
}

// SearchService debounces asset lookups
type SearchService interface {
	// OnQueryChange registers the latest query text. Results are
	// delivered to the callback passed at construction after the
	// debounce interval, unless superseded by newer input.
	OnQueryChange(query string)

	// Flush runs any pending query immediately, for tests and
	// non-interactive use
	Flush()

	// Close cancels any pending query
	Close()
}

// ActionService performs confirmed portfolio mutations
type ActionService interface {
	// AddAsset registers an asset then refreshes the dashboard
	AddAsset(ctx context.Context, asset *models.SearchResult) error

	// AddTransaction records a transaction then refreshes the dashboard
	AddTransaction(ctx context.Context, symbol string, tx *models.TransactionRow) error

	// DeleteAsset removes an asset after confirmation
	DeleteAsset(ctx context.Context, symbol string, confirm Confirmer) error

	// DeleteTransaction removes a transaction after confirmation
	DeleteTransaction(ctx context.Context, symbol string, tx *models.TransactionRow, confirm Confirmer) error

	// DeletePortfolio removes the whole portfolio after confirmation
	DeletePortfolio(ctx context.Context, confirm Confirmer) error

	// ImportTransactions uploads a CSV file of transactions for an asset
	ImportTransactions(ctx context.Context, symbol string, path string) error
}

// Confirmer answers a yes/no prompt before a destructive action
type Confirmer func(prompt string) bool

// StressService runs market scenario simulations
type StressService interface {
	// Run executes a preset or custom scenario and returns the result
	// together with its markdown rendering
	Run(ctx context.Context, scenario *models.StressScenario) (*models.StressResult, string, error)
}
