package models

// Period identifiers accepted by the analysis endpoints.
var AnalysisPeriods = []string{"1m", "3m", "6m", "ytd", "1y", "all"}

// DashboardPeriods are the horizons painted into the performance cards.
var DashboardPeriods = []string{"1m", "3m", "6m", "ytd", "1y"}

// ValidPeriod reports whether p is one of the analysis periods.
func ValidPeriod(p string) bool {
	for _, v := range AnalysisPeriods {
		if v == p {
			return true
		}
	}
	return false
}

// AnalysisData is the consolidated payload for one period: everything
// the six analysis views need in a single response.
type AnalysisData struct {
	Performance         *PerformanceData     `json:"performance"`
	Drawdown            *DrawdownData        `json:"drawdown"`
	Allocation          *AllocationData      `json:"allocation"`
	RiskReturn          *RiskReturnData      `json:"riskReturn"`
	ReturnsDistribution *ReturnsDistribution `json:"returnsDistribution"`
	Correlation         *CorrelationData     `json:"correlation"`
}

// PerformanceMetrics are the headline figures under the performance
// chart. Nullable values render as "N/A".
type PerformanceMetrics struct {
	TotalReturn      *float64 `json:"totalReturn"`
	AnnualizedReturn *float64 `json:"annualizedReturn"`
	Alpha            *float64 `json:"alpha"`
	Beta             *float64 `json:"beta"`
	SharpeRatio      *float64 `json:"sharpeRatio"`
	Volatility       *float64 `json:"volatility"`
}

// PerformanceData is the portfolio value series plus optional benchmark
// overlay and summary metrics.
type PerformanceData struct {
	Dates           []string            `json:"dates"`
	PortfolioValues []float64           `json:"portfolioValues"`
	BenchmarkValues []float64           `json:"benchmarkValues"`
	Metrics         *PerformanceMetrics `json:"metrics"`
}

// DrawdownMetrics summarize peak-to-trough behavior over the period.
type DrawdownMetrics struct {
	MaxDrawdown         *float64 `json:"maxDrawdown"`
	AvgDrawdownDuration *float64 `json:"avgDrawdownDuration"`
	AvgRecoveryTime     *float64 `json:"avgRecoveryTime"`
	CurrentDrawdown     *float64 `json:"currentDrawdown"`
}

// DrawdownData is the drawdown series (negative percentages) plus metrics.
type DrawdownData struct {
	Dates          []string         `json:"dates"`
	DrawdownValues []float64        `json:"drawdownValues"`
	Metrics        *DrawdownMetrics `json:"metrics"`
}

// AllocationData maps asset labels to allocation percentages.
type AllocationData struct {
	Assets      []string  `json:"assets"`
	Allocations []float64 `json:"allocations"`
}

// RiskReturnData positions each asset (and the whole portfolio) on a
// volatility/return plane.
type RiskReturnData struct {
	Assets          []string  `json:"assets"`
	Risks           []float64 `json:"risks"`
	Returns         []float64 `json:"returns"`
	PortfolioRisk   float64   `json:"portfolioRisk"`
	PortfolioReturn float64   `json:"portfolioReturn"`
}

// ReturnsDistribution is the daily-return histogram.
type ReturnsDistribution struct {
	Bins        []string  `json:"bins"`
	Frequencies []float64 `json:"frequencies"`
}

// CorrelationCell is one entry of the pairwise correlation matrix.
// V is in [-1, 1]; the diagonal is always 1.
type CorrelationCell struct {
	X string  `json:"x"`
	Y string  `json:"y"`
	V float64 `json:"v"`
}

// CorrelationData is the label list plus the flattened matrix.
type CorrelationData struct {
	Labels []string          `json:"labels"`
	Values []CorrelationCell `json:"correlationValues"`
}

// Coefficient returns the pairwise coefficient for labels a and b,
// or 0 if the pair is absent.
func (c *CorrelationData) Coefficient(a, b string) float64 {
	for _, cell := range c.Values {
		if (cell.X == a && cell.Y == b) || (cell.X == b && cell.Y == a) {
			return cell.V
		}
	}
	return 0
}

// BenchmarkSeries is the benchmark endpoint payload.
type BenchmarkSeries struct {
	Name   string    `json:"name"`
	Dates  []string  `json:"dates"`
	Values []float64 `json:"values"`
}
