package analysis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bobmcallan/folio/internal/charts"
	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/models"
)

// Service implements AnalysisService
type Service struct {
	client    interfaces.FolioClient
	registry  *charts.Registry
	renderer  *charts.Renderer
	logger    *common.Logger
	benchmark string

	gen          atomic.Uint64
	cache        *periodCache
	consolidated atomic.Bool
}

// NewService creates a new analysis service. benchmark is the overlay
// symbol, empty to disable the overlay. cacheTTL bounds the period
// prefetch cache; zero disables caching.
func NewService(
	client interfaces.FolioClient,
	registry *charts.Registry,
	renderer *charts.Renderer,
	benchmark string,
	cacheTTL time.Duration,
	logger *common.Logger,
) *Service {
	s := &Service{
		client:    client,
		registry:  registry,
		renderer:  renderer,
		benchmark: benchmark,
		cache:     newPeriodCache(cacheTTL),
		logger:    logger,
	}
	s.consolidated.Store(true)
	return s
}

// Load fetches the analysis payload for period and rebuilds all six
// charts. Every chart is destroyed and recreated, never patched, so
// axis and dataset configuration cannot leak across periods. A Load
// overtaken by a newer Load returns ErrSuperseded and leaves the
// charts to the newer call.
func (s *Service) Load(ctx context.Context, period string) (*models.AnalysisReport, error) {
	if !models.ValidPeriod(period) {
		return nil, fmt.Errorf("invalid period %q", period)
	}

	token := s.gen.Add(1)

	data, err := s.fetch(ctx, period)
	if err != nil {
		return nil, err
	}

	// a newer period selection owns the charts now
	if token != s.gen.Load() {
		s.logger.Debug().Str("period", period).Msg("Discarding stale analysis response")
		return nil, interfaces.ErrSuperseded
	}

	s.cache.set(period, data)
	return s.render(period, data), nil
}

// Prefetch warms the period cache in the background without touching
// the charts. Failures are logged and dropped.
func (s *Service) Prefetch(ctx context.Context, periods []string) {
	var wg sync.WaitGroup
	for _, period := range periods {
		if !models.ValidPeriod(period) {
			continue
		}
		if _, ok := s.cache.get(period); ok {
			continue
		}
		wg.Add(1)
		go func(period string) {
			defer wg.Done()
			data, err := s.fetch(ctx, period)
			if err != nil {
				s.logger.Debug().Err(err).Str("period", period).Msg("Prefetch failed")
				return
			}
			s.cache.set(period, data)
		}(period)
	}
	wg.Wait()
}

// fetch returns the payload for period from cache, the consolidated
// endpoint, or the legacy per-chart endpoints.
func (s *Service) fetch(ctx context.Context, period string) (*models.AnalysisData, error) {
	if data, ok := s.cache.get(period); ok {
		return data, nil
	}

	var data *models.AnalysisData
	var err error
	if s.consolidated.Load() {
		data, err = s.client.GetAnalysisData(ctx, period)
		if errors.Is(err, interfaces.ErrNotSupported) {
			s.logger.Info().Msg("Server lacks consolidated analysis endpoint, using per-chart endpoints")
			s.consolidated.Store(false)
		} else if err != nil {
			return nil, fmt.Errorf("failed to fetch analysis data: %w", err)
		}
	}
	if data == nil {
		data = s.fetchLegacy(ctx, period)
	}

	s.applyBenchmark(ctx, period, data)
	return data, nil
}

// fetchLegacy issues the six per-chart fetches concurrently. Each
// failure is isolated: the section stays nil and the others still
// render.
func (s *Service) fetchLegacy(ctx context.Context, period string) *models.AnalysisData {
	data := &models.AnalysisData{}
	var wg sync.WaitGroup

	run := func(name string, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(); err != nil {
				s.logger.Warn().Err(err).Str("chart", name).Str("period", period).Msg("Chart data fetch failed")
			}
		}()
	}

	run(charts.KeyPerformance, func() (err error) {
		data.Performance, err = s.client.GetPerformanceSeries(ctx, period)
		return
	})
	run(charts.KeyDrawdown, func() (err error) {
		data.Drawdown, err = s.client.GetDrawdown(ctx, period)
		return
	})
	run(charts.KeyAllocation, func() (err error) {
		data.Allocation, err = s.client.GetAllocation(ctx, period)
		return
	})
	run(charts.KeyRiskReturn, func() (err error) {
		data.RiskReturn, err = s.client.GetRiskReturn(ctx, period)
		return
	})
	run(charts.KeyReturnsDistribution, func() (err error) {
		data.ReturnsDistribution, err = s.client.GetReturnsDistribution(ctx, period)
		return
	})
	run(charts.KeyCorrelation, func() (err error) {
		data.Correlation, err = s.client.GetCorrelation(ctx, period)
		return
	})

	wg.Wait()
	return data
}

// applyBenchmark fills the performance overlay from the benchmark
// endpoint when the payload does not already carry one.
func (s *Service) applyBenchmark(ctx context.Context, period string, data *models.AnalysisData) {
	if s.benchmark == "" || data.Performance == nil {
		return
	}
	perf := data.Performance
	if len(perf.Dates) == 0 || len(perf.BenchmarkValues) == len(perf.Dates) {
		return
	}

	series, err := s.client.GetBenchmark(ctx, s.benchmark, period)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", s.benchmark).Msg("Benchmark fetch failed, skipping overlay")
		return
	}

	values := overlayValues(AlignBenchmark(perf.Dates, series))
	if values == nil {
		s.logger.Warn().Str("symbol", s.benchmark).Msg("Benchmark series empty, skipping overlay")
		return
	}
	perf.BenchmarkValues = values
}

// render rebuilds every chart that has data. A failed render drops
// that one chart, logged, without failing the load.
func (s *Service) render(period string, data *models.AnalysisData) *models.AnalysisReport {
	report := &models.AnalysisReport{
		Period: period,
		Data:   data,
		Charts: make(map[string]string),
	}

	replace := func(key string, render charts.RenderFunc) {
		path, err := s.registry.Replace(key, render)
		if err != nil {
			s.logger.Warn().Err(err).Str("chart", key).Msg("Chart render failed")
			return
		}
		report.Charts[key] = path
	}

	if data.Performance != nil {
		replace(charts.KeyPerformance, func() ([]byte, error) {
			return s.renderer.Performance(data.Performance, s.benchmark)
		})
	}
	if data.Drawdown != nil {
		replace(charts.KeyDrawdown, func() ([]byte, error) {
			return s.renderer.Drawdown(data.Drawdown)
		})
	}
	if data.Allocation != nil {
		replace(charts.KeyAllocation, func() ([]byte, error) {
			return s.renderer.Allocation(data.Allocation)
		})
	}
	if data.RiskReturn != nil {
		replace(charts.KeyRiskReturn, func() ([]byte, error) {
			return s.renderer.RiskReturn(data.RiskReturn)
		})
	}
	if data.ReturnsDistribution != nil {
		replace(charts.KeyReturnsDistribution, func() ([]byte, error) {
			return s.renderer.ReturnsDistribution(data.ReturnsDistribution)
		})
	}

	s.renderCorrelation(report, data.Correlation)
	return report
}

// renderCorrelation handles the asset-count special cases: zero or one
// asset gets placeholder text and no chart at all.
func (s *Service) renderCorrelation(report *models.AnalysisReport, data *models.CorrelationData) {
	if data == nil {
		return
	}

	switch len(data.Labels) {
	case 0:
		s.registry.Destroy(charts.KeyCorrelation)
		report.CorrelationNote = "No assets in portfolio."
	case 1:
		s.registry.Destroy(charts.KeyCorrelation)
		report.CorrelationNote = "Correlation needs at least two assets."
	default:
		path, err := s.registry.Replace(charts.KeyCorrelation, func() ([]byte, error) {
			return s.renderer.Correlation(data)
		})
		if err != nil {
			s.logger.Warn().Err(err).Msg("Correlation render failed")
			return
		}
		report.Charts[charts.KeyCorrelation] = path
	}
}

// Ensure Service implements AnalysisService
var _ interfaces.AnalysisService = (*Service)(nil)
