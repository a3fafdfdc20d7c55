package analysis

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/folio/internal/charts"
	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/models"
)

type fakeClient struct {
	interfaces.FolioClient

	mu                sync.Mutex
	consolidatedCalls int32
	legacyCalls       int32
	benchmarkCalls    int32
	consolidatedErr   error
	data              *models.AnalysisData
	benchmark         *models.BenchmarkSeries
	block             chan struct{} // when non-nil, GetAnalysisData waits on it
}

func (f *fakeClient) GetAnalysisData(ctx context.Context, period string) (*models.AnalysisData, error) {
	atomic.AddInt32(&f.consolidatedCalls, 1)
	f.mu.Lock()
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	if f.consolidatedErr != nil {
		return nil, f.consolidatedErr
	}
	return f.data, nil
}

func (f *fakeClient) GetPerformanceSeries(ctx context.Context, period string) (*models.PerformanceData, error) {
	atomic.AddInt32(&f.legacyCalls, 1)
	return &models.PerformanceData{
		Dates:           []string{"2026-01-02", "2026-02-02"},
		PortfolioValues: []float64{100, 103},
	}, nil
}

func (f *fakeClient) GetDrawdown(ctx context.Context, period string) (*models.DrawdownData, error) {
	atomic.AddInt32(&f.legacyCalls, 1)
	return nil, errors.New("drawdown endpoint down")
}

func (f *fakeClient) GetAllocation(ctx context.Context, period string) (*models.AllocationData, error) {
	atomic.AddInt32(&f.legacyCalls, 1)
	return &models.AllocationData{Assets: []string{"AAPL"}, Allocations: []float64{100}}, nil
}

func (f *fakeClient) GetRiskReturn(ctx context.Context, period string) (*models.RiskReturnData, error) {
	atomic.AddInt32(&f.legacyCalls, 1)
	return nil, errors.New("risk endpoint down")
}

func (f *fakeClient) GetReturnsDistribution(ctx context.Context, period string) (*models.ReturnsDistribution, error) {
	atomic.AddInt32(&f.legacyCalls, 1)
	return nil, errors.New("distribution endpoint down")
}

func (f *fakeClient) GetCorrelation(ctx context.Context, period string) (*models.CorrelationData, error) {
	atomic.AddInt32(&f.legacyCalls, 1)
	return nil, errors.New("correlation endpoint down")
}

func (f *fakeClient) GetBenchmark(ctx context.Context, symbol, period string) (*models.BenchmarkSeries, error) {
	atomic.AddInt32(&f.benchmarkCalls, 1)
	if f.benchmark == nil {
		return nil, errors.New("no benchmark")
	}
	return f.benchmark, nil
}

func newTestService(t *testing.T, client *fakeClient, benchmark string, ttl time.Duration) *Service {
	t.Helper()
	logger := common.NewSilentLogger()
	cache := charts.NewImageCache(t.TempDir(), logger)
	registry := charts.NewRegistry(cache, logger)
	renderer := charts.NewRenderer(400, 240, charts.NewPalette(1))
	return NewService(client, registry, renderer, benchmark, ttl, logger)
}

func consolidatedData() *models.AnalysisData {
	return &models.AnalysisData{
		Performance: &models.PerformanceData{
			Dates:           []string{"2026-01-02", "2026-02-02", "2026-03-02"},
			PortfolioValues: []float64{100, 104, 102},
		},
		Allocation: &models.AllocationData{
			Assets:      []string{"AAPL", "GLD"},
			Allocations: []float64{70, 30},
		},
		Correlation: &models.CorrelationData{
			Labels: []string{"AAPL", "GLD"},
			Values: []models.CorrelationCell{
				{X: "AAPL", Y: "AAPL", V: 1},
				{X: "AAPL", Y: "GLD", V: -0.3},
				{X: "GLD", Y: "GLD", V: 1},
			},
		},
	}
}

func TestLoad_ConsolidatedRendersAvailableCharts(t *testing.T) {
	client := &fakeClient{data: consolidatedData()}
	svc := newTestService(t, client, "", 0)

	report, err := svc.Load(context.Background(), "1y")
	require.NoError(t, err)

	assert.Contains(t, report.Charts, charts.KeyPerformance)
	assert.Contains(t, report.Charts, charts.KeyAllocation)
	assert.Contains(t, report.Charts, charts.KeyCorrelation)
	// sections absent from the payload produce no chart
	assert.NotContains(t, report.Charts, charts.KeyDrawdown)
}

func TestLoad_InvalidPeriod(t *testing.T) {
	svc := newTestService(t, &fakeClient{data: consolidatedData()}, "", 0)
	_, err := svc.Load(context.Background(), "2w")
	require.Error(t, err)
}

func TestLoad_FallsBackToLegacyEndpoints(t *testing.T) {
	client := &fakeClient{consolidatedErr: interfaces.ErrNotSupported}
	svc := newTestService(t, client, "", 0)

	report, err := svc.Load(context.Background(), "6m")
	require.NoError(t, err)

	// surviving sections still render despite sibling failures
	assert.Contains(t, report.Charts, charts.KeyPerformance)
	assert.NotContains(t, report.Charts, charts.KeyDrawdown)
	assert.Equal(t, int32(6), atomic.LoadInt32(&client.legacyCalls))

	// the fallback sticks: later loads skip the consolidated endpoint
	_, err = svc.Load(context.Background(), "1m")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&client.consolidatedCalls))
}

func TestLoad_StaleResponseDiscarded(t *testing.T) {
	blocked := make(chan struct{})
	client := &fakeClient{data: consolidatedData(), block: blocked}
	svc := newTestService(t, client, "", 0)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Load(context.Background(), "1m")
		done <- err
	}()

	// wait for the first load to be in flight
	for atomic.LoadInt32(&client.consolidatedCalls) == 0 {
		time.Sleep(time.Millisecond)
	}

	// the second load supersedes the first, then both unblock
	client.mu.Lock()
	client.block = nil
	client.mu.Unlock()
	second := make(chan error, 1)
	go func() {
		_, err := svc.Load(context.Background(), "3m")
		second <- err
	}()
	require.NoError(t, <-second)

	close(blocked)
	err := <-done
	require.ErrorIs(t, err, interfaces.ErrSuperseded)
}

func TestLoad_CacheAvoidsSecondFetch(t *testing.T) {
	client := &fakeClient{data: consolidatedData()}
	svc := newTestService(t, client, "", time.Minute)

	_, err := svc.Load(context.Background(), "1y")
	require.NoError(t, err)
	_, err = svc.Load(context.Background(), "1y")
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&client.consolidatedCalls))
}

func TestPrefetch_WarmsCache(t *testing.T) {
	client := &fakeClient{data: consolidatedData()}
	svc := newTestService(t, client, "", time.Minute)

	svc.Prefetch(context.Background(), []string{"1m", "3m", "bogus"})
	assert.Equal(t, int32(2), atomic.LoadInt32(&client.consolidatedCalls))

	_, err := svc.Load(context.Background(), "1m")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&client.consolidatedCalls))
}

func TestLoad_BenchmarkOverlayAligned(t *testing.T) {
	client := &fakeClient{
		data: consolidatedData(),
		benchmark: &models.BenchmarkSeries{
			Name:   "MSCI World",
			Dates:  []string{"2026-01-02", "2026-03-02"},
			Values: []float64{10, 12},
		},
	}
	svc := newTestService(t, client, "URTH", 0)

	report, err := svc.Load(context.Background(), "1y")
	require.NoError(t, err)

	require.Len(t, report.Data.Performance.BenchmarkValues, 3)
	assert.Equal(t, []float64{10, 10, 12}, report.Data.Performance.BenchmarkValues)
	assert.Equal(t, int32(1), atomic.LoadInt32(&client.benchmarkCalls))
}

func TestRenderCorrelation_PlaceholderForSmallPortfolios(t *testing.T) {
	one := consolidatedData()
	one.Correlation = &models.CorrelationData{Labels: []string{"AAPL"}}
	svc := newTestService(t, &fakeClient{data: one}, "", 0)

	report, err := svc.Load(context.Background(), "1y")
	require.NoError(t, err)
	assert.NotContains(t, report.Charts, charts.KeyCorrelation)
	assert.Contains(t, report.CorrelationNote, "two assets")

	empty := consolidatedData()
	empty.Correlation = &models.CorrelationData{}
	svc = newTestService(t, &fakeClient{data: empty}, "", 0)
	report, err = svc.Load(context.Background(), "1y")
	require.NoError(t, err)
	assert.NotContains(t, report.Charts, charts.KeyCorrelation)
	assert.NotEmpty(t, report.CorrelationNote)
}
