package search

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/models"
)

type fakeClient struct {
	interfaces.FolioClient

	calls   int32
	queries []string
	mu      sync.Mutex
	err     error
}

func (f *fakeClient) SearchAssets(ctx context.Context, query string) ([]*models.SearchResult, error) {
	atomic.AddInt32(&f.calls, 1)
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return []*models.SearchResult{
		{Symbol: "AAPL", Name: "Apple Inc.", Price: 231.5, Currency: "USD", Type: "stock"},
	}, nil
}

type collector struct {
	mu      sync.Mutex
	query   string
	results []*models.SearchResult
	calls   int
}

func (c *collector) fn(query string, results []*models.SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
	c.results = results
	c.calls++
}

func (c *collector) snapshot() ([]*models.SearchResult, string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results, c.query, c.calls
}

func TestOnQueryChange_DebouncesToLatestQuery(t *testing.T) {
	client := &fakeClient{}
	var col collector
	svc := NewService(client, col.fn, 30*time.Millisecond, common.NewSilentLogger())
	defer svc.Close()

	svc.OnQueryChange("AAP")
	svc.OnQueryChange("AAPL")

	time.Sleep(120 * time.Millisecond)

	require.Equal(t, int32(1), atomic.LoadInt32(&client.calls))
	client.mu.Lock()
	assert.Equal(t, []string{"AAPL"}, client.queries)
	client.mu.Unlock()

	results, query, _ := col.snapshot()
	assert.Equal(t, "AAPL", query)
	require.Len(t, results, 1)
	assert.Equal(t, "Apple Inc.", results[0].Name)
}

func TestOnQueryChange_ShortQueryClearsWithoutRequest(t *testing.T) {
	client := &fakeClient{}
	var col collector
	svc := NewService(client, col.fn, 10*time.Millisecond, common.NewSilentLogger())
	defer svc.Close()

	// a pending lookup gets cancelled by the short query
	svc.OnQueryChange("AAPL")
	svc.OnQueryChange("A")

	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, int32(0), atomic.LoadInt32(&client.calls))
	results, _, calls := col.snapshot()
	assert.Nil(t, results)
	assert.Equal(t, 1, calls)
}

func TestOnQueryChange_FailureRendersErrorRow(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	var col collector
	svc := NewService(client, col.fn, 5*time.Millisecond, common.NewSilentLogger())
	defer svc.Close()

	svc.OnQueryChange("AAPL")
	time.Sleep(60 * time.Millisecond)

	results, _, _ := col.snapshot()
	require.Len(t, results, 1)
	assert.Equal(t, ErrorResultType, results[0].Type)
	assert.NotEmpty(t, results[0].Name)
}

func TestFlush_RunsPendingImmediately(t *testing.T) {
	client := &fakeClient{}
	var col collector
	svc := NewService(client, col.fn, time.Hour, common.NewSilentLogger())
	defer svc.Close()

	svc.OnQueryChange("GLD")
	svc.Flush()

	assert.Equal(t, int32(1), atomic.LoadInt32(&client.calls))
}
