// Package search provides debounced asset lookup
package search

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/models"
	"github.com/bobmcallan/folio/internal/ui"
)

// DefaultDebounce matches the quiet interval of the search box.
const DefaultDebounce = 300 * time.Millisecond

// minQueryLength is the shortest query that triggers a request;
// anything shorter just clears the results.
const minQueryLength = 2

// ErrorResultType marks a result row that carries a failure message
// instead of an asset.
const ErrorResultType = "error"

// ResultsFunc receives the result rows for the latest completed query.
// A nil slice means the results were cleared.
type ResultsFunc func(query string, results []*models.SearchResult)

// Service implements SearchService. Queries are debounced: rapid input
// cancels the pending lookup so only the latest query reaches the
// server. Lookup failures surface as an inline error row, never as an
// error to the caller.
type Service struct {
	client    interfaces.FolioClient
	logger    *common.Logger
	debouncer *ui.Debouncer
	onResults ResultsFunc
	timeout   time.Duration
}

// NewService creates a search service delivering results to onResults.
func NewService(client interfaces.FolioClient, onResults ResultsFunc, debounce time.Duration, logger *common.Logger) *Service {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Service{
		client:    client,
		logger:    logger,
		debouncer: ui.NewDebouncer(debounce),
		onResults: onResults,
		timeout:   10 * time.Second,
	}
}

// OnQueryChange registers the latest query text. Queries shorter than
// two characters cancel any pending lookup and clear the results.
func (s *Service) OnQueryChange(query string) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLength {
		s.debouncer.Cancel()
		s.onResults(query, nil)
		return
	}

	s.debouncer.Trigger(func() {
		s.run(query)
	})
}

// Flush runs any pending query immediately.
func (s *Service) Flush() {
	s.debouncer.Flush()
}

// Close cancels any pending query.
func (s *Service) Close() {
	s.debouncer.Cancel()
}

func (s *Service) run(query string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	results, err := s.client.SearchAssets(ctx, query)
	if err != nil {
		s.logger.Warn().Err(err).Str("query", query).Msg("Asset search failed")
		s.onResults(query, []*models.SearchResult{{
			Type: ErrorResultType,
			Name: "Search failed, try again.",
		}})
		return
	}

	s.onResults(query, results)
}

// Ensure Service implements SearchService
var _ interfaces.SearchService = (*Service)(nil)
