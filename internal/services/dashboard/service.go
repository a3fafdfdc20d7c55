// Package dashboard keeps the local portfolio view current
package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/models"
)

// Phase is the current position in the refresh cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetching
	PhaseReconciling
	PhaseAggregating
	PhaseFetchingPeriods
)

func (p Phase) String() string {
	switch p {
	case PhaseFetching:
		return "fetching"
	case PhaseReconciling:
		return "reconciling"
	case PhaseAggregating:
		return "aggregating"
	case PhaseFetchingPeriods:
		return "fetching-periods"
	default:
		return "idle"
	}
}

// flight is one running refresh cycle. err is written before done is
// closed, so collapsed callers observe the same outcome as the
// initiator.
type flight struct {
	done chan struct{}
	err  error
}

// Service implements DashboardService
type Service struct {
	client interfaces.FolioClient
	logger *common.Logger

	mu       sync.Mutex
	state    *models.DashboardState
	phase    Phase
	inFlight *flight // non-nil while a refresh runs
	seeded   bool    // true once a server response has populated the cards
}

// NewService creates a new dashboard service
func NewService(client interfaces.FolioClient, logger *common.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
		state: &models.DashboardState{
			Cards: make(map[string]*models.AssetCard),
		},
	}
}

// State returns the last refreshed dashboard state.
func (s *Service) State() *models.DashboardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Phase returns the current refresh phase.
func (s *Service) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Refresh fetches live prices, patches the card set and recomputes the
// aggregate summary. A call arriving while a refresh is already running
// waits for that refresh and reports its outcome instead of starting
// another.
func (s *Service) Refresh(ctx context.Context) (*models.DashboardState, error) {
	s.mu.Lock()
	if s.inFlight != nil {
		fl := s.inFlight
		s.mu.Unlock()
		select {
		case <-fl.done:
			if fl.err != nil {
				return nil, fl.err
			}
			return s.State(), nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	fl := &flight{done: make(chan struct{})}
	s.inFlight = fl
	s.phase = PhaseFetching
	s.mu.Unlock()

	state, err := s.runRefresh(ctx)

	s.mu.Lock()
	s.inFlight = nil
	s.phase = PhaseIdle
	s.mu.Unlock()
	fl.err = err
	close(fl.done)

	return state, err
}

func (s *Service) runRefresh(ctx context.Context) (*models.DashboardState, error) {
	positions, err := s.client.UpdatePrices(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Price update failed, keeping previous dashboard state")
		return nil, fmt.Errorf("failed to update prices: %w", err)
	}

	s.mu.Lock()
	s.phase = PhaseReconciling
	s.patchCards(positions)
	s.phase = PhaseAggregating
	s.state.Summary = Aggregate(s.state.CardList())
	s.state.RefreshedAt = time.Now()
	state := s.state
	s.mu.Unlock()

	s.logger.Info().
		Int("positions", len(positions)).
		Float64("total_value", state.Summary.TotalValue).
		Msg("Dashboard refreshed")

	return state, nil
}

// patchCards applies updated positions to the card set by symbol key.
// On the first refresh the card set is seeded from the response; after
// that only matching cards are patched and unmatched records are
// skipped with a warning. Cards whose symbol is absent from the
// response keep their previous values. Caller holds s.mu.
func (s *Service) patchCards(positions []*models.AssetPosition) {
	for _, pos := range positions {
		key := models.SafeSymbol(pos.Symbol)
		card, ok := s.state.Cards[key]
		if !ok {
			if s.seeded {
				s.logger.Warn().Str("symbol", pos.Symbol).Msg("No card for updated symbol, skipping")
				continue
			}
			card = &models.AssetCard{Key: key}
			s.state.Cards[key] = card
			s.state.Order = append(s.state.Order, key)
		}
		card.Position = *pos
		s.reconcileCosts(card)
	}
	s.seeded = true
}

// reconcileCosts rebuilds the cost figures of a card from its locally
// recorded transactions when a response omits them. The server's price
// and change figures are kept as-is. Caller holds s.mu.
func (s *Service) reconcileCosts(card *models.AssetCard) {
	pos := &card.Position
	if pos.AvgCost != 0 || pos.PLValue != 0 || len(card.Transactions) == 0 {
		return
	}
	rebuilt := RecomputeFromTransactions(pos.Symbol, card.Transactions, pos.CurrentPrice)
	pos.NetQuantity = rebuilt.NetQuantity
	pos.AvgCost = rebuilt.AvgCost
	if pos.CurrentValue == 0 {
		pos.CurrentValue = rebuilt.CurrentValue
	}
	netCost := rebuilt.AvgCost * rebuilt.NetQuantity
	pos.PLValue = pos.CurrentValue - netCost
	if netCost > 0 {
		pos.PLPercent = pos.PLValue / netCost * 100
	}
	s.logger.Warn().Str("symbol", pos.Symbol).
		Msg("Response omitted cost figures, recomputed from local transactions")
}

// RecordTransaction keeps a locally submitted transaction on its asset
// card so cost figures can be rebuilt when the server omits them. An
// unknown symbol gets a new card that the next refresh fills in.
func (s *Service) RecordTransaction(symbol string, tx *models.TransactionRow) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := models.SafeSymbol(symbol)
	card, ok := s.state.Cards[key]
	if !ok {
		card = &models.AssetCard{Key: key, Position: models.AssetPosition{Symbol: symbol}}
		s.state.Cards[key] = card
		s.state.Order = append(s.state.Order, key)
	}
	card.Transactions = append(card.Transactions, *tx)
}

// LoadPeriods fetches the period performance strip. Each period is
// fetched concurrently; a failed period is logged and omitted so the
// others still render.
func (s *Service) LoadPeriods(ctx context.Context) map[string]*models.PeriodReturn {
	// a refresh in flight owns the phase; do not stomp it
	s.mu.Lock()
	if s.inFlight == nil {
		s.phase = PhaseFetchingPeriods
	}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		if s.inFlight == nil && s.phase == PhaseFetchingPeriods {
			s.phase = PhaseIdle
		}
		s.mu.Unlock()
	}()

	var wg sync.WaitGroup
	var resultMu sync.Mutex
	results := make(map[string]*models.PeriodReturn, len(models.DashboardPeriods))

	for _, period := range models.DashboardPeriods {
		wg.Add(1)
		go func(period string) {
			defer wg.Done()
			ret, err := s.client.GetPerformance(ctx, period)
			if err != nil {
				s.logger.Warn().Err(err).Str("period", period).Msg("Period performance fetch failed")
				return
			}
			resultMu.Lock()
			results[period] = ret
			resultMu.Unlock()
		}(period)
	}
	wg.Wait()

	return results
}

// Ensure Service implements DashboardService
var _ interfaces.DashboardService = (*Service)(nil)
