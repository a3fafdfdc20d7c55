package models

import "time"

// AssetCard is the locally rendered view of one position. Cards are
// keyed by SafeSymbol and patched in place when a refresh returns
// updated prices, so unrelated local state survives server responses
// that omit a symbol.
type AssetCard struct {
	Key      string
	Position AssetPosition

	// Transactions submitted from this client, kept so cost figures
	// can be rebuilt when a response omits them
	Transactions []TransactionRow
}

// DashboardState is the local view of the portfolio between refreshes.
type DashboardState struct {
	Summary     PortfolioSummary
	Cards       map[string]*AssetCard
	Order       []string // card keys in display order
	RefreshedAt time.Time
}

// CardList returns the cards in display order.
func (s *DashboardState) CardList() []*AssetCard {
	cards := make([]*AssetCard, 0, len(s.Order))
	for _, key := range s.Order {
		if c, ok := s.Cards[key]; ok {
			cards = append(cards, c)
		}
	}
	return cards
}

// AnalysisReport is the rendered output of one analysis load: the raw
// data plus the chart image paths keyed by chart name. When the
// portfolio is too small for a correlation chart, CorrelationNote
// carries the placeholder text instead of a chart path.
type AnalysisReport struct {
	Period          string
	Data            *AnalysisData
	Charts          map[string]string
	CorrelationNote string
}
