package dashboard

import (
	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/models"
)

// Aggregate recomputes the portfolio summary from the current card set.
//
// The daily change is derived from each asset's daily percentage: the
// value an asset had yesterday is approximated as
// current / (1 + dailyChange/100). This assumes quantities did not
// change since yesterday; an intraday trade skews the figure until the
// next server-side revaluation.
func Aggregate(cards []*models.AssetCard) models.PortfolioSummary {
	var totalValue, yesterdayValue, totalPL, totalCost float64

	for _, card := range cards {
		pos := card.Position
		totalValue += pos.CurrentValue
		totalPL += pos.PLValue
		totalCost += pos.AvgCost * pos.NetQuantity

		denom := 1 + pos.DailyChange/100
		if denom != 0 {
			yesterdayValue += pos.CurrentValue / denom
		}
	}

	return models.PortfolioSummary{
		TotalValue:               totalValue,
		DailyChangeAbsolute:      totalValue - yesterdayValue,
		DailyChangePercent:       common.PctChange(yesterdayValue, totalValue),
		TotalPerformanceAbsolute: totalPL,
		TotalPerformancePercent:  common.PctChange(totalCost, totalValue),
	}
}

// RecomputeFromTransactions rebuilds a position from its transaction
// rows and the current market price. The server computes these figures
// itself; this path covers responses that omit cost fields and keeps
// card arithmetic testable in isolation.
func RecomputeFromTransactions(symbol string, rows []models.TransactionRow, currentPrice float64) models.AssetPosition {
	var netQuantity, netCost float64
	for _, row := range rows {
		q, cost := row.Signed()
		netQuantity += q
		netCost += cost
	}

	avgCost := 0.0
	if netQuantity > 0 {
		avgCost = netCost / netQuantity
	}

	currentValue := netQuantity * currentPrice
	plValue := currentValue - netCost

	plPercent := 0.0
	if netCost > 0 {
		plPercent = plValue / netCost * 100
	}

	return models.AssetPosition{
		Symbol:       symbol,
		CurrentPrice: currentPrice,
		NetQuantity:  netQuantity,
		AvgCost:      avgCost,
		CurrentValue: currentValue,
		PLValue:      plValue,
		PLPercent:    plPercent,
	}
}
