package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/bobmcallan/folio/internal/models"
)

// ReturnsDistribution renders the daily-return histogram. Negative
// bins paint red, positive bins green.
func (r *Renderer) ReturnsDistribution(data *models.ReturnsDistribution) ([]byte, error) {
	if len(data.Bins) == 0 || len(data.Bins) != len(data.Frequencies) {
		return nil, fmt.Errorf("malformed distribution data: %d bins, %d frequencies", len(data.Bins), len(data.Frequencies))
	}

	bars := make([]chart.Value, len(data.Bins))
	for i, bin := range data.Bins {
		color := corrIdentity
		if len(bin) > 0 && bin[0] == '-' {
			color = corrNegative
			color.A = 255
		}
		bars[i] = chart.Value{
			Label: bin,
			Value: data.Frequencies[i],
			Style: chart.Style{FillColor: color, StrokeColor: color},
		}
	}

	graph := chart.BarChart{
		Title:  "Daily Returns Distribution",
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		BarWidth: max(8, (r.width-100)/len(bars)-6),
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
