package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/folio/internal/models"
)

// RiskReturn renders the per-asset risk/return scatter plus the whole
// portfolio as a distinct marker.
func (r *Renderer) RiskReturn(data *models.RiskReturnData) ([]byte, error) {
	if len(data.Assets) == 0 {
		return nil, fmt.Errorf("no assets in risk/return data")
	}
	if len(data.Risks) != len(data.Assets) || len(data.Returns) != len(data.Assets) {
		return nil, fmt.Errorf("malformed risk/return data: %d assets, %d risks, %d returns",
			len(data.Assets), len(data.Risks), len(data.Returns))
	}

	series := make([]chart.Series, 0, len(data.Assets)+1)
	for i, asset := range data.Assets {
		series = append(series, chart.ContinuousSeries{
			Name: asset,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    6,
				DotColor:    r.palette.Color(i),
			},
			XValues: []float64{data.Risks[i]},
			YValues: []float64{data.Returns[i]},
		})
	}
	series = append(series, chart.ContinuousSeries{
		Name: "Portfolio",
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    9,
			DotColor:    drawing.ColorFromHex("1e293b"),
		},
		XValues: []float64{data.PortfolioRisk},
		YValues: []float64{data.PortfolioReturn},
	})

	graph := chart.Chart{
		Title:  "Risk vs Return",
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name:           "Volatility %",
			ValueFormatter: percentFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Return %",
			ValueFormatter: percentFormatter,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func percentFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.1f%%", f)
	}
	return ""
}
