package charts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/folio/internal/models"
)

const dateLayout = "2006-01-02"

// Renderer draws the analysis chart set at a fixed size with a shared
// series palette.
type Renderer struct {
	width   int
	height  int
	palette *Palette
}

// NewRenderer creates a chart renderer.
func NewRenderer(width, height int, palette *Palette) *Renderer {
	return &Renderer{width: width, height: height, palette: palette}
}

// parseDates converts the API's date labels to time values. Labels
// that fail to parse keep the axis monotonic by reusing the previous
// value.
func parseDates(labels []string) []time.Time {
	out := make([]time.Time, len(labels))
	var last time.Time
	for i, label := range labels {
		t, err := time.Parse(dateLayout, label)
		if err != nil {
			t = last
		}
		out[i] = t
		last = t
	}
	return out
}

// Performance renders the portfolio value line with an optional
// benchmark overlay (dashed).
func (r *Renderer) Performance(data *models.PerformanceData, benchmarkName string) ([]byte, error) {
	if len(data.Dates) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(data.Dates))
	}

	xValues := parseDates(data.Dates)
	series := []chart.Series{
		chart.TimeSeries{
			Name: "Portfolio",
			Style: chart.Style{
				StrokeColor: r.palette.Color(0),
				StrokeWidth: 2.5,
			},
			XValues: xValues,
			YValues: data.PortfolioValues,
		},
	}

	if len(data.BenchmarkValues) == len(data.Dates) {
		name := benchmarkName
		if name == "" {
			name = "Benchmark"
		}
		series = append(series, chart.TimeSeries{
			Name: name,
			Style: chart.Style{
				StrokeColor:     r.palette.Color(1),
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{5.0, 3.0},
			},
			XValues: xValues,
			YValues: data.BenchmarkValues,
		})
	}

	graph := chart.Chart{
		Title:  "Portfolio Performance",
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition:   chart.TickPositionBetweenTicks,
			ValueFormatter: monthYearFormatter,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
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

// Drawdown renders the drawdown percentage line.
func (r *Renderer) Drawdown(data *models.DrawdownData) ([]byte, error) {
	if len(data.Dates) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(data.Dates))
	}

	graph := chart.Chart{
		Title:  "Drawdown",
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition:   chart.TickPositionBetweenTicks,
			ValueFormatter: monthYearFormatter,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.1f%%", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "Drawdown",
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("ef4444"),
					StrokeWidth: 2.0,
					FillColor:   drawing.ColorFromHex("ef4444").WithAlpha(60),
				},
				XValues: parseDates(data.Dates),
				YValues: data.DrawdownValues,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func monthYearFormatter(v interface{}) string {
	if t, ok := v.(float64); ok {
		return chart.TimeFromFloat64(t).Format("Jan 06")
	}
	return ""
}
