package charts

import (
	"bytes"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/folio/internal/models"
)

// CorrelationBand gives the qualitative label for a pairwise
// coefficient, symmetric around zero.
func CorrelationBand(v float64) string {
	abs := math.Abs(v)
	var strength string
	switch {
	case abs > 0.7:
		strength = "strong"
	case abs > 0.3:
		strength = "moderate"
	default:
		strength = "weak"
	}
	if v < 0 {
		return strength + " negative"
	}
	return strength + " positive"
}

// Correlation renders the correlation view for two or more assets:
// exactly two assets get a single bar for the one pairwise
// coefficient, three or more get the full matrix heat-map. Callers
// handle the zero- and one-asset placeholder cases themselves.
func (r *Renderer) Correlation(data *models.CorrelationData) ([]byte, error) {
	switch n := len(data.Labels); {
	case n < 2:
		return nil, fmt.Errorf("need at least 2 assets, got %d", n)
	case n == 2:
		return r.correlationBar(data)
	default:
		return r.correlationMatrix(data)
	}
}

// correlationBar renders the two-asset view: one bar whose height is
// the single pairwise coefficient, labeled with its qualitative band.
func (r *Renderer) correlationBar(data *models.CorrelationData) ([]byte, error) {
	v := data.Coefficient(data.Labels[0], data.Labels[1])

	graph := chart.BarChart{
		Title:  fmt.Sprintf("%s vs %s: %.2f (%s)", data.Labels[0], data.Labels[1], v, CorrelationBand(v)),
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		BarWidth: r.width / 3,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: -1, Max: 1},
		},
		Bars: []chart.Value{
			{
				Label: fmt.Sprintf("%s / %s", data.Labels[0], data.Labels[1]),
				Value: v,
				Style: chart.Style{FillColor: CorrelationColor(v), StrokeColor: CorrelationColor(v)},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// correlationMatrix paints the full pairwise matrix as a heat-map
// using the raw raster renderer; go-chart has no grid chart type.
func (r *Renderer) correlationMatrix(data *models.CorrelationData) ([]byte, error) {
	render, err := chart.PNG(r.height, r.height)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	render.SetFont(font)

	n := len(data.Labels)
	const margin = 70
	size := r.height
	cell := (size - margin - 10) / n

	white := drawing.Color{R: 255, G: 255, B: 255, A: 255}
	render.SetFillColor(white)
	render.MoveTo(0, 0)
	render.LineTo(size, 0)
	render.LineTo(size, size)
	render.LineTo(0, size)
	render.Close()
	render.Fill()

	textColor := drawing.ColorFromHex("334155")
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			v := data.Coefficient(data.Labels[col], data.Labels[row])
			if row == col {
				v = 1
			}

			x := margin + col*cell
			y := margin + row*cell
			fill := CorrelationColor(v)
			// composite the alpha-scaled cell color over white so the
			// PNG matches the intended opacity
			fill = compositeOverWhite(fill)

			render.SetFillColor(fill)
			render.SetStrokeColor(drawing.Color{R: 226, G: 232, B: 240, A: 255})
			render.SetStrokeWidth(1)
			render.MoveTo(x, y)
			render.LineTo(x+cell, y)
			render.LineTo(x+cell, y+cell)
			render.LineTo(x, y+cell)
			render.Close()
			render.FillStroke()

			render.SetFontColor(textColor)
			render.SetFontSize(9)
			render.Text(fmt.Sprintf("%.2f", v), x+cell/2-12, y+cell/2+4)
		}
	}

	// axis labels
	render.SetFontColor(textColor)
	render.SetFontSize(10)
	for i, label := range data.Labels {
		render.Text(label, margin+i*cell+4, margin-8)
		render.Text(label, 4, margin+i*cell+cell/2+4)
	}

	var buf bytes.Buffer
	if err := render.Save(&buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// compositeOverWhite flattens an alpha-scaled color onto a white
// background.
func compositeOverWhite(c drawing.Color) drawing.Color {
	a := float64(c.A) / 255
	blend := func(ch uint8) uint8 {
		return uint8(math.Round(float64(ch)*a + 255*(1-a)))
	}
	return drawing.Color{R: blend(c.R), G: blend(c.G), B: blend(c.B), A: 255}
}
