package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/bobmcallan/folio/internal/models"
)

// Allocation renders the asset allocation doughnut.
func (r *Renderer) Allocation(data *models.AllocationData) ([]byte, error) {
	if len(data.Assets) == 0 || len(data.Assets) != len(data.Allocations) {
		return nil, fmt.Errorf("malformed allocation data: %d assets, %d allocations", len(data.Assets), len(data.Allocations))
	}

	values := make([]chart.Value, len(data.Assets))
	for i, asset := range data.Assets {
		values[i] = chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", asset, data.Allocations[i]),
			Value: data.Allocations[i],
			Style: chart.Style{FillColor: r.palette.Color(i)},
		}
	}

	graph := chart.DonutChart{
		Title:  "Asset Allocation",
		Width:  r.height, // square canvas
		Height: r.height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
