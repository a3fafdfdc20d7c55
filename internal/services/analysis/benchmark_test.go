package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/folio/internal/models"
)

func TestAlignBenchmark_NearestDateFallback(t *testing.T) {
	// the middle date has no exact match; the two neighbors are
	// equidistant and the earlier one wins
	portfolioDates := []string{"2026-01-05", "2026-01-06", "2026-01-07"}
	bench := &models.BenchmarkSeries{
		Name:   "MSCI World",
		Dates:  []string{"2026-01-05", "2026-01-07"},
		Values: []float64{10, 12},
	}

	aligned := AlignBenchmark(portfolioDates, bench)

	require.Len(t, aligned, 3)
	require.NotNil(t, aligned[0])
	require.NotNil(t, aligned[1])
	require.NotNil(t, aligned[2])
	assert.Equal(t, 10.0, *aligned[0])
	assert.Equal(t, 10.0, *aligned[1])
	assert.Equal(t, 12.0, *aligned[2])
}

func TestAlignBenchmark_ExactMatchesWin(t *testing.T) {
	portfolioDates := []string{"2026-02-02", "2026-02-03"}
	bench := &models.BenchmarkSeries{
		Dates:  []string{"2026-02-02", "2026-02-03"},
		Values: []float64{100, 101.5},
	}

	aligned := AlignBenchmark(portfolioDates, bench)

	assert.Equal(t, 100.0, *aligned[0])
	assert.Equal(t, 101.5, *aligned[1])
}

func TestAlignBenchmark_EmptySeries(t *testing.T) {
	aligned := AlignBenchmark([]string{"2026-01-05"}, &models.BenchmarkSeries{})
	require.Len(t, aligned, 1)
	assert.Nil(t, aligned[0])

	aligned = AlignBenchmark([]string{"2026-01-05"}, nil)
	assert.Nil(t, aligned[0])
}

func TestAlignBenchmark_UnparseableDateCarriesPrevious(t *testing.T) {
	portfolioDates := []string{"2026-01-05", "not-a-date", "2026-01-08"}
	bench := &models.BenchmarkSeries{
		Dates:  []string{"2026-01-05", "2026-01-08"},
		Values: []float64{10, 12},
	}

	aligned := AlignBenchmark(portfolioDates, bench)

	assert.Equal(t, 10.0, *aligned[0])
	require.NotNil(t, aligned[1])
	assert.Equal(t, 10.0, *aligned[1])
	assert.Equal(t, 12.0, *aligned[2])
}

func TestAlignBenchmark_LeadingUnparseableIsNil(t *testing.T) {
	aligned := AlignBenchmark([]string{"junk", "2026-01-08"}, &models.BenchmarkSeries{
		Dates:  []string{"2026-01-08"},
		Values: []float64{12},
	})

	assert.Nil(t, aligned[0])
	require.NotNil(t, aligned[1])
	assert.Equal(t, 12.0, *aligned[1])
}

func TestOverlayValues(t *testing.T) {
	ten, twelve := 10.0, 12.0

	values := overlayValues([]*float64{nil, &ten, nil, &twelve})
	assert.Equal(t, []float64{10, 10, 10, 12}, values)

	assert.Nil(t, overlayValues([]*float64{nil, nil}))
	assert.Nil(t, overlayValues(nil))
}
