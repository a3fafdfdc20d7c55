package analysis

import (
	"math"
	"time"

	"github.com/bobmcallan/folio/internal/models"
)

const dateLayout = "2006-01-02"

// AlignBenchmark maps a benchmark series onto the portfolio's date
// axis. For each portfolio date: an exact benchmark date wins; failing
// that, the nearest benchmark date by absolute time difference (ties
// resolve to the earlier date); failing that, the previously aligned
// value is carried forward; with no prior value the slot stays nil.
func AlignBenchmark(portfolioDates []string, bench *models.BenchmarkSeries) []*float64 {
	aligned := make([]*float64, len(portfolioDates))
	if bench == nil || len(bench.Dates) == 0 || len(bench.Dates) != len(bench.Values) {
		return aligned
	}

	exact := make(map[string]float64, len(bench.Dates))
	benchTimes := make([]time.Time, 0, len(bench.Dates))
	benchValues := make([]float64, 0, len(bench.Values))
	for i, d := range bench.Dates {
		exact[d] = bench.Values[i]
		if t, err := time.Parse(dateLayout, d); err == nil {
			benchTimes = append(benchTimes, t)
			benchValues = append(benchValues, bench.Values[i])
		}
	}

	var prev *float64
	for i, d := range portfolioDates {
		if v, ok := exact[d]; ok {
			value := v
			aligned[i] = &value
			prev = &value
			continue
		}

		if target, err := time.Parse(dateLayout, d); err == nil && len(benchTimes) > 0 {
			best := 0
			bestDiff := math.Abs(target.Sub(benchTimes[0]).Hours())
			for j := 1; j < len(benchTimes); j++ {
				diff := math.Abs(target.Sub(benchTimes[j]).Hours())
				if diff < bestDiff {
					best = j
					bestDiff = diff
				}
			}
			value := benchValues[best]
			aligned[i] = &value
			prev = &value
			continue
		}

		aligned[i] = prev
	}

	return aligned
}

// overlayValues flattens an aligned series for charting. Leading nil
// slots borrow the first known value so the overlay spans the full
// axis; a series with no known values at all returns nil.
func overlayValues(aligned []*float64) []float64 {
	var first *float64
	for _, v := range aligned {
		if v != nil {
			first = v
			break
		}
	}
	if first == nil {
		return nil
	}

	out := make([]float64, len(aligned))
	last := *first
	for i, v := range aligned {
		if v != nil {
			last = *v
		}
		out[i] = last
	}
	return out
}
