package bench

import (
	"math"
	"sort"
	"time"
)

// LatencySummary aggregates a set of latency samples.
type LatencySummary struct {
	Avg time.Duration
	Min time.Duration
	Max time.Duration
	P95 time.Duration
}

// Summarise computes the summary of the given samples. An empty sample set
// yields the zero summary.
func Summarise(samples []time.Duration) LatencySummary {
	if len(samples) == 0 {
		return LatencySummary{}
	}
	sorted := append([]time.Duration(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, s := range sorted {
		sum += s
	}
	idx := int(math.Ceil(0.95*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	return LatencySummary{
		Avg: sum / time.Duration(len(sorted)),
		Min: sorted[0],
		Max: sorted[len(sorted)-1],
		P95: sorted[idx],
	}
}
