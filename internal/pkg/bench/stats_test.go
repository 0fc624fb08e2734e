package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSummariseEmpty(t *testing.T) {
	require.Equal(t, LatencySummary{}, Summarise(nil))
	require.Equal(t, LatencySummary{}, Summarise([]time.Duration{}))
}

func TestSummariseSingle(t *testing.T) {
	got := Summarise([]time.Duration{42 * time.Millisecond})
	require.Equal(t, LatencySummary{
		Avg: 42 * time.Millisecond,
		Min: 42 * time.Millisecond,
		Max: 42 * time.Millisecond,
		P95: 42 * time.Millisecond,
	}, got)
}

func TestSummarise(t *testing.T) {
	samples := []time.Duration{
		30 * time.Millisecond,
		10 * time.Millisecond,
		20 * time.Millisecond,
		40 * time.Millisecond,
	}
	got := Summarise(samples)
	require.Equal(t, 25*time.Millisecond, got.Avg)
	require.Equal(t, 10*time.Millisecond, got.Min)
	require.Equal(t, 40*time.Millisecond, got.Max)
	require.Equal(t, 40*time.Millisecond, got.P95)
}

func TestSummariseP95(t *testing.T) {
	// 100 samples of 1ms..100ms: the 95th percentile lands on 95ms.
	samples := make([]time.Duration, 0, 100)
	for i := 100; i >= 1; i-- {
		samples = append(samples, time.Duration(i)*time.Millisecond)
	}
	got := Summarise(samples)
	require.Equal(t, 95*time.Millisecond, got.P95)
	require.Equal(t, time.Millisecond, got.Min)
	require.Equal(t, 100*time.Millisecond, got.Max)
}

func TestSummariseDoesNotMutateInput(t *testing.T) {
	samples := []time.Duration{3, 1, 2}
	Summarise(samples)
	require.Equal(t, []time.Duration{3, 1, 2}, samples)
}
