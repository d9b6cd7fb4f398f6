package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasSpanOutliersFlagsWideSpread(t *testing.T) {
	tun := DefaultOutlierTunables()
	wide := []float64{1, 1, 1, 1, 100}
	require.True(t, HasSpanOutliers(wide, tun))

	tight := []float64{1, 1.01, 0.99, 1.02, 0.98}
	require.False(t, HasSpanOutliers(tight, tun))
}

func TestHasSpanOutliersUndefinedBelowTwoSamples(t *testing.T) {
	require.False(t, HasSpanOutliers([]float64{1}, DefaultOutlierTunables()))
}

func TestDetectFirstRunDeviationRequiresThreeSamples(t *testing.T) {
	require.Equal(t, FirstRunNormal, DetectFirstRunDeviation([]float64{1, 2}, DefaultOutlierTunables()))
}

func TestDetectFirstRunDeviationSlow(t *testing.T) {
	wall := []float64{20, 1, 3}
	require.Equal(t, FirstRunSlow, DetectFirstRunDeviation(wall, DefaultOutlierTunables()))
}

func TestDetectFirstRunDeviationFast(t *testing.T) {
	wall := []float64{0, 5, 7}
	require.Equal(t, FirstRunFast, DetectFirstRunDeviation(wall, DefaultOutlierTunables()))
}

func TestDetectFirstRunDeviationNormal(t *testing.T) {
	wall := []float64{1.01, 1, 0.99, 1.02, 0.98}
	require.Equal(t, FirstRunNormal, DetectFirstRunDeviation(wall, DefaultOutlierTunables()))
}

func TestModifiedZScoresZeroWhenMADIsZero(t *testing.T) {
	scores := ModifiedZScores([]float64{1, 1, 1, 1})
	for _, s := range scores {
		require.Zero(t, s)
	}
}

func TestCountModifiedZScoreOutliersFlagsFarSample(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 1000}
	count := CountModifiedZScoreOutliers(xs, DefaultOutlierTunables())
	require.Equal(t, 1, count)
}

func TestCountModifiedZScoreOutliersFallsBackWhenMADIsZero(t *testing.T) {
	xs := []float64{10, 10, 10, 10, 10, 10, 10, 100}
	require.Equal(t, 1, CountModifiedZScoreOutliers(xs, DefaultOutlierTunables()))

	xs = []float64{10, 10, 10, 10, 10, 10, 10, 100, 100}
	require.Equal(t, 2, CountModifiedZScoreOutliers(xs, DefaultOutlierTunables()))
}
