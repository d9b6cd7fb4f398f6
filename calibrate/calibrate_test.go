package calibrate

import (
	"testing"

	"github.com/hyperfine-go/hyperfine/shellcmd"
	"github.com/stretchr/testify/require"
)

func TestCalibrateSkippedInNoShellMode(t *testing.T) {
	overhead, err := Calibrate(shellcmd.NoShell(), DefaultSamples)
	require.NoError(t, err)
	require.Zero(t, overhead.Mean)
	require.Zero(t, overhead.Stddev)
}

func TestCalibrateEstimatesNonNegativeOverhead(t *testing.T) {
	overhead, err := Calibrate(shellcmd.Default(), 5)
	require.NoError(t, err)
	require.GreaterOrEqual(t, overhead.Mean.Seconds(), 0.0)
	require.GreaterOrEqual(t, overhead.Stddev.Seconds(), 0.0)
}

func TestCalibrateDefaultsSamplesWhenNonPositive(t *testing.T) {
	overhead, err := Calibrate(shellcmd.Default(), 0)
	require.NoError(t, err)
	require.GreaterOrEqual(t, overhead.Mean.Seconds(), 0.0)
}
