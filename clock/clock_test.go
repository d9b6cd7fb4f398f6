package clock

import (
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestElapsedIsNonNegativeAndMonotonic(t *testing.T) {
	start := Now()
	time.Sleep(time.Millisecond)
	end := Now()

	require.Greater(t, Elapsed(start, end), time.Duration(0))
}

func TestCPUTimesNilProcessState(t *testing.T) {
	user, system := CPUTimes(nil)
	require.Zero(t, user)
	require.Zero(t, system)
}

func TestCPUTimesFromRealChild(t *testing.T) {
	cmd := exec.Command("true")
	require.NoError(t, cmd.Run())

	user, system := CPUTimes(cmd.ProcessState)
	require.GreaterOrEqual(t, user, time.Duration(0))
	require.GreaterOrEqual(t, system, time.Duration(0))
}
