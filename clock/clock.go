// Package clock is the monotonic wall-clock and per-child CPU time source
// used by the executor. It exists as its own leaf component so the rest of
// the engine never calls time.Now or inspects an *os.ProcessState directly.
package clock

import (
	"os"
	"time"
)

// Instant is a monotonic point in time, suitable for subtraction to obtain
// an elapsed duration. time.Time values produced by time.Now() already
// carry a monotonic reading in Go, so this is a thin, documenting alias.
type Instant = time.Time

// Now returns the current monotonic instant.
func Now() Instant {
	return time.Now()
}

// Elapsed returns the duration between two instants captured by Now.
func Elapsed(start, end Instant) time.Duration {
	return end.Sub(start)
}

// CPUTimes extracts the accumulated user and system CPU time of a reaped
// child process. A child that forks grandchildren contributes only its own
// CPU time; this is an OS default inherited from ProcessState.UserTime and
// ProcessState.SystemTime, which read the child's own rusage, not its
// descendants'.
func CPUTimes(ps *os.ProcessState) (user, system time.Duration) {
	if ps == nil {
		return 0, 0
	}
	return ps.UserTime(), ps.SystemTime()
}
