// Package calibrate estimates the mean and standard deviation of an empty
// command run through the configured shell, so the benchmark runner can
// subtract a constant shell-startup overhead from subsequent measurements.
package calibrate

import (
	"time"

	"github.com/hyperfine-go/hyperfine/executor"
	"github.com/hyperfine-go/hyperfine/shellcmd"
	"github.com/hyperfine-go/hyperfine/stats"
)

// Overhead is the estimated shell-startup cost subtracted from every
// timing sample taken through that shell.
type Overhead struct {
	Mean   time.Duration
	Stddev time.Duration
}

// DefaultSamples is the number of empty-command runs used to estimate
// overhead.
const DefaultSamples = 50

// Calibrate runs the shell with an empty command Samples times and
// returns the mean and standard deviation of its wall time. It is skipped
// entirely when shell.None is set; callers should check that themselves
// and use the zero Overhead in that case — shell overhead calibration has
// nothing to measure in no-shell mode.
func Calibrate(shell shellcmd.Shell, samples int) (Overhead, error) {
	if shell.None {
		return Overhead{}, nil
	}
	if samples <= 0 {
		samples = DefaultSamples
	}

	wallSeconds := make([]float64, 0, samples)
	for i := 0; i < samples; i++ {
		result, err := executor.Execute(executor.Request{
			Shell:       shell,
			CommandLine: "",
			Input:       shellcmd.InputPolicy{Kind: shellcmd.InputInherit},
			Output:      shellcmd.OutputPolicy{Kind: shellcmd.OutputDiscard},
		})
		if err != nil {
			return Overhead{}, err
		}
		wallSeconds = append(wallSeconds, result.Wall.Seconds())
	}

	mean := stats.Mean(wallSeconds)
	stddev, _ := stats.Stddev(wallSeconds)

	return Overhead{
		Mean:   time.Duration(mean * float64(time.Second)),
		Stddev: time.Duration(stddev * float64(time.Second)),
	}, nil
}
