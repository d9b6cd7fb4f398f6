// Package bench holds the core benchmark domain model (jobs, timing
// samples, results) and the Runner that drives one job through its
// lifecycle: warmup, prepare, timing, conclude.
package bench

import (
	"time"

	"github.com/hyperfine-go/hyperfine/calibrate"
	"github.com/hyperfine-go/hyperfine/shellcmd"
	"github.com/hyperfine-go/hyperfine/stats"
	"github.com/rs/zerolog"
)

// Job is one expanded benchmark: a concrete command line bound to a set of
// parameter substitutions, with its own optional prepare/conclude hooks
// and stream policy.
type Job struct {
	Index          int
	DisplayName    string
	CommandLine    string // shell-mode command, after substitution
	Argv           []string
	Shell          shellcmd.Shell
	Parameters     map[string]string
	ParameterOrder []string
	Prepare        string
	Conclude       string
	Input          shellcmd.InputPolicy
	Output         shellcmd.OutputPolicy
}

// ExitStatus records how one sample's child process terminated.
type ExitStatus struct {
	Code     int
	Signaled bool
	Signal   string
}

// BenchmarkResult is the frozen, format-agnostic outcome of running one
// Job, ready to be handed to any exporter.
type BenchmarkResult struct {
	Name           string
	CommandLine    string
	Parameters     map[string]string
	ParameterOrder []string

	WallTimes    []float64
	UserTimes    []float64
	SystemTimes  []float64
	ExitStatuses []ExitStatus

	BelowOverheadCount int

	Stats stats.Descriptive

	Warnings []Warning

	Failed       bool
	FailureError error
}

// Comparable adapts a result to stats.Comparable for relative-speed
// comparisons.
func (r *BenchmarkResult) Comparable() stats.Comparable {
	return stats.Comparable{Name: r.Name, Mean: r.Stats.Mean, Stddev: r.Stats.Stddev}
}

// RunOptions configures the steady-state behavior of a single Runner
// invocation.
type RunOptions struct {
	Warmup                int
	MinRuns               int
	MaxRuns               int // 0 = unbounded
	FixedRuns             int // 0 = not fixed; overrides the estimate-based target
	MinBenchmarkingTime   time.Duration
	IgnoreFailure         bool
	Overhead              calibrate.Overhead
	OutlierTunables       stats.OutlierTunables
	WarmupCountConfigured bool
	PrepareConfigured     bool
	Logger                zerolog.Logger
}

// ProgressEvent reports the state of one iteration of one job.
type ProgressEvent struct {
	JobIndex        int
	JobName         string
	Iteration       int
	TotalIterations int
	RunningMean     time.Duration
	RunningStddev   time.Duration
	ETA             time.Duration
}

// ProgressSink receives progress events in strict iteration order within a
// job, and strict job order across jobs.
type ProgressSink interface {
	Event(ProgressEvent)
}

// NopProgressSink discards all events.
type NopProgressSink struct{}

func (NopProgressSink) Event(ProgressEvent) {}
