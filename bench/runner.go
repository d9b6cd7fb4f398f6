package bench

import (
	"crypto/rand"
	"math"
	"strconv"
	"time"

	"github.com/hyperfine-go/hyperfine/executor"
	"github.com/hyperfine-go/hyperfine/shellcmd"
	"github.com/hyperfine-go/hyperfine/stats"
)

// state is the Runner's internal lifecycle state:
// Idle -> Warming -> Estimating -> Measuring -> Finalizing -> Done | Failed.
// Transitions are logged at Debug so a --verbose run shows exactly where a
// job spent its time.
type state int

const (
	stateWarming state = iota
	stateEstimating
	stateMeasuring
	stateFinalizing
	stateDone
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateWarming:
		return "warming"
	case stateEstimating:
		return "estimating"
	case stateMeasuring:
		return "measuring"
	case stateFinalizing:
		return "finalizing"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// minRandomOffset/maxRandomOffset bound the length of the padding string
// written into HYPERFINE_RANDOMIZED_ENVIRONMENT_OFFSET, which exists only
// to perturb memory layout between iterations.
const (
	minRandomOffset = 0
	maxRandomOffset = 4096
)

// fastExecutionThreshold: below this, shell-calibration noise dominates
// the measurement and a FastExecutionTime warning is advisable.
const fastExecutionThreshold = 0.005

// CancelFunc reports whether the run has been asked to stop early (e.g. by
// an interrupt signal). The Runner consults it between iterations only and
// never kills a running child.
type CancelFunc func() bool

// Run drives job through its full lifecycle and returns the frozen result.
// A non-nil error means the job aborted (PrepareFailed, ConcludeFailed, or
// — absent --ignore-failure — a non-zero exit/signal); the caller should
// still inspect the partial result, which carries whatever samples were
// collected before the abort.
func Run(job Job, opts RunOptions, sink ProgressSink, cancel CancelFunc) (*BenchmarkResult, error) {
	if sink == nil {
		sink = NopProgressSink{}
	}
	if cancel == nil {
		cancel = func() bool { return false }
	}
	logger := opts.Logger.With().Str("benchmark", job.DisplayName).Logger()

	result := &BenchmarkResult{
		Name:           job.DisplayName,
		CommandLine:    job.CommandLine,
		Parameters:     job.Parameters,
		ParameterOrder: job.ParameterOrder,
	}
	if job.Shell.None {
		result.CommandLine = shellcmd.QuoteArgv(job.Argv)
	}

	transition := func(s state) {
		logger.Debug().Str("state", s.String()).Msg("benchmark state transition")
	}

	transition(stateWarming)
	for i := 0; i < opts.Warmup; i++ {
		if err := runPrepare(job); err != nil {
			transition(stateFailed)
			return result, &Error{
				Kind: PrepareFailed, JobName: job.DisplayName, Parameters: job.Parameters,
				Iteration: i + 1, Err: err,
			}
		}
		if _, err := runMeasured(job, nil); err != nil {
			if benchErr, ok := classifyMeasureError(job, i+1, err); ok && !opts.IgnoreFailure {
				transition(stateFailed)
				return result, benchErr
			}
		}
	}

	transition(stateEstimating)

	targetRuns := opts.FixedRuns
	iteration := 0
	enteredMeasuring := false

	for {
		iteration++
		if targetRuns > 0 && iteration > targetRuns {
			break
		}
		if iteration > 1 && cancel() {
			logger.Info().Msg("interrupt requested, stopping after current sample")
			break
		}
		if iteration == 2 && !enteredMeasuring {
			transition(stateMeasuring)
			enteredMeasuring = true
		}

		env := iterationEnv(iteration)

		if err := runPrepare(job); err != nil {
			transition(stateFailed)
			return result, &Error{
				Kind: PrepareFailed, JobName: job.DisplayName, Parameters: job.Parameters,
				Iteration: iteration, Err: err,
			}
		}

		res, execErr := runMeasured(job, env)
		aborted := false
		if execErr != nil {
			if benchErr, ok := classifyMeasureError(job, iteration, execErr); ok {
				if !opts.IgnoreFailure {
					transition(stateFailed)
					return result, benchErr
				}
				result.Warnings = append(result.Warnings, Warning{Kind: NonZeroExitCodeIgnored})
			} else {
				aborted = true
			}
		}

		if !aborted {
			wall := res.Wall.Seconds()
			adjusted := wall - opts.Overhead.Mean.Seconds()
			if adjusted < 0 {
				adjusted = 0
				result.BelowOverheadCount++
			}

			result.WallTimes = append(result.WallTimes, adjusted)
			result.UserTimes = append(result.UserTimes, res.User.Seconds())
			result.SystemTimes = append(result.SystemTimes, res.System.Seconds())
			result.ExitStatuses = append(result.ExitStatuses, exitStatusOf(execErr))
		}

		if err := runConclude(job); err != nil {
			transition(stateFailed)
			return result, &Error{
				Kind: ConcludeFailed, JobName: job.DisplayName, Parameters: job.Parameters,
				Iteration: iteration, Err: err,
			}
		}

		if iteration == 1 && targetRuns == 0 {
			estimate := result.WallTimes[0]
			targetRuns = computeTargetRuns(estimate, opts)
			logger.Debug().Int("target_runs", targetRuns).Float64("estimate_seconds", estimate).Msg("computed target run count")
		}

		sink.Event(progressEventFor(job, iteration, targetRuns, result.WallTimes))

		if targetRuns > 0 && iteration >= targetRuns {
			break
		}
	}

	transition(stateFinalizing)
	finalize(result, opts)
	transition(stateDone)

	return result, nil
}

func computeTargetRuns(estimateSeconds float64, opts RunOptions) int {
	minTime := opts.MinBenchmarkingTime.Seconds()
	if minTime <= 0 {
		minTime = 3.0
	}
	minRuns := opts.MinRuns
	if minRuns <= 0 {
		minRuns = 10
	}

	target := minRuns
	if estimateSeconds > 0 {
		target = int(math.Ceil(minTime / estimateSeconds))
	}
	if target < minRuns {
		target = minRuns
	}
	if opts.MaxRuns > 0 && target > opts.MaxRuns {
		target = opts.MaxRuns
	}
	return target
}

func iterationEnv(iteration int) map[string]string {
	offset, err := randomOffset()
	if err != nil {
		offset = ""
	}
	return map[string]string{
		"HYPERFINE_ITERATION":                     strconv.Itoa(iteration),
		"HYPERFINE_RANDOMIZED_ENVIRONMENT_OFFSET": offset,
	}
}

func randomOffset() (string, error) {
	lengthBytes := make([]byte, 2)
	if _, err := rand.Read(lengthBytes); err != nil {
		return "", err
	}
	length := minRandomOffset + (int(lengthBytes[0])<<8|int(lengthBytes[1]))%(maxRandomOffset-minRandomOffset+1)
	if length == 0 {
		return "", nil
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = 'a' + buf[i]%26
	}
	return string(buf), nil
}

func runPrepare(job Job) error {
	if job.Prepare == "" {
		return nil
	}
	_, err := executor.Execute(executor.Request{
		Shell:       job.Shell,
		CommandLine: job.Prepare,
		Input:       shellcmd.InputPolicy{Kind: shellcmd.InputNull},
		Output:      shellcmd.OutputPolicy{Kind: shellcmd.OutputDiscard},
	})
	return err
}

func runConclude(job Job) error {
	if job.Conclude == "" {
		return nil
	}
	_, err := executor.Execute(executor.Request{
		Shell:       job.Shell,
		CommandLine: job.Conclude,
		Input:       shellcmd.InputPolicy{Kind: shellcmd.InputNull},
		Output:      shellcmd.OutputPolicy{Kind: shellcmd.OutputDiscard},
	})
	return err
}

func runMeasured(job Job, env map[string]string) (executor.Result, error) {
	req := executor.Request{
		Shell:       job.Shell,
		CommandLine: job.CommandLine,
		Argv:        job.Argv,
		Input:       job.Input,
		Output:      job.Output,
		EnvExtra:    env,
	}
	return executor.Execute(req)
}

// classifyMeasureError distinguishes an executor-level failure (the
// benchmarked command itself misbehaved: spawn/non-zero-exit/signal) from
// anything else. ok is false for errors that are not classifiable this
// way (which should not normally occur for the measured command).
func classifyMeasureError(job Job, iteration int, err error) (*Error, bool) {
	execErr, ok := err.(*executor.Error)
	if !ok {
		return nil, false
	}
	var kind ErrorKind
	switch execErr.Kind {
	case executor.SpawnFailed:
		kind = SpawnFailed
	case executor.SignalTerminated:
		kind = SignalTerminated
	default:
		kind = NonZeroExit
	}
	return &Error{
		Kind: kind, JobName: job.DisplayName, Parameters: job.Parameters,
		Iteration: iteration, ExitCode: execErr.ExitCode, Signal: execErr.Signal, Err: execErr.Err,
	}, true
}

func exitStatusOf(err error) ExitStatus {
	if err == nil {
		return ExitStatus{Code: 0}
	}
	if execErr, ok := err.(*executor.Error); ok {
		if execErr.Kind == executor.SignalTerminated {
			return ExitStatus{Signaled: true, Signal: execErr.Signal}
		}
		return ExitStatus{Code: execErr.ExitCode}
	}
	return ExitStatus{Code: -1}
}

func progressEventFor(job Job, iteration, targetRuns int, wall []float64) ProgressEvent {
	mean := stats.Mean(wall)
	sd, _ := stats.Stddev(wall)
	var eta time.Duration
	if targetRuns > iteration {
		eta = time.Duration(float64(targetRuns-iteration) * mean * float64(time.Second))
	}
	return ProgressEvent{
		JobIndex:        job.Index,
		JobName:         job.DisplayName,
		Iteration:       iteration,
		TotalIterations: targetRuns,
		RunningMean:     time.Duration(mean * float64(time.Second)),
		RunningStddev:   time.Duration(sd * float64(time.Second)),
		ETA:             eta,
	}
}

func finalize(result *BenchmarkResult, opts RunOptions) {
	result.Stats = stats.Describe(result.WallTimes, result.UserTimes, result.SystemTimes)

	if len(result.WallTimes) == 0 {
		return
	}

	t := opts.OutlierTunables
	if t == (stats.OutlierTunables{}) {
		t = stats.DefaultOutlierTunables()
	}

	if mean := stats.Mean(result.WallTimes); mean > 0 && mean < fastExecutionThreshold {
		result.Warnings = append(result.Warnings, Warning{Kind: FastExecutionTime})
	}

	if result.BelowOverheadCount > 0 {
		result.Warnings = append(result.Warnings, Warning{Kind: BelowShellOverhead, Count: result.BelowOverheadCount})
	}

	switch stats.DetectFirstRunDeviation(result.WallTimes, t) {
	case stats.FirstRunSlow:
		result.Warnings = append(result.Warnings, Warning{
			Kind: SlowInitialRun, WarmupInUse: opts.WarmupCountConfigured, PrepareInUse: opts.PrepareConfigured,
			FirstRunTime: result.WallTimes[0],
		})
	case stats.FirstRunFast:
		result.Warnings = append(result.Warnings, Warning{
			Kind: FastInitialRun, WarmupInUse: opts.WarmupCountConfigured, PrepareInUse: opts.PrepareConfigured,
			FirstRunTime: result.WallTimes[0],
		})
	}

	if stats.HasSpanOutliers(result.WallTimes, t) {
		result.Warnings = append(result.Warnings, Warning{
			Kind: OutliersDetected, WarmupInUse: opts.WarmupCountConfigured, PrepareInUse: opts.PrepareConfigured,
		})
	}
}
