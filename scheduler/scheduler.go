// Package scheduler orchestrates a full benchmarking run: global setup,
// running every expanded job through the bench.Runner in order, writing
// incremental exports after each completed benchmark, and global cleanup.
package scheduler

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/hyperfine-go/hyperfine/bench"
	"github.com/hyperfine-go/hyperfine/calibrate"
	"github.com/hyperfine-go/hyperfine/config"
	"github.com/hyperfine-go/hyperfine/executor"
	"github.com/hyperfine-go/hyperfine/parameter"
	"github.com/hyperfine-go/hyperfine/shellcmd"
	"github.com/rs/zerolog"
)

// ErrorKind classifies a fatal scheduler-level failure, as opposed to a
// per-job bench.Error.
type ErrorKind int

const (
	SetupFailed ErrorKind = iota
	ExportFailed
	InterruptRequested
)

// Error is returned by Run for a whole-run failure.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case SetupFailed:
		return fmt.Sprintf("setup command failed: %s", e.Err)
	case InterruptRequested:
		return "interrupted, stopped after the current sample"
	default:
		return fmt.Sprintf("export failed: %s", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Run executes cfg end to end: setup, every expanded job in order (writing
// incremental exports after each), then cleanup (which always runs, even
// after a setup failure or an interrupt). It returns the job-order results
// collected so far and the first fatal error, if any.
//
// The returned results are always non-nil and in job order, even when an
// error aborts the run early, so a caller can still write a partial
// export on interrupt.
func Run(ctx context.Context, cfg *config.Config, logger zerolog.Logger, sink bench.ProgressSink) ([]bench.BenchmarkResult, error) {
	cleanupAlways := func() {
		if cfg.Cleanup == "" {
			return
		}
		if _, err := executor.Execute(executor.Request{
			Shell:       cfg.Shell,
			CommandLine: cfg.Cleanup,
			Input:       shellcmd.InputPolicy{Kind: shellcmd.InputNull},
			Output:      shellcmd.OutputPolicy{Kind: shellcmd.OutputDiscard},
		}); err != nil {
			logger.Warn().Err(err).Msg("cleanup command failed")
		}
	}
	defer cleanupAlways()

	if cfg.Setup != "" {
		if _, err := executor.Execute(executor.Request{
			Shell:       cfg.Shell,
			CommandLine: cfg.Setup,
			Input:       shellcmd.InputPolicy{Kind: shellcmd.InputNull},
			Output:      shellcmd.OutputPolicy{Kind: shellcmd.OutputDiscard},
		}); err != nil {
			return []bench.BenchmarkResult{}, &Error{Kind: SetupFailed, Err: err}
		}
	}

	var overhead calibrate.Overhead
	if !cfg.Shell.None {
		var err error
		overhead, err = calibrate.Calibrate(cfg.Shell, calibrate.DefaultSamples)
		if err != nil {
			logger.Warn().Err(err).Msg("shell calibration failed, proceeding without overhead correction")
		}
	}

	jobs := parameter.BuildJobs(cfg.Commands, cfg.Sources, cfg.CommandNames, cfg.Shell)

	interrupted := installInterruptHandler(ctx, logger)
	defer interrupted.stop()

	results := make([]bench.BenchmarkResult, 0, len(jobs))
	var runErr error

	for _, job := range jobs {
		if interrupted.requested() {
			break
		}

		runOpts := bench.RunOptions{
			Warmup:                cfg.Warmup,
			MinRuns:               cfg.MinRuns,
			MaxRuns:               cfg.MaxRuns,
			FixedRuns:             cfg.FixedRuns,
			MinBenchmarkingTime:   cfg.MinBenchmarkingTime,
			IgnoreFailure:         cfg.IgnoreFailure,
			Overhead:              overhead,
			WarmupCountConfigured: cfg.WarmupConfigured,
			PrepareConfigured:     cfg.PrepareConfigured,
			Logger:                logger,
		}

		result, err := bench.Run(job, runOpts, sink, interrupted.requested)
		if err != nil {
			result.Failed = true
			result.FailureError = err
			if runErr == nil {
				runErr = err
			}
			logger.Error().Err(err).Str("benchmark", job.DisplayName).Msg("benchmark aborted")
		}
		results = append(results, *result)

		if err := writeIncremental(cfg, results); err != nil {
			return results, &Error{Kind: ExportFailed, Err: err}
		}
	}

	if interrupted.requested() {
		return results, &Error{Kind: InterruptRequested, Err: context.Canceled}
	}

	return results, runErr
}

// writeIncremental rewrites every configured export target after each
// completed benchmark, so a partial run leaves usable output.
func writeIncremental(cfg *config.Config, results []bench.BenchmarkResult) error {
	for _, target := range cfg.Exports {
		meta := exportMetadata(cfg)
		data, err := target.Exporter.Write(results, meta)
		if err != nil {
			return err
		}
		if err := writeTarget(target.Path, data); err != nil {
			return err
		}
	}
	return nil
}

func writeTarget(path string, data []byte) error {
	if path == "-" {
		// Suppressed: intermediate writes to stdout would interleave
		// across the incremental rewrite cycle.
		return nil
	}
	return os.WriteFile(path, data, 0o644)
}

// FlushFinal writes every export target's final content to its real
// destination, including stdout for path "-".
func FlushFinal(cfg *config.Config, results []bench.BenchmarkResult, stdout io.Writer) error {
	for _, target := range cfg.Exports {
		meta := exportMetadata(cfg)
		data, err := target.Exporter.Write(results, meta)
		if err != nil {
			return &Error{Kind: ExportFailed, Err: err}
		}
		if target.Path == "-" {
			if _, err := stdout.Write(data); err != nil {
				return &Error{Kind: ExportFailed, Err: err}
			}
			continue
		}
		if err := os.WriteFile(target.Path, data, 0o644); err != nil {
			return &Error{Kind: ExportFailed, Err: err}
		}
	}
	return nil
}

type interruptHandler struct {
	flag   atomic.Bool
	sigCh  chan os.Signal
	doneCh chan struct{}
}

// installInterruptHandler watches for SIGINT and sets a flag
// consulted between iterations, so the current child always finishes
// before the run stops.
func installInterruptHandler(ctx context.Context, logger zerolog.Logger) *interruptHandler {
	h := &interruptHandler{
		sigCh:  make(chan os.Signal, 1),
		doneCh: make(chan struct{}),
	}
	signal.Notify(h.sigCh, os.Interrupt)

	go func() {
		select {
		case <-h.sigCh:
			logger.Info().Msg("interrupt received, finishing current sample then stopping")
			h.flag.Store(true)
		case <-ctx.Done():
		case <-h.doneCh:
		}
	}()

	return h
}

func (h *interruptHandler) requested() bool {
	return h.flag.Load()
}

func (h *interruptHandler) stop() {
	signal.Stop(h.sigCh)
	close(h.doneCh)
}
