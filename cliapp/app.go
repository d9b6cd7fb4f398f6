// Package cliapp wires urfave/cli flags onto the config, scheduler and
// export packages.
package cliapp

import (
	"fmt"
	"os"
	"time"

	"github.com/hyperfine-go/hyperfine/config"
	"github.com/hyperfine-go/hyperfine/progress"
	"github.com/hyperfine-go/hyperfine/scheduler"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const AppName = "hyperfine"

// App wraps the urfave/cli.App with the logger it installs in Before.
type App struct {
	logger zerolog.Logger
	cli    *cli.App
}

// New builds the command-line application: a single top-level action
// (there are no subcommands) taking one or more benchmarked commands as
// positional arguments.
func New() *App {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})

	app := &App{logger: logger}
	app.cli = &cli.App{
		Name:      AppName,
		Usage:     "A command-line benchmarking tool",
		ArgsUsage: "<command>...",
		Flags:     app.flags(),
		Before: func(ctx *cli.Context) error {
			if ctx.Bool("verbose") {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			return nil
		},
		Action: app.run,
	}
	return app
}

// Run parses args and executes the application, returning the error that
// should determine the process exit code.
func (a *App) Run(args []string) error {
	return a.cli.Run(args)
}

// SetVersion sets the version string reported by --version.
func (a *App) SetVersion(version string) {
	a.cli.Version = version
}

func (a *App) flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "verbose", Usage: "enable verbose (debug) logging"},

		&cli.IntFlag{Name: "warmup", Aliases: []string{"w"}, Usage: "number of warmup runs to perform before the actual benchmark"},
		&cli.IntFlag{Name: "min-runs", Aliases: []string{"m"}, Usage: "minimum number of runs"},
		&cli.IntFlag{Name: "max-runs", Aliases: []string{"M"}, Usage: "maximum number of runs"},
		&cli.IntFlag{Name: "runs", Aliases: []string{"r"}, Usage: "perform exactly this many runs"},
		&cli.Float64Flag{Name: "min-benchmarking-time", Usage: "minimum total wall-clock time budget per benchmark, in seconds", Value: 3.0},

		&cli.StringSliceFlag{Name: "prepare", Aliases: []string{"p"}, Usage: "command to run before each timing run"},
		&cli.StringSliceFlag{Name: "conclude", Usage: "command to run after each timing run"},
		&cli.StringFlag{Name: "setup", Aliases: []string{"s"}, Usage: "command to run once before all benchmarks"},
		&cli.StringFlag{Name: "cleanup", Aliases: []string{"c"}, Usage: "command to run once after all benchmarks"},

		&cli.StringSliceFlag{Name: "parameter-scan", Aliases: []string{"P"}, Usage: "given three times (name, min, max): perform a parameter scan benchmark"},
		&cli.StringFlag{Name: "parameter-step-size", Aliases: []string{"D"}, Usage: "step size for --parameter-scan"},
		&cli.StringSliceFlag{Name: "parameter-list", Aliases: []string{"L"}, Usage: "NAME=VALUES: perform a parameter list benchmark, comma-separated values"},

		&cli.StringFlag{Name: "shell", Aliases: []string{"S"}, Usage: "shell to use for executing benchmarked commands"},
		&cli.BoolFlag{Name: "shell-none", Aliases: []string{"N"}, Usage: "disable the intermediate shell entirely"},

		&cli.StringSliceFlag{Name: "input", Usage: "null or a file path: redirect stdin for benchmarked commands"},
		&cli.StringSliceFlag{Name: "output", Usage: "null, pipe, inherit, or a file path: redirect stdout/stderr for benchmarked commands"},

		&cli.StringFlag{Name: "time-unit", Aliases: []string{"u"}, Usage: "second, millisecond, or microsecond"},
		&cli.BoolFlag{Name: "ignore-failure", Aliases: []string{"i"}, Usage: "ignore non-zero exit codes of benchmarked commands"},
		&cli.StringFlag{Name: "style", Usage: "auto, basic, full, color, or none", Value: "auto"},
		&cli.StringFlag{Name: "sort", Usage: "auto, mean-time, or command"},
		&cli.StringFlag{Name: "reference", Usage: "display name of the command to treat as the speed comparison reference"},
		&cli.StringSliceFlag{Name: "command-name", Usage: "override the display name of a benchmarked command"},

		&cli.StringFlag{Name: "export-csv", Usage: "write results as CSV to PATH"},
		&cli.StringFlag{Name: "export-json", Usage: "write results as JSON to PATH"},
		&cli.StringFlag{Name: "export-markdown", Usage: "write results as a Markdown table to PATH"},
		&cli.StringFlag{Name: "export-asciidoc", Usage: "write results as an AsciiDoc table to PATH"},
		&cli.StringFlag{Name: "export-orgmode", Usage: "write results as an Org mode table to PATH"},
		&cli.StringFlag{Name: "export-html", Usage: "write results as an HTML report to PATH"},
	}
}

func (a *App) run(ctx *cli.Context) error {
	raw, err := rawFromContext(ctx)
	if err != nil {
		return err
	}

	cfg, err := config.Validate(raw)
	if err != nil {
		a.logger.Error().Err(err).Msg("invalid configuration")
		return cli.Exit(err.Error(), 1)
	}

	sink := progress.NewConsoleSink(os.Stderr, os.Stderr.Fd(), cfg.Style, cfg.Unit)

	results, runErr := scheduler.Run(ctx.Context, cfg, a.logger, sink)

	progress.WriteSummary(os.Stdout, results, cfg.Style, cfg.Unit, cfg.SortOrder, cfg.Reference)

	if err := scheduler.FlushFinal(cfg, results, os.Stdout); err != nil {
		a.logger.Error().Err(err).Msg("failed to write export")
		if runErr == nil {
			runErr = err
		}
	}

	if runErr != nil {
		return cli.Exit(fmt.Sprintf("hyperfine: %s", runErr), 1)
	}
	return nil
}
