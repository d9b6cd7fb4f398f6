// Package config validates a raw set of CLI-derived flag values into a
// Config the scheduler can run directly, independent of urfave/cli itself
// so it stays unit-testable without a cli.Context in the loop.
package config

import (
	"time"

	"github.com/hyperfine-go/hyperfine/export"
	"github.com/hyperfine-go/hyperfine/parameter"
	"github.com/hyperfine-go/hyperfine/progress"
	"github.com/hyperfine-go/hyperfine/shellcmd"
	"github.com/hyperfine-go/hyperfine/stats"
	"github.com/hyperfine-go/hyperfine/units"
)

// ScanArg is a raw --parameter-scan NAME MIN MAX plus its paired
// --parameter-step-size, before validation.
type ScanArg struct {
	Name string
	Min  string
	Max  string
	Step string
}

// ListArg is a raw --parameter-list NAME VALUES, before validation.
type ListArg struct {
	Name   string
	Values string
}

// Raw holds every CLI flag value exactly as parsed, unvalidated. The cliapp
// package's job is to fill this in from urfave/cli.Context; Validate does
// everything else.
type Raw struct {
	Commands     []string
	CommandNames []string

	Warmup              int
	MinRuns             int
	MaxRuns             int
	Runs                int
	MinBenchmarkingTime float64

	Prepare  []string
	Conclude []string
	Setup    string
	Cleanup  string

	ParameterScan ScanArg
	ParameterList []ListArg

	Shell     string
	ShellNone bool

	Input  []string
	Output []string

	TimeUnit      string
	IgnoreFailure bool
	Style         string
	Sort          string
	Reference     string

	ExportCSV      string
	ExportJSON     string
	ExportMarkdown string
	ExportAsciiDoc string
	ExportOrgMode  string
	ExportHTML     string
}

// ExportTarget pairs a path (possibly "-" for stdout) with the exporter
// that renders it.
type ExportTarget struct {
	Path     string
	Exporter export.Exporter
}

// Config is the fully validated, ready-to-run configuration.
type Config struct {
	Commands     []parameter.CommandSpec
	Sources      []parameter.Source
	CommandNames []string
	Shell        shellcmd.Shell

	Warmup               int
	MinRuns              int
	MaxRuns              int
	FixedRuns            int
	MinBenchmarkingTime  time.Duration
	WarmupConfigured     bool
	PrepareConfigured    bool

	Setup   string
	Cleanup string

	Unit          units.Unit
	IgnoreFailure bool
	Style         progress.Style
	SortOrder     stats.SortOrder
	Reference     string

	Exports []ExportTarget
}
