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

// Validate turns a Raw set of CLI flag values into a Config, or a
// *config.Error naming the first violated invariant.
func Validate(raw Raw) (*Config, error) {
	if len(raw.Commands) == 0 {
		return nil, newError(NoCommands, "at least one command must be given")
	}

	sources, err := buildSources(raw)
	if err != nil {
		return nil, err
	}

	n := len(raw.Commands)
	total := n * parameter.Count(sources)

	if len(raw.CommandNames) > 1 && len(raw.CommandNames) != total {
		return nil, newError(InvalidCommandNameCount,
			"--command-name count is %d: expected 1 or %d", len(raw.CommandNames), total)
	}

	if raw.Warmup < 0 {
		return nil, newError(NegativeRuns, "--warmup must not be negative")
	}
	if raw.MinRuns < 0 || raw.MaxRuns < 0 || raw.Runs < 0 {
		return nil, newError(NegativeRuns, "run counts must not be negative")
	}
	if raw.MinRuns > 0 && raw.MaxRuns > 0 && raw.MaxRuns < raw.MinRuns {
		return nil, newError(InvalidRunBounds, "--max-runs (%d) is less than --min-runs (%d)", raw.MaxRuns, raw.MinRuns)
	}

	prepare, err := broadcast(raw.Prepare, n, "--prepare")
	if err != nil {
		return nil, err
	}
	conclude, err := broadcast(raw.Conclude, n, "--conclude")
	if err != nil {
		return nil, err
	}
	inputRaw, err := broadcast(raw.Input, n, "--input")
	if err != nil {
		return nil, err
	}
	outputRaw, err := broadcast(raw.Output, n, "--output")
	if err != nil {
		return nil, err
	}

	commands := make([]parameter.CommandSpec, n)
	for i, line := range raw.Commands {
		spec := parameter.CommandSpec{CommandLine: line}
		if i < len(prepare) {
			spec.Prepare = prepare[i]
		}
		if i < len(conclude) {
			spec.Conclude = conclude[i]
		}
		if i < len(inputRaw) {
			spec.Input = shellcmd.ParseInput(inputRaw[i])
		}
		if i < len(outputRaw) {
			spec.Output = shellcmd.ParseOutput(outputRaw[i])
		}
		commands[i] = spec
	}

	var shell shellcmd.Shell
	if raw.ShellNone || raw.Shell == "none" {
		shell = shellcmd.NoShell()
	} else {
		shell = shellcmd.Named(raw.Shell)
	}

	unit, err := units.Parse(raw.TimeUnit)
	if err != nil {
		return nil, newError(InvalidTimeUnit, "%s", err)
	}

	style, err := progress.ParseStyle(raw.Style)
	if err != nil {
		return nil, newError(InvalidStyle, "%s", err)
	}

	sortOrder, err := parseSort(raw.Sort)
	if err != nil {
		return nil, err
	}

	minTime := raw.MinBenchmarkingTime
	if minTime <= 0 {
		minTime = 3.0
	}

	exports, err := buildExports(raw)
	if err != nil {
		return nil, err
	}

	return &Config{
		Commands:            commands,
		Sources:             sources,
		CommandNames:        raw.CommandNames,
		Shell:                shell,
		Warmup:               raw.Warmup,
		MinRuns:              raw.MinRuns,
		MaxRuns:              raw.MaxRuns,
		FixedRuns:            raw.Runs,
		MinBenchmarkingTime:  time.Duration(minTime * float64(time.Second)),
		WarmupConfigured:     raw.Warmup > 0,
		PrepareConfigured:    len(raw.Prepare) > 0,
		Setup:                raw.Setup,
		Cleanup:              raw.Cleanup,
		Unit:                 unit,
		IgnoreFailure:        raw.IgnoreFailure,
		Style:                style,
		SortOrder:            sortOrder,
		Reference:            raw.Reference,
		Exports:              exports,
	}, nil
}

func buildSources(raw Raw) ([]parameter.Source, error) {
	if raw.ParameterScan.Name != "" {
		src, err := parameter.NewScanSource(raw.ParameterScan.Name, raw.ParameterScan.Min, raw.ParameterScan.Max, raw.ParameterScan.Step)
		if err != nil {
			return nil, newError(InvalidParameterScan, "%s", err)
		}
		return []parameter.Source{src}, nil
	}

	if len(raw.ParameterList) == 0 {
		return nil, nil
	}

	sources := make([]parameter.Source, len(raw.ParameterList))
	for i, arg := range raw.ParameterList {
		src, err := parameter.NewListSource(arg.Name, arg.Values)
		if err != nil {
			return nil, newError(InvalidParameterScan, "%s", err)
		}
		sources[i] = src
	}
	if dup := parameter.FindDuplicateName(sources); dup != "" {
		return nil, newError(DuplicateParameterName, "duplicate parameter name %q", dup)
	}
	return sources, nil
}

// broadcast enforces that per-command values (--prepare, --conclude, etc.)
// are either absent, given once and applied to every command, or given
// once per command: values must have length 0, 1, or n.
func broadcast(values []string, n int, flag string) ([]string, error) {
	switch len(values) {
	case 0:
		return nil, nil
	case 1:
		out := make([]string, n)
		for i := range out {
			out[i] = values[0]
		}
		return out, nil
	default:
		if len(values) != n {
			kind := InvalidHookCount
			if flag == "--output" {
				kind = InvalidOutputCount
			}
			return nil, newError(kind,
				"%s given %d times: expected 1 or %d", flag, len(values), n)
		}
		return values, nil
	}
}

func parseSort(value string) (stats.SortOrder, error) {
	switch value {
	case "", "auto", "mean-time":
		return stats.SortMeanTime, nil
	case "command":
		return stats.SortCommand, nil
	default:
		return stats.SortMeanTime, newError(InvalidSort, "unknown sort order %q", value)
	}
}

func buildExports(raw Raw) ([]ExportTarget, error) {
	var out []ExportTarget
	add := func(path string, exporter export.Exporter) {
		if path != "" {
			out = append(out, ExportTarget{Path: path, Exporter: exporter})
		}
	}
	add(raw.ExportCSV, export.CSV{})
	add(raw.ExportJSON, export.JSON{})
	add(raw.ExportMarkdown, export.Markdown{})
	add(raw.ExportAsciiDoc, export.AsciiDoc{})
	add(raw.ExportOrgMode, export.OrgMode{})
	add(raw.ExportHTML, export.HTML{})
	return out, nil
}
