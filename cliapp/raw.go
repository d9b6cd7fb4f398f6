package cliapp

import (
	"fmt"
	"strings"

	"github.com/hyperfine-go/hyperfine/config"
	"github.com/urfave/cli/v2"
)

// rawFromContext copies every parsed flag and positional argument into a
// config.Raw. It performs no validation beyond what urfave/cli itself
// enforces; config.Validate owns every semantic check.
func rawFromContext(ctx *cli.Context) (config.Raw, error) {
	commands := ctx.Args().Slice()
	if len(commands) == 0 {
		return config.Raw{}, cli.Exit("hyperfine: at least one command must be given", 1)
	}

	raw := config.Raw{
		Commands:     commands,
		CommandNames: ctx.StringSlice("command-name"),

		Warmup:              ctx.Int("warmup"),
		MinRuns:              ctx.Int("min-runs"),
		MaxRuns:              ctx.Int("max-runs"),
		Runs:                 ctx.Int("runs"),
		MinBenchmarkingTime:  ctx.Float64("min-benchmarking-time"),

		Prepare:  ctx.StringSlice("prepare"),
		Conclude: ctx.StringSlice("conclude"),
		Setup:    ctx.String("setup"),
		Cleanup:  ctx.String("cleanup"),

		Shell:     ctx.String("shell"),
		ShellNone: ctx.Bool("shell-none"),

		Input:  ctx.StringSlice("input"),
		Output: ctx.StringSlice("output"),

		TimeUnit:      ctx.String("time-unit"),
		IgnoreFailure: ctx.Bool("ignore-failure"),
		Style:         ctx.String("style"),
		Sort:          ctx.String("sort"),
		Reference:     ctx.String("reference"),

		ExportCSV:      ctx.String("export-csv"),
		ExportJSON:     ctx.String("export-json"),
		ExportMarkdown: ctx.String("export-markdown"),
		ExportAsciiDoc: ctx.String("export-asciidoc"),
		ExportOrgMode:  ctx.String("export-orgmode"),
		ExportHTML:     ctx.String("export-html"),
	}

	scan, err := parseScan(ctx.StringSlice("parameter-scan"), ctx.String("parameter-step-size"))
	if err != nil {
		return config.Raw{}, err
	}
	raw.ParameterScan = scan

	list, err := parseList(ctx.StringSlice("parameter-list"))
	if err != nil {
		return config.Raw{}, err
	}
	raw.ParameterList = list

	return raw, nil
}

// parseScan turns a repeated "--parameter-scan NAME --parameter-scan MIN
// --parameter-scan MAX" triple into a config.ScanArg. urfave/cli has no
// multi-value-per-occurrence flag, so the three positional tokens become
// three occurrences of the same flag, in order.
func parseScan(values []string, step string) (config.ScanArg, error) {
	if len(values) == 0 {
		return config.ScanArg{}, nil
	}
	if len(values) != 3 {
		return config.ScanArg{}, cli.Exit(
			fmt.Sprintf("hyperfine: --parameter-scan requires exactly 3 values (name, min, max), got %d", len(values)), 1)
	}
	return config.ScanArg{Name: values[0], Min: values[1], Max: values[2], Step: step}, nil
}

// parseList turns a repeated "--parameter-list NAME=VALUES" flag into
// config.ListArg entries.
func parseList(values []string) ([]config.ListArg, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]config.ListArg, len(values))
	for i, v := range values {
		name, rest, ok := strings.Cut(v, "=")
		if !ok {
			return nil, cli.Exit(
				fmt.Sprintf("hyperfine: --parameter-list %q: expected NAME=VALUES", v), 1)
		}
		out[i] = config.ListArg{Name: name, Values: rest}
	}
	return out, nil
}
