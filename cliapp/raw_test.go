package cliapp

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runWithArgs(t *testing.T, args []string) (*cli.Context, error) {
	t.Helper()
	a := New()
	var captured *cli.Context
	a.cli.Action = func(ctx *cli.Context) error {
		captured = ctx
		return nil
	}
	err := a.cli.Run(append([]string{AppName}, args...))
	return captured, err
}

func TestRawFromContextCollectsCommandsAndFlags(t *testing.T) {
	ctx, err := runWithArgs(t, []string{"--warmup", "3", "--runs", "5", "sleep 0.1"})
	require.NoError(t, err)

	raw, err := rawFromContext(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"sleep 0.1"}, raw.Commands)
	require.Equal(t, 3, raw.Warmup)
	require.Equal(t, 5, raw.Runs)
}

func TestRawFromContextRequiresAtLeastOneCommand(t *testing.T) {
	ctx, err := runWithArgs(t, nil)
	require.NoError(t, err)

	_, err = rawFromContext(ctx)
	require.Error(t, err)
}

func TestParseScanRequiresThreeValues(t *testing.T) {
	_, err := parseScan([]string{"x", "0"}, "")
	require.Error(t, err)

	scan, err := parseScan([]string{"x", "0", "10"}, "2")
	require.NoError(t, err)
	require.Equal(t, "x", scan.Name)
	require.Equal(t, "0", scan.Min)
	require.Equal(t, "10", scan.Max)
	require.Equal(t, "2", scan.Step)
}

func TestParseListRequiresEquals(t *testing.T) {
	_, err := parseList([]string{"n-1,2,3"})
	require.Error(t, err)

	list, err := parseList([]string{"n=1,2,3"})
	require.NoError(t, err)
	require.Equal(t, "n", list[0].Name)
	require.Equal(t, "1,2,3", list[0].Values)
}
