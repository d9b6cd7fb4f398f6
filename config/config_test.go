package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRejectsNoCommands(t *testing.T) {
	_, err := Validate(Raw{})
	require.Error(t, err)
	require.Equal(t, NoCommands, err.(*Error).Kind)
}

func TestValidateRejectsNegativeRuns(t *testing.T) {
	_, err := Validate(Raw{Commands: []string{"true"}, Warmup: -1})
	require.Error(t, err)
	require.Equal(t, NegativeRuns, err.(*Error).Kind)
}

func TestValidateRejectsMismatchedPrepareCount(t *testing.T) {
	_, err := Validate(Raw{
		Commands: []string{"a", "b", "c"},
		Prepare:  []string{"x", "y"},
	})
	require.Error(t, err)
	require.Equal(t, InvalidHookCount, err.(*Error).Kind)
}

func TestValidateBroadcastsSinglePrepare(t *testing.T) {
	cfg, err := Validate(Raw{
		Commands: []string{"a", "b"},
		Prepare:  []string{"clear-cache"},
	})
	require.NoError(t, err)
	require.Equal(t, "clear-cache", cfg.Commands[0].Prepare)
	require.Equal(t, "clear-cache", cfg.Commands[1].Prepare)
}

func TestValidateDefaultsMinBenchmarkingTime(t *testing.T) {
	cfg, err := Validate(Raw{Commands: []string{"true"}})
	require.NoError(t, err)
	require.Equal(t, 3.0, cfg.MinBenchmarkingTime.Seconds())
}

func TestValidateParameterList(t *testing.T) {
	cfg, err := Validate(Raw{
		Commands:      []string{"echo {n}"},
		ParameterList: []ListArg{{Name: "n", Values: "1,2,3"}},
	})
	require.NoError(t, err)
	require.Len(t, cfg.Sources, 1)
	require.Equal(t, []string{"1", "2", "3"}, cfg.Sources[0].Values)
}

func TestValidateRejectsDuplicateParameterNames(t *testing.T) {
	_, err := Validate(Raw{
		Commands: []string{"echo {n}"},
		ParameterList: []ListArg{
			{Name: "n", Values: "1,2"},
			{Name: "n", Values: "3,4"},
		},
	})
	require.Error(t, err)
	require.Equal(t, DuplicateParameterName, err.(*Error).Kind)
}

func TestValidateRejectsInvalidCommandNameCount(t *testing.T) {
	_, err := Validate(Raw{
		Commands:      []string{"echo {n}"},
		ParameterList: []ListArg{{Name: "n", Values: "1,2,3"}},
		CommandNames:  []string{"a", "b"},
	})
	require.Error(t, err)
	require.Equal(t, InvalidCommandNameCount, err.(*Error).Kind)
}

func TestValidateShellNone(t *testing.T) {
	cfg, err := Validate(Raw{Commands: []string{"true"}, ShellNone: true})
	require.NoError(t, err)
	require.True(t, cfg.Shell.None)
}
