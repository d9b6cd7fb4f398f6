package progress

import (
	"bytes"
	"testing"
	"time"

	"github.com/hyperfine-go/hyperfine/bench"
	"github.com/hyperfine-go/hyperfine/units"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	s, err := ParseStyle("full")
	require.NoError(t, err)
	require.Equal(t, Full, s)

	_, err = ParseStyle("bogus")
	require.Error(t, err)
}

func TestConsoleSinkBasicRendersOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	sink := &ConsoleSink{w: &buf, style: Basic, unit: units.Second}

	sink.Event(bench.ProgressEvent{JobName: "echo hi", Iteration: 1, TotalIterations: 3, RunningMean: 100 * time.Millisecond})
	sink.Event(bench.ProgressEvent{JobName: "echo hi", Iteration: 2, TotalIterations: 3, RunningMean: 100 * time.Millisecond})

	require.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestConsoleSinkNoneSuppressesOutput(t *testing.T) {
	var buf bytes.Buffer
	sink := &ConsoleSink{w: &buf, style: None, unit: units.Second}
	sink.Event(bench.ProgressEvent{JobName: "x", Iteration: 1, TotalIterations: 1})
	require.Empty(t, buf.Bytes())
}

func TestConsoleSinkFullOverwritesLine(t *testing.T) {
	var buf bytes.Buffer
	sink := &ConsoleSink{w: &buf, style: Full, unit: units.Second}
	sink.Event(bench.ProgressEvent{JobName: "x", Iteration: 1, TotalIterations: 2})
	require.Contains(t, buf.String(), "\r")
}
