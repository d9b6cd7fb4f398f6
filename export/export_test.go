package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hyperfine-go/hyperfine/bench"
	"github.com/hyperfine-go/hyperfine/stats"
	"github.com/hyperfine-go/hyperfine/units"
	"github.com/stretchr/testify/require"
)

func sampleResults() []bench.BenchmarkResult {
	a := bench.BenchmarkResult{
		Name:        "fast",
		CommandLine: "fast",
		WallTimes:   []float64{0.1, 0.11, 0.09},
	}
	a.Stats = stats.Describe(a.WallTimes, nil, nil)

	b := bench.BenchmarkResult{
		Name:        "slow",
		CommandLine: "slow",
		WallTimes:   []float64{0.2, 0.21, 0.19},
		Parameters:  map[string]string{"n": "2"},
		ParameterOrder: []string{"n"},
	}
	b.Stats = stats.Describe(b.WallTimes, nil, nil)

	return []bench.BenchmarkResult{a, b}
}

func TestJSONWriteRoundTrip(t *testing.T) {
	out, err := JSON{}.Write(sampleResults(), Metadata{})
	require.NoError(t, err)

	var doc jsonDocument
	require.NoError(t, json.Unmarshal(out, &doc))
	require.Len(t, doc.Results, 2)
	require.Equal(t, "fast", doc.Results[0].Command)
	require.Equal(t, "2", doc.Results[1].Parameters["n"])
}

func TestJSONWriteIncludesWarningHints(t *testing.T) {
	results := sampleResults()
	results[0].Warnings = []bench.Warning{{Kind: bench.FastExecutionTime}}

	out, err := JSON{}.Write(results, Metadata{})
	require.NoError(t, err)

	var doc jsonDocument
	require.NoError(t, json.Unmarshal(out, &doc))
	require.Len(t, doc.Results[0].Warnings, 1)
	require.Contains(t, doc.Results[0].Warnings[0], "calibrate the shell startup time")
	require.Empty(t, doc.Results[1].Warnings)
}

func TestCSVWriteHeaderAndParameterColumns(t *testing.T) {
	out, err := CSV{}.Write(sampleResults(), Metadata{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Equal(t, "command,mean,stddev,median,user,system,min,max,n", lines[0])
	require.Len(t, lines, 3)
}

func TestMarkdownWriteContainsReferenceRow(t *testing.T) {
	out, err := Markdown{}.Write(sampleResults(), Metadata{Unit: units.Second})
	require.NoError(t, err)
	require.Contains(t, string(out), "fast")
	require.Contains(t, string(out), "1.00")
}

func TestHTMLWriteEmbedsData(t *testing.T) {
	out, err := HTML{}.Write(sampleResults(), Metadata{OS: "linux", Arch: "amd64"})
	require.NoError(t, err)
	require.Contains(t, string(out), "REPORT_DATA")
	require.Contains(t, string(out), "\"fast\"")
}

func TestOutlierFlagsMarksOnlyTheFarSample(t *testing.T) {
	flags := outlierFlags([]float64{1, 1, 1, 1, 1, 1, 1, 100})
	require.Equal(t, []bool{false, false, false, false, false, false, false, true}, flags)
}

func TestHTMLWriteFlagsOutliers(t *testing.T) {
	r := bench.BenchmarkResult{
		Name:        "spiky",
		CommandLine: "spiky",
		WallTimes:   []float64{1, 1, 1, 1, 1, 1, 1, 100},
	}
	r.Stats = stats.Describe(r.WallTimes, nil, nil)

	out, err := HTML{}.Write([]bench.BenchmarkResult{r}, Metadata{})
	require.NoError(t, err)
	require.Contains(t, string(out), "\"outliers\"")
	require.Contains(t, string(out), "true")
}
