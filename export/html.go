package export

import (
	_ "embed"
	"bytes"
	"encoding/json"
	"html/template"
	"math"
	"strings"

	"github.com/hyperfine-go/hyperfine/bench"
	"github.com/hyperfine-go/hyperfine/stats"
)

//go:embed templates/report.html.tmpl
var reportTemplateSource string

// HTML renders a self-contained interactive report: the results are
// embedded as a literal JSON data structure, rendered client-side by the
// inline script in templates/report.html.tmpl (summary table, box plot,
// per-command histograms and time-progression charts with moving
// averages, an advanced-statistics panel, and a parameter-analysis chart
// when parameter bindings exist).
type HTML struct{}

type htmlResult struct {
	Command    string            `json:"command"`
	Mean       float64           `json:"mean"`
	Stddev     float64           `json:"stddev"`
	Min        float64           `json:"min"`
	Max        float64           `json:"max"`
	Times      []float64         `json:"times"`
	Outliers   []bool            `json:"outliers,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

// outlierFlags marks every sample whose modified z-score exceeds the
// default outlier threshold, for the histogram/progression annotations.
func outlierFlags(wall []float64) []bool {
	tun := stats.DefaultOutlierTunables()
	scores := stats.ModifiedZScores(wall)
	flags := make([]bool, len(scores))
	for i, s := range scores {
		flags[i] = math.Abs(s) > tun.ModifiedZScoreThreshold
	}
	return flags
}

type htmlDocument struct {
	OS      string       `json:"os"`
	Arch    string       `json:"arch"`
	Unit    string       `json:"unit"`
	Results []htmlResult `json:"results"`
}

func (HTML) Write(results []bench.BenchmarkResult, meta Metadata) ([]byte, error) {
	unit := resolveUnit(results, meta)

	doc := htmlDocument{OS: meta.OS, Arch: meta.Arch, Unit: unit.Suffix()}
	doc.Results = make([]htmlResult, len(results))
	for i, r := range results {
		doc.Results[i] = htmlResult{
			Command:    r.Name,
			Mean:       r.Stats.Mean,
			Stddev:     r.Stats.Stddev,
			Min:        r.Stats.Min,
			Max:        r.Stats.Max,
			Times:      r.WallTimes,
			Outliers:   outlierFlags(r.WallTimes),
			Parameters: r.Parameters,
		}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	// </script> inside a JSON string value would otherwise close the
	// embedding <script> tag early.
	safe := strings.ReplaceAll(string(raw), "</", "<\\/")

	tmpl, err := template.New("report").Parse(reportTemplateSource)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ DataJSON template.JS }{template.JS(safe)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
