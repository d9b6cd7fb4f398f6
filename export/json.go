package export

import (
	"encoding/json"

	"github.com/hyperfine-go/hyperfine/bench"
)

// JSON writes a top-level object with a "results" array, one entry per
// benchmark, times in seconds at native double precision.
type JSON struct{}

type jsonDocument struct {
	Results []jsonResult `json:"results"`
}

type jsonResult struct {
	Command    string            `json:"command"`
	Mean       float64           `json:"mean"`
	Stddev     *float64          `json:"stddev"`
	Median     float64           `json:"median"`
	User       float64           `json:"user"`
	System     float64           `json:"system"`
	Min        float64           `json:"min"`
	Max        float64           `json:"max"`
	Times      []float64         `json:"times"`
	ExitCodes  []int             `json:"exit_codes"`
	Parameters map[string]string `json:"parameters,omitempty"`
	Warnings   []string          `json:"warnings,omitempty"`
}

func (JSON) Write(results []bench.BenchmarkResult, _ Metadata) ([]byte, error) {
	doc := jsonDocument{Results: make([]jsonResult, len(results))}
	for i, r := range results {
		exitCodes := make([]int, len(r.ExitStatuses))
		for j, s := range r.ExitStatuses {
			exitCodes[j] = s.Code
		}

		var stddev *float64
		if r.Stats.HasStddev {
			v := r.Stats.Stddev
			stddev = &v
		}

		var warnings []string
		for _, w := range r.Warnings {
			warnings = append(warnings, w.Hint())
		}

		doc.Results[i] = jsonResult{
			Command:    r.CommandLine,
			Mean:       r.Stats.Mean,
			Stddev:     stddev,
			Median:     r.Stats.Median,
			User:       r.Stats.UserMean,
			System:     r.Stats.SysMean,
			Min:        r.Stats.Min,
			Max:        r.Stats.Max,
			Times:      r.WallTimes,
			ExitCodes:  exitCodes,
			Parameters: r.Parameters,
			Warnings:   warnings,
		}
	}
	return json.MarshalIndent(doc, "", "  ")
}
