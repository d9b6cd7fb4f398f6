package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/hyperfine-go/hyperfine/bench"
)

// CSV writes one header row plus one row per benchmark: command, mean,
// stddev, median, user, system, min, max, followed by parameter columns
// ordered by first appearance.
type CSV struct{}

func (CSV) Write(results []bench.BenchmarkResult, _ Metadata) ([]byte, error) {
	paramOrder := firstAppearanceOrder(results)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"command", "mean", "stddev", "median", "user", "system", "min", "max"}
	header = append(header, paramOrder...)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range results {
		row := []string{
			r.CommandLine,
			formatFloat(r.Stats.Mean),
			formatFloat(r.Stats.Stddev),
			formatFloat(r.Stats.Median),
			formatFloat(r.Stats.UserMean),
			formatFloat(r.Stats.SysMean),
			formatFloat(r.Stats.Min),
			formatFloat(r.Stats.Max),
		}
		for _, name := range paramOrder {
			row = append(row, r.Parameters[name])
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// firstAppearanceOrder collects every distinct parameter name across all
// results, in the order each name first appears.
func firstAppearanceOrder(results []bench.BenchmarkResult) []string {
	seen := make(map[string]bool)
	var order []string
	for _, r := range results {
		for _, name := range r.ParameterOrder {
			if !seen[name] {
				seen[name] = true
				order = append(order, name)
			}
		}
	}
	return order
}
