package progress

import (
	"fmt"
	"io"

	"github.com/hyperfine-go/hyperfine/bench"
	"github.com/hyperfine-go/hyperfine/stats"
	"github.com/hyperfine-go/hyperfine/units"
)

// WriteSummary renders the per-benchmark timing blocks, any advisory
// warnings, and (for two or more benchmarks) the relative-speed comparison
// table, in the same shape a console-only invocation has always shown:
// mean/stddev, min/max range, advisory warnings, then a "Summary" section
// naming the reference command (the one named by referenceName, else the
// fastest) and its speed ratio relative to each of the others. None of this affects the exported report formats, which render
// their own tables independent of this function.
func WriteSummary(w io.Writer, results []bench.BenchmarkResult, style Style, unit units.Unit, order stats.SortOrder, referenceName string) {
	if style == None || len(results) == 0 {
		return
	}

	resolved := unit
	if resolved == units.Auto {
		means := make([]float64, len(results))
		for i, r := range results {
			means[i] = r.Stats.Mean
		}
		resolved = units.Select(unit, means)
	}

	for i, r := range results {
		writeResultBlock(w, i+1, r, resolved)
	}

	if len(results) < 2 {
		return
	}
	writeComparison(w, results, order, referenceName, resolved)
}

func writeResultBlock(w io.Writer, number int, r bench.BenchmarkResult, unit units.Unit) {
	fmt.Fprintf(w, "Benchmark %d: %s\n", number, r.Name)

	if r.Stats.Count == 0 {
		fmt.Fprintln(w, "  (no samples collected)")
		return
	}

	mean := units.Format(r.Stats.Mean, unit)
	if r.Stats.HasStddev {
		stddev := units.Format(r.Stats.Stddev, unit)
		fmt.Fprintf(w, "  Time (mean ± σ):     %s ± %s    [User: %s, System: %s]\n",
			mean, stddev, units.Format(r.Stats.UserMean, unit), units.Format(r.Stats.SysMean, unit))
		fmt.Fprintf(w, "  Range (min … max):   %s … %s    %d runs\n",
			units.Format(r.Stats.Min, unit), units.Format(r.Stats.Max, unit), r.Stats.Count)
	} else {
		fmt.Fprintf(w, "  Time (abs):          %s    [User: %s, System: %s]\n",
			mean, units.Format(r.Stats.UserMean, unit), units.Format(r.Stats.SysMean, unit))
	}

	for _, warning := range r.Warnings {
		fmt.Fprintf(w, "  Warning: %s\n", warning.Hint())
	}
	fmt.Fprintln(w)
}

func writeComparison(w io.Writer, results []bench.BenchmarkResult, order stats.SortOrder, referenceName string, unit units.Unit) {
	comparables := make([]stats.Comparable, len(results))
	for i, r := range results {
		comparables[i] = r.Comparable()
	}

	refIdx := stats.ReferenceIndex(comparables, referenceName)
	if refIdx < 0 || comparables[refIdx].Mean == 0 {
		fmt.Fprintln(w, "Note: the benchmark comparison could not be computed because the reference's "+
			"mean time is zero. Try re-running on a quiet system.")
		return
	}
	comparisons := stats.Compare(comparables, refIdx)
	indices := stats.SortIndices(comparables, order)

	fmt.Fprintln(w, "Summary")
	fmt.Fprintf(w, "  '%s' ran\n", results[refIdx].Name)
	for _, idx := range indices {
		if idx == refIdx {
			continue
		}
		cmp := comparisons[idx]
		fmt.Fprintf(w, "    %6.2f ± %.2f times faster than '%s'\n", cmp.Ratio, cmp.RatioStdev, results[idx].Name)
	}
	_ = unit // reserved: ratios are unit-independent, formatting kept for symmetry with writeResultBlock's signature
}
