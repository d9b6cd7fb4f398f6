// Package export renders a completed set of benchmark results to one of
// the supported report formats: JSON, CSV, Markdown, AsciiDoc, org-mode,
// or a self-contained interactive HTML document.
package export

import (
	"github.com/hyperfine-go/hyperfine/bench"
	"github.com/hyperfine-go/hyperfine/stats"
	"github.com/hyperfine-go/hyperfine/units"
)

// Metadata carries the run-level context an exporter needs beyond the
// per-benchmark results themselves: the configured (or auto-selected) time
// unit, the reference command for relative-speed comparisons, and the
// table sort order.
type Metadata struct {
	Unit       units.Unit
	Reference  string
	SortOrder  stats.SortOrder
	OS         string
	Arch       string
}

// Exporter is a pure function from a completed run to a byte sequence.
type Exporter interface {
	Write(results []bench.BenchmarkResult, meta Metadata) ([]byte, error)
}

// comparisonRow is the shared per-benchmark view every comparison-table
// exporter (Markdown/AsciiDoc/org-mode) builds before rendering its own
// syntax.
type comparisonRow struct {
	Result     bench.BenchmarkResult
	Comparison stats.Comparison
}

// buildRows resolves the reference benchmark, computes relative-speed
// ratios, and returns rows in meta.SortOrder.
func buildRows(results []bench.BenchmarkResult, meta Metadata) []comparisonRow {
	comparables := make([]stats.Comparable, len(results))
	for i, r := range results {
		comparables[i] = r.Comparable()
	}

	refIdx := stats.ReferenceIndex(comparables, meta.Reference)
	comparisons := stats.Compare(comparables, refIdx)
	order := stats.SortIndices(comparables, meta.SortOrder)

	rows := make([]comparisonRow, len(order))
	for i, idx := range order {
		rows[i] = comparisonRow{Result: results[idx], Comparison: comparisons[idx]}
	}
	return rows
}

// resolveUnit auto-selects a concrete unit from the run's means when
// meta.Unit is units.Auto.
func resolveUnit(results []bench.BenchmarkResult, meta Metadata) units.Unit {
	means := make([]float64, len(results))
	for i, r := range results {
		means[i] = r.Stats.Mean
	}
	return units.Select(meta.Unit, means)
}
