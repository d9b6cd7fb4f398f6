package stats

import "math"

// SortOrder controls how the comparison table is ordered.
type SortOrder int

const (
	// SortMeanTime orders ascending by mean wall time. This is the
	// default ("auto" resolves to this).
	SortMeanTime SortOrder = iota
	// SortCommand preserves job order.
	SortCommand
)

// Comparable is the minimal view of a benchmark result needed to compute
// relative-speed comparisons: a display name and wall-time mean/stddev.
type Comparable struct {
	Name   string
	Mean   float64
	Stddev float64
}

// Comparison is one row of the relative-speed table.
type Comparison struct {
	Name       string
	Ratio      float64
	RatioStdev float64
	IsReference bool
}

// ReferenceIndex resolves the reference benchmark: the one whose name
// matches referenceName if given, else the one with the smallest mean.
// Returns -1 if results is empty.
func ReferenceIndex(results []Comparable, referenceName string) int {
	if len(results) == 0 {
		return -1
	}
	if referenceName != "" {
		for i, r := range results {
			if r.Name == referenceName {
				return i
			}
		}
	}
	best := 0
	for i, r := range results {
		if r.Mean < results[best].Mean {
			best = i
		}
	}
	return best
}

// Compare computes, for every result, the ratio of its mean to the
// reference's mean and the propagated relative standard deviation via
// quadrature: ratio_sd = ratio * sqrt((sd_r/mean_r)^2 + (sd_ref/mean_ref)^2).
// The reference's own ratio is always exactly 1.0 with ratio_sd 0.
func Compare(results []Comparable, referenceIdx int) []Comparison {
	out := make([]Comparison, len(results))
	if referenceIdx < 0 || referenceIdx >= len(results) {
		return out
	}
	ref := results[referenceIdx]

	for i, r := range results {
		if i == referenceIdx {
			out[i] = Comparison{Name: r.Name, Ratio: 1.0, RatioStdev: 0, IsReference: true}
			continue
		}
		ratio := r.Mean / ref.Mean
		var relR, relRef float64
		if r.Mean != 0 {
			relR = r.Stddev / r.Mean
		}
		if ref.Mean != 0 {
			relRef = ref.Stddev / ref.Mean
		}
		ratioStdev := ratio * math.Sqrt(relR*relR+relRef*relRef)
		out[i] = Comparison{Name: r.Name, Ratio: ratio, RatioStdev: ratioStdev}
	}
	return out
}

// SortIndices returns the permutation of [0,len(results)) that orders
// results per order. SortCommand is the identity permutation (job order);
// SortMeanTime sorts ascending by mean.
func SortIndices(results []Comparable, order SortOrder) []int {
	idx := make([]int, len(results))
	for i := range idx {
		idx[i] = i
	}
	if order != SortMeanTime {
		return idx
	}
	// simple insertion sort: result sets are small (benchmark counts),
	// and stability keeps ties in job order.
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && results[idx[j]].Mean < results[idx[j-1]].Mean; j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
	return idx
}
