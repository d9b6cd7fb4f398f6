// Package stats contains pure functions over sample vectors: descriptive
// statistics, quantiles, outlier detection, and pairwise relative-speed
// comparisons with propagated uncertainty. Nothing here touches a process,
// a file, or the network.
package stats

import (
	"math"
	"sort"
)

// Mean is the arithmetic mean of xs. Mean of an empty slice is 0.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Stddev is the sample standard deviation (Bessel's correction, divide by
// n-1). It is undefined for n < 2; ok is false in that case.
func Stddev(xs []float64) (value float64, ok bool) {
	if len(xs) < 2 {
		return 0, false
	}
	mean := Mean(xs)
	var sumSq float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(xs)-1)), true
}

// Min returns the smallest value in xs. Panics on an empty slice; callers
// must not call it on empty sample vectors — a non-aborted result always
// has at least one sample.
func Min(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// Max returns the largest value in xs.
func Max(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// Median is the 0.5 quantile under the R-7 rule, equivalent to linear
// interpolation between the two central order statistics for even n.
func Median(xs []float64) float64 {
	return Quantile(xs, 0.5)
}

// Quantile computes the q-th quantile (q in [0,1]) of xs using the "R-7"
// rule: index = (n-1)*q, linearly interpolated between floor(index) and
// ceil(index) of the sorted sample.
func Quantile(xs []float64, q float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	index := (float64(n) - 1) * q
	lo := int(math.Floor(index))
	hi := int(math.Ceil(index))
	if lo < 0 {
		lo = 0
	}
	if hi >= n {
		hi = n - 1
	}
	if lo == hi {
		return sorted[lo]
	}
	frac := index - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Descriptive holds the computed statistics for one benchmark's wall-time
// samples, plus optional user/system means. Stddev is a pointer-like
// optional via (value, ok) so exporters can tolerate "undefined for n<2".
type Descriptive struct {
	Mean      float64
	Stddev    float64
	HasStddev bool
	Median    float64
	Min       float64
	Max       float64
	Count     int
	UserMean  float64
	SysMean   float64
}

// Describe computes Descriptive statistics over wall samples, plus the
// mean of the parallel user/system sample vectors.
func Describe(wall, user, system []float64) Descriptive {
	d := Descriptive{
		Mean:   Mean(wall),
		Median: Median(wall),
		Count:  len(wall),
	}
	if len(wall) > 0 {
		d.Min = Min(wall)
		d.Max = Max(wall)
	}
	if sd, ok := Stddev(wall); ok {
		d.Stddev = sd
		d.HasStddev = true
	}
	if len(user) > 0 {
		d.UserMean = Mean(user)
	}
	if len(system) > 0 {
		d.SysMean = Mean(system)
	}
	return d
}
