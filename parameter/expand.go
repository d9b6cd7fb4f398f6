package parameter

// Point is one concrete binding of every parameter source to a single
// value, plus the stable source order needed to substitute {name}
// deterministically and to render parameter columns in first-appearance
// order on export.
type Point struct {
	Bindings map[string]string
	Order    []string
}

// Expand computes the Cartesian product of sources. Sources earlier in the
// slice vary fastest, matching the mixed-radix counter the original
// implementation walks when combining a --parameter-scan/--parameter-list
// axis with the command-template axis: the command index is always the
// fastest-varying dimension, so a caller that loops "for each point, for
// each command" reproduces that same command-index-innermost order.
//
// With no sources, Expand returns a single empty Point so that callers can
// treat the parameterless case uniformly (one job per command template).
func Expand(sources []Source) []Point {
	if len(sources) == 0 {
		return []Point{{Bindings: map[string]string{}, Order: nil}}
	}

	order := make([]string, len(sources))
	for i, s := range sources {
		order[i] = s.Name
	}

	total := 1
	for _, s := range sources {
		total *= len(s.Values)
	}

	points := make([]Point, total)
	idx := make([]int, len(sources))
	for p := 0; p < total; p++ {
		bindings := make(map[string]string, len(sources))
		for i, s := range sources {
			bindings[s.Name] = s.Values[idx[i]]
		}
		points[p] = Point{Bindings: bindings, Order: order}

		for i := range idx {
			idx[i]++
			if idx[i] < len(sources[i].Values) {
				break
			}
			idx[i] = 0
		}
	}
	return points
}

// Count returns Π len(source.Values) for validating --command-name counts
// without materializing the full product.
func Count(sources []Source) int {
	total := 1
	for _, s := range sources {
		total *= len(s.Values)
	}
	return total
}

// FindDuplicateName returns the first parameter name that appears more than
// once across sources, or "" if all names are unique.
func FindDuplicateName(sources []Source) string {
	seen := make(map[string]bool, len(sources))
	for _, s := range sources {
		if seen[s.Name] {
			return s.Name
		}
		seen[s.Name] = true
	}
	return ""
}
