// Package units selects and formats the time unit used in console and
// export output: seconds, milliseconds, or microseconds.
package units

import "fmt"

// Unit is a time unit used for display.
type Unit int

const (
	// Auto selects the unit automatically, see Select.
	Auto Unit = iota
	Second
	Millisecond
	Microsecond
)

// Parse maps a --time-unit flag value to a Unit.
func Parse(value string) (Unit, error) {
	switch value {
	case "", "auto":
		return Auto, nil
	case "second":
		return Second, nil
	case "millisecond":
		return Millisecond, nil
	case "microsecond":
		return Microsecond, nil
	default:
		return Auto, fmt.Errorf("unknown time unit %q", value)
	}
}

// scale returns the multiplier that converts a duration in seconds to a
// value expressed in u.
func (u Unit) scale() float64 {
	switch u {
	case Millisecond:
		return 1e3
	case Microsecond:
		return 1e6
	default:
		return 1.0
	}
}

// Suffix returns the short unit suffix used in table headers.
func (u Unit) Suffix() string {
	switch u {
	case Millisecond:
		return "ms"
	case Microsecond:
		return "µs"
	default:
		return "s"
	}
}

// Select auto-selects a concrete unit (never Auto) for a set of mean wall
// times, choosing the unit that puts the smallest mean in [1, 1000) after
// scaling. If u is not Auto, it is returned unchanged.
func Select(u Unit, means []float64) Unit {
	if u != Auto {
		return u
	}
	if len(means) == 0 {
		return Second
	}
	smallest := means[0]
	for _, m := range means[1:] {
		if m < smallest {
			smallest = m
		}
	}

	for _, candidate := range []Unit{Second, Millisecond, Microsecond} {
		scaled := smallest * candidate.scale()
		if scaled >= 1 && scaled < 1000 {
			return candidate
		}
	}
	return Microsecond
}

// Format renders a duration given in seconds in unit u with a fixed number
// of decimal places (3).
func Format(seconds float64, u Unit) string {
	if u == Auto {
		u = Select(u, []float64{seconds})
	}
	return fmt.Sprintf("%.3f %s", seconds*u.scale(), u.Suffix())
}

// FormatValue renders a duration given in seconds, converted to unit u,
// with 3 decimal places and no suffix, for table cells that print the
// suffix once in the header.
func FormatValue(seconds float64, u Unit) string {
	return fmt.Sprintf("%.3f", seconds*u.scale())
}
