// Package progress is the thin rendering adapter that turns bench.ProgressEvent
// values into terminal output. Progress rendering is deliberately kept
// outside the core engine; this package is the external collaborator the
// engine's event stream is designed for.
package progress

import "fmt"

// Style selects how progress is rendered.
type Style int

const (
	// Auto resolves to Full on an interactive terminal, Basic otherwise.
	Auto Style = iota
	// Basic prints one line per event, suitable for piped/redirected output.
	Basic
	// Full overwrites a single status line in place, for interactive use.
	Full
	// Color is Full with the status line rendered in bold via ANSI escape
	// sequences.
	Color
	// None suppresses progress output entirely.
	None
)

// ParseStyle maps a --style flag value to a Style.
func ParseStyle(value string) (Style, error) {
	switch value {
	case "", "auto":
		return Auto, nil
	case "basic":
		return Basic, nil
	case "full":
		return Full, nil
	case "color":
		return Color, nil
	case "none":
		return None, nil
	default:
		return Auto, fmt.Errorf("unknown progress style %q", value)
	}
}
