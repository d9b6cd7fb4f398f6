package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/hyperfine-go/hyperfine/bench"
	"github.com/hyperfine-go/hyperfine/units"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ConsoleSink renders bench.ProgressEvents to a writer, implementing
// bench.ProgressSink. Construct with NewConsoleSink, which resolves Auto
// against the writer's terminal capability the same way an interactive CLI
// would decide whether to animate a status line.
type ConsoleSink struct {
	w      io.Writer
	style  Style
	unit   units.Unit
	lastW  int // width of the last line written, for overwrite padding
}

// NewConsoleSink builds a ConsoleSink writing to w. If style is Auto, it
// resolves to Full when fd (typically os.Stderr.Fd()) is an interactive
// terminal, Basic otherwise. A Color style wraps w with go-colorable so
// ANSI sequences render correctly on Windows consoles too.
func NewConsoleSink(w io.Writer, fd uintptr, style Style, unit units.Unit) *ConsoleSink {
	resolved := style
	if resolved == Auto {
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			resolved = Full
		} else {
			resolved = Basic
		}
	}
	if resolved == Color {
		if f, ok := w.(*os.File); ok {
			w = colorable.NewColorable(f)
		}
	}
	return &ConsoleSink{w: w, style: resolved, unit: unit}
}

// Event renders one progress event per ConsoleSink's resolved style.
func (c *ConsoleSink) Event(ev bench.ProgressEvent) {
	switch c.style {
	case None:
		return
	case Full, Color:
		c.renderInPlace(ev)
	default:
		c.renderLine(ev)
	}
}

func (c *ConsoleSink) renderLine(ev bench.ProgressEvent) {
	fmt.Fprintf(c.w, "%s: run %d/%d, mean %s\n",
		ev.JobName, ev.Iteration, ev.TotalIterations,
		units.Format(ev.RunningMean.Seconds(), c.unit))
}

func (c *ConsoleSink) renderInPlace(ev bench.ProgressEvent) {
	mean := units.Format(ev.RunningMean.Seconds(), c.unit)
	line := fmt.Sprintf("Benchmark: %s  [%d/%d]  mean %s  eta %s",
		ev.JobName, ev.Iteration, ev.TotalIterations, mean, ev.ETA.Round(1e6))

	if c.style == Color {
		line = "\x1b[1m" + line + "\x1b[0m"
	}

	pad := ""
	if c.lastW > len(line) {
		for i := 0; i < c.lastW-len(line); i++ {
			pad += " "
		}
	}
	fmt.Fprintf(c.w, "\r%s%s", line, pad)
	c.lastW = len(line)

	if ev.Iteration == ev.TotalIterations {
		fmt.Fprintln(c.w)
		c.lastW = 0
	}
}
