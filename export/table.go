package export

import (
	"fmt"

	"github.com/hyperfine-go/hyperfine/units"
)

// tableRow is the rendered text for one row of a Mean/Min/Max/Relative
// comparison table, independent of the surrounding markup syntax.
type tableRow struct {
	Command  string
	MeanCell string // "12.345 ± 0.123" (unit suffix is in the header)
	Min      string
	Max      string
	Relative string // "1.00" for the reference, "2.34 ± 0.05" otherwise
}

func renderRows(results []comparisonRow, unit units.Unit) []tableRow {
	out := make([]tableRow, len(results))
	for i, row := range results {
		r := row.Result
		meanCell := units.FormatValue(r.Stats.Mean, unit)
		if r.Stats.HasStddev {
			meanCell = fmt.Sprintf("%s ± %s", meanCell, units.FormatValue(r.Stats.Stddev, unit))
		}

		relative := "1.00"
		if !row.Comparison.IsReference {
			relative = fmt.Sprintf("%.2f ± %.2f", row.Comparison.Ratio, row.Comparison.RatioStdev)
		}

		out[i] = tableRow{
			Command:  r.Name,
			MeanCell: meanCell,
			Min:      units.FormatValue(r.Stats.Min, unit),
			Max:      units.FormatValue(r.Stats.Max, unit),
			Relative: relative,
		}
	}
	return out
}
