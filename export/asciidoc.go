package export

import (
	"bytes"
	"fmt"

	"github.com/hyperfine-go/hyperfine/bench"
)

// AsciiDoc renders an AsciiDoc comparison table.
type AsciiDoc struct{}

func (AsciiDoc) Write(results []bench.BenchmarkResult, meta Metadata) ([]byte, error) {
	unit := resolveUnit(results, meta)
	rows := renderRows(buildRows(results, meta), unit)

	var buf bytes.Buffer
	buf.WriteString("[cols=\"<,>,>,>,>\"]\n|===\n")
	fmt.Fprintf(&buf, "|Command |Mean [%s] |Min [%s] |Max [%s] |Relative\n\n", unit.Suffix(), unit.Suffix(), unit.Suffix())
	for _, row := range rows {
		fmt.Fprintf(&buf, "|%s |%s |%s |%s |%s\n", row.Command, row.MeanCell, row.Min, row.Max, row.Relative)
	}
	buf.WriteString("|===\n")
	return buf.Bytes(), nil
}
