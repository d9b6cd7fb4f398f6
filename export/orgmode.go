package export

import (
	"bytes"
	"fmt"

	"github.com/hyperfine-go/hyperfine/bench"
)

// OrgMode renders an Emacs org-mode table.
type OrgMode struct{}

func (OrgMode) Write(results []bench.BenchmarkResult, meta Metadata) ([]byte, error) {
	unit := resolveUnit(results, meta)
	rows := renderRows(buildRows(results, meta), unit)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "| Command | Mean [%s] | Min [%s] | Max [%s] | Relative |\n", unit.Suffix(), unit.Suffix(), unit.Suffix())
	buf.WriteString("|-\n")
	for _, row := range rows {
		fmt.Fprintf(&buf, "| %s | %s | %s | %s | %s |\n", row.Command, row.MeanCell, row.Min, row.Max, row.Relative)
	}
	return buf.Bytes(), nil
}
