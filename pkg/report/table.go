// Package report turns scan records into the output artifacts: a
// rectangular table written to a spreadsheet, and an optional JSON
// sidecar for downstream tooling.
package report

import (
	"fmt"

	"github.com/matzehuels/licensetower/pkg/scan"
)

// fixedColumns lead every report, followed by one column per chunk index.
var fixedColumns = []string{"Path", "Homepage", "Name", "License", "Version"}

// Table is a rectangular view of scan records: records with fewer chunks
// than the widest one are right-padded with empty cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Build normalizes records into a Table. The chunk column count is the
// maximum chunk count across all records; an empty record set still gets
// the fixed header plus one chunk column, with zero data rows.
func Build(records []scan.Record) *Table {
	if len(records) == 0 {
		return &Table{Columns: append(append([]string{}, fixedColumns...), chunkColumns(1)...)}
	}

	maxChunks := 0
	for _, r := range records {
		if len(r.Chunks) > maxChunks {
			maxChunks = len(r.Chunks)
		}
	}

	t := &Table{
		Columns: append(append([]string{}, fixedColumns...), chunkColumns(maxChunks)...),
		Rows:    make([][]string, 0, len(records)),
	}
	for _, r := range records {
		row := make([]string, 0, len(t.Columns))
		row = append(row, r.Path, r.Homepage, r.Name, r.License, r.Version)
		row = append(row, r.Chunks...)
		for len(row) < len(t.Columns) {
			row = append(row, "")
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// chunkColumns names the variable-width tail: License_Chunk_1..n.
func chunkColumns(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = fmt.Sprintf("License_Chunk_%d", i+1)
	}
	return cols
}
