package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX loads the first sheet that has a header row plus data. Cells are
// returned as formatted strings, so dates may arrive as serial numbers.
func readXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) < 2 {
			continue
		}
		table := &Table{Headers: rows[0], Rows: rows[1:]}
		return table.trim()
	}

	return nil, fmt.Errorf("no sheet with data found in %s", path)
}
