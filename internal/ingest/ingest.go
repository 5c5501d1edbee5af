// Package ingest reads tabular statement files into headers and rows.
package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledgerscope/ledgerscope/internal/common"
)

// Table is a raw tabular file: one header row and the data rows beneath it.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ReadTable loads a statement file, dispatching on its extension. CSV, TSV
// and XLSX are supported.
func ReadTable(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return readCSV(path)
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// trim drops fully empty trailing rows and normalizes the header cells.
func (t *Table) trim() (*Table, error) {
	for i := range t.Headers {
		t.Headers[i] = strings.TrimSpace(t.Headers[i])
	}

	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		empty := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	t.Rows = rows

	if len(t.Rows) == 0 {
		return nil, common.ErrEmptyTable
	}
	return t, nil
}
