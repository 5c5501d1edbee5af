package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

var delimiters = []rune{',', ';', '\t', '|'}

// readCSV parses a delimited text file. The delimiter is sniffed from the
// header line, a UTF-8 BOM is stripped, and ragged rows are accepted.
func readCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	firstLine, err := br.ReadString('\n')
	if err != nil && firstLine == "" {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	firstLine = strings.TrimPrefix(firstLine, "\ufeff")

	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("failed to rewind file: %w", err)
	}

	reader := csv.NewReader(bomTrimmedReader(f))
	reader.Comma = sniffDelimiter(firstLine)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	table := &Table{Headers: records[0], Rows: records[1:]}
	return table.trim()
}

// sniffDelimiter picks the candidate delimiter occurring most often in the
// header line, defaulting to comma.
func sniffDelimiter(header string) rune {
	best, bestCount := ',', 0
	for _, d := range delimiters {
		if count := strings.Count(header, string(d)); count > bestCount {
			best, bestCount = d, count
		}
	}
	return best
}

// bomTrimmedReader strips a leading UTF-8 BOM if present.
func bomTrimmedReader(f *os.File) *bufio.Reader {
	br := bufio.NewReader(f)
	if bom, err := br.Peek(3); err == nil && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		br.Discard(3)
	}
	return br
}
