package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ledgerscope/ledgerscope/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadTableCommaCSV(t *testing.T) {
	path := writeFile(t, "statement.csv",
		"Date,Description,Amount\n2024-01-15,UPI-SWIGGY,-450.00\n2024-01-16,SALARY,50000\n")

	table, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "UPI-SWIGGY", table.Rows[0][1])
}

func TestReadTableSniffsSemicolon(t *testing.T) {
	path := writeFile(t, "statement.csv",
		"Date;Description;Amount\n2024-01-15;Coffee;-120\n")

	table, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, table.Headers)
	assert.Equal(t, "Coffee", table.Rows[0][1])
}

func TestReadTableSniffsTab(t *testing.T) {
	path := writeFile(t, "statement.tsv",
		"Date\tAmount\n2024-01-15\t100\n")

	table, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Amount"}, table.Headers)
}

func TestReadTableStripsBOM(t *testing.T) {
	path := writeFile(t, "statement.csv",
		"\ufeffDate,Amount\n2024-01-15,100\n")

	table, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, "Date", table.Headers[0])
}

func TestReadTableDropsEmptyRows(t *testing.T) {
	path := writeFile(t, "statement.csv",
		"Date,Amount\n2024-01-15,100\n,\n \n")

	table, err := ReadTable(path)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}

func TestReadTableRaggedRows(t *testing.T) {
	path := writeFile(t, "statement.csv",
		"Date,Description,Amount\n2024-01-15,Coffee\n2024-01-16,Lunch,250,extra\n")

	table, err := ReadTable(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Len(t, table.Rows[0], 2)
	assert.Len(t, table.Rows[1], 4)
}

func TestReadTableUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "statement.pdf", "not a table")

	_, err := ReadTable(path)
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestReadTableHeaderOnly(t *testing.T) {
	path := writeFile(t, "statement.csv", "Date,Amount\n")

	_, err := ReadTable(path)
	assert.ErrorIs(t, err, common.ErrEmptyTable)
}
