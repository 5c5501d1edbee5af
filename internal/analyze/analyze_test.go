package analyze

import (
	"testing"

	"github.com/ledgerscope/ledgerscope/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeStatementTable(t *testing.T) {
	headers := []string{"Date", "Category", "Amount"}
	rows := [][]string{
		{"2024-01-05", "Travel", "2500"},
		{"2024-01-08", "Travel", "1500"},
		{"2024-01-12", "Food", "1200"},
		{"2024-01-15", "Food", "800"},
		{"2024-01-20", "Transport", "600"},
		{"2024-01-25", "Transport", "400"},
	}

	result := Analyze(headers, rows, nil)

	assert.Equal(t, 6, result.RowCount)
	require.Len(t, result.Columns, 3)
	assert.Equal(t, model.RoleDate, result.Columns[0].Role)
	assert.Equal(t, model.RoleDimension, result.Columns[1].Role)
	assert.Equal(t, model.RoleMeasure, result.Columns[2].Role)

	require.NotNil(t, result.Plan)
	assert.Equal(t, "Category", result.Plan.Primary)
	require.NotEmpty(t, result.Plan.Groups)
	assert.Equal(t, "Travel", result.Plan.Groups[0].Key)
	assert.InDelta(t, 4000.0, result.Plan.Groups[0].Aggregates["Amount"], 1e-9)

	assert.NotEmpty(t, result.Visualizations)
	for i := 1; i < len(result.Visualizations); i++ {
		assert.LessOrEqual(t, result.Visualizations[i-1].Priority, result.Visualizations[i].Priority)
	}

	// Travel carries 57.1% of the total, past the half mark.
	var top *model.Insight
	for i := range result.Insights {
		if result.Insights[i].ID == "top-contributor" {
			top = &result.Insights[i]
		}
	}
	require.NotNil(t, top)
	assert.Equal(t, model.SeverityCritical, top.Severity)
	assert.InDelta(t, 57.14, top.Value, 0.01)

	assert.InDelta(t, 100.0, result.Quality.Completeness, 1e-9)
	assert.Empty(t, result.Quality.Issues)
	assert.Equal(t, 0, result.Quality.UnclassifiedColumns)
}

func TestAnalyzeFlagsSparseColumns(t *testing.T) {
	headers := []string{"Name", "Notes"}
	rows := [][]string{
		{"alpha", ""},
		{"beta", ""},
		{"gamma", ""},
		{"delta", ""},
		{"epsilon", ""},
		{"zeta", ""},
		{"eta", ""},
		{"theta", ""},
		{"iota", ""},
		{"kappa", "one note"},
	}

	result := Analyze(headers, rows, nil)

	require.Len(t, result.Quality.Issues, 1)
	assert.Equal(t, "Notes", result.Quality.Issues[0].Column)
	assert.Contains(t, result.Quality.Issues[0].Message, "90% empty")
	assert.InDelta(t, 55.0, result.Quality.Completeness, 1e-9)
}

func TestAnalyzeRespectsOverrides(t *testing.T) {
	headers := []string{"Code", "Value"}
	rows := [][]string{
		{"A1", "10"},
		{"B2", "20"},
		{"C3", "30"},
	}

	result := Analyze(headers, rows, map[int]model.ColumnRole{0: model.RoleDimension})
	assert.Equal(t, model.RoleDimension, result.Columns[0].Role)
}

func TestAnalyzeEmptyTable(t *testing.T) {
	result := Analyze([]string{"A"}, nil, nil)
	assert.Equal(t, 0, result.RowCount)
	assert.Nil(t, result.Plan)
	assert.Empty(t, result.Quality.Issues)
}
