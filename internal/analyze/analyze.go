package analyze

import (
	"fmt"

	"github.com/ledgerscope/ledgerscope/internal/aggregate"
	"github.com/ledgerscope/ledgerscope/internal/classify"
	"github.com/ledgerscope/ledgerscope/internal/insight"
	"github.com/ledgerscope/ledgerscope/internal/model"
	"github.com/ledgerscope/ledgerscope/internal/viz"
)

const (
	sparseColumnPct = 30.0
	emptyColumnPct  = 90.0
)

// Analyze runs the full single-table pipeline: column classification,
// chart recommendations, the grouping plan, insights, and a data-quality
// summary. Overrides pin a column index to a role before classification.
func Analyze(headers []string, rows [][]string, overrides map[int]model.ColumnRole) model.AnalysisResult {
	columns := classify.Columns(headers, rows, overrides)

	result := model.AnalysisResult{
		Columns:        columns,
		Visualizations: viz.Recommend(columns, len(rows)),
		Plan:           aggregate.BuildPlan(columns, rows),
		Quality:        assessQuality(columns, len(rows)),
		RowCount:       len(rows),
	}
	result.Insights = insight.Generate(result.Plan, columns, rows)

	return result
}

// assessQuality computes overall cell completeness and flags columns that
// are mostly empty or could not be classified.
func assessQuality(columns []model.ClassifiedColumn, totalRows int) model.DataQuality {
	quality := model.DataQuality{Issues: []model.QualityIssue{}}

	if totalRows == 0 || len(columns) == 0 {
		return quality
	}

	totalCells := totalRows * len(columns)
	nullCells := 0
	for _, col := range columns {
		nullCells += col.NullCount

		missingPct := float64(col.NullCount) / float64(totalRows) * 100
		switch {
		case missingPct >= emptyColumnPct:
			quality.Issues = append(quality.Issues, model.QualityIssue{
				Column:  col.Name,
				Message: fmt.Sprintf("column is %.0f%% empty", missingPct),
			})
		case missingPct > sparseColumnPct:
			quality.Issues = append(quality.Issues, model.QualityIssue{
				Column:  col.Name,
				Message: fmt.Sprintf("column is missing %.0f%% of its values", missingPct),
			})
		}

		if col.Role == model.RoleUnknown {
			quality.UnclassifiedColumns++
		}
	}

	quality.Completeness = float64(totalCells-nullCells) / float64(totalCells) * 100
	return quality
}
