// Package classify infers per-column semantics from sampled table data: a
// role ladder for arbitrary tables and a slot mapper for bank statements.
package classify

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/ledgerscope/ledgerscope/internal/model"
	"github.com/ledgerscope/ledgerscope/internal/parse"
)

// sampleSize caps how many rows feed role inference. Unique and null counts
// still scan every row; re-deriving roles from full data would change
// outcomes on large tables, so the split stays.
const sampleSize = 100

const maxTopValues = 10

var (
	dateNamePattern       = regexp.MustCompile(`(?i)(date|time|day|month|year|^dt$|_dt$)`)
	measureNamePattern    = regexp.MustCompile(`(?i)(amount|amt|total|sum|value|price|cost|balance|debit|credit|qty|quantity|count|rate|fee|charge|spend)`)
	identifierNamePattern = regexp.MustCompile(`(?i)(^id$|_id$|\bid\b|number$|\bno\.?$|ref|reference|^code$|account|invoice|txn)`)
)

// Columns classifies every column of the table. Overrides are keyed by
// column index and force the role unconditionally; absent index means no
// override.
func Columns(headers []string, rows [][]string, overrides map[int]model.ColumnRole) []model.ClassifiedColumn {
	columns := make([]model.ClassifiedColumn, 0, len(headers))
	for i, header := range headers {
		columns = append(columns, classifyColumn(header, i, rows, overrides))
	}
	return columns
}

func classifyColumn(header string, index int, rows [][]string, overrides map[int]model.ColumnRole) model.ClassifiedColumn {
	sample := sampleValues(rows, index)

	nonEmpty := make([]string, 0, len(sample))
	for _, v := range sample {
		if strings.TrimSpace(v) != "" {
			nonEmpty = append(nonEmpty, v)
		}
	}

	dateCount := 0
	numericCount := 0
	for _, v := range nonEmpty {
		if parse.Date(v) != "" {
			dateCount++
		}
		if parse.IsNumericText(v) {
			numericCount++
		}
	}

	uniqueCount, nullCount := countUniqueAndNull(rows, index)

	col := model.ClassifiedColumn{
		Name:         header,
		Index:        index,
		Role:         model.RoleUnknown,
		DataType:     dataTypeOf(len(nonEmpty), dateCount, numericCount),
		UniqueCount:  uniqueCount,
		NullCount:    nullCount,
		SampleValues: firstDistinct(nonEmpty, 5),
	}

	if role, ok := overrides[index]; ok {
		col.Role = role
	} else {
		col.Role = inferRole(header, len(rows), uniqueCount, len(nonEmpty), dateCount, numericCount)
	}

	switch col.Role {
	case model.RoleMeasure:
		col.Stats = measureStats(rows, index, nonEmpty)
	case model.RoleDimension:
		col.TopValues = topValues(rows, index)
	}

	return col
}

// inferRole walks the priority ladder; the first matching rule wins.
func inferRole(header string, totalRows, uniqueCount, nonEmpty, dateCount, numericCount int) model.ColumnRole {
	dateRatio := ratio(dateCount, nonEmpty)
	numericRatio := ratio(numericCount, nonEmpty)

	switch {
	case dateRatio >= 0.6:
		return model.RoleDate
	case dateNamePattern.MatchString(header) && dateRatio >= 0.3:
		return model.RoleDate
	case numericRatio >= 0.7 && uniqueCount > 5:
		return model.RoleMeasure
	case measureNamePattern.MatchString(header) && numericRatio >= 0.5:
		return model.RoleMeasure
	case numericRatio >= 0.7:
		// Coded numeric with few distinct values acts as a category.
		return model.RoleDimension
	case identifierNamePattern.MatchString(header),
		totalRows > 0 && uniqueCount > 10 && float64(uniqueCount) > 0.9*float64(totalRows):
		return model.RoleIdentifier
	case nonEmpty > 0 && (float64(uniqueCount) <= 0.6*float64(totalRows) || uniqueCount <= 5):
		return model.RoleDimension
	case nonEmpty > 0:
		return model.RoleIdentifier
	default:
		return model.RoleUnknown
	}
}

func dataTypeOf(nonEmpty, dateCount, numericCount int) model.DataType {
	if nonEmpty == 0 {
		return model.TypeString
	}
	switch {
	case ratio(dateCount, nonEmpty) >= 0.6:
		return model.TypeDate
	case ratio(numericCount, nonEmpty) >= 0.7:
		return model.TypeNumber
	case dateCount > 0 || numericCount > 0:
		return model.TypeMixed
	default:
		return model.TypeString
	}
}

// measureStats prefers the full-table numeric re-parse; if too few cells
// parse there, the sampled values carry the stats instead.
func measureStats(rows [][]string, index int, sampleNonEmpty []string) *model.ColumnStats {
	full := numericValues(rows, index, len(rows))
	if float64(len(full)) > 0.7*float64(len(sampleNonEmpty)) {
		return computeStats(full)
	}

	sampled := make([]float64, 0, len(sampleNonEmpty))
	for _, v := range sampleNonEmpty {
		if parse.IsNumericText(v) {
			sampled = append(sampled, parse.Amount(v))
		}
	}
	return computeStats(sampled)
}

func numericValues(rows [][]string, index, limit int) []float64 {
	values := make([]float64, 0, limit)
	for r := 0; r < limit && r < len(rows); r++ {
		v := cellAt(rows[r], index)
		if parse.IsNumericText(v) {
			values = append(values, parse.Amount(v))
		}
	}
	return values
}

func computeStats(values []float64) *model.ColumnStats {
	stats := &model.ColumnStats{Count: len(values)}
	if len(values) == 0 {
		return stats
	}

	stats.Min = values[0]
	stats.Max = values[0]
	for _, v := range values {
		stats.Sum += v
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
	}
	stats.Avg = stats.Sum / float64(len(values))

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		stats.Median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		stats.Median = sorted[mid]
	}

	var sumSq float64
	for _, v := range values {
		d := v - stats.Avg
		sumSq += d * d
	}
	stats.StdDev = math.Sqrt(sumSq / float64(len(values)))

	return stats
}

// topValues counts every non-empty cell across the full table and returns
// the ten most frequent, ties kept in first-seen order.
func topValues(rows [][]string, index int) []model.ValueCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, row := range rows {
		v := strings.TrimSpace(cellAt(row, index))
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	result := make([]model.ValueCount, 0, len(order))
	for _, v := range order {
		result = append(result, model.ValueCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	if len(result) > maxTopValues {
		result = result[:maxTopValues]
	}
	return result
}

func countUniqueAndNull(rows [][]string, index int) (unique, null int) {
	seen := make(map[string]struct{})
	for _, row := range rows {
		v := strings.TrimSpace(cellAt(row, index))
		if v == "" {
			null++
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen), null
}

func sampleValues(rows [][]string, index int) []string {
	n := len(rows)
	if n > sampleSize {
		n = sampleSize
	}
	values := make([]string, 0, n)
	for r := 0; r < n; r++ {
		values = append(values, cellAt(rows[r], index))
	}
	return values
}

func firstDistinct(values []string, limit int) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, limit)
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}

// cellAt tolerates ragged rows: a missing cell reads as empty.
func cellAt(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}

func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}
