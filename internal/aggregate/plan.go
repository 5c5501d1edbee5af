package aggregate

import (
	"sort"
	"strings"

	"github.com/ledgerscope/ledgerscope/internal/model"
	"github.com/ledgerscope/ledgerscope/internal/parse"
)

// EmptyKey is the bucket for rows with a blank primary or secondary cell.
const EmptyKey = "(empty)"

// BuildPlan derives the two-level grouping plan for a classified table.
// The primary dimension is the dimension column with the fewest distinct
// values; the first remaining dimension column, if any, becomes the
// secondary level. Returns nil when no dimension column exists.
func BuildPlan(columns []model.ClassifiedColumn, rows [][]string) *model.GroupingPlan {
	dimensions := make([]model.ClassifiedColumn, 0)
	measures := make([]model.ClassifiedColumn, 0)
	for _, c := range columns {
		switch c.Role {
		case model.RoleDimension:
			dimensions = append(dimensions, c)
		case model.RoleMeasure:
			measures = append(measures, c)
		}
	}
	if len(dimensions) == 0 {
		return nil
	}

	primary := dimensions[0]
	for _, d := range dimensions[1:] {
		if d.UniqueCount < primary.UniqueCount {
			primary = d
		}
	}

	var secondary *model.ClassifiedColumn
	for i := range dimensions {
		if dimensions[i].Index != primary.Index {
			secondary = &dimensions[i]
			break
		}
	}

	measureNames := make([]string, 0, len(measures))
	for _, m := range measures {
		measureNames = append(measureNames, m.Name)
	}

	plan := &model.GroupingPlan{
		Primary:  primary.Name,
		Measures: measureNames,
		Groups:   groupRows(rows, allIndices(rows), primary.Index, measures),
	}

	if secondary != nil {
		plan.Secondary = secondary.Name
		for i := range plan.Groups {
			plan.Groups[i].Children = groupRows(rows, plan.Groups[i].RowIndices, secondary.Index, measures)
		}
	}

	return plan
}

// groupRows buckets the given row indices by one column, summing every
// measure per bucket. Buckets sort by the first measure's total descending,
// falling back to row count when there are no measures.
func groupRows(rows [][]string, indices []int, column int, measures []model.ClassifiedColumn) []model.GroupNode {
	order := make([]string, 0)
	byKey := make(map[string]*model.GroupNode)

	for _, r := range indices {
		key := strings.TrimSpace(cellAt(rows[r], column))
		if key == "" {
			key = EmptyKey
		}

		node, ok := byKey[key]
		if !ok {
			node = &model.GroupNode{
				Key:        key,
				Label:      key,
				Aggregates: make(map[string]float64, len(measures)),
			}
			byKey[key] = node
			order = append(order, key)
		}

		node.RowIndices = append(node.RowIndices, r)
		node.Count++
		for _, m := range measures {
			node.Aggregates[m.Name] += parse.Amount(cellAt(rows[r], m.Index))
		}
	}

	groups := make([]model.GroupNode, 0, len(order))
	for _, key := range order {
		groups = append(groups, *byKey[key])
	}

	if len(measures) > 0 {
		first := measures[0].Name
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].Aggregates[first] > groups[j].Aggregates[first]
		})
	} else {
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].Count > groups[j].Count
		})
	}

	return groups
}

func allIndices(rows [][]string) []int {
	indices := make([]int, len(rows))
	for i := range rows {
		indices[i] = i
	}
	return indices
}

func cellAt(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}
