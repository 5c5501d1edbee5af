// Package viz ranks chart recommendations from the classified column set.
package viz

import (
	"fmt"
	"sort"

	"github.com/ledgerscope/ledgerscope/internal/model"
)

const maxRecommendations = 6

// Chart type identifiers shared with the rendering collaborator.
const (
	ChartLine          = "line"
	ChartArea          = "area"
	ChartBar           = "bar"
	ChartPie           = "pie"
	ChartHorizontalBar = "horizontalBar"
	ChartStackedBar    = "stackedBar"
)

// maxLineSeries caps how many measures a single trend chart plots.
const maxLineSeries = 4

// Recommend produces up to six chart recommendations sorted by priority
// ascending. Lower priority numbers are stronger suggestions.
func Recommend(columns []model.ClassifiedColumn, rowCount int) []model.VizRecommendation {
	var dates, measures, dimensions []model.ClassifiedColumn
	for _, c := range columns {
		switch c.Role {
		case model.RoleDate:
			dates = append(dates, c)
		case model.RoleMeasure:
			measures = append(measures, c)
		case model.RoleDimension:
			dimensions = append(dimensions, c)
		}
	}

	recs := make([]model.VizRecommendation, 0, maxRecommendations)

	// Time trend: a line over the first date column, plus a softer area
	// rendition of the first measure.
	if len(dates) > 0 && len(measures) > 0 {
		series := measures
		if len(series) > maxLineSeries {
			series = series[:maxLineSeries]
		}
		cols := []string{dates[0].Name}
		for _, m := range series {
			cols = append(cols, m.Name)
		}
		title := fmt.Sprintf("%s over time", series[0].Name)
		if len(series) > 1 {
			title = fmt.Sprintf("%d measures over time", len(series))
		}
		recs = append(recs, model.VizRecommendation{
			ID:          "line-trend",
			Type:        ChartLine,
			Title:       title,
			Description: fmt.Sprintf("Trend of %d measure(s) across %s", len(series), dates[0].Name),
			Columns:     cols,
			Priority:    1,
		})
		recs = append(recs, model.VizRecommendation{
			ID:          "area-trend",
			Type:        ChartArea,
			Title:       fmt.Sprintf("Cumulative view of %s", measures[0].Name),
			Description: fmt.Sprintf("Area chart of %s across %s", measures[0].Name, dates[0].Name),
			Columns:     []string{dates[0].Name, measures[0].Name},
			Priority:    4,
		})
	}

	// Dimension breakdowns for the first two dimensions x first two measures.
	for di, d := range capSlice(dimensions, 2) {
		for mi, m := range capSlice(measures, 2) {
			if d.UniqueCount <= 8 {
				recs = append(recs,
					model.VizRecommendation{
						ID:          fmt.Sprintf("bar-%d-%d", di, mi),
						Type:        ChartBar,
						Title:       fmt.Sprintf("%s by %s", m.Name, d.Name),
						Description: fmt.Sprintf("Compare %s across %s values", m.Name, d.Name),
						Columns:     []string{d.Name, m.Name},
						Priority:    2,
					},
					model.VizRecommendation{
						ID:          fmt.Sprintf("pie-%d-%d", di, mi),
						Type:        ChartPie,
						Title:       fmt.Sprintf("%s share by %s", m.Name, d.Name),
						Description: fmt.Sprintf("Share of %s per %s", m.Name, d.Name),
						Columns:     []string{d.Name, m.Name},
						Priority:    3,
					})
			} else {
				recs = append(recs, model.VizRecommendation{
					ID:          fmt.Sprintf("topn-%d-%d", di, mi),
					Type:        ChartHorizontalBar,
					Title:       fmt.Sprintf("Top %s by %s", d.Name, m.Name),
					Description: fmt.Sprintf("%s has %d distinct values; showing the largest", d.Name, d.UniqueCount),
					Columns:     []string{d.Name, m.Name},
					Priority:    2,
				})
			}
		}
	}

	// Stacked comparison across two dimensions.
	if len(dimensions) >= 2 && len(measures) >= 1 &&
		dimensions[0].UniqueCount <= 12 && dimensions[1].UniqueCount <= 8 {
		recs = append(recs, model.VizRecommendation{
			ID:          "stacked-bar",
			Type:        ChartStackedBar,
			Title:       fmt.Sprintf("%s by %s and %s", measures[0].Name, dimensions[0].Name, dimensions[1].Name),
			Description: fmt.Sprintf("Stacked %s split by %s within %s", measures[0].Name, dimensions[1].Name, dimensions[0].Name),
			Columns:     []string{dimensions[0].Name, dimensions[1].Name, measures[0].Name},
			Priority:    3,
		})
	}

	// Nothing categorical at all: compare the measures against each other.
	if len(dimensions) == 0 && len(dates) == 0 && len(measures) >= 2 {
		cols := make([]string, 0, len(measures))
		for _, m := range measures {
			cols = append(cols, m.Name)
		}
		recs = append(recs, model.VizRecommendation{
			ID:          "measure-compare",
			Type:        ChartBar,
			Title:       "Compare measures side by side",
			Description: fmt.Sprintf("Totals of %d numeric columns over %d rows", len(measures), rowCount),
			Columns:     cols,
			Priority:    4,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Priority < recs[j].Priority })
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func capSlice(cols []model.ClassifiedColumn, n int) []model.ClassifiedColumn {
	if len(cols) > n {
		return cols[:n]
	}
	return cols
}
