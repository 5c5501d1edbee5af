// Package insight turns grouping plans and column statistics into ranked
// natural-language observations.
package insight

import (
	"fmt"
	"math"
	"sort"

	"github.com/ledgerscope/ledgerscope/internal/model"
	"github.com/ledgerscope/ledgerscope/internal/parse"
)

// Generation thresholds. Percentages are on a 0..100 scale.
const (
	topShareCritical     = 50.0
	concentrationShare   = 70.0
	dominantShare        = 40.0
	dominantCritical     = 60.0
	outlierMaxFraction   = 0.05
	trendMinDatedRows    = 6
	trendMinChange       = 15.0
	trendCriticalChange  = 30.0
	outlierStdDevFactor  = 2.0
	concentrationMinSize = 3
)

// Generate produces the single-table insights. Each insight is independent
// and conditional; an empty result is normal for thin data.
func Generate(plan *model.GroupingPlan, columns []model.ClassifiedColumn, rows [][]string) []model.Insight {
	measures := make([]model.ClassifiedColumn, 0)
	var dateCol *model.ClassifiedColumn
	for i, c := range columns {
		switch c.Role {
		case model.RoleMeasure:
			measures = append(measures, c)
		case model.RoleDate:
			if dateCol == nil {
				dateCol = &columns[i]
			}
		}
	}

	insights := make([]model.Insight, 0)
	insights = appendGroupInsights(insights, plan)
	insights = appendOutlierInsights(insights, measures, rows)
	insights = appendTrendInsight(insights, dateCol, measures, rows)
	insights = appendMeasureComparison(insights, measures)

	// Critical findings surface first; otherwise keep generation order.
	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Severity == model.SeverityCritical && insights[j].Severity != model.SeverityCritical
	})
	return insights
}

func appendGroupInsights(insights []model.Insight, plan *model.GroupingPlan) []model.Insight {
	if plan == nil || len(plan.Groups) == 0 || len(plan.Measures) == 0 {
		return insights
	}
	measure := plan.Measures[0]

	var total float64
	for _, g := range plan.Groups {
		total += g.Aggregates[measure]
	}
	if total <= 0 {
		return insights
	}

	top := plan.Groups[0]
	topShare := top.Aggregates[measure] / total * 100
	severity := model.SeverityNotable
	if topShare > topShareCritical {
		severity = model.SeverityCritical
	}
	insights = append(insights, model.Insight{
		ID:       "top-contributor",
		Title:    fmt.Sprintf("%s leads %s", top.Label, plan.Primary),
		Description: fmt.Sprintf("%s accounts for %.1f%% of total %s (%.2f of %.2f)",
			top.Label, topShare, measure, top.Aggregates[measure], total),
		Severity: severity,
		Value:    topShare,
	})

	if len(plan.Groups) >= concentrationMinSize {
		var top3 float64
		for i := 0; i < 3; i++ {
			top3 += plan.Groups[i].Aggregates[measure]
		}
		top3Share := top3 / total * 100
		if top3Share > concentrationShare {
			insights = append(insights, model.Insight{
				ID:    "concentration",
				Title: fmt.Sprintf("Concentrated %s", plan.Primary),
				Description: fmt.Sprintf("The top 3 %s values hold %.1f%% of total %s",
					plan.Primary, top3Share, measure),
				Severity: model.SeverityNotable,
				Value:    top3Share,
			})
		}
	}

	for _, g := range plan.Groups {
		share := g.Aggregates[measure] / total * 100
		if share > dominantShare {
			severity := model.SeverityNotable
			if share > dominantCritical {
				severity = model.SeverityCritical
			}
			insights = append(insights, model.Insight{
				ID:       "dominant-category",
				Title:    fmt.Sprintf("%s dominates", g.Label),
				Description: fmt.Sprintf("%s alone holds %.1f%% of %s across %s",
					g.Label, share, measure, plan.Primary),
				Severity: severity,
				Value:    share,
			})
			break
		}
	}

	return insights
}

// appendOutlierInsights flags measures with a handful of values far above
// the mean. Too many flagged rows means the distribution is just wide, so
// anything beyond 5% of rows is suppressed.
func appendOutlierInsights(insights []model.Insight, measures []model.ClassifiedColumn, rows [][]string) []model.Insight {
	for _, m := range measures {
		if m.Stats == nil || m.Stats.StdDev == 0 || len(rows) == 0 {
			continue
		}
		threshold := m.Stats.Avg + outlierStdDevFactor*m.Stats.StdDev

		outliers := 0
		for _, row := range rows {
			v := cellAt(row, m.Index)
			if parse.IsNumericText(v) && parse.Amount(v) > threshold {
				outliers++
			}
		}

		maxOutliers := int(math.Floor(outlierMaxFraction * float64(len(rows))))
		if outliers == 0 || outliers > maxOutliers {
			continue
		}
		insights = append(insights, model.Insight{
			ID:    "outliers-" + m.Name,
			Title: fmt.Sprintf("Unusual values in %s", m.Name),
			Description: fmt.Sprintf("%d value(s) in %s exceed %.2f (average %.2f plus two standard deviations)",
				outliers, m.Name, threshold, m.Stats.Avg),
			Severity: model.SeverityNotable,
			Value:    float64(outliers),
		})
	}
	return insights
}

// appendTrendInsight compares the chronological first and second halves of
// the first measure and reports a sustained move.
func appendTrendInsight(insights []model.Insight, dateCol *model.ClassifiedColumn, measures []model.ClassifiedColumn, rows [][]string) []model.Insight {
	if dateCol == nil || len(measures) == 0 {
		return insights
	}
	measure := measures[0]

	type dated struct {
		date  string
		value float64
	}
	points := make([]dated, 0, len(rows))
	for _, row := range rows {
		d := parse.Date(cellAt(row, dateCol.Index))
		if d == "" {
			continue
		}
		points = append(points, dated{date: d, value: parse.Amount(cellAt(row, measure.Index))})
	}
	if len(points) < trendMinDatedRows {
		return insights
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].date < points[j].date })

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.value
	}
	half := len(values) / 2
	firstAvg := mean(values[:half])
	secondAvg := mean(values[half:])
	if firstAvg == 0 {
		return insights
	}

	change := (secondAvg - firstAvg) / firstAvg * 100
	if math.Abs(change) <= trendMinChange {
		return insights
	}

	severity := model.SeverityNotable
	if math.Abs(change) > trendCriticalChange {
		severity = model.SeverityCritical
	}
	direction := "rising"
	if change < 0 {
		direction = "falling"
	}
	insights = append(insights, model.Insight{
		ID:    "trend-" + measure.Name,
		Title: fmt.Sprintf("%s is %s", measure.Name, direction),
		Description: fmt.Sprintf("Average %s moved %.1f%% between the earlier and later halves of the data (%.2f to %.2f)",
			measure.Name, change, firstAvg, secondAvg),
		Severity: severity,
		Value:    change,
	})
	return insights
}

func appendMeasureComparison(insights []model.Insight, measures []model.ClassifiedColumn) []model.Insight {
	if len(measures) < 2 {
		return insights
	}

	highest, lowest := -1, -1
	for i, m := range measures {
		if m.Stats == nil {
			continue
		}
		if highest == -1 || m.Stats.Sum > measures[highest].Stats.Sum {
			highest = i
		}
		if lowest == -1 || m.Stats.Sum < measures[lowest].Stats.Sum {
			lowest = i
		}
	}
	if highest == -1 || highest == lowest {
		return insights
	}

	hi, lo := measures[highest], measures[lowest]
	insights = append(insights, model.Insight{
		ID:    "measure-comparison",
		Title: fmt.Sprintf("%s outweighs %s", hi.Name, lo.Name),
		Description: fmt.Sprintf("%s totals %.2f against %.2f for %s",
			hi.Name, hi.Stats.Sum, lo.Stats.Sum, lo.Name),
		Severity: model.SeverityNotable,
		Value:    hi.Stats.Sum - lo.Stats.Sum,
	})
	return insights
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func cellAt(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}
