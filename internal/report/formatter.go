// Package report renders analysis results for terminal display.
package report

import (
	"fmt"
	"strings"

	"github.com/ledgerscope/ledgerscope/internal/cli"
	"github.com/ledgerscope/ledgerscope/internal/model"
)

const maxGroupsShown = 8

// CLIFormatter renders reports for terminal display.
type CLIFormatter struct{}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter() *CLIFormatter {
	return &CLIFormatter{}
}

// FormatAnalysis renders a single-table analysis as styled terminal text.
func (f *CLIFormatter) FormatAnalysis(result *model.AnalysisResult) string {
	if result == nil {
		return cli.FormatError("No analysis available")
	}

	var sections []string

	sections = append(sections, cli.FormatTitle(fmt.Sprintf("Analysis of %d rows", result.RowCount)))
	sections = append(sections, f.formatColumns(result.Columns))

	if result.Plan != nil {
		sections = append(sections, f.formatPlan(result.Plan))
	}
	if len(result.Insights) > 0 {
		sections = append(sections, f.formatInsights(result.Insights))
	}
	if len(result.Visualizations) > 0 {
		sections = append(sections, f.formatVisualizations(result.Visualizations))
	}
	sections = append(sections, f.formatQuality(result.Quality))

	return strings.Join(sections, "\n\n")
}

// FormatIntelligence renders the multi-month financial report.
func (f *CLIFormatter) FormatIntelligence(report model.FinancialIntelligence) string {
	var sections []string

	sections = append(sections, cli.FormatTitle("Financial Report"))

	if report.Comparison != nil {
		sections = append(sections, f.formatComparison(report.Comparison))
	}
	if len(report.Insights) > 0 {
		sections = append(sections, f.formatInsights(report.Insights))
	}
	if len(report.Anomalies) > 0 {
		sections = append(sections, f.formatAnomalies(report.Anomalies))
	}
	if len(report.Predictions) > 0 {
		sections = append(sections, f.formatPredictions(report.Predictions))
	}
	if len(report.Recommendations) > 0 {
		sections = append(sections, f.formatRecommendations(report.Recommendations))
	}

	return strings.Join(sections, "\n\n")
}

func (f *CLIFormatter) formatColumns(columns []model.ClassifiedColumn) string {
	var lines []string
	lines = append(lines, cli.TableHeaderStyle.Render("Columns"))
	for _, col := range columns {
		line := fmt.Sprintf("%-24s %-12s %-8s unique=%d null=%d",
			col.Name, col.Role, col.DataType, col.UniqueCount, col.NullCount)
		if col.Stats != nil {
			line += fmt.Sprintf("  sum=%.2f avg=%.2f", col.Stats.Sum, col.Stats.Avg)
		}
		lines = append(lines, cli.TableCellStyle.Render(line))
	}
	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatPlan(plan *model.GroupingPlan) string {
	var lines []string
	title := fmt.Sprintf("Breakdown by %s", plan.Primary)
	if plan.Secondary != "" {
		title += fmt.Sprintf(" and %s", plan.Secondary)
	}
	lines = append(lines, cli.TableHeaderStyle.Render(title))

	groups := plan.Groups
	if len(groups) > maxGroupsShown {
		groups = groups[:maxGroupsShown]
	}
	for _, g := range groups {
		line := fmt.Sprintf("%-24s %5d rows", g.Label, g.Count)
		for _, measure := range plan.Measures {
			line += fmt.Sprintf("  %s=%.2f", measure, g.Aggregates[measure])
		}
		lines = append(lines, cli.TableCellStyle.Render(line))
	}
	if len(plan.Groups) > maxGroupsShown {
		lines = append(lines, cli.SubtleStyle.Render(
			fmt.Sprintf("… and %d more groups", len(plan.Groups)-maxGroupsShown)))
	}
	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatInsights(insights []model.Insight) string {
	var lines []string
	lines = append(lines, cli.TableHeaderStyle.Render("Insights"))
	for _, ins := range insights {
		text := fmt.Sprintf("%s — %s", ins.Title, ins.Description)
		if ins.Severity == model.SeverityCritical {
			lines = append(lines, cli.FormatWarning(text))
		} else {
			lines = append(lines, cli.TableCellStyle.Render(text))
		}
	}
	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatVisualizations(vizzes []model.VizRecommendation) string {
	var lines []string
	lines = append(lines, cli.TableHeaderStyle.Render("Suggested charts"))
	for _, v := range vizzes {
		lines = append(lines, cli.TableCellStyle.Render(
			fmt.Sprintf("%s %-14s %s", cli.ChartIcon, v.Type, v.Title)))
	}
	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatQuality(quality model.DataQuality) string {
	var lines []string
	lines = append(lines, cli.TableHeaderStyle.Render("Data quality"))
	lines = append(lines, cli.TableCellStyle.Render(
		fmt.Sprintf("Completeness %.1f%%, %d unclassified columns",
			quality.Completeness, quality.UnclassifiedColumns)))
	for _, issue := range quality.Issues {
		lines = append(lines, cli.FormatWarning(fmt.Sprintf("%s: %s", issue.Column, issue.Message)))
	}
	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatComparison(cmp *model.MonthComparison) string {
	var lines []string
	if cmp.PreviousMonth != "" {
		lines = append(lines, cli.TableCellStyle.Render(
			fmt.Sprintf("Spending %+.2f (%+.1f%%) vs %s", cmp.ExpenseChange, cmp.ExpenseChangePct, cmp.PreviousMonth)))
		lines = append(lines, cli.TableCellStyle.Render(
			fmt.Sprintf("Income   %+.2f (%+.1f%%) vs %s", cmp.IncomeChange, cmp.IncomeChangePct, cmp.PreviousMonth)))
	}
	if cmp.HistoricalMonths > 0 {
		lines = append(lines, cli.SubtleStyle.Render(
			fmt.Sprintf("Spending %+.1f%%, income %+.1f%% vs the %d-month average",
				cmp.VsAvgExpensePct, cmp.VsAvgIncomePct, cmp.HistoricalMonths)))
	}
	return cli.RenderBox(fmt.Sprintf("Month %s", cmp.CurrentMonth), strings.Join(lines, "\n"))
}

func (f *CLIFormatter) formatAnomalies(anomalies []model.Anomaly) string {
	var lines []string
	lines = append(lines, cli.TableHeaderStyle.Render("Anomalies"))
	for _, a := range anomalies {
		text := fmt.Sprintf("[%s] %s — %s", a.Severity, a.Title, a.Description)
		if a.Severity == model.AnomalyHigh {
			lines = append(lines, cli.FormatWarning(text))
		} else {
			lines = append(lines, cli.TableCellStyle.Render(text))
		}
	}
	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatPredictions(predictions []model.Prediction) string {
	var lines []string
	lines = append(lines, cli.TableHeaderStyle.Render("Next month"))
	for _, p := range predictions {
		lines = append(lines, cli.TableCellStyle.Render(
			fmt.Sprintf("%-10s %10.2f (%s confidence) %s", p.Type, p.Amount, p.Confidence, p.Explanation)))
	}
	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatRecommendations(recs []model.Recommendation) string {
	var lines []string
	lines = append(lines, cli.TableHeaderStyle.Render("Recommendations"))
	for _, r := range recs {
		lines = append(lines, cli.TableCellStyle.Render(
			fmt.Sprintf("%s (saves %.2f, %s effort)", r.Title, r.Impact, r.Effort)))
		lines = append(lines, cli.SubtleStyle.Render("  "+r.Description))
	}
	return strings.Join(lines, "\n")
}
