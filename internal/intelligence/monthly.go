package intelligence

import (
	"fmt"
	"math"

	"github.com/ledgerscope/ledgerscope/internal/model"
)

const (
	monthlyChangePct    = 15.0
	monthlyChangeBigPct = 30.0
	dominantSharePct    = 40.0
	dominantCriticalPct = 60.0
	healthySavingsRate  = 20.0
)

// MonthlyInsights narrates the current month against the previous one:
// net position, spending swings, and category dominance.
func MonthlyInsights(current model.MonthlyData, previous *model.MonthlyData) []model.Insight {
	insights := make([]model.Insight, 0)

	// Net position for the month.
	net := current.Summary.NetFlow
	if net >= 0 {
		insights = append(insights, model.Insight{
			ID:       "net-positive",
			Title:    "You spent less than you earned",
			Description: fmt.Sprintf("Net flow for %s is +%.2f", current.MonthKey, net),
			Severity: model.SeverityNotable,
			Value:    net,
		})
	} else {
		insights = append(insights, model.Insight{
			ID:       "net-negative",
			Title:    "Expenses exceeded income",
			Description: fmt.Sprintf("Net flow for %s is %.2f", current.MonthKey, net),
			Severity: model.SeverityCritical,
			Value:    net,
		})
	}

	if previous != nil && previous.Summary.TotalDebits > 0 {
		change := (current.Summary.TotalDebits - previous.Summary.TotalDebits) / previous.Summary.TotalDebits * 100
		if math.Abs(change) > monthlyChangePct {
			severity := model.SeverityNotable
			if math.Abs(change) > monthlyChangeBigPct {
				severity = model.SeverityCritical
			}
			direction := "up"
			if change < 0 {
				direction = "down"
			}
			insights = append(insights, model.Insight{
				ID:       "spending-change",
				Title:    fmt.Sprintf("Spending is %s %.0f%%", direction, math.Abs(change)),
				Description: fmt.Sprintf("Total debits moved from %.2f to %.2f month over month",
					previous.Summary.TotalDebits, current.Summary.TotalDebits),
				Severity: severity,
				Value:    change,
			})
		}
	}

	if current.Summary.TotalDebits > 0 {
		totals := debitTotalsByCategory(current)
		for _, category := range categoryOrder(current) {
			share := totals[category] / current.Summary.TotalDebits * 100
			if share > dominantSharePct {
				severity := model.SeverityNotable
				if share > dominantCriticalPct {
					severity = model.SeverityCritical
				}
				insights = append(insights, model.Insight{
					ID:       "dominant-" + category,
					Title:    fmt.Sprintf("%s dominates this month", category),
					Description: fmt.Sprintf("%s took %.1f%% of all spending in %s", category, share, current.MonthKey),
					Severity: severity,
					Value:    share,
				})
				break
			}
		}
	}

	if current.Summary.TotalCredits > 0 {
		rate := current.Summary.NetFlow / current.Summary.TotalCredits * 100
		if rate < healthySavingsRate {
			insights = append(insights, model.Insight{
				ID:       "savings-rate",
				Title:    "Savings rate below target",
				Description: fmt.Sprintf("You kept %.1f%% of income in %s; 20%% is a healthy floor", rate, current.MonthKey),
				Severity: model.SeverityNotable,
				Value:    rate,
			})
		}
	}

	return insights
}
