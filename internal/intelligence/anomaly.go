// Package intelligence builds the multi-month report: insights, anomaly
// detection against historical baselines, next-month predictions, and
// ranked savings recommendations.
package intelligence

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledgerscope/ledgerscope/internal/model"
)

const (
	spendingStdDevFactor   = 2.0
	spendingHighMultiplier = 1.5
	newCategoryShare       = 0.10
	spikeThresholdPct      = 100.0
	spikeHighPct           = 200.0
	recurringDeviationPct  = 30.0
	maxSpendingAnomalies   = 3
)

var severityRank = map[model.AnomalySeverity]int{
	model.AnomalyHigh:   0,
	model.AnomalyMedium: 1,
	model.AnomalyLow:    2,
}

// DetectAnomalies flags unusual activity in the current month against the
// historical months. It never fails; thin history just yields fewer checks.
func DetectAnomalies(current model.MonthlyData, previous *model.MonthlyData, historical []model.MonthlyData) []model.Anomaly {
	anomalies := make([]model.Anomaly, 0)
	anomalies = append(anomalies, spendingAnomalies(current, historical)...)
	anomalies = append(anomalies, newCategoryAnomalies(current, historical)...)
	if previous != nil {
		anomalies = append(anomalies, categorySpikeAnomalies(current, *previous)...)
	}
	anomalies = append(anomalies, recurringAnomalies(current, historical)...)

	sort.SliceStable(anomalies, func(i, j int) bool {
		return severityRank[anomalies[i].Severity] < severityRank[anomalies[j].Severity]
	})
	return anomalies
}

// spendingAnomalies reports current debits beyond two standard deviations
// of all historical debit amounts, at most three of them.
func spendingAnomalies(current model.MonthlyData, historical []model.MonthlyData) []model.Anomaly {
	amounts := make([]float64, 0)
	for _, month := range historical {
		for _, t := range month.Transactions {
			if t.Type == model.TypeDebit {
				amounts = append(amounts, t.Amount)
			}
		}
	}
	if len(amounts) == 0 {
		return nil
	}

	avg, stdDev := meanStdDev(amounts)
	threshold := avg + spendingStdDevFactor*stdDev
	if threshold <= 0 {
		return nil
	}

	flagged := make([]model.Transaction, 0)
	for _, t := range current.Transactions {
		if t.Type == model.TypeDebit && t.Amount > threshold {
			flagged = append(flagged, t)
		}
	}
	sort.SliceStable(flagged, func(i, j int) bool { return flagged[i].Amount > flagged[j].Amount })
	if len(flagged) > maxSpendingAnomalies {
		flagged = flagged[:maxSpendingAnomalies]
	}

	anomalies := make([]model.Anomaly, 0, len(flagged))
	for _, t := range flagged {
		severity := model.AnomalyMedium
		if t.Amount > spendingHighMultiplier*threshold {
			severity = model.AnomalyHigh
		}
		anomalies = append(anomalies, model.Anomaly{
			ID:       "spend-" + t.ID,
			Type:     "high_transaction",
			Title:    "Unusually large transaction",
			Description: fmt.Sprintf("%s (%.2f) is well above your typical spend of %.2f",
				t.Description, t.Amount, avg),
			Severity: severity,
			Amount:   t.Amount,
		})
	}
	return anomalies
}

// newCategoryAnomalies reports categories spent in this month that never
// appear anywhere in history.
func newCategoryAnomalies(current model.MonthlyData, historical []model.MonthlyData) []model.Anomaly {
	if len(historical) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	for _, month := range historical {
		for _, t := range month.Transactions {
			seen[t.Category] = struct{}{}
		}
	}

	totals := debitTotalsByCategory(current)
	order := categoryOrder(current)

	anomalies := make([]model.Anomaly, 0)
	for _, category := range order {
		if _, ok := seen[category]; ok {
			continue
		}
		total := totals[category]
		severity := model.AnomalyLow
		if current.Summary.TotalDebits > 0 && total > newCategoryShare*current.Summary.TotalDebits {
			severity = model.AnomalyMedium
		}
		anomalies = append(anomalies, model.Anomaly{
			ID:       "newcat-" + category,
			Type:     "new_category",
			Title:    fmt.Sprintf("New spending category: %s", category),
			Description: fmt.Sprintf("First month with %s spending; %.2f so far", category, total),
			Severity: severity,
			Amount:   total,
		})
	}
	return anomalies
}

// categorySpikeAnomalies reports categories whose spend more than doubled
// month over month.
func categorySpikeAnomalies(current, previous model.MonthlyData) []model.Anomaly {
	currentTotals := debitTotalsByCategory(current)
	previousTotals := debitTotalsByCategory(previous)

	anomalies := make([]model.Anomaly, 0)
	for _, category := range categoryOrder(current) {
		prev, ok := previousTotals[category]
		if !ok || prev <= 0 {
			continue
		}
		increase := (currentTotals[category] - prev) / prev * 100
		if increase <= spikeThresholdPct {
			continue
		}
		severity := model.AnomalyMedium
		if increase > spikeHighPct {
			severity = model.AnomalyHigh
		}
		anomalies = append(anomalies, model.Anomaly{
			ID:       "spike-" + category,
			Type:     "category_spike",
			Title:    fmt.Sprintf("%s spending spiked", category),
			Description: fmt.Sprintf("%s rose %.0f%% over last month (%.2f from %.2f)",
				category, increase, currentTotals[category], prev),
			Severity: severity,
			Amount:   currentTotals[category],
		})
	}
	return anomalies
}

// recurringAnomalies compares recurring payees against their historical
// average. Descriptions normalize by lowercasing and trimming.
func recurringAnomalies(current model.MonthlyData, historical []model.MonthlyData) []model.Anomaly {
	histSum := make(map[string]float64)
	histCount := make(map[string]int)
	for _, month := range historical {
		for _, t := range month.Transactions {
			if t.Type != model.TypeDebit {
				continue
			}
			key := normalizeDescription(t.Description)
			histSum[key] += t.Amount
			histCount[key]++
		}
	}

	currentSum := make(map[string]float64)
	currentCount := make(map[string]int)
	order := make([]string, 0)
	label := make(map[string]string)
	for _, t := range current.Transactions {
		if t.Type != model.TypeDebit {
			continue
		}
		key := normalizeDescription(t.Description)
		if _, ok := currentSum[key]; !ok {
			order = append(order, key)
			label[key] = t.Description
		}
		currentSum[key] += t.Amount
		currentCount[key]++
	}

	anomalies := make([]model.Anomaly, 0)
	for _, key := range order {
		if histCount[key] < 2 {
			continue
		}
		histAvg := histSum[key] / float64(histCount[key])
		if histAvg <= 0 {
			continue
		}
		currentAvg := currentSum[key] / float64(currentCount[key])
		deviation := math.Abs(currentAvg-histAvg) / histAvg * 100
		if deviation <= recurringDeviationPct {
			continue
		}
		anomalies = append(anomalies, model.Anomaly{
			ID:       "recurring-" + key,
			Type:     "recurring_change",
			Title:    fmt.Sprintf("Recurring charge changed: %s", label[key]),
			Description: fmt.Sprintf("%s now averages %.2f against a historical %.2f (%.0f%% off)",
				label[key], currentAvg, histAvg, deviation),
			Severity: model.AnomalyLow,
			Amount:   currentAvg,
		})
	}
	return anomalies
}

func debitTotalsByCategory(month model.MonthlyData) map[string]float64 {
	totals := make(map[string]float64)
	for _, t := range month.Transactions {
		if t.Type == model.TypeDebit {
			totals[t.Category] += t.Amount
		}
	}
	return totals
}

// categoryOrder returns the month's debit categories in first-seen order
// so anomaly output is deterministic.
func categoryOrder(month model.MonthlyData) []string {
	seen := make(map[string]struct{})
	order := make([]string, 0)
	for _, t := range month.Transactions {
		if t.Type != model.TypeDebit {
			continue
		}
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		order = append(order, t.Category)
	}
	return order
}

func normalizeDescription(d string) string {
	return strings.ToLower(strings.TrimSpace(d))
}

func meanStdDev(values []float64) (avg, stdDev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	avg = sum / float64(len(values))

	var sq float64
	for _, v := range values {
		sq += (v - avg) * (v - avg)
	}
	return avg, math.Sqrt(sq / float64(len(values)))
}
