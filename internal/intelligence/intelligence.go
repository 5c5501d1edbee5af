package intelligence

import "github.com/ledgerscope/ledgerscope/internal/model"

// Generate runs the full multi-month report. Months arrive newest first:
// months[0] is current, months[1] is previous, and everything after the
// current month (previous included) forms the historical baseline.
func Generate(months []model.MonthlyData) model.FinancialIntelligence {
	report := model.FinancialIntelligence{
		Insights:        []model.Insight{},
		Anomalies:       []model.Anomaly{},
		Predictions:     []model.Prediction{},
		Recommendations: []model.Recommendation{},
	}
	if len(months) == 0 {
		return report
	}

	current := months[0]
	historical := months[1:]
	var previous *model.MonthlyData
	if len(months) > 1 {
		previous = &months[1]
	}

	report.Insights = MonthlyInsights(current, previous)
	report.Anomalies = DetectAnomalies(current, previous, historical)
	report.Predictions = Predict(historical)
	report.Recommendations = Recommend(current)
	report.Comparison = Compare(current, previous, historical)

	return report
}

// Compare contrasts the current month with the previous month and with
// the historical average. Returns nil without any history to compare to.
func Compare(current model.MonthlyData, previous *model.MonthlyData, historical []model.MonthlyData) *model.MonthComparison {
	if previous == nil && len(historical) == 0 {
		return nil
	}

	cmp := &model.MonthComparison{
		CurrentMonth:     current.MonthKey,
		HistoricalMonths: len(historical),
	}

	if previous != nil {
		cmp.PreviousMonth = previous.MonthKey
		cmp.ExpenseChange = current.Summary.TotalDebits - previous.Summary.TotalDebits
		cmp.IncomeChange = current.Summary.TotalCredits - previous.Summary.TotalCredits
		if previous.Summary.TotalDebits > 0 {
			cmp.ExpenseChangePct = cmp.ExpenseChange / previous.Summary.TotalDebits * 100
		}
		if previous.Summary.TotalCredits > 0 {
			cmp.IncomeChangePct = cmp.IncomeChange / previous.Summary.TotalCredits * 100
		}
	}

	if len(historical) > 0 {
		var debitSum, creditSum float64
		for _, m := range historical {
			debitSum += m.Summary.TotalDebits
			creditSum += m.Summary.TotalCredits
		}
		avgDebits := debitSum / float64(len(historical))
		avgCredits := creditSum / float64(len(historical))
		if avgDebits > 0 {
			cmp.VsAvgExpensePct = (current.Summary.TotalDebits - avgDebits) / avgDebits * 100
		}
		if avgCredits > 0 {
			cmp.VsAvgIncomePct = (current.Summary.TotalCredits - avgCredits) / avgCredits * 100
		}
	}

	return cmp
}
