package intelligence

import (
	"fmt"

	"github.com/ledgerscope/ledgerscope/internal/model"
)

const (
	minHistoryMonths    = 2
	trendWeight         = 0.3
	trendWindow         = 3
	cvHighConfidence    = 10.0
	cvMediumConfidence  = 25.0
	confidentHistoryLen = 4
)

// Predict extrapolates next-month expense, income, and savings from the
// historical months (newest first). With fewer than two months it returns
// a single zero-amount low-confidence placeholder.
func Predict(historical []model.MonthlyData) []model.Prediction {
	if len(historical) < minHistoryMonths {
		return []model.Prediction{{
			ID:          "predict-expense",
			Type:        "expense",
			Amount:      0,
			Confidence:  model.ConfidenceLow,
			Explanation: "Not enough history to predict; at least two full months are needed",
		}}
	}

	expense := predictExpense(historical)
	income := predictIncome(historical)
	savings := predictSavings(expense, income, len(historical))

	return []model.Prediction{expense, income, savings}
}

// predictExpense projects the historical average nudged by 30% of the
// recent trend, the delta across the last three months.
func predictExpense(historical []model.MonthlyData) model.Prediction {
	debits := make([]float64, 0, len(historical))
	// Chronological order: historical arrives newest first.
	for i := len(historical) - 1; i >= 0; i-- {
		debits = append(debits, historical[i].Summary.TotalDebits)
	}

	avg := meanOf(debits)

	window := debits
	if len(window) > trendWindow {
		window = window[len(window)-trendWindow:]
	}
	trend := window[len(window)-1] - window[0]

	amount := avg + trendWeight*trend
	if amount < 0 {
		amount = 0
	}

	confidence := model.ConfidenceLow
	if len(historical) >= confidentHistoryLen {
		confidence = model.ConfidenceMedium
	}

	direction := "steady"
	if trend > 0 {
		direction = "rising"
	} else if trend < 0 {
		direction = "falling"
	}

	return model.Prediction{
		ID:         "predict-expense",
		Type:       "expense",
		Amount:     amount,
		Confidence: confidence,
		Explanation: fmt.Sprintf("Based on a %d-month average of %.2f with %s recent spending",
			len(historical), avg, direction),
	}
}

// predictIncome averages the months that actually had income; confidence
// follows the coefficient of variation of that series.
func predictIncome(historical []model.MonthlyData) model.Prediction {
	incomes := make([]float64, 0, len(historical))
	for _, m := range historical {
		if m.Summary.TotalCredits > 0 {
			incomes = append(incomes, m.Summary.TotalCredits)
		}
	}

	if len(incomes) == 0 {
		return model.Prediction{
			ID:          "predict-income",
			Type:        "income",
			Amount:      0,
			Confidence:  model.ConfidenceLow,
			Explanation: "No income recorded in the historical months",
		}
	}

	avg, stdDev := meanStdDev(incomes)
	cv := 0.0
	if avg > 0 {
		cv = stdDev / avg * 100
	}

	confidence := model.ConfidenceLow
	switch {
	case cv < cvHighConfidence:
		confidence = model.ConfidenceHigh
	case cv < cvMediumConfidence:
		confidence = model.ConfidenceMedium
	}

	return model.Prediction{
		ID:         "predict-income",
		Type:       "income",
		Amount:     avg,
		Confidence: confidence,
		Explanation: fmt.Sprintf("Average of %d month(s) with income; variation %.1f%%",
			len(incomes), cv),
	}
}

func predictSavings(expense, income model.Prediction, historyLen int) model.Prediction {
	amount := income.Amount - expense.Amount

	confidence := model.ConfidenceLow
	if historyLen >= confidentHistoryLen {
		confidence = model.ConfidenceMedium
	}

	explanation := fmt.Sprintf("You are on track to save about %.2f next month", amount)
	if amount < 0 {
		explanation = fmt.Sprintf("Expenses may exceed income by about %.2f next month", -amount)
	}

	return model.Prediction{
		ID:          "predict-savings",
		Type:        "savings",
		Amount:      amount,
		Confidence:  confidence,
		Explanation: explanation,
	}
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
