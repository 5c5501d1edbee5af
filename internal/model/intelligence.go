package model

// AnomalySeverity ranks detected anomalies.
type AnomalySeverity string

const (
	// AnomalyHigh is the most urgent severity.
	AnomalyHigh AnomalySeverity = "high"
	// AnomalyMedium is a mid-tier severity.
	AnomalyMedium AnomalySeverity = "medium"
	// AnomalyLow is informational.
	AnomalyLow AnomalySeverity = "low"
)

// Anomaly flags a statistically unusual transaction or category movement.
type Anomaly struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Severity    AnomalySeverity `json:"severity"`
	Amount      float64         `json:"amount"`
}

// Confidence expresses how reliable a prediction is.
type Confidence string

const (
	// ConfidenceHigh means the underlying series is stable.
	ConfidenceHigh Confidence = "high"
	// ConfidenceMedium means moderate variation.
	ConfidenceMedium Confidence = "medium"
	// ConfidenceLow means little history or high variation.
	ConfidenceLow Confidence = "low"
)

// Prediction extrapolates one figure for the next month.
type Prediction struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"` // expense, income, savings
	Explanation string     `json:"explanation"`
	Confidence  Confidence `json:"confidence"`
	Amount      float64    `json:"amount"`
}

// Recommendation is an actionable savings suggestion ranked by the monthly
// amount it could free up.
type Recommendation struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Effort      string  `json:"effort"` // low, medium, high
	Impact      float64 `json:"impact"` // potential monthly savings
}

// MonthComparison contrasts the current month with the previous one and
// with the historical average.
type MonthComparison struct {
	CurrentMonth     string  `json:"currentMonth"`
	PreviousMonth    string  `json:"previousMonth,omitempty"`
	ExpenseChange    float64 `json:"expenseChange"`
	ExpenseChangePct float64 `json:"expenseChangePct"`
	IncomeChange     float64 `json:"incomeChange"`
	IncomeChangePct  float64 `json:"incomeChangePct"`
	VsAvgExpensePct  float64 `json:"vsAvgExpensePct"`
	VsAvgIncomePct   float64 `json:"vsAvgIncomePct"`
	HistoricalMonths int     `json:"historicalMonths"`
}

// FinancialIntelligence is the multi-month report: insights, anomalies,
// predictions, recommendations, and the month comparison.
type FinancialIntelligence struct {
	Comparison      *MonthComparison `json:"comparison,omitempty"`
	Insights        []Insight        `json:"insights"`
	Anomalies       []Anomaly        `json:"anomalies"`
	Predictions     []Prediction     `json:"predictions"`
	Recommendations []Recommendation `json:"recommendations"`
}
