package model

import "time"

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	// TypeCredit represents money flowing into the account.
	TypeCredit TransactionType = "credit"
	// TypeDebit represents money flowing out of the account.
	TypeDebit TransactionType = "debit"
)

// Transaction is a normalized statement row. Amount is always non-negative;
// the direction lives in Type. RawData retains the original row keyed by
// header so dynamic dimensions can reach back into unmapped columns.
type Transaction struct {
	RawData     map[string]string `json:"rawData"`
	ID          string            `json:"id"`
	Date        string            `json:"date"` // ISO YYYY-MM-DD, or empty when unparseable
	Description string            `json:"description"`
	Type        TransactionType   `json:"type"`
	Category    string            `json:"category"`
	Amount      float64           `json:"amount"`
}

// DetectedColumns maps bank-statement semantic slots to header names. An
// empty string means the slot was not found.
type DetectedColumns struct {
	Date         string `json:"date"`
	Amount       string `json:"amount"`
	CreditAmount string `json:"creditAmount"`
	DebitAmount  string `json:"debitAmount"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Balance      string `json:"balance"`
}

// Summary aggregates a transaction set into statement-level totals.
type Summary struct {
	TotalCredits     float64 `json:"totalCredits"`
	TotalDebits      float64 `json:"totalDebits"`
	NetFlow          float64 `json:"netFlow"`
	TransactionCount int     `json:"transactionCount"`
}

// MonthlyData is one month of transactions with its authoritative summary,
// the unit of the multi-month intelligence report.
type MonthlyData struct {
	MonthKey     string        `json:"monthKey"` // YYYY-MM
	Transactions []Transaction `json:"transactions"`
	Summary      Summary       `json:"summary"`
}

// DateRange bounds a filter by ISO date strings, inclusive.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FilterState describes the active filters applied before analysis.
type FilterState struct {
	DimensionFilters map[string][]string `json:"dimensionFilters"`
	DateRange        *DateRange          `json:"dateRange,omitempty"`
	SearchQuery      string              `json:"searchQuery"`
}

// Batch records one imported statement file.
type Batch struct {
	ImportedAt time.Time       `json:"importedAt"`
	ID         string          `json:"id"`
	SourceFile string          `json:"sourceFile"`
	Headers    []string        `json:"headers"`
	Columns    DetectedColumns `json:"columns"`
}
