package txn

import (
	"testing"

	"github.com/ledgerscope/ledgerscope/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statementColumns() model.DetectedColumns {
	return model.DetectedColumns{
		Date:         "Date",
		Description:  "Narration",
		CreditAmount: "Credit",
		DebitAmount:  "Debit",
	}
}

func TestBuildSeparateCreditDebitColumns(t *testing.T) {
	headers := []string{"Date", "Narration", "Debit", "Credit"}
	rows := [][]string{
		{"01/04/2024", "salary april", "", "50000"},
		{"02/04/2024", "grocery store", "450.50", ""},
		{"03/04/2024", "failed txn", "", ""},
	}

	txns := Build(headers, rows, statementColumns(), "batch1")
	require.Len(t, txns, 2) // the zero-amount row is dropped

	assert.Equal(t, "batch1-1", txns[0].ID)
	assert.Equal(t, "2024-04-01", txns[0].Date)
	assert.Equal(t, model.TypeCredit, txns[0].Type)
	assert.InDelta(t, 50000.0, txns[0].Amount, 1e-9)
	assert.Equal(t, "Income", txns[0].Category)

	assert.Equal(t, model.TypeDebit, txns[1].Type)
	assert.InDelta(t, 450.50, txns[1].Amount, 1e-9)
	assert.Equal(t, "Groceries", txns[1].Category)
	assert.Equal(t, "450.50", txns[1].RawData["Debit"])
}

func TestBuildCreditWinsWhenBothNonzero(t *testing.T) {
	headers := []string{"Date", "Narration", "Debit", "Credit"}
	rows := [][]string{{"01/04/2024", "odd row", "100", "200"}}

	txns := Build(headers, rows, statementColumns(), "b")
	require.Len(t, txns, 1)
	assert.Equal(t, model.TypeCredit, txns[0].Type)
	assert.InDelta(t, 200.0, txns[0].Amount, 1e-9)
}

func TestBuildSignedAmountColumn(t *testing.T) {
	headers := []string{"Date", "Description", "Amount"}
	cols := model.DetectedColumns{Date: "Date", Description: "Description", Amount: "Amount"}
	rows := [][]string{
		{"2024-04-01", "rent payment", "-12000"},
		{"2024-04-02", "freelance invoice", "8000"},
	}

	txns := Build(headers, rows, cols, "b")
	require.Len(t, txns, 2)
	assert.Equal(t, model.TypeDebit, txns[0].Type)
	assert.InDelta(t, 12000.0, txns[0].Amount, 1e-9)
	assert.Equal(t, model.TypeCredit, txns[1].Type)
}

func TestBuildSyntheticDescriptionAndMappedCategory(t *testing.T) {
	headers := []string{"Amount", "Category"}
	cols := model.DetectedColumns{Amount: "Amount", Category: "Category"}
	rows := [][]string{
		{"100", "Custom"},
		{"200", ""},
	}

	txns := Build(headers, rows, cols, "b")
	require.Len(t, txns, 2)
	assert.Equal(t, "Row 1", txns[0].Description)
	assert.Equal(t, "Custom", txns[0].Category)
	// Empty mapped category falls back to auto-categorization.
	assert.Equal(t, "Other", txns[1].Category)
}

func TestBuildRaggedRows(t *testing.T) {
	headers := []string{"Date", "Narration", "Debit", "Credit"}
	rows := [][]string{
		{"01/04/2024", "short row", "75"},
	}

	txns := Build(headers, rows, statementColumns(), "b")
	require.Len(t, txns, 1)
	assert.Equal(t, model.TypeDebit, txns[0].Type)
}

func TestAutoCategoryOrderMatters(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"SALARY CREDIT APRIL", "Income"},
		{"UPI/swiggy/lunch", "Dining"},
		{"AMAZON PAY ORDER 123", "Shopping"},
		{"NETFLIX.COM subscription", "Subscription"},
		{"UBER TRIP 9821", "Transport"},
		{"LIC PREMIUM QUARTERLY", "Insurance"},
		{"RENT APRIL LANDLORD", "Rent"},
		{"HOME LOAN EMI", "Loan"},
		{"ATM CASH WITHDRAWAL", "Cash"},
		// The generic transfer rule only fires when nothing specific does.
		{"NEFT TRANSFER TO SELF", "Transfer"},
		{"IMPS/zomato/dinner", "Dining"},
		{"SERVICE FEE", "Bank Charges"},
		{"mystery payment xyz", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, AutoCategory(tt.description))
		})
	}
}

func TestCalculateSummary(t *testing.T) {
	txns := []model.Transaction{
		{Amount: 5000, Type: model.TypeCredit},
		{Amount: 1200, Type: model.TypeDebit},
		{Amount: 300, Type: model.TypeDebit},
	}

	s := CalculateSummary(txns)
	assert.InDelta(t, 5000.0, s.TotalCredits, 1e-9)
	assert.InDelta(t, 1500.0, s.TotalDebits, 1e-9)
	assert.InDelta(t, 3500.0, s.NetFlow, 1e-9)
	assert.Equal(t, 3, s.TransactionCount)

	assert.Equal(t, model.Summary{}, CalculateSummary(nil))
}

func TestCorrectCategories(t *testing.T) {
	txns := []model.Transaction{
		{ID: "a", Category: "Other"},
		{ID: "b", Category: "Other"},
		{ID: "c", Category: "Dining"},
	}

	changed := CorrectCategories(txns, []string{"a", "c", "missing"}, "Travel")
	assert.Equal(t, 2, changed)
	assert.Equal(t, "Travel", txns[0].Category)
	assert.Equal(t, "Other", txns[1].Category)
	assert.Equal(t, "Travel", txns[2].Category)
}

func TestFinalizePreParsedTransactions(t *testing.T) {
	parsed := []model.Transaction{
		{Date: "2024-01-15", Description: "SWIGGY ORDER 8812", Amount: 450, Type: model.TypeDebit},
		{Date: "2024-01-16", Description: "", Amount: 0, Type: model.TypeDebit},
		{Date: "2024-01-20", Description: "SALARY JANUARY", Amount: 50000, Type: model.TypeCredit},
		{Date: "2024-01-22", Description: "LIC PREMIUM", Amount: 2000, Type: model.TypeDebit, Category: "Insurance"},
	}

	out := Finalize(parsed, "batch")
	require.Len(t, out, 3)

	assert.Equal(t, "batch-1", out[0].ID)
	assert.Equal(t, "Dining", out[0].Category)

	// Indices follow input position, so the dropped zero row leaves a gap.
	assert.Equal(t, "batch-3", out[1].ID)
	assert.Equal(t, "Income", out[1].Category)

	// A preset category is never overwritten.
	assert.Equal(t, "Insurance", out[2].Category)
}
