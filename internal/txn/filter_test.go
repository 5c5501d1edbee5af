package txn

import (
	"testing"

	"github.com/ledgerscope/ledgerscope/internal/model"
	"github.com/stretchr/testify/assert"
)

func filterFixture() []model.Transaction {
	return []model.Transaction{
		{ID: "1", Date: "2024-01-05", Description: "Grocery store", Category: "Groceries", Type: model.TypeDebit, Amount: 450},
		{ID: "2", Date: "2024-01-20", Description: "Salary", Category: "Income", Type: model.TypeCredit, Amount: 50000},
		{ID: "3", Date: "2024-02-03", Description: "Grocery store", Category: "Groceries", Type: model.TypeDebit, Amount: 600},
		{ID: "4", Date: "", Description: "Undated fee", Category: "Bank Charges", Type: model.TypeDebit, Amount: 50},
	}
}

func TestApplyFiltersEmptyStateIsIdentity(t *testing.T) {
	txns := filterFixture()
	assert.Len(t, ApplyFilters(txns, model.FilterState{}), len(txns))
}

func TestApplyFiltersDimension(t *testing.T) {
	filtered := ApplyFilters(filterFixture(), model.FilterState{
		DimensionFilters: map[string][]string{"category": {"Groceries"}},
	})
	assert.Len(t, filtered, 2)
	for _, tx := range filtered {
		assert.Equal(t, "Groceries", tx.Category)
	}
}

func TestApplyFiltersDateRangeExcludesUndated(t *testing.T) {
	filtered := ApplyFilters(filterFixture(), model.FilterState{
		DateRange: &model.DateRange{Start: "2024-01-01", End: "2024-01-31"},
	})
	assert.Len(t, filtered, 2)
}

func TestApplyFiltersSearch(t *testing.T) {
	filtered := ApplyFilters(filterFixture(), model.FilterState{SearchQuery: "grocery"})
	assert.Len(t, filtered, 2)

	filtered = ApplyFilters(filterFixture(), model.FilterState{SearchQuery: "SALARY"})
	assert.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].ID)
}

func TestApplyFiltersCombined(t *testing.T) {
	filtered := ApplyFilters(filterFixture(), model.FilterState{
		DimensionFilters: map[string][]string{"type": {"debit"}},
		DateRange:        &model.DateRange{Start: "2024-02-01"},
	})
	assert.Len(t, filtered, 1)
	assert.Equal(t, "3", filtered[0].ID)
}
