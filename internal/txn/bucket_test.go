package txn

import (
	"testing"

	"github.com/ledgerscope/ledgerscope/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketByMonthNewestFirst(t *testing.T) {
	transactions := []model.Transaction{
		{ID: "1", Date: "2024-01-15", Amount: 100, Type: model.TypeDebit},
		{ID: "2", Date: "2024-03-02", Amount: 200, Type: model.TypeDebit},
		{ID: "3", Date: "2024-01-20", Amount: 50, Type: model.TypeCredit},
		{ID: "4", Date: "2024-02-10", Amount: 75, Type: model.TypeDebit},
	}

	months := BucketByMonth(transactions)
	require.Len(t, months, 3)
	assert.Equal(t, "2024-03", months[0].MonthKey)
	assert.Equal(t, "2024-02", months[1].MonthKey)
	assert.Equal(t, "2024-01", months[2].MonthKey)

	require.Len(t, months[2].Transactions, 2)
	assert.InDelta(t, 100.0, months[2].Summary.TotalDebits, 1e-9)
	assert.InDelta(t, 50.0, months[2].Summary.TotalCredits, 1e-9)
}

func TestBucketByMonthSkipsUndated(t *testing.T) {
	transactions := []model.Transaction{
		{ID: "1", Date: "", Amount: 100, Type: model.TypeDebit},
		{ID: "2", Date: "2024-03-02", Amount: 200, Type: model.TypeDebit},
	}

	months := BucketByMonth(transactions)
	require.Len(t, months, 1)
	assert.Len(t, months[0].Transactions, 1)
}

func TestBucketByMonthEmpty(t *testing.T) {
	assert.Empty(t, BucketByMonth(nil))
}
