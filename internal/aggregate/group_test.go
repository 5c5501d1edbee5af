package aggregate

import (
	"testing"

	"github.com/ledgerscope/ledgerscope/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupFixture() []model.Transaction {
	return []model.Transaction{
		{ID: "1", Date: "2024-01-05", Category: "Food", Type: model.TypeDebit, Amount: 100, RawData: map[string]string{"Branch": "North"}},
		{ID: "2", Date: "2024-01-12", Category: "Food", Type: model.TypeDebit, Amount: 50, RawData: map[string]string{"Branch": "South"}},
		{ID: "3", Date: "2024-02-03", Category: "Travel", Type: model.TypeDebit, Amount: 200, RawData: map[string]string{"Branch": "North"}},
		{ID: "4", Date: "", Category: "", Type: model.TypeCredit, Amount: 75, RawData: map[string]string{}},
	}
}

func TestGroupByCategorySortedByTotalDescending(t *testing.T) {
	groups := GroupBy(groupFixture(), "category")
	require.Len(t, groups, 3)

	assert.Equal(t, "Travel", groups[0].Key)
	assert.InDelta(t, 200.0, groups[0].TotalAmount, 1e-9)
	assert.Equal(t, "Food", groups[1].Key)
	assert.InDelta(t, 150.0, groups[1].TotalAmount, 1e-9)
	assert.Equal(t, UnknownKey, groups[2].Key)

	// Conservation of mass: group totals add up to the input total.
	var sum float64
	for _, g := range groups {
		sum += g.TotalAmount
	}
	assert.InDelta(t, 425.0, sum, 1e-9)
}

func TestGroupByMonth(t *testing.T) {
	groups := GroupBy(groupFixture(), "month")
	require.Len(t, groups, 3)

	keys := map[string]bool{}
	for _, g := range groups {
		keys[g.Key] = true
	}
	assert.True(t, keys["2024-01"])
	assert.True(t, keys["2024-02"])
	assert.True(t, keys[UnknownKey])
}

func TestGroupByDayOfWeekNoonAnchoring(t *testing.T) {
	// 2024-01-05 is a Friday regardless of the local timezone offset.
	groups := GroupBy([]model.Transaction{
		{Date: "2024-01-05", Amount: 10},
		{Date: "2024-01-06", Amount: 20},
	}, "dayofweek")

	require.Len(t, groups, 2)
	assert.Equal(t, "Sat", groups[0].Key)
	assert.Equal(t, "Fri", groups[1].Key)
}

func TestGroupByRawColumn(t *testing.T) {
	groups := GroupBy(groupFixture(), "raw:Branch")
	require.Len(t, groups, 3)
	assert.Equal(t, "North", groups[0].Key)
	assert.InDelta(t, 300.0, groups[0].TotalAmount, 1e-9)
}

func TestGroupByUnknownDimensionFallsBackToRawField(t *testing.T) {
	groups := GroupBy(groupFixture(), "Branch")
	require.Len(t, groups, 3)
	assert.Equal(t, "North", groups[0].Key)
}

func TestSortVariants(t *testing.T) {
	groups := GroupBy(groupFixture(), "category")

	Sort(groups, "count")
	assert.Equal(t, "Food", groups[0].Key)

	Sort(groups, "max")
	assert.Equal(t, "Travel", groups[0].Key)

	Sort(groups, "average")
	assert.Equal(t, "Travel", groups[0].Key)
}

func TestGroupByEmptyInput(t *testing.T) {
	assert.Empty(t, GroupBy(nil, "category"))
}
