package viz

import (
	"testing"

	"github.com/ledgerscope/ledgerscope/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendDateAndMeasure(t *testing.T) {
	columns := []model.ClassifiedColumn{
		{Name: "Date", Role: model.RoleDate},
		{Name: "Amount", Role: model.RoleMeasure},
	}

	recs := Recommend(columns, 100)
	require.Len(t, recs, 2)
	assert.Equal(t, ChartLine, recs[0].Type)
	assert.Equal(t, 1, recs[0].Priority)
	assert.Equal(t, ChartArea, recs[1].Type)
	assert.Equal(t, 4, recs[1].Priority)
}

func TestRecommendLineSeriesCappedAtFour(t *testing.T) {
	columns := []model.ClassifiedColumn{
		{Name: "Date", Role: model.RoleDate},
		{Name: "M1", Role: model.RoleMeasure},
		{Name: "M2", Role: model.RoleMeasure},
		{Name: "M3", Role: model.RoleMeasure},
		{Name: "M4", Role: model.RoleMeasure},
		{Name: "M5", Role: model.RoleMeasure},
	}

	recs := Recommend(columns, 10)
	require.NotEmpty(t, recs)
	assert.Equal(t, ChartLine, recs[0].Type)
	// Date column plus at most four series.
	assert.Len(t, recs[0].Columns, 5)
}

func TestRecommendSmallDimensionGetsBarAndPie(t *testing.T) {
	columns := []model.ClassifiedColumn{
		{Name: "Category", Role: model.RoleDimension, UniqueCount: 5},
		{Name: "Amount", Role: model.RoleMeasure},
	}

	recs := Recommend(columns, 50)
	require.Len(t, recs, 2)
	assert.Equal(t, ChartBar, recs[0].Type)
	assert.Equal(t, ChartPie, recs[1].Type)
}

func TestRecommendWideDimensionGetsTopN(t *testing.T) {
	columns := []model.ClassifiedColumn{
		{Name: "Merchant", Role: model.RoleDimension, UniqueCount: 40},
		{Name: "Amount", Role: model.RoleMeasure},
	}

	recs := Recommend(columns, 50)
	require.Len(t, recs, 1)
	assert.Equal(t, ChartHorizontalBar, recs[0].Type)
}

func TestRecommendStackedBar(t *testing.T) {
	columns := []model.ClassifiedColumn{
		{Name: "Region", Role: model.RoleDimension, UniqueCount: 4},
		{Name: "Product", Role: model.RoleDimension, UniqueCount: 3},
		{Name: "Sales", Role: model.RoleMeasure},
	}

	recs := Recommend(columns, 50)
	found := false
	for _, r := range recs {
		if r.Type == ChartStackedBar {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRecommendMeasuresOnly(t *testing.T) {
	columns := []model.ClassifiedColumn{
		{Name: "A", Role: model.RoleMeasure},
		{Name: "B", Role: model.RoleMeasure},
	}

	recs := Recommend(columns, 50)
	require.Len(t, recs, 1)
	assert.Equal(t, "measure-compare", recs[0].ID)
}

func TestRecommendCapAndOrdering(t *testing.T) {
	columns := []model.ClassifiedColumn{
		{Name: "Date", Role: model.RoleDate},
		{Name: "Region", Role: model.RoleDimension, UniqueCount: 4},
		{Name: "Product", Role: model.RoleDimension, UniqueCount: 3},
		{Name: "Sales", Role: model.RoleMeasure},
		{Name: "Units", Role: model.RoleMeasure},
	}

	recs := Recommend(columns, 50)
	assert.LessOrEqual(t, len(recs), 6)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i].Priority, recs[i-1].Priority)
	}
	assert.Equal(t, ChartLine, recs[0].Type)
}

func TestRecommendNothingUseful(t *testing.T) {
	columns := []model.ClassifiedColumn{
		{Name: "Ref", Role: model.RoleIdentifier},
	}
	assert.Empty(t, Recommend(columns, 50))
}
