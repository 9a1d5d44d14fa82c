package dataprep

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/core"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/data"
)

func TestCutAgeGroups(t *testing.T) {
	ages := []float64{0, 0.42, 12, 12.5, 18, 35, 35.1, 60, 61, 100, 100.5, math.NaN(), -1}
	want := []string{"", "Child", "Child", "Teen", "Teen", "Young Adult", "Adult", "Adult", "Senior", "Senior", "", "", ""}
	assert.Equal(t, want, Cut(ages, AgeEdges, AgeLabels, false))
}

func TestQCutEqualFrequency(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i + 1)
	}
	got := QCut(values, FareLabels)
	counts := map[string]int{}
	for _, l := range got {
		counts[l]++
	}
	assert.Equal(t, map[string]int{"Low": 25, "Medium": 25, "High": 25, "Very High": 25}, counts)
	assert.Equal(t, "Low", got[0])
	assert.Equal(t, "Very High", got[99])
}

func TestQCutKeepsNulls(t *testing.T) {
	got := QCut([]float64{1, math.NaN(), 3, 4, 5}, FareLabels)
	assert.Equal(t, "", got[1])
	assert.Equal(t, "Low", got[0])

	assert.Equal(t, []string{"", ""}, QCut([]float64{math.NaN(), math.NaN()}, FareLabels))
}

func TestAddAgeGroupStoresNulls(t *testing.T) {
	df := dataframe.New(core.NumericSeries(data.ColAge, []float64{5, math.NaN(), 70}))
	out, err := AddAgeGroup(df)
	require.NoError(t, err)
	groups := out.Col(data.ColAgeGroup)
	assert.Equal(t, core.Categorical, core.KindOf(groups.Type()))
	assert.Equal(t, []string{"Child", "Senior"}, core.Strings(groups))
	assert.True(t, core.IsNull(groups.Elem(1)))
}

func TestAddFareQuartileRejectsText(t *testing.T) {
	df := dataframe.New(core.CategoricalSeries(data.ColFare, []string{"cheap"}))
	_, err := AddFareQuartile(df)
	assert.Error(t, err)
}

func TestLabelEncode(t *testing.T) {
	s := core.CategoricalSeries("sex", []string{"male", "female", "", "male"})
	enc, mapping := LabelEncode(s)
	assert.Equal(t, map[string]int{"female": 0, "male": 1}, mapping)
	assert.Equal(t, core.Numeric, core.KindOf(enc.Type()))
	vals := enc.Float()
	assert.Equal(t, 1.0, vals[0])
	assert.Equal(t, 0.0, vals[1])
	assert.True(t, math.IsNaN(vals[2]))
}

func TestImputeModeOnEmptyColumn(t *testing.T) {
	df := dataframe.New(core.CategoricalSeries("embarked", []string{"", ""}))
	_, _, ok, err := ImputeMode(df, "embarked")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestImputeModeTieBreak(t *testing.T) {
	df := dataframe.New(core.CategoricalSeries("embarked", []string{"S", "C", "", "C", "S"}))
	out, mode, ok, err := ImputeMode(df, "embarked")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "C", mode)
	assert.Equal(t, "C", core.Label(out.Col("embarked").Elem(2)))
	assert.True(t, core.IsNull(df.Col("embarked").Elem(2)))
}

func TestImputeGroupMedianRejectsCategorical(t *testing.T) {
	df := dataframe.New(core.CategoricalSeries("sex", []string{"male"}))
	_, _, err := ImputeGroupMedian(df, df, "sex")
	assert.Error(t, err)
}
