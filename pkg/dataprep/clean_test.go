package dataprep

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talla-sadhana/PRODIGY-DS-02/internal/testutil"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/core"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/data"
)

func scenario() data.Passengers {
	return data.Passengers{
		{Pclass: 1, Sex: "female", Age: data.Float(30), Fare: data.Float(100), Embarked: data.String("S"), Survived: true},
		{Pclass: 1, Sex: "female", Age: data.Float(40), Fare: data.Float(80), Embarked: data.String("S"), Survived: true},
		{Pclass: 1, Sex: "male", Age: data.Float(50), Fare: data.Float(60), Embarked: data.String("C")},
		{Pclass: 3, Sex: "male", Age: data.Float(20), Fare: data.Float(7), Embarked: data.String("Q"), SibSp: 2, Parch: 1},
		{Pclass: 1, Sex: "female", SibSp: 1, Parch: 0},
	}
}

func num(t *testing.T, df dataframe.DataFrame, name string, row int) float64 {
	t.Helper()
	c, err := core.Col(df, name)
	require.NoError(t, err)
	return c.Elem(row).Float()
}

func label(t *testing.T, df dataframe.DataFrame, name string, row int) string {
	t.Helper()
	c, err := core.Col(df, name)
	require.NoError(t, err)
	return core.Label(c.Elem(row))
}

func TestCleanScenario(t *testing.T) {
	in := scenario().Frame()
	out, outcomes, err := Clean(in, Options{Logger: testutil.NewTestLogger(t)})
	require.NoError(t, err)
	for _, o := range outcomes {
		assert.False(t, o.Skipped, o.Step)
	}

	const row = 4
	assert.Equal(t, 35.0, num(t, out, data.ColAge, row))
	assert.Equal(t, 80.0, num(t, out, data.ColFare, row))
	assert.Equal(t, "S", label(t, out, data.ColEmbarked, row))
	assert.Equal(t, 2.0, num(t, out, data.ColFamilySize, row))
	assert.Equal(t, 0.0, num(t, out, data.ColIsAlone, row))
	assert.Equal(t, "Young Adult", label(t, out, data.ColAgeGroup, row))

	assert.Equal(t, 4.0, num(t, out, data.ColFamilySize, 3))
	assert.Equal(t, 1.0, num(t, out, data.ColIsAlone, 0))

	assert.Equal(t, in.Nrow(), out.Nrow())
	assert.Equal(t, in.Ncol()+4, out.Ncol())
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	in := scenario().Frame()
	_, _, err := Clean(in, Options{})
	require.NoError(t, err)

	assert.True(t, core.IsNull(in.Col(data.ColAge).Elem(4)))
	assert.True(t, core.IsNull(in.Col(data.ColFare).Elem(4)))
	assert.False(t, core.Has(in, data.ColFamilySize))
}

func TestCleanSyntheticProperties(t *testing.T) {
	in := data.Synthetic(42, 891)
	out, _, err := Clean(in, Options{Logger: testutil.NewTestLogger(t)})
	require.NoError(t, err)
	require.Equal(t, 891, out.Nrow())

	for _, name := range []string{data.ColAge, data.ColFare, data.ColEmbarked} {
		assert.Zero(t, core.NullCount(out.Col(name)), name)
	}

	sibsp := out.Col(data.ColSibSp).Float()
	parch := out.Col(data.ColParch).Float()
	fs := out.Col(data.ColFamilySize).Float()
	alone := out.Col(data.ColIsAlone).Float()
	for i := range out.Nrow() {
		require.Equal(t, sibsp[i]+parch[i]+1, fs[i])
		require.GreaterOrEqual(t, fs[i], 1.0)
		require.Equal(t, fs[i] == 1, alone[i] == 1)
	}

	counts, err := core.ValueCounts(out, data.ColFareQuartile)
	require.NoError(t, err)
	require.Len(t, counts, 4)
	lo, hi := counts[0].N, counts[0].N
	for _, c := range counts {
		lo = min(lo, c.N)
		hi = max(hi, c.N)
	}
	assert.LessOrEqual(t, hi-lo, 1)

	// other columns are untouched
	for _, name := range []string{data.ColSurvived, data.ColPclass, data.ColSex} {
		for i := range in.Nrow() {
			require.Equal(t, label(t, in, name, i), label(t, out, name, i))
		}
	}
}

func agePassengers() data.Passengers {
	return data.Passengers{
		{Pclass: 2, Sex: "male", Age: data.Float(30)},
		{Pclass: 2, Sex: "male", Age: data.Float(50)},
		{Pclass: 2, Sex: "female"},
		{Pclass: 3, Sex: "male", Age: data.Float(10)},
	}
}

func TestAgeFallback(t *testing.T) {
	tests := []struct {
		name     string
		fallback AgeFallback
		want     float64
	}{
		{"none leaves null", AgeFallbackNone, math.NaN()},
		{"class median", AgeFallbackClass, 40},
		{"global median", AgeFallbackGlobal, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, logs := testutil.CaptureLogger()
			out, _, err := Clean(agePassengers().Frame(), Options{AgeFallback: tt.fallback, Logger: log})
			require.NoError(t, err)
			got := num(t, out, data.ColAge, 2)
			if math.IsNaN(tt.want) {
				assert.True(t, math.IsNaN(got))
				assert.Equal(t, "", label(t, out, data.ColAgeGroup, 2))
				assert.Contains(t, logs.String(), "ages left missing")
				return
			}
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, logs.String(), "ages left missing")
		})
	}
}

func TestParseAgeFallback(t *testing.T) {
	got, err := ParseAgeFallback("")
	require.NoError(t, err)
	assert.Equal(t, AgeFallbackNone, got)

	got, err = ParseAgeFallback("Class")
	require.NoError(t, err)
	assert.Equal(t, AgeFallbackClass, got)

	_, err = ParseAgeFallback("mean")
	assert.Error(t, err)
}

func TestCleanSkipsMissingColumns(t *testing.T) {
	df := dataframe.New(
		core.NumericSeries(data.ColAge, []float64{10, math.NaN()}),
		core.NumericSeries(data.ColFare, []float64{5, 7}),
	)

	out, outcomes, err := Clean(df, Options{Logger: testutil.NewTestLogger(t)})
	require.NoError(t, err)

	skipped := map[string]bool{}
	for _, o := range outcomes {
		skipped[o.Step] = o.Skipped
	}
	assert.True(t, skipped["fill_age"])
	assert.True(t, skipped["fill_embarked"])
	assert.True(t, skipped["fill_fare"])
	assert.True(t, skipped["family_size"])
	assert.True(t, skipped["is_alone"])
	assert.False(t, skipped["age_group"])
	assert.False(t, skipped["fare_quartile"])

	assert.False(t, core.Has(out, data.ColFamilySize))
	assert.False(t, core.Has(out, data.ColIsAlone))
	assert.True(t, core.Has(out, data.ColAgeGroup, data.ColFareQuartile))
	assert.True(t, core.IsNull(out.Col(data.ColAge).Elem(1)))
}
