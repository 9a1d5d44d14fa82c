package profile

import (
	"bytes"
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/core"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/data"
)

func TestBuild(t *testing.T) {
	df := dataframe.New(
		core.NumericSeries("age", []float64{10, math.NaN(), 30, 10}),
		core.CategoricalSeries("sex", []string{"male", "female", "", "male"}),
	)

	p := Build(df)
	assert.Equal(t, 4, p.Rows)
	assert.Equal(t, 2, p.Cols)
	assert.Equal(t, 1, p.Duplicates)
	assert.Equal(t, 2, p.TotalMissing())

	require.Len(t, p.Columns, 2)
	assert.Equal(t, ColumnInfo{Name: "age", Kind: core.Numeric, Missing: 1, MissingPct: 25, UniqueCount: 2}, p.Columns[0])
	assert.Equal(t, core.Categorical, p.Columns[1].Kind)

	require.Len(t, p.Numeric, 1)
	s := p.Numeric[0]
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 50.0/3, s.Mean, 1e-9)
	assert.Equal(t, 10.0, s.Min)
	assert.Equal(t, 30.0, s.Max)
	assert.Equal(t, 10.0, s.P50)
}

func TestBuildSynthetic(t *testing.T) {
	p := Build(data.Synthetic(data.SyntheticSeed, data.SyntheticRows))
	assert.Equal(t, 891, p.Rows)
	assert.Equal(t, 8, p.Cols)
	assert.Equal(t, 179, p.TotalMissing())
	for _, c := range p.Columns {
		if c.Name == data.ColAge {
			assert.InDelta(t, 177.0/891*100, c.MissingPct, 1e-9)
		}
	}
}

func TestRender(t *testing.T) {
	df := dataframe.New(
		core.NumericSeries("fare", []float64{7.25, 71.28}),
		core.CategoricalSeries("embarked", []string{"S", ""}),
	)

	var buf bytes.Buffer
	Build(df).Render(&buf)
	out := buf.String()
	assert.Contains(t, out, "Shape: 2 rows x 2 columns")
	assert.Contains(t, out, "Duplicate rows: 0")
	assert.Contains(t, out, "embarked")
	assert.Contains(t, out, "50.00")
	// headers keep their case
	assert.Contains(t, out, "Mean")
	assert.Contains(t, out, "Missing %")
	assert.NotContains(t, out, "MEAN")
}

func TestBuildAllNullNumeric(t *testing.T) {
	p := Build(dataframe.New(core.NumericSeries("age", []float64{math.NaN(), math.NaN()})))
	require.Len(t, p.Numeric, 1)
	assert.Zero(t, p.Numeric[0].Count)
	assert.True(t, math.IsNaN(p.Numeric[0].Mean))

	var buf bytes.Buffer
	p.Render(&buf)
	assert.Contains(t, buf.String(), "-")
}
