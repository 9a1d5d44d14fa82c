package dataprep

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"

	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/core"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/data"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/stats"
)

// Age group boundaries, right-closed: (0,12], (12,18], (18,35], (35,60], (60,100].
var (
	AgeEdges  = []float64{0, 12, 18, 35, 60, 100}
	AgeLabels = []string{"Child", "Teen", "Young Adult", "Adult", "Senior"}

	FareLabels = []string{"Low", "Medium", "High", "Very High"}
)

// Cut bins values into right-closed intervals (edges[i], edges[i+1]] named by
// labels. NaN and out-of-range values get "". With includeLowest the first
// interval also takes edges[0].
func Cut(values []float64, edges []float64, labels []string, includeLowest bool) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		for b := 0; b+1 < len(edges) && b < len(labels); b++ {
			lo, hi := edges[b], edges[b+1]
			if (v > lo || (includeLowest && b == 0 && v == lo)) && v <= hi {
				out[i] = labels[b]
				break
			}
		}
	}
	return out
}

// QCut bins values into len(labels) equal-frequency groups using linearly
// interpolated quantiles of the non-NaN values. Tied edges leave the
// corresponding bin empty.
func QCut(values []float64, labels []string) []string {
	var present []float64
	for _, v := range values {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}
	if len(present) == 0 {
		return make([]string, len(values))
	}
	q := len(labels)
	edges := make([]float64, q+1)
	for k := range edges {
		edges[k] = stats.Percentile(present, float64(k)*100/float64(q))
	}
	return Cut(values, edges, labels, true)
}

func numeric(df dataframe.DataFrame, name string) ([]float64, error) {
	c, err := core.Col(df, name)
	if err != nil {
		return nil, err
	}
	if core.KindOf(c.Type()) != core.Numeric {
		return nil, fmt.Errorf("%s is %s", name, core.KindOf(c.Type()))
	}
	return c.Float(), nil
}

// AddFamilySize adds sibsp + parch + 1.
func AddFamilySize(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	sibsp, err := numeric(df, data.ColSibSp)
	if err != nil {
		return df, err
	}
	parch, err := numeric(df, data.ColParch)
	if err != nil {
		return df, err
	}
	fs := make([]float64, len(sibsp))
	for i := range fs {
		fs[i] = sibsp[i] + parch[i] + 1
	}
	return df.Mutate(core.NumericSeries(data.ColFamilySize, fs)), nil
}

// AddAgeGroup bins age into the five AgeLabels.
func AddAgeGroup(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	age, err := numeric(df, data.ColAge)
	if err != nil {
		return df, err
	}
	return df.Mutate(core.CategoricalSeries(data.ColAgeGroup, Cut(age, AgeEdges, AgeLabels, false))), nil
}

// AddFareQuartile bins fare into four equal-frequency FareLabels.
func AddFareQuartile(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	fare, err := numeric(df, data.ColFare)
	if err != nil {
		return df, fmt.Errorf("fare quartile: %w", err)
	}
	return df.Mutate(core.CategoricalSeries(data.ColFareQuartile, QCut(fare, FareLabels))), nil
}

// AddIsAlone adds 1 where family_size is 1, else 0.
func AddIsAlone(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	fs, err := numeric(df, data.ColFamilySize)
	if err != nil {
		return df, err
	}
	alone := make([]float64, len(fs))
	for i, v := range fs {
		switch {
		case math.IsNaN(v):
			alone[i] = math.NaN()
		case v == 1:
			alone[i] = 1
		}
	}
	return df.Mutate(core.NumericSeries(data.ColIsAlone, alone)), nil
}
