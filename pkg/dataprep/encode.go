package dataprep

import (
	"math"
	"sort"

	"github.com/go-gota/gota/series"

	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/core"
)

// LabelEncode maps the categories of a column to integers in sorted order,
// so "female" < "male" encodes as 0 and 1. Nulls stay null. Numeric columns
// come back as floats with a nil mapping.
func LabelEncode(s series.Series) (series.Series, map[string]int) {
	if core.KindOf(s.Type()) == core.Numeric {
		return core.NumericSeries(s.Name, s.Float()), nil
	}
	cats := core.Strings(s)
	sort.Strings(cats)
	mapping := map[string]int{}
	for _, v := range cats {
		if _, ok := mapping[v]; !ok {
			mapping[v] = len(mapping)
		}
	}
	out := make([]float64, s.Len())
	for i := range out {
		e := s.Elem(i)
		if core.IsNull(e) {
			out[i] = math.NaN()
			continue
		}
		out[i] = float64(mapping[core.Label(e)])
	}
	return core.NumericSeries(s.Name, out), mapping
}
