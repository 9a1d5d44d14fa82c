package dataprep

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"

	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/core"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/stats"
)

// ImputeGroupMedian replaces missing values of target in df with the median
// of the rows of ref sharing the same key values. Passing the pre-fill frame
// as ref lets a caller chain several passes against the same medians. With
// no keys the whole table is one group. Groups with no known value, and
// rows with a null key, keep their nulls. It returns the filled frame and
// the number of nulls left in target.
func ImputeGroupMedian(df, ref dataframe.DataFrame, target string, keys ...string) (dataframe.DataFrame, int, error) {
	col, err := core.Col(df, target)
	if err != nil {
		return df, 0, err
	}
	if core.KindOf(col.Type()) != core.Numeric {
		return df, 0, fmt.Errorf("impute median: %s is %s", target, core.KindOf(col.Type()))
	}
	groups, err := core.GroupBy(ref, target, keys...)
	if err != nil {
		return df, 0, err
	}
	medians := make(map[string]float64, len(groups))
	for _, g := range groups {
		if !math.IsNaN(g.Median) {
			medians[g.ID()] = g.Median
		}
	}
	ids, ok, err := core.RowKeys(df, keys...)
	if err != nil {
		return df, 0, err
	}

	for r := range col.Len() {
		e := col.Elem(r)
		if !core.IsNull(e) || !ok[r] {
			continue
		}
		if m, found := medians[ids[r]]; found {
			e.Set(m)
		}
	}
	out := df.Mutate(col)
	if out.Err != nil {
		return df, 0, out.Err
	}
	return out, core.NullCount(col), nil
}

// ImputeMode replaces missing values of a categorical column with its most
// frequent value. It returns the filled frame, the fill value, and false
// when the column had no values at all.
func ImputeMode(df dataframe.DataFrame, target string) (dataframe.DataFrame, string, bool, error) {
	col, err := core.Col(df, target)
	if err != nil {
		return df, "", false, err
	}
	if core.KindOf(col.Type()) != core.Categorical {
		return df, "", false, fmt.Errorf("impute mode: %s is %s", target, core.KindOf(col.Type()))
	}
	mode, ok := stats.ModeString(core.Strings(col))
	if !ok {
		return df, "", false, nil
	}
	for r := range col.Len() {
		if e := col.Elem(r); core.IsNull(e) {
			e.Set(mode)
		}
	}
	out := df.Mutate(col)
	if out.Err != nil {
		return df, "", false, out.Err
	}
	return out, mode, true, nil
}
