package core

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Group holds the statistics of one joint key value, taken over the
// non-null values of the target column.
type Group struct {
	Key    []string
	Count  int
	Mean   float64
	Median float64
}

// Label joins the key parts with " / ".
func (g Group) Label() string { return strings.Join(g.Key, " / ") }

// ID is the lookup key RowKeys produces for the rows of g.
func (g Group) ID() string { return strings.Join(g.Key, "\x1f") }

func aggName(col string, t dataframe.AggregationType) string {
	return fmt.Sprintf("%s_%s", col, t)
}

// presentRows lists rows where every named column is non-null.
func presentRows(df dataframe.DataFrame, names []string) []int {
	cols := make([]series.Series, len(names))
	for i, n := range names {
		cols[i] = df.Col(n)
	}
	rows := make([]int, 0, df.Nrow())
next:
	for r := range df.Nrow() {
		for _, c := range cols {
			if IsNull(c.Elem(r)) {
				continue next
			}
		}
		rows = append(rows, r)
	}
	return rows
}

// GroupBy aggregates the non-null values of target by the joint value of
// keys. Rows with a null key are left out, as are groups whose target is
// entirely null. With no keys the whole table is one group. Groups are
// sorted by key; numeric key parts compare numerically.
func GroupBy(df dataframe.DataFrame, target string, keys ...string) ([]Group, error) {
	cols := append([]string{}, keys...)
	if !slices.Contains(keys, target) {
		cols = append(cols, target)
	}
	for _, c := range cols {
		if !Has(df, c) {
			return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, c)
		}
	}
	if KindOf(df.Col(target).Type()) != Numeric && !slices.Contains(keys, target) {
		return nil, fmt.Errorf("group by: %s is not numeric", target)
	}

	rows := presentRows(df, cols)
	if len(rows) == 0 {
		return nil, nil
	}
	sub := df.Select(cols).Subset(rows)
	if sub.Err != nil {
		return nil, fmt.Errorf("group by: %w", sub.Err)
	}

	if len(keys) == 0 {
		s := sub.Col(target)
		return []Group{{Count: s.Len(), Mean: s.Mean(), Median: s.Median()}}, nil
	}

	aggs := []dataframe.AggregationType{dataframe.Aggregation_COUNT}
	if KindOf(sub.Col(target).Type()) == Numeric {
		aggs = append(aggs, dataframe.Aggregation_MEAN, dataframe.Aggregation_MEDIAN)
	}
	targets := make([]string, len(aggs))
	for i := range targets {
		targets[i] = target
	}
	groups := sub.GroupBy(keys...)
	if groups.Err != nil {
		return nil, fmt.Errorf("group by: %w", groups.Err)
	}
	agg := groups.Aggregation(aggs, targets)
	if agg.Err != nil {
		return nil, fmt.Errorf("group by: %w", agg.Err)
	}

	out := make([]Group, agg.Nrow())
	for i := range out {
		g := Group{Key: make([]string, len(keys)), Mean: math.NaN(), Median: math.NaN()}
		for k, name := range keys {
			g.Key[k] = Label(agg.Col(name).Elem(i))
		}
		g.Count = int(agg.Col(aggName(target, dataframe.Aggregation_COUNT)).Elem(i).Float())
		if len(aggs) > 1 {
			g.Mean = agg.Col(aggName(target, dataframe.Aggregation_MEAN)).Elem(i).Float()
			g.Median = agg.Col(aggName(target, dataframe.Aggregation_MEDIAN)).Elem(i).Float()
		}
		out[i] = g
	}
	sort.SliceStable(out, func(a, b int) bool { return lessKey(out[a].Key, out[b].Key) })
	return out, nil
}

func lessKey(a, b []string) bool {
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		x, errX := strconv.ParseFloat(a[i], 64)
		y, errY := strconv.ParseFloat(b[i], 64)
		if errX == nil && errY == nil {
			return x < y
		}
		return a[i] < b[i]
	}
	return false
}

// RowKeys returns, per row, the lookup key matching Group.ID, and whether
// every key part of the row is present.
func RowKeys(df dataframe.DataFrame, keys ...string) ([]string, []bool, error) {
	cols := make([]series.Series, len(keys))
	for i, k := range keys {
		c, err := Col(df, k)
		if err != nil {
			return nil, nil, err
		}
		cols[i] = c
	}
	ids := make([]string, df.Nrow())
	ok := make([]bool, df.Nrow())
	parts := make([]string, len(keys))
	for r := range df.Nrow() {
		ok[r] = true
		for i, c := range cols {
			e := c.Elem(r)
			if IsNull(e) {
				ok[r] = false
				break
			}
			parts[i] = Label(e)
		}
		if ok[r] {
			ids[r] = strings.Join(parts, "\x1f")
		}
	}
	return ids, ok, nil
}

// Count pairs a label with the number of rows carrying it.
type Count struct {
	Label string
	N     int
}

// ValueCounts counts non-null values of a column in key order.
func ValueCounts(df dataframe.DataFrame, name string) ([]Count, error) {
	groups, err := GroupBy(df, name, name)
	if err != nil {
		return nil, err
	}
	out := make([]Count, len(groups))
	for i, g := range groups {
		out[i] = Count{Label: g.Key[0], N: g.Count}
	}
	return out, nil
}
