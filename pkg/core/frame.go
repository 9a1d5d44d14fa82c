// Package core holds the table helpers shared by the loader, the cleaning
// steps and the reports. Tables are gota dataframes; a null is a NaN float
// or a "NaN" string element.
package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var ErrColumnNotFound = errors.New("column not found")

// NA is the string gota reads as a missing categorical value.
const NA = "NaN"

// Kind tells how a column stores its values.
type Kind int

const (
	Numeric Kind = iota
	Categorical
)

func (k Kind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "categorical"
}

// KindOf maps gota's Int and Float types to Numeric, everything else to
// Categorical.
func KindOf(t series.Type) Kind {
	if t == series.Float || t == series.Int {
		return Numeric
	}
	return Categorical
}

// NumericSeries builds a float column; NaN values are nulls.
func NumericSeries(name string, values []float64) series.Series {
	return series.New(values, series.Float, name)
}

// CategoricalSeries builds a string column; empty strings become nulls.
func CategoricalSeries(name string, values []string) series.Series {
	vals := make([]string, len(values))
	for i, v := range values {
		if v == "" {
			v = NA
		}
		vals[i] = v
	}
	return series.New(vals, series.String, name)
}

// Has reports whether every named column exists.
func Has(df dataframe.DataFrame, names ...string) bool {
	have := make(map[string]bool, df.Ncol())
	for _, n := range df.Names() {
		have[n] = true
	}
	for _, n := range names {
		if !have[n] {
			return false
		}
	}
	return true
}

// Col returns a copy of the named column.
func Col(df dataframe.DataFrame, name string) (series.Series, error) {
	if !Has(df, name) {
		return series.Series{}, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}
	return df.Col(name), nil
}

// IsNull reports whether e is missing. Numeric elements are missing when
// their value is NaN.
func IsNull(e series.Element) bool {
	if KindOf(e.Type()) == Numeric {
		return math.IsNaN(e.Float())
	}
	return e.IsNA()
}

func NullCount(s series.Series) int {
	n := 0
	for i := range s.Len() {
		if IsNull(s.Elem(i)) {
			n++
		}
	}
	return n
}

// Floats returns the non-null values of a numeric column.
func Floats(s series.Series) []float64 {
	out := make([]float64, 0, s.Len())
	for _, v := range s.Float() {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Strings returns the labels of the non-null values of s.
func Strings(s series.Series) []string {
	out := make([]string, 0, s.Len())
	for i := range s.Len() {
		if e := s.Elem(i); !IsNull(e) {
			out = append(out, Label(e))
		}
	}
	return out
}

// Label formats e as text: "" when null, shortest form for numbers.
func Label(e series.Element) string {
	if IsNull(e) {
		return ""
	}
	if KindOf(e.Type()) == Numeric {
		return strconv.FormatFloat(e.Float(), 'f', -1, 64)
	}
	return e.String()
}

// DuplicateRows counts rows identical to an earlier row across all columns.
func DuplicateRows(df dataframe.DataFrame) int {
	cols := make([]series.Series, df.Ncol())
	for i, n := range df.Names() {
		cols[i] = df.Col(n)
	}
	seen := make(map[string]struct{}, df.Nrow())
	dups := 0
	var sb strings.Builder
	for r := range df.Nrow() {
		sb.Reset()
		for _, c := range cols {
			if e := c.Elem(r); IsNull(e) {
				sb.WriteString("\x00null")
			} else {
				sb.WriteString(Label(e))
			}
			sb.WriteByte('\x1f')
		}
		key := sb.String()
		if _, ok := seen[key]; ok {
			dups++
			continue
		}
		seen[key] = struct{}{}
	}
	return dups
}
