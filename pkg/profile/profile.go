// Package profile summarises the shape and quality of a table before cleaning.
package profile

import (
	"fmt"
	"io"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/core"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/pipeline"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/stats"
)

// ColumnInfo holds per-column kind and missing-value figures.
type ColumnInfo struct {
	Name        string
	Kind        core.Kind
	Missing     int
	MissingPct  float64
	UniqueCount int
}

// Summary is the numeric description of one column.
type Summary struct {
	Name                string
	Count               int
	Mean, Std, Min, Max float64
	P25, P50, P75       float64
}

type Profile struct {
	Rows       int
	Cols       int
	Columns    []ColumnInfo
	Duplicates int
	Numeric    []Summary
}

// TotalMissing sums missing cells across all columns.
func (p Profile) TotalMissing() int {
	n := 0
	for _, c := range p.Columns {
		n += c.Missing
	}
	return n
}

// Build profiles df.
func Build(df dataframe.DataFrame) Profile {
	p := Profile{Rows: df.Nrow(), Cols: df.Ncol(), Duplicates: core.DuplicateRows(df)}
	schema := pipeline.SchemaOf(df)

	for i, name := range schema.FeatureNames {
		c := df.Col(name)
		info := ColumnInfo{Name: name, Kind: schema.Types[i], Missing: core.NullCount(c)}
		if p.Rows > 0 {
			info.MissingPct = float64(info.Missing) / float64(p.Rows) * 100
		}
		seen := map[string]struct{}{}
		for _, v := range core.Strings(c) {
			seen[v] = struct{}{}
		}
		info.UniqueCount = len(seen)
		p.Columns = append(p.Columns, info)
	}

	for _, name := range schema.Numeric() {
		vals := core.Floats(df.Col(name))
		s := Summary{Name: name, Count: len(vals)}
		if len(vals) == 0 {
			s.Mean, s.Std, s.Min, s.Max = math.NaN(), math.NaN(), math.NaN(), math.NaN()
			s.P25, s.P50, s.P75 = math.NaN(), math.NaN(), math.NaN()
		} else {
			s.Mean = stats.Mean(vals)
			s.Std = stats.SampleStd(vals)
			s.Min, s.Max = stats.MinMax(vals)
			s.P25 = stats.Percentile(vals, 25)
			s.P50 = stats.Percentile(vals, 50)
			s.P75 = stats.Percentile(vals, 75)
		}
		p.Numeric = append(p.Numeric, s)
	}
	return p
}

func num(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

// Render writes the profile as three tables: overview, columns and numeric summary.
func (p Profile) Render(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Shape: %d rows x %d columns\n", p.Rows, p.Cols)
	_, _ = fmt.Fprintf(w, "Duplicate rows: %d\n", p.Duplicates)
	_, _ = fmt.Fprintf(w, "Missing cells: %d\n\n", p.TotalMissing())

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"Column", "Type", "Unique", "Missing", "Missing %"})
	for _, c := range p.Columns {
		t.AppendRow(table.Row{c.Name, c.Kind.String(), c.UniqueCount, c.Missing, fmt.Sprintf("%.2f", c.MissingPct)})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	t.Render()

	if len(p.Numeric) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w)
	s := table.NewWriter()
	s.SetOutputMirror(w)
	s.SetStyle(table.StyleLight)
	s.Style().Format.Header = text.FormatDefault
	s.AppendHeader(table.Row{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"})
	for _, n := range p.Numeric {
		s.AppendRow(table.Row{n.Name, n.Count, num(n.Mean), num(n.Std), num(n.Min), num(n.P25), num(n.P50), num(n.P75), num(n.Max)})
	}
	s.Render()
}
