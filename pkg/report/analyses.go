// Package report turns a cleaned passenger table into chart panels and
// printed findings. It only reads the table.
package report

import (
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"

	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/core"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/data"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/dataprep"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/stats"
)

// GridCols is the number of panels per grid row; twelve panels make 3 x 4.
const GridCols = 4

// Rate is the survival rate of one group.
type Rate struct {
	Label string
	Rate  float64
	N     int
}

// SurvivalBy returns the mean of survived per value of key. When order is
// given, groups follow it and unknown labels go last.
func SurvivalBy(df dataframe.DataFrame, key string, order ...string) ([]Rate, error) {
	groups, err := core.GroupBy(df, data.ColSurvived, key)
	if err != nil {
		return nil, err
	}
	out := make([]Rate, 0, len(groups))
	for _, g := range groups {
		out = append(out, Rate{Label: g.Key[0], Rate: g.Mean, N: g.Count})
	}
	if len(order) > 0 {
		pos := make(map[string]int, len(order))
		for i, l := range order {
			pos[l] = i
		}
		rank := func(l string) int {
			if i, ok := pos[l]; ok {
				return i
			}
			return len(order)
		}
		sort.SliceStable(out, func(a, b int) bool { return rank(out[a].Label) < rank(out[b].Label) })
	}
	return out, nil
}

func splitRates(rates []Rate) ([]string, []float64) {
	labels := make([]string, len(rates))
	values := make([]float64, len(rates))
	for i, r := range rates {
		labels[i] = r.Label
		values[i] = r.Rate
	}
	return labels, values
}

func splitCounts(counts []core.Count) ([]string, []float64) {
	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, c := range counts {
		labels[i] = c.Label
		values[i] = float64(c.N)
	}
	return labels, values
}

type analysis struct {
	title string
	needs []string
	build func(df dataframe.DataFrame, title string) (*plot.Plot, error)
}

func survivalBar(key, xLabel string, order ...string) func(dataframe.DataFrame, string) (*plot.Plot, error) {
	return func(df dataframe.DataFrame, title string) (*plot.Plot, error) {
		rates, err := SurvivalBy(df, key, order...)
		if err != nil {
			return nil, err
		}
		labels, values := splitRates(rates)
		return barPlot(title, xLabel, "Survival rate", labels, values, colorGreen)
	}
}

func countBar(key, xLabel string) func(dataframe.DataFrame, string) (*plot.Plot, error) {
	return func(df dataframe.DataFrame, title string) (*plot.Plot, error) {
		counts, err := core.ValueCounts(df, key)
		if err != nil {
			return nil, err
		}
		labels, values := splitCounts(counts)
		return barPlot(title, xLabel, "Passengers", labels, values, colorBlue)
	}
}

func histogram(key, xLabel string, bins int, c color.Color) func(dataframe.DataFrame, string) (*plot.Plot, error) {
	return func(df dataframe.DataFrame, title string) (*plot.Plot, error) {
		col, err := core.Col(df, key)
		if err != nil {
			return nil, err
		}
		return histPlot(title, xLabel, core.Floats(col), bins, c)
	}
}

var analyses = []analysis{
	{
		title: "Overall survival",
		needs: []string{data.ColSurvived},
		build: func(df dataframe.DataFrame, title string) (*plot.Plot, error) {
			counts, err := core.ValueCounts(df, data.ColSurvived)
			if err != nil {
				return nil, err
			}
			labels, values := splitCounts(counts)
			for i, l := range labels {
				switch l {
				case "0":
					labels[i] = "Died"
				case "1":
					labels[i] = "Survived"
				}
			}
			return barPlot(title, "", "Passengers", labels, values, colorBlue)
		},
	},
	{title: "Survival by sex", needs: []string{data.ColSurvived, data.ColSex}, build: survivalBar(data.ColSex, "Sex")},
	{title: "Survival by class", needs: []string{data.ColSurvived, data.ColPclass}, build: survivalBar(data.ColPclass, "Class")},
	{title: "Age distribution", needs: []string{data.ColAge}, build: histogram(data.ColAge, "Age", 30, colorOrange)},
	{
		title: "Survival by age group",
		needs: []string{data.ColSurvived, data.ColAgeGroup},
		build: survivalBar(data.ColAgeGroup, "Age group", dataprep.AgeLabels...),
	},
	{title: "Fare distribution", needs: []string{data.ColFare}, build: histogram(data.ColFare, "Fare", 40, colorGray)},
	{title: "Family size", needs: []string{data.ColFamilySize}, build: countBar(data.ColFamilySize, "Family size")},
	{
		title: "Survival by family size",
		needs: []string{data.ColSurvived, data.ColFamilySize},
		build: survivalBar(data.ColFamilySize, "Family size"),
	},
	{title: "Port of embarkation", needs: []string{data.ColEmbarked}, build: countBar(data.ColEmbarked, "Port")},
	{
		title: "Survival by port",
		needs: []string{data.ColSurvived, data.ColEmbarked},
		build: survivalBar(data.ColEmbarked, "Port"),
	},
	{
		title: "Correlation matrix",
		build: func(df dataframe.DataFrame, title string) (*plot.Plot, error) {
			return heatMapPlot(title, CorrelationMatrix(df))
		},
	},
	{
		title: "Survival by class and sex",
		needs: []string{data.ColSurvived, data.ColPclass, data.ColSex},
		build: classSexPlot,
	},
}

// Panels builds the twelve fixed panels. Missing inputs yield placeholders.
func Panels(df dataframe.DataFrame) []Panel {
	out := make([]Panel, 0, len(analyses))
	for _, a := range analyses {
		var missing []string
		for _, n := range a.needs {
			if !core.Has(df, n) {
				missing = append(missing, n)
			}
		}
		if len(missing) > 0 {
			out = append(out, placeholder(a.title, "missing column: "+strings.Join(missing, ", ")))
			continue
		}
		p, err := a.build(df, a.title)
		if err != nil {
			out = append(out, placeholder(a.title, "unavailable: "+err.Error()))
			continue
		}
		out = append(out, Panel{Title: a.title, Plot: p})
	}
	return out
}

// correlationColumns are the candidates for the correlation matrix, in order.
// sex is label encoded, female = 0.
var correlationColumns = []string{
	data.ColSurvived, data.ColPclass, data.ColSex, data.ColAge, data.ColSibSp,
	data.ColParch, data.ColFare, data.ColFamilySize, data.ColIsAlone,
}

// CorrelationMatrix computes pairwise Pearson correlations over the rows
// where both values are present. Undefined coefficients are reported as 0.
func CorrelationMatrix(df dataframe.DataFrame) *core.Matrix {
	var cols [][]float64
	var names []string
	for _, n := range correlationColumns {
		c, err := core.Col(df, n)
		if err != nil {
			continue
		}
		if core.KindOf(c.Type()) == core.Categorical {
			c, _ = dataprep.LabelEncode(c)
		}
		cols = append(cols, c.Float())
		names = append(names, n)
	}

	m := core.NewMatrix(names...)
	for i := range cols {
		for j := i; j < len(cols); j++ {
			var x, y []float64
			for r := range df.Nrow() {
				if math.IsNaN(cols[i][r]) || math.IsNaN(cols[j][r]) {
					continue
				}
				x = append(x, cols[i][r])
				y = append(y, cols[j][r])
			}
			v := stats.Correlation(x, y)
			if math.IsNaN(v) {
				v = 0
			}
			m.Set(i, j, v)
		}
	}
	return m
}

func classSexPlot(df dataframe.DataFrame, title string) (*plot.Plot, error) {
	groups, err := core.GroupBy(df, data.ColSurvived, data.ColPclass, data.ColSex)
	if err != nil {
		return nil, err
	}

	var classes, sexes []string
	seenClass, seenSex := map[string]bool{}, map[string]bool{}
	rates := map[[2]string]float64{}
	for _, g := range groups {
		c, s := g.Key[0], g.Key[1]
		if !seenClass[c] {
			seenClass[c] = true
			classes = append(classes, c)
		}
		if !seenSex[s] {
			seenSex[s] = true
			sexes = append(sexes, s)
		}
		rates[[2]string{c, s}] = g.Mean
	}
	sort.Strings(sexes)

	bs := make([]barGroup, len(sexes))
	for i, s := range sexes {
		bs[i].Name = s
		for _, c := range classes {
			v, ok := rates[[2]string{c, s}]
			if !ok || math.IsNaN(v) {
				v = 0
			}
			bs[i].Values = append(bs[i].Values, v)
		}
	}
	return groupedBarPlot(title, "Class", "Survival rate", classes, bs)
}
