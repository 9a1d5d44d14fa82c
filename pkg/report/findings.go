package report

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gota/gota/dataframe"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/core"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/data"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/dataprep"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// Gap compares the best and worst group of one breakdown.
type Gap struct {
	High, Low Rate
}

// Points is the difference between the two rates in percentage points.
func (g Gap) Points() float64 { return (g.High.Rate - g.Low.Rate) * 100 }

// Findings are the headline numbers printed after the charts. Nil fields
// could not be computed from the table.
type Findings struct {
	Passengers int
	Survivors  int
	Overall    *float64

	Sex          *Gap
	Class        *Gap
	Child        *Rate
	BestFamily   *Rate
	FareQuartile *Gap
}

func gapOf(rates []Rate) *Gap {
	if len(rates) < 2 {
		return nil
	}
	g := Gap{High: rates[0], Low: rates[0]}
	for _, r := range rates[1:] {
		if r.Rate > g.High.Rate {
			g.High = r
		}
		if r.Rate < g.Low.Rate {
			g.Low = r
		}
	}
	return &g
}

// ComputeFindings recomputes the grouped survival rates behind the summary.
func ComputeFindings(df dataframe.DataFrame) Findings {
	var out Findings
	surv, err := core.Col(df, data.ColSurvived)
	if err != nil {
		return out
	}
	vals := core.Floats(surv)
	if len(vals) > 0 {
		sum := 0.0
		for _, v := range vals {
			sum += v
		}
		rate := sum / float64(len(vals))
		out.Passengers = len(vals)
		out.Survivors = int(math.Round(sum))
		out.Overall = &rate
	}

	if rates, err := SurvivalBy(df, data.ColSex); err == nil {
		out.Sex = gapOf(rates)
	}
	if rates, err := SurvivalBy(df, data.ColPclass); err == nil {
		out.Class = gapOf(rates)
	}
	if rates, err := SurvivalBy(df, data.ColAgeGroup, dataprep.AgeLabels...); err == nil {
		for _, r := range rates {
			if r.Label == dataprep.AgeLabels[0] {
				out.Child = &r
			}
		}
	}
	if rates, err := SurvivalBy(df, data.ColFamilySize); err == nil && len(rates) > 0 {
		best := rates[0]
		for _, r := range rates[1:] {
			if r.Rate > best.Rate {
				best = r
			}
		}
		out.BestFamily = &best
	}
	if rates, err := SurvivalBy(df, data.ColFareQuartile, dataprep.FareLabels...); err == nil {
		out.FareQuartile = gapOf(rates)
	}
	return out
}

func pct(v float64) string { return fmt.Sprintf("%.1f%%", v*100) }

// WriteFindings prints the findings as sentences. Findings that could not be
// computed are left out.
func WriteFindings(w io.Writer, fs Findings) error {
	title := cases.Title(language.English)
	lines := []string{headingStyle.Render("Key findings")}

	if fs.Overall != nil {
		lines = append(lines, fmt.Sprintf("Overall survival rate was %s (%d of %d passengers).",
			pct(*fs.Overall), fs.Survivors, fs.Passengers))
	}
	if g := fs.Sex; g != nil {
		lines = append(lines, fmt.Sprintf("%s passengers survived at %s versus %s for %s passengers, a gap of %.1f points.",
			title.String(g.High.Label), pct(g.High.Rate), pct(g.Low.Rate), title.String(g.Low.Label), g.Points()))
	}
	if g := fs.Class; g != nil {
		lines = append(lines, fmt.Sprintf("Class %s had the highest survival rate (%s) and class %s the lowest (%s), a gap of %.1f points.",
			g.High.Label, pct(g.High.Rate), g.Low.Label, pct(g.Low.Rate), g.Points()))
	}
	if c := fs.Child; c != nil {
		line := fmt.Sprintf("Children aged 12 or under survived at %s (%d passengers)", pct(c.Rate), c.N)
		if fs.Overall != nil {
			line += fmt.Sprintf(", %+.1f points against the overall rate", (c.Rate-*fs.Overall)*100)
		}
		lines = append(lines, line+".")
	}
	if b := fs.BestFamily; b != nil {
		lines = append(lines, fmt.Sprintf("A family size of %s gave the best survival rate at %s (%d passengers).",
			b.Label, pct(b.Rate), b.N))
	}
	if g := fs.FareQuartile; g != nil {
		lines = append(lines, fmt.Sprintf("%s fares survived at %s against %s for %s fares.",
			title.String(g.High.Label), pct(g.High.Rate), pct(g.Low.Rate), title.String(g.Low.Label)))
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
