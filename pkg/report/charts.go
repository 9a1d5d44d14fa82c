package report

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/core"
)

var (
	colorBlue   = color.RGBA{R: 52, G: 101, B: 164, A: 255}
	colorRed    = color.RGBA{R: 204, G: 0, B: 0, A: 255}
	colorGreen  = color.RGBA{R: 78, G: 154, B: 6, A: 255}
	colorOrange = color.RGBA{R: 245, G: 121, B: 0, A: 255}
	colorGray   = color.RGBA{R: 120, G: 120, B: 120, A: 255}

	seriesColors = []color.Color{colorBlue, colorRed, colorGreen, colorOrange}
)

// Panel is one cell of the chart grid.
type Panel struct {
	Title       string
	Plot        *plot.Plot
	Placeholder bool
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

// placeholder stands in for a panel whose inputs are unavailable.
func placeholder(title, msg string) Panel {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	sty := p.Title.TextStyle
	sty.Font.Size = vg.Points(9)
	sty.XAlign = text.XCenter
	sty.YAlign = text.YCenter
	p.Add(notice{text: msg, style: sty})
	return Panel{Title: title, Plot: p, Placeholder: true}
}

// notice draws one line of text centred in the data area. It reports no
// glyph boxes, so it never widens the plot padding; long text is shrunk to
// the width of the tile instead.
type notice struct {
	text  string
	style text.Style
}

func (n notice) Plot(c draw.Canvas, _ *plot.Plot) {
	sty := n.style
	avail := c.Max.X - c.Min.X
	if w := sty.Width(n.text); w > avail && avail > 0 {
		sty.Font.Size = sty.Font.Size * avail / w
	}
	c.FillText(sty, vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}, n.text)
}

func barPlot(title, xLabel, yLabel string, labels []string, values []float64, c color.Color) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no data")
	}
	p := newPlot(title, xLabel, yLabel)
	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(18))
	if err != nil {
		return nil, err
	}
	bars.Color = c
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)
	p.Y.Min = 0
	return p, nil
}

// barGroup is one colour group of a grouped bar chart.
type barGroup struct {
	Name   string
	Values []float64
}

func groupedBarPlot(title, xLabel, yLabel string, labels []string, ss []barGroup) (*plot.Plot, error) {
	if len(ss) == 0 || len(labels) == 0 {
		return nil, fmt.Errorf("no data")
	}
	p := newPlot(title, xLabel, yLabel)
	w := vg.Points(12)
	for i, s := range ss {
		bars, err := plotter.NewBarChart(plotter.Values(s.Values), w)
		if err != nil {
			return nil, err
		}
		bars.Color = seriesColors[i%len(seriesColors)]
		bars.LineStyle.Width = 0
		bars.Offset = vg.Length(float64(i)-float64(len(ss)-1)/2) * w
		p.Add(bars)
		p.Legend.Add(s.Name, bars)
	}
	p.Legend.Top = true
	p.NominalX(labels...)
	p.Y.Min = 0
	return p, nil
}

func histPlot(title, xLabel string, values []float64, bins int, c color.Color) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no data")
	}
	p := newPlot(title, xLabel, "Count")
	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = c
	h.LineStyle.Color = color.White
	p.Add(h)
	return p, nil
}

// heatMapPlot draws a square matrix in [-1, 1] with its values printed in the cells.
func heatMapPlot(title string, m *core.Matrix) (*plot.Plot, error) {
	if m.Size() == 0 {
		return nil, fmt.Errorf("no data")
	}
	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)

	p := newPlot(title, "", "")
	hm := plotter.NewHeatMap(m, cm.Palette(255))
	hm.Min, hm.Max = -1, 1
	p.Add(hm)

	var xys plotter.XYs
	var texts []string
	c, r := m.Dims()
	for y := range r {
		for x := range c {
			xys = append(xys, plotter.XY{X: m.X(x) - 0.3, Y: m.Y(y)})
			texts = append(texts, fmt.Sprintf("%.2f", m.Z(x, y)))
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(6)
	}
	p.Add(labels)

	yLabels := make([]string, len(m.Labels))
	for i, l := range m.Labels {
		yLabels[len(m.Labels)-1-i] = l
	}
	p.NominalX(m.Labels...)
	p.NominalY(yLabels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	return p, nil
}

// RenderGrid draws the panels row by row into a cols-wide grid and writes it
// as PNG.
func RenderGrid(w io.Writer, panels []Panel, cols int, width, height vg.Length) error {
	if len(panels) == 0 {
		return fmt.Errorf("render grid: no panels")
	}
	if cols <= 0 {
		cols = 1
	}
	rows := (len(panels) + cols - 1) / cols

	plots := make([][]*plot.Plot, rows)
	for j := range rows {
		plots[j] = make([]*plot.Plot, cols)
		for i := range cols {
			k := j*cols + i
			if k < len(panels) && panels[k].Plot != nil {
				plots[j][i] = panels[k].Plot
				continue
			}
			empty := plot.New()
			empty.HideAxes()
			plots[j][i] = empty
		}
	}

	img := vgimg.New(width, height)
	dc := draw.New(img)
	t := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 6,
		PadY:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 4,
		PadBottom: vg.Millimeter * 4,
		PadLeft:   vg.Millimeter * 4,
		PadRight:  vg.Millimeter * 4,
	}
	canvases := plot.Align(plots, t, dc)
	for j := range rows {
		for i := range cols {
			c := canvases[j][i]
			if !usable(c) || !usable(plots[j][i].DataCanvas(c)) {
				return fmt.Errorf("render grid: %.0fpt x %.0fpt is too small for %d x %d panels", float64(width), float64(height), rows, cols)
			}
		}
	}
	for j := range rows {
		for i := range cols {
			plots[j][i].Draw(canvases[j][i])
		}
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("render grid: %w", err)
	}
	return nil
}

// usable reports whether c is a finite, non-empty area.
func usable(c draw.Canvas) bool {
	for _, v := range []vg.Length{c.Min.X, c.Min.Y, c.Max.X, c.Max.Y} {
		if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
			return false
		}
	}
	return c.Max.X > c.Min.X && c.Max.Y > c.Min.Y
}

// SaveGrid renders the grid to a PNG file at path.
func SaveGrid(path string, panels []Panel, cols int, width, height vg.Length) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save grid: %w", err)
	}
	if err := RenderGrid(f, panels, cols, width, height); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
