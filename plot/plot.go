// Package plot renders simulated concentration curves next to the measured
// samples.
package plot

import (
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/alexshd/kinetics"
)

// Series colors.
var (
	ColorA       = drawing.Color{R: 0, G: 0, B: 255, A: 255}
	ColorB       = drawing.Color{R: 0, G: 128, B: 0, A: 255}
	ColorC       = drawing.Color{R: 255, G: 128, B: 0, A: 255}
	ColorSamples = drawing.Color{R: 255, G: 0, B: 0, A: 255}
)

// minSpan is the smallest axis span drawn; narrower ranges are widened to 1.
const minSpan = 1e-6

// Bounds is the data window shown on the chart.
type Bounds struct {
	TMin, TMax float64
	CMin, CMax float64
}

// SampleBounds computes the window from the samples and the initial
// concentrations of B and C. Degenerate spans are widened to one unit and
// the lower edges never go below zero.
func SampleBounds(s kinetics.Samples) Bounds {
	b := Bounds{
		TMin: math.Inf(1), TMax: math.Inf(-1),
		CMin: math.Inf(1), CMax: math.Inf(-1),
	}
	for _, t := range s.Tm {
		b.TMin = math.Min(b.TMin, t)
		b.TMax = math.Max(b.TMax, t)
	}
	for _, c := range append([]float64{s.Cb, s.Cc}, s.Ca...) {
		b.CMin = math.Min(b.CMin, c)
		b.CMax = math.Max(b.CMax, c)
	}
	if len(s.Tm) == 0 {
		b.TMin, b.TMax = 0, 1
	}
	return b.normalize()
}

// Include widens the concentration window to cover every point of tr.
func (b Bounds) Include(tr kinetics.Trajectory) Bounds {
	for _, series := range []kinetics.Series{tr.A, tr.B, tr.C} {
		for _, p := range series {
			b.CMin = math.Min(b.CMin, p.C)
			b.CMax = math.Max(b.CMax, p.C)
		}
	}
	return b.normalize()
}

func (b Bounds) normalize() Bounds {
	if math.Abs(b.TMax-b.TMin) < minSpan {
		b.TMax = b.TMin + 1
	}
	if math.Abs(b.CMax-b.CMin) < minSpan {
		b.CMax = b.CMin + 1
	}
	if b.CMin < 0 {
		b.CMin = 0
	}
	if b.TMin < 0 {
		b.TMin = 0
	}
	return b
}

// Ticks returns n+1 evenly spaced values from lo to hi.
func Ticks(lo, hi float64, n int) []chart.Tick {
	if n < 1 {
		n = 1
	}
	ticks := make([]chart.Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := lo + (hi-lo)*float64(i)/float64(n)
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.1f", v)})
	}
	return ticks
}

// Options controls the rendered image.
type Options struct {
	Width  int    // Image width in pixels
	Height int    // Image height in pixels
	Title  string // Optional chart title
	Ticks  int    // Intervals per axis
}

// DefaultOptions returns a chart sized like the desktop plot area.
func DefaultOptions() Options {
	return Options{
		Width:  650,
		Height: 560,
		Ticks:  5,
	}
}

// Chart builds the chart for the samples and the simulated trajectory.
func Chart(s kinetics.Samples, tr kinetics.Trajectory, opts Options) chart.Chart {
	b := SampleBounds(s).Include(tr)

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		XAxis: chart.XAxis{
			Name:  "Time",
			Range: &chart.ContinuousRange{Min: b.TMin, Max: b.TMax},
			Ticks: Ticks(b.TMin, b.TMax, opts.Ticks),
		},
		YAxis: chart.YAxis{
			Name:  "Concentration",
			Range: &chart.ContinuousRange{Min: b.CMin, Max: b.CMax},
			Ticks: Ticks(b.CMin, b.CMax, opts.Ticks),
		},
		Series: []chart.Series{
			curve("A(t)", tr.A, ColorA),
			curve("B(t)", tr.B, ColorB),
			curve("C(t)", tr.C, ColorC),
			chart.ContinuousSeries{
				Name:    "Experiment",
				XValues: s.Tm,
				YValues: s.Ca,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColor:    ColorSamples,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph
}

func curve(name string, s kinetics.Series, color drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    name,
		XValues: s.Times(),
		YValues: s.Values(),
		Style:   chart.Style{StrokeColor: color, StrokeWidth: 2},
	}
}

// Render writes the chart as PNG.
func Render(w io.Writer, s kinetics.Samples, tr kinetics.Trajectory, opts Options) error {
	if len(s.Tm) == 0 || tr.Len() == 0 {
		return fmt.Errorf("plot: nothing to render (%d samples, %d curve points)", len(s.Tm), tr.Len())
	}
	if len(s.Ca) != len(s.Tm) {
		return fmt.Errorf("plot: %d concentrations for %d times", len(s.Ca), len(s.Tm))
	}
	graph := Chart(s, tr, opts)
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("plot: render: %w", err)
	}
	return nil
}
