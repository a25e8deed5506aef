package plot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/alexshd/kinetics"
)

func demoSamples() kinetics.Samples {
	return kinetics.Samples{
		Ca: []float64{2.0, 1.8, 1.6, 1.4, 1.2},
		Tm: []float64{0, 1, 2, 3, 4},
		Cb: 0.1,
		Cc: 0.7,
	}
}

func TestSampleBounds(t *testing.T) {
	b := SampleBounds(demoSamples())

	assert.Equal(t, Bounds{TMin: 0, TMax: 4, CMin: 0.1, CMax: 2.0}, b)
}

func TestSampleBounds_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		s    kinetics.Samples
		want Bounds
	}{
		{
			name: "no samples",
			s:    kinetics.Samples{Cb: 0.5, Cc: 0.5},
			want: Bounds{TMin: 0, TMax: 1, CMin: 0.5, CMax: 1.5},
		},
		{
			name: "single time",
			s:    kinetics.Samples{Ca: []float64{1}, Tm: []float64{3}, Cb: 0, Cc: 2},
			want: Bounds{TMin: 3, TMax: 4, CMin: 0, CMax: 2},
		},
		{
			name: "negative time clipped",
			s:    kinetics.Samples{Ca: []float64{1, 0.5}, Tm: []float64{-2, 2}},
			want: Bounds{TMin: 0, TMax: 2, CMin: 0, CMax: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SampleBounds(tt.s))
		})
	}
}

func TestBounds_Include(t *testing.T) {
	s := demoSamples()
	tr := kinetics.Curves(s, kinetics.RateLaw{K: 0.45, N: 0}, kinetics.RenderSubSteps)

	// B ends above every sample, A stays above Cb.
	b := SampleBounds(s).Include(tr)

	assert.Equal(t, 0.1, b.CMin)
	assert.InDelta(t, 0.1+kinetics.YieldB*1.8, b.CMax, 1e-9)
	assert.Equal(t, 4.0, b.TMax)
}

func TestTicks(t *testing.T) {
	ticks := Ticks(0, 4, 5)

	require.Len(t, ticks, 6)
	assert.Equal(t, chart.Tick{Value: 0, Label: "0.0"}, ticks[0])
	assert.Equal(t, "0.8", ticks[1].Label)
	assert.Equal(t, chart.Tick{Value: 4, Label: "4.0"}, ticks[5])

	assert.Len(t, Ticks(0, 1, 0), 2)
}

func TestChart_Series(t *testing.T) {
	s := demoSamples()
	tr := kinetics.Curves(s, kinetics.RateLaw{K: 0.2, N: 0}, kinetics.RenderSubSteps)

	graph := Chart(s, tr, DefaultOptions())

	require.Len(t, graph.Series, 4)
	names := make([]string, 0, len(graph.Series))
	for _, series := range graph.Series {
		names = append(names, series.GetName())
	}
	assert.Equal(t, []string{"A(t)", "B(t)", "C(t)", "Experiment"}, names)
	assert.Len(t, graph.Elements, 1)
}

func TestRender_PNG(t *testing.T) {
	s := demoSamples()
	fit, err := kinetics.Estimate(s.Ca, s.Tm, s.Cb, s.Cc)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = Render(&buf, s, kinetics.Curves(s, fit.Law(), kinetics.RenderSubSteps), DefaultOptions())
	require.NoError(t, err)

	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), buf.Bytes()[:8])
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, kinetics.Samples{}, kinetics.Trajectory{}, DefaultOptions())
	require.Error(t, err)
	assert.Zero(t, buf.Len())

	s := demoSamples()
	tr := kinetics.Curves(s, kinetics.RateLaw{K: 0.2, N: 0}, kinetics.RenderSubSteps)
	s.Ca = s.Ca[:2]
	require.Error(t, Render(&buf, s, tr, DefaultOptions()))
}
