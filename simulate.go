package kinetics

import "math"

// Sub-step counts used by the two callers of Simulate. Variance estimation
// favors accuracy, rendering favors a smooth curve at pixel resolution.
// Both run the same update equations.
const (
	VarianceSubSteps = 70
	RenderSubSteps   = 20
)

// Stoichiometric yields per unit of A consumed, fixed by 3A = 7B + 3C.
const (
	YieldB = 7.0 / 3.0
	YieldC = 1.0
)

// RateLaw is the empirical rate law W = K·Aᴺ.
type RateLaw struct {
	K float64 `json:"k"` // Rate constant
	N float64 `json:"n"` // Reaction order
}

// Rate evaluates K·aᴺ. Concentrations below Epsilon react at rate zero.
func (l RateLaw) Rate(a float64) float64 {
	if a < Epsilon {
		return 0
	}
	return l.K * math.Pow(a, l.N)
}

// Validate reports a law Simulate cannot integrate: a negative or
// non-finite rate constant, or a non-finite order. A negative constant
// produces A without bound.
func (l RateLaw) Validate() error {
	if !allFinite(l.K, l.N) {
		return invalidInput(-1, "non-finite rate law (k=%g, n=%g)", l.K, l.N)
	}
	if l.K < 0 {
		return invalidInput(-1, "negative rate constant %g", l.K)
	}
	return nil
}

// Concentrations is the state vector of the three species.
type Concentrations struct {
	A, B, C float64
}

// Point is one recorded (time, concentration) pair.
type Point struct {
	T float64 `json:"t"`
	C float64 `json:"c"`
}

// Series is an ordered sequence of points for one species.
type Series []Point

// Times returns the time coordinates of the series.
func (s Series) Times() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.T
	}
	return out
}

// Values returns the concentration coordinates of the series.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.C
	}
	return out
}

// Trajectory holds the simulated curves of A, B and C on a shared time axis.
type Trajectory struct {
	A Series `json:"a"`
	B Series `json:"b"`
	C Series `json:"c"`
}

// Len returns the number of recorded points.
func (tr Trajectory) Len() int {
	return len(tr.A)
}

// Final returns the last recorded state, or the zero value for an empty trajectory.
func (tr Trajectory) Final() Concentrations {
	n := len(tr.A)
	if n == 0 {
		return Concentrations{}
	}
	return Concentrations{A: tr.A[n-1].C, B: tr.B[n-1].C, C: tr.C[n-1].C}
}

func (tr *Trajectory) record(t float64, c Concentrations) {
	tr.A = append(tr.A, Point{T: t, C: c.A})
	tr.B = append(tr.B, Point{T: t, C: c.B})
	tr.C = append(tr.C, Point{T: t, C: c.C})
}

// SimulationConfig controls the integration grid.
type SimulationConfig struct {
	SubSteps       int  // Euler steps per grid interval (min 1)
	RecordSubSteps bool // Record every sub-step instead of only grid points
}

// step advances the state by one explicit Euler step of width dt.
// Consumption is limited to the A that is left, so A stays non-negative and
// B and C track the amount of A actually consumed.
func step(c Concentrations, law RateLaw, dt float64) Concentrations {
	if c.A < Epsilon {
		c.A = 0
	}
	if dt <= 0 {
		return c
	}
	d := law.Rate(c.A) * dt
	if d > c.A {
		d = c.A
	}
	c.A -= d
	c.B += YieldB * d
	c.C += YieldC * d
	return c
}

// Simulate integrates the rate law over grid starting from initial at grid[0].
//
// Each interval [grid[i-1], grid[i]] is split into cfg.SubSteps equal steps.
// A non-positive interval is treated as zero width: its steps are still
// taken (and recorded) but do not change the state.
func Simulate(initial Concentrations, grid []float64, law RateLaw, cfg SimulationConfig) Trajectory {
	if len(grid) == 0 {
		return Trajectory{}
	}
	subSteps := cfg.SubSteps
	if subSteps < 1 {
		subSteps = 1
	}

	size := len(grid)
	if cfg.RecordSubSteps {
		size = 1 + (len(grid)-1)*subSteps
	}
	tr := Trajectory{
		A: make(Series, 0, size),
		B: make(Series, 0, size),
		C: make(Series, 0, size),
	}

	cur := initial
	t := grid[0]
	tr.record(t, cur)

	for i := 1; i < len(grid); i++ {
		width := grid[i] - grid[i-1]
		if width < 0 {
			width = 0
		}
		dt := width / float64(subSteps)
		start := t

		for s := 0; s < subSteps; s++ {
			cur = step(cur, law, dt)
			if cfg.RecordSubSteps {
				t += dt
				tr.record(t, cur)
			}
		}

		// Snap to the grid so accumulated dt rounding does not drift.
		t = math.Max(start, grid[i])
		if cfg.RecordSubSteps {
			last := len(tr.A) - 1
			tr.A[last].T, tr.B[last].T, tr.C[last].T = t, t, t
		} else {
			tr.record(t, cur)
		}
	}

	return tr
}

// Curves simulates a fitted law over the sample times for display, starting
// from the first sample and the initial product concentrations.
func Curves(s Samples, law RateLaw, subSteps int) Trajectory {
	if len(s.Ca) == 0 || len(s.Tm) == 0 {
		return Trajectory{}
	}
	initial := Concentrations{A: s.Ca[0], B: s.Cb, C: s.Cc}
	return Simulate(initial, s.Tm, law, SimulationConfig{
		SubSteps:       subSteps,
		RecordSubSteps: true,
	})
}
