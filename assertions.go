package kinetics

import (
	"math"
	"testing"
)

// AssertionConfig contains thresholds for fit quality.
type AssertionConfig struct {
	// Minimum |r| of the log-linear fit
	MinCorrelation float64

	// Maximum residual variance of the simulated curve
	MaxDispersion float64
}

// DefaultAssertionConfig returns conservative thresholds.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MinCorrelation: 0.95,
		MaxDispersion:  1e-3,
	}
}

// AssertGoodFit verifies the fit is finite, well correlated and close to the data.
func AssertGoodFit(t *testing.T, fit FitResult, cfg AssertionConfig) {
	t.Helper()

	if !allFinite(fit.N, fit.K, fit.R, fit.Disp) {
		t.Fatalf("Non-finite fit: %s", fit)
	}

	if math.Abs(fit.R) < cfg.MinCorrelation {
		t.Errorf("Weak correlation: |r| = %.4f (min: %.4f)", math.Abs(fit.R), cfg.MinCorrelation)
	}

	if fit.Disp > cfg.MaxDispersion {
		t.Errorf("Residual variance too high: disp = %.6f (max: %.6f)", fit.Disp, cfg.MaxDispersion)
	}

	t.Logf("✓ Fit: %s", fit)
}

// AssertOrder verifies the reaction order is within tolerance of expected.
func AssertOrder(t *testing.T, fit FitResult, expected, tolerance float64) {
	t.Helper()

	if math.Abs(fit.N-expected) > tolerance {
		t.Errorf("Reaction order n = %.4f (expected %.4f ± %.4f)", fit.N, expected, tolerance)
		return
	}

	t.Logf("✓ Reaction order n = %.4f (expected %.4f)", fit.N, expected)
}

// AssertMonotonicDecay verifies A never increases and never goes negative.
func AssertMonotonicDecay(t *testing.T, tr Trajectory) {
	t.Helper()

	for i, p := range tr.A {
		if p.C < 0 {
			t.Fatalf("A negative at step %d: t=%.4f, A=%g", i, p.T, p.C)
		}
		if i > 0 {
			if p.C > tr.A[i-1].C {
				t.Fatalf("A increased at step %d: %g -> %g", i, tr.A[i-1].C, p.C)
			}
			if p.T < tr.A[i-1].T {
				t.Fatalf("Time decreased at step %d: %g -> %g", i, tr.A[i-1].T, p.T)
			}
		}
	}
}

// AssertMassBalance verifies ΔB = 7/3·(A0 − A) and ΔC = A0 − A at every
// recorded step.
func AssertMassBalance(t *testing.T, tr Trajectory, tolerance float64) {
	t.Helper()

	if tr.Len() == 0 {
		return
	}

	a0, b0, c0 := tr.A[0].C, tr.B[0].C, tr.C[0].C
	for i := range tr.A {
		consumed := a0 - tr.A[i].C
		if d := math.Abs((tr.B[i].C - b0) - YieldB*consumed); d > tolerance {
			t.Fatalf("B out of balance at step %d: off by %g", i, d)
		}
		if d := math.Abs((tr.C[i].C - c0) - YieldC*consumed); d > tolerance {
			t.Fatalf("C out of balance at step %d: off by %g", i, d)
		}
	}
}

// PrintFit logs the fit and the residual at every sample.
func PrintFit(t *testing.T, s Samples, fit FitResult) {
	t.Helper()

	t.Logf("\n=== Rate Law Fit ===")
	t.Logf("  n    = %.4f", fit.N)
	t.Logf("  k    = %.4f", fit.K)
	t.Logf("  r    = %.4f", fit.R)
	t.Logf("  disp = %.6f", fit.Disp)

	if Validate(s) != nil {
		return
	}

	initial := Concentrations{A: s.Ca[0], B: s.Cb, C: s.Cc}
	tr := Simulate(initial, s.Tm, fit.Law(), SimulationConfig{SubSteps: VarianceSubSteps})

	t.Logf("\n  %8s  %10s  %10s  %10s", "t", "measured", "simulated", "residual")
	for i := range tr.A {
		t.Logf("  %8.3f  %10.4f  %10.4f  %+10.4f",
			s.Tm[i], s.Ca[i], tr.A[i].C, s.Ca[i]-tr.A[i].C)
	}
}
