// Package kinetics estimates the kinetic parameters of the reaction
// 3A = 7B + 3C from a handful of concentration measurements.
//
// # Overview
//
// The rate of consumption of A is modeled by the empirical law
//
//	W = k·Caⁿ
//
// where n is the reaction order and k the rate constant. Given samples of
// Ca taken at strictly increasing times Tm, the package recovers n, k, the
// correlation coefficient r of the fit, and the residual variance of the
// fitted model against the measurements.
//
// # Quick Start
//
//	ca := []float64{2.0, 1.8, 1.6, 1.4, 1.2}
//	tm := []float64{0, 1, 2, 3, 4}
//
//	fit, err := kinetics.Estimate(ca, tm, 0.1, 0.7)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("n = %.4f, k = %.4f, r = %.4f, disp = %.4f\n",
//	    fit.N, fit.K, fit.R, fit.Disp)
//
// # Regression
//
// For every pair of neighbouring samples the discrete rate w = |ΔCa/Δt| is
// computed and the law is linearized:
//
//	ln(w) = n·ln(Ca) + ln(k)
//
// Ordinary least squares over the intervals gives n as the slope and ln(k)
// as the intercept. Rates, time deltas and concentrations are floored at
// Epsilon before taking logarithms.
//
// # Simulation
//
// The fitted law is integrated with explicit Euler steps:
//
//	A -= k·Aⁿ·dt
//	B += 7/3·k·Aⁿ·dt
//	C += k·Aⁿ·dt
//
// Each interval between sample times is split into a fixed number of
// sub-steps. Estimate uses VarianceSubSteps (70) to compute the residual
// variance; Curves is meant for plotting and is usually called with
// RenderSubSteps (20). Both go through Simulate and share the update rule.
//
// # Errors
//
// Estimate fails with an *EstimateError that unwraps to one of:
//
//   - ErrInvalidInput:   negative concentrations, fewer than two samples,
//     mismatched lengths, non-increasing times
//   - ErrDegenerateData: all ln(Ca) equal, order and intercept inseparable
//   - ErrNumericFailure: NaN or Inf in the result
//
// # Testing
//
// Assertion helpers check fit quality and simulation invariants:
//
//	func TestFirstOrder(t *testing.T) {
//	    fit, err := kinetics.Estimate(ca, tm, 0, 0)
//	    require.NoError(t, err)
//
//	    kinetics.AssertGoodFit(t, fit, kinetics.DefaultAssertionConfig())
//	    kinetics.AssertOrder(t, fit, 1.0, 0.1)
//
//	    tr := kinetics.Curves(samples, fit.Law(), kinetics.RenderSubSteps)
//	    kinetics.AssertMonotonicDecay(t, tr)
//	    kinetics.AssertMassBalance(t, tr, 1e-9)
//	}
//
// # See Also
//
//   - plot/ - PNG rendering of the simulated curves
//   - examples/ - HTTP service and command-line front ends
package kinetics
