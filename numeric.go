package kinetics

import "math"

// Epsilon is the single numeric floor used by both the regression and the
// simulation: rates, time deltas and concentrations below it are treated as
// zero (or raised to it where a logarithm follows).
const Epsilon = 1e-15

// floorAbs returns x, or Epsilon when x is below Epsilon.
func floorAbs(x float64) float64 {
	if x < Epsilon {
		return Epsilon
	}
	return x
}

// safeLog is ln(max(x, Epsilon)).
func safeLog(x float64) float64 {
	return math.Log(floorAbs(x))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func allFinite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// roundTo rounds x to the grid 1/scale. A non-positive scale leaves x as is.
func roundTo(x, scale float64) float64 {
	if scale <= 0 {
		return x
	}
	return math.Round(x*scale) / scale
}
