package kinetics

import (
	"fmt"
	"log/slog"
	"math"
)

// Samples is one experiment: concentrations of A measured at increasing
// times, plus the initial concentrations of the products B and C.
type Samples struct {
	Ca []float64 `json:"ca"` // Concentration of A per sample
	Tm []float64 `json:"tm"` // Measurement time per sample (strictly increasing)
	Cb float64   `json:"cb"` // Initial concentration of B at Tm[0]
	Cc float64   `json:"cc"` // Initial concentration of C at Tm[0]
}

// FitResult contains the estimated kinetic parameters.
type FitResult struct {
	N    float64 `json:"n"`    // Reaction order
	K    float64 `json:"k"`    // Rate constant
	R    float64 `json:"r"`    // Correlation of the log-linear fit, in [-1, 1]
	Disp float64 `json:"disp"` // Mean squared residual of the simulated A against the samples
}

// Law returns the fitted rate law.
func (f FitResult) Law() RateLaw {
	return RateLaw{K: f.K, N: f.N}
}

// Rate evaluates the fitted rate law at concentration a.
func (f FitResult) Rate(a float64) float64 {
	return f.Law().Rate(a)
}

func (f FitResult) String() string {
	return fmt.Sprintf("n=%.4f k=%.4f disp=%.4f r=%.4f", f.N, f.K, f.Disp, f.R)
}

// Config controls estimation.
type Config struct {
	SubSteps      int          // Euler steps per sample interval for the residual (default 70)
	ResidualScale float64      // Squared residuals are rounded to 1/ResidualScale; 0 disables
	Logger        *slog.Logger // Debug output; nil uses slog.Default()
}

// DefaultConfig returns the settings that reproduce the reference results.
func DefaultConfig() Config {
	return Config{
		SubSteps:      VarianceSubSteps,
		ResidualScale: 1e4,
	}
}

// Estimator fits rate laws. It holds no per-call state and is safe for
// concurrent use.
type Estimator struct {
	subSteps      int
	residualScale float64
	logger        *slog.Logger
}

// NewEstimator creates an estimator from cfg.
func NewEstimator(cfg Config) *Estimator {
	if cfg.SubSteps < 1 {
		cfg.SubSteps = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Estimator{
		subSteps:      cfg.SubSteps,
		residualScale: cfg.ResidualScale,
		logger:        cfg.Logger,
	}
}

// Estimate fits W = k·Caⁿ to the samples using DefaultConfig.
func Estimate(ca, tm []float64, cb, cc float64) (FitResult, error) {
	return NewEstimator(DefaultConfig()).Estimate(Samples{Ca: ca, Tm: tm, Cb: cb, Cc: cc})
}

// Estimate fits the rate law by least squares on the linearized form
//
//	ln(w) = n·ln(Ca) + ln(k)
//
// where w = |ΔCa/Δt| is the discrete rate over each sample interval.
// The residual variance is then computed by simulating the fitted law from
// the first sample through all sample times.
func (e *Estimator) Estimate(s Samples) (FitResult, error) {
	if err := Validate(s); err != nil {
		return FitResult{}, err
	}

	sums := accumulate(s.Ca, s.Tm)

	denom := sums.s1*sums.s4 - sums.s2*sums.s2
	if math.Abs(denom) < Epsilon {
		return FitResult{}, degenerate("regression denominator is zero, ln(Ca) has no spread")
	}

	var res FitResult
	res.N = (sums.s1*sums.s5 - sums.s2*sums.s3) / denom
	lnK := (sums.s3*sums.s4 - sums.s2*sums.s5) / denom
	res.K = math.Exp(lnK)
	res.R = sums.correlation()
	res.Disp = e.residualVariance(s, res.Law())

	attrs := []any{
		"points", len(s.Ca),
		"s1", sums.s1, "s2", sums.s2, "s3", sums.s3,
		"s4", sums.s4, "s5", sums.s5, "s6", sums.s6,
		"n", res.N, "k", res.K, "r", res.R, "disp", res.Disp,
	}

	if !allFinite(res.N, res.K, res.R, res.Disp) {
		e.logger.Debug("rate law rejected", attrs...)
		return FitResult{}, numericFailure(fmt.Sprintf("non-finite result (%s)", res))
	}

	e.logger.Debug("rate law fitted", attrs...)
	return res, nil
}

// Validate checks samples before any numeric work.
func Validate(s Samples) error {
	if s.Cb < 0 || s.Cc < 0 {
		return invalidInput(-1, "negative initial concentration (Cb=%g, Cc=%g)", s.Cb, s.Cc)
	}
	for i, c := range s.Ca {
		if c < 0 {
			return invalidInput(i, "negative concentration %g", c)
		}
	}
	if len(s.Ca) != len(s.Tm) {
		return invalidInput(-1, "length mismatch: %d concentrations, %d times", len(s.Ca), len(s.Tm))
	}
	if len(s.Ca) < 2 {
		return invalidInput(-1, "insufficient points: need at least 2, got %d", len(s.Ca))
	}
	if !allFinite(s.Cb, s.Cc) {
		return invalidInput(-1, "non-finite initial concentration")
	}
	for i := range s.Ca {
		if !allFinite(s.Ca[i], s.Tm[i]) {
			return invalidInput(i, "non-finite sample")
		}
	}
	for i := 0; i < len(s.Tm)-1; i++ {
		if s.Tm[i+1] <= s.Tm[i] {
			return invalidInput(i+1, "time must increase (%g after %g)", s.Tm[i+1], s.Tm[i])
		}
	}
	return nil
}

// regressionSums holds the least-squares accumulators over sample intervals.
type regressionSums struct {
	s1 float64 // count
	s2 float64 // Σx
	s3 float64 // Σy
	s4 float64 // Σx²
	s5 float64 // Σxy
	s6 float64 // Σy²
}

// accumulate builds the sums for x = ln(Ca[i]), y = ln|ΔCa/Δt| over each
// interval [i, i+1].
func accumulate(ca, tm []float64) regressionSums {
	var sums regressionSums
	for i := 0; i < len(ca)-1; i++ {
		dt := floorAbs(tm[i+1] - tm[i])
		w := floorAbs(math.Abs((ca[i+1] - ca[i]) / dt))

		x := safeLog(ca[i])
		y := math.Log(w)

		sums.s1++
		sums.s2 += x
		sums.s3 += y
		sums.s4 += x * x
		sums.s5 += x * y
		sums.s6 += y * y
	}
	return sums
}

// correlation returns the Pearson coefficient of the fit, or 0 when either
// variable has no spread.
func (s regressionSums) correlation() float64 {
	v := (s.s1*s.s4 - s.s2*s.s2) * (s.s1*s.s6 - s.s3*s.s3)
	if v < Epsilon {
		return 0
	}
	r := (s.s1*s.s5 - s.s2*s.s3) / math.Sqrt(v)
	return clamp(r, -1, 1)
}

// residualVariance simulates law from the first sample and returns the mean
// squared deviation from the measured concentrations over samples 1..L-1.
func (e *Estimator) residualVariance(s Samples, law RateLaw) float64 {
	initial := Concentrations{A: s.Ca[0], B: s.Cb, C: s.Cc}
	tr := Simulate(initial, s.Tm, law, SimulationConfig{SubSteps: e.subSteps})

	var sumSq float64
	for i := 1; i < len(s.Ca); i++ {
		diff := s.Ca[i] - tr.A[i].C
		sumSq += roundTo(diff*diff, e.residualScale)
	}
	return sumSq / float64(len(s.Ca)-1)
}
