package rbc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Dormand-Prince 5(4) tableau. The fifth-order row advances the solution;
// the embedded fourth-order row drives the error estimate.
var (
	dpC = [7]float64{0, 1.0 / 5.0, 3.0 / 10.0, 4.0 / 5.0, 8.0 / 9.0, 1, 1}
	dpA = [7][6]float64{
		{},
		{1.0 / 5.0},
		{3.0 / 40.0, 9.0 / 40.0},
		{44.0 / 45.0, -56.0 / 15.0, 32.0 / 9.0},
		{19372.0 / 6561.0, -25360.0 / 2187.0, 64448.0 / 6561.0, -212.0 / 729.0},
		{9017.0 / 3168.0, -355.0 / 33.0, 46732.0 / 5247.0, 49.0 / 176.0, -5103.0 / 18656.0},
		{35.0 / 384.0, 0, 500.0 / 1113.0, 125.0 / 192.0, -2187.0 / 6784.0, 11.0 / 84.0},
	}
	dpB5 = [7]float64{35.0 / 384.0, 0, 500.0 / 1113.0, 125.0 / 192.0, -2187.0 / 6784.0, 11.0 / 84.0, 0}
	dpB4 = [7]float64{5179.0 / 57600.0, 0, 7571.0 / 16695.0, 393.0 / 640.0, -92097.0 / 339200.0, 187.0 / 2100.0, 1.0 / 40.0}
)

// Step-size controller limits.
const (
	stepSafety    = 0.9
	stepShrinkCap = 0.2
	stepGrowCap   = 5.0
	stepOrderExp  = -1.0 / 5.0
)

// SolverConfig is one rung of the tolerance ladder.
type SolverConfig struct {
	Label       string
	RTol        float64
	ATol        float64
	InitialStep float64 // hours; 0 picks a default
	MinStep     float64 // abort threshold
	MaxStep     float64
	MaxSteps    int // accepted-step budget; 0 means default
}

const defaultMaxSteps = 1_000_000

// DefaultSolverLadder returns the standard attempt sequence: tight
// tolerances first, then progressively relaxed settings for stiff episodes
// the first rung cannot step through.
func DefaultSolverLadder() []SolverConfig {
	return []SolverConfig{
		{Label: "optimized", RTol: 1e-6, ATol: 1e-8, MaxStep: 0.1, MinStep: 1e-12},
		{Label: "relaxed", RTol: 1e-4, ATol: 1e-6, MaxStep: 0.25, MinStep: 1e-13},
		{Label: "conservative", RTol: 1e-3, ATol: 1e-5, InitialStep: 1e-5, MaxStep: 0.5, MinStep: 1e-14},
	}
}

// SolverStats summarizes one integration.
type SolverStats struct {
	Attempt  string // ladder rung that succeeded
	Accepted int
	Rejected int
	RHSEvals int
	LastStep float64
}

// Solution is an accepted trajectory. States[i] is the state at Times[i];
// row 0 is the (canonicalized) initial condition.
type Solution struct {
	Times  []float64
	States [][]float64
	Stats  SolverStats
}

// Final returns the last state of the trajectory.
func (s *Solution) Final() []float64 {
	if len(s.States) == 0 {
		return nil
	}
	return s.States[len(s.States)-1]
}

// Solve integrates the engine from t0 to tEnd, walking the tolerance
// ladder until a rung completes. Recorders attached to the engine are reset
// between attempts so a failed rung leaves no partial instrumentation.
func Solve(e *Engine, x0 []float64, t0, tEnd float64, ladder []SolverConfig) (*Solution, error) {
	if len(ladder) == 0 {
		ladder = DefaultSolverLadder()
	}
	var lastErr error
	for i, cfg := range ladder {
		if i > 0 {
			e.log.WithFields(map[string]interface{}{
				"attempt": cfg.Label,
				"rtol":    cfg.RTol,
			}).Warn("retrying integration with relaxed tolerances")
			if e.cfg.FluxRecorder != nil {
				e.cfg.FluxRecorder.Reset()
			}
			if e.cfg.BohrRecorder != nil {
				e.cfg.BohrRecorder.Reset()
			}
		}
		sol, err := SolveAdaptive(e, x0, t0, tEnd, cfg)
		if err == nil {
			return sol, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("all %d solver attempts failed: %w", len(ladder), lastErr)
}

// SolveAdaptive integrates with a single adaptive Dormand-Prince 5(4)
// configuration. The error norm is the RMS of the component errors scaled
// by atol + rtol*|y|; a step is accepted when the norm is at most 1.
func SolveAdaptive(e *Engine, x0 []float64, t0, tEnd float64, cfg SolverConfig) (*Solution, error) {
	if tEnd <= t0 {
		return nil, fmt.Errorf("horizon [%g, %g] is empty", t0, tEnd)
	}
	if cfg.RTol <= 0 || cfg.ATol <= 0 {
		return nil, fmt.Errorf("tolerances must be positive, got rtol=%g atol=%g", cfg.RTol, cfg.ATol)
	}
	maxStep := cfg.MaxStep
	if maxStep <= 0 {
		maxStep = tEnd - t0
	}
	minStep := cfg.MinStep
	if minStep <= 0 {
		minStep = 1e-14
	}
	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps
	}

	y, err := Canonicalize(x0, e.Layout())
	if err != nil {
		return nil, err
	}
	n := len(y)
	t := t0
	h := cfg.InitialStep
	if h <= 0 {
		h = math.Min(maxStep, 1e-3)
	}

	sol := &Solution{Stats: SolverStats{Attempt: cfg.Label}}
	record := func(t float64, y []float64) error {
		sol.Times = append(sol.Times, t)
		state := make([]float64, n)
		copy(state, y)
		sol.States = append(sol.States, state)
		return e.Observe(t, y)
	}
	if err := record(t, y); err != nil {
		return nil, err
	}

	var k [7][]float64
	for i := range k {
		k[i] = make([]float64, n)
	}
	stage := make([]float64, n)
	y5 := make([]float64, n)
	errVec := make([]float64, n)

	evalsBefore := e.RHSEvals()
	for t < tEnd {
		if sol.Stats.Accepted >= maxSteps {
			return nil, fmt.Errorf("%s: step budget of %d exhausted at t=%g", cfg.Label, maxSteps, t)
		}
		if h > maxStep {
			h = maxStep
		}
		if t+h > tEnd {
			h = tEnd - t
		}

		for s := 0; s < 7; s++ {
			copy(stage, y)
			for j := 0; j < s; j++ {
				if dpA[s][j] != 0 {
					floats.AddScaled(stage, h*dpA[s][j], k[j])
				}
			}
			d, err := e.Derivatives(t+dpC[s]*h, stage)
			if err != nil {
				return nil, fmt.Errorf("%s: rhs at t=%g: %w", cfg.Label, t+dpC[s]*h, err)
			}
			copy(k[s], d)
		}

		copy(y5, y)
		for s := 0; s < 7; s++ {
			if dpB5[s] != 0 {
				floats.AddScaled(y5, h*dpB5[s], k[s])
			}
		}
		for i := 0; i < n; i++ {
			e4 := 0.0
			for s := 0; s < 7; s++ {
				e4 += (dpB5[s] - dpB4[s]) * k[s][i]
			}
			errVec[i] = h * e4
		}

		errNorm := 0.0
		for i := 0; i < n; i++ {
			scale := cfg.ATol + cfg.RTol*math.Max(math.Abs(y[i]), math.Abs(y5[i]))
			r := errVec[i] / scale
			errNorm += r * r
		}
		errNorm = math.Sqrt(errNorm / float64(n))

		if errNorm <= 1.0 {
			t += h
			copy(y, y5)
			// Re-canonicalize so floors and clamps hold on the stored
			// trajectory, not just inside the rhs.
			yc, err := Canonicalize(y, e.Layout())
			if err != nil {
				return nil, err
			}
			copy(y, yc)
			sol.Stats.Accepted++
			sol.Stats.LastStep = h
			if err := record(t, y); err != nil {
				return nil, err
			}
			if t >= tEnd {
				break
			}
		} else {
			sol.Stats.Rejected++
		}

		factor := stepGrowCap
		if errNorm > 0 {
			factor = stepSafety * math.Pow(errNorm, stepOrderExp)
			if factor < stepShrinkCap {
				factor = stepShrinkCap
			} else if factor > stepGrowCap {
				factor = stepGrowCap
			}
		}
		h *= factor
		if h < minStep {
			return nil, fmt.Errorf("%s: step size underflow (h=%g) at t=%g", cfg.Label, h, t)
		}
	}
	sol.Stats.RHSEvals = e.RHSEvals() - evalsBefore
	return sol, nil
}
