package rbc

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// defaultFeedbackGain is the proportional pull toward a fitted target when
// no per-metabolite gain is configured.
const defaultFeedbackGain = 1.0

// targetCurve is one metabolite's experimental concentration profile,
// interpolated piecewise-linearly in time with constant extrapolation
// beyond the sampled range.
type targetCurve struct {
	pl       interp.PiecewiseLinear
	constant float64
	isConst  bool
}

func (c *targetCurve) at(t float64) float64 {
	if c.isConst {
		return c.constant
	}
	return c.pl.Predict(t)
}

// FitTargets holds experimental target curves used to steer the model
// toward measured trajectories. Metabolites without a curve are always
// integrated purely mechanistically.
type FitTargets struct {
	curves map[int]*targetCurve
	gains  map[int]float64
}

// NewFitTargets returns an empty target set.
func NewFitTargets() *FitTargets {
	return &FitTargets{
		curves: make(map[int]*targetCurve),
		gains:  make(map[int]float64),
	}
}

// AddSeries registers a target time series for a metabolite. Times must be
// strictly increasing; a single-point series acts as a constant target.
func (ft *FitTargets) AddSeries(metabolite int, times, values []float64) error {
	if metabolite < 0 || metabolite >= NumBaseMetabolites {
		return fmt.Errorf("metabolite index %d out of range [0, %d)", metabolite, NumBaseMetabolites)
	}
	if len(times) != len(values) {
		return fmt.Errorf("metabolite %s: %d times vs %d values", MetaboliteName(metabolite), len(times), len(values))
	}
	if len(times) == 0 {
		return fmt.Errorf("metabolite %s: empty target series", MetaboliteName(metabolite))
	}
	if len(times) == 1 {
		ft.curves[metabolite] = &targetCurve{constant: values[0], isConst: true}
		return nil
	}
	if !sort.Float64sAreSorted(times) {
		return fmt.Errorf("metabolite %s: target times must be increasing", MetaboliteName(metabolite))
	}
	var c targetCurve
	if err := c.pl.Fit(times, values); err != nil {
		return fmt.Errorf("metabolite %s: fit target curve: %w", MetaboliteName(metabolite), err)
	}
	ft.curves[metabolite] = &c
	return nil
}

// SetGain overrides the feedback gain for one metabolite.
func (ft *FitTargets) SetGain(metabolite int, gain float64) {
	ft.gains[metabolite] = gain
}

// Target returns the interpolated target concentration for a metabolite at
// time t, and whether a curve exists for it.
func (ft *FitTargets) Target(metabolite int, t float64) (float64, bool) {
	if ft == nil {
		return 0, false
	}
	c, ok := ft.curves[metabolite]
	if !ok {
		return 0, false
	}
	return c.at(t), true
}

// Gain returns the feedback gain for a metabolite.
func (ft *FitTargets) Gain(metabolite int) float64 {
	if g, ok := ft.gains[metabolite]; ok {
		return g
	}
	return defaultFeedbackGain
}

// Len reports how many metabolites carry a target curve.
func (ft *FitTargets) Len() int {
	if ft == nil {
		return 0
	}
	return len(ft.curves)
}

// Metabolites returns the sorted indices that carry a target curve.
func (ft *FitTargets) Metabolites() []int {
	idx := make([]int, 0, len(ft.curves))
	for i := range ft.curves {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// blendDerivatives mixes mechanistic derivatives with proportional feedback
// toward the target curves:
//
//	dx/dt = (1-s)*mechanistic + s*gain*(target(t) - x)
//
// With strength 0 this is the identity. Metabolites without a target keep
// their mechanistic derivative untouched regardless of strength. Only base
// metabolite slots participate; pH slots are never blended.
func blendDerivatives(dxdt, x []float64, t, strength float64, targets *FitTargets) {
	if strength == 0 || targets.Len() == 0 {
		return
	}
	for _, i := range targets.Metabolites() {
		target, ok := targets.Target(i, t)
		if !ok {
			continue
		}
		feedback := targets.Gain(i) * (target - x[i])
		dxdt[i] = (1.0-strength)*dxdt[i] + strength*feedback
	}
}
