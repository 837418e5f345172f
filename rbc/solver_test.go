package rbc

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolveAdaptive_RestingStateShortHorizon verifies a plain integration
// completes, produces a monotone time grid and keeps every state canonical.
func TestSolveAdaptive_RestingStateShortHorizon(t *testing.T) {
	e := newTestEngine(t, Config{Layout: LayoutCore})

	sol, err := SolveAdaptive(e, e.InitialState(), 0, 0.5, SolverConfig{
		Label: "test", RTol: 1e-6, ATol: 1e-8, MaxStep: 0.1, MinStep: 1e-12,
	})
	require.NoError(t, err)

	require.NotEmpty(t, sol.Times)
	assert.Equal(t, 0.0, sol.Times[0])
	assert.InDelta(t, 0.5, sol.Times[len(sol.Times)-1], 1e-12)
	assert.True(t, sort.Float64sAreSorted(sol.Times))
	assert.Greater(t, sol.Stats.Accepted, 0)
	assert.Greater(t, sol.Stats.RHSEvals, 0)

	for i, state := range sol.States {
		require.Len(t, state, LayoutCore.Size())
		for j, v := range state {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0),
				"row %d slot %d (%s) not finite", i, j, MetaboliteName(j))
			if j < NumBaseMetabolites {
				assert.GreaterOrEqual(t, v, MinConcentration)
			}
		}
	}
}

// TestSolveAdaptive_ConservesNicotinamidePools verifies the exact redox
// invariants survive integration, not just a single derivative call.
func TestSolveAdaptive_ConservesNicotinamidePools(t *testing.T) {
	e := newTestEngine(t, Config{Layout: LayoutCore})
	x0 := e.InitialState()

	sol, err := SolveAdaptive(e, x0, 0, 1.0, SolverConfig{
		Label: "test", RTol: 1e-8, ATol: 1e-10, MaxStep: 0.05, MinStep: 1e-13,
	})
	require.NoError(t, err)

	before, err := PoolsFromState(sol.States[0])
	require.NoError(t, err)
	after, err := PoolsFromState(sol.Final())
	require.NoError(t, err)
	drift := after.Drift(before)

	assert.InDelta(t, 0.0, drift.NAD, 1e-6)
	assert.InDelta(t, 0.0, drift.NADP, 1e-6)
}

// TestSolveAdaptive_AMPFrozen verifies the algebraic AMP slot never moves
// during integration.
func TestSolveAdaptive_AMPFrozen(t *testing.T) {
	e := newTestEngine(t, Config{Layout: LayoutCore})
	x0 := e.InitialState()

	sol, err := SolveAdaptive(e, x0, 0, 0.5, SolverConfig{
		Label: "test", RTol: 1e-6, ATol: 1e-8, MaxStep: 0.1, MinStep: 1e-12,
	})
	require.NoError(t, err)

	for i := range sol.States {
		assert.Equal(t, x0[AMP], sol.States[i][AMP], "row %d", i)
	}
}

// TestSolveAdaptive_RejectsBadArguments verifies horizon and tolerance
// validation.
func TestSolveAdaptive_RejectsBadArguments(t *testing.T) {
	e := newTestEngine(t, Config{Layout: LayoutCore})
	x0 := e.InitialState()

	_, err := SolveAdaptive(e, x0, 1.0, 1.0, SolverConfig{RTol: 1e-6, ATol: 1e-8})
	assert.Error(t, err)
	_, err = SolveAdaptive(e, x0, 0, 1.0, SolverConfig{RTol: 0, ATol: 1e-8})
	assert.Error(t, err)
}

// TestSolve_LadderFirstRungSucceeds verifies the default ladder completes
// on the first attempt for a benign problem.
func TestSolve_LadderFirstRungSucceeds(t *testing.T) {
	e := newTestEngine(t, Config{Layout: LayoutCore})

	sol, err := Solve(e, e.InitialState(), 0, 0.25, nil)
	require.NoError(t, err)
	assert.Equal(t, "optimized", sol.Stats.Attempt)
}

// TestSolve_StepPerturbationDrivesPHe verifies the extended layout: a step
// in the bath target pulls pHe to the new value within a few relaxation
// times while pHi stays physiological.
func TestSolve_StepPerturbationDrivesPHe(t *testing.T) {
	// GIVEN a step of the bath to pH 7.0 at t=0.5h
	sched := NewStepPerturbation(7.0, 0.5, PhysiologicalPHe)
	e := newTestEngine(t, Config{
		Layout:       LayoutCoreExtPH,
		PHModulation: true,
		Perturbation: sched,
	})

	// WHEN integrating past the step by many relaxation times
	sol, err := Solve(e, e.InitialState(), 0, 1.5, nil)
	require.NoError(t, err)

	// THEN pHe has relaxed onto the target and pHi stayed in range
	final := sol.Final()
	assert.InDelta(t, 7.0, final[PHE], 0.01)
	assert.GreaterOrEqual(t, final[PHI], MinPH)
	assert.LessOrEqual(t, final[PHI], MaxPH)

	// AND before the step pHe held its baseline
	for i, tm := range sol.Times {
		if tm < 0.5 {
			assert.InDelta(t, PhysiologicalPHe, sol.States[i][PHE], 1e-3, "t=%g", tm)
		}
	}
}

// TestSolve_AcidBathDepressesPHi verifies the acidification scenario: in a
// G6PD-deficient cell the alkalinizing oxidative branch is absent, so the
// glycolytic acid load plus an acid bath pull intracellular pH below its
// resting value.
func TestSolve_AcidBathDepressesPHi(t *testing.T) {
	// GIVEN a G6PD-deficient cell and a bath step to pH 7.0 at t=2h
	params, err := NewParams(map[string]float64{
		"vmax_VG6PDH": 0,
		"vmax_V6PGD":  0,
	})
	require.NoError(t, err)
	e := newTestEngine(t, Config{
		Layout:       LayoutCoreExtPH,
		PHModulation: true,
		Params:       params,
		Perturbation: NewStepPerturbation(7.0, 2.0, PhysiologicalPHe),
	})

	// WHEN integrating well past the step
	sol, err := Solve(e, e.InitialState(), 0, 4.0, nil)
	require.NoError(t, err)

	// THEN the bath has settled on the target and pHi ended below resting
	final := sol.Final()
	assert.InDelta(t, 7.0, final[PHE], 0.01)
	assert.Less(t, final[PHI], PhysiologicalPHi)
}

// TestSolve_ObserveOnlyAcceptedSteps verifies recorder rows line up with
// the returned trajectory one-to-one.
func TestSolve_ObserveOnlyAcceptedSteps(t *testing.T) {
	fluxes := NewFluxRecorder()
	bohr := NewBohrRecorder()
	e := newTestEngine(t, Config{Layout: LayoutCore, FluxRecorder: fluxes, BohrRecorder: bohr})

	sol, err := Solve(e, e.InitialState(), 0, 0.25, nil)
	require.NoError(t, err)

	require.Equal(t, len(sol.Times), fluxes.Len())
	require.Equal(t, len(sol.Times), bohr.Len())
	for i, s := range fluxes.Samples() {
		assert.Equal(t, sol.Times[i], s.Time)
	}
}
