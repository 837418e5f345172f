package rbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig_Validate verifies the consistency rules between layout,
// modulation, perturbation and blending.
func TestConfig_Validate(t *testing.T) {
	// Modulation needs the extended layout
	err := (&Config{Layout: LayoutCore, PHModulation: true}).Validate()
	assert.Error(t, err)

	// Perturbations need the extended layout
	err = (&Config{Layout: LayoutCore, Perturbation: NewStepPerturbation(7.0, 0, 7.4)}).Validate()
	assert.Error(t, err)

	// Blend strength is capped at 2
	err = (&Config{Layout: LayoutCore, BlendStrength: 2.5}).Validate()
	assert.Error(t, err)
	err = (&Config{Layout: LayoutCore, BlendStrength: -0.1}).Validate()
	assert.Error(t, err)

	// Invalid schedules are caught at config time
	err = (&Config{Layout: LayoutCoreExtPH, Perturbation: &Perturbation{Kind: "square"}}).Validate()
	assert.Error(t, err)

	// A fully specified extended config passes
	err = (&Config{
		Layout:        LayoutCoreExtPH,
		PHModulation:  true,
		Perturbation:  NewStepPerturbation(7.0, 1.0, 7.4),
		BlendStrength: 1.5,
	}).Validate()
	assert.NoError(t, err)
}

// TestNewEngine_DefaultsFillIn verifies nil params and Bohr model fall back
// to the standard tables.
func TestNewEngine_DefaultsFillIn(t *testing.T) {
	e, err := NewEngine(Config{Layout: LayoutCore})
	require.NoError(t, err)
	assert.Equal(t, LayoutCore, e.Layout())
	require.Len(t, e.InitialState(), LayoutCore.Size())

	_, err = NewEngine(Config{Layout: Layout(7)})
	assert.Error(t, err)
}

// TestEngine_ModulationChangesFluxes verifies that turning modulation on
// actually routes pHi into the rate laws: an acidic cell runs PFK slower
// than a resting one.
func TestEngine_ModulationChangesFluxes(t *testing.T) {
	e := newTestEngine(t, Config{Layout: LayoutCoreExtPH, PHModulation: true})

	rest := e.InitialState()
	acid := e.InitialState()
	acid[PHI] = 6.9

	dRest, err := e.Derivatives(0, rest)
	require.NoError(t, err)
	dAcid, err := e.Derivatives(0, acid)
	require.NoError(t, err)

	// PFK consumes F6P; with PFK suppressed by acid, F6P drains slower.
	assert.Greater(t, dAcid[F6P], dRest[F6P])
}

// TestEngine_PHiDynamicInCoreLayout verifies intracellular pH evolves in
// the core layout too: the reduced metabolic equation drives the pHi slot,
// it is never left frozen.
func TestEngine_PHiDynamicInCoreLayout(t *testing.T) {
	e := newTestEngine(t, Config{Layout: LayoutCore})
	x := e.InitialState()
	x[PHI] = 7.0

	d, err := e.Derivatives(0, x)
	require.NoError(t, err)

	xc, err := Canonicalize(x, LayoutCore)
	require.NoError(t, err)
	f := e.computeFluxes(xc, neutralModulation)
	want := phiDerivativeRelaxed(xc[PHI], &f)
	assert.NotZero(t, want)
	assert.InDelta(t, want, d[PHI], 1e-15)
}

// TestEngine_ObserveDoesNotPerturbDerivatives verifies instrumentation
// purity: observing a state leaves subsequent derivative calls unchanged.
func TestEngine_ObserveDoesNotPerturbDerivatives(t *testing.T) {
	recorded := newTestEngine(t, Config{
		Layout:       LayoutCore,
		FluxRecorder: NewFluxRecorder(),
		BohrRecorder: NewBohrRecorder(),
	})
	plain := newTestEngine(t, Config{Layout: LayoutCore})
	x := plain.InitialState()

	require.NoError(t, recorded.Observe(0, x))
	require.NoError(t, recorded.Observe(0.1, x))

	dRecorded, err := recorded.Derivatives(0.2, x)
	require.NoError(t, err)
	dPlain, err := plain.Derivatives(0.2, x)
	require.NoError(t, err)
	assert.Equal(t, dPlain, dRecorded)
}

// TestCollectMetrics_SummarizesRun verifies the end-of-run summary fields.
func TestCollectMetrics_SummarizesRun(t *testing.T) {
	e := newTestEngine(t, Config{Layout: LayoutCore})
	sol, err := Solve(e, e.InitialState(), 0, 0.25, nil)
	require.NoError(t, err)

	m, err := CollectMetrics(sol)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, m.HorizonHours, 1e-12)
	assert.Equal(t, sol.Stats.Accepted, m.AcceptedSteps)
	assert.InDelta(t, 0.0, m.FinalPools.Drift(m.InitialPools).NAD, 1e-6)

	_, err = CollectMetrics(&Solution{})
	assert.Error(t, err)
}
