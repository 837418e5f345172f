package rbc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMM_SaturationShape verifies the Michaelis-Menten term's basic shape
// and its guards.
func TestMM_SaturationShape(t *testing.T) {
	// Half-maximal at S == Km
	assert.InDelta(t, 0.5, mm(2.0, 2.0), 1e-12)

	// Monotone in substrate, bounded by 1
	assert.Less(t, mm(1.0, 2.0), mm(10.0, 2.0))
	assert.Less(t, mm(1e9, 2.0), 1.0)

	// Guards: negative substrate contributes nothing, bad Km is floored
	assert.Equal(t, 0.0, mm(-1.0, 2.0))
	assert.Greater(t, mm(1.0, 0.0), 0.99)
	assert.Greater(t, mm(1.0, -5.0), 0.99)
}

// TestMMHill_Cooperativity verifies the Hill exponent steepens the curve
// around Km without moving the half-saturation point.
func TestMMHill_Cooperativity(t *testing.T) {
	assert.InDelta(t, 0.5, mmHill(2.0, 2.0, 4.0), 1e-12)
	assert.Less(t, mmHill(1.0, 2.0, 4.0), mmHill(1.0, 2.0, 1.0))
	assert.Greater(t, mmHill(3.0, 2.0, 4.0), mmHill(3.0, 2.0, 1.0))
}

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	if cfg.Layout != LayoutCore && cfg.Layout != LayoutCoreExtPH {
		cfg.Layout = LayoutCore
	}
	e, err := NewEngine(cfg)
	require.NoError(t, err)
	return e
}

// TestDerivatives_GlucoseConsumedAtRest verifies that at the resting state
// glucose uptake does not keep pace with hexokinase, so intracellular
// glucose falls.
func TestDerivatives_GlucoseConsumedAtRest(t *testing.T) {
	// GIVEN the resting initial state
	e := newTestEngine(t, Config{Layout: LayoutCore})
	x := e.InitialState()

	// WHEN the derivatives are evaluated
	dxdt, err := e.Derivatives(0, x)
	require.NoError(t, err)

	// THEN hexokinase is active and net glucose change is negative
	xc, err := Canonicalize(x, LayoutCore)
	require.NoError(t, err)
	f := e.computeFluxes(xc, neutralModulation)
	assert.Greater(t, f.VHK, 0.0)
	assert.Less(t, dxdt[GLC], 0.0)
	// Glycolytic product flows downstream: lactate accumulates or is
	// exported, never both zero.
	assert.NotEqual(t, 0.0, dxdt[LAC])
}

// TestDerivatives_AMPSlotAlwaysPinned verifies the algebraic AMP slot stays
// at zero regardless of state.
func TestDerivatives_AMPSlotAlwaysPinned(t *testing.T) {
	e := newTestEngine(t, Config{Layout: LayoutCore})
	states := [][]float64{
		e.InitialState(),
	}
	spiked := e.InitialState()
	spiked[AMP] = 10.0
	spiked[ATP] = 0.01
	states = append(states, spiked)

	for _, x := range states {
		dxdt, err := e.Derivatives(0.5, x)
		require.NoError(t, err)
		assert.Zero(t, dxdt[AMP])
	}
}

// TestDerivatives_NicotinamidePoolsConserved verifies that the NAD and NADP
// redox pairs are exact invariants of the wiring.
func TestDerivatives_NicotinamidePoolsConserved(t *testing.T) {
	e := newTestEngine(t, Config{Layout: LayoutCore})

	// GIVEN several states, including a skewed redox state
	skewed := e.InitialState()
	skewed[NAD] = 2.0
	skewed[NADH] = 0.05
	skewed[NADP] = 0.01
	skewed[NADPH] = 3.0

	for _, x := range [][]float64{e.InitialState(), skewed} {
		dxdt, err := e.Derivatives(0, x)
		require.NoError(t, err)

		// THEN d(NAD)+d(NADH) and d(NADP)+d(NADPH) vanish
		assert.InDelta(t, 0.0, dxdt[NAD]+dxdt[NADH], 1e-12)
		assert.InDelta(t, 0.0, dxdt[NADP]+dxdt[NADPH], 1e-12)
	}
}

// TestDerivatives_RejectsBadTime verifies the time guard.
func TestDerivatives_RejectsBadTime(t *testing.T) {
	e := newTestEngine(t, Config{Layout: LayoutCore})
	x := e.InitialState()

	_, err := e.Derivatives(-1.0, x)
	assert.Error(t, err)
	_, err = e.Derivatives(math.NaN(), x)
	assert.Error(t, err)
}

// TestDerivatives_BoundedEverywhere verifies the stability pass holds even
// for hostile states.
func TestDerivatives_BoundedEverywhere(t *testing.T) {
	// GIVEN a state full of zeros and one absurd concentration
	e := newTestEngine(t, Config{Layout: LayoutCore})
	x := make([]float64, LayoutCore.Size())
	x[GLC] = 1e12

	// WHEN derivatives are evaluated
	dxdt, err := e.Derivatives(0, x)
	require.NoError(t, err)

	// THEN every slot is finite and inside the clip bound
	for i, v := range dxdt {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "slot %d (%s) is not finite", i, MetaboliteName(i))
		assert.LessOrEqual(t, v, MaxDerivative, "slot %d too large", i)
		assert.GreaterOrEqual(t, v, -MaxDerivative, "slot %d too small", i)
	}
}

// TestBidirectionalTransport_ReversesWithGradient verifies an exchanger
// changes sign when the gradient flips.
func TestBidirectionalTransport_ReversesWithGradient(t *testing.T) {
	e := newTestEngine(t, Config{Layout: LayoutCore})

	outward := e.InitialState()
	outward[PYR] = 5.0
	outward[EPYR] = 0.1
	xc, err := Canonicalize(outward, LayoutCore)
	require.NoError(t, err)
	fOut := e.computeFluxes(xc, neutralModulation)
	assert.Greater(t, fOut.VEPYR, 0.0)

	inward := e.InitialState()
	inward[PYR] = 0.1
	inward[EPYR] = 5.0
	xc, err = Canonicalize(inward, LayoutCore)
	require.NoError(t, err)
	fIn := e.computeFluxes(xc, neutralModulation)
	assert.Less(t, fIn.VEPYR, 0.0)
}

// TestFluxes_NamesAndValuesAligned verifies the recorder column order.
func TestFluxes_NamesAndValuesAligned(t *testing.T) {
	e := newTestEngine(t, Config{Layout: LayoutCore})
	xc, err := Canonicalize(e.InitialState(), LayoutCore)
	require.NoError(t, err)
	f := e.computeFluxes(xc, neutralModulation)

	require.Len(t, f.Values(), len(FluxNames))
	v, ok := f.Value("VHK")
	require.True(t, ok)
	assert.Equal(t, f.VHK, v)
	v, ok = f.Value("Vnucleo2")
	require.True(t, ok)
	assert.Equal(t, f.VNucleo2, v)
	_, ok = f.Value("VNOPE")
	assert.False(t, ok)
}

// TestPathwayGroups_PartitionFluxNames verifies every reaction belongs to
// exactly one pathway.
func TestPathwayGroups_PartitionFluxNames(t *testing.T) {
	seen := make(map[string]int)
	for _, members := range PathwayGroups {
		for _, name := range members {
			seen[name]++
		}
	}
	for _, name := range FluxNames {
		assert.Equal(t, 1, seen[name], "reaction %s", name)
	}
	assert.Len(t, seen, len(FluxNames))
}
