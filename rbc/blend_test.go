package rbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFitTargets_AddSeries verifies series validation and interpolation.
func TestFitTargets_AddSeries(t *testing.T) {
	ft := NewFitTargets()

	// Length mismatch, empty series, bad index, unsorted times
	assert.Error(t, ft.AddSeries(GLC, []float64{0, 1}, []float64{1}))
	assert.Error(t, ft.AddSeries(GLC, nil, nil))
	assert.Error(t, ft.AddSeries(-1, []float64{0}, []float64{1}))
	assert.Error(t, ft.AddSeries(PHI, []float64{0}, []float64{7.2}))
	assert.Error(t, ft.AddSeries(GLC, []float64{2, 1}, []float64{1, 2}))

	// A valid series interpolates linearly and extrapolates flat
	require.NoError(t, ft.AddSeries(GLC, []float64{0, 2, 4}, []float64{4.0, 3.0, 1.0}))
	v, ok := ft.Target(GLC, 1.0)
	require.True(t, ok)
	assert.InDelta(t, 3.5, v, 1e-12)
	v, _ = ft.Target(GLC, 10.0)
	assert.Equal(t, 1.0, v)
	v, _ = ft.Target(GLC, -1.0)
	assert.Equal(t, 4.0, v)

	// A single sample acts as a constant target
	require.NoError(t, ft.AddSeries(LAC, []float64{0}, []float64{2.5}))
	v, ok = ft.Target(LAC, 7.0)
	require.True(t, ok)
	assert.Equal(t, 2.5, v)

	// Metabolites without a curve report absence
	_, ok = ft.Target(ATP, 0)
	assert.False(t, ok)
	assert.Equal(t, 2, ft.Len())
	assert.Equal(t, []int{GLC, LAC}, ft.Metabolites())
}

// TestBlend_StrengthZeroIsIdentity verifies a zero-strength blend leaves
// the mechanistic derivatives bit-identical.
func TestBlend_StrengthZeroIsIdentity(t *testing.T) {
	// GIVEN two engines differing only in an inert (strength 0) target set
	ft := NewFitTargets()
	require.NoError(t, ft.AddSeries(GLC, []float64{0, 10}, []float64{4.0, 2.0}))

	plain := newTestEngine(t, Config{Layout: LayoutCore})
	blended := newTestEngine(t, Config{Layout: LayoutCore, FitTargets: ft, BlendStrength: 0})

	x := plain.InitialState()
	dPlain, err := plain.Derivatives(0, x)
	require.NoError(t, err)
	dBlend, err := blended.Derivatives(0, x)
	require.NoError(t, err)

	assert.Equal(t, dPlain, dBlend)
}

// TestBlend_FullyDataDrivenAtFixedPoint verifies that with strength 1 and
// the state already on target, the targeted derivative vanishes.
func TestBlend_FullyDataDrivenAtFixedPoint(t *testing.T) {
	ft := NewFitTargets()
	require.NoError(t, ft.AddSeries(GLC, []float64{0}, []float64{1.0}))

	e := newTestEngine(t, Config{Layout: LayoutCore, FitTargets: ft, BlendStrength: 1.0})
	dxdt, err := e.Derivatives(0, e.InitialState())
	require.NoError(t, err)

	assert.Zero(t, dxdt[GLC])
}

// TestBlend_PullsTowardTarget verifies the feedback sign: a target above
// the current concentration pushes the derivative up.
func TestBlend_PullsTowardTarget(t *testing.T) {
	ft := NewFitTargets()
	require.NoError(t, ft.AddSeries(GLC, []float64{0}, []float64{3.0}))

	mech := newTestEngine(t, Config{Layout: LayoutCore})
	driven := newTestEngine(t, Config{Layout: LayoutCore, FitTargets: ft, BlendStrength: 1.0})

	x := mech.InitialState() // GLC starts at 1.0, target is 3.0
	dMech, err := mech.Derivatives(0, x)
	require.NoError(t, err)
	dDriven, err := driven.Derivatives(0, x)
	require.NoError(t, err)

	assert.Less(t, dMech[GLC], 0.0)
	assert.InDelta(t, 2.0, dDriven[GLC], 1e-12) // gain 1 * (3.0 - 1.0)

	// Untargeted metabolites keep their mechanistic derivative
	assert.Equal(t, dMech[LAC], dDriven[LAC])
}

// TestBlend_HalfStrengthMixes verifies the convex combination at s=0.5.
func TestBlend_HalfStrengthMixes(t *testing.T) {
	ft := NewFitTargets()
	require.NoError(t, ft.AddSeries(GLC, []float64{0}, []float64{3.0}))
	ft.SetGain(GLC, 0.5)

	mech := newTestEngine(t, Config{Layout: LayoutCore})
	half := newTestEngine(t, Config{Layout: LayoutCore, FitTargets: ft, BlendStrength: 0.5})

	x := mech.InitialState()
	dMech, err := mech.Derivatives(0, x)
	require.NoError(t, err)
	dHalf, err := half.Derivatives(0, x)
	require.NoError(t, err)

	want := 0.5*dMech[GLC] + 0.5*0.5*(3.0-1.0)
	assert.InDelta(t, want, dHalf[GLC], 1e-12)
}
