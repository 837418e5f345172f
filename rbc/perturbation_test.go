package rbc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStepPerturbation_Schedule verifies baseline before onset and target
// after.
func TestStepPerturbation_Schedule(t *testing.T) {
	p := NewStepPerturbation(7.0, 2.0, 7.4)
	require.NoError(t, p.Validate())

	assert.Equal(t, 7.4, p.TargetPHe(0))
	assert.Equal(t, 7.4, p.TargetPHe(1.999))
	assert.Equal(t, 7.0, p.TargetPHe(2.0))
	assert.Equal(t, 7.0, p.TargetPHe(100))
}

// TestRampPerturbation_Schedule verifies linear interpolation inside the
// window and the plateaus outside.
func TestRampPerturbation_Schedule(t *testing.T) {
	p := NewRampPerturbation(7.4, 7.0, 1.0, 2.0)
	require.NoError(t, p.Validate())

	assert.Equal(t, 7.4, p.TargetPHe(0.5))
	assert.InDelta(t, 7.2, p.TargetPHe(2.0), 1e-12)
	assert.Equal(t, 7.0, p.TargetPHe(3.0))
	assert.Equal(t, 7.0, p.TargetPHe(10.0))
}

// TestSinusoidPerturbation_Schedule verifies amplitude and periodicity.
func TestSinusoidPerturbation_Schedule(t *testing.T) {
	p := NewSinusoidPerturbation(7.4, 0.2, 4.0, 0.0)
	require.NoError(t, p.Validate())

	assert.InDelta(t, 7.4, p.TargetPHe(0), 1e-12)
	assert.InDelta(t, 7.6, p.TargetPHe(1.0), 1e-12) // quarter period
	assert.InDelta(t, 7.2, p.TargetPHe(3.0), 1e-12) // three quarters
	assert.InDelta(t, p.TargetPHe(0.7), p.TargetPHe(4.7), 1e-12)
}

// TestPulsePerturbation_Schedule verifies the shock window and recovery.
func TestPulsePerturbation_Schedule(t *testing.T) {
	p := NewPulsePerturbation(6.9, 1.0, 0.5, 7.4)
	require.NoError(t, p.Validate())

	assert.Equal(t, 7.4, p.TargetPHe(0.9))
	assert.Equal(t, 6.9, p.TargetPHe(1.0))
	assert.Equal(t, 6.9, p.TargetPHe(1.49))
	assert.Equal(t, 7.4, p.TargetPHe(1.5))
}

// TestPerturbation_ValidateRejectsNonsense verifies each kind's field
// requirements.
func TestPerturbation_ValidateRejectsNonsense(t *testing.T) {
	cases := []Perturbation{
		{Kind: PerturbationStep},                           // no target
		{Kind: PerturbationRamp, Initial: 7.4, Final: 7.0}, // no duration
		{Kind: PerturbationSinusoid, Mean: 7.4},            // no period
		{Kind: PerturbationPulse, Target: 6.9},             // no duration
		{Kind: "square"},                                   // unknown kind
	}
	for _, p := range cases {
		assert.Error(t, p.Validate(), "kind %q", p.Kind)
	}
	none := Perturbation{Kind: PerturbationNone}
	assert.NoError(t, none.Validate())
}

// TestPerturbation_DefaultBaseline verifies a zero baseline falls back to
// physiological pHe.
func TestPerturbation_DefaultBaseline(t *testing.T) {
	p := NewStepPerturbation(7.0, 5.0, 0)
	assert.Equal(t, PhysiologicalPHe, p.TargetPHe(0))
}

// TestSinusoidPerturbation_Phase verifies the phase shift direction.
func TestSinusoidPerturbation_Phase(t *testing.T) {
	shifted := NewSinusoidPerturbation(7.4, 0.2, 4.0, 1.0)
	require.NoError(t, shifted.Validate())
	// At t equal to the phase the sine starts from zero.
	assert.InDelta(t, 7.4, shifted.TargetPHe(1.0), 1e-12)
	assert.True(t, math.Abs(shifted.TargetPHe(2.0)-7.6) < 1e-9)
}
