package rbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestP50_NormalConditions verifies the reference point: normal blood pH,
// normal 2,3-BPG and body temperature give the textbook P50.
func TestP50_NormalConditions(t *testing.T) {
	b := NewBohrModel()
	assert.InDelta(t, NormalP50, b.P50(NormalBloodPH, NormalBPG, NormalTempC), 1e-9)
}

// TestP50_BohrShift verifies acidosis right-shifts the curve and alkalosis
// left-shifts it.
func TestP50_BohrShift(t *testing.T) {
	b := NewBohrModel()
	acid := b.P50(7.2, NormalBPG, NormalTempC)
	norm := b.P50(NormalBloodPH, NormalBPG, NormalTempC)
	alk := b.P50(7.6, NormalBPG, NormalTempC)
	assert.Greater(t, acid, norm)
	assert.Less(t, alk, norm)
}

// TestP50_BPGAndTemperature verifies 2,3-BPG and fever both raise P50, and
// the floor holds under extreme depletion.
func TestP50_BPGAndTemperature(t *testing.T) {
	b := NewBohrModel()
	assert.Greater(t, b.P50(NormalBloodPH, 8.0, NormalTempC), NormalP50)
	assert.Greater(t, b.P50(NormalBloodPH, NormalBPG, 40.0), NormalP50)

	// Extreme alkalosis plus BPG depletion cannot push P50 below 1 mmHg.
	assert.GreaterOrEqual(t, b.P50(MaxPH, -100.0, 20.0), 1.0)
}

// TestSaturation_HillShape verifies the sigmoid shape and its clamps.
func TestSaturation_HillShape(t *testing.T) {
	b := NewBohrModel()

	// Half-saturated exactly at P50
	p50 := b.P50(NormalBloodPH, NormalBPG, NormalTempC)
	assert.InDelta(t, 0.5, b.Saturation(p50, NormalBloodPH, NormalBPG), 1e-9)

	// Monotone in pO2, clamped to [0, 1]
	assert.Equal(t, 0.0, b.Saturation(0, NormalBloodPH, NormalBPG))
	sat40 := b.Saturation(40, NormalBloodPH, NormalBPG)
	sat100 := b.Saturation(100, NormalBloodPH, NormalBPG)
	assert.Less(t, sat40, sat100)
	assert.LessOrEqual(t, b.Saturation(1e6, NormalBloodPH, NormalBPG), 1.0)

	// Arterial blood runs near full saturation, venous well below
	assert.Greater(t, sat100, 0.95)
	assert.Less(t, sat40, 0.85)
}

// TestOxygenContent_BoundPlusDissolved verifies the content split.
func TestOxygenContent_BoundPlusDissolved(t *testing.T) {
	b := NewBohrModel()
	content := b.OxygenContent(ArterialPO2, NormalBloodPH, NormalBPG, NormalHemoglobin)
	sat := b.Saturation(ArterialPO2, NormalBloodPH, NormalBPG)
	assert.InDelta(t, sat*1.34*NormalHemoglobin+0.003*ArterialPO2, content, 1e-9)
}

// TestDelivery_ArterialVenousExtraction verifies extraction is positive and
// fractional, and that acidosis improves unloading (the physiological point
// of the Bohr effect).
func TestDelivery_ArterialVenousExtraction(t *testing.T) {
	b := NewBohrModel()

	d := b.Delivery(ArterialPO2, VenousPO2, NormalBloodPH, NormalBloodPH-0.05, NormalBPG, NormalHemoglobin)
	assert.Greater(t, d.Extracted, 0.0)
	assert.GreaterOrEqual(t, d.ExtractionFraction, 0.0)
	assert.LessOrEqual(t, d.ExtractionFraction, 1.0)
	assert.Greater(t, d.SatArterial, d.SatVenous)

	// GIVEN acidotic venous blood, more oxygen is released at the tissues
	acidotic := b.Delivery(ArterialPO2, VenousPO2, NormalBloodPH, 7.2, NormalBPG, NormalHemoglobin)
	assert.Greater(t, acidotic.Extracted, d.Extracted)
}

// TestBohrModel_ZeroValueUsesDefaults verifies the zero value behaves like
// the standard model.
func TestBohrModel_ZeroValueUsesDefaults(t *testing.T) {
	var zero BohrModel
	std := NewBohrModel()
	assert.Equal(t, std.P50(7.3, 4.0, 38.0), zero.P50(7.3, 4.0, 38.0))
	assert.Equal(t, std.Saturation(60, 7.3, 4.0), zero.Saturation(60, 7.3, 4.0))
}
