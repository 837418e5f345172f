package rbc

import "math"

// Reference oxygen-binding constants at pH 7.4, 37C, normal 2,3-BPG.
const (
	NormalP50       = 26.8 // mmHg
	NormalBloodPH   = 7.4
	NormalBPG       = 5.0  // mM
	NormalTempC     = 37.0 // body temperature
	hillOxygenN     = 2.8  // cooperative binding coefficient
	bohrCoeff       = -0.48
	bpgCoeff        = 0.3   // delta P50 (mmHg) per mM 2,3-BPG
	tempCoeff       = 0.024 // delta log10(P50) per degree C
	huefnerConst    = 1.34  // mL O2 bound per g hemoglobin
	henrySolubility = 0.003 // mL O2 per dL blood per mmHg dissolved

	// Typical sampling points for arterial/venous blood.
	ArterialPO2 = 100.0 // mmHg
	VenousPO2   = 40.0  // mmHg

	// Tissue CO2 shifts venous pH slightly acid relative to arterial.
	venousPHOffset = 0.05

	// NormalHemoglobin is the default hemoglobin concentration (g/dL).
	NormalHemoglobin = 15.0
)

// BohrModel derives hemoglobin-oxygen affinity metrics from pH and
// 2,3-BPG. All methods are pure and clamp their results to physiological
// ranges. The zero value uses the textbook coefficients; fields may be
// adjusted for sensitivity studies.
type BohrModel struct {
	BohrCoeff float64 // delta log10(P50) per pH unit
	BPGCoeff  float64 // delta P50 per mM 2,3-BPG
	TempCoeff float64 // delta log10(P50) per degree C
	HillN     float64 // cooperativity
}

// NewBohrModel returns a model with the standard coefficients.
func NewBohrModel() *BohrModel {
	return &BohrModel{BohrCoeff: bohrCoeff, BPGCoeff: bpgCoeff, TempCoeff: tempCoeff, HillN: hillOxygenN}
}

func (b *BohrModel) coeffs() (bohr, bpg, temp, hill float64) {
	bohr, bpg, temp, hill = b.BohrCoeff, b.BPGCoeff, b.TempCoeff, b.HillN
	if bohr == 0 {
		bohr = bohrCoeff
	}
	if bpg == 0 {
		bpg = bpgCoeff
	}
	if temp == 0 {
		temp = tempCoeff
	}
	if hill == 0 {
		hill = hillOxygenN
	}
	return
}

// P50 computes the half-saturation oxygen pressure (mmHg) at the given pH,
// 2,3-BPG concentration (mM) and temperature (C). The pH dependence is
// log-linear (Bohr effect), the BPG dependence linear, and the result never
// drops below 1 mmHg.
func (b *BohrModel) P50(pH, bpgConc, temperature float64) float64 {
	bohr, bpg, temp, _ := b.coeffs()
	logP50 := math.Log10(NormalP50) + bohr*(pH-NormalBloodPH) + temp*(temperature-NormalTempC)
	p50 := math.Pow(10, logP50) + bpg*(bpgConc-NormalBPG)
	return math.Max(p50, 1.0)
}

// Saturation computes fractional hemoglobin oxygen saturation at partial
// pressure pO2 (mmHg) via the Hill equation, clamped to [0, 1].
func (b *BohrModel) Saturation(pO2, pH, bpgConc float64) float64 {
	_, _, _, hill := b.coeffs()
	p50 := b.P50(pH, bpgConc, NormalTempC)
	pn := math.Pow(pO2, hill)
	sat := pn / (math.Pow(p50, hill) + pn)
	switch {
	case math.IsNaN(sat) || sat < 0:
		return 0
	case sat > 1:
		return 1
	}
	return sat
}

// OxygenContent computes total blood oxygen content (mL O2 per dL) as
// hemoglobin-bound plus dissolved oxygen.
func (b *BohrModel) OxygenContent(pO2, pH, bpgConc, hemoglobin float64) float64 {
	bound := b.Saturation(pO2, pH, bpgConc) * huefnerConst * hemoglobin
	dissolved := henrySolubility * pO2
	return bound + dissolved
}

// DeliveryMetrics summarizes arterial-to-venous oxygen transfer.
type DeliveryMetrics struct {
	ArterialContent    float64 // mL O2 / dL
	VenousContent      float64 // mL O2 / dL
	Extracted          float64 // mL O2 / dL
	ExtractionFraction float64 // extracted / arterial, in [0, 1]
	SatArterial        float64
	SatVenous          float64
}

// Delivery computes oxygen extraction between arterial and venous sampling
// points. Venous blood sees a slightly lower pH from tissue CO2.
func (b *BohrModel) Delivery(arterialPO2, venousPO2, pHArterial, pHVenous, bpgConc, hemoglobin float64) DeliveryMetrics {
	arterial := b.OxygenContent(arterialPO2, pHArterial, bpgConc, hemoglobin)
	venous := b.OxygenContent(venousPO2, pHVenous, bpgConc, hemoglobin)
	extracted := arterial - venous
	frac := 0.0
	if arterial > 0 {
		frac = extracted / arterial
	}
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	return DeliveryMetrics{
		ArterialContent:    arterial,
		VenousContent:      venous,
		Extracted:          extracted,
		ExtractionFraction: frac,
		SatArterial:        b.Saturation(arterialPO2, pHArterial, bpgConc),
		SatVenous:          b.Saturation(venousPO2, pHVenous, bpgConc),
	}
}
