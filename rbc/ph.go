package rbc

import "math"

// Membrane proton-transport coefficients, calibrated against pH-clamp
// experiments. Rate coefficients are per minute; the derivative terms divide
// by 60 because simulation time is in hours.
const (
	kDiffH     = 0.099 // passive H+ diffusion (pH units/min)
	kNHE       = 0.110 // Na+/H+ exchanger activity
	kAE1       = 2.994 // Cl-/HCO3- exchanger (band 3) activity
	betaBuffer = 30.0  // intracellular buffering capacity (mM per pH unit)

	// pHe relaxes toward a perturbation target with roughly a one-minute
	// time constant, expressed in hours.
	pheRelaxationTau = 1.0 / 60.0
)

// referencePH normalizes enzyme modulation factors so that activity at
// resting intracellular pH is exactly 1.
const referencePH = PhysiologicalPHi

// enzymePHProfile describes how one enzyme's activity depends on pH.
type enzymePHProfile struct {
	Name  string
	OptPH float64 // pH of half-maximal activation in the Hill term
	HillN float64 // steepness of the pH-activity curve
	MinPH float64 // valid range; pH is clipped before evaluation
	MaxPH float64
}

// phEnzymeProfiles lists the enzymes with experimentally characterized pH
// dependence. Keys are reaction names. PFK is the steepest pH sensor in the
// network; DPGM steers 2,3-BPG and with it oxygen affinity.
var phEnzymeProfiles = map[string]enzymePHProfile{
	"VHK":     {Name: "hexokinase", OptPH: 7.7, HillN: 2.0, MinPH: 6.5, MaxPH: 8.5},
	"VPFK":    {Name: "phosphofructokinase", OptPH: 7.1, HillN: 4.0, MinPH: 6.5, MaxPH: 7.8},
	"VPK":     {Name: "pyruvate kinase", OptPH: 7.3, HillN: 2.5, MinPH: 6.5, MaxPH: 8.0},
	"VLDH":    {Name: "lactate dehydrogenase", OptPH: 7.5, HillN: 2.0, MinPH: 6.8, MaxPH: 8.0},
	"VGAPDH":  {Name: "glyceraldehyde-3-P dehydrogenase", OptPH: 8.2, HillN: 2.0, MinPH: 6.8, MaxPH: 8.5},
	"VDPGM":   {Name: "2,3-bisphosphoglycerate mutase", OptPH: 7.4, HillN: 3.0, MinPH: 6.8, MaxPH: 7.8},
	"V23DPGP": {Name: "2,3-bisphosphoglycerate phosphatase", OptPH: 7.1, HillN: 2.0, MinPH: 6.5, MaxPH: 7.8},
	"VG6PDH":  {Name: "glucose-6-phosphate dehydrogenase", OptPH: 8.0, HillN: 2.0, MinPH: 6.8, MaxPH: 8.5},
	"V6PGD":   {Name: "6-phosphogluconate dehydrogenase", OptPH: 8.0, HillN: 2.0, MinPH: 6.8, MaxPH: 8.5},
	"VGSR":    {Name: "glutathione reductase", OptPH: 7.4, HillN: 2.0, MinPH: 6.5, MaxPH: 8.0},
	"VGSS":    {Name: "glutathione synthetase", OptPH: 7.5, HillN: 2.0, MinPH: 6.8, MaxPH: 8.0},
	"VGPX":    {Name: "glutathione peroxidase", OptPH: 7.4, HillN: 2.0, MinPH: 6.5, MaxPH: 8.0},
	"VPGK":    {Name: "phosphoglycerate kinase", OptPH: 7.4, HillN: 2.0, MinPH: 6.5, MaxPH: 8.0},
	"VENOPGM": {Name: "enolase", OptPH: 7.4, HillN: 2.0, MinPH: 6.5, MaxPH: 8.0},
}

// PHModulationFactor returns the pH-dependent activity multiplier for a
// reaction, in [0, 2]. The raw response is a Hill-type function of [H+]
// centered on the enzyme's optimum,
//
//	f(pH) = 1 / (1 + 10^(n*(pHopt - pH)))
//
// normalized so that f(referencePH) == 1. Reactions without a profile are
// unmodulated (factor 1).
func PHModulationFactor(pH float64, reaction string) float64 {
	prof, ok := phEnzymeProfiles[reaction]
	if !ok {
		return 1.0
	}
	if pH < prof.MinPH {
		pH = prof.MinPH
	} else if pH > prof.MaxPH {
		pH = prof.MaxPH
	}
	raw := 1.0 / (1.0 + math.Pow(10, prof.HillN*(prof.OptPH-pH)))
	ref := 1.0 / (1.0 + math.Pow(10, prof.HillN*(prof.OptPH-referencePH)))
	f := raw / ref
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f > 2.0:
		return 2.0
	}
	return f
}

// PHSensitiveReactions returns the reaction names with a pH profile.
func PHSensitiveReactions() []string {
	names := make([]string, 0, len(phEnzymeProfiles))
	for name := range phEnzymeProfiles {
		names = append(names, name)
	}
	return names
}

// phModulation carries the per-call multipliers for the ten reactions whose
// rate law includes a pH term. All ones when modulation is disabled.
type phModulation struct {
	HK, PFK, PK, LDH, GAPDH, DPGM, DPGP, G6PDH, PGK, ENO float64
}

var neutralModulation = phModulation{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}

func modulationAt(pHi float64) phModulation {
	return phModulation{
		HK:    PHModulationFactor(pHi, "VHK"),
		PFK:   PHModulationFactor(pHi, "VPFK"),
		PK:    PHModulationFactor(pHi, "VPK"),
		LDH:   PHModulationFactor(pHi, "VLDH"),
		GAPDH: PHModulationFactor(pHi, "VGAPDH"),
		DPGM:  PHModulationFactor(pHi, "VDPGM"),
		DPGP:  PHModulationFactor(pHi, "V23DPGP"),
		G6PDH: PHModulationFactor(pHi, "VG6PDH"),
		PGK:   PHModulationFactor(pHi, "VPGK"),
		ENO:   PHModulationFactor(pHi, "VENOPGM"),
	}
}

// phiDerivative computes dpHi/dt from the metabolic acid/base balance and
// membrane transport. Sign convention: positive means alkalinization.
//
// Lactate-producing flux generates H+ (negative), NADPH-producing oxidative
// flux consumes H+ (positive), and ATP-consuming kinase flux adds a small
// acid load (negative). Passive diffusion follows the transmembrane
// gradient; the two exchangers export protons when pHi rises above resting.
// Everything is scaled by the cell's buffering capacity.
func phiDerivative(pHi, pHe float64, f *Fluxes) float64 {
	acidGlycolysis := 0.1 * (f.VPK + f.VLDH)
	baseOxidation := 0.05 * (f.VG6PDH + f.V6PGD)
	acidATPase := 0.01 * (f.VHK + f.VPFK)

	jPassive := kDiffH * (pHe - pHi) / 60.0
	jNHE := kNHE * 0.1 * (pHi - PhysiologicalPHi) / 60.0
	jAE1 := kAE1 * 0.15 * (pHi - PhysiologicalPHi) / 60.0

	return (1.0 / betaBuffer) * (-acidGlycolysis + baseOxidation - acidATPase + jPassive + jNHE + jAE1)
}

// phiDerivativeRelaxed is the reduced pHi equation used when enzyme
// modulation is off: metabolic acid load plus a first-order pull back to
// resting pH, without explicit membrane transport.
func phiDerivativeRelaxed(pHi float64, f *Fluxes) float64 {
	return 0.01 * (0.1*(f.VPK+f.VLDH) - 0.05*(f.VG6PDH+f.V6PGD) - 0.2*(pHi-PhysiologicalPHi))
}

// pheDerivative relaxes extracellular pH toward the schedule's target. With
// no schedule the bath is treated as infinite and pHe stays put.
func pheDerivative(t, pHe float64, sched *Perturbation) float64 {
	if sched == nil {
		return 0
	}
	return (sched.TargetPHe(t) - pHe) / pheRelaxationTau
}
