package rbc

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Config assembles one simulation run. All behavioral switches live here;
// nothing in the package reads global state. The zero value is usable after
// filling in Layout.
type Config struct {
	// Layout fixes the state-vector shape for the whole run.
	Layout Layout

	// Params holds the kinetic constants. Nil means defaults.
	Params *Params

	// PHModulation enables pH-dependent enzyme activity and the full
	// membrane proton-transport pHi equation. Requires LayoutCoreExtPH.
	PHModulation bool

	// Perturbation schedules extracellular pH. Nil leaves pHe alone.
	Perturbation *Perturbation

	// BlendStrength mixes mechanistic derivatives with feedback toward
	// FitTargets: 0 is fully mechanistic, 1 fully data-driven for targeted
	// metabolites, up to 2 for overshoot studies.
	BlendStrength float64

	// FitTargets supplies experimental target curves. Nil disables blending
	// regardless of BlendStrength.
	FitTargets *FitTargets

	// FluxRecorder and BohrRecorder, when non-nil, receive a snapshot at
	// every accepted integration step via Observe.
	FluxRecorder *FluxRecorder
	BohrRecorder *BohrRecorder

	// Bohr overrides the oxygen-affinity coefficients. Nil means standard.
	Bohr *BohrModel

	// Hemoglobin (g/dL) for oxygen-content tracking. Zero means normal.
	Hemoglobin float64

	Log *logrus.Logger
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Layout != LayoutCore && c.Layout != LayoutCoreExtPH {
		return fmt.Errorf("unknown state layout %v", c.Layout)
	}
	if c.PHModulation && c.Layout != LayoutCoreExtPH {
		return fmt.Errorf("pH modulation requires the extended state layout")
	}
	if c.BlendStrength < 0 || c.BlendStrength > 2 {
		return fmt.Errorf("blend strength %g outside [0, 2]", c.BlendStrength)
	}
	if c.Perturbation != nil {
		if c.Layout != LayoutCoreExtPH {
			return fmt.Errorf("a pH perturbation requires the extended state layout")
		}
		if err := c.Perturbation.Validate(); err != nil {
			return err
		}
	}
	if c.Hemoglobin < 0 {
		return fmt.Errorf("hemoglobin must be non-negative, got %g", c.Hemoglobin)
	}
	return nil
}

func (c *Config) logger() *logrus.Logger {
	if c.Log != nil {
		return c.Log
	}
	return logrus.StandardLogger()
}

// Engine evaluates the metabolic network's right-hand side. Derivatives is
// pure: it never touches the recorders, so the integrator may call it on
// trial steps freely. Observe records instrumentation at accepted steps.
type Engine struct {
	cfg    Config
	params *Params
	bohr   *BohrModel
	hgb    float64
	log    *logrus.Logger

	rhsEvals int
}

// NewEngine validates the configuration and builds an engine.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	log := cfg.logger()
	if cfg.BlendStrength > 1 {
		log.WithField("strength", cfg.BlendStrength).
			Warn("blend strength above 1 overshoots the experimental targets")
	}
	params := cfg.Params
	if params == nil {
		params = DefaultParams()
	}
	bohr := cfg.Bohr
	if bohr == nil {
		bohr = NewBohrModel()
	}
	hgb := cfg.Hemoglobin
	if hgb == 0 {
		hgb = NormalHemoglobin
	}
	if n := len(params.Overrides()); n > 0 {
		log.WithField("overrides", n).Debug("running with non-default kinetic constants")
	}
	return &Engine{cfg: cfg, params: params, bohr: bohr, hgb: hgb, log: log}, nil
}

// Layout returns the state-vector shape this engine integrates.
func (e *Engine) Layout() Layout {
	return e.cfg.Layout
}

// InitialState returns the default initial condition in this engine's
// layout.
func (e *Engine) InitialState() []float64 {
	return DefaultInitialState(e.cfg.Layout)
}

// RHSEvals reports how many times Derivatives has run.
func (e *Engine) RHSEvals() int {
	return e.rhsEvals
}

// Derivatives evaluates dx/dt at time t (hours). The input is canonicalized
// first (length check, concentration floors, pH clamps), then the full
// reaction network is evaluated. Intracellular pH always evolves: the full
// membrane-transport equation with modulation on, the reduced metabolic
// equation otherwise. Extracellular pH is dynamic only in the extended
// layout. Fit-target feedback is blended in next and the stability pass
// applied last. The returned slice always matches the configured layout
// size.
func (e *Engine) Derivatives(t float64, x []float64) ([]float64, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return nil, fmt.Errorf("non-finite time %v", t)
	}
	if t < 0 {
		return nil, fmt.Errorf("negative time %g", t)
	}
	xc, err := Canonicalize(x, e.cfg.Layout)
	if err != nil {
		return nil, err
	}
	e.rhsEvals++

	mod := neutralModulation
	if e.cfg.PHModulation {
		mod = modulationAt(xc[PHI])
	}
	f := e.computeFluxes(xc, mod)

	dxdt := make([]float64, e.cfg.Layout.Size())
	applyStoichiometry(dxdt, &f)

	if e.cfg.PHModulation {
		dxdt[PHI] = phiDerivative(xc[PHI], xc[PHE], &f)
	} else {
		dxdt[PHI] = phiDerivativeRelaxed(xc[PHI], &f)
	}
	if e.cfg.Layout == LayoutCoreExtPH {
		dxdt[PHE] = pheDerivative(t, xc[PHE], e.cfg.Perturbation)
	}

	blendDerivatives(dxdt, xc, t, e.cfg.BlendStrength, e.cfg.FitTargets)
	sanitizeDerivatives(dxdt)
	return dxdt, nil
}

// Observe records instrumentation for an accepted step. It recomputes the
// fluxes at (t, x) so that recorded values always correspond to points on
// the accepted trajectory, never to rejected trials.
func (e *Engine) Observe(t float64, x []float64) error {
	if e.cfg.FluxRecorder == nil && e.cfg.BohrRecorder == nil {
		return nil
	}
	xc, err := Canonicalize(x, e.cfg.Layout)
	if err != nil {
		return err
	}
	mod := neutralModulation
	if e.cfg.PHModulation {
		mod = modulationAt(xc[PHI])
	}
	if e.cfg.FluxRecorder != nil {
		e.cfg.FluxRecorder.Record(t, e.computeFluxes(xc, mod))
	}
	if e.cfg.BohrRecorder != nil {
		e.cfg.BohrRecorder.Record(e.bohrSample(t, xc))
	}
	return nil
}

func (e *Engine) bohrSample(t float64, xc []float64) BohrSample {
	pHi, pHe := xc[PHI], PhysiologicalPHe
	if e.cfg.Layout == LayoutCoreExtPH {
		pHe = xc[PHE]
	}
	bpg := xc[B23PG]
	// P50 inside the cell is set by pHi; plasma-referenced P50 uses pHe.
	// Saturation at the membrane follows plasma pH, venous blood running
	// slightly acid from tissue CO2.
	delivery := e.bohr.Delivery(ArterialPO2, VenousPO2, pHe, pHe-venousPHOffset, bpg, e.hgb)
	return BohrSample{
		Time:               t,
		PHi:                pHi,
		PHe:                pHe,
		BPGmM:              bpg,
		P50CellmmHg:        e.bohr.P50(pHi, bpg, NormalTempC),
		P50PlasmammHg:      e.bohr.P50(pHe, bpg, NormalTempC),
		SatArterial:        delivery.SatArterial,
		SatVenous:          delivery.SatVenous,
		ExtractionFraction: delivery.ExtractionFraction,
		O2ArterialmLPerDL:  delivery.ArterialContent,
		O2VenousmLPerDL:    delivery.VenousContent,
	}
}
