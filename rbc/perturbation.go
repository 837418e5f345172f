package rbc

import (
	"fmt"
	"math"
)

// PerturbationKind enumerates the supported extracellular pH schedules.
type PerturbationKind string

const (
	PerturbationNone     PerturbationKind = "none"
	PerturbationStep     PerturbationKind = "step"
	PerturbationRamp     PerturbationKind = "ramp"
	PerturbationSinusoid PerturbationKind = "sinusoidal"
	PerturbationPulse    PerturbationKind = "pulse"
)

// Perturbation is a time schedule for the extracellular pH target. All
// times are in simulated hours. The zero value is not valid; use one of the
// constructors.
type Perturbation struct {
	Kind PerturbationKind

	Baseline  float64 // resting pHe, used outside the active window
	Target    float64 // step target / pulse shock pH
	Initial   float64 // ramp start pH
	Final     float64 // ramp end pH
	Mean      float64 // sinusoid mean pH
	Amplitude float64
	Period    float64 // sinusoid period (hours)
	Phase     float64 // sinusoid phase shift (hours)
	Start     float64 // step/ramp/pulse onset (hours)
	Duration  float64 // ramp/pulse length (hours)
}

// NewStepPerturbation holds pHe at baseline until start, then at target.
func NewStepPerturbation(target, start, baseline float64) *Perturbation {
	return &Perturbation{Kind: PerturbationStep, Target: target, Start: start, Baseline: baseline}
}

// NewRampPerturbation moves pHe linearly from initial to final over
// duration hours beginning at start.
func NewRampPerturbation(initial, final, start, duration float64) *Perturbation {
	return &Perturbation{Kind: PerturbationRamp, Initial: initial, Final: final, Start: start, Duration: duration}
}

// NewSinusoidPerturbation oscillates pHe around mean.
func NewSinusoidPerturbation(mean, amplitude, period, phase float64) *Perturbation {
	return &Perturbation{Kind: PerturbationSinusoid, Mean: mean, Amplitude: amplitude, Period: period, Phase: phase}
}

// NewPulsePerturbation applies a temporary pH shock, returning to baseline
// afterwards.
func NewPulsePerturbation(shock, start, duration, baseline float64) *Perturbation {
	return &Perturbation{Kind: PerturbationPulse, Target: shock, Start: start, Duration: duration, Baseline: baseline}
}

// Validate checks that the schedule's fields make sense for its kind.
func (p *Perturbation) Validate() error {
	switch p.Kind {
	case PerturbationNone:
		return nil
	case PerturbationStep:
		if p.Target == 0 {
			return fmt.Errorf("step perturbation requires a target pH")
		}
	case PerturbationRamp:
		if p.Duration <= 0 {
			return fmt.Errorf("ramp perturbation requires a positive duration, got %g", p.Duration)
		}
		if p.Initial == 0 || p.Final == 0 {
			return fmt.Errorf("ramp perturbation requires initial and final pH")
		}
	case PerturbationSinusoid:
		if p.Period <= 0 {
			return fmt.Errorf("sinusoidal perturbation requires a positive period, got %g", p.Period)
		}
		if p.Mean == 0 {
			return fmt.Errorf("sinusoidal perturbation requires a mean pH")
		}
	case PerturbationPulse:
		if p.Duration <= 0 {
			return fmt.Errorf("pulse perturbation requires a positive duration, got %g", p.Duration)
		}
		if p.Target == 0 {
			return fmt.Errorf("pulse perturbation requires a shock pH")
		}
	default:
		return fmt.Errorf("unknown perturbation kind %q", p.Kind)
	}
	return nil
}

func (p *Perturbation) baseline() float64 {
	if p.Baseline == 0 {
		return PhysiologicalPHe
	}
	return p.Baseline
}

// TargetPHe returns the scheduled extracellular pH at time t (hours).
func (p *Perturbation) TargetPHe(t float64) float64 {
	switch p.Kind {
	case PerturbationStep:
		if t < p.Start {
			return p.baseline()
		}
		return p.Target
	case PerturbationRamp:
		switch {
		case t < p.Start:
			return p.Initial
		case t < p.Start+p.Duration:
			progress := (t - p.Start) / p.Duration
			return p.Initial + progress*(p.Final-p.Initial)
		}
		return p.Final
	case PerturbationSinusoid:
		omega := 2.0 * math.Pi / p.Period
		return p.Mean + p.Amplitude*math.Sin(omega*(t-p.Phase))
	case PerturbationPulse:
		if t >= p.Start && t < p.Start+p.Duration {
			return p.Target
		}
		return p.baseline()
	}
	return p.baseline()
}

// Description returns a human-readable summary of the schedule.
func (p *Perturbation) Description() string {
	switch p.Kind {
	case PerturbationStep:
		return fmt.Sprintf("step: pHe %.2f -> %.2f at t=%gh", p.baseline(), p.Target, p.Start)
	case PerturbationRamp:
		return fmt.Sprintf("ramp: pHe %.2f -> %.2f over %gh starting at t=%gh", p.Initial, p.Final, p.Duration, p.Start)
	case PerturbationSinusoid:
		return fmt.Sprintf("sinusoid: pHe %.2f +/- %.2f, period %gh", p.Mean, p.Amplitude, p.Period)
	case PerturbationPulse:
		return fmt.Sprintf("pulse: pHe shock to %.2f for %gh starting at t=%gh", p.Target, p.Duration, p.Start)
	}
	return fmt.Sprintf("none (pHe = %.2f)", p.baseline())
}
