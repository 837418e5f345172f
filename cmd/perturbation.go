package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	rbc "github.com/erythrosim/erythrosim/rbc"
)

// PerturbationFile is the on-disk shape of an extracellular pH schedule.
// All fields must be listed to satisfy KnownFields(true) strict parsing.
type PerturbationFile struct {
	Kind      string  `yaml:"kind"`
	Baseline  float64 `yaml:"baseline"`
	Target    float64 `yaml:"target"`
	Initial   float64 `yaml:"initial"`
	Final     float64 `yaml:"final"`
	Mean      float64 `yaml:"mean"`
	Amplitude float64 `yaml:"amplitude"`
	Period    float64 `yaml:"period"`
	Phase     float64 `yaml:"phase"`
	Start     float64 `yaml:"start"`
	Duration  float64 `yaml:"duration"`
}

// LoadPerturbation reads a YAML pH schedule and validates it.
func LoadPerturbation(path string) (*rbc.Perturbation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read perturbation file: %w", err)
	}
	var pf PerturbationFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&pf); err != nil {
		return nil, fmt.Errorf("parse perturbation file %s: %w", path, err)
	}
	sched := &rbc.Perturbation{
		Kind:      rbc.PerturbationKind(pf.Kind),
		Baseline:  pf.Baseline,
		Target:    pf.Target,
		Initial:   pf.Initial,
		Final:     pf.Final,
		Mean:      pf.Mean,
		Amplitude: pf.Amplitude,
		Period:    pf.Period,
		Phase:     pf.Phase,
		Start:     pf.Start,
		Duration:  pf.Duration,
	}
	if err := sched.Validate(); err != nil {
		return nil, fmt.Errorf("perturbation file %s: %w", path, err)
	}
	return sched, nil
}
