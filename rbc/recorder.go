package rbc

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// FluxSample is one accepted-step snapshot of every reaction rate.
type FluxSample struct {
	Time  float64
	Rates Fluxes
}

// FluxRecorder accumulates flux snapshots at accepted integration steps.
// Recording happens outside the derivative callback, so rejected trial
// steps never leave a trace.
type FluxRecorder struct {
	samples []FluxSample
}

// NewFluxRecorder returns an empty recorder.
func NewFluxRecorder() *FluxRecorder {
	return &FluxRecorder{}
}

// Record appends one snapshot.
func (r *FluxRecorder) Record(t float64, f Fluxes) {
	r.samples = append(r.samples, FluxSample{Time: t, Rates: f})
}

// Samples returns the recorded snapshots in time order.
func (r *FluxRecorder) Samples() []FluxSample {
	return r.samples
}

// Len reports the number of recorded snapshots.
func (r *FluxRecorder) Len() int {
	return len(r.samples)
}

// Reset drops all recorded samples.
func (r *FluxRecorder) Reset() {
	r.samples = r.samples[:0]
}

// Series extracts the time course of one reaction by name.
func (r *FluxRecorder) Series(name string) (times, rates []float64, err error) {
	times = make([]float64, 0, len(r.samples))
	rates = make([]float64, 0, len(r.samples))
	for i := range r.samples {
		v, ok := r.samples[i].Rates.Value(name)
		if !ok {
			return nil, nil, fmt.Errorf("unknown reaction %q", name)
		}
		times = append(times, r.samples[i].Time)
		rates = append(rates, v)
	}
	return times, rates, nil
}

// PathwayFlux sums the rates of every reaction in a pathway group at each
// recorded time point.
func (r *FluxRecorder) PathwayFlux(pathway string) (times, totals []float64, err error) {
	members, ok := PathwayGroups[pathway]
	if !ok {
		return nil, nil, fmt.Errorf("unknown pathway %q", pathway)
	}
	times = make([]float64, 0, len(r.samples))
	totals = make([]float64, 0, len(r.samples))
	for i := range r.samples {
		m := r.samples[i].Rates.Map()
		sum := 0.0
		for _, name := range members {
			sum += m[name]
		}
		times = append(times, r.samples[i].Time)
		totals = append(totals, sum)
	}
	return times, totals, nil
}

// WriteCSV emits the recorded fluxes, one row per accepted step, columns in
// FluxNames order.
func (r *FluxRecorder) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := append([]string{"time_h"}, FluxNames...)
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, len(header))
	for i := range r.samples {
		row[0] = formatFloat(r.samples[i].Time)
		for j, v := range r.samples[i].Rates.Values() {
			row[j+1] = formatFloat(v)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// BohrSample is one accepted-step snapshot of the oxygen-transport state.
// P50CellmmHg is computed from intracellular pH, P50PlasmammHg from
// extracellular pH; saturations use plasma pH, with venous blood offset
// slightly acid.
type BohrSample struct {
	Time               float64
	PHi                float64
	PHe                float64
	BPGmM              float64
	P50CellmmHg        float64
	P50PlasmammHg      float64
	SatArterial        float64
	SatVenous          float64
	ExtractionFraction float64
	O2ArterialmLPerDL  float64
	O2VenousmLPerDL    float64
}

// BohrRecorder accumulates oxygen-transport snapshots at accepted steps.
type BohrRecorder struct {
	samples []BohrSample
}

// NewBohrRecorder returns an empty recorder.
func NewBohrRecorder() *BohrRecorder {
	return &BohrRecorder{}
}

// Record appends one snapshot.
func (r *BohrRecorder) Record(s BohrSample) {
	r.samples = append(r.samples, s)
}

// Samples returns the recorded snapshots in time order.
func (r *BohrRecorder) Samples() []BohrSample {
	return r.samples
}

// Len reports the number of recorded snapshots.
func (r *BohrRecorder) Len() int {
	return len(r.samples)
}

// Reset drops all recorded samples.
func (r *BohrRecorder) Reset() {
	r.samples = r.samples[:0]
}

var bohrCSVHeader = []string{
	"time_h", "pHi", "pHe", "bpg_mM", "p50_cell_mmHg", "p50_plasma_mmHg",
	"sat_arterial", "sat_venous", "extraction_fraction",
	"o2_arterial_ml_dl", "o2_venous_ml_dl",
}

// WriteCSV emits the recorded oxygen-transport samples.
func (r *BohrRecorder) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(bohrCSVHeader); err != nil {
		return err
	}
	for i := range r.samples {
		s := &r.samples[i]
		row := []string{
			formatFloat(s.Time), formatFloat(s.PHi), formatFloat(s.PHe),
			formatFloat(s.BPGmM), formatFloat(s.P50CellmmHg), formatFloat(s.P50PlasmammHg),
			formatFloat(s.SatArterial), formatFloat(s.SatVenous), formatFloat(s.ExtractionFraction),
			formatFloat(s.O2ArterialmLPerDL), formatFloat(s.O2VenousmLPerDL),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
