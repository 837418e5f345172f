package rbc

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV emits the trajectory, one row per accepted step, with metabolite
// (and, in the extended layout, pH) columns named after the state slots.
func (s *Solution) WriteCSV(w io.Writer, layout Layout) error {
	cw := csv.NewWriter(w)
	header := append([]string{"time_h"}, StateNames(layout)...)
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, len(header))
	for i, t := range s.Times {
		if len(s.States[i]) != layout.Size() {
			return fmt.Errorf("row %d has %d slots, layout wants %d", i, len(s.States[i]), layout.Size())
		}
		row[0] = formatFloat(t)
		for j, v := range s.States[i] {
			row[j+1] = formatFloat(v)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// RebalanceAdenylate rescales ATP, ADP and AMP in every stored state so
// their sum equals total, preserving the ratios the kinetics produced. The
// AMP slot is algebraic during integration, so drift accumulated in the sum
// is a bookkeeping artifact; this pass removes it after the fact. States
// whose adenylate sum is zero are left alone.
func (s *Solution) RebalanceAdenylate(total float64) error {
	if total <= 0 {
		return fmt.Errorf("adenylate total must be positive, got %g", total)
	}
	for _, state := range s.States {
		sum := state[ATP] + state[ADP] + state[AMP]
		if sum <= 0 {
			continue
		}
		scale := total / sum
		state[ATP] *= scale
		state[ADP] *= scale
		state[AMP] *= scale
	}
	return nil
}

// Series extracts the time course of one state slot.
func (s *Solution) Series(slot int) (times, values []float64, err error) {
	if len(s.States) > 0 && (slot < 0 || slot >= len(s.States[0])) {
		return nil, nil, fmt.Errorf("slot %d out of range", slot)
	}
	times = make([]float64, len(s.Times))
	values = make([]float64, len(s.Times))
	copy(times, s.Times)
	for i := range s.States {
		values[i] = s.States[i][slot]
	}
	return times, values, nil
}
