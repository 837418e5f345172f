package rbc

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Reference holds an experimental metabolite time course: a shared time
// grid and one concentration series per metabolite. The expected CSV shape
// is a header row of sample times (hours) after a leading name column, then
// one row per metabolite.
type Reference struct {
	Times  []float64
	Series map[string][]float64
}

// normalizeMetaboliteName maps assay labels onto the model's metabolite
// vocabulary: charge suffixes are dropped and common aliases folded in.
func normalizeMetaboliteName(name string) string {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.TrimSuffix(n, "+")
	n = strings.TrimSuffix(n, "-")
	switch n {
	case "2,3-BPG", "2,3-DPG", "23BPG":
		return "B23PG"
	case "1,3-BPG", "13BPG":
		return "B13PG"
	case "GLUCOSE":
		return "GLC"
	case "LACTATE":
		return "LAC"
	case "PYRUVATE":
		return "PYR"
	}
	return n
}

// LoadReference parses an experimental reference CSV. Rows whose name does
// not map onto a model metabolite are kept under the normalized name so
// callers can still inspect them; FitTargetsFor skips them.
func LoadReference(r io.Reader) (*Reference, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read reference csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("reference csv needs a header row and at least one metabolite row")
	}
	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("reference csv needs at least one time column")
	}
	times := make([]float64, len(header)-1)
	for i, cell := range header[1:] {
		t, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, fmt.Errorf("header column %d: bad time %q: %w", i+1, cell, err)
		}
		times[i] = t
	}
	if !sort.Float64sAreSorted(times) {
		return nil, fmt.Errorf("reference times must be increasing")
	}

	ref := &Reference{Times: times, Series: make(map[string][]float64, len(records)-1)}
	for rowIdx, row := range records[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d: %d cells, want %d", rowIdx+2, len(row), len(header))
		}
		name := normalizeMetaboliteName(row[0])
		if name == "" {
			continue
		}
		values := make([]float64, len(times))
		for i, cell := range row[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d (%s): bad value %q: %w", rowIdx+2, name, cell, err)
			}
			values[i] = v
		}
		ref.Series[name] = values
	}
	return ref, nil
}

// FirstValue returns the earliest measured concentration for a metabolite.
func (r *Reference) FirstValue(name string) (float64, bool) {
	series, ok := r.Series[normalizeMetaboliteName(name)]
	if !ok || len(series) == 0 {
		return 0, false
	}
	return series[0], true
}

// Metabolites returns the sorted series names.
func (r *Reference) Metabolites() []string {
	names := make([]string, 0, len(r.Series))
	for name := range r.Series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InitialState builds an initial condition in the given layout, seeding
// measured metabolites from their first sample and leaving the rest at the
// defaults.
func (r *Reference) InitialState(layout Layout) []float64 {
	x0 := DefaultInitialState(layout)
	for name, series := range r.Series {
		if len(series) == 0 {
			continue
		}
		if idx, ok := MetaboliteIndex(name); ok && idx < NumBaseMetabolites {
			x0[idx] = series[0]
		}
	}
	return x0
}

// InitialPools computes the conserved-pool totals implied by the first
// sample of each measured metabolite, with unmeasured members taken from
// the default initial state.
func (r *Reference) InitialPools(layout Layout) (PoolTotals, error) {
	return PoolsFromState(r.InitialState(layout))
}

// FitTargetsFor builds target curves for every reference series that maps
// onto a model metabolite. Unknown names are skipped.
func (r *Reference) FitTargetsFor() (*FitTargets, error) {
	ft := NewFitTargets()
	for name, series := range r.Series {
		idx, ok := MetaboliteIndex(name)
		if !ok || idx >= NumBaseMetabolites {
			continue
		}
		if err := ft.AddSeries(idx, r.Times, series); err != nil {
			return nil, err
		}
	}
	return ft, nil
}
