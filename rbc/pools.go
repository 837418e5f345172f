package rbc

import "fmt"

// PoolTotals holds the conserved-moiety sums of a state. NAD and NADP are
// exact invariants of the reaction network; the adenylate and glutathione
// totals drift slowly through the salvage and gamma-glutamyl reactions and
// are tracked as diagnostics.
type PoolTotals struct {
	Adenylate   float64 // ATP + ADP + AMP
	NAD         float64 // NAD+ + NADH
	NADP        float64 // NADP+ + NADPH
	Glutathione float64 // GSH + 2*GSSG
}

// PoolsFromState computes the pool totals from a state vector.
func PoolsFromState(x []float64) (PoolTotals, error) {
	if len(x) < NumBaseMetabolites {
		return PoolTotals{}, fmt.Errorf("state has %d slots, need at least %d", len(x), NumBaseMetabolites)
	}
	return PoolTotals{
		Adenylate:   x[ATP] + x[ADP] + x[AMP],
		NAD:         x[NAD] + x[NADH],
		NADP:        x[NADP] + x[NADPH],
		Glutathione: x[GSH] + 2*x[GSSG],
	}, nil
}

// Drift returns the pool-by-pool change from an earlier snapshot.
func (p PoolTotals) Drift(from PoolTotals) PoolTotals {
	return PoolTotals{
		Adenylate:   p.Adenylate - from.Adenylate,
		NAD:         p.NAD - from.NAD,
		NADP:        p.NADP - from.NADP,
		Glutathione: p.Glutathione - from.Glutathione,
	}
}
