package rbc

import "math"

// infSentinel replaces infinite derivative entries before clipping.
const infSentinel = 1e6

// sanitizeDerivatives is the last pass over a derivative vector before it
// is handed back to the integrator. It never fails:
//
//  1. the AMP slot is pinned to exactly zero (its value is fixed by
//     adenylate-pool conservation, not by kinetics);
//  2. NaN entries become 0 and infinities become +/-1e6;
//  3. every entry is clipped to +/-MaxDerivative so one pathological
//     reaction cannot blow up the step controller.
func sanitizeDerivatives(dxdt []float64) {
	if len(dxdt) > AMP {
		dxdt[AMP] = 0
	}
	for i, v := range dxdt {
		switch {
		case math.IsNaN(v):
			dxdt[i] = 0
		case math.IsInf(v, 1):
			dxdt[i] = infSentinel
		case math.IsInf(v, -1):
			dxdt[i] = -infSentinel
		}
		if dxdt[i] > MaxDerivative {
			dxdt[i] = MaxDerivative
		} else if dxdt[i] < -MaxDerivative {
			dxdt[i] = -MaxDerivative
		}
	}
}
