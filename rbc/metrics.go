// Aggregates run-wide statistics for final reporting.

package rbc

import "fmt"

// RunMetrics summarizes one completed simulation for end-of-run reporting
// and for comparing solver ladder rungs.
type RunMetrics struct {
	Attempt       string  // solver configuration that completed
	HorizonHours  float64 // integrated time span
	AcceptedSteps int
	RejectedSteps int
	RHSEvals      int
	LastStep      float64

	InitialPools PoolTotals
	FinalPools   PoolTotals
}

// CollectMetrics derives the run summary from a finished solution.
func CollectMetrics(sol *Solution) (RunMetrics, error) {
	m := RunMetrics{
		Attempt:       sol.Stats.Attempt,
		AcceptedSteps: sol.Stats.Accepted,
		RejectedSteps: sol.Stats.Rejected,
		RHSEvals:      sol.Stats.RHSEvals,
		LastStep:      sol.Stats.LastStep,
	}
	if len(sol.Times) == 0 {
		return m, fmt.Errorf("empty solution")
	}
	m.HorizonHours = sol.Times[len(sol.Times)-1] - sol.Times[0]
	var err error
	if m.InitialPools, err = PoolsFromState(sol.States[0]); err != nil {
		return m, err
	}
	if m.FinalPools, err = PoolsFromState(sol.Final()); err != nil {
		return m, err
	}
	return m, nil
}

// Print displays the run summary.
func (m *RunMetrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Solver Attempt       : %s\n", m.Attempt)
	fmt.Printf("Horizon              : %.3f h\n", m.HorizonHours)
	fmt.Printf("Accepted Steps       : %d\n", m.AcceptedSteps)
	fmt.Printf("Rejected Steps       : %d\n", m.RejectedSteps)
	fmt.Printf("RHS Evaluations      : %d\n", m.RHSEvals)
	fmt.Printf("Final Step Size      : %.3g h\n", m.LastStep)
	drift := m.FinalPools.Drift(m.InitialPools)
	fmt.Printf("Adenylate Drift      : %+.4g mM\n", drift.Adenylate)
	fmt.Printf("NAD Pool Drift       : %+.4g mM\n", drift.NAD)
	fmt.Printf("NADP Pool Drift      : %+.4g mM\n", drift.NADP)
	fmt.Printf("Glutathione Drift    : %+.4g mM\n", drift.Glutathione)
}
