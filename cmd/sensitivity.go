package cmd

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	rbc "github.com/erythrosim/erythrosim/rbc"
)

var (
	sensHorizon    float64 // Simulated time per run (hours)
	sensScale      float64 // Multiplicative parameter bump
	sensObservable string  // Metabolite whose final value is compared
	sensPrefix     string  // Only sweep parameters with this prefix
	sensSample     int     // Randomly sample this many parameters (0 = all)
	sensSeed       int64   // Seed for parameter sampling
	sensTop        int     // Rows to print
)

type sensResult struct {
	name        string
	baseline    float64
	perturbed   float64
	sensitivity float64 // relative observable change per relative parameter change
}

// sensitivityCmd runs a one-at-a-time parameter sweep: each selected kinetic
// constant is scaled in turn, the model re-integrated, and the relative
// change of the observable's final value reported.
var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "One-at-a-time parameter sensitivity sweep",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		obsIdx, ok := rbc.MetaboliteIndex(sensObservable)
		if !ok {
			logrus.Fatalf("Unknown metabolite %q", sensObservable)
		}
		if sensScale <= 0 || sensScale == 1 {
			logrus.Fatalf("--scale must be positive and different from 1, got %g", sensScale)
		}

		names := rbc.DefaultParams().Names()
		sort.Strings(names)
		if sensPrefix != "" {
			kept := names[:0]
			for _, n := range names {
				if strings.HasPrefix(n, sensPrefix) {
					kept = append(kept, n)
				}
			}
			names = kept
		}
		if sensSample > 0 && sensSample < len(names) {
			rng := rand.New(rand.NewSource(sensSeed))
			rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
			names = names[:sensSample]
			sort.Strings(names)
		}
		if len(names) == 0 {
			logrus.Fatalf("No parameters selected")
		}

		baseline, err := finalObservable(nil, obsIdx)
		if err != nil {
			logrus.Fatalf("Baseline run failed: %v", err)
		}
		logrus.Infof("Baseline %s after %.1fh: %g", sensObservable, sensHorizon, baseline)

		results := make([]sensResult, 0, len(names))
		for _, name := range names {
			defaults := rbc.DefaultParams()
			params, err := rbc.NewParams(map[string]float64{name: defaults.Get(name) * sensScale})
			if err != nil {
				logrus.Fatalf("Override %s: %v", name, err)
			}
			perturbed, err := finalObservable(params, obsIdx)
			if err != nil {
				logrus.Warnf("Run with %s scaled failed, skipping: %v", name, err)
				continue
			}
			sensitivity := 0.0
			if baseline != 0 {
				sensitivity = ((perturbed - baseline) / baseline) / (sensScale - 1)
			}
			results = append(results, sensResult{name: name, baseline: baseline, perturbed: perturbed, sensitivity: sensitivity})
		}

		sort.Slice(results, func(i, j int) bool {
			return abs(results[i].sensitivity) > abs(results[j].sensitivity)
		})

		sens := make([]float64, len(results))
		for i, r := range results {
			sens[i] = r.sensitivity
		}
		mean, std := stat.MeanStdDev(sens, nil)

		fmt.Printf("=== Sensitivity of final %s (x%.2f bump, %d parameters) ===\n",
			sensObservable, sensScale, len(results))
		fmt.Printf("Mean |sensitivity| population: mean=%.4g stdev=%.4g\n\n", mean, std)
		fmt.Printf("%-24s %14s %14s %12s\n", "parameter", "baseline", "perturbed", "sensitivity")
		top := sensTop
		if top <= 0 || top > len(results) {
			top = len(results)
		}
		for _, r := range results[:top] {
			fmt.Printf("%-24s %14.6g %14.6g %+12.4g\n", r.name, r.baseline, r.perturbed, r.sensitivity)
		}
	},
}

// finalObservable integrates from the default initial state and returns the
// observable's final concentration.
func finalObservable(params *rbc.Params, obsIdx int) (float64, error) {
	engine, err := rbc.NewEngine(rbc.Config{Layout: rbc.LayoutCore, Params: params})
	if err != nil {
		return 0, err
	}
	sol, err := rbc.Solve(engine, engine.InitialState(), 0, sensHorizon, nil)
	if err != nil {
		return 0, err
	}
	return sol.Final()[obsIdx], nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func init() {
	sensitivityCmd.Flags().Float64Var(&sensHorizon, "horizon", 4.0, "Simulated time per run (hours)")
	sensitivityCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	sensitivityCmd.Flags().Float64Var(&sensScale, "scale", 1.1, "Multiplicative bump applied to each parameter")
	sensitivityCmd.Flags().StringVar(&sensObservable, "observable", "ATP", "Metabolite whose final concentration is compared")
	sensitivityCmd.Flags().StringVar(&sensPrefix, "prefix", "vmax_", "Only sweep parameters with this prefix")
	sensitivityCmd.Flags().IntVar(&sensSample, "sample", 0, "Randomly sample this many parameters (0 = all)")
	sensitivityCmd.Flags().Int64Var(&sensSeed, "seed", 42, "Seed for parameter sampling")
	sensitivityCmd.Flags().IntVar(&sensTop, "top", 20, "Rows to print")
	rootCmd.AddCommand(sensitivityCmd)
}
