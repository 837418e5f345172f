package cmd

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	rbc "github.com/erythrosim/erythrosim/rbc"
)

var (
	// CLI flags for the simulation run
	horizonHours    float64 // Total simulated time (hours)
	logLevel        string  // Log verbosity level
	phDynamics      bool    // Carry pHi/pHe as state variables
	phModulation    bool    // pH-dependent enzyme activity (implies pH dynamics)
	trackFluxes     bool    // Record reaction rates at accepted steps
	trackBohr       bool    // Record oxygen-transport metrics at accepted steps
	blendStrength   float64 // Mechanistic/data-driven blending strength
	paramsFile      string  // YAML kinetic-constant overrides
	referenceFile   string  // Experimental reference CSV (also drives blending)
	perturbFile     string  // YAML extracellular pH schedule
	outDir          string  // Output directory for CSV artifacts
	hemoglobin      float64 // Hemoglobin concentration (g/dL)
	rebalanceAdenyl bool    // Rescale ATP/ADP/AMP to the initial pool total
	rtol            float64 // Relative tolerance of the first solver attempt
	atol            float64 // Absolute tolerance of the first solver attempt
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "erythrosim",
	Short: "Kinetic simulator for red blood cell metabolism",
}

// runCmd integrates the metabolic network using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the metabolism simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := rbc.Config{
			Layout:        rbc.LayoutCore,
			PHModulation:  phModulation,
			BlendStrength: blendStrength,
			Hemoglobin:    hemoglobin,
		}
		if phModulation || phDynamics || perturbFile != "" {
			cfg.Layout = rbc.LayoutCoreExtPH
		}

		if paramsFile != "" {
			params, err := LoadParamOverrides(paramsFile)
			if err != nil {
				logrus.Fatalf("Failed to load parameter overrides: %v", err)
			}
			cfg.Params = params
		}
		if perturbFile != "" {
			sched, err := LoadPerturbation(perturbFile)
			if err != nil {
				logrus.Fatalf("Failed to load perturbation schedule: %v", err)
			}
			cfg.Perturbation = sched
			logrus.Infof("Perturbation: %s", sched.Description())
		}

		x0 := rbc.DefaultInitialState(cfg.Layout)
		if referenceFile != "" {
			ref, err := loadReferenceFile(referenceFile)
			if err != nil {
				logrus.Fatalf("Failed to load reference data: %v", err)
			}
			x0 = ref.InitialState(cfg.Layout)
			if blendStrength > 0 {
				targets, err := ref.FitTargetsFor()
				if err != nil {
					logrus.Fatalf("Failed to build fit targets: %v", err)
				}
				cfg.FitTargets = targets
				logrus.Infof("Blending toward %d reference curves with strength %.2f",
					targets.Len(), blendStrength)
			}
		} else if blendStrength > 0 {
			logrus.Fatalf("--blend requires --reference")
		}

		if trackFluxes {
			cfg.FluxRecorder = rbc.NewFluxRecorder()
		}
		if trackBohr {
			cfg.BohrRecorder = rbc.NewBohrRecorder()
		}

		engine, err := rbc.NewEngine(cfg)
		if err != nil {
			logrus.Fatalf("Failed to build engine: %v", err)
		}

		ladder := rbc.DefaultSolverLadder()
		ladder[0].RTol = rtol
		ladder[0].ATol = atol

		logrus.Infof("Starting simulation: horizon=%.2fh, layout=%d slots, modulation=%v",
			horizonHours, cfg.Layout.Size(), phModulation)
		startTime := time.Now()

		sol, err := rbc.Solve(engine, x0, 0, horizonHours, ladder)
		if err != nil {
			logrus.Fatalf("Integration failed: %v", err)
		}

		if rebalanceAdenyl {
			pools, err := rbc.PoolsFromState(sol.States[0])
			if err != nil {
				logrus.Fatalf("Failed to compute pools: %v", err)
			}
			if err := sol.RebalanceAdenylate(pools.Adenylate); err != nil {
				logrus.Fatalf("Failed to rebalance adenylate pool: %v", err)
			}
		}

		if err := writeOutputs(sol, &cfg); err != nil {
			logrus.Fatalf("Failed to write outputs: %v", err)
		}

		metrics, err := rbc.CollectMetrics(sol)
		if err != nil {
			logrus.Fatalf("Failed to collect metrics: %v", err)
		}
		metrics.Print()

		logrus.Infof("Simulation complete in %v.", time.Since(startTime).Round(time.Millisecond))
	},
}

// writeOutputs emits the trajectory and any recorder contents to outDir.
func writeOutputs(sol *rbc.Solution, cfg *rbc.Config) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	if err := writeCSVFile(filepath.Join(outDir, "trajectory.csv"), func(w io.Writer) error {
		return sol.WriteCSV(w, cfg.Layout)
	}); err != nil {
		return err
	}
	if cfg.FluxRecorder != nil {
		if err := writeCSVFile(filepath.Join(outDir, "fluxes.csv"), cfg.FluxRecorder.WriteCSV); err != nil {
			return err
		}
		logrus.Infof("Recorded %d flux snapshots", cfg.FluxRecorder.Len())
	}
	if cfg.BohrRecorder != nil {
		if err := writeCSVFile(filepath.Join(outDir, "bohr.csv"), cfg.BohrRecorder.WriteCSV); err != nil {
			return err
		}
		logrus.Infof("Recorded %d oxygen-transport snapshots", cfg.BohrRecorder.Len())
	}
	return nil
}

func writeCSVFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func loadReferenceFile(path string) (*rbc.Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return rbc.LoadReference(f)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {

	runCmd.Flags().Float64Var(&horizonHours, "horizon", 24.0, "Total simulated time (hours)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Model configuration
	runCmd.Flags().BoolVar(&phDynamics, "ph-dynamics", false, "Carry intracellular and extracellular pH as state variables")
	runCmd.Flags().BoolVar(&phModulation, "ph-modulation", false, "Enable pH-dependent enzyme activity (implies --ph-dynamics)")
	runCmd.Flags().Float64Var(&blendStrength, "blend", 0.0, "Blend strength toward reference curves (0=mechanistic, 1=data-driven, max 2)")
	runCmd.Flags().StringVar(&paramsFile, "params", "", "YAML file of kinetic-constant overrides")
	runCmd.Flags().StringVar(&referenceFile, "reference", "", "Experimental reference CSV (seeds initial state, enables blending)")
	runCmd.Flags().StringVar(&perturbFile, "perturbation", "", "YAML extracellular pH schedule")
	runCmd.Flags().Float64Var(&hemoglobin, "hemoglobin", rbc.NormalHemoglobin, "Hemoglobin concentration (g/dL)")
	runCmd.Flags().BoolVar(&rebalanceAdenyl, "rebalance-adenylate", false, "Rescale ATP/ADP/AMP so the pool total matches the initial state")

	// Instrumentation
	runCmd.Flags().BoolVar(&trackFluxes, "track-fluxes", false, "Record every reaction rate at accepted steps")
	runCmd.Flags().BoolVar(&trackBohr, "track-bohr", false, "Record P50 and oxygen saturation at accepted steps")
	runCmd.Flags().StringVar(&outDir, "out-dir", "results", "Directory for CSV outputs")

	// Solver configuration (first ladder rung; fallbacks are fixed)
	runCmd.Flags().Float64Var(&rtol, "rtol", 1e-6, "Relative tolerance of the first solver attempt")
	runCmd.Flags().Float64Var(&atol, "atol", 1e-8, "Absolute tolerance of the first solver attempt")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
