package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	rbc "github.com/erythrosim/erythrosim/rbc"
)

var (
	bohrPH   float64 // Blood pH for the dissociation table
	bohrBPG  float64 // 2,3-BPG concentration (mM)
	bohrTemp float64 // Temperature (C)
	bohrStep float64 // pO2 increment (mmHg)
	bohrMax  float64 // pO2 upper bound (mmHg)
	bohrHgb  float64 // Hemoglobin (g/dL)
)

// bohrCmd prints an oxygen dissociation curve for a given pH and 2,3-BPG
// level, without running a simulation.
var bohrCmd = &cobra.Command{
	Use:   "bohr",
	Short: "Print an oxygen dissociation table",
	Run: func(cmd *cobra.Command, args []string) {
		model := rbc.NewBohrModel()
		p50 := model.P50(bohrPH, bohrBPG, bohrTemp)
		fmt.Printf("pH=%.2f  2,3-BPG=%.2f mM  T=%.1fC  P50=%.2f mmHg\n\n", bohrPH, bohrBPG, bohrTemp, p50)
		fmt.Printf("%8s %12s %16s\n", "pO2", "saturation", "O2 content")
		fmt.Printf("%8s %12s %16s\n", "(mmHg)", "(fraction)", "(mL/dL)")
		for pO2 := 0.0; pO2 <= bohrMax; pO2 += bohrStep {
			sat := model.Saturation(pO2, bohrPH, bohrBPG)
			content := model.OxygenContent(pO2, bohrPH, bohrBPG, bohrHgb)
			fmt.Printf("%8.1f %12.4f %16.2f\n", pO2, sat, content)
		}
		delivery := model.Delivery(rbc.ArterialPO2, rbc.VenousPO2, bohrPH, bohrPH-0.05, bohrBPG, bohrHgb)
		fmt.Printf("\nArterial->venous extraction: %.1f%% (%.2f mL/dL)\n",
			100*delivery.ExtractionFraction, delivery.Extracted)
	},
}

func init() {
	bohrCmd.Flags().Float64Var(&bohrPH, "ph", rbc.NormalBloodPH, "Blood pH")
	bohrCmd.Flags().Float64Var(&bohrBPG, "bpg", rbc.NormalBPG, "2,3-BPG concentration (mM)")
	bohrCmd.Flags().Float64Var(&bohrTemp, "temp", rbc.NormalTempC, "Temperature (C)")
	bohrCmd.Flags().Float64Var(&bohrStep, "step", 10.0, "pO2 increment (mmHg)")
	bohrCmd.Flags().Float64Var(&bohrMax, "max-po2", 100.0, "pO2 upper bound (mmHg)")
	bohrCmd.Flags().Float64Var(&bohrHgb, "hemoglobin", rbc.NormalHemoglobin, "Hemoglobin (g/dL)")
	rootCmd.AddCommand(bohrCmd)
}
