package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	rbc "github.com/erythrosim/erythrosim/rbc"
)

// ParamsFile is the on-disk shape of a kinetic-constant override file.
// All sections must be listed to satisfy KnownFields(true) strict parsing.
type ParamsFile struct {
	Description string             `yaml:"description"`
	Overrides   map[string]float64 `yaml:"overrides"`
}

// LoadParamOverrides reads a YAML override file and builds a validated
// parameter table. Typos in parameter names cause errors instead of
// silently running with defaults.
func LoadParamOverrides(path string) (*rbc.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read params file: %w", err)
	}
	var pf ParamsFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&pf); err != nil {
		return nil, fmt.Errorf("parse params file %s: %w", path, err)
	}
	params, err := rbc.NewParams(pf.Overrides)
	if err != nil {
		return nil, fmt.Errorf("params file %s: %w", path, err)
	}
	return params, nil
}

var (
	paramsPrefix string // Filter listed parameters by prefix
)

// paramsCmd lists and validates kinetic constants
var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Inspect kinetic constants",
}

var paramsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List parameter names and default values",
	Run: func(cmd *cobra.Command, args []string) {
		defaults := rbc.DefaultParams()
		names := defaults.Names()
		sort.Strings(names)
		for _, name := range names {
			if paramsPrefix != "" && len(name) >= len(paramsPrefix) && name[:len(paramsPrefix)] != paramsPrefix {
				continue
			}
			fmt.Printf("%-24s %g\n", name, defaults.Get(name))
		}
	},
}

var paramsCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a YAML override file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		params, err := LoadParamOverrides(args[0])
		if err != nil {
			logrus.Fatalf("Invalid override file: %v", err)
		}
		overridden := params.Overrides()
		fmt.Printf("%s: %d overrides OK\n", args[0], len(overridden))
		for _, name := range overridden {
			fmt.Printf("  %-24s %g\n", name, params.Get(name))
		}
	},
}

func init() {
	paramsListCmd.Flags().StringVar(&paramsPrefix, "prefix", "", "Only list parameters with this prefix (e.g. vmax_, km_)")
	paramsCmd.AddCommand(paramsListCmd)
	paramsCmd.AddCommand(paramsCheckCmd)
	rootCmd.AddCommand(paramsCmd)
}
