package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lineagesim/sim"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one scenario and write counts.tsv and cells.tsv",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringP("scenario", "f", "", "YAML scenario file (required)")
	simulateCmd.Flags().StringP("out", "o", ".", "output directory")
	simulateCmd.Flags().Uint64("seed", 0, "override the scenario seed")
	simulateCmd.Flags().Int("cells", 0, "override the scenario cell count")
	_ = simulateCmd.MarkFlagRequired("scenario")

	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("scenario")
	outDir, _ := cmd.Flags().GetString("out")

	sc, err := loadScenario(path)
	if err != nil {
		return err
	}
	cfg, err := sc.toConfig()
	if err != nil {
		return err
	}
	applyOverrides(cmd, &cfg)

	res, err := sim.Run(cfg)
	if err != nil {
		return err
	}
	if err := writeResult(outDir, res); err != nil {
		return err
	}

	nc, ng := res.Counts.Dims()
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d cells × %d genes to %s\n", nc, ng, outDir)
	return nil
}

// applyOverrides applies CLI flag values on top of the scenario.
func applyOverrides(cmd *cobra.Command, cfg *sim.Config) {
	if v, _ := cmd.Flags().GetUint64("seed"); cmd.Flags().Changed("seed") {
		cfg.Seed = v
	}
	if v, _ := cmd.Flags().GetInt("cells"); v > 0 {
		cfg.Cells = v
	}
}
