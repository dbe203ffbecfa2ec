package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lineagesim",
	Short: "Synthetic single-cell expression data along a branching lineage",
	Long: "lineagesim samples cells along a lineage tree, generates per-gene\n" +
		"mean and dispersion curves, and draws negative-binomial counts.\n" +
		"Scenarios are described in YAML; results are written as TSV tables.",
	SilenceUsage: true,
}
