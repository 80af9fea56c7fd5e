package main

import "github.com/spf13/cobra"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "htdecomp",
	Short: "Compute and inspect tree decompositions of hypergraphs",
	Long: `htdecomp reads a hypergraph in HyperBench-manual text form and
computes a tree decomposition of it via bucket elimination, with
optional nice-decomposition normalization and hypertree coverage.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.AddCommand(decomposeCmd)
	rootCmd.AddCommand(verifyCmd)
}
