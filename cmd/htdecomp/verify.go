package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/htdecomp/format"
	"github.com/katalvlaran/htdecomp/verify"
)

var (
	verifyFile       string
	verifyDecompFile string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check a previously computed decomposition against a hypergraph",
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyFile, "file", "", "path to the hypergraph file the decomposition was built from (required)")
	verifyCmd.Flags().StringVar(&verifyDecompFile, "decomp-file", "", "path to a decomposition dumped with 'htdecomp decompose --json' (required)")
	_ = verifyCmd.MarkFlagRequired("file")
	_ = verifyCmd.MarkFlagRequired("decomp-file")
}

func runVerify(cmd *cobra.Command, args []string) error {
	gf, err := os.Open(verifyFile)
	if err != nil {
		return fmt.Errorf("opening %s: %w", verifyFile, err)
	}
	defer gf.Close()

	g, _, err := format.ParseHypergraph(gf)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(verifyDecompFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", verifyDecompFile, err)
	}

	d, err := unmarshalDecomposition(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", verifyDecompFile, err)
	}

	ok, violations := verify.Verify(g, d)
	if ok {
		fmt.Fprintln(cmd.OutOrStdout(), "OK: decomposition satisfies all invariants")
		return nil
	}

	for _, v := range violations {
		fmt.Fprintln(cmd.OutOrStdout(), v.String())
	}
	return fmt.Errorf("decomposition violates %d invariant(s)", len(violations))
}
