package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/htdecomp/core"
	"github.com/katalvlaran/htdecomp/elimination"
	"github.com/katalvlaran/htdecomp/format"
	"github.com/katalvlaran/htdecomp/manip"
	"github.com/katalvlaran/htdecomp/ordering"
	"github.com/katalvlaran/htdecomp/tree"
)

var (
	decomposeFile      string
	decomposeOrdering  string
	decomposeNormalize bool
	decomposeHypertree bool
	decomposeJSON      bool
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose",
	Short: "Compute a tree decomposition of a hypergraph",
	RunE:  runDecompose,
}

func init() {
	decomposeCmd.Flags().StringVar(&decomposeFile, "file", "", "path to a hypergraph file (required)")
	decomposeCmd.Flags().StringVar(&decomposeOrdering, "ordering", "minfill", "ordering strategy: minfill or mindegree")
	decomposeCmd.Flags().BoolVar(&decomposeNormalize, "normalize", false, "apply NormalizationOperation, producing a nice decomposition")
	decomposeCmd.Flags().BoolVar(&decomposeHypertree, "hypertree", false, "compute hypertree covering-edge sets per node")
	decomposeCmd.Flags().BoolVar(&decomposeJSON, "json", false, "print the decomposition as the CLI's debug JSON format instead of as a tree")
	_ = decomposeCmd.MarkFlagRequired("file")
}

func runDecompose(cmd *cobra.Command, args []string) error {
	f, err := os.Open(decomposeFile)
	if err != nil {
		return fmt.Errorf("opening %s: %w", decomposeFile, err)
	}
	defer f.Close()

	g, names, err := format.ParseHypergraph(f)
	if err != nil {
		return err
	}
	logf("parsed %d vertices, %d edges", g.VertexCount(), g.EdgeCount())

	strategy, err := resolveOrdering(decomposeOrdering)
	if err != nil {
		return err
	}

	d, err := elimination.BucketEliminationAlgorithm{}.Compute(g, elimination.Config{
		Ordering:                 strategy,
		ComputeHypertreeCoverage: decomposeHypertree,
		Labeling:                 []manip.LabelingFunction{manip.Treewidth{}},
	})
	if err != nil {
		return err
	}
	logf("built %d tree nodes", len(d.Nodes()))

	if decomposeNormalize {
		if err := manip.NormalizationOperation().Apply(d, nil, manip.Treewidth{}); err != nil {
			return err
		}
		logf("normalized into a nice decomposition")
	}

	if decomposeJSON {
		data, err := marshalDecomposition(d)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printTree(cmd, d, names)
	return nil
}

func resolveOrdering(name string) (ordering.Strategy, error) {
	switch strings.ToLower(name) {
	case "minfill":
		return ordering.MinFill(), nil
	case "mindegree":
		return ordering.MinDegree(), nil
	default:
		return nil, fmt.Errorf("unknown ordering strategy %q (want minfill or mindegree)", name)
	}
}

func printTree(cmd *cobra.Command, d *tree.Decomposition, names map[core.VertexID]string) {
	root, ok := d.Root()
	if !ok {
		return
	}
	var walk func(id tree.NodeID, depth int)
	walk = func(id tree.NodeID, depth int) {
		bag := d.Bag(id)
		tokens := make([]string, len(bag))
		for i, v := range bag {
			tokens[i] = vertexLabel(v, names)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s#%d {%s}\n", strings.Repeat("  ", depth), id, strings.Join(tokens, ","))
		for _, c := range d.Children(id) {
			walk(c, depth+1)
		}
	}
	walk(root, 0)
}

func vertexLabel(v core.VertexID, names map[core.VertexID]string) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("%d", v)
}
