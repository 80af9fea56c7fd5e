// Package htdecomp computes tree and hypertree decompositions of
// (multi-)hypergraphs.
//
// A MultiHypergraph (package core) is fed to an OrderingStrategy
// (package ordering — MinFill, MinDegree, or an externally supplied
// permutation), whose output drives BucketEliminationAlgorithm (package
// elimination) to produce a TreeDecomposition (package tree). A
// sequence of ManipulationOperations (package manip), optionally
// parameterised with LabelingFunctions, rewrites the decomposition —
// most commonly into a nice decomposition via
// manip.NormalizationOperation. Verify (package verify) checks the
// result against the decomposition invariants.
//
// Everything is organized under subpackages:
//
//	core/       — MultiHypergraph: vertices, hyperedges, neighbourhoods
//	builder/    — canonical hypergraph constructors (Path, Cycle, Star, Complete, random)
//	ordering/   — elimination-order strategies (MinFill, MinDegree, External)
//	elimination/— bucket elimination: order + graph -> TreeDecomposition
//	tree/       — LabeledTree and TreeDecomposition, with bags, covers, labels
//	manip/      — manipulation operations and labelling functions
//	verify/     — decomposition-invariant checking
//	format/     — HyperBench-manual text parsing and printing
//	metrics/    — optional Prometheus instrumentation
//	cmd/htdecomp— a CLI front end tying the above together
//
//	go get github.com/katalvlaran/htdecomp
package htdecomp
