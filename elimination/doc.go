// Package elimination builds tree decompositions from a hypergraph via
// bucket elimination: an elimination ordering (see package ordering)
// drives a single forward pass that folds per-vertex buckets into a
// tree, optionally annotated with a hypertree covering-edge set per
// node and with caller-supplied labels.
package elimination
