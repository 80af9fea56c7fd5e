// Package builder assembles deterministic hypergraph fixtures for tests:
// Path, Cycle, Star, Complete, and RandomHyperedges,
// composed through BuildGraph and the Constructor closure type.
package builder
