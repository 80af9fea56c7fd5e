// Package core defines the fundamental (multi-)hypergraph data model:
// monotone vertex/edge identifiers, immutable hyperedges, and the mutable
// MultiHypergraph that indexes them.
//
// A MultiHypergraph G = (V,E) supports:
//
//   - Monotone vertex/edge id allocation (ids are never reused after deletion)
//   - Ordered, possibly-repeating hyperedge element sequences
//   - A maintained neighbourhood index for O(log n) adjacency queries
//   - Connectivity queries (IsConnected, Components) built on a union-find
//     over live edges
//   - A simple-hypergraph mode (WithSimple) that rejects a second edge whose
//     de-duplicated element set already exists
//
// Concurrency: muVert guards vertex/id-allocator state; muEdge guards edges
// and the neighbourhood index. The two locks are never held together; every
// exported method documents which one(s) it takes. Concurrent readers are
// safe provided no goroutine holds a mutating handle.
package core
