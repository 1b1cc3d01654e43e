// Package core provides a generic, in-memory directed graph container
// with deterministic ordering over both nodes and edges.
//
// The Graph G = (V,E) is parameterised over two ordered types:
//
//   - N, the node value type — a node's identity IS its current value
//   - E, the edge weight type — each edge is either unweighted or
//     carries exactly one weight
//
// Behavioural contract:
//
//   - Nodes are unique under the total order of N; edges are unique
//     under the lexicographic order (source, destination, weight),
//     with unweighted records sorting before any weighted record.
//   - Every edge's endpoints exist as nodes at all times. Erasing a
//     node cascades to its incident edges (self-loops included);
//     renaming or merging a node rewrites incident endpoint values.
//   - Iteration order equals storage order equals rendered order.
//   - Returned snapshots (Nodes, Edges, EdgeIterator.Edge) are
//     independent copies and never change when the graph mutates.
//
// Why use core.Graph?
//
//   - Two failure channels, strictly separated: a missing *node* named
//     by an operation is ErrNodeNotFound; a missing *edge* between
//     existing nodes is a plain boolean false.
//   - Deterministic rendering — String()/WriteTo emit nodes in value
//     order, each followed by its outgoing edges in storage order.
//   - Cheap copies — Clone() is a lazy copy-on-write snapshot of both
//     stores; later mutation of either graph never affects the other.
//
// Core methods:
//
//	// Construction
//	New[N, E]()                          // empty graph
//	NewFrom[N, E](nodes ...N)            // from a node listing
//	NewFromSeq[N, E](seq iter.Seq[N])    // from a node sequence
//	(g) Clone() *Graph[N, E]             // independent deep copy
//
//	// Node lifecycle
//	InsertNode(v) bool                   // O(log V)
//	ReplaceNode(old, new) (bool, error)  // O(E + D·log E) rename + rewrite
//	MergeReplaceNode(old, new) error     // O(E + D·log E) redirect + absorb
//	EraseNode(v) bool                    // O(E + D·log E) cascade
//
//	// Edge lifecycle
//	InsertEdge(src, dst, opts...) (bool, error)  // O(log E)
//	EraseEdge(src, dst, opts...) (bool, error)   // O(log E)
//	EraseEdgeAt(it) EdgeIterator                 // O(log E), returns successor
//	EraseEdgeRange(first, last) EdgeIterator     // O(D·log E)
//	Clear()
//
//	// Queries
//	IsNode, Empty, NodeCount, EdgeCount
//	IsConnected(src, dst) (bool, error)
//	Nodes() []N                          // sorted snapshot
//	Edges(src, dst) ([]Edge, error)      // weight-ordered clones
//	Find(src, dst, opts...) EdgeIterator // never errors; end on miss
//	Connections(src) ([]N, error)        // sorted distinct destinations
//	Equal(other) bool                    // structural equality
//	Begin(), End(), All()                // edge enumeration
//	String(), WriteTo(w)                 // deterministic rendering
//
// The container is single-threaded by design: no operation blocks or
// suspends, and callers needing concurrent access must serialise
// externally around the whole graph.
//
// Weight ordering for floating-point E follows cmp.Compare semantics:
// NaN weights are mutually equal and sort before every ordered weight.
package core
