// File: types.go
// Role: Graph type, sentinel errors, and constructors.
//
// Determinism:
//   - Node storage order equals the value order of N.
//   - Edge storage order equals (source, destination, weight) with
//     unweighted records first per (source, destination) pair.
package core

import (
	"cmp"
	"errors"
	"iter"
)

// ErrNodeNotFound indicates an operation referenced a node value that
// is not present in the graph where its contract requires presence.
// It is the only precondition failure the container signals; "edge not
// found between existing nodes" is a boolean outcome, not an error.
var ErrNodeNotFound = errors.New("core: node not found")

// Graph is a directed graph over node values of type N and optional
// edge weights of type E. The zero value is not usable; construct
// with New, NewFrom, NewFromSeq, or Clone.
//
// Node identity is the node's current value: replacing a node mutates
// the stored value and rewrites incident edge endpoints in place.
// Multiple edges may connect the same ordered (src, dst) pair as long
// as their weights differ; one unweighted record may coexist with any
// number of weighted ones.
type Graph[N, E cmp.Ordered] struct {
	nodes nodeStore[N]
	edges edgeStore[N, E]
}

// New returns an empty graph.
func New[N, E cmp.Ordered]() *Graph[N, E] {
	return &Graph[N, E]{
		nodes: newNodeStore[N](),
		edges: newEdgeStore[N, E](),
	}
}

// NewFrom returns a graph containing the given node values and no
// edges. Duplicate values collapse silently (InsertNode semantics).
func NewFrom[N, E cmp.Ordered](nodes ...N) *Graph[N, E] {
	g := New[N, E]()
	for _, v := range nodes {
		g.InsertNode(v)
	}

	return g
}

// NewFromSeq returns a graph containing every node value produced by
// seq and no edges. Duplicate values collapse silently.
func NewFromSeq[N, E cmp.Ordered](seq iter.Seq[N]) *Graph[N, E] {
	g := New[N, E]()
	for v := range seq {
		g.InsertNode(v)
	}

	return g
}
