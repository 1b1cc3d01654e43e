// File: methods_nodes.go
// Role: Node lifecycle & queries: InsertNode / ReplaceNode /
//       MergeReplaceNode / EraseNode, plus IsNode, Empty, Nodes,
//       NodeCount. Node mutation cascades into the edge store here.
//
// Determinism:
//   - Nodes() returns values sorted ascending.
//   - Cascade and rewrite passes touch edges in key order.
package core

import "cmp"

// InsertNode adds a node with the given value and reports true, or
// reports false if an equal value is already a node. Never fails.
// Complexity: O(log V).
func (g *Graph[N, E]) InsertNode(v N) bool {
	return g.nodes.insert(v)
}

// IsNode reports whether value is currently a node.
// Complexity: O(log V).
func (g *Graph[N, E]) IsNode(v N) bool {
	return g.nodes.contains(v)
}

// Empty reports whether the graph has no nodes (and therefore no
// edges, since every edge requires both endpoints).
func (g *Graph[N, E]) Empty() bool {
	return g.nodes.len() == 0
}

// NodeCount returns the current number of nodes.
func (g *Graph[N, E]) NodeCount() int {
	return g.nodes.len()
}

// Nodes returns an independent, ascending snapshot of all node
// values. Later graph mutation never changes the returned slice.
// Complexity: O(V).
func (g *Graph[N, E]) Nodes() []N {
	return g.nodes.values()
}

// ReplaceNode renames the node oldVal to newVal, rewriting every
// incident edge endpoint so edge keys stay consistent.
//
// Outcomes:
//   - ErrNodeNotFound if oldVal is not a node (graph unchanged).
//   - true, nil if oldVal == newVal (no-op).
//   - false, nil if newVal already exists as a different node (graph
//     unchanged).
//   - true, nil after a successful rename.
//
// Complexity: O(E + D·log E) where D is the degree of oldVal.
func (g *Graph[N, E]) ReplaceNode(oldVal, newVal N) (bool, error) {
	if !g.nodes.contains(oldVal) {
		return false, ErrNodeNotFound
	}
	if cmp.Compare(oldVal, newVal) == 0 {
		return true, nil
	}
	if g.nodes.contains(newVal) {
		return false, nil
	}

	g.nodes.remove(oldVal)
	g.nodes.insert(newVal)
	g.edges.rewrite(oldVal, newVal)

	return true, nil
}

// MergeReplaceNode redirects every edge incident to oldVal — as
// source and as destination — onto newVal, then removes oldVal.
// Duplicate records produced by the redirection are absorbed by the
// edge store's no-duplicate-key invariant. oldVal == newVal is a
// successful no-op.
//
// Returns ErrNodeNotFound if either oldVal or newVal is not a node;
// the graph is unchanged in that case.
//
// Complexity: O(E + D·log E) where D is the degree of oldVal.
func (g *Graph[N, E]) MergeReplaceNode(oldVal, newVal N) error {
	if !g.nodes.contains(oldVal) || !g.nodes.contains(newVal) {
		return ErrNodeNotFound
	}
	if cmp.Compare(oldVal, newVal) == 0 {
		return nil
	}

	g.nodes.remove(oldVal)
	g.edges.rewrite(oldVal, newVal)

	return nil
}

// EraseNode removes the node and cascades removal of every edge where
// it appears as source or destination, self-loops included. Reports
// false if value is not a node.
//
// Complexity: O(E + D·log E) where D is the degree of v.
func (g *Graph[N, E]) EraseNode(v N) bool {
	if !g.nodes.remove(v) {
		return false
	}
	for _, e := range g.edges.incident(v) {
		g.edges.delete(e)
	}

	return true
}
