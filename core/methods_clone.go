// File: methods_clone.go
// Role: Whole-graph operations: Clone, Clear, and structural Equal.
//
// Clone relies on the stores' lazy copy-on-write duplication, so the
// copy itself is O(1) and the cost of independence is paid only by
// whichever graph mutates first.
package core

import "cmp"

// Clone returns a graph fully independent of the receiver: later
// mutation of either never affects the other, and snapshots obtained
// from either stay valid and unchanged.
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	return &Graph[N, E]{
		nodes: g.nodes.clone(),
		edges: g.edges.clone(),
	}
}

// Clear removes all nodes and edges, leaving the valid empty state.
// Always succeeds. Outstanding iterators are invalidated.
func (g *Graph[N, E]) Clear() {
	g.nodes = newNodeStore[N]()
	g.edges = newEdgeStore[N, E]()
}

// Equal reports structural equality: the node sets are equal as
// ordered value sequences and the edge sets are equal as ordered
// record sequences (endpoints plus weight presence/value). Iterator
// or storage identity is irrelevant.
//
// Complexity: O(V + E).
func (g *Graph[N, E]) Equal(other *Graph[N, E]) bool {
	if other == nil {
		return false
	}
	if g == other {
		return true
	}
	if g.nodes.len() != other.nodes.len() || g.edges.len() != other.edges.len() {
		return false
	}

	theirs := other.nodes.values()
	i, equal := 0, true
	g.nodes.ascend(func(v N) bool {
		equal = cmp.Compare(v, theirs[i]) == 0
		i++

		return equal
	})
	if !equal {
		return false
	}

	otherEdges := make([]Edge[N, E], 0, other.edges.len())
	other.edges.ascend(func(e Edge[N, E]) bool {
		otherEdges = append(otherEdges, e)
		return true
	})
	i = 0
	g.edges.ascend(func(e Edge[N, E]) bool {
		equal = e.Equal(otherEdges[i])
		i++

		return equal
	})

	return equal
}
