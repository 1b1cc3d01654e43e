// File: methods_edges.go
// Role: Edge lifecycle & queries: InsertEdge / EraseEdge /
//       EraseEdgeAt / EraseEdgeRange, plus IsConnected, Edges, Find,
//       Connections, EdgeCount.
//
// Error contract (strict, see doc.go): a missing *node* named by any
// of these operations is ErrNodeNotFound; a missing *edge* between
// existing nodes is a boolean false. No operation partially applies
// before its precondition check.
package core

import "cmp"

// InsertEdge adds the edge (src, dst) with the weight described by
// opts (unweighted without options). Reports false if an equal record
// — same endpoints, same weight presence/value — already exists.
//
// Returns ErrNodeNotFound if either src or dst is not a node.
//
// Complexity: O(log E).
func (g *Graph[N, E]) InsertEdge(src, dst N, opts ...EdgeOption[E]) (bool, error) {
	if !g.nodes.contains(src) || !g.nodes.contains(dst) {
		return false, ErrNodeNotFound
	}

	return g.edges.insert(makeEdge(src, dst, opts)), nil
}

// EraseEdge removes the record matching (src, dst) and the weight
// described by opts. Reports false if no record matches.
//
// Returns ErrNodeNotFound if either src or dst is not a node.
//
// Complexity: O(log E).
func (g *Graph[N, E]) EraseEdge(src, dst N, opts ...EdgeOption[E]) (bool, error) {
	if !g.nodes.contains(src) || !g.nodes.contains(dst) {
		return false, ErrNodeNotFound
	}

	return g.edges.delete(makeEdge(src, dst, opts)), nil
}

// EraseEdgeAt removes the record the iterator points at and returns
// an iterator at the subsequent record (or End). The returned
// iterator is the only one guaranteed valid after the erase.
//
// An end iterator, a zero iterator, or an iterator of another graph
// is returned unchanged without mutation.
//
// Complexity: O(log E).
func (g *Graph[N, E]) EraseEdgeAt(it EdgeIterator[N, E]) EdgeIterator[N, E] {
	if it.store != g.edges.tree || it.end {
		return it
	}
	g.edges.delete(it.cur)
	if next, ok := g.edges.succ(it.cur); ok {
		return iterAt(g.edges.tree, next)
	}

	return g.End()
}

// EraseEdgeRange removes the half-open range [first, last) and
// returns an iterator at the position after the erased span — equal
// to last. An empty range is a no-op.
//
// Iterators of another graph (or zero iterators) cause no mutation.
//
// Complexity: O(D·log E) where D is the size of the range.
func (g *Graph[N, E]) EraseEdgeRange(first, last EdgeIterator[N, E]) EdgeIterator[N, E] {
	if first.store != g.edges.tree || first.end {
		return last
	}
	var doomed []Edge[N, E]
	g.edges.ascendFrom(first.cur, func(e Edge[N, E]) bool {
		if !last.end && edgeKeyCompare(e, last.cur) >= 0 {
			return false
		}
		doomed = append(doomed, e)

		return true
	})
	for _, e := range doomed {
		g.edges.delete(e)
	}

	return last
}

// EdgeCount returns the current number of edge records.
func (g *Graph[N, E]) EdgeCount() int {
	return g.edges.len()
}

// IsConnected reports whether at least one edge src→dst exists,
// regardless of weight.
//
// Returns ErrNodeNotFound if either src or dst is not a node.
//
// Complexity: O(log E).
func (g *Graph[N, E]) IsConnected(src, dst N) (bool, error) {
	if !g.nodes.contains(src) || !g.nodes.contains(dst) {
		return false, ErrNodeNotFound
	}
	// The unweighted record is the smallest possible key for the pair,
	// so the first record at or after it decides connectivity.
	connected := false
	g.edges.ascendFrom(Edge[N, E]{from: src, to: dst}, func(e Edge[N, E]) bool {
		connected = cmp.Compare(e.from, src) == 0 && cmp.Compare(e.to, dst) == 0

		return false
	})

	return connected, nil
}

// Edges returns independent clones of every record from src to dst,
// sorted unweighted-first then by ascending weight. The slice never
// changes when the graph is later mutated.
//
// Returns ErrNodeNotFound if either src or dst is not a node.
//
// Complexity: O(log E + K) where K is the number of matching records.
func (g *Graph[N, E]) Edges(src, dst N) ([]Edge[N, E], error) {
	if !g.nodes.contains(src) || !g.nodes.contains(dst) {
		return nil, ErrNodeNotFound
	}
	var out []Edge[N, E]
	g.edges.ascendFrom(Edge[N, E]{from: src, to: dst}, func(e Edge[N, E]) bool {
		if cmp.Compare(e.from, src) != 0 || cmp.Compare(e.to, dst) != 0 {
			return false
		}
		out = append(out, e)

		return true
	})

	return out, nil
}

// Find returns an iterator at the record matching (src, dst) and the
// weight described by opts, or End if no such record exists. Find
// never fails: absent nodes simply mean no match.
//
// Complexity: O(log E).
func (g *Graph[N, E]) Find(src, dst N, opts ...EdgeOption[E]) EdgeIterator[N, E] {
	if e, ok := g.edges.get(makeEdge(src, dst, opts)); ok {
		return iterAt(g.edges.tree, e)
	}

	return g.End()
}

// Connections returns the sorted, duplicate-free destinations
// reachable directly from src. The slice is an independent snapshot.
//
// Returns ErrNodeNotFound if src is not a node.
//
// Complexity: O(E).
func (g *Graph[N, E]) Connections(src N) ([]N, error) {
	if !g.nodes.contains(src) {
		return nil, ErrNodeNotFound
	}
	var out []N
	g.edges.ascend(func(e Edge[N, E]) bool {
		if c := cmp.Compare(e.from, src); c != 0 {
			// Records are source-ordered: stop once past src.
			return c < 0
		}
		// Parallel edges are adjacent in key order, so consecutive
		// dedup yields distinct destinations.
		if len(out) == 0 || cmp.Compare(out[len(out)-1], e.to) != 0 {
			out = append(out, e.to)
		}

		return true
	})

	return out, nil
}
