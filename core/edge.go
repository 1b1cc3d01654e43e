// File: edge.go
// Role: The Edge record — an immutable (source, destination, optional
//       weight) snapshot — plus its ordering, equality, and text form,
//       and the EdgeOption surface used to spell optional weights.
//
// Determinism:
//   - Compare implements the weight rank only (unweighted < weighted,
//     then native weight order); endpoint comparison happens one level
//     up, in the edge store key (see edgeKeyCompare).
//   - Weight order uses cmp.Compare, so NaN weights of a floating E
//     are mutually equal and sort before every ordered weight.
package core

import (
	"cmp"
	"fmt"
)

// Edge is an immutable directed connection between two node values,
// optionally carrying a weight. Edge is a pure value: once obtained
// (from Edges, Find, or an EdgeIterator) it never changes, even if
// the source graph is later mutated.
type Edge[N, E cmp.Ordered] struct {
	from, to N
	weight   E
	weighted bool
}

// From returns the source node value.
func (e Edge[N, E]) From() N { return e.from }

// To returns the destination node value.
func (e Edge[N, E]) To() N { return e.to }

// Nodes returns the (source, destination) pair.
func (e Edge[N, E]) Nodes() (from, to N) { return e.from, e.to }

// Weighted reports whether the edge carries a weight.
func (e Edge[N, E]) Weighted() bool { return e.weighted }

// Weight returns the weight and true for a weighted edge, or the zero
// value of E and false for an unweighted one.
func (e Edge[N, E]) Weight() (E, bool) { return e.weight, e.weighted }

// Compare orders two records by weight alone: an unweighted record
// sorts before any weighted one, and weighted records follow the
// native order of E. Endpoints are deliberately ignored here.
func (e Edge[N, E]) Compare(other Edge[N, E]) int {
	switch {
	case !e.weighted && !other.weighted:
		return 0
	case !e.weighted:
		return -1
	case !other.weighted:
		return 1
	}

	return cmp.Compare(e.weight, other.weight)
}

// Equal reports whether both records have identical endpoints and
// identical weight presence/value.
func (e Edge[N, E]) Equal(other Edge[N, E]) bool {
	return edgeKeyCompare(e, other) == 0
}

// String renders the record in the container's canonical text form:
//
//	<src> -> <dst> | U
//	<src> -> <dst> | W | <weight>
func (e Edge[N, E]) String() string {
	if !e.weighted {
		return fmt.Sprintf("%v -> %v | U", e.from, e.to)
	}

	return fmt.Sprintf("%v -> %v | W | %v", e.from, e.to, e.weight)
}

// edgeKeyCompare is the full storage order over edge records:
// source, then destination, then the weight rank of Edge.Compare.
func edgeKeyCompare[N, E cmp.Ordered](a, b Edge[N, E]) int {
	if c := cmp.Compare(a.from, b.from); c != 0 {
		return c
	}
	if c := cmp.Compare(a.to, b.to); c != 0 {
		return c
	}

	return a.Compare(b)
}

// edgeSpec accumulates per-edge options before a record is built.
type edgeSpec[E cmp.Ordered] struct {
	weight   E
	weighted bool
}

// EdgeOption configures an edge record passed to InsertEdge,
// EraseEdge, or Find. Without options the record is unweighted.
type EdgeOption[E cmp.Ordered] func(*edgeSpec[E])

// WithWeight marks the edge as weighted with the given weight value.
func WithWeight[E cmp.Ordered](w E) EdgeOption[E] {
	return func(s *edgeSpec[E]) {
		s.weight = w
		s.weighted = true
	}
}

// makeEdge builds the record addressed by (src, dst) and the applied
// options; it is the single spot where options become a key.
func makeEdge[N, E cmp.Ordered](src, dst N, opts []EdgeOption[E]) Edge[N, E] {
	var spec edgeSpec[E]
	for _, opt := range opts {
		opt(&spec)
	}

	return Edge[N, E]{from: src, to: dst, weight: spec.weight, weighted: spec.weighted}
}
