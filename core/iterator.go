// File: iterator.go
// Role: EdgeIterator — a bidirectional cursor over the edge store's
//       order — plus the Begin/End/All enumeration surface.
//
// The cursor is key-anchored: it remembers the record it points at
// and seeks by key on every step, instead of wrapping a live tree
// position. That makes iterators trivially copyable and lets the
// erase operations hand back an iterator already positioned at the
// successor. Any other structural mutation of the edge store leaves
// an outstanding iterator unspecified (re-acquire via Begin or Find).
package core

import (
	"cmp"
	"iter"

	"github.com/google/btree"
)

// EdgeIterator is a bidirectional cursor over a graph's edges in
// (source, destination, weight) order. The zero value is the
// default-constructed iterator: it compares equal only to another
// zero iterator and must not be dereferenced or advanced.
type EdgeIterator[N, E cmp.Ordered] struct {
	store *btree.BTreeG[Edge[N, E]]
	cur   Edge[N, E] // the record pointed at; meaningful iff !end
	end   bool       // one-past-last marker
}

func iterAt[N, E cmp.Ordered](store *btree.BTreeG[Edge[N, E]], e Edge[N, E]) EdgeIterator[N, E] {
	return EdgeIterator[N, E]{store: store, cur: e}
}

func iterEnd[N, E cmp.Ordered](store *btree.BTreeG[Edge[N, E]]) EdgeIterator[N, E] {
	return EdgeIterator[N, E]{store: store, end: true}
}

// Edge returns an immutable snapshot of the record the iterator
// points at. It panics on an end or zero iterator.
func (it EdgeIterator[N, E]) Edge() Edge[N, E] {
	if it.store == nil {
		panic("core: Edge on zero EdgeIterator")
	}
	if it.end {
		panic("core: Edge on end EdgeIterator")
	}

	return it.cur
}

// AtEnd reports whether the iterator is at the one-past-last position.
func (it EdgeIterator[N, E]) AtEnd() bool { return it.store == nil || it.end }

// Next advances to the successor record and reports whether the new
// position holds an edge. At the end position it stays put and
// reports false. It panics on a zero iterator.
func (it *EdgeIterator[N, E]) Next() bool {
	if it.store == nil {
		panic("core: Next on zero EdgeIterator")
	}
	if it.end {
		return false
	}
	next, ok := edgeStore[N, E]{tree: it.store}.succ(it.cur)
	if !ok {
		it.cur = Edge[N, E]{}
		it.end = true

		return false
	}
	it.cur = next

	return true
}

// Prev steps back to the predecessor record and reports whether the
// iterator moved. From the end position it moves onto the last record
// (if any); at the first record it stays put and reports false. It
// panics on a zero iterator.
func (it *EdgeIterator[N, E]) Prev() bool {
	if it.store == nil {
		panic("core: Prev on zero EdgeIterator")
	}
	if it.end {
		last, ok := it.store.Max()
		if !ok {
			return false
		}
		it.cur = last
		it.end = false

		return true
	}
	prev, ok := edgeStore[N, E]{tree: it.store}.pred(it.cur)
	if !ok {
		return false
	}
	it.cur = prev

	return true
}

// Equal reports whether two iterators address the same position of
// the same graph. Zero iterators are equal only to each other.
func (it EdgeIterator[N, E]) Equal(other EdgeIterator[N, E]) bool {
	if it.store != other.store {
		return false
	}
	if it.store == nil || it.end || other.end {
		return it.end == other.end
	}

	return edgeKeyCompare(it.cur, other.cur) == 0
}

// Begin returns an iterator at the first edge in storage order, or
// End() for a graph without edges.
func (g *Graph[N, E]) Begin() EdgeIterator[N, E] {
	first, ok := g.edges.min()
	if !ok {
		return g.End()
	}

	return iterAt(g.edges.tree, first)
}

// End returns the one-past-last iterator.
func (g *Graph[N, E]) End() EdgeIterator[N, E] {
	return iterEnd(g.edges.tree)
}

// All returns a forward sequence over every edge in storage order,
// usable with range-over-func. The graph must not be mutated while
// ranging.
func (g *Graph[N, E]) All() iter.Seq[Edge[N, E]] {
	return func(yield func(Edge[N, E]) bool) {
		g.edges.ascend(func(e Edge[N, E]) bool { return yield(e) })
	}
}
