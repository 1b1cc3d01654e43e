// File: stores.go
// Role: The two ordered, duplicate-free stores the graph composes:
//       nodeStore (owner of node identity) and edgeStore (owner of
//       edge identity). Both are thin shells over a generic B-tree.
//
// Determinism:
//   - nodeStore iterates in the value order of N.
//   - edgeStore iterates in edgeKeyCompare order.
//
// Both stores compare through cmp so that floating-point values follow
// IEEE-with-NaN-first semantics rather than the raw < operator.
package core

import (
	"cmp"

	"github.com/google/btree"
)

// storeDegree is the B-tree branching factor for both stores.
const storeDegree = 16

// nodeStore is a uniquely-keyed, ordered collection of node values.
type nodeStore[N cmp.Ordered] struct {
	tree *btree.BTreeG[N]
}

func newNodeStore[N cmp.Ordered]() nodeStore[N] {
	return nodeStore[N]{tree: btree.NewG(storeDegree, func(a, b N) bool { return cmp.Less(a, b) })}
}

// insert adds v and reports true, or reports false if an equal value
// is already stored.
func (s nodeStore[N]) insert(v N) bool {
	if s.tree.Has(v) {
		return false
	}
	s.tree.ReplaceOrInsert(v)

	return true
}

func (s nodeStore[N]) contains(v N) bool { return s.tree.Has(v) }

// remove deletes v and reports whether it was present.
func (s nodeStore[N]) remove(v N) bool {
	_, ok := s.tree.Delete(v)

	return ok
}

func (s nodeStore[N]) len() int { return s.tree.Len() }

// values returns an independent, value-ordered snapshot.
func (s nodeStore[N]) values() []N {
	out := make([]N, 0, s.tree.Len())
	s.tree.Ascend(func(v N) bool {
		out = append(out, v)
		return true
	})

	return out
}

func (s nodeStore[N]) ascend(fn func(N) bool) { s.tree.Ascend(fn) }

// clone returns a lazy copy-on-write duplicate; mutations on either
// side never surface on the other.
func (s nodeStore[N]) clone() nodeStore[N] {
	return nodeStore[N]{tree: s.tree.Clone()}
}

// edgeStore is an ordered, duplicate-free collection of edge records
// keyed by edgeKeyCompare.
type edgeStore[N, E cmp.Ordered] struct {
	tree *btree.BTreeG[Edge[N, E]]
}

func newEdgeStore[N, E cmp.Ordered]() edgeStore[N, E] {
	return edgeStore[N, E]{tree: btree.NewG(storeDegree, func(a, b Edge[N, E]) bool {
		return edgeKeyCompare(a, b) < 0
	})}
}

// insert adds the record and reports true, or reports false if an
// equal-keyed record already exists.
func (s edgeStore[N, E]) insert(e Edge[N, E]) bool {
	if s.tree.Has(e) {
		return false
	}
	s.tree.ReplaceOrInsert(e)

	return true
}

// get returns the stored record equal-keyed to e.
func (s edgeStore[N, E]) get(e Edge[N, E]) (Edge[N, E], bool) {
	return s.tree.Get(e)
}

// delete removes the record equal-keyed to e and reports whether one
// was present.
func (s edgeStore[N, E]) delete(e Edge[N, E]) bool {
	_, ok := s.tree.Delete(e)

	return ok
}

func (s edgeStore[N, E]) len() int { return s.tree.Len() }

func (s edgeStore[N, E]) min() (Edge[N, E], bool) { return s.tree.Min() }

func (s edgeStore[N, E]) max() (Edge[N, E], bool) { return s.tree.Max() }

// succ returns the first record strictly greater than e.
func (s edgeStore[N, E]) succ(e Edge[N, E]) (Edge[N, E], bool) {
	var (
		out   Edge[N, E]
		found bool
	)
	s.tree.AscendGreaterOrEqual(e, func(it Edge[N, E]) bool {
		if edgeKeyCompare(it, e) == 0 {
			return true // skip e itself
		}
		out, found = it, true

		return false
	})

	return out, found
}

// pred returns the last record strictly smaller than e.
func (s edgeStore[N, E]) pred(e Edge[N, E]) (Edge[N, E], bool) {
	var (
		out   Edge[N, E]
		found bool
	)
	s.tree.DescendLessOrEqual(e, func(it Edge[N, E]) bool {
		if edgeKeyCompare(it, e) == 0 {
			return true
		}
		out, found = it, true

		return false
	})

	return out, found
}

func (s edgeStore[N, E]) ascend(fn func(Edge[N, E]) bool) { s.tree.Ascend(fn) }

// ascendFrom walks records >= pivot in key order.
func (s edgeStore[N, E]) ascendFrom(pivot Edge[N, E], fn func(Edge[N, E]) bool) {
	s.tree.AscendGreaterOrEqual(pivot, fn)
}

// incident returns every record touching v as source or destination,
// in key order. Used by the cascade and rewrite passes.
func (s edgeStore[N, E]) incident(v N) []Edge[N, E] {
	var out []Edge[N, E]
	s.tree.Ascend(func(e Edge[N, E]) bool {
		if cmp.Compare(e.from, v) == 0 || cmp.Compare(e.to, v) == 0 {
			out = append(out, e)
		}

		return true
	})

	return out
}

// rewrite redirects every endpoint equal to old onto repl, re-keying
// the touched records. Records whose rewritten key collides with an
// existing record are absorbed by the no-duplicate-key invariant.
func (s edgeStore[N, E]) rewrite(old, repl N) {
	touched := s.incident(old)
	// Remove first, then reinsert: a rewritten key may equal the key
	// of another record still pending rewrite.
	for _, e := range touched {
		s.tree.Delete(e)
	}
	for _, e := range touched {
		if cmp.Compare(e.from, old) == 0 {
			e.from = repl
		}
		if cmp.Compare(e.to, old) == 0 {
			e.to = repl
		}
		s.tree.ReplaceOrInsert(e)
	}
}

// clone returns a lazy copy-on-write duplicate of the store.
func (s edgeStore[N, E]) clone() edgeStore[N, E] {
	return edgeStore[N, E]{tree: s.tree.Clone()}
}
