// File: render.go
// Role: Deterministic text rendering: String and the io.WriterTo hook.
//
// Format (exact, consumers compare it literally):
//
//	\n
//	<node> (\n
//	  <src> -> <dst> | U\n
//	  <src> -> <dst> | W | <weight>\n
//	)\n
//	...
//
// Nodes appear in ascending value order; each node's outgoing edges
// follow in (destination, weight) order; a node without outgoing
// edges renders an empty body. An empty graph renders as the single
// leading newline.
package core

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// String renders the graph in its canonical text form. Rendering is
// idempotent and insensitive to insertion order: only the stored
// values matter.
//
// Complexity: O(V + E).
func (g *Graph[N, E]) String() string {
	// One ordered pass over each store, walked in lockstep: edges are
	// source-ordered, so each node consumes its own prefix of the
	// remaining edge sequence.
	edges := make([]Edge[N, E], 0, g.edges.len())
	g.edges.ascend(func(e Edge[N, E]) bool {
		edges = append(edges, e)
		return true
	})

	var b strings.Builder
	b.WriteByte('\n')
	i := 0
	g.nodes.ascend(func(v N) bool {
		fmt.Fprintf(&b, "%v (\n", v)
		for i < len(edges) && cmp.Compare(edges[i].from, v) == 0 {
			b.WriteString("  ")
			b.WriteString(edges[i].String())
			b.WriteByte('\n')
			i++
		}
		b.WriteString(")\n")

		return true
	})

	return b.String()
}

// WriteTo writes the canonical text form to w, implementing
// io.WriterTo as the stream-rendering hook.
func (g *Graph[N, E]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())

	return int64(n), err
}
