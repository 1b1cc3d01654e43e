// Shared fixtures for the core package tests.
package core_test

import (
	"testing"

	"github.com/katalvlaran/digraph/core"
	"github.com/stretchr/testify/require"
)

// Node labels reused across tests.
const (
	nodeHello = "hello"
	nodeHow   = "how"
	nodeAre   = "are"
	nodeYou   = "you?"
	nodeGhost = "ghost" // never inserted
)

// sampleRendered is the canonical text form of buildSample's graph.
const sampleRendered = "\n" +
	"are (\n" +
	"  are -> you? | W | 3\n" +
	")\n" +
	"hello (\n" +
	"  hello -> are | W | 2\n" +
	"  hello -> are | W | 8\n" +
	"  hello -> how | W | 5\n" +
	")\n" +
	"how (\n" +
	"  how -> hello | W | 4\n" +
	"  how -> you? | W | 1\n" +
	")\n" +
	"you? (\n" +
	")\n"

// buildSample constructs the reference graph used throughout:
// nodes {hello, how, are, you?} and six weighted edges.
func buildSample(t *testing.T) *core.Graph[string, int] {
	t.Helper()
	g := core.NewFrom[string, int](nodeHello, nodeHow, nodeAre, nodeYou)
	for _, e := range []struct {
		src, dst string
		w        int
	}{
		{nodeHello, nodeHow, 5},
		{nodeHello, nodeAre, 8},
		{nodeHello, nodeAre, 2},
		{nodeHow, nodeYou, 1},
		{nodeHow, nodeHello, 4},
		{nodeAre, nodeYou, 3},
	} {
		ok, err := g.InsertEdge(e.src, e.dst, core.WithWeight(e.w))
		require.NoError(t, err, "InsertEdge(%s, %s, %d)", e.src, e.dst, e.w)
		require.True(t, ok, "InsertEdge(%s, %s, %d) must insert", e.src, e.dst, e.w)
	}

	return g
}

// mustInsertEdge inserts an unweighted edge and fails the test on any
// non-true outcome.
func mustInsertEdge(t *testing.T, g *core.Graph[string, int], src, dst string) {
	t.Helper()
	ok, err := g.InsertEdge(src, dst)
	require.NoError(t, err, "InsertEdge(%s, %s)", src, dst)
	require.True(t, ok, "InsertEdge(%s, %s) must insert", src, dst)
}

// edgeStrings renders every edge of g in storage order.
func edgeStrings(g *core.Graph[string, int]) []string {
	var out []string
	for e := range g.All() {
		out = append(out, e.String())
	}

	return out
}
