package core_test

import (
	"testing"

	"github.com/katalvlaran/digraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGraph_InsertEdge verifies duplicate rejection, the independence
// of unweighted and weighted records over the same endpoints, and the
// node-presence precondition.
func TestGraph_InsertEdge(t *testing.T) {
	g := core.NewFrom[string, int]("a", "b")

	ok, err := g.InsertEdge("a", "b", core.WithWeight(7))
	require.NoError(t, err)
	assert.True(t, ok, "first insert")

	ok, err = g.InsertEdge("a", "b", core.WithWeight(7))
	require.NoError(t, err)
	assert.False(t, ok, "same (src, dst, weight) is a duplicate")

	ok, err = g.InsertEdge("a", "b")
	require.NoError(t, err)
	assert.True(t, ok, "unweighted record is independent of weighted ones")

	ok, err = g.InsertEdge("b", "a", core.WithWeight(7))
	require.NoError(t, err)
	assert.True(t, ok, "reversed endpoints are a distinct record")

	_, err = g.InsertEdge("a", nodeGhost)
	assert.ErrorIs(t, err, core.ErrNodeNotFound, "absent dst")
	_, err = g.InsertEdge(nodeGhost, "a", core.WithWeight(1))
	assert.ErrorIs(t, err, core.ErrNodeNotFound, "absent src")
	assert.Equal(t, 3, g.EdgeCount(), "failed preconditions leave the store untouched")
}

// TestGraph_EraseEdgeByValue verifies the two failure channels of the
// value-addressed erase: absent node is an error, absent record is a
// boolean false.
func TestGraph_EraseEdgeByValue(t *testing.T) {
	g := buildSample(t)

	_, err := g.EraseEdge(nodeGhost, nodeHello)
	assert.ErrorIs(t, err, core.ErrNodeNotFound, "absent src")
	_, err = g.EraseEdge(nodeHello, nodeGhost, core.WithWeight(5))
	assert.ErrorIs(t, err, core.ErrNodeNotFound, "absent dst")

	ok, err := g.EraseEdge(nodeHello, nodeHow, core.WithWeight(99))
	require.NoError(t, err)
	assert.False(t, ok, "no record with that weight")

	ok, err = g.EraseEdge(nodeHello, nodeHow)
	require.NoError(t, err)
	assert.False(t, ok, "no unweighted record between these nodes")

	ok, err = g.EraseEdge(nodeHello, nodeHow, core.WithWeight(5))
	require.NoError(t, err)
	assert.True(t, ok, "matching record erased")
	assert.Equal(t, 5, g.EdgeCount())

	connected, err := g.IsConnected(nodeHello, nodeHow)
	require.NoError(t, err)
	assert.False(t, connected, "pair disconnected after erasing its only edge")
}

// TestGraph_IsConnected verifies weight-blind connectivity.
func TestGraph_IsConnected(t *testing.T) {
	g := buildSample(t)

	connected, err := g.IsConnected(nodeHello, nodeAre)
	require.NoError(t, err)
	assert.True(t, connected, "two weighted edges connect the pair")

	connected, err = g.IsConnected(nodeAre, nodeHello)
	require.NoError(t, err)
	assert.False(t, connected, "direction matters")

	connected, err = g.IsConnected(nodeYou, nodeYou)
	require.NoError(t, err)
	assert.False(t, connected, "no self-loop present")
}

// TestGraph_Edges verifies the weight-ordered clone listing and its
// independence from later mutation.
func TestGraph_Edges(t *testing.T) {
	g := buildSample(t)
	mustInsertEdge(t, g, nodeHello, nodeAre) // unweighted variant

	_, err := g.Edges(nodeGhost, nodeAre)
	assert.ErrorIs(t, err, core.ErrNodeNotFound, "absent src")
	_, err = g.Edges(nodeHello, nodeGhost)
	assert.ErrorIs(t, err, core.ErrNodeNotFound, "absent dst")

	edges, err := g.Edges(nodeHello, nodeAre)
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.Equal(t, "hello -> are | U", edges[0].String(), "unweighted first")
	assert.Equal(t, "hello -> are | W | 2", edges[1].String())
	assert.Equal(t, "hello -> are | W | 8", edges[2].String())

	empty, err := g.Edges(nodeYou, nodeHello)
	require.NoError(t, err)
	assert.Empty(t, empty, "no records between existing nodes is not an error")

	// Clones are snapshots: erase the backing records and re-check.
	_, err = g.EraseEdge(nodeHello, nodeAre, core.WithWeight(2))
	require.NoError(t, err)
	assert.Equal(t, "hello -> are | W | 2", edges[1].String(), "snapshot survives mutation")
}

// TestGraph_Find verifies that lookup misses — including absent
// endpoints — yield the end iterator rather than an error.
func TestGraph_Find(t *testing.T) {
	g := buildSample(t)

	it := g.Find(nodeHello, nodeHow, core.WithWeight(5))
	require.False(t, it.AtEnd())
	assert.Equal(t, "hello -> how | W | 5", it.Edge().String())

	assert.True(t, g.Find(nodeHello, nodeHow, core.WithWeight(42)).Equal(g.End()),
		"weight never inserted: end, not node-not-found")
	assert.True(t, g.Find(nodeHello, nodeHow).Equal(g.End()),
		"unweighted variant never inserted: end")
	assert.True(t, g.Find(nodeGhost, nodeHow).Equal(g.End()),
		"absent src: end, Find never fails")
}

// TestGraph_Connections verifies the sorted, duplicate-free
// destination listing.
func TestGraph_Connections(t *testing.T) {
	g := buildSample(t)
	mustInsertEdge(t, g, nodeHello, nodeAre) // parallel variant must not duplicate

	_, err := g.Connections(nodeGhost)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	dsts, err := g.Connections(nodeHello)
	require.NoError(t, err)
	assert.Equal(t, []string{nodeAre, nodeHow}, dsts, "distinct destinations in value order")

	none, err := g.Connections(nodeYou)
	require.NoError(t, err)
	assert.Empty(t, none, "sink node has no connections")
}

// TestGraph_All verifies forward enumeration in storage order.
func TestGraph_All(t *testing.T) {
	g := buildSample(t)

	assert.Equal(t, []string{
		"are -> you? | W | 3",
		"hello -> are | W | 2",
		"hello -> are | W | 8",
		"hello -> how | W | 5",
		"how -> hello | W | 4",
		"how -> you? | W | 1",
	}, edgeStrings(g), "ordering invariant: source, destination, weight")
}
