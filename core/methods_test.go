// Package core_test verifies node/edge lifecycle, weight semantics, and
// enumeration order of core.Graph.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlrank/core"
)

// TestNewGraph_Defaults checks the zero-configuration contract:
// undirected, unweighted, no loops, at least one worker, empty storage.
func TestNewGraph_Defaults(t *testing.T) {
	g := core.NewGraph()

	assert.False(t, g.Directed(), "default graph must be undirected")
	assert.False(t, g.Weighted(), "default graph must be unweighted")
	assert.False(t, g.Looped(), "default graph must reject self-loops")
	assert.GreaterOrEqual(t, g.Parallelism(), 1, "worker count resolves to >= 1")
	assert.Equal(t, 0, g.NumberOfNodes())
	assert.Equal(t, 0, g.NumberOfEdges())
	assert.Equal(t, core.NodeID(0), g.UpperNodeIDBound())
	assert.Empty(t, g.Nodes())
}

// TestAddNode_DenseIDs checks that IDs are dense and monotonic and that
// AddNodes returns them ascending.
func TestAddNode_DenseIDs(t *testing.T) {
	g := core.NewGraph()

	assert.Equal(t, core.NodeID(0), g.AddNode())
	assert.Equal(t, core.NodeID(1), g.AddNode())

	ids := g.AddNodes(3)
	assert.Equal(t, []core.NodeID{2, 3, 4}, ids)
	assert.Nil(t, g.AddNodes(0), "k <= 0 yields nil")

	assert.Equal(t, 5, g.NumberOfNodes())
	assert.Equal(t, core.NodeID(5), g.UpperNodeIDBound())
	assert.Equal(t, []core.NodeID{0, 1, 2, 3, 4}, g.Nodes())
}

// TestAddEdge_Validation walks the full validation ladder in order.
func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	ids := g.AddNodes(2)

	// Missing endpoints.
	assert.ErrorIs(t, g.AddEdge(core.NodeID(9), ids[0], core.DefaultEdgeWeight), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddEdge(ids[0], core.None, core.DefaultEdgeWeight), core.ErrNodeNotFound)

	// Self-loop without WithLoops.
	assert.ErrorIs(t, g.AddEdge(ids[0], ids[0], core.DefaultEdgeWeight), core.ErrLoopNotAllowed)

	// Non-finite weights.
	assert.ErrorIs(t, g.AddEdge(ids[0], ids[1], math.NaN()), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge(ids[0], ids[1], math.Inf(1)), core.ErrBadWeight)

	// Non-default weight on an unweighted graph.
	assert.ErrorIs(t, g.AddEdge(ids[0], ids[1], 2.0), core.ErrBadWeight)

	// Duplicate pair.
	require.NoError(t, g.AddEdge(ids[0], ids[1], core.DefaultEdgeWeight))
	assert.ErrorIs(t, g.AddEdge(ids[0], ids[1], core.DefaultEdgeWeight), core.ErrEdgeExists)
	assert.ErrorIs(t, g.AddEdge(ids[1], ids[0], core.DefaultEdgeWeight), core.ErrEdgeExists,
		"undirected mirror counts as the same pair")
}

// TestAddEdge_UndirectedMirror checks that one undirected insertion is
// visible from both endpoints and counts as a single edge.
func TestAddEdge_UndirectedMirror(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	ids := g.AddNodes(2)

	require.NoError(t, g.AddEdge(ids[0], ids[1], 2.5))

	assert.True(t, g.HasEdge(ids[0], ids[1]))
	assert.True(t, g.HasEdge(ids[1], ids[0]))
	assert.Equal(t, 2.5, g.Weight(ids[0], ids[1]))
	assert.Equal(t, 2.5, g.Weight(ids[1], ids[0]))
	assert.Equal(t, 1, g.NumberOfEdges(), "mirrored halves are one edge")
}

// TestAddEdge_Directed checks one-way visibility on directed graphs.
func TestAddEdge_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	ids := g.AddNodes(2)

	require.NoError(t, g.AddEdge(ids[0], ids[1], 3.0))

	assert.True(t, g.HasEdge(ids[0], ids[1]))
	assert.False(t, g.HasEdge(ids[1], ids[0]), "reverse arc must not exist")
	assert.Equal(t, 3.0, g.Weight(ids[0], ids[1]))
	assert.Equal(t, core.NullWeight, g.Weight(ids[1], ids[0]))
}

// TestSelfLoop_StoredOnce checks loop insertion under WithLoops: stored
// once, counted once by Degree and enumerated once by ForEdgesOf.
func TestSelfLoop_StoredOnce(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithWeighted())
	u := g.AddNode()

	require.NoError(t, g.AddEdge(u, u, 4.0))

	deg, err := g.Degree(u)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)

	visits := 0
	require.NoError(t, g.ForEdgesOf(u, func(v core.NodeID, w float64) {
		visits++
		assert.Equal(t, u, v)
		assert.Equal(t, 4.0, w)
	}))
	assert.Equal(t, 1, visits, "self-loop enumerates once")
	assert.Equal(t, 1, g.NumberOfEdges())
}

// TestRemoveEdge checks mirror cleanup and the not-found sentinel.
func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	ids := g.AddNodes(2)
	require.NoError(t, g.AddEdge(ids[0], ids[1], core.DefaultEdgeWeight))

	require.NoError(t, g.RemoveEdge(ids[1], ids[0]), "either orientation removes an undirected edge")
	assert.False(t, g.HasEdge(ids[0], ids[1]))
	assert.False(t, g.HasEdge(ids[1], ids[0]))
	assert.Equal(t, core.NullWeight, g.Weight(ids[0], ids[1]))
	assert.Equal(t, 0, g.NumberOfEdges())

	assert.ErrorIs(t, g.RemoveEdge(ids[0], ids[1]), core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.RemoveEdge(core.NodeID(7), ids[1]), core.ErrNodeNotFound)
}

// TestRemoveNode_RetiresID checks that removal neither compacts IDs nor
// shrinks the bound, and that incident edges disappear from both sides.
func TestRemoveNode_RetiresID(t *testing.T) {
	g := core.NewGraph()
	ids := g.AddNodes(3)
	require.NoError(t, g.AddEdge(ids[0], ids[1], core.DefaultEdgeWeight))
	require.NoError(t, g.AddEdge(ids[1], ids[2], core.DefaultEdgeWeight))

	require.NoError(t, g.RemoveNode(ids[1]))

	assert.False(t, g.HasNode(ids[1]))
	assert.Equal(t, core.NodeID(3), g.UpperNodeIDBound(), "bound never shrinks")
	assert.Equal(t, []core.NodeID{0, 2}, g.Nodes())
	assert.Equal(t, 0, g.NumberOfEdges(), "incident edges removed")
	assert.False(t, g.HasEdge(ids[0], ids[1]))

	deg, err := g.Degree(ids[0])
	require.NoError(t, err)
	assert.Equal(t, 0, deg, "mirror halves cleaned up")

	// Retired IDs are invalid for every operation.
	assert.ErrorIs(t, g.AddEdge(ids[0], ids[1], core.DefaultEdgeWeight), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.RemoveNode(ids[1]), core.ErrNodeNotFound)

	// New nodes continue after the retired ID.
	assert.Equal(t, core.NodeID(3), g.AddNode(), "IDs are never reused")
}

// TestRemoveNode_DirectedInEdges checks the in-arc sweep on directed graphs.
func TestRemoveNode_DirectedInEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	ids := g.AddNodes(3)
	require.NoError(t, g.AddEdge(ids[0], ids[1], core.DefaultEdgeWeight))
	require.NoError(t, g.AddEdge(ids[2], ids[1], core.DefaultEdgeWeight))
	require.NoError(t, g.AddEdge(ids[1], ids[0], core.DefaultEdgeWeight))

	require.NoError(t, g.RemoveNode(ids[1]))

	assert.Equal(t, 0, g.NumberOfEdges(), "out-arcs and in-arcs both removed")
	assert.False(t, g.HasEdge(ids[0], ids[1]))
	assert.False(t, g.HasEdge(ids[2], ids[1]))
}

// TestWeight_AbsentEdge checks the null-weight contract.
func TestWeight_AbsentEdge(t *testing.T) {
	g := core.NewGraph()
	ids := g.AddNodes(2)

	assert.Equal(t, core.NullWeight, g.Weight(ids[0], ids[1]))
	assert.Equal(t, core.NullWeight, g.Weight(ids[0], core.NodeID(42)), "missing endpoint weighs null")
	assert.Equal(t, core.NullWeight, g.Weight(core.None, ids[0]))
}

// TestDegree checks counting and the missing-node sentinel.
func TestDegree(t *testing.T) {
	g := core.NewGraph()
	ids := g.AddNodes(3)
	require.NoError(t, g.AddEdge(ids[0], ids[1], core.DefaultEdgeWeight))
	require.NoError(t, g.AddEdge(ids[0], ids[2], core.DefaultEdgeWeight))

	deg, err := g.Degree(ids[0])
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	deg, err = g.Degree(ids[1])
	require.NoError(t, err)
	assert.Equal(t, 1, deg)

	_, err = g.Degree(core.NodeID(9))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestForNodes_SkipsRemoved checks ascending order and hole skipping.
func TestForNodes_SkipsRemoved(t *testing.T) {
	g := core.NewGraph()
	ids := g.AddNodes(4)
	require.NoError(t, g.RemoveNode(ids[2]))

	var seen []core.NodeID
	g.ForNodes(func(u core.NodeID) { seen = append(seen, u) })
	assert.Equal(t, []core.NodeID{0, 1, 3}, seen)
}

// TestForEdgesOf_InsertionOrder checks enumeration order, weights, and the
// missing-node sentinel, and that callbacks may query the graph.
func TestForEdgesOf_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	ids := g.AddNodes(4)
	require.NoError(t, g.AddEdge(ids[0], ids[2], 2.0))
	require.NoError(t, g.AddEdge(ids[0], ids[1], 1.0))
	require.NoError(t, g.AddEdge(ids[0], ids[3], 3.0))

	var nbrs []core.NodeID
	var weights []float64
	err := g.ForEdgesOf(ids[0], func(v core.NodeID, w float64) {
		nbrs = append(nbrs, v)
		weights = append(weights, w)
		// Re-entering the graph from a callback must not deadlock.
		assert.Equal(t, w, g.Weight(ids[0], v))
	})
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{2, 1, 3}, nbrs, "insertion order preserved")
	assert.Equal(t, []float64{2.0, 1.0, 3.0}, weights)

	assert.ErrorIs(t, g.ForEdgesOf(core.NodeID(9), func(core.NodeID, float64) {}), core.ErrNodeNotFound)
}

// TestForNeighborsOf mirrors ForEdgesOf without weights.
func TestForNeighborsOf(t *testing.T) {
	g := core.NewGraph()
	ids := g.AddNodes(3)
	require.NoError(t, g.AddEdge(ids[1], ids[0], core.DefaultEdgeWeight))
	require.NoError(t, g.AddEdge(ids[1], ids[2], core.DefaultEdgeWeight))

	var nbrs []core.NodeID
	require.NoError(t, g.ForNeighborsOf(ids[1], func(v core.NodeID) { nbrs = append(nbrs, v) }))
	assert.Equal(t, []core.NodeID{0, 2}, nbrs)

	assert.ErrorIs(t, g.ForNeighborsOf(core.None, func(core.NodeID) {}), core.ErrNodeNotFound)
}
