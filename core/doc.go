// Package core provides the in-memory graph type consumed by the lvlrank
// algorithms: a thread-safe, dense-index, optionally weighted graph with
// sequential and parallel node iteration primitives.
//
// What
//
//   - Nodes are dense integer IDs (NodeID) assigned in creation order,
//     starting at 0. Removing a node retires its ID; IDs are never reused
//     and UpperNodeIDBound never shrinks.
//   - Edges are stored as adjacency rows of (neighbor, weight) pairs.
//     Undirected graphs mirror every edge into both rows; self-loops are
//     stored once.
//   - Absent edges weigh NullWeight (0.0); unweighted graphs carry
//     DefaultEdgeWeight (1.0) on every edge.
//   - ForNodes / ForNeighborsOf / ForEdgesOf enumerate sequentially;
//     ParallelForNodes / ParallelSumForNodes fan work out across a
//     configurable number of goroutines and return only after every
//     callback has completed.
//
// Why
//
//   - Centrality and other spectral algorithms index score vectors by node
//     ID; dense IDs make those vectors plain []float64 slices.
//   - The parallel primitives let algorithms express per-node work and
//     reductions without owning goroutine plumbing.
//
// Determinism
//
//	Nodes(), ForNodes and the parallel primitives enumerate live IDs in
//	ascending order. ParallelSumForNodes combines per-chunk partial sums in
//	chunk order, so a fixed parallelism degree yields bitwise-identical
//	sums; different degrees may differ in the last few ULPs.
//
// Concurrency
//
//	All methods are safe for concurrent use behind a single sync.RWMutex.
//	Iteration callbacks run outside the lock: mutating the graph from a
//	callback is allowed but the iteration keeps walking the snapshot taken
//	at entry. Callbacks passed to the parallel primitives run concurrently
//	with each other and must be safe for that.
//
// Complexity (n = UpperNodeIDBound, deg = row length)
//
//   - AddNode, HasNode, Degree: O(1)
//   - AddEdge, HasEdge, Weight, RemoveEdge: O(deg)
//   - RemoveNode: O(n + m) on directed graphs, O(deg) otherwise
//   - ParallelForNodes / ParallelSumForNodes: O(n) work split across
//     Parallelism() goroutines plus one barrier
//
// Usage
//
//	g := core.NewGraph(core.WithWeighted())
//	ids := g.AddNodes(3)
//	_ = g.AddEdge(ids[0], ids[1], 2.5)
//	_ = g.AddEdge(ids[1], ids[2], 1.0)
//
//	sum := g.ParallelSumForNodes(func(u core.NodeID) float64 {
//	    return g.Weight(u, ids[1])
//	})
//
// Errors
//
//   - ErrNodeNotFound   if an operation references a missing node.
//   - ErrEdgeNotFound   if RemoveEdge references a missing edge.
//   - ErrEdgeExists     if AddEdge would duplicate an existing pair.
//   - ErrBadWeight      if a weight is NaN/±Inf, or non-default on an
//     unweighted graph.
//   - ErrLoopNotAllowed if a self-loop is added without WithLoops.
package core
