// File: methods.go
// Role: node and edge lifecycle plus point queries.
//
// Determinism:
//   - Nodes() returns live IDs in ascending order.
//   - Adjacency rows keep insertion order; RemoveEdge preserves the order
//     of the surviving entries.
//
// Concurrency:
//   - Every method takes g.mu itself; callers never hold it.
package core

import (
	"fmt"
	"math"
)

// AddNode appends a new node and returns its ID.
// IDs are dense and monotonic: the first node is 0, the next is 1, and so on.
// Complexity: O(1) amortized.
func (g *Graph) AddNode() NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked()
}

// AddNodes appends k nodes and returns their IDs in ascending order.
// k <= 0 yields nil.
// Complexity: O(k) amortized.
func (g *Graph) AddNodes(k int) []NodeID {
	if k <= 0 {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]NodeID, k)
	for i := 0; i < k; i++ {
		ids[i] = g.addNodeLocked()
	}

	return ids
}

// addNodeLocked appends one node; caller holds the write lock.
func (g *Graph) addNodeLocked() NodeID {
	id := NodeID(len(g.exists))
	g.exists = append(g.exists, true)
	g.adj = append(g.adj, nil)
	g.numNodes++

	return id
}

// RemoveNode deletes node u and every edge incident to it. The ID is
// retired: UpperNodeIDBound is unchanged and iteration skips u from now on.
// Returns ErrNodeNotFound if u is not live.
// Complexity: O(deg(u)) undirected, O(n + m) directed (in-edge sweep).
func (g *Graph) RemoveNode(u NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.validNodeLocked(u) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}

	// 1) Drop u's outgoing row, mirroring removals for undirected edges.
	for _, he := range g.adj[u] {
		if he.to != u && !g.directed {
			g.adj[he.to], _ = removeHalfEdge(g.adj[he.to], u)
		}
		g.numEdges--
	}
	g.adj[u] = nil

	// 2) Directed graphs may still hold arcs pointing at u; sweep them out.
	if g.directed {
		for v := range g.adj {
			if NodeID(v) == u {
				continue
			}
			for {
				row, ok := removeHalfEdge(g.adj[v], u)
				if !ok {
					break
				}
				g.adj[v] = row
				g.numEdges--
			}
		}
	}

	g.exists[u] = false
	g.numNodes--

	return nil
}

// HasNode reports whether node u is live.
// Complexity: O(1)
func (g *Graph) HasNode(u NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.validNodeLocked(u)
}

// AddEdge inserts the edge (u, v) with weight w.
//
// Validation (in order):
//  1. Both endpoints must be live (ErrNodeNotFound).
//  2. u == v requires WithLoops (ErrLoopNotAllowed).
//  3. w must be finite (ErrBadWeight).
//  4. Unweighted graphs accept only DefaultEdgeWeight (ErrBadWeight).
//  5. The pair must not already be connected (ErrEdgeExists).
//
// Undirected graphs mirror the edge into both adjacency rows; self-loops
// are stored once.
// Complexity: O(deg(u)) for the duplicate check.
func (g *Graph) AddEdge(u, v NodeID, w float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Endpoints must exist.
	if !g.validNodeLocked(u) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	if !g.validNodeLocked(v) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	}

	// 2) Loop policy.
	if u == v && !g.allowLoops {
		return fmt.Errorf("%w: %d→%d", ErrLoopNotAllowed, u, v)
	}

	// 3) Weights must be finite numbers.
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v", ErrBadWeight, w)
	}

	// 4) Unweighted graphs carry DefaultEdgeWeight only.
	if !g.weighted && w != DefaultEdgeWeight {
		return fmt.Errorf("%w: %v on unweighted graph", ErrBadWeight, w)
	}

	// 5) No multi-edges.
	if edgeIndex(g.adj[u], v) >= 0 {
		return fmt.Errorf("%w: %d→%d", ErrEdgeExists, u, v)
	}

	g.adj[u] = append(g.adj[u], halfEdge{to: v, weight: w})
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], halfEdge{to: u, weight: w})
	}
	g.numEdges++

	return nil
}

// RemoveEdge deletes the edge (u, v).
// Returns ErrNodeNotFound for a missing endpoint and ErrEdgeNotFound when
// the pair is not connected.
// Complexity: O(deg(u) + deg(v))
func (g *Graph) RemoveEdge(u, v NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.validNodeLocked(u) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	if !g.validNodeLocked(v) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	}

	row, ok := removeHalfEdge(g.adj[u], v)
	if !ok {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, u, v)
	}
	g.adj[u] = row
	if !g.directed && u != v {
		g.adj[v], _ = removeHalfEdge(g.adj[v], u)
	}
	g.numEdges--

	return nil
}

// HasEdge reports whether the edge (u, v) exists.
// Complexity: O(deg(u))
func (g *Graph) HasEdge(u, v NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validNodeLocked(u) || !g.validNodeLocked(v) {
		return false
	}

	return edgeIndex(g.adj[u], v) >= 0
}

// Weight returns the stored weight of the edge (u, v), or NullWeight when
// the edge or either endpoint is absent.
// Complexity: O(deg(u))
func (g *Graph) Weight(u, v NodeID) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validNodeLocked(u) || !g.validNodeLocked(v) {
		return NullWeight
	}
	if i := edgeIndex(g.adj[u], v); i >= 0 {
		return g.adj[u][i].weight
	}

	return NullWeight
}

// Degree returns the number of adjacency-row entries of u. On undirected
// graphs this counts each neighbor once and a self-loop once; on directed
// graphs it is the out-degree.
// Complexity: O(1)
func (g *Graph) Degree(u NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validNodeLocked(u) {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}

	return len(g.adj[u]), nil
}

// NumberOfNodes returns the live node count.
// Complexity: O(1)
func (g *Graph) NumberOfNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numNodes
}

// NumberOfEdges returns the live edge count. Undirected edges count once.
// Complexity: O(1)
func (g *Graph) NumberOfEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numEdges
}

// UpperNodeIDBound returns the exclusive upper bound on node IDs ever
// assigned. Retired IDs stay inside the bound; score vectors indexed by
// NodeID use this as their length.
// Complexity: O(1)
func (g *Graph) UpperNodeIDBound() NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return NodeID(len(g.exists))
}

// Nodes returns all live node IDs in ascending order.
// Complexity: O(n)
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.liveNodesLocked()
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-default weights are allowed.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }

// Parallelism returns the goroutine count used by the parallel primitives.
func (g *Graph) Parallelism() int { return g.workers }

// validNodeLocked reports whether u is a live ID; caller holds g.mu.
func (g *Graph) validNodeLocked(u NodeID) bool {
	return u < NodeID(len(g.exists)) && g.exists[u]
}

// liveNodesLocked collects live IDs ascending; caller holds g.mu.
func (g *Graph) liveNodesLocked() []NodeID {
	ids := make([]NodeID, 0, g.numNodes)
	for u := range g.exists {
		if g.exists[u] {
			ids = append(ids, NodeID(u))
		}
	}

	return ids
}

// edgeIndex returns the position of v in row, or -1.
func edgeIndex(row []halfEdge, v NodeID) int {
	for i := range row {
		if row[i].to == v {
			return i
		}
	}

	return -1
}

// removeHalfEdge deletes the first entry pointing at v, preserving the
// order of the rest. The second result reports whether an entry was found.
func removeHalfEdge(row []halfEdge, v NodeID) ([]halfEdge, bool) {
	i := edgeIndex(row, v)
	if i < 0 {
		return row, false
	}

	return append(row[:i], row[i+1:]...), true
}
