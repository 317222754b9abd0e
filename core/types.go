// Package core defines the Graph type, its node and weight primitives,
// sentinel errors, and the NewGraph constructor with functional options.
//
// Errors:
//
//	ErrNodeNotFound   - requested node does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrEdgeExists     - edge between the pair already exists.
//	ErrBadWeight      - weight is NaN/±Inf, or non-default on an unweighted graph.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core

import (
	"errors"
	"math"
	"runtime"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates an edge between the given pair already exists.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrBadWeight indicates a NaN/±Inf weight, or a non-default weight
	// provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// NodeID is a dense node index. IDs are assigned in creation order starting
// at 0 and are never reused after removal.
type NodeID uint64

// None is the sentinel "no node" value.
const None NodeID = math.MaxUint64

// Edge weight constants.
const (
	// DefaultEdgeWeight is the weight carried by every edge of an
	// unweighted graph and the conventional weight for weighted insertion.
	DefaultEdgeWeight float64 = 1.0

	// NullWeight is returned by Weight for absent edges.
	NullWeight float64 = 0.0
)

// halfEdge is one directed arc of the adjacency structure. An undirected
// edge occupies one halfEdge in each endpoint's row; a self-loop occupies
// exactly one.
type halfEdge struct {
	to     NodeID  // neighbor ID
	weight float64 // stored weight
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets the graph's directedness
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows arbitrary finite edge weights. Without it, AddEdge
// accepts only DefaultEdgeWeight.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithParallelism sets the goroutine count used by ParallelForNodes and
// ParallelSumForNodes. Values below 1 fall back to runtime.GOMAXPROCS(0),
// which is also the default.
func WithParallelism(n int) GraphOption {
	return func(g *Graph) { g.workers = n }
}

// Graph is the core in-memory graph data structure.
//
// Storage is dense: exists[u] marks node u live, adj[u] holds its adjacency
// row. A single RWMutex guards all state; iteration methods snapshot under
// a read lock and invoke callbacks outside it.
type Graph struct {
	mu sync.RWMutex // guards all fields below

	// Configuration flags
	directed   bool // edges are one-way
	weighted   bool // allow non-default weights
	allowLoops bool // allow self-loops
	workers    int  // parallel primitive goroutine count

	// Storage
	exists   []bool       // exists[u] == node u is live
	adj      [][]halfEdge // adj[u] = adjacency row of u, insertion order
	numNodes int          // live node count
	numEdges int          // live edge count (undirected edges counted once)
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected, unweighted, rejects self-loops, and
// parallelizes across runtime.GOMAXPROCS(0) goroutines.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	if g.workers < 1 {
		g.workers = runtime.GOMAXPROCS(0)
	}

	return g
}
