// File: methods_iterate.go
// Role: sequential and parallel node/edge enumeration.
//
// Determinism:
//   - All enumerations walk live IDs ascending; adjacency rows keep
//     insertion order.
//   - ParallelSumForNodes combines per-chunk partials in chunk order, so a
//     fixed Parallelism() degree reproduces the exact same float64.
//
// Concurrency:
//   - Every method snapshots the state it needs under a brief read lock and
//     invokes callbacks with no lock held. Callbacks may therefore call
//     back into the graph without deadlocking.
//   - Parallel callbacks run concurrently with each other; the call returns
//     only after the WaitGroup barrier, so all callback effects are visible
//     to the caller afterwards.
package core

import (
	"fmt"
	"sync"
)

// ForNodes invokes f once per live node, ascending by ID.
// Complexity: O(n) plus the callbacks.
func (g *Graph) ForNodes(f func(u NodeID)) {
	for _, u := range g.Nodes() {
		f(u)
	}
}

// ForNeighborsOf invokes f once per neighbor of u, in insertion order.
// Returns ErrNodeNotFound if u is not live.
// Complexity: O(deg(u)) plus the callbacks.
func (g *Graph) ForNeighborsOf(u NodeID, f func(v NodeID)) error {
	row, err := g.rowSnapshot(u)
	if err != nil {
		return err
	}
	for i := range row {
		f(row[i].to)
	}

	return nil
}

// ForEdgesOf invokes f once per edge incident to u, in insertion order,
// passing the neighbor and the stored weight. A self-loop is visited once.
// Returns ErrNodeNotFound if u is not live.
// Complexity: O(deg(u)) plus the callbacks.
func (g *Graph) ForEdgesOf(u NodeID, f func(v NodeID, w float64)) error {
	row, err := g.rowSnapshot(u)
	if err != nil {
		return err
	}
	for i := range row {
		f(row[i].to, row[i].weight)
	}

	return nil
}

// ParallelForNodes invokes f once per live node, fanning the calls out
// across Parallelism() goroutines. It returns only after every call has
// completed. f runs concurrently with other invocations of itself and must
// be safe for that; per-node writes to disjoint slice slots qualify.
// Complexity: O(n) work split across the workers plus one barrier.
func (g *Graph) ParallelForNodes(f func(u NodeID)) {
	ids := g.Nodes()
	n := len(ids)
	if n == 0 {
		return
	}

	p := g.workers
	if p > n {
		p = n
	}
	if p <= 1 {
		for _, u := range ids {
			f(u)
		}

		return
	}

	// Contiguous chunks keep per-goroutine work cache-friendly.
	chunk := (n + p - 1) / p
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(part []NodeID) {
			defer wg.Done()
			for _, u := range part {
				f(u)
			}
		}(ids[start:end])
	}
	wg.Wait()
}

// ParallelSumForNodes invokes f once per live node across Parallelism()
// goroutines and returns the sum of the results. Partial sums are combined
// in chunk order: a fixed parallelism degree yields a bitwise-stable
// result, different degrees may differ within floating-point rounding.
// Complexity: O(n) work split across the workers plus one barrier.
func (g *Graph) ParallelSumForNodes(f func(u NodeID) float64) float64 {
	ids := g.Nodes()
	n := len(ids)
	if n == 0 {
		return 0.0
	}

	p := g.workers
	if p > n {
		p = n
	}
	if p <= 1 {
		var sum float64
		for _, u := range ids {
			sum += f(u)
		}

		return sum
	}

	chunk := (n + p - 1) / p
	numChunks := (n + chunk - 1) / chunk
	partial := make([]float64, numChunks)

	var wg sync.WaitGroup
	slot := 0
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(slot int, part []NodeID) {
			defer wg.Done()
			var sum float64
			for _, u := range part {
				sum += f(u)
			}
			partial[slot] = sum
		}(slot, ids[start:end])
		slot++
	}
	wg.Wait()

	var total float64
	for _, sum := range partial {
		total += sum
	}

	return total
}

// rowSnapshot copies u's adjacency row under the read lock so callbacks
// can run unlocked.
func (g *Graph) rowSnapshot(u NodeID) ([]halfEdge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validNodeLocked(u) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	row := make([]halfEdge, len(g.adj[u]))
	copy(row, g.adj[u])

	return row, nil
}
