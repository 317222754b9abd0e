// Package eigenvector implements eigenvector centrality on undirected,
// optionally weighted graphs via power iteration.
//
// Each node's score is proportional to the weighted sum of its neighbors'
// scores; the fixed point is the dominant eigenvector of the adjacency
// operator. The iteration seeds every node with 1.0, repeats
//
//	next[u] = Σ over incident edges (u,v,w) of w·prev[v]
//
// normalizes by the L2 norm after every pass, and stops once consecutive
// norms agree within the configured tolerance. Matvec, norm reduction, and
// normalization all run through the graph's parallel node primitives.
//
// Notes on implementation choices:
//
//   - Two buffers are swapped between passes instead of copying the vector.
//   - A norm within numeric.DefaultTolerance of zeroNormFloor aborts the
//     run with ErrNumericalBreakdown before any division.
//   - The published vector is sign-canonicalized as a separate final step:
//     if entry 0 is negative, every entry is replaced with its absolute
//     value.
//   - A failed run publishes nothing and resets the engine to not-run.
package eigenvector

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlrank/core"
	"github.com/katalvlaran/lvlrank/numeric"
)

// Centrality computes eigenvector centrality for one graph.
//
// The engine is not safe for concurrent use; run one engine per goroutine.
// The graph must not be mutated while Run executes. Internally Run fans
// per-node work out across the graph's Parallelism() goroutines.
type Centrality struct {
	g      *core.Graph // input graph; read-only during Run
	opts   Options     // validated configuration
	scores []float64   // published vector, indexed by NodeID; nil until a successful Run
	hasRun bool        // true after a successful Run
}

// New constructs a Centrality engine for g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must be undirected (ErrDirectedGraph).
//  3. Tolerance must be positive and finite (ErrBadTolerance).
//  4. MaxIterations must be non-negative (ErrBadMaxIterations).
//
// Construction performs no iteration work; call Run.
func New(g *core.Graph, opts ...Option) (*Centrality, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the graph.
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	// 3) Validate the tolerance.
	if math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0) || cfg.Tolerance <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadTolerance, cfg.Tolerance)
	}

	// 4) Validate the iteration cap.
	if cfg.MaxIterations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxIterations, cfg.MaxIterations)
	}

	return &Centrality{g: g, opts: cfg}, nil
}

// Compute is the one-shot convenience wrapper: New, Run, Scores.
// Complexity: O(maxIter·(n + m)) time, O(n) memory.
func Compute(g *core.Graph, opts ...Option) ([]float64, error) {
	c, err := New(g, opts...)
	if err != nil {
		return nil, err
	}
	if err = c.Run(); err != nil {
		return nil, err
	}

	return c.Scores()
}

// Run executes the power iteration and publishes the score vector.
//
// Any previously published results are discarded first, so a failed Run
// always leaves the engine in the not-run state. On success HasRun reports
// true and Scores/Score/Ranking become available.
//
// Returns ErrNumericalBreakdown if the iterate's norm collapses to zero,
// ErrConvergenceTimeout if MaxIterations is exhausted before convergence.
// Complexity: O(iterations·(n + m)) time across Parallelism() goroutines,
// O(n) memory for the two buffers.
func (c *Centrality) Run() error {
	// 1) Discard previous results.
	c.hasRun = false
	c.scores = nil

	// 2) Iterate.
	r := newRunner(c.g, c.opts)
	scores, err := r.iterate()
	if err != nil {
		return err
	}

	// 3) Canonicalize the sign as its own final step, then publish.
	canonicalizeSign(scores)
	c.scores = scores
	c.hasRun = true

	return nil
}

// HasRun reports whether a Run has completed successfully since the last
// reset.
func (c *Centrality) HasRun() bool { return c.hasRun }

// Scores returns the published vector, indexed by NodeID, of length equal
// to the graph's UpperNodeIDBound at run time. Entries of nodes removed
// before the run keep the seed value 1.0. The slice is owned by the engine;
// callers must not mutate it.
// Returns ErrNotRun before a successful Run.
func (c *Centrality) Scores() ([]float64, error) {
	if !c.hasRun {
		return nil, ErrNotRun
	}

	return c.scores, nil
}

// Score returns the centrality of node u.
// Returns ErrNotRun before a successful Run and ErrBadNode for IDs outside
// the published vector.
func (c *Centrality) Score(u core.NodeID) (float64, error) {
	if !c.hasRun {
		return 0, ErrNotRun
	}
	if u >= core.NodeID(len(c.scores)) {
		return 0, fmt.Errorf("%w: %d", ErrBadNode, u)
	}

	return c.scores[u], nil
}

// Ranking returns the live nodes ordered by descending score, ties broken
// by ascending NodeID. The live set is read at call time; nodes removed
// after the run simply drop out of the ranking.
// Returns ErrNotRun before a successful Run.
func (c *Centrality) Ranking() ([]RankEntry, error) {
	if !c.hasRun {
		return nil, ErrNotRun
	}

	bound := core.NodeID(len(c.scores))
	entries := make([]RankEntry, 0, c.g.NumberOfNodes())
	for _, u := range c.g.Nodes() {
		if u >= bound {
			continue // node added after the run; it has no score
		}
		entries = append(entries, RankEntry{Node: u, Score: c.scores[u]})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}

		return entries[i].Node < entries[j].Node
	})

	return entries, nil
}

// runner holds the mutable state for a single power-iteration execution.
type runner struct {
	g        *core.Graph // the input graph; read-only within iterate
	tol      float64     // convergence tolerance
	maxIter  int         // iteration cap; 0 = unbounded
	residual bool        // displacement criterion instead of norm drift
	prev     []float64   // read buffer (last normalized iterate)
	next     []float64   // write buffer (current matvec target)
	length   float64     // L2 norm of the current iterate
}

// newRunner seeds both buffers with 1.0 so slots of removed nodes keep the
// seed for the whole run; live slots are overwritten every pass.
func newRunner(g *core.Graph, opts Options) *runner {
	bound := int(g.UpperNodeIDBound())
	prev := make([]float64, bound)
	next := make([]float64, bound)
	for i := 0; i < bound; i++ {
		prev[i] = 1.0
		next[i] = 1.0
	}

	return &runner{
		g:        g,
		tol:      opts.Tolerance,
		maxIter:  opts.MaxIterations,
		residual: opts.ResidualConvergence,
		prev:     prev,
		next:     next,
	}
}

// iterate runs passes until the convergence test passes, the norm collapses,
// or the cap is exhausted. It returns the final normalized vector (holes at
// the seed value) without sign canonicalization.
func (r *runner) iterate() ([]float64, error) {
	var (
		iter      int     // completed passes
		oldLength float64 // norm of the previous pass
		done      bool    // convergence flag
	)
	for {
		oldLength = r.length

		// 1) Matvec: next[u] = Σ w(u,v)·prev[v] over edges incident to u.
		//    Writes hit disjoint slots, reads see the immutable prev buffer.
		r.g.ParallelForNodes(func(u core.NodeID) {
			var acc float64
			_ = r.g.ForEdgesOf(u, func(v core.NodeID, w float64) {
				acc += w * r.prev[v]
			})
			r.next[u] = acc
		})

		// 2) Norm reduction over live nodes.
		r.length = math.Sqrt(r.g.ParallelSumForNodes(func(u core.NodeID) float64 {
			return r.next[u] * r.next[u]
		}))

		// 3) Degeneracy guard, before any division.
		if numeric.Equal(r.length, zeroNormFloor, numeric.DefaultTolerance) {
			return nil, fmt.Errorf("%w: norm %g at iteration %d", ErrNumericalBreakdown, r.length, iter+1)
		}

		// 4) Normalize the fresh iterate.
		r.g.ParallelForNodes(func(u core.NodeID) {
			r.next[u] /= r.length
		})

		// 5) Convergence test. The norm-drift default compares scalar norms
		//    only; the residual variant measures the displacement between
		//    the normalized iterates held in next and prev.
		if r.residual {
			delta := math.Sqrt(r.g.ParallelSumForNodes(func(u core.NodeID) float64 {
				d := r.next[u] - r.prev[u]

				return d * d
			}))
			done = numeric.Equal(delta, 0.0, r.tol)
		} else {
			done = numeric.Equal(r.length, oldLength, r.tol)
		}

		// 6) Swap buffers; prev now holds the latest normalized iterate.
		r.prev, r.next = r.next, r.prev
		iter++

		if done {
			break
		}
		if r.maxIter > 0 && iter >= r.maxIter {
			return nil, fmt.Errorf("%w: %d iterations at tolerance %g", ErrConvergenceTimeout, iter, r.tol)
		}
	}

	out := make([]float64, len(r.prev))
	copy(out, r.prev)

	return out, nil
}

// canonicalizeSign flips the vector into the non-negative branch: when the
// anchor entry 0 is negative, every entry is replaced by its absolute
// value. Vectors whose anchor is non-negative pass through unchanged.
func canonicalizeSign(scores []float64) {
	if len(scores) == 0 || scores[0] >= 0 {
		return
	}
	for i := range scores {
		scores[i] = math.Abs(scores[i])
	}
}
