// Package eigenvector defines the configuration surface and sentinel
// errors for eigenvector centrality.
//
// Options:
//
//	- Tolerance:           convergence tolerance (> 0, finite).
//	                       Default numeric.DefaultTolerance (1e-9).
//	- MaxIterations:       iteration cap; 0 means unbounded.
//	- ResidualConvergence: stop on the displacement between consecutive
//	                       normalized vectors instead of the norm drift.
//
// Errors (sentinel):
//
//	- ErrNilGraph           if the provided graph pointer is nil.
//	- ErrDirectedGraph      if the graph is directed.
//	- ErrBadTolerance       if Tolerance <= 0, NaN, or ±Inf.
//	- ErrBadMaxIterations   if MaxIterations < 0.
//	- ErrNumericalBreakdown if the iterate's norm collapses to zero.
//	- ErrConvergenceTimeout if MaxIterations is exhausted before convergence.
//	- ErrNotRun             if results are requested before a successful Run.
//	- ErrBadNode            if Score is asked for an ID outside the vector.
package eigenvector

import (
	"errors"

	"github.com/katalvlaran/lvlrank/core"
	"github.com/katalvlaran/lvlrank/numeric"
)

// Sentinel errors returned by the eigenvector centrality engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to New.
	ErrNilGraph = errors.New("eigenvector: graph is nil")

	// ErrDirectedGraph indicates the graph is directed. Eigenvector
	// centrality here is defined on undirected graphs only; directed input
	// is rejected, never approximated.
	ErrDirectedGraph = errors.New("eigenvector: directed graphs are not supported")

	// ErrBadTolerance indicates a non-positive, NaN, or infinite tolerance.
	ErrBadTolerance = errors.New("eigenvector: tolerance must be positive and finite")

	// ErrBadMaxIterations indicates a negative iteration cap.
	ErrBadMaxIterations = errors.New("eigenvector: MaxIterations must be non-negative")

	// ErrNumericalBreakdown indicates the iterate's norm collapsed to zero,
	// so no dominant direction exists (empty graph, all-zero weights, or
	// exact cancellation).
	ErrNumericalBreakdown = errors.New("eigenvector: vector norm collapsed to zero")

	// ErrConvergenceTimeout indicates the iteration cap was exhausted
	// before the convergence test passed.
	ErrConvergenceTimeout = errors.New("eigenvector: iteration cap exceeded before convergence")

	// ErrNotRun indicates results were requested before a successful Run.
	ErrNotRun = errors.New("eigenvector: results not available before Run")

	// ErrBadNode indicates Score was asked for an ID outside the published
	// score vector.
	ErrBadNode = errors.New("eigenvector: node outside the score vector")
)

// zeroNormFloor is the norm value treated as "collapsed to zero" by the
// breakdown guard; anything within numeric.DefaultTolerance of it is fatal.
const zeroNormFloor = 1e-16

// Options configures a Centrality engine.
//
// Tolerance           - convergence tolerance; must be positive and finite.
// MaxIterations       - hard cap on iterations. 0 (default) runs until the
//                       convergence test passes.
// ResidualConvergence - if true, converge when the L2 displacement between
//                       consecutive normalized vectors is within Tolerance.
//                       The default criterion compares only the norms of
//                       consecutive iterates, which is cheaper but accepts
//                       oscillating vectors (notably on bipartite graphs).
type Options struct {
	Tolerance           float64 // convergence tolerance
	MaxIterations       int     // 0 = unbounded
	ResidualConvergence bool    // vector displacement instead of norm drift
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithTolerance sets the convergence tolerance.
// Must be positive and finite; New rejects other values with ErrBadTolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		o.Tolerance = tol
	}
}

// WithMaxIterations caps the number of power iterations. Exhausting the cap
// fails the run with ErrConvergenceTimeout and publishes nothing.
// n must be non-negative; 0 removes the cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithResidualConvergence switches the stopping rule to the L2 displacement
// between consecutive normalized vectors. Use it together with
// WithMaxIterations on graphs where the iteration may oscillate.
func WithResidualConvergence() Option {
	return func(o *Options) {
		o.ResidualConvergence = true
	}
}

// RankEntry is one row of Ranking: a node and its centrality score.
type RankEntry struct {
	Node  core.NodeID // node ID
	Score float64     // centrality score of Node
}

// DefaultOptions returns the engine defaults: Tolerance 1e-9, no iteration
// cap, norm-drift convergence.
func DefaultOptions() Options {
	return Options{
		Tolerance:           numeric.DefaultTolerance,
		MaxIterations:       0,
		ResidualConvergence: false,
	}
}
