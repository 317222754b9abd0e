// Package lvlrank is your in-memory toolkit for scoring node importance
// on weighted graphs, with parallel power iteration for eigenvector
// centrality at its heart.
//
// 🚀 What is lvlrank?
//
//	A thread-safe, dense-index graph library built for spectral ranking:
//		• Core primitives: dense node IDs, weighted edges, safe mutation under locks
//		• Parallel iteration: per-node fan-out and sum reductions with barrier semantics
//		• Eigenvector centrality: power iteration with pluggable stopping rules
//		• Rankings: ordered score tables with deterministic tie-breaks
//
// ✨ Why choose lvlrank?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, sentinel errors, no partial results
//   - Pure Go – no cgo, no hidden deps
//   - Tunable – tolerance, iteration caps, residual convergence, parallelism degree
//
// Under the hood, everything is organized under three subpackages:
//
//	core/        — the Graph type: dense IDs, weighted edges & parallel primitives
//	numeric/     — tolerance-based float comparisons shared by algorithms and tests
//	eigenvector/ — the centrality engine: New → Run → Scores/Ranking
//
// Quick ASCII example:
//
//	    1   2
//	     \ /
//	  0───C───3
//
//	a star: the center C outranks every leaf, the leaves tie.
//
// Dive into the per-package docs for tutorials, complexity notes, and the
// full error contracts.
//
//	go get github.com/katalvlaran/lvlrank
package lvlrank
