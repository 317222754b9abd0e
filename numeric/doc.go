// Package numeric provides the tolerance-based float comparisons shared by
// the lvlrank algorithms and their tests.
//
// What
//
//   - Equal(a, b, tol) reports |a-b| <= tol. The comparison is absolute,
//     not relative; every caller in this module relies on that reading.
//   - Le / Ge are the one-sided variants.
//   - DefaultTolerance (1e-9) is the module-wide default, used by the
//     centrality convergence tests and by the test suites as the assertion
//     delta.
//
// Why
//
//	Iterative numeric algorithms never compare floats with ==. Keeping the
//	oracle in one package keeps every convergence check and every test
//	assertion on the same semantics.
//
// Usage
//
//	if numeric.Equal(length, oldLength, numeric.DefaultTolerance) {
//	    // converged
//	}
package numeric
