// Package numeric implements absolute-tolerance float comparisons.
package numeric

import "math"

// DefaultTolerance is the module-wide comparison tolerance.
const DefaultTolerance = 1e-9

// Equal reports whether a and b differ by at most tol: |a-b| <= tol.
// The comparison is absolute. A NaN operand or a negative/NaN tol yields
// false.
func Equal(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// Le reports whether a <= b within tol: a-b <= tol.
func Le(a, b, tol float64) bool {
	return a-b <= tol
}

// Ge reports whether a >= b within tol: b-a <= tol.
func Ge(a, b, tol float64) bool {
	return b-a <= tol
}
