// Package floats provides the floating-point primitives the comparison
// capabilities are built on: combined absolute/relative approximate equality,
// a total three-way comparison, and ULP helpers.
//
// Every function here is pure and safe for concurrent use.
package floats

import "math"

const (
	// DefaultRelativeTolerance is the relative tolerance used when callers
	// have no better figure for the magnitude of their rounding error.
	DefaultRelativeTolerance = 1e-9

	// DefaultAbsoluteTolerance is the gap between 1.0 and the next larger
	// float64 (machine epsilon, 2^-52).
	DefaultAbsoluteTolerance = 0x1p-52
)

// ApproxEqual reports whether |a - b| <= max(relTol * max(|a|, |b|), absTol).
//
// A relTol of 0 makes the check purely absolute; an absTol of 0 makes it
// purely relative. Negative or NaN tolerances are treated as 0.
//
// Non-finite inputs: NaN is never approximately equal to anything, itself
// included. +Inf is approximately equal only to +Inf, and -Inf only to -Inf.
func ApproxEqual(a, b, relTol, absTol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}

	// Covers equal infinities and signed zeros.
	if a == b {
		return true
	}

	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	relTol = nonNegative(relTol)
	absTol = nonNegative(absTol)

	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))

	return diff <= math.Max(relTol*scale, absTol)
}

// Compare returns -1, 0 or 1 as a is less than, equal to, or greater than b.
//
// Finite values and infinities follow IEEE ordering, so -0 and +0 compare
// equal. To keep the order total, NaN sorts after +Inf and compares equal to
// any other NaN.
func Compare(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)

	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ApproxCompare returns 0 when a and b are approximately equal under the
// given tolerances, and Compare(a, b) otherwise.
func ApproxCompare(a, b, relTol, absTol float64) int {
	if ApproxEqual(a, b, relTol, absTol) {
		return 0
	}

	return Compare(a, b)
}

// AbsoluteDifference returns |a - b|.
func AbsoluteDifference(a, b float64) float64 {
	return math.Abs(a - b)
}

// RelativeDifference returns |a - b| / max(|a|, |b|), or 0 when both are zero.
func RelativeDifference(a, b float64) float64 {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale == 0 {
		return 0
	}

	return math.Abs(a-b) / scale
}

// ULP returns the unit in the last place of x: the gap between |x| and the
// next representable float64 of larger magnitude. For math.MaxFloat64 the gap
// below is used. ULP(NaN) is NaN and ULP(±Inf) is +Inf.
func ULP(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case math.IsInf(x, 0):
		return math.Inf(1)
	}

	x = math.Abs(x)
	if x == math.MaxFloat64 {
		return x - math.Nextafter(x, 0)
	}

	return math.Nextafter(x, math.Inf(1)) - x
}

// NextUp returns the smallest float64 greater than x.
func NextUp(x float64) float64 {
	return math.Nextafter(x, math.Inf(1))
}

// NextDown returns the largest float64 less than x.
func NextDown(x float64) float64 {
	return math.Nextafter(x, math.Inf(-1))
}

// IsNegativeZero reports whether x is -0.
func IsNegativeZero(x float64) bool {
	return x == 0 && math.Signbit(x)
}

// IsSpecial reports whether x is NaN or an infinity.
func IsSpecial(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// Sign returns -1, 0 or 1. Both zeros and NaN yield 0.
func Sign(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

func nonNegative(tol float64) float64 {
	if tol > 0 {
		return tol
	}

	return 0
}
