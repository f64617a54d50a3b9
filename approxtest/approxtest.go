// Package approxtest provides testify-style assertions for approximate
// equality. On failure they report both values together with the absolute and
// relative differences and the tolerances they were checked against.
package approxtest

import (
	"fmt"

	"github.com/mossy2100/galaxon-core/compare"
	"github.com/mossy2100/galaxon-core/floats"
	"github.com/mossy2100/galaxon-core/stringify"
	"github.com/stretchr/testify/assert"
)

type tHelper interface {
	Helper()
}

// floater is satisfied by numeric value types such as sortable.Number and
// rational.Rational; their differences can be reported.
type floater interface {
	Float64() float64
}

// InTolerance asserts that actual is approximately equal to expected under tol.
//
//	approxtest.InTolerance(t, 0.3, a+b, floats.DefaultTolerance())
func InTolerance(t assert.TestingT, expected, actual float64, tol floats.Tolerance, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if tol.ApproxEqual(expected, actual) {
		return true
	}

	return assert.Fail(t, Diagnostic(expected, actual, tol), msgAndArgs...)
}

// ApproxEqualValues asserts that actual is compatible with expected and that
// expected.ApproxEquals(actual, tol) holds.
func ApproxEqualValues(
	t assert.TestingT,
	expected compare.ApproxEquatable,
	actual any,
	tol floats.Tolerance,
	msgAndArgs ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if compare.ApproxEquals(expected, actual, tol) {
		return true
	}

	var msg string

	e, eok := expected.(floater)
	a, aok := actual.(floater)

	if eok && aok {
		msg = fmt.Sprintf("expected %s to approximately equal %s. %s",
			stringify.Value(expected), stringify.Value(actual), differences(e.Float64(), a.Float64(), tol))
	} else {
		msg = fmt.Sprintf("expected %s to approximately equal %s (%s)",
			stringify.Value(expected), stringify.Value(actual), tol)
	}

	if !compare.SameType(expected, actual) {
		msg += fmt.Sprintf(": %T is not comparable with %T", actual, expected)
	}

	return assert.Fail(t, msg, msgAndArgs...)
}

// Diagnostic is the failure message InTolerance reports.
func Diagnostic(expected, actual float64, tol floats.Tolerance) string {
	return fmt.Sprintf("expected %s to approximately equal %s. %s",
		stringify.Float(expected), stringify.Float(actual), differences(expected, actual, tol))
}

func differences(expected, actual float64, tol floats.Tolerance) string {
	return fmt.Sprintf(
		"Absolute difference: %s (tolerance: %s) Relative difference: %s (tolerance: %s)",
		stringify.Float(floats.AbsoluteDifference(expected, actual)),
		stringify.Float(tol.Absolute),
		stringify.Float(floats.RelativeDifference(expected, actual)),
		stringify.Float(tol.Relative),
	)
}
