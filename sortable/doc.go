// Package sortable provides wrapper types for primitive values that implement
// the capabilities of package compare, so they can be passed straight to
// compare.Sort, compare.Search, compare.Dedup and friends.
//
// # Overview
//
//   - [Int] and [Float] implement [compare.ApproxComparable]. They are
//     mutually compatible: an Int may be ordered against a Float and the
//     result is exact.
//   - [String] implements [compare.Comparable] with byte-wise ordering.
//
// # Usage
//
//	values := []sortable.Float{3.5, 1, 2.25}
//	if err := compare.Sort(values); err != nil {
//	    return err
//	}
//	// values: 1, 2.25, 3.5
//
//	tol := floats.DefaultTolerance()
//	sortable.Float(0.1 + 0.2).ApproxEquals(sortable.Float(0.3), tol) // true
//
// # Incompatible values
//
// Ordering a wrapper against anything it is not compatible with (including a
// plain int or float64) returns an error wrapping errors.ErrIncompatibleType.
// Equals and ApproxEquals return false instead.
//
// # Thread Safety
//
// The wrapper types are immutable values and safe for concurrent use.
package sortable
