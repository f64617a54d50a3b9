// Package compare defines the equality and ordering capabilities a value type
// can opt into, and implements the derived operators once, as free functions
// over the minimal method each capability requires.
//
// The capabilities compose as Equatable -> {Comparable, ApproxEquatable} ->
// ApproxComparable. Operations named after equality (Equals, ApproxEquals)
// never fail: values of incompatible types are simply unequal. Ordering
// operations (Compare, LessThan, ..., ApproxCompare) return an error wrapping
// errors.ErrIncompatibleType instead, because ordering against an
// incomparable value is meaningless.
//
// A typical implementation supplies Compare and delegates Equals:
//
//	func (v Version) Compare(other any) (compare.Ordering, error) {
//	    o, err := assert.Type[Version](other)
//	    if err != nil {
//	        return compare.Equal, err
//	    }
//	    ...
//	}
//
//	func (v Version) Equals(other any) bool {
//	    return compare.Equals(v, other)
//	}
//
// None of the operations mutate their operands, so values may be compared
// from any number of goroutines at once.
package compare

import (
	"fmt"
	"reflect"

	"github.com/mossy2100/galaxon-core/errors"
	"github.com/mossy2100/galaxon-core/floats"
)

// Equatable is the root capability: exact equality against an arbitrary
// value. Equals must return false, never panic, when other has an
// incompatible type.
type Equatable interface {
	Equals(other any) bool
}

// Comparer is the single primitive behind Comparable. Compare may return an
// error wrapping errors.ErrIncompatibleType when other cannot be ordered
// relative to the receiver.
type Comparer interface {
	Compare(other any) (Ordering, error)
}

// Comparable is a type with a total order that also reports equality.
// Implementations usually derive Equals from Compare with the Equals function.
type Comparable interface {
	Equatable
	Comparer
}

// ApproxEquatable is a type that supports both exact and tolerance-based
// equality. ApproxEquals must return false for incompatible types. Composite
// values should be approximately equal only when every component is.
type ApproxEquatable interface {
	Equatable
	ApproxEquals(other any, tol floats.Tolerance) bool
}

// ApproxComparer is the pair of primitives ApproxCompare needs.
type ApproxComparer interface {
	Comparer
	ApproxEquals(other any, tol floats.Tolerance) bool
}

// ApproxComparable composes Comparable and ApproxEquatable.
type ApproxComparable interface {
	Comparable
	ApproxEquatable
}

// Compatible lets a type widen or narrow what it may be compared with.
// Without it, two values are compatible when their dynamic types are identical.
type Compatible interface {
	CompatibleWith(other any) bool
}

// SameType reports whether self may be compared with other. It is the single
// source of truth used by every derived operator.
func SameType(self, other any) bool {
	if c, ok := self.(Compatible); ok {
		return c.CompatibleWith(other)
	}

	if self == nil || other == nil {
		return false
	}

	return reflect.TypeOf(self) == reflect.TypeOf(other)
}

// CheckSameType is SameType expressed as an error wrapping
// errors.ErrIncompatibleType.
func CheckSameType(self, other any) error {
	if SameType(self, other) {
		return nil
	}

	return fmt.Errorf("%w: cannot compare %T with %T", errors.ErrIncompatibleType, self, other)
}

// Equals reports whether other is compatible with a and a.Compare(other) is
// Equal. Type mismatches, comparator errors and invalid orderings all yield
// false.
func Equals(a Comparer, other any) bool {
	if !SameType(a, other) {
		return false
	}

	o, err := a.Compare(other)

	return err == nil && o == Equal
}

// Compare checks compatibility, then calls a.Compare(other) and verifies the
// result is one of the three sentinels.
func Compare(a Comparer, other any) (Ordering, error) {
	if err := CheckSameType(a, other); err != nil {
		return Equal, err
	}

	o, err := a.Compare(other)
	if err != nil {
		return Equal, err
	}

	if !o.Valid() {
		return Equal, fmt.Errorf("%w: %T.Compare returned %d", errors.ErrInvalidOrdering, a, int(o))
	}

	return o, nil
}

// LessThan reports whether a orders before other.
func LessThan(a Comparer, other any) (bool, error) {
	o, err := Compare(a, other)
	if err != nil {
		return false, err
	}

	return o == Less, nil
}

// LessThanOrEqual is the negation of GreaterThan.
func LessThanOrEqual(a Comparer, other any) (bool, error) {
	gt, err := GreaterThan(a, other)
	if err != nil {
		return false, err
	}

	return !gt, nil
}

// GreaterThan reports whether a orders after other.
func GreaterThan(a Comparer, other any) (bool, error) {
	o, err := Compare(a, other)
	if err != nil {
		return false, err
	}

	return o == Greater, nil
}

// GreaterThanOrEqual is the negation of LessThan.
func GreaterThanOrEqual(a Comparer, other any) (bool, error) {
	lt, err := LessThan(a, other)
	if err != nil {
		return false, err
	}

	return !lt, nil
}

// ApproxEquals is a convenience wrapper that also enforces compatibility
// before calling a.ApproxEquals, so implementations may skip their own check.
func ApproxEquals(a ApproxEquatable, other any, tol floats.Tolerance) bool {
	return SameType(a, other) && a.ApproxEquals(other, tol)
}

// ApproxCompare returns Equal when a and other are approximately equal under
// tol, and the exact Compare result otherwise. Incompatible types are an
// error, as for the other ordering operators.
//
// Values within tolerance collapse into one equivalence class, but the
// relation is not transitive: a may be close to b and b close to c while a
// and c are further apart than tol. Sorting with ApproxCompare therefore does
// not produce a consistent total order across chains of close values.
func ApproxCompare(a ApproxComparer, other any, tol floats.Tolerance) (Ordering, error) {
	if err := CheckSameType(a, other); err != nil {
		return Equal, err
	}

	if a.ApproxEquals(other, tol) {
		return Equal, nil
	}

	return Compare(a, other)
}
