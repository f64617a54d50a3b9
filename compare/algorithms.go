package compare

import (
	"slices"

	"github.com/mossy2100/galaxon-core/errors"
	"github.com/mossy2100/galaxon-core/floats"
	"github.com/mossy2100/galaxon-core/zero"
)

// Sort sorts values in ascending order, keeping equal elements in their
// original order. The first comparison error stops further reordering and is
// returned; the slice may then be partially sorted.
func Sort[T Comparer](values []T) error {
	return sortWith(values, func(a, b T) (Ordering, error) {
		return Compare(a, b)
	})
}

// SortApprox sorts values using ApproxCompare, so elements within tol of each
// other keep their original relative order. Because approximate equality is
// not transitive the result is only guaranteed to be ordered between
// neighbours that are not approximately equal.
func SortApprox[T ApproxComparer](values []T, tol floats.Tolerance) error {
	return sortWith(values, func(a, b T) (Ordering, error) {
		return ApproxCompare(a, b, tol)
	})
}

func sortWith[T any](values []T, cmp func(a, b T) (Ordering, error)) error {
	var firstErr error

	slices.SortStableFunc(values, func(a, b T) int {
		if firstErr != nil {
			return 0
		}

		o, err := cmp(a, b)
		if err != nil {
			firstErr = err

			return 0
		}

		return int(o)
	})

	return firstErr
}

// Min returns the first smallest element of values.
func Min[T Comparer](values []T) (T, error) { //nolint:ireturn
	return extreme(values, Less)
}

// Max returns the first largest element of values.
func Max[T Comparer](values []T) (T, error) { //nolint:ireturn
	return extreme(values, Greater)
}

func extreme[T Comparer](values []T, want Ordering) (T, error) { //nolint:ireturn
	if len(values) == 0 {
		return zero.Value[T](), errors.ErrEmpty
	}

	best := values[0]

	for _, v := range values[1:] {
		o, err := Compare(v, best)
		if err != nil {
			return zero.Value[T](), err
		}

		if o == want {
			best = v
		}
	}

	return best, nil
}

// Search finds target in values, which must already be sorted ascending.
// It returns the position where target is or would be inserted, and whether
// it was found.
func Search[T Comparer](sorted []T, target any) (int, bool, error) {
	var firstErr error

	idx, found := slices.BinarySearchFunc(sorted, target, func(elem T, target any) int {
		if firstErr != nil {
			return 0
		}

		o, err := Compare(elem, target)
		if err != nil {
			firstErr = err

			return 0
		}

		return int(o)
	})
	if firstErr != nil {
		return 0, false, firstErr
	}

	return idx, found, nil
}

// Dedup returns the elements of values with later duplicates removed.
// The input is not modified.
func Dedup[T Equatable](values []T) []T {
	return dedupWith(values, func(a, b T) bool {
		return a.Equals(b)
	})
}

// DedupApprox is Dedup with approximate equality: an element is dropped when
// it is within tol of an element already kept.
func DedupApprox[T ApproxEquatable](values []T, tol floats.Tolerance) []T {
	return dedupWith(values, func(a, b T) bool {
		return a.ApproxEquals(b, tol)
	})
}

func dedupWith[T any](values []T, same func(a, b T) bool) []T {
	out := make([]T, 0, len(values))

	for _, v := range values {
		if !slices.ContainsFunc(out, func(kept T) bool { return same(kept, v) }) {
			out = append(out, v)
		}
	}

	return out
}
