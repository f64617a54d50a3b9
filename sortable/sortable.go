package sortable

import (
	"fmt"
	"math"

	"github.com/mossy2100/galaxon-core/compare"
	"github.com/mossy2100/galaxon-core/errors"
)

// Sortable is implemented by every wrapper in this package.
type Sortable interface {
	compare.Comparable
}

// Number is implemented by Int and Float, which are mutually comparable.
type Number interface {
	compare.ApproxComparable
	Float64() float64
}

var (
	_ Sortable = String("")
	_ Number   = Int(0)
	_ Number   = Float(0)
)

// numberCompatible reports whether other is an Int or a Float.
func numberCompatible(other any) bool {
	switch other.(type) {
	case Int, Float:
		return true
	default:
		return false
	}
}

// compareIntFloat orders an integer against a float without rounding the
// integer through float64.
func compareIntFloat(i int64, f float64) (compare.Ordering, error) {
	if math.IsNaN(f) {
		return compare.Equal, errNaN
	}

	// Float64 bounds of int64: -2^63 is exact, 2^63 is one past the max.
	const limit = 0x1p63

	switch {
	case f >= limit:
		return compare.Less, nil
	case f < -limit:
		return compare.Greater, nil
	}

	whole := math.Trunc(f)
	wi := int64(whole)

	switch {
	case i < wi:
		return compare.Less, nil
	case i > wi:
		return compare.Greater, nil
	case f > whole:
		return compare.Less, nil
	case f < whole:
		return compare.Greater, nil
	default:
		return compare.Equal, nil
	}
}

var errNaN = fmt.Errorf("%w: NaN has no position in the order", errors.ErrIncompatibleType)
