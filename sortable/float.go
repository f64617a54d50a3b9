package sortable

import (
	"math"

	"github.com/mossy2100/galaxon-core/assert"
	"github.com/mossy2100/galaxon-core/compare"
	"github.com/mossy2100/galaxon-core/floats"
)

// Float is a comparable wrapper for float64 that also supports approximate
// comparison. It orders against both Float and Int.
//
// NaN has no place in the order: Compare returns an error wrapping
// errors.ErrIncompatibleType when either side is NaN, and therefore a NaN
// Float is never Equals to anything.
type Float float64

// Float64 returns f as a float64.
func (f Float) Float64() float64 {
	return float64(f)
}

// CompatibleWith accepts Int and Float.
func (f Float) CompatibleWith(other any) bool {
	return numberCompatible(other)
}

// Compare orders f against a Float or an Int. -0 and +0 are Equal.
func (f Float) Compare(other any) (compare.Ordering, error) {
	switch o := other.(type) {
	case Float:
		if math.IsNaN(float64(f)) || math.IsNaN(float64(o)) {
			return compare.Equal, errNaN
		}

		return compare.FromInt(floats.Compare(float64(f), float64(o))), nil
	case Int:
		ord, err := compareIntFloat(int64(o), float64(f))

		return ord.Reverse(), err
	default:
		_, err := assert.Type[Float](other)

		return compare.Equal, err
	}
}

// Equals reports whether other is numerically equal to f.
func (f Float) Equals(other any) bool {
	return compare.Equals(f, other)
}

// ApproxEquals compares f with a Float or an Int under tol.
func (f Float) ApproxEquals(other any, tol floats.Tolerance) bool {
	switch o := other.(type) {
	case Float:
		return tol.ApproxEqual(float64(f), float64(o))
	case Int:
		return tol.ApproxEqual(float64(f), float64(o))
	default:
		return false
	}
}
