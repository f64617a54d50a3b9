package sortable

import (
	"cmp"

	"github.com/mossy2100/galaxon-core/assert"
	"github.com/mossy2100/galaxon-core/compare"
	"github.com/mossy2100/galaxon-core/floats"
)

// Int is a comparable wrapper for the built-in int type. It orders against
// both Int and Float; comparisons with a Float are exact, without rounding the
// integer through float64.
//
//	sortable.Int(3).Compare(sortable.Float(3.5)) // compare.Less
//
// To convert back, use a type conversion: int(sortable.Int(42)).
type Int int

// Float64 returns i as a float64.
func (i Int) Float64() float64 {
	return float64(i)
}

// CompatibleWith accepts Int and Float.
func (i Int) CompatibleWith(other any) bool {
	return numberCompatible(other)
}

// Compare orders i against an Int or a Float. A NaN Float is incompatible.
func (i Int) Compare(other any) (compare.Ordering, error) {
	switch o := other.(type) {
	case Int:
		return compare.FromInt(cmp.Compare(i, o)), nil
	case Float:
		return compareIntFloat(int64(i), float64(o))
	default:
		_, err := assert.Type[Int](other)

		return compare.Equal, err
	}
}

// Equals reports whether other is numerically equal to i.
func (i Int) Equals(other any) bool {
	return compare.Equals(i, other)
}

// ApproxEquals compares i with an Int or a Float as float64 values under tol.
func (i Int) ApproxEquals(other any, tol floats.Tolerance) bool {
	switch o := other.(type) {
	case Int:
		return i == o || tol.ApproxEqual(float64(i), float64(o))
	case Float:
		return tol.ApproxEqual(float64(i), float64(o))
	default:
		return false
	}
}
