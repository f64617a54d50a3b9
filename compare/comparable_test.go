package compare_test

import (
	"math"
	"testing"

	"github.com/mossy2100/galaxon-core/assert"
	"github.com/mossy2100/galaxon-core/compare"
	"github.com/mossy2100/galaxon-core/errors"
	"github.com/mossy2100/galaxon-core/floats"
	"github.com/stretchr/testify/require"
)

// meters is an ApproxComparable length.
type meters float64

func (m meters) Compare(other any) (compare.Ordering, error) {
	o, err := assert.Type[meters](other)
	if err != nil {
		return compare.Equal, err
	}

	return compare.FromInt(floats.Compare(float64(m), float64(o))), nil
}

func (m meters) Equals(other any) bool {
	return compare.Equals(m, other)
}

func (m meters) ApproxEquals(other any, tol floats.Tolerance) bool {
	o, ok := other.(meters)

	return ok && tol.ApproxEqual(float64(m), float64(o))
}

// halfMeters counts in units of 0.5m and accepts meters as well.
type halfMeters float64

func (f halfMeters) CompatibleWith(other any) bool {
	switch other.(type) {
	case halfMeters, meters:
		return true
	default:
		return false
	}
}

func (f halfMeters) Compare(other any) (compare.Ordering, error) {
	switch o := other.(type) {
	case halfMeters:
		return compare.FromInt(floats.Compare(float64(f), float64(o))), nil
	case meters:
		return compare.FromInt(floats.Compare(float64(f)*0.5, float64(o))), nil
	default:
		return compare.Equal, errors.ErrIncompatibleType
	}
}

// sloppy returns a raw difference instead of a sentinel.
type sloppy int

func (s sloppy) Compare(other any) (compare.Ordering, error) {
	o, err := assert.Type[sloppy](other)
	if err != nil {
		return compare.Equal, err
	}

	return compare.Ordering(int(s) - int(o)), nil
}

// picky refuses to order negative values.
type picky int

var errNegative = errors.ErrIncompatibleType

func (p picky) Compare(other any) (compare.Ordering, error) {
	o, err := assert.Type[picky](other)
	if err != nil {
		return compare.Equal, err
	}

	if p < 0 || o < 0 {
		return compare.Equal, errNegative
	}

	return compare.FromInt(int(p) - int(o)), nil
}

// countingComparer records how often Compare runs.
type countingComparer struct {
	calls *int
}

func (c countingComparer) Compare(any) (compare.Ordering, error) {
	*c.calls++

	return compare.Equal, nil
}

var (
	_ compare.ApproxComparable = meters(0)
	_ compare.Comparer         = halfMeters(0)
	_ compare.Comparer         = sloppy(0)
)

func TestSameType(t *testing.T) {
	t.Parallel()

	require.True(t, compare.SameType(meters(1), meters(2)))
	require.False(t, compare.SameType(meters(1), 2.0))
	require.False(t, compare.SameType(meters(1), nil))
	require.False(t, compare.SameType(nil, meters(1)))
	require.True(t, compare.SameType(halfMeters(1), meters(1)))
	require.False(t, compare.SameType(meters(1), halfMeters(1)), "compatibility is declared by the receiver")
	require.False(t, compare.SameType(halfMeters(1), "1m"))

	m := meters(1)
	require.False(t, compare.SameType(m, &m))
}

func TestCheckSameType(t *testing.T) {
	t.Parallel()

	require.NoError(t, compare.CheckSameType(meters(1), meters(2)))

	err := compare.CheckSameType(meters(1), "one")
	require.ErrorIs(t, err, errors.ErrIncompatibleType)
	require.EqualError(t, err, "incompatible type: cannot compare compare_test.meters with string")
}

func TestEquals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        compare.Comparer
		b        any
		expected bool
	}{
		{name: "equal values", a: meters(3), b: meters(3), expected: true},
		{name: "different values", a: meters(3), b: meters(4), expected: false},
		{name: "signed zeros", a: meters(math.Copysign(0, -1)), b: meters(0), expected: true},
		{name: "incompatible type", a: meters(3), b: 3.0, expected: false},
		{name: "nil", a: meters(3), b: nil, expected: false},
		{name: "declared compatible", a: halfMeters(2), b: meters(1), expected: true},
		{name: "zero difference from sloppy comparator", a: sloppy(5), b: sloppy(5), expected: true},
		{name: "non-sentinel result is not equal", a: sloppy(5), b: sloppy(1), expected: false},
		{name: "comparator error degrades to false", a: picky(-1), b: picky(-1), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.NotPanics(t, func() {
				require.Equal(t, tt.expected, compare.Equals(tt.a, tt.b))
			})
		})
	}
}

func TestEquals_Symmetric(t *testing.T) {
	t.Parallel()

	values := []meters{-1, 0, 1, 1.5, 1e300}
	for _, a := range values {
		for _, b := range values {
			require.Equal(t, a.Equals(b), b.Equals(a), "%v %v", a, b)
		}

		require.True(t, a.Equals(a))
	}
}

func TestEquals_SkipsCompareOnMismatch(t *testing.T) {
	t.Parallel()

	calls := 0
	c := countingComparer{calls: &calls}

	require.False(t, compare.Equals(c, "other"))
	require.Equal(t, 0, calls)

	require.True(t, compare.Equals(c, countingComparer{calls: &calls}))
	require.Equal(t, 1, calls)
}

func TestCompare(t *testing.T) {
	t.Parallel()

	o, err := compare.Compare(meters(1), meters(2))
	require.NoError(t, err)
	require.Equal(t, compare.Less, o)

	o, err = compare.Compare(meters(2), meters(1))
	require.NoError(t, err)
	require.Equal(t, compare.Greater, o)

	_, err = compare.Compare(meters(1), 1)
	require.ErrorIs(t, err, errors.ErrIncompatibleType)

	_, err = compare.Compare(sloppy(9), sloppy(2))
	require.ErrorIs(t, err, errors.ErrInvalidOrdering)
	require.EqualError(t, err, "invalid ordering result: compare_test.sloppy.Compare returned 7")

	_, err = compare.Compare(picky(-1), picky(2))
	require.ErrorIs(t, err, errNegative)
}

func TestCompare_Antisymmetric(t *testing.T) {
	t.Parallel()

	values := []meters{meters(math.Inf(-1)), -2, 0, 0.5, 3, meters(math.Inf(1))}
	for _, a := range values {
		for _, b := range values {
			ab, err := compare.Compare(a, b)
			require.NoError(t, err)

			ba, err := compare.Compare(b, a)
			require.NoError(t, err)

			require.Equal(t, ab == compare.Less, ba == compare.Greater, "%v %v", a, b)
		}
	}
}

func TestRelationalOperators(t *testing.T) {
	t.Parallel()

	type op func(compare.Comparer, any) (bool, error)

	ops := map[string]op{
		"LessThan":           compare.LessThan,
		"LessThanOrEqual":    compare.LessThanOrEqual,
		"GreaterThan":        compare.GreaterThan,
		"GreaterThanOrEqual": compare.GreaterThanOrEqual,
	}

	expected := map[string][3]bool{
		// a < b, a == b, a > b
		"LessThan":           {true, false, false},
		"LessThanOrEqual":    {true, true, false},
		"GreaterThan":        {false, false, true},
		"GreaterThanOrEqual": {false, true, true},
	}

	for name, fn := range ops {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			want := expected[name]

			got, err := fn(meters(1), meters(2))
			require.NoError(t, err)
			require.Equal(t, want[0], got, "less")

			got, err = fn(meters(2), meters(2))
			require.NoError(t, err)
			require.Equal(t, want[1], got, "equal")

			got, err = fn(meters(3), meters(2))
			require.NoError(t, err)
			require.Equal(t, want[2], got, "greater")

			got, err = fn(meters(3), "three")
			require.ErrorIs(t, err, errors.ErrIncompatibleType)
			require.False(t, got)

			_, err = fn(sloppy(3), sloppy(1))
			require.ErrorIs(t, err, errors.ErrInvalidOrdering)

			_, err = fn(picky(-3), picky(1))
			require.ErrorIs(t, err, errNegative)
		})
	}
}

func TestApproxEquals(t *testing.T) {
	t.Parallel()

	tol := floats.DefaultTolerance()

	require.True(t, compare.ApproxEquals(meters(1), meters(1+floats.DefaultAbsoluteTolerance), tol))
	require.False(t, compare.ApproxEquals(meters(1), meters(1.1), tol))
	require.False(t, compare.ApproxEquals(meters(1), 1.0, tol))
	require.True(t, compare.ApproxEquals(meters(0), meters(0), floats.Exact()))
}

func TestApproxCompare(t *testing.T) {
	t.Parallel()

	const eps = floats.DefaultAbsoluteTolerance

	tol := floats.AbsoluteOnly(eps)

	t.Run("within tolerance is equal despite exact order", func(t *testing.T) {
		t.Parallel()

		exact, err := compare.Compare(meters(1), meters(1+eps))
		require.NoError(t, err)
		require.Equal(t, compare.Less, exact)

		o, err := compare.ApproxCompare(meters(1), meters(1+eps), tol)
		require.NoError(t, err)
		require.Equal(t, compare.Equal, o)
	})

	t.Run("outside tolerance falls back to exact", func(t *testing.T) {
		t.Parallel()

		for _, pair := range [][2]meters{{1, 1 + 2*eps}, {5, 4}, {-1, 1}} {
			exact, err := compare.Compare(pair[0], pair[1])
			require.NoError(t, err)

			o, err := compare.ApproxCompare(pair[0], pair[1], tol)
			require.NoError(t, err)
			require.Equal(t, exact, o)
		}
	})

	t.Run("incompatible type fails", func(t *testing.T) {
		t.Parallel()

		_, err := compare.ApproxCompare(meters(1), 1.0, tol)
		require.ErrorIs(t, err, errors.ErrIncompatibleType)
	})
}
