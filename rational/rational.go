// Package rational implements exact fractions of int64 values that order
// exactly by cross-multiplication and compare approximately through float64.
package rational

import (
	"fmt"
	"math"
	"math/big"

	"github.com/mossy2100/galaxon-core/assert"
	"github.com/mossy2100/galaxon-core/compare"
	"github.com/mossy2100/galaxon-core/errors"
	"github.com/mossy2100/galaxon-core/floats"
	"github.com/mossy2100/galaxon-core/integers"
)

// Rational is a fraction kept in lowest terms with a positive denominator.
// The zero value is 0/1.
type Rational struct {
	num int64
	den int64 // 0 means 1, so that Rational{} is usable
}

var _ compare.ApproxComparable = Rational{}

// Zero is 0/1.
var Zero = Rational{num: 0, den: 1}

// New returns num/den in lowest terms.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%w: %d/0", errors.ErrDivisionByZero, num)
	}

	if num == 0 {
		return Zero, nil
	}

	// Reduce on magnitudes so MinInt64 survives when it divides out.
	nu, du := magnitude(num), magnitude(den)
	g := gcd(nu, du)
	nu, du = nu/g, du/g

	n, ok := withSign(nu, (num < 0) != (den < 0))
	if !ok || du > math.MaxInt64 {
		return Rational{}, fmt.Errorf("%w: %d/%d", errors.ErrOverflow, num, den)
	}

	num, den = n, int64(du)

	assert.True(den > 0, "rational: non-positive denominator %d", den)

	return Rational{num: num, den: den}, nil
}

func magnitude(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}

	return uint64(x)
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func withSign(u uint64, negative bool) (int64, bool) {
	switch {
	case !negative && u <= math.MaxInt64:
		return int64(u), true
	case negative && u <= math.MaxInt64:
		return -int64(u), true
	case negative && u == 1<<63:
		return math.MinInt64, true
	default:
		return 0, false
	}
}

// MustNew is New for literals known to be valid. It panics otherwise.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInt returns n/1.
func FromInt(n int64) Rational {
	return Rational{num: n, den: 1}
}

func (r Rational) Num() int64 { return r.num }
func (r Rational) Den() int64 { return r.denom() }

// Float64 returns the nearest float64 to r.
func (r Rational) Float64() float64 {
	f, _ := r.big().Float64()

	return f
}

func (r Rational) String() string {
	if r.denom() == 1 {
		return fmt.Sprintf("%d", r.num)
	}

	return fmt.Sprintf("%d/%d", r.num, r.denom())
}

// Compare orders r and other exactly by cross-multiplication, falling back to
// arbitrary precision when the products overflow int64.
func (r Rational) Compare(other any) (compare.Ordering, error) {
	o, err := assert.Type[Rational](other)
	if err != nil {
		return compare.Equal, err
	}

	// Denominators are positive, so cross-multiplying keeps the direction.
	left, errL := integers.Mul(r.num, o.denom())
	right, errR := integers.Mul(o.num, r.denom())

	if errL != nil || errR != nil {
		return compare.FromInt(r.big().Cmp(o.big())), nil
	}

	switch {
	case left < right:
		return compare.Less, nil
	case left > right:
		return compare.Greater, nil
	default:
		return compare.Equal, nil
	}
}

// Equals reports whether other is the same fraction. Because both sides are
// normalised this is field equality.
func (r Rational) Equals(other any) bool {
	return compare.Equals(r, other)
}

// ApproxEquals compares the float64 values of r and other under tol.
func (r Rational) ApproxEquals(other any, tol floats.Tolerance) bool {
	o, ok := other.(Rational)

	return ok && tol.ApproxEqual(r.Float64(), o.Float64())
}

// Add returns r + o.
func (r Rational) Add(o Rational) (Rational, error) {
	a, err := integers.Mul(r.num, o.denom())
	if err != nil {
		return Rational{}, err
	}

	b, err := integers.Mul(o.num, r.denom())
	if err != nil {
		return Rational{}, err
	}

	num, err := integers.Add(a, b)
	if err != nil {
		return Rational{}, err
	}

	den, err := integers.Mul(r.denom(), o.denom())
	if err != nil {
		return Rational{}, err
	}

	return New(num, den)
}

// Neg returns -r.
func (r Rational) Neg() (Rational, error) {
	num, err := integers.Sub(0, r.num)
	if err != nil {
		return Rational{}, err
	}

	return Rational{num: num, den: r.denom()}, nil
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) (Rational, error) {
	neg, err := o.Neg()
	if err != nil {
		return Rational{}, err
	}

	return r.Add(neg)
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) (Rational, error) {
	num, err := integers.Mul(r.num, o.num)
	if err != nil {
		return Rational{}, err
	}

	den, err := integers.Mul(r.denom(), o.denom())
	if err != nil {
		return Rational{}, err
	}

	return New(num, den)
}

// Div returns r / o.
func (r Rational) Div(o Rational) (Rational, error) {
	if o.num == 0 {
		return Rational{}, fmt.Errorf("%w: %s / 0", errors.ErrDivisionByZero, r)
	}

	return r.Mul(Rational{num: o.denom(), den: o.num})
}

func (r Rational) big() *big.Rat {
	return new(big.Rat).SetFrac(big.NewInt(r.num), big.NewInt(r.denom()))
}

func (r Rational) denom() int64 {
	if r.den == 0 {
		return 1
	}

	return r.den
}
