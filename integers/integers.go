// Package integers provides overflow-checked arithmetic for signed integer
// types, plus GCD and LCM built on it. Every function returns an error
// wrapping errors.ErrOverflow rather than silently wrapping around.
package integers

import (
	"fmt"

	"github.com/mossy2100/galaxon-core/errors"
)

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

func overflow[T Signed](op string, a, b T) error {
	return fmt.Errorf("%w: %d %s %d", errors.ErrOverflow, a, op, b)
}

// Add returns a + b.
func Add[T Signed](a, b T) (T, error) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, overflow("+", a, b)
	}

	return c, nil
}

// Sub returns a - b.
func Sub[T Signed](a, b T) (T, error) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, overflow("-", a, b)
	}

	return c, nil
}

// Mul returns a * b.
func Mul[T Signed](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	// The most negative value is the only one equal to its own negation;
	// multiplying it by -1 wraps, and the division check below cannot see it.
	if (a == -1 && isMin(b)) || (b == -1 && isMin(a)) {
		return 0, overflow("*", a, b)
	}

	c := a * b
	if c/b != a {
		return 0, overflow("*", a, b)
	}

	return c, nil
}

// Abs returns |a|. The most negative value of T has no positive counterpart.
func Abs[T Signed](a T) (T, error) {
	if a >= 0 {
		return a, nil
	}

	if isMin(a) {
		return 0, fmt.Errorf("%w: |%d|", errors.ErrOverflow, a)
	}

	return -a, nil
}

// GCD returns the greatest common divisor of a and b, always non-negative.
// GCD(0, 0) is 0.
func GCD[T Signed](a, b T) (T, error) {
	for b != 0 {
		a, b = b, a%b
	}

	return Abs(a)
}

// LCM returns the least common multiple of a and b, always non-negative.
// LCM(x, 0) is 0.
func LCM[T Signed](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	g, err := GCD(a, b)
	if err != nil {
		return 0, err
	}

	m, err := Mul(a/g, b)
	if err != nil {
		return 0, err
	}

	return Abs(m)
}

func isMin[T Signed](a T) bool {
	return a < 0 && -a < 0
}
