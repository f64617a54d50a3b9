package compare

import "fmt"

// Ordering is the result of a three-way comparison. Comparators must return
// exactly one of Less, Equal or Greater; any other value is a contract
// violation and is reported as errors.ErrInvalidOrdering by the derived
// operators.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// FromInt normalises the sign of n into an Ordering. Use it to adapt
// comparators such as strings.Compare or cmp.Compare.
func FromInt(n int) Ordering {
	switch {
	case n < 0:
		return Less
	case n > 0:
		return Greater
	default:
		return Equal
	}
}

// Valid reports whether o is one of the three sentinels.
func (o Ordering) Valid() bool {
	return o == Less || o == Equal || o == Greater
}

// Reverse swaps Less and Greater.
func (o Ordering) Reverse() Ordering {
	return -o
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}
