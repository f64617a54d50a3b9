// Package errors holds the sentinel errors shared by the galaxon-core packages
// and a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrIncompatibleType is returned when ordering is attempted between values
	// whose types cannot be meaningfully compared.
	ErrIncompatibleType = errors.New("incompatible type")

	// ErrInvalidOrdering is returned when a comparator yields something other
	// than one of the three ordering sentinels.
	ErrInvalidOrdering = errors.New("invalid ordering result")

	// ErrInvalidTolerance is returned for negative or NaN tolerance components.
	ErrInvalidTolerance = errors.New("invalid tolerance")

	ErrOverflow       = errors.New("integer overflow")
	ErrDivisionByZero = errors.New("division by zero")
	ErrEmpty          = errors.New("empty input")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when several independent checks should be reported together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
