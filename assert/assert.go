// Package assert provides type assertions that report mismatches as
// errors.ErrIncompatibleType, and panicking invariant checks for programmer
// errors. Build with the assertions_disabled tag to compile the invariant
// checks away.
package assert

import (
	"fmt"

	"github.com/mossy2100/galaxon-core/errors"
)

// Type asserts that val is of type T. On mismatch it returns the zero T and
// an error wrapping errors.ErrIncompatibleType. Comparators use it to accept
// only their own type:
//
//	o, err := assert.Type[Version](other)
//	if err != nil {
//	    return compare.Equal, err
//	}
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %T, but received %T", errors.ErrIncompatibleType, of, val)
	}

	return of, nil
}

func failureMessage(args []any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
