//go:build !assertions_disabled

package assert

// True panics unless value is true.
// If the first arg is a string it is used as a format string for the rest;
// otherwise all args are included in the panic message.
func True(value bool, args ...any) {
	if !value {
		panic(failureMessage(args))
	}
}
