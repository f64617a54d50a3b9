// Package zero provides the zero value of a generic type parameter.
package zero

// Value returns the zero value for type T. Generic functions use it for the
// value half of an error return.
//
//	var n = zero.Value[int]()       // 0
//	var v = zero.Value[*Version]()  // nil
func Value[T any]() T { //nolint:ireturn
	var zeroVal T

	return zeroVal
}
