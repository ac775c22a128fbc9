// Package mask provides helpers for treating integers as sets of bit
// flags.
//
// The functions are generic, so they work just as well with named
// flag types as with plain integers:
//
//	type Perm uint8
//
//	const (
//		PermRead Perm = 1 << iota
//		PermWrite
//	)
//
//	mask.Contains(p, PermRead|PermWrite)
package mask

import "deedles.dev/xmath"

// Inverse returns m with every bit flipped.
func Inverse[T xmath.Integer](m T) T {
	return ^m
}

// Add returns m with the bits of flags set.
func Add[T xmath.Integer](m, flags T) T {
	return m | flags
}

// Remove returns m with the bits of flags cleared.
func Remove[T xmath.Integer](m, flags T) T {
	return m &^ flags
}

// Contains reports whether every bit of flags is set in m.
func Contains[T xmath.Integer](m, flags T) bool {
	return m&flags == flags
}

// ContainsAny reports whether at least one bit of flags is set in m.
func ContainsAny[T xmath.Integer](m, flags T) bool {
	return m&flags != 0
}
