//go:build !debug

// Package debug provides assertions for invariants the type system can't
// express, e.g. the use of a driver handle after it was converted into another
// state. They are checked in builds with the debug tag and compile to nothing
// otherwise.
package debug

// Enabled reports whether assertions are checked. Guard assertions whose
// condition is expensive or could panic itself with `if debug.Enabled {...}`.
const Enabled = false

// Assert panics with message if b is false.
func Assert(b bool, message string) {}
