package raw

import "golang.org/x/exp/constraints"

// Field returns the width bits wide field of v starting at bit shift.
func Field[T constraints.Unsigned](v T, shift, width uint) T {
	return v >> shift & (1<<width - 1)
}

// WithField returns v with the width bits wide field at shift replaced by x.
// Bits of x beyond width are dropped.
func WithField[T constraints.Unsigned](v T, shift, width uint, x T) T {
	mask := T(1<<width-1) << shift
	return v&^mask | x<<shift&mask
}
