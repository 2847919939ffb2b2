package rng

import "github.com/lpc55go/hal/raw"

// SetCounterVal replaces the COUNTER_VAL read until restore is called. The
// replacement is package global: tests calling it must not use t.Parallel.
func SetCounterVal(f func(*raw.RNG) raw.CounterVal) (restore func()) {
	old := counterVal
	counterVal = f
	return func() { counterVal = old }
}
