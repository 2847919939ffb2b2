// Package rng drives the true random number generator of the LPC55S6x.
//
// The driver is a state machine encoded in types. [Wrap] returns a [Disabled]
// handle, which can only be enabled or released. Only the [Enabled] handle
// provides random numbers, so reading from a peripheral with a gated clock
// doesn't compile. State transitions and Release consume their receiver: the
// old handle is cleared and using it again trips an assertion in debug builds.
package rng

import (
	"fmt"

	"github.com/lpc55go/hal/debug"
	"github.com/lpc55go/hal/raw"
	"github.com/lpc55go/hal/syscon"
)

// Clocks gates the clock of a peripheral. It's implemented by *syscon.Syscon.
type Clocks interface {
	EnableClock(p syscon.Gated)
	DisableClock(p syscon.Gated)
}

// Disabled is the RNG with its clock gated.
type Disabled struct {
	raw *raw.RNG
}

// Enabled is the RNG with a running clock.
type Enabled struct {
	raw *raw.RNG
}

// Wrap takes ownership of the RNG register block.
func Wrap(r *raw.RNG) Disabled {
	debug.Assert(r != nil, "rng: nil register block")
	return Disabled{r}
}

// Enabled ungates the RNG clock.
func (d *Disabled) Enabled(c Clocks) Enabled {
	r := d.take()
	c.EnableClock(r)
	return Enabled{r}
}

// Release returns the register block.
func (d *Disabled) Release() *raw.RNG {
	return d.take()
}

func (d *Disabled) take() *raw.RNG {
	debug.Assert(d.raw != nil, "rng: invalid handle")
	r := d.raw
	d.raw = nil
	return r
}

// Disabled gates the RNG clock.
func (e *Enabled) Disabled(c Clocks) Disabled {
	r := e.take()
	c.DisableClock(r)
	return Disabled{r}
}

// Release returns the register block. The clock is left running.
func (e *Enabled) Release() *raw.RNG {
	return e.take()
}

func (e *Enabled) take() *raw.RNG {
	debug.Assert(e.raw != nil, "rng: invalid handle")
	r := e.raw
	e.raw = nil
	return r
}

// ModuleID is the decoded content of the MODULEID register.
type ModuleID struct {
	ID       uint16
	MajRev   uint8
	MinRev   uint8
	Aperture uint8
}

func (id ModuleID) String() string {
	return fmt.Sprintf("%#04x rev %d.%d aperture %d", id.ID, id.MajRev, id.MinRev, id.Aperture)
}

// ModuleID identifies the RNG revision.
func (e Enabled) ModuleID() ModuleID {
	debug.Assert(e.raw != nil, "rng: invalid handle")
	v := e.raw.MODULEID.Load()
	return ModuleID{
		ID:       v.ID(),
		MajRev:   v.MajRev(),
		MinRev:   v.MinRev(),
		Aperture: v.Aperture(),
	}
}

// counterVal reads COUNTER_VAL. Tests replace it to model the hardware, so
// tests of this package must not run in parallel.
var counterVal = func(r *raw.RNG) raw.CounterVal {
	return r.COUNTER_VAL.Load()
}

// Uint32 returns a random word. The entropy register shifts in one bit per
// refresh, so the whole word is only fresh after 32 refreshes have been
// observed.
//
// Uint32 busy waits on the hardware and doesn't return if the RNG never
// refreshes, e.g. because its clock isn't actually running.
func (e Enabled) Uint32() uint32 {
	debug.Assert(e.raw != nil, "rng: invalid handle")
	for range 32 {
		for counterVal(e.raw)&raw.RefreshCnt == 0 {
		}
	}
	return e.raw.RANDOM_NUMBER.Load()
}

// Uint64 returns a random value built from two words, the first one in the
// upper half. It makes Enabled a math/rand/v2.Source.
func (e Enabled) Uint64() uint64 {
	hi := uint64(e.Uint32())
	return hi<<32 | uint64(e.Uint32())
}
