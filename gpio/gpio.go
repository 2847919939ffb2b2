// Package gpio drives the general purpose I/O ports.
//
// Like package rng, the port block has a [Disabled] and an [Enabled] state.
// The enabled block hands out pins, which only contain proxies of the
// registers they use and can be moved to wherever they are needed
// independently of each other and of the block.
//
// Configuring a pin selects its GPIO function and enables its digital input
// buffer in IOCON, without which the PIN register reads the pin as low. The
// IOCON clock is ungated together with the ports.
//
// Each pin must only be handed out once. Two pins for the same port and bit
// would modify the same register bits without any coordination. Transitions
// and Release clear the handle they are called on, using it again trips an
// assertion in debug builds.
package gpio

import (
	"embedded/mmio"

	"github.com/lpc55go/hal/debug"
	"github.com/lpc55go/hal/raw"
	"github.com/lpc55go/hal/reg"
	"github.com/lpc55go/hal/syscon"
)

//go:generate go run ../reg/mkreg.go -cluster dirSetRegs mmio.U32 raw.GPIOBlock DIRSET
//go:generate go run ../reg/mkreg.go -cluster dirClrRegs mmio.U32 raw.GPIOBlock DIRCLR
//go:generate go run ../reg/mkreg.go -cluster setRegs mmio.U32 raw.GPIOBlock SET
//go:generate go run ../reg/mkreg.go -cluster clrRegs mmio.U32 raw.GPIOBlock CLR
//go:generate go run ../reg/mkreg.go -cluster notRegs mmio.U32 raw.GPIOBlock NOT
//go:generate go run ../reg/mkreg.go -cluster pinRegs mmio.U32 raw.GPIOBlock PIN
//go:generate go run ../reg/mkreg.go -cluster ioconRegs [32]mmio.U32 raw.IOCONBlock PIO

// Clocks gates the clock of a peripheral. It's implemented by *syscon.Syscon.
type Clocks interface {
	EnableClock(p syscon.Gated)
	DisableClock(p syscon.Gated)
}

// Disabled is the GPIO block with the clocks of all ports gated.
type Disabled struct {
	raw *raw.GPIO
}

// Enabled is the GPIO block with the clocks of all ports running.
type Enabled struct {
	raw *raw.GPIO
}

// Wrap takes ownership of the GPIO register block.
func Wrap(g *raw.GPIO) Disabled {
	debug.Assert(g != nil, "gpio: nil register block")
	return Disabled{g}
}

// Enabled ungates the clocks of both ports and of IOCON.
func (d *Disabled) Enabled(c Clocks) Enabled {
	g := d.take()
	c.EnableClock(raw.IOCONBlock())
	c.EnableClock(g)
	return Enabled{g}
}

// Release returns the register block.
func (d *Disabled) Release() *raw.GPIO { return d.take() }

func (d *Disabled) take() *raw.GPIO {
	debug.Assert(d.raw != nil, "gpio: invalid handle")
	g := d.raw
	d.raw = nil
	return g
}

// Disabled gates the port clocks. Pins handed out before stop working but
// keep their configuration. IOCON keeps running, other peripherals may depend
// on its pin functions.
func (e *Enabled) Disabled(c Clocks) Disabled {
	g := e.take()
	c.DisableClock(g)
	return Disabled{g}
}

// Release returns the register block. The clocks are left running.
func (e *Enabled) Release() *raw.GPIO { return e.take() }

func (e *Enabled) take() *raw.GPIO {
	debug.Assert(e.raw != nil, "gpio: invalid handle")
	g := e.raw
	e.raw = nil
	return g
}

// The zero sized proxies come first, a trailing one would be padded.
type pin struct {
	dirSet reg.ClusterProxy[dirSetRegs, mmio.U32]
	dirClr reg.ClusterProxy[dirClrRegs, mmio.U32]
	level  reg.ClusterProxy[pinRegs, mmio.U32]
	iocon  reg.ClusterProxy[ioconRegs, [32]mmio.U32]

	port, bit uint8
}

func newPin(port, bit int) pin {
	debug.Assert(port >= 0 && port < raw.GPIOPorts, "gpio: invalid port")
	debug.Assert(bit >= 0 && bit < 32, "gpio: invalid pin")
	return pin{port: uint8(port), bit: uint8(bit)}
}

func (p pin) mask() uint32 { return 1 << p.bit }

// Port returns the port and bit number of the pin.
func (p pin) Port() (port, bit int) { return int(p.port), int(p.bit) }

// digital selects the GPIO function and enables the input buffer.
func (p pin) digital() {
	p.iocon.Index(int(p.port))[p.bit].StoreBits(raw.Func|raw.DigiMode, raw.DigiMode)
}

// IsHigh reports the level at the pin.
func (p pin) IsHigh() bool {
	return p.level.Index(int(p.port)).LoadBits(p.mask()) != 0
}

// Output is a pin configured as push-pull output.
type Output struct {
	set reg.ClusterProxy[setRegs, mmio.U32]
	clr reg.ClusterProxy[clrRegs, mmio.U32]
	not reg.ClusterProxy[notRegs, mmio.U32]

	pin
}

// Input is a pin configured as input.
type Input struct {
	pin
}

// Output configures bit of port as output.
func (e Enabled) Output(port, bit int) Output {
	debug.Assert(e.raw != nil, "gpio: invalid handle")
	return newPin(port, bit).output()
}

// Input configures bit of port as input.
func (e Enabled) Input(port, bit int) Input {
	debug.Assert(e.raw != nil, "gpio: invalid handle")
	return newPin(port, bit).input()
}

func (p pin) output() Output {
	p.digital()
	p.dirSet.Index(int(p.port)).Store(p.mask())
	return Output{pin: p}
}

func (p pin) input() Input {
	p.digital()
	p.dirClr.Index(int(p.port)).Store(p.mask())
	return Input{p}
}

// High drives the pin high.
func (o Output) High() { o.set.Index(int(o.port)).Store(o.mask()) }

// Low drives the pin low.
func (o Output) Low() { o.clr.Index(int(o.port)).Store(o.mask()) }

// Toggle inverts the level the pin is driven to.
func (o Output) Toggle() { o.not.Index(int(o.port)).Store(o.mask()) }

// Set drives the pin high if high is true and low otherwise.
func (o Output) Set(high bool) {
	if high {
		o.High()
	} else {
		o.Low()
	}
}

// Input reconfigures the pin as input.
func (o Output) Input() Input { return o.pin.input() }

// Output reconfigures the pin as output. The pin keeps the level that was last
// written to it as output.
func (i Input) Output() Output { return i.pin.output() }
