package raw

import "embedded/mmio"

// GPIOBase is the physical address of the GPIO block.
const GPIOBase uintptr = 0x4008_c000

// GPIOPorts is the number of ports in the GPIO block.
const GPIOPorts = 2

// GPIO is the word addressed part of the GPIO block. Each array holds one
// register per port.
type GPIO struct {
	_      [0x2000 / 4]mmio.U32
	DIR    [GPIOPorts]mmio.U32
	_      [30]mmio.U32
	MASK   [GPIOPorts]mmio.U32
	_      [30]mmio.U32
	PIN    [GPIOPorts]mmio.U32
	_      [30]mmio.U32
	MPIN   [GPIOPorts]mmio.U32
	_      [30]mmio.U32
	SET    [GPIOPorts]mmio.U32
	_      [30]mmio.U32
	CLR    [GPIOPorts]mmio.U32
	_      [30]mmio.U32
	NOT    [GPIOPorts]mmio.U32
	_      [30]mmio.U32
	DIRSET [GPIOPorts]mmio.U32
	_      [30]mmio.U32
	DIRCLR [GPIOPorts]mmio.U32
	_      [30]mmio.U32
	DIRNOT [GPIOPorts]mmio.U32
}

// AHBClock returns the AHBCLKCTRL bank and bits gating the clocks of both
// ports.
func (*GPIO) AHBClock() (bank int, mask uint32) { return 0, 1<<14 | 1<<15 }
