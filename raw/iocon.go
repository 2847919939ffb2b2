package raw

import "embedded/mmio"

// IOCONBase is the physical address of the I/O pin configuration block.
const IOCONBase uintptr = 0x4000_1000

// PIO register fields
const (
	Func     uint32 = 0xf << 0 // selects the pin function, 0 is GPIO
	DigiMode uint32 = 1 << 8   // enables the digital input buffer
)

// IOCON is the pin configuration block. PIO holds one register per pin.
type IOCON struct {
	PIO [GPIOPorts][32]mmio.U32
}

// AHBClock returns the AHBCLKCTRL bank and bit gating the IOCON clock.
func (*IOCON) AHBClock() (bank int, mask uint32) { return 0, 1 << 13 }
