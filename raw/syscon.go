package raw

import "embedded/mmio"

// SYSCONBase is the physical address of the system configuration block.
const SYSCONBase uintptr = 0x4000_0000

// SYSCON is the part of the system configuration block that controls
// peripheral resets and AHB clocks and identifies the chip. Each array holds
// the banks 0 to 2.
type SYSCON struct {
	_             [0x100 / 4]mmio.U32
	PRESETCTRL    [3]mmio.U32
	_             [5]mmio.U32
	PRESETCTRLSET [3]mmio.U32
	_             [5]mmio.U32
	PRESETCTRLCLR [3]mmio.U32
	_             [(0x200 - 0x14c) / 4]mmio.U32
	AHBCLKCTRL    [3]mmio.U32
	_             [5]mmio.U32
	AHBCLKCTRLSET [3]mmio.U32
	_             [5]mmio.U32
	AHBCLKCTRLCLR [3]mmio.U32
	_             [(0xff8 - 0x24c) / 4]mmio.U32
	DEVICE_ID0    mmio.U32
	DIEID         mmio.R32[DieID]
}

// DieID is the content of the DIEID register.
type DieID uint32

// RevID returns the chip revision, 0 for A0 and 1 for A1 silicon.
func (v DieID) RevID() uint8 { return uint8(Field(uint32(v), 0, 4)) }

// MCONum returns the chip's mask set number.
func (v DieID) MCONum() uint32 { return Field(uint32(v), 4, 20) }
