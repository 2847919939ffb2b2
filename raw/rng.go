package raw

import (
	"embedded/mmio"
	"fmt"
)

// RNGBase is the physical address of the RNG register block.
const RNGBase uintptr = 0x4003_a000

// CounterVal is the content of the RNG COUNTER_VAL register.
type CounterVal uint32

// COUNTER_VAL fields
const (
	ClkRatio   CounterVal = 0xff << 0 // gives the ratio between the internal clocks
	RefreshCnt CounterVal = 0x1f << 8 // incremented on each 32 bit shift of the entropy register
)

func (v CounterVal) ClkRatio() uint8   { return uint8(Field(uint32(v), 0, 8)) }
func (v CounterVal) RefreshCnt() uint8 { return uint8(Field(uint32(v), 8, 5)) }

// ModuleID is the content of the MODULEID register which is found at the end
// of most LPC55 peripheral apertures.
type ModuleID uint32

func (v ModuleID) Aperture() uint8 { return uint8(Field(uint32(v), 0, 8)) }
func (v ModuleID) MinRev() uint8   { return uint8(Field(uint32(v), 8, 4)) }
func (v ModuleID) MajRev() uint8   { return uint8(Field(uint32(v), 12, 4)) }
func (v ModuleID) ID() uint16      { return uint16(Field(uint32(v), 16, 16)) }

// MakeModuleID packs the MODULEID fields into a register value.
func MakeModuleID(id uint16, majRev, minRev, aperture uint8) ModuleID {
	var v uint32
	v = WithField(v, 0, 8, uint32(aperture))
	v = WithField(v, 8, 4, uint32(minRev))
	v = WithField(v, 12, 4, uint32(majRev))
	v = WithField(v, 16, 16, uint32(id))
	return ModuleID(v)
}

func (v ModuleID) String() string {
	return fmt.Sprintf("%#04x rev %d.%d aperture %d", v.ID(), v.MajRev(), v.MinRev(), v.Aperture())
}

// RNG is the register block of the true random number generator.
type RNG struct {
	RANDOM_NUMBER   mmio.U32
	_               mmio.U32
	COUNTER_VAL     mmio.R32[CounterVal]
	COUNTER_CFG     mmio.U32
	ONLINE_TEST_CFG mmio.U32
	ONLINE_TEST_VAL mmio.U32
	_               [(0xffc - 0x018) / 4]mmio.U32
	MODULEID        mmio.R32[ModuleID]
}

// AHBClock returns the AHBCLKCTRL bank and bit gating the RNG clock.
func (*RNG) AHBClock() (bank int, mask uint32) { return 2, 1 << 13 }
