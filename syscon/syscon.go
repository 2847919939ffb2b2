// Package syscon controls the clocks and resets of the other peripherals.
package syscon

import (
	"embedded/mmio"

	"github.com/lpc55go/hal/raw"
	"github.com/lpc55go/hal/reg"
)

//go:generate go run ../reg/mkreg.go dieID mmio.R32[raw.DieID] raw.SYSCONBlock DIEID
//go:generate go run ../reg/mkreg.go -cluster ahbClkCtrl mmio.U32 raw.SYSCONBlock AHBCLKCTRL
//go:generate go run ../reg/mkreg.go -cluster ahbClkCtrlSet mmio.U32 raw.SYSCONBlock AHBCLKCTRLSET
//go:generate go run ../reg/mkreg.go -cluster ahbClkCtrlClr mmio.U32 raw.SYSCONBlock AHBCLKCTRLCLR
//go:generate go run ../reg/mkreg.go -cluster presetCtrlSet mmio.U32 raw.SYSCONBlock PRESETCTRLSET
//go:generate go run ../reg/mkreg.go -cluster presetCtrlClr mmio.U32 raw.SYSCONBlock PRESETCTRLCLR

// Gated is implemented by peripheral blocks whose clock is gated by one of the
// AHBCLKCTRL banks. The PRESETCTRL banks use the same bit positions.
type Gated interface {
	AHBClock() (bank int, mask uint32)
}

// Syscon provides the clock and reset control. Its zero value is ready to use.
//
// Syscon only owns the bits of peripherals that are passed to it, so several
// Syscon values may exist. Clocks and resets are changed through the write-1
// SET and CLR banks, which leave the bits of other peripherals alone, so no
// locking is needed between them.
type Syscon struct {
	clkCtrl reg.ClusterProxy[ahbClkCtrl, mmio.U32]
	clkSet  reg.ClusterProxy[ahbClkCtrlSet, mmio.U32]
	clkClr  reg.ClusterProxy[ahbClkCtrlClr, mmio.U32]
	rstSet  reg.ClusterProxy[presetCtrlSet, mmio.U32]
	rstClr  reg.ClusterProxy[presetCtrlClr, mmio.U32]
	dieID   reg.Proxy[dieID, mmio.R32[raw.DieID]]
}

func New() *Syscon {
	return &Syscon{}
}

// EnableClock ungates the clock of peripheral p.
func (s *Syscon) EnableClock(p Gated) {
	bank, mask := p.AHBClock()
	s.clkSet.Index(bank).Store(mask)
}

// DisableClock gates the clock of peripheral p.
func (s *Syscon) DisableClock(p Gated) {
	bank, mask := p.AHBClock()
	s.clkClr.Index(bank).Store(mask)
}

// ClockEnabled reports whether the clock of peripheral p is running.
func (s *Syscon) ClockEnabled(p Gated) bool {
	bank, mask := p.AHBClock()
	return s.clkCtrl.Index(bank).LoadBits(mask) == mask
}

// Reset pulses the reset line of peripheral p, returning its registers to
// their reset values.
func (s *Syscon) Reset(p Gated) {
	bank, mask := p.AHBClock()
	s.rstSet.Index(bank).Store(mask)
	s.rstClr.Index(bank).Store(mask)
}

// Revision returns the silicon revision, 0 for A0 and 1 for A1. Some
// peripherals, e.g. the RNG, behave differently between both.
func (s *Syscon) Revision() uint8 {
	return s.dieID.Get().Load().RevID()
}
