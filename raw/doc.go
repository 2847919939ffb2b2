// Package raw describes the memory mapped register blocks of the LPC55S6x
// peripherals used by this HAL.
//
// It plays the role of a vendor generated device package: every peripheral is a
// struct of mmio registers laid out at the offsets of the user manual (UM11126)
// and has a singleton accessor returning its base address. Nothing in here
// checks how the registers are used. Use the driver packages instead.
//
// On noos builds the accessors return the hardware addresses. On hosted builds
// each block is a package variable, which lives for the whole program just like
// the hardware, so the drivers can run in tests.
package raw
