//go:build noos

package raw

import "unsafe"

var (
	rng    = (*RNG)(unsafe.Pointer(RNGBase))
	syscon = (*SYSCON)(unsafe.Pointer(SYSCONBase))
	gpio   = (*GPIO)(unsafe.Pointer(GPIOBase))
	iocon  = (*IOCON)(unsafe.Pointer(IOCONBase))
)

func RNGBlock() *RNG       { return rng }
func SYSCONBlock() *SYSCON { return syscon }
func GPIOBlock() *GPIO     { return gpio }
func IOCONBlock() *IOCON   { return iocon }
