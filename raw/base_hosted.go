//go:build !noos

package raw

// Without the hardware the blocks are ordinary variables. They are never freed
// or moved, which is all the drivers rely on.
var (
	rng    RNG
	syscon SYSCON
	gpio   GPIO
	iocon  IOCON
)

func RNGBlock() *RNG       { return &rng }
func SYSCONBlock() *SYSCON { return &syscon }
func GPIOBlock() *GPIO     { return &gpio }
func IOCONBlock() *IOCON   { return &iocon }
