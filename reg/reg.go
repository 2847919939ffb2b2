// Package reg makes registers ownable and movable.
//
// A register block from package raw is only reachable through a pointer to the
// whole peripheral. Splitting a peripheral into several independent parts,
// e.g. one per GPIO pin, would then require every part to keep a reference to
// the block. Instead, each register gets a descriptor: an empty struct type
// whose method computes the register's address from the peripheral's base
// address. A [Proxy] for that descriptor is a zero sized value which can be
// copied, stored and sent to other goroutines, and only computes the address
// when the register is actually accessed.
//
// Nothing prevents creating two proxies for the same register and modifying
// it from both. Keeping one owner per register is the caller's responsibility.
// [Claim] offers a checked alternative where that is worth a lookup.
//
// Descriptors are usually generated by mkreg.go, which keeps the unsafe part,
// deriving a register's address from its peripheral's base address, in a
// single template.
package reg

// Reg is implemented by descriptors of a single register.
//
// Implementing Reg asserts that Ptr returns a non-nil pointer which stays valid
// for the whole run of the program and always points at the same register.
// This can't be checked, it depends on the memory map of the hardware.
//
// If only one instance of a register type exists, the descriptor can be any
// empty struct type and T is the register type. If the same register type is
// used at several memory locations, e.g. the same block repeated for several
// peripheral instances, the descriptor must identify exactly one of these
// locations and T is the common type.
type Reg[T any] interface {
	Ptr() *T
}

// Proxy provides access to the register described by R.
//
// The zero value is ready to use. A Proxy holds no data, moving and copying it
// is free and doesn't access the hardware.
type Proxy[R Reg[T], T any] struct {
	_ [0]R
}

// New returns a proxy for the register described by R.
func New[R Reg[T], T any]() Proxy[R, T] {
	return Proxy[R, T]{}
}

// Get returns a pointer to the register. Because the register's address is
// valid for the lifetime of the program, the pointer can be kept as long as
// needed.
func (p Proxy[R, T]) Get() *T {
	var r R
	return r.Ptr()
}
