//go:build !tinygo

package regs

import "sync/atomic"

// Register32 is the host stand-in for runtime/volatile.Register32. It keeps
// the same 4 byte footprint so register blocks have their hardware layout,
// and the same method set so driver code compiles unchanged.
type Register32 struct {
	Reg uint32
}

// WriteHook, if not nil, is called with the register after every Set. Host
// models of the peripherals install it to act on writes as they happen, the
// way the hardware does. It is not synchronized; set it before registers are
// written from more than one goroutine.
var WriteHook func(r *Register32)

// Get returns the value in the register.
func (r *Register32) Get() uint32 { return atomic.LoadUint32(&r.Reg) }

// Set writes value to the register.
func (r *Register32) Set(value uint32) {
	atomic.StoreUint32(&r.Reg, value)
	if WriteHook != nil {
		WriteHook(r)
	}
}

// SetBits reads the register, sets the given bits and writes it back.
func (r *Register32) SetBits(value uint32) { r.Set(r.Get() | value) }

// ClearBits reads the register, clears the given bits and writes it back.
func (r *Register32) ClearBits(value uint32) { r.Set(r.Get() &^ value) }

// HasBits reports whether any of the given bits are set.
func (r *Register32) HasBits(value uint32) bool { return r.Get()&value != 0 }

// ReplaceBits replaces the bits in mask at position pos with value.
func (r *Register32) ReplaceBits(value uint32, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | value<<pos)
}
