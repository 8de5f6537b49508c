//go:build tinygo

package regs

import "runtime/volatile"

// Register32 is a memory mapped 32-bit register.
type Register32 = volatile.Register32
