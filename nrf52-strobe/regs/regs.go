// Package regs describes the nRF52840 GPIOTE, TIMER and PPI register blocks:
// their layout, bus addresses and bitfields.
//
// The block types mirror the ones in TinyGo's device/nrf package so a pointer
// to the peripheral can be reinterpreted as one of them, but unlike device/nrf
// this package also builds for the host, where Register32 is plain memory.
// That lets the same driver code run against the simulator in package sim.
package regs

// Peripheral base addresses on the APB.
const (
	GPIOTE_BASE = 0x40006000
	TIMER0_BASE = 0x40008000
	TIMER1_BASE = 0x40009000
	TIMER2_BASE = 0x4000A000
	TIMER3_BASE = 0x4001A000
	TIMER4_BASE = 0x4001B000
	PPI_BASE    = 0x4001F000
)

// Triggered is the value written to a TASKS_ register to trigger the task,
// and read back from an EVENTS_ register once the event has been generated.
const Triggered = 1
