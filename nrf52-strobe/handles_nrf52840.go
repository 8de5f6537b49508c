//go:build nrf52840

package strobe

import (
	"device/nrf"
	"unsafe"

	"github.com/nrf-sync/transmitter/nrf52-strobe/regs"
)

// nRF52840 peripheral handles.
var (
	GPIOTE0 = NewGPIOTE((*regs.GPIOTE_Type)(unsafe.Pointer(nrf.GPIOTE)), busAddr(unsafe.Pointer(nrf.GPIOTE)))

	TIMER0 = NewTimer((*regs.TIMER_Type)(unsafe.Pointer(nrf.TIMER0)), busAddr(unsafe.Pointer(nrf.TIMER0)), 4)
	TIMER1 = NewTimer((*regs.TIMER_Type)(unsafe.Pointer(nrf.TIMER1)), busAddr(unsafe.Pointer(nrf.TIMER1)), 4)
	TIMER2 = NewTimer((*regs.TIMER_Type)(unsafe.Pointer(nrf.TIMER2)), busAddr(unsafe.Pointer(nrf.TIMER2)), 4)
	TIMER3 = NewTimer((*regs.TIMER_Type)(unsafe.Pointer(nrf.TIMER3)), busAddr(unsafe.Pointer(nrf.TIMER3)), 6)
	TIMER4 = NewTimer((*regs.TIMER_Type)(unsafe.Pointer(nrf.TIMER4)), busAddr(unsafe.Pointer(nrf.TIMER4)), 6)

	PPI0 = NewPPI((*regs.PPI_Type)(unsafe.Pointer(nrf.PPI)))
)

func busAddr(p unsafe.Pointer) uint32 { return uint32(uintptr(p)) }
