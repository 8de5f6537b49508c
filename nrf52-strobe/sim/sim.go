//go:build !tinygo

// Package sim models the nRF52840 GPIOTE, TIMER0 and PPI closely enough to
// check the waveform a driver programs into them, without hardware.
//
// A Board holds the three register blocks. Driver code writes them like
// memory mapped registers, and each write takes effect as it is made:
// triggered tasks run and read back zero, CHENSET and CHENCLR fold into CHEN,
// INTENSET and INTENCLR into the interrupt mask, and a GPIOTE channel switched
// to task mode drives its pin to OUTINIT. Advance moves time forward in timer
// ticks. While the timer runs, every compare match generates its event, the
// event is routed through each enabled PPI channel listening to it, and
// SHORTS apply, all with no driver code involved.
//
// A compare fires whenever the counter arrives at its CC value: by counting,
// by wrapping to zero, by the START task from zero, or by a clear while
// running. Slots fire in index order and every routed task runs before the
// shortcuts of the same match, so when two edges share a counter value the
// lower slot's task is applied first and a COMPAREn_CLEAR shortcut never hides
// a match of the value it clears at. Pre-programmed PPI channels are not
// modeled.
//
// Writes are observed through regs.WriteHook, which the package installs on
// the first call to New.
package sim

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/nrf-sync/transmitter/nrf52-strobe/regs"
)

const (
	// Compare slots implemented by TIMER0.
	timerSlots = 4
	// Pins on the nRF52840.
	pinCount = 48
)

// Edge is a change of level on a pin.
type Edge struct {
	// Time in timer ticks since the Board was created.
	Time uint64
	// High is the level after the change.
	High bool
}

// Board is a simulated nRF52840 with its GPIOTE, TIMER0 and PPI blocks.
type Board struct {
	GPIOTE regs.GPIOTE_Type
	TIMER0 regs.TIMER_Type
	PPI    regs.PPI_Type

	now     uint64
	counter uint32
	running bool
	// Interrupt enable masks behind INTENSET/INTENCLR.
	gpioteInten uint32
	timerInten  uint32
	levels      [pinCount]bool
	edges       [pinCount][]Edge
}

var (
	hookOnce sync.Once
	mu       sync.Mutex
	boards   []*Board
)

// New returns a Board in its reset state: timer stopped at zero, every PPI
// channel disabled and every pin low. The Board reacts to register writes
// until Close is called.
func New() *Board {
	hookOnce.Do(func() { regs.WriteHook = written })
	b := &Board{}
	mu.Lock()
	boards = append(boards, b)
	mu.Unlock()
	return b
}

// Close stops the Board from reacting to register writes.
func (b *Board) Close() {
	mu.Lock()
	defer mu.Unlock()
	for i, other := range boards {
		if other == b {
			boards = append(boards[:i], boards[i+1:]...)
			return
		}
	}
}

// Now returns the time in timer ticks since the Board was created.
func (b *Board) Now() uint64 { return b.now }

// Counter returns the TIMER0 counter value.
func (b *Board) Counter() uint32 { return b.counter }

// Running returns true if TIMER0 is started.
func (b *Board) Running() bool { return b.running }

// Pin returns true if pin (port*32 + number) is high. Pins that do not exist
// read low.
func (b *Board) Pin(pin uint8) bool {
	if pin >= pinCount {
		return false
	}
	return b.levels[pin]
}

// Edges returns every level change recorded on pin, oldest first. Pins that
// do not exist have none.
func (b *Board) Edges(pin uint8) []Edge {
	if pin >= pinCount {
		return nil
	}
	return b.edges[pin]
}

// LevelAt returns true if pin was high at time t, after every change
// recorded at t.
func (b *Board) LevelAt(pin uint8, t uint64) bool {
	high := false
	for _, e := range b.Edges(pin) {
		if e.Time > t {
			break
		}
		high = e.High
	}
	return high
}

// Advance lets ticks timer ticks pass.
func (b *Board) Advance(ticks uint64) {
	for ticks > 0 {
		if !b.running || b.TIMER0.MODE.Get() != regs.TIMER_MODE_MODE_Timer {
			b.now += ticks
			return
		}
		step := b.untilArrival()
		if step > ticks {
			b.counter += uint32(ticks)
			b.now += ticks
			return
		}
		b.now += step
		ticks -= step
		b.counter = uint32((uint64(b.counter) + step) & uint64(b.maxCount()))
		b.arrive()
	}
}

// written hands a register write to the Board owning the register, if any.
func written(r *regs.Register32) {
	addr := uintptr(unsafe.Pointer(r))
	mu.Lock()
	var owner *Board
	for _, b := range boards {
		if b.owns(addr) {
			owner = b
			break
		}
	}
	mu.Unlock()
	if owner == nil {
		return
	}
	if off, ok := offset(addr, unsafe.Pointer(&owner.GPIOTE), unsafe.Sizeof(owner.GPIOTE)); ok {
		owner.writeGPIOTE(r, off)
	} else if off, ok := offset(addr, unsafe.Pointer(&owner.TIMER0), unsafe.Sizeof(owner.TIMER0)); ok {
		owner.writeTimer(r, off)
	} else if off, ok := offset(addr, unsafe.Pointer(&owner.PPI), unsafe.Sizeof(owner.PPI)); ok {
		owner.writePPI(r, off)
	}
}

func (b *Board) owns(addr uintptr) bool {
	base, end := uintptr(unsafe.Pointer(b)), uintptr(unsafe.Pointer(b))+unsafe.Sizeof(*b)
	return addr >= base && addr < end
}

// offset returns the offset of addr within the register block at block.
func offset(addr uintptr, block unsafe.Pointer, size uintptr) (uint32, bool) {
	base := uintptr(block)
	if addr < base || addr >= base+size {
		return 0, false
	}
	return uint32(addr - base), true
}

// poke stores a value as the hardware would, without counting as a write.
func poke(r *regs.Register32, value uint32) { atomic.StoreUint32(&r.Reg, value) }

func (b *Board) writeGPIOTE(r *regs.Register32, off uint32) {
	hw := &b.GPIOTE
	switch {
	case off < regs.GPIOTE_EVENTS_IN_Offset:
		if r.Get() != 0 {
			poke(r, 0)
			b.gpioteTask(off)
		}
	case off == regs.GPIOTE_INTENSET_Offset:
		b.gpioteInten |= r.Get()
		poke(&hw.INTENSET, b.gpioteInten)
		poke(&hw.INTENCLR, b.gpioteInten)
	case off == regs.GPIOTE_INTENCLR_Offset:
		b.gpioteInten &^= r.Get()
		poke(&hw.INTENSET, b.gpioteInten)
		poke(&hw.INTENCLR, b.gpioteInten)
	case off >= regs.GPIOTE_CONFIG_Offset:
		cfg := r.Get()
		if cfg&regs.GPIOTE_CONFIG_MODE_Msk == regs.GPIOTE_CONFIG_MODE_Task {
			high := (cfg&regs.GPIOTE_CONFIG_OUTINIT_Msk)>>regs.GPIOTE_CONFIG_OUTINIT_Pos == regs.GPIOTE_CONFIG_OUTINIT_High
			b.setLevel(configPin(cfg), high)
		}
	}
}

func (b *Board) writeTimer(r *regs.Register32, off uint32) {
	hw := &b.TIMER0
	switch {
	case off < regs.TIMER_EVENTS_COMPARE_Offset:
		if r.Get() != 0 {
			poke(r, 0)
			b.timerTask(off)
		}
	case off == regs.TIMER_INTENSET_Offset:
		b.timerInten |= r.Get()
		poke(&hw.INTENSET, b.timerInten)
		poke(&hw.INTENCLR, b.timerInten)
	case off == regs.TIMER_INTENCLR_Offset:
		b.timerInten &^= r.Get()
		poke(&hw.INTENSET, b.timerInten)
		poke(&hw.INTENCLR, b.timerInten)
	}
}

func (b *Board) writePPI(r *regs.Register32, off uint32) {
	hw := &b.PPI
	switch off {
	case regs.PPI_CHEN_Offset:
		b.setChannels(hw.CHEN.Get())
	case regs.PPI_CHENSET_Offset:
		b.setChannels(hw.CHEN.Get() | r.Get())
	case regs.PPI_CHENCLR_Offset:
		b.setChannels(hw.CHEN.Get() &^ r.Get())
	default:
		if off < regs.PPI_CHEN_Offset && r.Get() != 0 {
			poke(r, 0)
			b.ppiTask(off)
		}
	}
}

// setChannels sets the enabled channel mask, which CHENSET and CHENCLR also
// read back.
func (b *Board) setChannels(chen uint32) {
	hw := &b.PPI
	poke(&hw.CHEN, chen)
	poke(&hw.CHENSET, chen)
	poke(&hw.CHENCLR, chen)
}

// untilArrival returns the number of ticks until the counter next reaches a
// compare value or wraps.
func (b *Board) untilArrival() uint64 {
	top := b.maxCount()
	next := uint64(top) - uint64(b.counter) + 1
	for i := 0; i < timerSlots; i++ {
		cc := b.TIMER0.CC[i].Get()
		if cc > b.counter && cc <= top && uint64(cc-b.counter) < next {
			next = uint64(cc - b.counter)
		}
	}
	return next
}

func (b *Board) maxCount() uint32 {
	switch b.TIMER0.BITMODE.Get() & regs.TIMER_BITMODE_BITMODE_Msk {
	case regs.TIMER_BITMODE_BITMODE_08Bit:
		return 1<<8 - 1
	case regs.TIMER_BITMODE_BITMODE_16Bit:
		return 1<<16 - 1
	case regs.TIMER_BITMODE_BITMODE_24Bit:
		return 1<<24 - 1
	}
	return 1<<32 - 1
}

// arrive handles the counter taking a new value.
func (b *Board) arrive() {
	hw := &b.TIMER0
	var fired uint32
	for i := 0; i < timerSlots; i++ {
		if hw.CC[i].Get() != b.counter {
			continue
		}
		fired |= 1 << i
		poke(&hw.EVENTS_COMPARE[i], regs.Triggered)
		b.route(regs.TIMER0_BASE + regs.TIMER_EVENTS_COMPARE_Offset + 4*uint32(i))
	}
	shorts := hw.SHORTS.Get()
	if (fired<<regs.TIMER_SHORTS_COMPARE0_STOP_Pos)&shorts != 0 {
		b.running = false
	}
	if (fired<<regs.TIMER_SHORTS_COMPARE0_CLEAR_Pos)&shorts != 0 {
		b.clear()
	}
}

func (b *Board) clear() {
	if b.counter == 0 {
		return
	}
	b.counter = 0
	if b.running {
		b.arrive()
	}
}

func (b *Board) timerTask(offset uint32) {
	switch offset {
	case regs.TIMER_TASKS_START_Offset:
		if b.running {
			return
		}
		b.running = true
		if b.counter == 0 && b.TIMER0.MODE.Get() == regs.TIMER_MODE_MODE_Timer {
			b.arrive()
		}
	case regs.TIMER_TASKS_STOP_Offset:
		b.running = false
	case regs.TIMER_TASKS_SHUTDOWN_Offset:
		b.running = false
		b.counter = 0
	case regs.TIMER_TASKS_CLEAR_Offset:
		b.clear()
	case regs.TIMER_TASKS_COUNT_Offset:
		if b.TIMER0.MODE.Get() != regs.TIMER_MODE_MODE_Timer {
			b.counter = (b.counter + 1) & b.maxCount()
			b.arrive()
		}
	default:
		if offset >= regs.TIMER_TASKS_CAPTURE_Offset && offset < regs.TIMER_TASKS_CAPTURE_Offset+4*timerSlots {
			poke(&b.TIMER0.CC[(offset-regs.TIMER_TASKS_CAPTURE_Offset)/4], b.counter)
		}
	}
}

func (b *Board) gpioteTask(offset uint32) {
	var ch, kind uint32
	switch {
	case offset < regs.GPIOTE_TASKS_OUT_Offset+4*regs.GPIOTEChannels:
		ch, kind = (offset-regs.GPIOTE_TASKS_OUT_Offset)/4, regs.GPIOTE_TASKS_OUT_Offset
	case offset >= regs.GPIOTE_TASKS_SET_Offset && offset < regs.GPIOTE_TASKS_SET_Offset+4*regs.GPIOTEChannels:
		ch, kind = (offset-regs.GPIOTE_TASKS_SET_Offset)/4, regs.GPIOTE_TASKS_SET_Offset
	case offset >= regs.GPIOTE_TASKS_CLR_Offset && offset < regs.GPIOTE_TASKS_CLR_Offset+4*regs.GPIOTEChannels:
		ch, kind = (offset-regs.GPIOTE_TASKS_CLR_Offset)/4, regs.GPIOTE_TASKS_CLR_Offset
	default:
		return
	}
	cfg := b.GPIOTE.CONFIG[ch].Get()
	if cfg&regs.GPIOTE_CONFIG_MODE_Msk != regs.GPIOTE_CONFIG_MODE_Task {
		return
	}
	pin := configPin(cfg)
	switch kind {
	case regs.GPIOTE_TASKS_SET_Offset:
		b.setLevel(pin, true)
	case regs.GPIOTE_TASKS_CLR_Offset:
		b.setLevel(pin, false)
	default:
		switch (cfg & regs.GPIOTE_CONFIG_POLARITY_Msk) >> regs.GPIOTE_CONFIG_POLARITY_Pos {
		case regs.GPIOTE_CONFIG_POLARITY_LoToHi:
			b.setLevel(pin, true)
		case regs.GPIOTE_CONFIG_POLARITY_HiToLo:
			b.setLevel(pin, false)
		case regs.GPIOTE_CONFIG_POLARITY_Toggle:
			b.setLevel(pin, !b.levels[pin])
		}
	}
}

func configPin(cfg uint32) uint8 {
	number := (cfg & regs.GPIOTE_CONFIG_PSEL_Msk) >> regs.GPIOTE_CONFIG_PSEL_Pos
	port := (cfg & regs.GPIOTE_CONFIG_PORT_Msk) >> regs.GPIOTE_CONFIG_PORT_Pos
	return uint8(port*32 + number)
}

func (b *Board) setLevel(pin uint8, high bool) {
	if pin >= pinCount || b.levels[pin] == high {
		return
	}
	b.levels[pin] = high
	b.edges[pin] = append(b.edges[pin], Edge{Time: b.now, High: high})
}

func (b *Board) ppiTask(offset uint32) {
	if offset >= regs.PPI_TASKS_CHG_Offset+8*regs.PPIGroups {
		return
	}
	group := b.PPI.CHG[(offset-regs.PPI_TASKS_CHG_Offset)/8].Get()
	if (offset-regs.PPI_TASKS_CHG_Offset)%8 == 0 {
		b.setChannels(b.PPI.CHEN.Get() | group)
	} else {
		b.setChannels(b.PPI.CHEN.Get() &^ group)
	}
}

// route delivers the event at bus address event to the tasks of every enabled
// channel listening to it.
func (b *Board) route(event uint32) {
	hw := &b.PPI
	for ch := 0; ch < regs.PPIProgrammableChannels; ch++ {
		if !hw.CHEN.HasBits(1<<ch) || hw.CH[ch].EEP.Get() != event {
			continue
		}
		b.trigger(hw.CH[ch].TEP.Get())
		if fork := hw.FORK[ch].TEP.Get(); fork != 0 {
			b.trigger(fork)
		}
	}
}

// trigger runs the task at bus address task.
func (b *Board) trigger(task uint32) {
	switch {
	case task >= regs.GPIOTE_BASE && task < regs.GPIOTE_BASE+0x1000:
		b.gpioteTask(task - regs.GPIOTE_BASE)
	case task >= regs.TIMER0_BASE && task < regs.TIMER0_BASE+0x1000:
		b.timerTask(task - regs.TIMER0_BASE)
	case task >= regs.PPI_BASE && task < regs.PPI_BASE+0x1000:
		b.ppiTask(task - regs.PPI_BASE)
	}
}
