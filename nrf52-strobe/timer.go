package strobe

import (
	"github.com/nrf-sync/transmitter/nrf52-strobe/regs"
)

// Timer is a handle to one TIMER peripheral.
type Timer struct {
	hw   *regs.TIMER_Type
	base uint32
	// Number of compare slots implemented by this instance.
	slots   uint8
	claimed bool
	nc      noCopy
}

// NewTimer returns a handle for the TIMER register block hw, addressed by the
// event fabric at base, implementing the given number of compare slots.
func NewTimer(hw *regs.TIMER_Type, base uint32, slots uint8) *Timer {
	if slots == 0 || slots > regs.TIMERSlots {
		panic(badCompareSlot)
	}
	return &Timer{hw: hw, base: base, slots: slots}
}

// HW returns a pointer to the timer's hardware registers.
func (t *Timer) HW() *regs.TIMER_Type { return t.hw }

// Slots returns the number of compare slots of the timer.
func (t *Timer) Slots() uint8 { return t.slots }

// IsClaimed returns true if the timer is claimed by a user.
func (t *Timer) IsClaimed() bool { return t.claimed }

// Unclaim releases the timer for use by other users.
func (t *Timer) Unclaim() { t.claimed = false }

// TryClaim claims the timer for use by a user. It returns false if the timer
// was already claimed.
func (t *Timer) TryClaim() bool {
	if t.claimed {
		return false
	}
	t.claimed = true
	return true
}

// Configure halts and zeroes the timer, then applies cfg. Stale compare
// events are cleared and all timer interrupts disabled. The timer is left
// stopped; call Start to run it. Compare values and shortcuts on slots the
// timer does not implement panic.
func (t *Timer) Configure(cfg TimerConfig) {
	t.checkShorts(cfg.Shorts)
	for i := t.slots; i < regs.TIMERSlots; i++ {
		if cfg.CC[i] != 0 {
			panic(badCompareSlot)
		}
	}
	hw := t.hw
	hw.TASKS_STOP.Set(regs.Triggered)
	hw.TASKS_CLEAR.Set(regs.Triggered)
	hw.INTENCLR.Set(regs.TIMER_INTEN_COMPARE_Msk)

	hw.MODE.Set(cfg.Mode)
	hw.BITMODE.Set(cfg.BitMode)
	hw.PRESCALER.Set(cfg.Prescaler)
	top := cfg.MaxCount()
	for i := uint8(0); i < t.slots; i++ {
		if cfg.CC[i] > top {
			panic(badCompareValue)
		}
		hw.EVENTS_COMPARE[i].Set(0)
		hw.CC[i].Set(cfg.CC[i])
	}
	hw.SHORTS.Set(cfg.Shorts)
}

func (t *Timer) checkShorts(shorts uint32) {
	for i := t.slots; i < regs.TIMERSlots; i++ {
		clr := uint32(1) << (regs.TIMER_SHORTS_COMPARE0_CLEAR_Pos + i)
		stop := uint32(1) << (regs.TIMER_SHORTS_COMPARE0_STOP_Pos + i)
		if shorts&(clr|stop) != 0 {
			panic(badCompareSlot)
		}
	}
}

// Start starts the timer. In timer mode the counter then increments on every
// prescaled clock tick.
func (t *Timer) Start() { t.hw.TASKS_START.Set(regs.Triggered) }

// Stop stops the timer. The counter keeps its value.
func (t *Timer) Stop() { t.hw.TASKS_STOP.Set(regs.Triggered) }

// Clear zeroes the counter.
func (t *Timer) Clear() { t.hw.TASKS_CLEAR.Set(regs.Triggered) }

// CompareEventAddr returns the bus address of EVENTS_COMPARE[slot], the event
// generated when the counter reaches CC[slot].
func (t *Timer) CompareEventAddr(slot uint8) uint32 {
	t.checkSlot(slot)
	return t.base + regs.TIMER_EVENTS_COMPARE_Offset + 4*uint32(slot)
}

// CompareEvent reports whether EVENTS_COMPARE[slot] has been generated since
// it was last cleared.
func (t *Timer) CompareEvent(slot uint8) bool {
	t.checkSlot(slot)
	return t.hw.EVENTS_COMPARE[slot].Get() != 0
}

func (t *Timer) checkSlot(slot uint8) {
	if slot >= t.slots {
		panic(badCompareSlot)
	}
}

// DefaultTimerConfig returns a 32-bit timer ticking at 1 MHz (prescaler 4)
// with every compare value zero and no shortcuts.
func DefaultTimerConfig() TimerConfig {
	cfg := TimerConfig{Mode: regs.TIMER_MODE_MODE_Timer}
	cfg.SetBitMode(32)
	cfg.SetPrescaler(tickPrescaler)
	return cfg
}

// TimerConfig holds the register image written by Timer.Configure.
type TimerConfig struct {
	// Timer or counter mode.
	Mode uint32
	// Counter width.
	BitMode uint32
	// Tick frequency = 16 MHz / 2^Prescaler.
	Prescaler uint32
	// Compare values, in ticks.
	CC [regs.TIMERSlots]uint32
	// Shortcuts between compare events and the CLEAR/STOP tasks.
	Shorts uint32
}

// SetBitMode sets the counter width. bits must be 8, 16, 24 or 32.
func (cfg *TimerConfig) SetBitMode(bits uint8) {
	switch bits {
	case 8:
		cfg.BitMode = regs.TIMER_BITMODE_BITMODE_08Bit
	case 16:
		cfg.BitMode = regs.TIMER_BITMODE_BITMODE_16Bit
	case 24:
		cfg.BitMode = regs.TIMER_BITMODE_BITMODE_24Bit
	case 32:
		cfg.BitMode = regs.TIMER_BITMODE_BITMODE_32Bit
	default:
		panic("strobe:bad bit mode")
	}
}

// SetPrescaler sets the tick frequency to 16 MHz / 2^prescaler, prescaler 0..9.
func (cfg *TimerConfig) SetPrescaler(prescaler uint8) {
	if prescaler > regs.TIMER_PRESCALER_Max {
		panic("strobe:bad prescaler")
	}
	cfg.Prescaler = uint32(prescaler)
}

// SetCompare sets the counter value, in ticks, at which slot fires its compare event.
func (cfg *TimerConfig) SetCompare(slot uint8, ticks uint32) {
	if slot >= regs.TIMERSlots {
		panic(badCompareSlot)
	}
	cfg.CC[slot] = ticks
}

// SetCompareClear enables or disables the shortcut that clears the counter
// when slot fires, restarting the count without software.
func (cfg *TimerConfig) SetCompareClear(slot uint8, enabled bool) {
	if slot >= regs.TIMERSlots {
		panic(badCompareSlot)
	}
	cfg.Shorts = cfg.Shorts&^(1<<(regs.TIMER_SHORTS_COMPARE0_CLEAR_Pos+slot)) |
		boolToBit(enabled)<<(regs.TIMER_SHORTS_COMPARE0_CLEAR_Pos+slot)
}

// SetCompareStop enables or disables the shortcut that stops the timer when slot fires.
func (cfg *TimerConfig) SetCompareStop(slot uint8, enabled bool) {
	if slot >= regs.TIMERSlots {
		panic(badCompareSlot)
	}
	cfg.Shorts = cfg.Shorts&^(1<<(regs.TIMER_SHORTS_COMPARE0_STOP_Pos+slot)) |
		boolToBit(enabled)<<(regs.TIMER_SHORTS_COMPARE0_STOP_Pos+slot)
}

// MaxCount returns the largest value the counter holds before wrapping.
func (cfg TimerConfig) MaxCount() uint32 {
	switch cfg.BitMode & regs.TIMER_BITMODE_BITMODE_Msk {
	case regs.TIMER_BITMODE_BITMODE_08Bit:
		return 1<<8 - 1
	case regs.TIMER_BITMODE_BITMODE_16Bit:
		return 1<<16 - 1
	case regs.TIMER_BITMODE_BITMODE_24Bit:
		return 1<<24 - 1
	}
	return 1<<32 - 1
}

// TickFrequency returns the counter increment rate in Hz.
func (cfg TimerConfig) TickFrequency() uint32 {
	return regs.TIMERBaseFrequency >> (cfg.Prescaler & regs.TIMER_PRESCALER_PRESCALER_Msk)
}
