package strobe

import (
	"github.com/nrf-sync/transmitter/nrf52-strobe/regs"
)

// GPIOTE is a handle to the GPIO tasks and events peripheral.
type GPIOTE struct {
	hw *regs.GPIOTE_Type
	// Bus address of hw, needed to hand task addresses to the PPI.
	base uint32
	// Bitmask of claimed channels. The GPIOTE has 8 channels.
	claimedMask uint8
	nc          noCopy
}

// NewGPIOTE returns a handle for the GPIOTE register block hw, which the
// event fabric addresses at base.
func NewGPIOTE(hw *regs.GPIOTE_Type, base uint32) *GPIOTE {
	return &GPIOTE{hw: hw, base: base}
}

// HW returns a pointer to the GPIOTE's hardware registers.
func (g *GPIOTE) HW() *regs.GPIOTE_Type { return g.hw }

// Channel returns a GPIOTE channel by index.
func (g *GPIOTE) Channel(index uint8) GPIOTEChannel {
	if index >= regs.GPIOTEChannels {
		panic(badGPIOTEChannel)
	}
	return GPIOTEChannel{g: g, index: index}
}

// ClaimChannel returns an unused channel or an error if all channels are claimed.
func (g *GPIOTE) ClaimChannel() (ch GPIOTEChannel, err error) {
	for i := uint8(0); i < regs.GPIOTEChannels; i++ {
		ch = g.Channel(i)
		if ch.TryClaim() {
			return ch, nil
		}
	}
	return GPIOTEChannel{}, ErrAllChannelsClaimed
}

// GPIOTEChannel is one of the eight GPIOTE channels. A channel in task mode
// owns one pin and changes its level whenever one of its tasks is triggered.
type GPIOTEChannel struct {
	g     *GPIOTE
	index uint8
}

// Index returns the channel number.
func (ch GPIOTEChannel) Index() uint8 { return ch.index }

// IsClaimed returns true if the channel is claimed by other code and should not be used.
func (ch GPIOTEChannel) IsClaimed() bool { return ch.g.claimedMask&(1<<ch.index) != 0 }

// Unclaim releases the channel for use by other code.
func (ch GPIOTEChannel) Unclaim() { ch.g.claimedMask &^= 1 << ch.index }

// TryClaim attempts to claim the channel and returns true if successful, or
// false if it was already claimed. Either way the channel is claimed after the call.
func (ch GPIOTEChannel) TryClaim() bool {
	if ch.IsClaimed() {
		return false
	}
	ch.g.claimedMask |= 1 << ch.index
	return true
}

// ConfigureTask puts the channel in task mode driving pin. The pin is driven
// to init as soon as the configuration is written, and each trigger of the
// OUT task then applies polarity to it. The channel's IN interrupt is
// disabled; nothing in software observes the pin.
func (ch GPIOTEChannel) ConfigureTask(pin Pin, polarity Polarity, init Level) {
	checkPin(pin)
	hw := ch.g.hw
	hw.INTENCLR.Set(1 << (regs.GPIOTE_INTENSET_IN0_Pos + ch.index))
	hw.CONFIG[ch.index].Set(
		regs.GPIOTE_CONFIG_MODE_Task<<regs.GPIOTE_CONFIG_MODE_Pos |
			uint32(pin.Number())<<regs.GPIOTE_CONFIG_PSEL_Pos |
			uint32(pin.Port())<<regs.GPIOTE_CONFIG_PORT_Pos |
			uint32(polarity&0x3)<<regs.GPIOTE_CONFIG_POLARITY_Pos |
			uint32(init&0x1)<<regs.GPIOTE_CONFIG_OUTINIT_Pos,
	)
}

// Disable returns the channel's pin to regular GPIO control.
func (ch GPIOTEChannel) Disable() {
	ch.g.hw.CONFIG[ch.index].Set(regs.GPIOTE_CONFIG_MODE_Disabled)
}

// TaskOutAddr returns the bus address of the channel's OUT task, which
// applies the configured polarity.
func (ch GPIOTEChannel) TaskOutAddr() uint32 {
	return ch.g.base + regs.GPIOTE_TASKS_OUT_Offset + 4*uint32(ch.index)
}

// TaskSetAddr returns the bus address of the channel's SET task, which
// drives the pin high.
func (ch GPIOTEChannel) TaskSetAddr() uint32 {
	return ch.g.base + regs.GPIOTE_TASKS_SET_Offset + 4*uint32(ch.index)
}

// TaskClrAddr returns the bus address of the channel's CLR task, which
// drives the pin low.
func (ch GPIOTEChannel) TaskClrAddr() uint32 {
	return ch.g.base + regs.GPIOTE_TASKS_CLR_Offset + 4*uint32(ch.index)
}
