package strobe

import (
	"github.com/nrf-sync/transmitter/nrf52-strobe/regs"
)

// PPI is a handle to the programmable peripheral interconnect, which routes
// events of one peripheral to tasks of another without the CPU.
type PPI struct {
	hw *regs.PPI_Type
	// Bitmask of claimed programmable channels.
	claimedMask uint32
	nc          noCopy
}

// NewPPI returns a handle for the PPI register block hw.
func NewPPI(hw *regs.PPI_Type) *PPI {
	return &PPI{hw: hw}
}

// HW returns a pointer to the PPI's hardware registers.
func (p *PPI) HW() *regs.PPI_Type { return p.hw }

// Channel returns a programmable PPI channel by index.
func (p *PPI) Channel(index uint8) PPIChannel {
	if index >= regs.PPIProgrammableChannels {
		panic(badPPIChannel)
	}
	return PPIChannel{p: p, index: index}
}

// ClaimChannel returns an unused programmable channel or an error if all
// channels are claimed.
func (p *PPI) ClaimChannel() (ch PPIChannel, err error) {
	for i := uint8(0); i < regs.PPIProgrammableChannels; i++ {
		ch = p.Channel(i)
		if ch.TryClaim() {
			return ch, nil
		}
	}
	return PPIChannel{}, ErrAllChannelsClaimed
}

// EnableMask enables every channel whose bit is set in mask with a single
// CHENSET write; channels not in mask are left as they are.
func (p *PPI) EnableMask(mask uint32) { p.hw.CHENSET.Set(mask) }

// DisableMask disables every channel whose bit is set in mask with a single
// CHENCLR write.
func (p *PPI) DisableMask(mask uint32) { p.hw.CHENCLR.Set(mask) }

// Enabled returns the CHEN register: bit n is set if channel n is enabled.
func (p *PPI) Enabled() uint32 { return p.hw.CHEN.Get() }

// PPIChannel is one programmable PPI channel. It binds one event end-point to
// one task end-point, plus an optional fork task.
type PPIChannel struct {
	p     *PPI
	index uint8
}

// Index returns the channel number.
func (ch PPIChannel) Index() uint8 { return ch.index }

// Mask returns the channel's bit in CHEN, CHENSET and CHENCLR.
func (ch PPIChannel) Mask() uint32 { return 1 << ch.index }

// IsClaimed returns true if the channel is claimed by other code and should not be used.
func (ch PPIChannel) IsClaimed() bool { return ch.p.claimedMask&ch.Mask() != 0 }

// Unclaim releases the channel for use by other code.
func (ch PPIChannel) Unclaim() { ch.p.claimedMask &^= ch.Mask() }

// TryClaim attempts to claim the channel and returns true if successful, or
// false if it was already claimed. Either way the channel is claimed after the call.
func (ch PPIChannel) TryClaim() bool {
	if ch.IsClaimed() {
		return false
	}
	ch.p.claimedMask |= ch.Mask()
	return true
}

// Connect binds the event at bus address eventAddr to the task at bus address
// taskAddr. The binding has no effect until the channel is enabled.
func (ch PPIChannel) Connect(eventAddr, taskAddr uint32) {
	hw := &ch.p.hw.CH[ch.index]
	hw.EEP.Set(eventAddr)
	hw.TEP.Set(taskAddr)
}

// SetFork sets a second task triggered by the channel's event, or removes it
// if taskAddr is zero.
func (ch PPIChannel) SetFork(taskAddr uint32) {
	ch.p.hw.FORK[ch.index].TEP.Set(taskAddr)
}

// Enable enables the channel.
func (ch PPIChannel) Enable() { ch.p.EnableMask(ch.Mask()) }

// Disable disables the channel. Its end-points are kept.
func (ch PPIChannel) Disable() { ch.p.DisableMask(ch.Mask()) }

// IsEnabled returns true if the channel is enabled.
func (ch PPIChannel) IsEnabled() bool { return ch.p.Enabled()&ch.Mask() != 0 }
