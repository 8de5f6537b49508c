// Package strobe generates a periodic pulse on an nRF52840 pin entirely in
// hardware. A TIMER counts out the period, two of its compare events are
// routed through the PPI to a GPIOTE channel that toggles the pin, and a
// shortcut restarts the count at the end of every period. Once started the
// CPU takes no part in producing the waveform and can be parked with Park.
package strobe

import (
	"errors"
)

// Strobe errors.
var (
	ErrNegativeOffset       = errors.New("strobe: negative pulse offset")
	ErrNonPositiveDuration  = errors.New("strobe: pulse duration must be positive")
	ErrFallAfterPeriod      = errors.New("strobe: pulse does not end before the period")
	ErrTickResolution       = errors.New("strobe: time is not a whole number of ticks")
	ErrTickOverflow         = errors.New("strobe: time overflows the 32-bit counter")
	ErrSharedRouteChannel   = errors.New("strobe: rise and fall routes share a PPI channel")
	ErrTimerClaimed         = errors.New("strobe: timer already claimed")
	ErrGPIOTEChannelClaimed = errors.New("strobe: GPIOTE channel already claimed")
	ErrPPIChannelClaimed    = errors.New("strobe: PPI channel already claimed")
	ErrAllChannelsClaimed   = errors.New("strobe: all channels claimed")
)

const (
	badPin           = "strobe:bad pin"
	badGPIOTEChannel = "strobe:bad GPIOTE channel"
	badPPIChannel    = "strobe:bad PPI channel"
	badCompareSlot   = "strobe:bad compare slot"
	badCompareValue  = "strobe:compare value exceeds counter width"
	badStrobe        = "strobe:Strobe not initialized"
)

// Compare slots used by a Strobe.
const (
	slotRise = 0
	slotFall = 1
	slotEnd  = 2
)

// Config selects the pin, timing and hardware channels of a Strobe.
type Config struct {
	// Pin carrying the pulse train.
	Pin Pin
	// Profile is the pulse timing.
	Profile Profile
	// GPIOTEChannel drives Pin.
	GPIOTEChannel uint8
	// RiseChannel and FallChannel are the PPI channels routing the rising
	// and falling edge compare events. They must differ.
	RiseChannel uint8
	FallChannel uint8
}

// State is the life cycle stage of a Strobe.
type State uint8

const (
	// Idle: nothing has been written to the hardware.
	Idle State = iota
	// Armed: all three peripherals are configured, the timer is stopped at zero.
	Armed
	// Running: the timer runs and the hardware produces the pulse train.
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	case Running:
		return "running"
	}
	return "unknown"
}

// Strobe is a hardware pulse generator built from one GPIOTE channel, one
// timer and two PPI channels, all exclusively owned by it.
type Strobe struct {
	out     GPIOTEChannel
	timer   *Timer
	rise    PPIChannel
	fall    PPIChannel
	profile Profile
	state   State
}

// New claims the timer t and the channels named by cfg, then programs the pin
// unit, the timer and the event routing in that order, leaving the strobe
// Armed: the pin is low and the counter stopped at zero. Nothing is written to
// the hardware if cfg is invalid or anything it needs is already claimed.
func New(g *GPIOTE, t *Timer, p *PPI, cfg Config) (*Strobe, error) {
	if err := cfg.Profile.Validate(); err != nil {
		return nil, err
	}
	if cfg.RiseChannel == cfg.FallChannel {
		return nil, ErrSharedRouteChannel
	}
	checkPin(cfg.Pin)
	rise, fall, end, err := cfg.Profile.Ticks()
	if err != nil {
		return nil, err
	}

	s := &Strobe{
		out:     g.Channel(cfg.GPIOTEChannel),
		timer:   t,
		rise:    p.Channel(cfg.RiseChannel),
		fall:    p.Channel(cfg.FallChannel),
		profile: cfg.Profile,
	}
	if err := s.claim(); err != nil {
		return nil, err
	}

	s.out.ConfigureTask(cfg.Pin, PolarityToggle, Low)

	tcfg := DefaultTimerConfig()
	tcfg.SetCompare(slotRise, rise)
	tcfg.SetCompare(slotFall, fall)
	tcfg.SetCompare(slotEnd, end)
	tcfg.SetCompareClear(slotEnd, true)
	t.Configure(tcfg)

	task := s.out.TaskOutAddr()
	s.rise.Connect(t.CompareEventAddr(slotRise), task)
	s.fall.Connect(t.CompareEventAddr(slotFall), task)
	p.EnableMask(s.rise.Mask() | s.fall.Mask())

	s.state = Armed
	return s, nil
}

// claim claims the timer and every channel of the strobe, or none of them.
func (s *Strobe) claim() error {
	if !s.timer.TryClaim() {
		return ErrTimerClaimed
	}
	if !s.out.TryClaim() {
		s.timer.Unclaim()
		return ErrGPIOTEChannelClaimed
	}
	if !s.rise.TryClaim() {
		s.timer.Unclaim()
		s.out.Unclaim()
		return ErrPPIChannelClaimed
	}
	if !s.fall.TryClaim() {
		s.timer.Unclaim()
		s.out.Unclaim()
		s.rise.Unclaim()
		return ErrPPIChannelClaimed
	}
	return nil
}

// Start starts the timer. From here on the pulse train runs with no software
// involvement. Calling Start on a running strobe does nothing.
func (s *Strobe) Start() {
	s.mustArmed()
	if s.state == Running {
		return
	}
	s.timer.Start()
	s.state = Running
}

// State returns the life cycle stage of the strobe.
func (s *Strobe) State() State { return s.state }

// Profile returns the pulse timing the strobe was configured with.
func (s *Strobe) Profile() Profile { return s.profile }

func (s *Strobe) mustArmed() {
	if s.state == Idle {
		panic(badStrobe)
	}
}

func boolToBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// noCopy may be embedded into structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
