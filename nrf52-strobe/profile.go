package strobe

import (
	"math"
	"time"

	"go.uber.org/multierr"
)

const (
	// Prescaler used for the strobe timer: 16 MHz / 2^4 = 1 MHz.
	tickPrescaler = 4
	// TickPeriod is the duration of one timer tick.
	TickPeriod = time.Microsecond
	// TicksPerMillisecond is the number of timer ticks in a millisecond.
	TicksPerMillisecond = uint32(time.Millisecond / TickPeriod)
	// Largest compare value of the 32-bit counter.
	maxTicks = 1<<32 - 1
)

// Profile is the timing of the generated pulse train. Each cycle is Period
// long; the pin goes high Offset into the cycle and stays high for Duration.
type Profile struct {
	Offset   time.Duration
	Duration time.Duration
	Period   time.Duration
}

// Validate reports every violation of the profile at once. The falling edge
// must come strictly before the end of the period, and each value must be a
// whole number of ticks that fits the 32-bit counter. Test for a specific
// violation with errors.Is.
func (p Profile) Validate() (err error) {
	if p.Offset < 0 {
		err = multierr.Append(err, ErrNegativeOffset)
	}
	if p.Duration <= 0 {
		err = multierr.Append(err, ErrNonPositiveDuration)
	}
	fall := p.Offset + p.Duration
	if p.Duration > 0 && fall < p.Offset {
		fall = math.MaxInt64
	}
	if fall >= p.Period {
		err = multierr.Append(err, ErrFallAfterPeriod)
	}
	for _, d := range [...]time.Duration{p.Offset, p.Duration, p.Period} {
		if d >= 0 && d%TickPeriod != 0 {
			err = multierr.Append(err, ErrTickResolution)
			break
		}
	}
	for _, d := range [...]time.Duration{p.Offset, p.Duration, p.Period} {
		if d/TickPeriod > maxTicks {
			err = multierr.Append(err, ErrTickOverflow)
			break
		}
	}
	return err
}

// Ticks converts the profile to the three compare values of the strobe
// timer: the rising edge at Offset, the falling edge at Offset+Duration and
// the end of the cycle at Period. It only checks that each value is
// representable; use Validate to check the edges are ordered.
func (p Profile) Ticks() (rise, fall, end uint32, err error) {
	if rise, err = toTicks(p.Offset, ErrNegativeOffset); err != nil {
		return 0, 0, 0, err
	}
	width, err := toTicks(p.Duration, ErrNonPositiveDuration)
	if err != nil {
		return 0, 0, 0, err
	}
	if uint64(rise)+uint64(width) > maxTicks {
		return 0, 0, 0, ErrTickOverflow
	}
	if end, err = toTicks(p.Period, ErrFallAfterPeriod); err != nil {
		return 0, 0, 0, err
	}
	return rise, rise + width, end, nil
}

// DutyCycle returns the fraction of each period the pin is high, in parts per million.
func (p Profile) DutyCycle() uint32 {
	if p.Period <= 0 {
		return 0
	}
	return uint32(int64(p.Duration) * 1e6 / int64(p.Period))
}

// toTicks converts d to ticks, failing with errNegative if d is negative.
func toTicks(d time.Duration, errNegative error) (uint32, error) {
	switch {
	case d < 0:
		return 0, errNegative
	case d%TickPeriod != 0:
		return 0, ErrTickResolution
	case d/TickPeriod > maxTicks:
		return 0, ErrTickOverflow
	}
	return uint32(d / TickPeriod), nil
}
