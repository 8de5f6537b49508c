//go:build nrf52840

package main

import (
	"machine"
	"time"

	strobe "github.com/nrf-sync/transmitter/nrf52-strobe"
)

const (
	outputPin     = strobe.Pin(machine.P1_08)
	timerOffset   = 0 * time.Millisecond
	pulseDuration = 10 * time.Millisecond
	pulsePeriod   = 1000 * time.Millisecond

	gpioteChannel = 0
	riseChannel   = 0
	fallChannel   = 1
)

func main() {
	s, err := strobe.New(strobe.GPIOTE0, strobe.TIMER0, strobe.PPI0, strobe.Config{
		Pin: outputPin,
		Profile: strobe.Profile{
			Offset:   timerOffset,
			Duration: pulseDuration,
			Period:   pulsePeriod,
		},
		GPIOTEChannel: gpioteChannel,
		RiseChannel:   riseChannel,
		FallChannel:   fallChannel,
	})
	if err != nil {
		panic(err.Error())
	}
	p := s.Profile()
	println("strobe on pin", int(outputPin), "period", p.Period.Milliseconds(), "ms duty", p.DutyCycle(), "ppm")

	s.Start()
	strobe.Park()
}
