package strobe

// Pin identifies a GPIO by port and number, encoded as port*32 + number.
// The encoding matches machine.Pin on the nRF52840, so machine.P1_08 can be
// converted directly.
type Pin uint8

// Pin counts on the nRF52840: P0.00-P0.31 and P1.00-P1.15.
const (
	pinsPerPort = 32
	maxPin      = 48
)

// PortPin returns the Pin for the given port and pin number within the port.
func PortPin(port, number uint8) Pin {
	if port > 1 || number >= pinsPerPort {
		panic(badPin)
	}
	return checkPin(Pin(port*pinsPerPort + number))
}

// Port returns the GPIO port index of the pin.
func (p Pin) Port() uint8 { return uint8(p) / pinsPerPort }

// Number returns the index of the pin within its port.
func (p Pin) Number() uint8 { return uint8(p) % pinsPerPort }

func checkPin(p Pin) Pin {
	if p >= maxPin {
		panic(badPin)
	}
	return p
}

// Level is a logic level on a pin.
type Level uint8

const (
	Low Level = iota
	High
)

// Polarity is the action a GPIOTE channel in task mode applies to its pin
// when the OUT task is triggered.
type Polarity uint8

const (
	PolarityNone Polarity = iota
	PolarityLoToHi
	PolarityHiToLo
	PolarityToggle
)
