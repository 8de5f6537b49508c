//go:build cortexm

package strobe

import "device/arm"

// Park hands the core over to the hardware for good: it waits for events in a
// loop and never returns. No interrupt is enabled by this package, so the
// loop only wakes for events owned by other code.
func Park() {
	for {
		arm.Asm("wfe")
	}
}
