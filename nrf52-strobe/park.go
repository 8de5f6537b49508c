//go:build !cortexm

package strobe

import "time"

// Park blocks the calling goroutine forever. On host builds there is no core
// to put to sleep, so it just sleeps.
func Park() {
	for {
		time.Sleep(time.Hour)
	}
}
