//go:build !linux && !windows

package ticker

import "time"

func sleep(d time.Duration) {
	time.Sleep(d)
}
