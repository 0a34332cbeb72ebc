package ticker

import (
	"time"

	"golang.org/x/sys/windows"
)

func sleep(d time.Duration) {
	ms := (d + time.Millisecond - 1) / time.Millisecond
	windows.SleepEx(uint32(ms), false)
}
