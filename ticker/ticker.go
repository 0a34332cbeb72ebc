// Package ticker measures time since start-up and sleeps the calling
// thread.
package ticker

import (
	"sync"
	"time"
)

var (
	mu    sync.RWMutex
	start = time.Now()
)

// Initialize resets the start time.
func Initialize() {
	mu.Lock()
	start = time.Now()
	mu.Unlock()
}

// Get returns the time elapsed since Initialize, or since the package was
// loaded.
func Get() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return time.Since(start)
}

// GetAsMS is Get in milliseconds.
func GetAsMS() uint32 {
	return uint32(Get() / time.Millisecond)
}

// Sleep blocks the calling OS thread for at least d. On Linux and Windows
// it sleeps in nanosleep or SleepEx instead of on a runtime timer,
// resuming after EINTR.
func Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	sleep(d)
}
