package ticker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	Initialize()
	first := Get()
	Sleep(5 * time.Millisecond)
	second := Get()
	assert.GreaterOrEqual(t, second-first, 5*time.Millisecond)
	assert.GreaterOrEqual(t, GetAsMS(), uint32(5))
}

func TestSleep(t *testing.T) {
	cases := []time.Duration{-time.Second, 0, time.Microsecond, 20 * time.Millisecond}
	for _, d := range cases {
		t.Run(d.String(), func(t *testing.T) {
			begin := time.Now()
			Sleep(d)
			elapsed := time.Since(begin)
			if d <= 0 {
				assert.Less(t, elapsed, time.Second)
				return
			}
			assert.GreaterOrEqual(t, elapsed, d)
			assert.Less(t, elapsed, d+time.Second)
		})
	}
}
