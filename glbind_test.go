package glbind

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeSurface struct {
	title     string
	log       *[]string
	failMake  bool
	destroyed bool
}

func (s *fakeSurface) MakeCurrent() error {
	*s.log = append(*s.log, "current "+s.title)
	if s.failMake {
		return errors.New("bad match")
	}
	return nil
}

func (s *fakeSurface) SwapBuffers() {
	*s.log = append(*s.log, "swap "+s.title)
}

func (s *fakeSurface) Destroy() {
	s.destroyed = true
	*s.log = append(*s.log, "destroy "+s.title)
}

type fakeDisplay struct {
	windows map[string]*fakeSurface
	log     []string
}

func useFakeDisplay(t *testing.T, titles ...string) *fakeDisplay {
	d := &fakeDisplay{windows: make(map[string]*fakeSurface)}
	for _, title := range titles {
		d.windows[title] = &fakeSurface{title: title, log: &d.log}
	}
	orig := openSurface
	openSurface = func(title string) (surface, error) {
		s, ok := d.windows[title]
		if !ok {
			return nil, errors.New("window not found")
		}
		return s, nil
	}
	SetLogger(zaptest.NewLogger(t))
	t.Cleanup(func() {
		Release()
		openSurface = orig
		SetLogger(nil)
	})
	return d
}

func TestSwapBuffersWithoutContext(t *testing.T) {
	useFakeDisplay(t)
	assert.Equal(t, ErrNoContext, SwapBuffers())
}

func TestMakeCurrentAndSwap(t *testing.T) {
	d := useFakeDisplay(t, "demo")

	require.NoError(t, MakeCurrent("demo"))
	require.NoError(t, SwapBuffers())
	require.NoError(t, SwapBuffers())
	Release()
	assert.Equal(t, ErrNoContext, SwapBuffers())

	assert.Equal(t, []string{"current demo", "swap demo", "swap demo", "destroy demo"}, d.log)
}

func TestMakeCurrentReplacesContext(t *testing.T) {
	d := useFakeDisplay(t, "first", "second")

	require.NoError(t, MakeCurrent("first"))
	require.NoError(t, MakeCurrent("second"))
	require.NoError(t, SwapBuffers())

	assert.Equal(t, []string{"current first", "destroy first", "current second", "swap second"}, d.log)
	assert.True(t, d.windows["first"].destroyed)
	assert.False(t, d.windows["second"].destroyed)
}

func TestMakeCurrentWindowNotFound(t *testing.T) {
	d := useFakeDisplay(t, "demo")
	require.NoError(t, MakeCurrent("demo"))

	err := MakeCurrent("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unable to create context for "missing"`)
	// the old context survives a failed lookup
	assert.NoError(t, SwapBuffers())
	assert.Equal(t, []string{"current demo", "swap demo"}, d.log)
}

func TestMakeCurrentFails(t *testing.T) {
	d := useFakeDisplay(t, "broken")
	d.windows["broken"].failMake = true

	assert.EqualError(t, MakeCurrent("broken"), "bad match")
	assert.True(t, d.windows["broken"].destroyed)
	assert.Equal(t, ErrNoContext, SwapBuffers())
}

func TestSleep(t *testing.T) {
	begin := time.Now()
	Sleep(10)
	assert.GreaterOrEqual(t, time.Since(begin), 10*time.Millisecond)
}

func TestMakeCurrentFromAnotherThread(t *testing.T) {
	d := useFakeDisplay(t, "first", "second")
	require.NoError(t, MakeCurrent("first"))
	if owner == 0 {
		t.Skip("thread ids are not available on this platform")
	}

	orig := threadID
	threadID = func() int { return owner + 1 }
	t.Cleanup(func() { threadID = orig })
	assert.Equal(t, ErrWrongThread, MakeCurrent("second"))
	Release()
	assert.False(t, d.windows["first"].destroyed)
	threadID = orig

	require.NoError(t, SwapBuffers())
	assert.Equal(t, []string{"current first", "swap first"}, d.log)
}
