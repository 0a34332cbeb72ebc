//go:build windows

package w32

import (
	"runtime"
	"testing"
	"time"
	"unsafe"

	"github.com/elliotmr/glbind/w32/types/ws"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingHandler struct {
	messages chan uint32
}

func (h *countingHandler) OnMessage(uMsg uint32, wParam, lParam uintptr) (bool, uintptr) {
	select {
	case h.messages <- uMsg:
	default:
	}
	return false, 0
}

func startWindow(t *testing.T, wc *WindowClass, title string) (*Window, chan error) {
	props := WindowProps{
		Name:   title,
		Style:  ws.OverlappedWindow,
		X:      WPUseDefault,
		Y:      WPUseDefault,
		Width:  320,
		Height: 240,
	}
	w, err := wc.New(&countingHandler{messages: make(chan uint32, 64)}, props)
	require.NoError(t, err)
	done := make(chan error, 1)
	go func() { done <- w.Run() }()
	select {
	case <-w.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("window was not created")
	}
	require.NotZero(t, w.Handle())
	return w, done
}

func TestWindowClassRegister(t *testing.T) {
	wc := OpenGLClass("GlbindTestWindowClass")
	require.NoError(t, wc.Register())

	w, done := startWindow(t, wc, "glbind window class test")
	w.Close()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.Zero(t, w.Handle())
	assert.NoError(t, wc.UnRegister())
}

func TestNewUnregisteredClass(t *testing.T) {
	wc := &WindowClass{Name: "GlbindNeverRegistered"}
	_, err := wc.New(nil, WindowProps{Name: "x"})
	assert.Error(t, err)
}

func TestFindWindow(t *testing.T) {
	wc := OpenGLClass("GlbindFindWindowClass")
	require.NoError(t, wc.Register())
	defer wc.UnRegister()

	w, done := startWindow(t, wc, "glbind find window test")
	defer func() {
		w.Close()
		<-done
	}()

	hwnd, err := FindWindow("glbind find window test")
	require.NoError(t, err)
	assert.Equal(t, w.Handle(), hwnd)

	_, err = FindWindow("glbind find window tes")
	assert.Equal(t, ErrWindowNotFound, errors.Cause(err))

	_, err = FindWindow("")
	assert.Equal(t, ErrWindowNotFound, errors.Cause(err))
}

func TestContext(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	wc := OpenGLClass("GlbindContextClass")
	require.NoError(t, wc.Register())
	defer wc.UnRegister()

	w, done := startWindow(t, wc, "glbind context test")
	defer func() {
		w.Close()
		<-done
	}()

	c, err := NewContext(w.Handle())
	require.NoError(t, err)
	defer c.Destroy()
	require.NoError(t, c.MakeCurrent())
	c.SwapBuffers()
}

func TestPixelFormatDescriptorLayout(t *testing.T) {
	pfd := newPixelFormatDescriptor()
	assert.Equal(t, uint16(40), pfd.size)
	assert.Equal(t, uintptr(28), unsafe.Offsetof(pixelFormatDescriptor{}.layerMask))
	assert.Equal(t, uint32(pfdDrawToWindow|pfdSupportOpenGL|pfdDoubleBuffer), pfd.flags)
}

func TestBoolToBOOL(t *testing.T) {
	assert.Equal(t, int32(1), BoolToBOOL(true))
	assert.Equal(t, int32(0), BoolToBOOL(false))
}
