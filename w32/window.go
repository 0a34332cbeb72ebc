//go:build windows

package w32

import (
	"context"
	"runtime"
	"sync"
	"syscall"
	"time"
	"unsafe"

	win "github.com/AllenDang/w32"
	"github.com/elliotmr/glbind/w32/types/ws"
	"github.com/elliotmr/glbind/w32/types/wsex"
	"go.uber.org/zap"
)

var (
	procDestroyWindow      = moduser32.NewProc("DestroyWindow")
	procDispatchMessage    = moduser32.NewProc("DispatchMessageW")
	procPeekMessage        = moduser32.NewProc("PeekMessageW")
	procTranslateMessage   = moduser32.NewProc("TranslateMessage")
	procAdjustWindowRectEx = moduser32.NewProc("AdjustWindowRectEx")
)

const pmRemove = 0x0001

// https://msdn.microsoft.com/en-us/library/windows/desktop/ms644958(v=vs.85).aspx
type msg struct {
	hwnd    syscall.Handle
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      point
}

// https://msdn.microsoft.com/en-us/library/windows/desktop/dd162805(v=vs.85).aspx
type point struct {
	x int32
	y int32
}

// WindowHandler receives the messages the window procedure does not
// handle itself.
type WindowHandler interface {
	OnMessage(uint32, uintptr, uintptr) (bool, uintptr)
}

type nopHandler struct{}

func (nopHandler) OnMessage(uint32, uintptr, uintptr) (bool, uintptr) { return false, 0 }

// WPUseDefault is CW_USEDEFAULT.
const WPUseDefault = 0x80000000

// WindowProps are the CreateWindowEx parameters. With explicit
// coordinates, Width and Height give the client area.
type WindowProps struct {
	Name          string
	Style         ws.WindowStyle
	ExtendedStyle wsex.ExtendedWindowStyle
	X             int64
	Y             int64
	Width         int64
	Height        int64
	Parent        *Window
	Menu          *Menu
	lpParam       uintptr
}

// Window is a top-level window whose messages are pumped by Run.
type Window struct {
	class   *WindowClass
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	h       syscall.Handle
	name    *uint16
	handler WindowHandler
	props   WindowProps
	ready   chan struct{}
}

func newWindow(wc *WindowClass, name *uint16, handler WindowHandler, props WindowProps) *Window {
	w := &Window{class: wc, name: name, handler: handler, props: props, ready: make(chan struct{})}
	w.ctx, w.cancel = context.WithCancel(context.Background())
	return w
}

func (w *Window) handle() syscall.Handle {
	if w == nil {
		return 0
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.h
}

// Handle returns the HWND, or 0 before Ready and after destruction.
func (w *Window) Handle() win.HWND {
	return win.HWND(w.handle())
}

// Ready is closed once the window exists or Run has failed.
func (w *Window) Ready() <-chan struct{} {
	return w.ready
}

// Close stops Run, which destroys the window.
func (w *Window) Close() {
	w.cancel()
}

func (w *Window) destroyed() {
	w.mu.Lock()
	w.h = 0
	w.mu.Unlock()
	w.class.forget(w)
	w.cancel()
}

func (w *Window) adjustRect() error {
	p := &w.props
	if p.Style == ws.Overlapped || p.X == WPUseDefault || p.Y == WPUseDefault || p.Width == WPUseDefault || p.Height == WPUseDefault {
		return nil
	}
	rect := struct {
		left   int32
		top    int32
		right  int32
		bottom int32
	}{
		int32(p.X),
		int32(p.Y),
		int32(p.X + p.Width),
		int32(p.Y + p.Height),
	}
	ret, _, err := procAdjustWindowRectEx.Call(
		uintptr(unsafe.Pointer(&rect)),
		uintptr(p.Style),
		uintptr(BoolToBOOL(p.Menu != nil)),
		uintptr(p.ExtendedStyle),
	)
	if ret == 0 {
		return lastError(err, "AdjustWindowRectEx")
	}
	p.X = int64(rect.left)
	p.Y = int64(rect.top)
	p.Width = int64(rect.right - rect.left)
	p.Height = int64(rect.bottom - rect.top)
	return nil
}

// Run creates the window and pumps its messages until Close is called or
// the window is destroyed. The window belongs to the OS thread Run is
// called on, which stays locked until Run returns.
func (w *Window) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	readyOnce := sync.Once{}
	signalReady := func() { readyOnce.Do(func() { close(w.ready) }) }
	defer signalReady()

	if err := w.adjustRect(); err != nil {
		return err
	}

	r0, _, el := procCreateWindowEx.Call(
		uintptr(w.props.ExtendedStyle),
		w.class.atom,
		uintptr(unsafe.Pointer(w.name)),
		uintptr(w.props.Style),
		uintptr(w.props.X),
		uintptr(w.props.Y),
		uintptr(w.props.Width),
		uintptr(w.props.Height),
		uintptr(w.props.Parent.handle()),
		uintptr(w.props.Menu.handle()),
		uintptr(inst.handle()),
		w.props.lpParam)
	if r0 == 0 {
		w.class.forget(w)
		return lastError(el, "CreateWindowExW")
	}
	w.mu.Lock()
	w.h = syscall.Handle(r0)
	w.mu.Unlock()
	Logger().Debug("created window", zap.String("title", w.props.Name), zap.Uintptr("hwnd", r0))
	signalReady()

	ticker := time.NewTicker(15 * time.Millisecond)
	defer ticker.Stop()
	m := msg{}
	for {
		select {
		case <-ticker.C:
			for {
				ret, _, _ := procPeekMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove)
				if ret == 0 {
					break // queue empty
				}
				procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
				procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
			}
		case <-w.ctx.Done():
			if h := w.handle(); h != 0 {
				procDestroyWindow.Call(uintptr(h))
			}
			return nil
		}
	}
}
