//go:build windows

package w32

import (
	"sync"
	"syscall"
	"unsafe"

	"github.com/elliotmr/glbind/w32/types/cs"
	"github.com/elliotmr/glbind/w32/types/wm"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

var (
	procRegisterClassEx = moduser32.NewProc("RegisterClassExW")
	procUnregisterClass = moduser32.NewProc("UnregisterClassW")
	procCreateWindowEx  = moduser32.NewProc("CreateWindowExW")
	procDefWindowProc   = moduser32.NewProc("DefWindowProcW")
)

// http://msdn.microsoft.com/en-us/library/windows/desktop/ms633577.aspx
type wndclassex struct {
	size       uint32
	style      uint32
	wndProc    uintptr
	clsExtra   int32
	wndExtra   int32
	instance   syscall.Handle
	icon       syscall.Handle
	cursor     syscall.Handle
	background syscall.Handle
	menuName   *uint16
	className  *uint16
	iconSm     syscall.Handle
}

// WindowClass is a registered window class. Windows created from it are
// dispatched to their handler by the class window procedure.
// NOTE: No support for extra bytes.
type WindowClass struct {
	Name       string
	MenuName   string
	Style      cs.ClassStyle
	Icon       *Icon
	IconSm     *Icon
	Cursor     *Cursor
	Background *Brush

	mu      sync.Mutex
	windows []*Window
	atom    uintptr
}

// OpenGLClass returns a class suitable for windows hosting a WGL context:
// each window keeps its own device context.
func OpenGLClass(name string) *WindowClass {
	return &WindowClass{
		Name:       name,
		Style:      cs.OwnDC | cs.HReDraw | cs.VReDraw,
		Background: SystemColorBrush(5),
	}
}

// Register registers the class with the system.
func (wc *WindowClass) Register() error {
	className, err := windows.UTF16PtrFromString(wc.Name)
	if err != nil {
		return errors.Wrap(err, "invalid class name")
	}
	var menuName *uint16
	if wc.MenuName != "" {
		if menuName, err = windows.UTF16PtrFromString(wc.MenuName); err != nil {
			return errors.Wrap(err, "invalid menu name")
		}
	}

	wcex := wndclassex{
		style:      uint32(wc.Style),
		instance:   inst.handle(),
		wndProc:    windows.NewCallback(wc.process),
		icon:       wc.Icon.handle(),
		cursor:     wc.Cursor.handle(),
		background: wc.Background.handle(),
		menuName:   menuName,
		className:  className,
		iconSm:     wc.IconSm.handle(),
	}
	wcex.size = uint32(unsafe.Sizeof(wcex))
	r0, _, el := procRegisterClassEx.Call(uintptr(unsafe.Pointer(&wcex)))
	if r0 == 0 {
		return lastError(el, "RegisterClassExW")
	}
	wc.atom = r0
	Logger().Debug("registered window class", zap.String("name", wc.Name))
	return nil
}

// UnRegister removes the class. All its windows must be destroyed first.
func (wc *WindowClass) UnRegister() error {
	r0, _, el := procUnregisterClass.Call(wc.atom, uintptr(inst.handle()))
	if r0 == 0 {
		return lastError(el, "UnregisterClassW")
	}
	return nil
}

// New prepares a window of this class. The window exists once Run has
// signalled Ready.
func (wc *WindowClass) New(handler WindowHandler, props WindowProps) (*Window, error) {
	if wc == nil || wc.atom == 0 {
		return nil, errors.New("window class was not registered")
	}
	name, err := windows.UTF16PtrFromString(props.Name)
	if err != nil {
		return nil, errors.Wrap(err, "invalid window name")
	}
	if handler == nil {
		handler = nopHandler{}
	}

	w := newWindow(wc, name, handler, props)
	wc.mu.Lock()
	wc.windows = append(wc.windows, w)
	wc.mu.Unlock()
	return w, nil
}

func (wc *WindowClass) lookup(hwnd syscall.Handle) *Window {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	for _, w := range wc.windows {
		if hwnd == w.handle() {
			return w
		}
	}
	return nil
}

func (wc *WindowClass) forget(w *Window) {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	for i, o := range wc.windows {
		if o == w {
			wc.windows = append(wc.windows[:i], wc.windows[i+1:]...)
			return
		}
	}
}

func (wc *WindowClass) process(hwnd syscall.Handle, uMsg uint32, wParam, lParam uintptr) uintptr {
	if w := wc.lookup(hwnd); w != nil {
		switch uMsg {
		case wm.Close:
			w.Close()
			return 0
		case wm.Destroy:
			w.destroyed()
		default:
			if handled, ret := w.handler.OnMessage(uMsg, wParam, lParam); handled {
				return ret
			}
		}
	}
	ret, _, _ := procDefWindowProc.Call(uintptr(hwnd), uintptr(uMsg), wParam, lParam)
	return ret
}
