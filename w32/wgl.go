//go:build windows

package w32

import (
	"unsafe"

	win "github.com/AllenDang/w32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	procChoosePixelFormat = modgdi32.NewProc("ChoosePixelFormat")
	procSetPixelFormat    = modgdi32.NewProc("SetPixelFormat")
	procSwapBuffers       = modgdi32.NewProc("SwapBuffers")
	procWglCreateContext  = modopengl32.NewProc("wglCreateContext")
	procWglMakeCurrent    = modopengl32.NewProc("wglMakeCurrent")
	procWglDeleteContext  = modopengl32.NewProc("wglDeleteContext")
)

const (
	pfdDoubleBuffer  = 0x00000001
	pfdDrawToWindow  = 0x00000004
	pfdSupportOpenGL = 0x00000020
	pfdTypeRGBA      = 0
	pfdMainPlane     = 0
)

// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-pixelformatdescriptor
type pixelFormatDescriptor struct {
	size           uint16
	version        uint16
	flags          uint32
	pixelType      byte
	colorBits      byte
	redBits        byte
	redShift       byte
	greenBits      byte
	greenShift     byte
	blueBits       byte
	blueShift      byte
	alphaBits      byte
	alphaShift     byte
	accumBits      byte
	accumRedBits   byte
	accumGreenBits byte
	accumBlueBits  byte
	accumAlphaBits byte
	depthBits      byte
	stencilBits    byte
	auxBuffers     byte
	layerType      byte
	reserved       byte
	layerMask      uint32
	visibleMask    uint32
	damageMask     uint32
}

func newPixelFormatDescriptor() *pixelFormatDescriptor {
	pfd := &pixelFormatDescriptor{
		version:   1,
		flags:     pfdDrawToWindow | pfdSupportOpenGL | pfdDoubleBuffer,
		pixelType: pfdTypeRGBA,
		colorBits: 32,
		depthBits: 24,
		layerType: pfdMainPlane,
	}
	pfd.size = uint16(unsafe.Sizeof(*pfd))
	return pfd
}

// Context is a WGL rendering context on a window's device context.
type Context struct {
	hwnd win.HWND
	hdc  win.HDC
	rc   uintptr
}

// NewContext selects a double buffered RGBA pixel format for hwnd and
// creates a context on it. A window's pixel format can be set only once.
func NewContext(hwnd win.HWND) (*Context, error) {
	hdc := win.GetDC(hwnd)
	if hdc == 0 {
		return nil, errors.Errorf("unable to get device context of window 0x%x", hwnd)
	}
	c := &Context{hwnd: hwnd, hdc: hdc}
	if err := c.setPixelFormat(); err != nil {
		win.ReleaseDC(hwnd, hdc)
		return nil, err
	}
	rc, _, el := procWglCreateContext.Call(uintptr(hdc))
	if rc == 0 {
		win.ReleaseDC(hwnd, hdc)
		return nil, lastError(el, "wglCreateContext")
	}
	c.rc = rc
	Logger().Debug("created WGL context", zap.Uintptr("hwnd", uintptr(hwnd)))
	return c, nil
}

func (c *Context) setPixelFormat() error {
	pfd := newPixelFormatDescriptor()
	format, _, el := procChoosePixelFormat.Call(uintptr(c.hdc), uintptr(unsafe.Pointer(pfd)))
	if format == 0 {
		return lastError(el, "ChoosePixelFormat")
	}
	ret, _, el := procSetPixelFormat.Call(uintptr(c.hdc), format, uintptr(unsafe.Pointer(pfd)))
	if ret == 0 {
		return lastError(el, "SetPixelFormat")
	}
	return nil
}

// MakeCurrent binds the context to the calling thread.
func (c *Context) MakeCurrent() error {
	ret, _, el := procWglMakeCurrent.Call(uintptr(c.hdc), c.rc)
	if ret == 0 {
		return lastError(el, "wglMakeCurrent")
	}
	return nil
}

// SwapBuffers presents the back buffer.
func (c *Context) SwapBuffers() {
	procSwapBuffers.Call(uintptr(c.hdc))
}

// Destroy releases the context and the device context.
func (c *Context) Destroy() {
	if c.rc == 0 {
		return
	}
	procWglMakeCurrent.Call(0, 0)
	procWglDeleteContext.Call(c.rc)
	win.ReleaseDC(c.hwnd, c.hdc)
	c.rc = 0
}
