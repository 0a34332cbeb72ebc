//go:build windows

// Package w32 finds and creates Win32 windows and drives WGL rendering
// contexts on them.
package w32

import (
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	moduser32   = windows.NewLazySystemDLL("user32.dll")
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	modgdi32    = windows.NewLazySystemDLL("gdi32.dll")
	modopengl32 = windows.NewLazySystemDLL("opengl32.dll")
)

var procGetModuleHandle = modkernel32.NewProc("GetModuleHandleW")

var inst *Module

func init() {
	var err error
	inst, err = GetModule("")
	if err != nil {
		panic(err)
	}
}

// Module is a loaded executable or DLL.
type Module struct {
	h syscall.Handle
}

func (m *Module) handle() syscall.Handle {
	if m == nil {
		return 0
	}
	return m.h
}

// GetModule returns the module called name, or the executable when name
// is empty.
func GetModule(name string) (*Module, error) {
	var mn uintptr
	if name != "" {
		n, err := windows.UTF16PtrFromString(name)
		if err != nil {
			return nil, errors.Wrap(err, "invalid module name")
		}
		mn = uintptr(unsafe.Pointer(n))
	}
	ret, _, err := procGetModuleHandle.Call(mn)
	if ret == 0 {
		return nil, lastError(err, "GetModuleHandleW")
	}
	return &Module{h: syscall.Handle(ret)}, nil
}

// lastError turns the error of a failed proc call into a wrapped errno,
// substituting EINVAL when the call did not set one.
func lastError(err error, call string) error {
	if errno, ok := err.(syscall.Errno); ok && errno != 0 {
		return errors.Wrap(errno, call)
	}
	return errors.Wrap(syscall.EINVAL, call)
}
