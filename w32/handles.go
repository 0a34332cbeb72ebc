//go:build windows

package w32

import "syscall"

// Brush is an HBRUSH.
type Brush struct {
	h syscall.Handle
}

// SystemColorBrush returns the brush value Win32 accepts for a COLOR_*
// system color index in a window class.
func SystemColorBrush(color int) *Brush {
	return &Brush{h: syscall.Handle(color + 1)}
}

func (b *Brush) handle() syscall.Handle {
	if b == nil {
		return 0
	}
	return b.h
}

// Cursor is an HCURSOR.
type Cursor struct {
	h syscall.Handle
}

func (c *Cursor) handle() syscall.Handle {
	if c == nil {
		return 0
	}
	return c.h
}

// Icon is an HICON.
type Icon struct {
	h syscall.Handle
}

func (i *Icon) handle() syscall.Handle {
	if i == nil {
		return 0
	}
	return i.h
}

// Menu is an HMENU.
type Menu struct {
	h syscall.Handle
}

func (m *Menu) handle() syscall.Handle {
	if m == nil {
		return 0
	}
	return m.h
}
