//go:build windows

package w32

import (
	win "github.com/AllenDang/w32"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// ErrWindowNotFound is returned when no top-level window has the title.
var ErrWindowNotFound = errors.New("window not found")

// FindWindow returns the top-level window whose title is exactly title.
// An empty title matches nothing.
func FindWindow(title string) (win.HWND, error) {
	if title == "" {
		return 0, errors.Wrap(ErrWindowNotFound, "empty title")
	}
	name, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, errors.Wrap(err, "invalid window title")
	}
	hwnd := win.FindWindowW(nil, name)
	if hwnd == 0 {
		return 0, errors.Wrapf(ErrWindowNotFound, "%q", title)
	}
	return hwnd, nil
}
