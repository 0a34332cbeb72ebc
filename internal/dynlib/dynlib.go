// Package dynlib opens shared libraries at runtime and resolves their
// exported symbols. Libraries are never closed.
package dynlib

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrNotFound is the cause of every failed symbol lookup.
var ErrNotFound = errors.New("symbol not found")

// Library is a loaded shared library.
type Library struct {
	name   string
	handle uintptr
}

// Name returns the file name the library was loaded from.
func (l *Library) Name() string {
	return l.name
}

// Open loads the first of names that the dynamic linker accepts.
func Open(names ...string) (*Library, error) {
	if len(names) == 0 {
		return nil, errors.New("no library names given")
	}
	var failures []string
	for _, name := range names {
		h, err := open(name)
		if err == nil {
			return &Library{name: name, handle: h}, nil
		}
		failures = append(failures, err.Error())
	}
	return nil, errors.Errorf("unable to load any of [%s]: %s",
		strings.Join(names, ", "), strings.Join(failures, "; "))
}

// Lookup returns the address of symbol. Failures have ErrNotFound as
// their cause.
func (l *Library) Lookup(symbol string) (uintptr, error) {
	addr, err := lookup(l.handle, symbol)
	if err != nil || addr == 0 {
		return 0, errors.Wrapf(ErrNotFound, "%s in %s", symbol, l.name)
	}
	return addr, nil
}
