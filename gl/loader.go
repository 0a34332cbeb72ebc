package gl

import (
	"sync"

	"github.com/ebitengine/purego"
	"github.com/elliotmr/glbind/internal/dynlib"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrProcNotFound is the cause of a ProcError when the symbol is absent.
var ErrProcNotFound = dynlib.ErrNotFound

// Loader resolves native entry points by their C name.
type Loader interface {
	Lookup(name string) (uintptr, error)
}

// LoaderFunc adapts a GetProcAddress style function to Loader.
type LoaderFunc func(name string) (uintptr, error)

// Lookup calls f.
func (f LoaderFunc) Lookup(name string) (uintptr, error) {
	return f(name)
}

var (
	loaderMu sync.Mutex
	loader   Loader
)

// bind makes the native function at addr callable through *fptr.
var bind = func(fptr interface{}, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}

// Init opens the system OpenGL library. Wrappers call it implicitly, so
// it only serves to surface a missing library early. The library handle
// is kept for the life of the process.
func Init() error {
	_, err := currentLoader()
	return err
}

// InitWithLoader replaces the symbol source, for example with a windowing
// toolkit's GetProcAddress, and forgets every pointer resolved so far. A
// nil l restores the system library. It must not race with GL calls.
func InitWithLoader(l Loader) {
	loaderMu.Lock()
	loader = l
	loaderMu.Unlock()
	resetEntryPoints()
}

func currentLoader() (Loader, error) {
	loaderMu.Lock()
	defer loaderMu.Unlock()
	if loader != nil {
		return loader, nil
	}
	l, err := openSystemLoader()
	if err != nil {
		return nil, errors.Wrap(err, "unable to open the OpenGL library")
	}
	Logger().Info("opened OpenGL library", zap.String("library", l.lib.Name()))
	loader = l
	return l, nil
}

func lookup(name string) (uintptr, error) {
	l, err := currentLoader()
	if err != nil {
		return 0, err
	}
	addr, err := l.Lookup(name)
	if err != nil {
		return 0, err
	}
	if addr == 0 {
		return 0, errors.Wrap(ErrProcNotFound, name)
	}
	return addr, nil
}

// systemLoader looks symbols up in the exported table of the OpenGL
// library first and falls back to the platform GetProcAddress, which is
// the only source of extension entry points on some drivers.
type systemLoader struct {
	lib            *dynlib.Library
	getProcAddress func(name string) uintptr
}

func openSystemLoader() (*systemLoader, error) {
	lib, err := dynlib.Open(libraryNames...)
	if err != nil {
		return nil, err
	}
	l := &systemLoader{lib: lib}
	if getProcAddressSymbol != "" {
		addr, err := lib.Lookup(getProcAddressSymbol)
		if err == nil {
			purego.RegisterFunc(&l.getProcAddress, addr)
		} else {
			Logger().Debug("no GetProcAddress fallback", zap.Error(err))
		}
	}
	return l, nil
}

func (l *systemLoader) Lookup(name string) (uintptr, error) {
	addr, err := l.lib.Lookup(name)
	if err == nil {
		return addr, nil
	}
	if l.getProcAddress != nil {
		if p := l.getProcAddress(name); validProcAddress(p) {
			return p, nil
		}
	}
	return 0, err
}
