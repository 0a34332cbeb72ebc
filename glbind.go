// Package glbind makes an OpenGL context current on an existing window
// found by its title. The GL entry points themselves live in package gl.
package glbind

import (
	"runtime"
	"sync"
	"time"

	"github.com/elliotmr/glbind/gl"
	"github.com/elliotmr/glbind/ticker"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	// ErrNoContext is returned by SwapBuffers before MakeCurrent.
	ErrNoContext = errors.New("no current context")
	// ErrUnsupported is returned on platforms without context glue.
	ErrUnsupported = errors.New("context creation is not supported on this platform")
	// ErrWrongThread is returned by MakeCurrent when a context is current
	// on another thread.
	ErrWrongThread = errors.New("context is current on another thread")
)

// surface is a rendering context bound to one window.
type surface interface {
	MakeCurrent() error
	SwapBuffers()
	Destroy()
}

var (
	mu      sync.Mutex
	current surface
	owner   int // thread current was made current on, 0 if unknown
)

// onOwnerThread reports whether the caller runs on the thread that owns
// current. The owner thread is locked to its goroutine, so no other
// goroutine can observe its id.
func onOwnerThread() bool {
	return owner == 0 || threadID() == owner
}

// MakeCurrent finds the window titled title, creates a double buffered
// context for it and makes it current on the calling goroutine's OS
// thread, which stays locked to the goroutine. The context replaces any
// previous one.
//
// Once a context is current, MakeCurrent, Release and all gl calls must
// come from the goroutine that made it current. Replacing the context
// from another goroutine fails with ErrWrongThread where the thread can
// be identified (Linux and Windows).
func MakeCurrent(title string) error {
	mu.Lock()
	defer mu.Unlock()

	if current != nil && !onOwnerThread() {
		return ErrWrongThread
	}
	runtime.LockOSThread()
	s, err := openSurface(title)
	if err != nil {
		runtime.UnlockOSThread()
		return errors.Wrapf(err, "unable to create context for %q", title)
	}
	// releasing a context unbinds whatever is current on the thread
	if current != nil {
		current.Destroy()
		current, owner = nil, 0
		runtime.UnlockOSThread()
	}
	if err := s.MakeCurrent(); err != nil {
		s.Destroy()
		runtime.UnlockOSThread()
		return err
	}
	current = s
	owner = threadID()
	Logger().Info("context current", zap.String("title", title))
	return nil
}

// SwapBuffers presents the back buffer of the current context.
func SwapBuffers() error {
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		return ErrNoContext
	}
	current.SwapBuffers()
	return nil
}

// Sleep blocks the calling thread for ms milliseconds.
func Sleep(ms uint32) {
	ticker.Sleep(time.Duration(ms) * time.Millisecond)
}

// Release destroys the current context and unlocks the thread MakeCurrent
// locked. It must run on that thread; elsewhere it logs and does nothing.
func Release() {
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		return
	}
	if !onOwnerThread() {
		Logger().Warn("release from another thread ignored", zap.Int("owner", owner))
		return
	}
	current.Destroy()
	current = nil
	owner = 0
	runtime.UnlockOSThread()
}

// SetLogger routes the logs of every glbind package to l.
func SetLogger(l *zap.Logger) {
	setLogger(l)
	gl.SetLogger(l)
	setPlatformLogger(l)
}
