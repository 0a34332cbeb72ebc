//go:build freebsd || linux

package glx

import (
	"testing"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fakeDisplay      = 0xd1
	fakeHandler      = 0xe1
	fakeVisual       = 0x77
	fakeVisualID     = 0x21
	fakeVisualInfo   = 0x5
	fakeContext      = 0xc7
	defaultXHandler  = 0xdef
	badMatch         = 8
	glxCreateRequest = 152
)

type fakeServer struct {
	calls   []string
	current [2]uintptr
	handler uintptr

	queried   uintptr // visual id passed to XGetVisualInfo
	createdOn uintptr // XVisualInfo* passed to glXCreateContext
	pending   *errorEvent

	noGL     bool
	noCtx    bool
	failOn   string // request that raises pending when flushed
	raiseErr *errorEvent
}

func (s *fakeServer) raise(request string) {
	if s.failOn == request {
		s.pending = s.raiseErr
	}
}

func (s *fakeServer) api() *api {
	return &api{
		xOpenDisplay:  func(string) uintptr { s.calls = append(s.calls, "open"); return fakeDisplay },
		xCloseDisplay: func(uintptr) int32 { s.calls = append(s.calls, "close"); return 0 },
		xFree:         func(uintptr) int32 { s.calls = append(s.calls, "free"); return 1 },
		xSync: func(dpy uintptr, discard int32) int32 {
			if s.pending != nil && s.handler == fakeHandler {
				onXError(dpy, s.pending)
			}
			s.pending = nil
			return 1
		},
		xSetErrorHandler: func(h uintptr) uintptr {
			prev := s.handler
			s.handler = h
			return prev
		},
		xGetWindowAttributes: func(dpy, window uintptr, attrs *windowAttributes) int32 {
			s.raise("attrs")
			attrs.visual = fakeVisual
			return 1
		},
		xVisualIDFromVisual: func(visual uintptr) uintptr {
			if visual == fakeVisual {
				return fakeVisualID
			}
			return 0
		},
		xGetVisualInfo: func(dpy uintptr, mask int, template *visualInfo, n *int32) uintptr {
			s.queried = template.visualID
			if mask != visualIDMask || template.visualID != fakeVisualID {
				return 0
			}
			*n = 1
			return fakeVisualInfo
		},
		getConfig: func(dpy, vis uintptr, attrib int32, value *int32) int32 {
			if !s.noGL {
				*value = 1
			}
			return 0
		},
		createContext: func(dpy, vis, share uintptr, direct int32) uintptr {
			s.calls = append(s.calls, "create")
			s.createdOn = vis
			s.raise("create")
			if s.noCtx {
				return 0
			}
			return fakeContext
		},
		makeCurrent: func(dpy, drawable, ctx uintptr) int32 {
			s.current = [2]uintptr{drawable, ctx}
			s.raise("current")
			return 1
		},
		swapBuffers:    func(dpy, drawable uintptr) { s.calls = append(s.calls, "swap") },
		destroyContext: func(dpy, ctx uintptr) { s.calls = append(s.calls, "destroy") },
		errorHandler:   fakeHandler,
	}
}

func useFakeServer(t *testing.T) *fakeServer {
	s := &fakeServer{handler: defaultXHandler}
	orig := loadAPI
	loadAPI = func() (*api, error) { return s.api(), nil }
	t.Cleanup(func() { loadAPI = orig })
	return s
}

func TestContextLifecycle(t *testing.T) {
	s := useFakeServer(t)

	c, err := NewContext(0x2a00003)
	require.NoError(t, err)

	require.NoError(t, c.MakeCurrent())
	assert.Equal(t, [2]uintptr{0x2a00003, fakeContext}, s.current)

	c.SwapBuffers()
	c.Destroy()
	c.Destroy()
	assert.Equal(t, [2]uintptr{0, 0}, s.current)
	assert.Equal(t, []string{"open", "create", "free", "swap", "destroy", "close"}, s.calls)
	assert.Equal(t, uintptr(defaultXHandler), s.handler)
}

func TestNewContextUsesWindowVisual(t *testing.T) {
	s := useFakeServer(t)

	_, err := NewContext(0x2a00003)
	require.NoError(t, err)
	assert.Equal(t, uintptr(fakeVisualID), s.queried)
	assert.Equal(t, uintptr(fakeVisualInfo), s.createdOn)
}

func TestNewContextVisualWithoutGL(t *testing.T) {
	s := useFakeServer(t)
	s.noGL = true

	_, err := NewContext(1)
	assert.EqualError(t, err, "visual of window 0x1 does not support double buffered OpenGL")
	assert.Equal(t, []string{"open", "free", "close"}, s.calls)
}

func TestNewContextCreateFails(t *testing.T) {
	s := useFakeServer(t)
	s.noCtx = true

	_, err := NewContext(0x10)
	assert.EqualError(t, err, "unable to create GLX context for window 0x10")
	assert.Equal(t, []string{"open", "create", "free", "close"}, s.calls)
}

func TestNewContextReturnsXError(t *testing.T) {
	s := useFakeServer(t)
	s.failOn = "create"
	s.raiseErr = &errorEvent{errorCode: badMatch, requestCode: glxCreateRequest, minorCode: 3}

	_, err := NewContext(0x10)
	require.Error(t, err)
	var xerr *XError
	require.True(t, errors.As(err, &xerr))
	assert.Equal(t, XError{Code: badMatch, Request: glxCreateRequest, Minor: 3}, *xerr)
	assert.EqualError(t, err, "unable to create GLX context for window 0x10: X BadMatch on request 152.3")
	assert.Equal(t, []string{"open", "create", "destroy", "free", "close"}, s.calls)
	assert.Equal(t, uintptr(defaultXHandler), s.handler)
}

func TestNewContextBadWindow(t *testing.T) {
	s := useFakeServer(t)
	s.failOn = "attrs"
	s.raiseErr = &errorEvent{errorCode: 3, requestCode: 3}

	_, err := NewContext(0x10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "X BadWindow")
	assert.Equal(t, []string{"open", "close"}, s.calls)
}

func TestMakeCurrentFails(t *testing.T) {
	s := useFakeServer(t)
	c, err := NewContext(0x10)
	require.NoError(t, err)
	c.api.makeCurrent = func(dpy, drawable, ctx uintptr) int32 { return 0 }

	assert.Error(t, c.MakeCurrent())
	assert.NotEmpty(t, s.calls)
}

func TestMakeCurrentXError(t *testing.T) {
	s := useFakeServer(t)
	c, err := NewContext(0x10)
	require.NoError(t, err)
	s.failOn = "current"
	s.raiseErr = &errorEvent{errorCode: badMatch, requestCode: glxCreateRequest, minorCode: 5}

	err = c.MakeCurrent()
	var xerr *XError
	require.True(t, errors.As(err, &xerr))
	assert.Equal(t, uint8(badMatch), xerr.Code)
	assert.Equal(t, uintptr(defaultXHandler), s.handler)
}

func TestXErrorUnknownCode(t *testing.T) {
	assert.Equal(t, "X error 200 on request 1.0", (&XError{Code: 200, Request: 1}).Error())
}

func TestXlibStructLayout(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("offsets below are for LP64")
	}
	assert.Equal(t, uintptr(24), unsafe.Offsetof(windowAttributes{}.visual))
	assert.Equal(t, uintptr(136), unsafe.Sizeof(windowAttributes{}))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(visualInfo{}.visualID))
	assert.Equal(t, uintptr(64), unsafe.Sizeof(visualInfo{}))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(errorEvent{}.errorCode))
}
