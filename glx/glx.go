//go:build freebsd || linux

// Package glx creates GLX rendering contexts for existing X windows
// through Xlib and libGL.
package glx

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/elliotmr/glbind/internal/dynlib"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// glXGetConfig attributes, from GL/glx.h.
const (
	configUseGL        = 1
	configDoubleBuffer = 5
)

// visualIDMask selects XVisualInfo.visualid in an XGetVisualInfo template.
const visualIDMask = 0x1

// windowAttributes mirrors XWindowAttributes. Xlib long and pointer fields
// are uintptr, int and Bool are int32.
type windowAttributes struct {
	x, y               int32
	width, height      int32
	borderWidth        int32
	depth              int32
	visual             uintptr
	root               uintptr
	class              int32
	bitGravity         int32
	winGravity         int32
	backingStore       int32
	backingPlanes      uintptr
	backingPixel       uintptr
	saveUnder          int32
	colormap           uintptr
	mapInstalled       int32
	mapState           int32
	allEventMasks      uintptr
	yourEventMask      uintptr
	doNotPropagateMask uintptr
	overrideRedirect   int32
	screen             uintptr
}

// visualInfo mirrors XVisualInfo.
type visualInfo struct {
	visual       uintptr
	visualID     uintptr
	screen       int32
	depth        int32
	class        int32
	redMask      uintptr
	greenMask    uintptr
	blueMask     uintptr
	colormapSize int32
	bitsPerRGB   int32
}

// errorEvent mirrors XErrorEvent.
type errorEvent struct {
	typ         int32
	display     uintptr
	resourceID  uintptr
	serial      uintptr
	errorCode   uint8
	requestCode uint8
	minorCode   uint8
}

// api holds the Xlib and GLX entry points. Display, visual and context
// pointers are opaque; XIDs are unsigned long.
type api struct {
	xOpenDisplay         func(name string) uintptr
	xCloseDisplay        func(dpy uintptr) int32
	xFree                func(p uintptr) int32
	xSync                func(dpy uintptr, discard int32) int32
	xSetErrorHandler     func(handler uintptr) uintptr
	xGetWindowAttributes func(dpy, window uintptr, attrs *windowAttributes) int32
	xVisualIDFromVisual  func(visual uintptr) uintptr
	xGetVisualInfo       func(dpy uintptr, mask int, template *visualInfo, n *int32) uintptr

	getConfig      func(dpy, vis uintptr, attrib int32, value *int32) int32
	createContext  func(dpy, vis, share uintptr, direct int32) uintptr
	makeCurrent    func(dpy, drawable, ctx uintptr) int32
	swapBuffers    func(dpy, drawable uintptr)
	destroyContext func(dpy, ctx uintptr)

	// errorHandler is the C pointer of onXError.
	errorHandler uintptr
}

var (
	apiOnce   sync.Once
	loadedAPI *api
	apiErr    error
)

// loadAPI opens libX11 and libGL once per process.
var loadAPI = func() (*api, error) {
	apiOnce.Do(func() {
		loadedAPI, apiErr = openAPI()
	})
	return loadedAPI, apiErr
}

func openAPI() (*api, error) {
	x, err := dynlib.Open("libX11.so.6", "libX11.so")
	if err != nil {
		return nil, errors.Wrap(err, "unable to open Xlib")
	}
	gl, err := dynlib.Open("libGL.so.1", "libGL.so")
	if err != nil {
		return nil, errors.Wrap(err, "unable to open libGL")
	}
	a := &api{}
	for _, sym := range []struct {
		lib  *dynlib.Library
		name string
		fptr interface{}
	}{
		{x, "XOpenDisplay", &a.xOpenDisplay},
		{x, "XCloseDisplay", &a.xCloseDisplay},
		{x, "XFree", &a.xFree},
		{x, "XSync", &a.xSync},
		{x, "XSetErrorHandler", &a.xSetErrorHandler},
		{x, "XGetWindowAttributes", &a.xGetWindowAttributes},
		{x, "XVisualIDFromVisual", &a.xVisualIDFromVisual},
		{x, "XGetVisualInfo", &a.xGetVisualInfo},
		{gl, "glXGetConfig", &a.getConfig},
		{gl, "glXCreateContext", &a.createContext},
		{gl, "glXMakeCurrent", &a.makeCurrent},
		{gl, "glXSwapBuffers", &a.swapBuffers},
		{gl, "glXDestroyContext", &a.destroyContext},
	} {
		addr, err := sym.lib.Lookup(sym.name)
		if err != nil {
			return nil, err
		}
		purego.RegisterFunc(sym.fptr, addr)
	}
	a.errorHandler = purego.NewCallback(onXError)
	Logger().Debug("loaded GLX", zap.String("xlib", x.Name()), zap.String("gl", gl.Name()))
	return a, nil
}

// XError is a protocol error reported by the X server for a GLX request.
type XError struct {
	Code    uint8
	Request uint8
	Minor   uint8
}

var xErrorNames = map[uint8]string{
	2:  "BadValue",
	3:  "BadWindow",
	8:  "BadMatch",
	9:  "BadDrawable",
	10: "BadAccess",
	11: "BadAlloc",
}

func (e *XError) Error() string {
	name := xErrorNames[e.Code]
	if name == "" {
		name = fmt.Sprintf("error %d", e.Code)
	}
	return fmt.Sprintf("X %s on request %d.%d", name, e.Request, e.Minor)
}

// Xlib error handlers are process wide, so trapped calls are serialized.
var (
	trapMu      sync.Mutex
	trapDisplay uintptr
	trapped     *XError
)

// onXError records the first error raised on the trapped display. Xlib's
// default handler would print it and exit the process.
func onXError(dpy uintptr, ev *errorEvent) uintptr {
	if dpy == trapDisplay && trapped == nil {
		trapped = &XError{Code: ev.errorCode, Request: ev.requestCode, Minor: ev.minorCode}
	}
	return 0
}

// trap runs call with onXError installed and returns the first X error
// raised on dpy by the time the request queue is flushed.
func (a *api) trap(dpy uintptr, call func()) error {
	trapMu.Lock()
	defer trapMu.Unlock()
	trapDisplay, trapped = dpy, nil
	prev := a.xSetErrorHandler(a.errorHandler)
	call()
	a.xSync(dpy, 0)
	a.xSetErrorHandler(prev)
	trapDisplay = 0
	if trapped == nil {
		return nil
	}
	return trapped
}

// Context is a direct rendering context bound to one X window. It owns
// its own Xlib display connection.
type Context struct {
	api     *api
	display uintptr
	window  uintptr
	ctx     uintptr
}

// NewContext opens the default display and creates a context for window,
// using the visual the window was created with. X errors come back as
// *XError.
func NewContext(window uint32) (*Context, error) {
	a, err := loadAPI()
	if err != nil {
		return nil, err
	}
	dpy := a.xOpenDisplay("")
	if dpy == 0 {
		return nil, errors.New("unable to open X display")
	}
	c := &Context{api: a, display: dpy, window: uintptr(window)}
	if err := c.create(); err != nil {
		a.xCloseDisplay(dpy)
		return nil, err
	}
	Logger().Debug("created GLX context", zap.Uint32("window", window))
	return c, nil
}

func (c *Context) create() error {
	a := c.api
	vis, err := c.windowVisual()
	if err != nil {
		return err
	}
	defer a.xFree(vis)

	var useGL, doubleBuffer int32
	if a.getConfig(c.display, vis, configUseGL, &useGL) != 0 || useGL == 0 ||
		a.getConfig(c.display, vis, configDoubleBuffer, &doubleBuffer) != 0 || doubleBuffer == 0 {
		return errors.Errorf("visual of window 0x%x does not support double buffered OpenGL", c.window)
	}

	var ctx uintptr
	err = a.trap(c.display, func() {
		ctx = a.createContext(c.display, vis, 0, 1)
	})
	if err != nil {
		if ctx != 0 {
			a.destroyContext(c.display, ctx)
		}
		return errors.Wrapf(err, "unable to create GLX context for window 0x%x", c.window)
	}
	if ctx == 0 {
		return errors.Errorf("unable to create GLX context for window 0x%x", c.window)
	}
	c.ctx = ctx
	return nil
}

// windowVisual returns the XVisualInfo of the window's visual, to be
// released with XFree.
func (c *Context) windowVisual() (uintptr, error) {
	a := c.api
	var attrs windowAttributes
	var status int32
	err := a.trap(c.display, func() {
		status = a.xGetWindowAttributes(c.display, c.window, &attrs)
	})
	if err != nil {
		return 0, errors.Wrapf(err, "unable to read attributes of window 0x%x", c.window)
	}
	if status == 0 {
		return 0, errors.Errorf("unable to read attributes of window 0x%x", c.window)
	}

	template := visualInfo{visualID: a.xVisualIDFromVisual(attrs.visual)}
	var n int32
	vis := a.xGetVisualInfo(c.display, visualIDMask, &template, &n)
	if vis == 0 || n == 0 {
		return 0, errors.Errorf("no visual info for visual 0x%x of window 0x%x", template.visualID, c.window)
	}
	return vis, nil
}

// MakeCurrent binds the context to the calling thread.
func (c *Context) MakeCurrent() error {
	var ok int32
	err := c.api.trap(c.display, func() {
		ok = c.api.makeCurrent(c.display, c.window, c.ctx)
	})
	if err != nil {
		return errors.Wrapf(err, "glXMakeCurrent failed for window 0x%x", c.window)
	}
	if ok == 0 {
		return errors.Errorf("glXMakeCurrent failed for window 0x%x", c.window)
	}
	return nil
}

// SwapBuffers presents the back buffer of the window.
func (c *Context) SwapBuffers() {
	c.api.swapBuffers(c.display, c.window)
}

// Destroy releases the context and closes the display connection.
func (c *Context) Destroy() {
	if c.ctx == 0 {
		return
	}
	c.api.makeCurrent(c.display, 0, 0)
	c.api.destroyContext(c.display, c.ctx)
	c.api.xCloseDisplay(c.display)
	c.ctx = 0
	c.display = 0
}
