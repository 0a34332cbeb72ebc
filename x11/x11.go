// Package x11 finds and creates top-level windows over the X protocol.
package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrWindowNotFound is returned when no window carries the requested title.
var ErrWindowNotFound = errors.New("window not found")

// Conn is a connection to an X server.
type Conn struct {
	X      *xgb.Conn
	screen *xproto.ScreenInfo

	netWMName  xproto.Atom
	utf8String xproto.Atom
}

// Connect opens a connection to display, or to $DISPLAY when display is
// empty.
func Connect(display string) (*Conn, error) {
	x, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to connect to display %q", display)
	}
	c := &Conn{X: x, screen: xproto.Setup(x).DefaultScreen(x)}
	if c.netWMName, err = c.atom("_NET_WM_NAME"); err != nil {
		x.Close()
		return nil, err
	}
	if c.utf8String, err = c.atom("UTF8_STRING"); err != nil {
		x.Close()
		return nil, err
	}
	Logger().Debug("connected to X server", zap.String("display", display), zap.Uint32("root", uint32(c.screen.Root)))
	return c, nil
}

// Close closes the connection.
func (c *Conn) Close() {
	c.X.Close()
}

// Root is the root window of the default screen.
func (c *Conn) Root() xproto.Window {
	return c.screen.Root
}

func (c *Conn) atom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(c.X, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, errors.Wrapf(err, "unable to intern atom %s", name)
	}
	return reply.Atom, nil
}

func (c *Conn) children(w xproto.Window) ([]xproto.Window, error) {
	reply, err := xproto.QueryTree(c.X, w).Reply()
	if err != nil {
		return nil, errors.Wrapf(err, "unable to query tree of window %d", w)
	}
	return reply.Children, nil
}

// title reads _NET_WM_NAME, falling back to the ICCCM WM_NAME.
func (c *Conn) title(w xproto.Window) (string, error) {
	name, err := c.property(w, c.netWMName, c.utf8String)
	if err != nil || name != "" {
		return name, err
	}
	return c.property(w, xproto.AtomWmName, xproto.GetPropertyTypeAny)
}

func (c *Conn) property(w xproto.Window, prop, typ xproto.Atom) (string, error) {
	reply, err := xproto.GetProperty(c.X, false, w, prop, typ, 0, 1<<16).Reply()
	if err != nil {
		return "", errors.Wrapf(err, "unable to read property %d of window %d", prop, w)
	}
	if reply.Format != 8 {
		return "", nil
	}
	return string(reply.Value), nil
}

// FindWindow searches the window tree below the root depth-first for a
// window whose title is exactly title. An empty title matches nothing.
func (c *Conn) FindWindow(title string) (xproto.Window, error) {
	return findWindow(c, c.Root(), title)
}

type tree interface {
	children(w xproto.Window) ([]xproto.Window, error)
	title(w xproto.Window) (string, error)
}

func findWindow(t tree, root xproto.Window, title string) (xproto.Window, error) {
	if title == "" {
		return 0, errors.Wrap(ErrWindowNotFound, "empty title")
	}
	if w, ok := search(t, root, title); ok {
		return w, nil
	}
	return 0, errors.Wrapf(ErrWindowNotFound, "%q", title)
}

// search skips windows that disappear while the tree is walked.
func search(t tree, w xproto.Window, title string) (xproto.Window, bool) {
	name, err := t.title(w)
	if err != nil {
		Logger().Debug("skipping window", zap.Uint32("window", uint32(w)), zap.Error(err))
		return 0, false
	}
	if name == title {
		return w, true
	}
	children, err := t.children(w)
	if err != nil {
		Logger().Debug("skipping subtree", zap.Uint32("window", uint32(w)), zap.Error(err))
		return 0, false
	}
	for _, child := range children {
		if found, ok := search(t, child, title); ok {
			return found, true
		}
	}
	return 0, false
}

// CreateWindow creates and maps a top-level window of the given size
// titled title.
func (c *Conn) CreateWindow(title string, width, height int) (xproto.Window, error) {
	w, err := xproto.NewWindowId(c.X)
	if err != nil {
		return 0, errors.Wrap(err, "unable to allocate window id")
	}
	s := c.screen
	err = xproto.CreateWindowChecked(c.X, s.RootDepth, w, s.Root,
		0, 0, uint16(width), uint16(height), 0,
		xproto.WindowClassInputOutput, s.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{
			s.BlackPixel,
			xproto.EventMaskStructureNotify | xproto.EventMaskExposure,
		}).Check()
	if err != nil {
		return 0, errors.Wrap(err, "unable to create window")
	}
	for _, prop := range []struct {
		atom, typ xproto.Atom
	}{
		{xproto.AtomWmName, xproto.AtomString},
		{c.netWMName, c.utf8String},
	} {
		err = xproto.ChangePropertyChecked(c.X, xproto.PropModeReplace, w, prop.atom, prop.typ,
			8, uint32(len(title)), []byte(title)).Check()
		if err != nil {
			return 0, errors.Wrap(err, "unable to set window title")
		}
	}
	if err := xproto.MapWindowChecked(c.X, w).Check(); err != nil {
		return 0, errors.Wrap(err, "unable to map window")
	}
	Logger().Info("created window", zap.String("title", title), zap.Uint32("window", uint32(w)))
	return w, nil
}

// DestroyWindow destroys a window created by CreateWindow.
func (c *Conn) DestroyWindow(w xproto.Window) error {
	return errors.Wrap(xproto.DestroyWindowChecked(c.X, w).Check(), "unable to destroy window")
}
