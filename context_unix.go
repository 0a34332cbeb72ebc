//go:build freebsd || linux

package glbind

import (
	"github.com/elliotmr/glbind/glx"
	"github.com/elliotmr/glbind/x11"
	"go.uber.org/zap"
)

var openSurface = func(title string) (surface, error) {
	conn, err := x11.Connect("")
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	w, err := conn.FindWindow(title)
	if err != nil {
		return nil, err
	}
	c, err := glx.NewContext(uint32(w))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func setPlatformLogger(l *zap.Logger) {
	x11.SetLogger(l)
	glx.SetLogger(l)
}
