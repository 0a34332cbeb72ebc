package glbind

import (
	"github.com/elliotmr/glbind/w32"
	"go.uber.org/zap"
)

var openSurface = func(title string) (surface, error) {
	hwnd, err := w32.FindWindow(title)
	if err != nil {
		return nil, err
	}
	c, err := w32.NewContext(hwnd)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func setPlatformLogger(l *zap.Logger) {
	w32.SetLogger(l)
}
