//go:build !freebsd && !linux && !windows

package glbind

import "go.uber.org/zap"

var openSurface = func(string) (surface, error) {
	return nil, ErrUnsupported
}

func setPlatformLogger(*zap.Logger) {}
