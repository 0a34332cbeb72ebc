//go:build !freebsd && !linux && !windows

package main

import "github.com/elliotmr/glbind"

func createWindow(string, int, int) (func(), error) {
	return nil, glbind.ErrUnsupported
}
