//go:build freebsd || linux

package main

import "github.com/elliotmr/glbind/x11"

func createWindow(title string, width, height int) (func(), error) {
	conn, err := x11.Connect("")
	if err != nil {
		return nil, err
	}
	w, err := conn.CreateWindow(title, width, height)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return func() {
		conn.DestroyWindow(w)
		conn.Close()
	}, nil
}
