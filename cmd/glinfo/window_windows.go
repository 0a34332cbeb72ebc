package main

import (
	"github.com/elliotmr/glbind/w32"
	"github.com/elliotmr/glbind/w32/types/ws"
)

func createWindow(title string, width, height int) (func(), error) {
	wc := w32.OpenGLClass("GlinfoWindow")
	if err := wc.Register(); err != nil {
		return nil, err
	}
	w, err := wc.New(nil, w32.WindowProps{
		Name:   title,
		Style:  ws.OverlappedWindow | ws.Visible,
		X:      w32.WPUseDefault,
		Y:      w32.WPUseDefault,
		Width:  int64(width),
		Height: int64(height),
	})
	if err != nil {
		wc.UnRegister()
		return nil, err
	}
	done := make(chan error, 1)
	go func() { done <- w.Run() }()
	<-w.Ready()
	if w.Handle() == 0 {
		wc.UnRegister()
		return nil, <-done
	}
	return func() {
		w.Close()
		<-done
		wc.UnRegister()
	}, nil
}
