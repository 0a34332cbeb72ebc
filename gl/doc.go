// Package gl exposes the OpenGL 1.1 - 2.1 core API and the vendor
// extensions declared by the Khronos headers as plain Go functions.
//
// Every wrapper resolves its native entry point the first time it is
// called and caches the pointer for the life of the process. Arguments are
// converted to their C representation, the driver function is invoked and
// the result converted back. Nothing is validated: GL errors are reported
// through GetError as usual, and a context must be current on the calling
// OS thread.
//
// A wrapper whose entry point the driver does not provide panics with a
// *ProcError ("unable to load glName: ..."). Supported and LoadFeature
// report whether symbols resolve without panicking. A resolved symbol does
// not mean the extension is usable: glvnd and Mesa hand out dispatch stubs
// for names the current driver does not implement. Check the GL_EXTENSIONS
// string (GetString(EXTENSIONS)) before calling extension entry points.
//
//	if err := gl.Init(); err != nil {
//		log.Fatal(err)
//	}
//	gl.ClearColor(0, 0, 0.5, 1)
//	gl.Clear(gl.COLOR_BUFFER_BIT)
package gl

//go:generate go run ./glgen --gl /usr/include/GL/gl.h --glext /usr/include/GL/glext.h --out .
