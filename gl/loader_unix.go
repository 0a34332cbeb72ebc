//go:build freebsd || linux

package gl

var libraryNames = []string{"libGL.so.1", "libGL.so", "libOpenGL.so.0"}

// Mesa hands out dispatch stubs for any gl-prefixed name, so the fallback
// only runs after the exported table has been searched.
const getProcAddressSymbol = "glXGetProcAddressARB"

func validProcAddress(p uintptr) bool {
	return p != 0
}
