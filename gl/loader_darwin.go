//go:build darwin

package gl

var libraryNames = []string{"/System/Library/Frameworks/OpenGL.framework/OpenGL"}

const getProcAddressSymbol = ""

func validProcAddress(p uintptr) bool {
	return p != 0
}
