//go:build windows

package gl

// opengl32.dll only exports GL 1.1; everything newer comes from the ICD
// through wglGetProcAddress, which needs a current context.
var libraryNames = []string{"opengl32.dll"}

const getProcAddressSymbol = "wglGetProcAddress"

// wglGetProcAddress signals failure with small sentinels as well as NULL.
func validProcAddress(p uintptr) bool {
	switch p {
	case 0, 1, 2, 3, ^uintptr(0):
		return false
	}
	return true
}
