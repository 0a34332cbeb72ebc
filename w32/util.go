//go:build windows

package w32

// BoolToBOOL converts to the Win32 BOOL.
func BoolToBOOL(value bool) int32 {
	if value {
		return 1
	}
	return 0
}
