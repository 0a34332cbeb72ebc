package gl

import (
	"reflect"
	"runtime"
	"unsafe"

	"github.com/pkg/errors"
)

// Host-side counterparts of the GL typedefs.
type (
	Enum           uint32
	Bitfield       uint32
	Boolean        uint8
	Byte           int8
	Short          int16
	Int            int32
	Sizei          int32
	Ubyte          uint8
	Ushort         uint16
	Uint           uint32
	Float          float32
	Clampf         float32
	Double         float64
	Clampd         float64
	Char           int8
	Half           uint16
	Fixed          int32
	Intptr         int
	Sizeiptr       int
	Int64          int64
	Uint64         uint64
	HandleARB      uint32
	VdpauSurfaceNV int
)

// Opaque driver handles.
type (
	Sync               unsafe.Pointer
	EGLImageOES        unsafe.Pointer
	EGLClientBufferEXT unsafe.Pointer
	CLContext          unsafe.Pointer
	CLEvent            unsafe.Pointer
)

// DebugProc is the address of a native debug message callback, as
// returned by purego.NewCallback.
type DebugProc uintptr

// VulkanProcNV is the address of a Vulkan entry point returned by
// GetVkProcAddrNV.
type VulkanProcNV uintptr

func boolByte(b bool) uint8 {
	if b {
		return TRUE
	}
	return FALSE
}

// Str returns a NUL terminated copy of s for GLchar parameters. A
// terminator is added when s does not already end with one.
func Str(s string) *Char {
	b := make([]byte, 0, len(s)+1)
	b = append(b, s...)
	if len(s) == 0 || s[len(s)-1] != 0 {
		b = append(b, 0)
	}
	return (*Char)(unsafe.Pointer(&b[0]))
}

// Strs packs several strings for parameters such as ShaderSource's
// string array. The returned free func must be called once the driver
// has consumed the array.
func Strs(strs ...string) (**Char, func()) {
	if len(strs) == 0 {
		return nil, func() {}
	}
	ptrs := make([]*Char, len(strs))
	for i, s := range strs {
		ptrs[i] = Str(s)
	}
	return &ptrs[0], func() {
		runtime.KeepAlive(ptrs)
	}
}

// GoStr converts a NUL terminated string owned by the driver, such as the
// result of GetString.
func GoStr(s *Ubyte) string {
	if s == nil {
		return ""
	}
	p := unsafe.Pointer(s)
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// Ptr returns the address of the first element of a slice or the value of
// a pointer, for the void* parameters of buffer and texture uploads. A nil
// data yields a nil pointer, which GL reads as offset zero into a bound
// buffer object.
func Ptr(data interface{}) unsafe.Pointer {
	if data == nil {
		return nil
	}
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Ptr, reflect.UnsafePointer:
		return v.UnsafePointer()
	case reflect.Slice:
		if v.Len() == 0 {
			return nil
		}
		return v.Index(0).Addr().UnsafePointer()
	default:
		panic(errors.Errorf("gl.Ptr: unsupported type %T", data))
	}
}
