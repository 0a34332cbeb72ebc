package gl

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestStr(t *testing.T) {
	assert.Equal(t, "uColor", GoStr((*Ubyte)(unsafe.Pointer(Str("uColor")))))
	assert.Equal(t, "already\x00"[:7], GoStr((*Ubyte)(unsafe.Pointer(Str("already\x00")))))
	assert.Equal(t, "", GoStr((*Ubyte)(unsafe.Pointer(Str("")))))
	assert.Equal(t, "", GoStr(nil))
}

func TestStrs(t *testing.T) {
	p, free := Strs("a", "bc")
	defer free()
	strs := unsafe.Slice(p, 2)
	assert.Equal(t, "a", GoStr((*Ubyte)(unsafe.Pointer(strs[0]))))
	assert.Equal(t, "bc", GoStr((*Ubyte)(unsafe.Pointer(strs[1]))))

	p, free = Strs()
	free()
	assert.Nil(t, p)
}

func TestPtr(t *testing.T) {
	verts := []Float{0, 1, 2}
	assert.Equal(t, unsafe.Pointer(&verts[0]), Ptr(verts))

	var id Uint
	assert.Equal(t, unsafe.Pointer(&id), Ptr(&id))

	assert.Nil(t, Ptr(nil))
	assert.Nil(t, Ptr([]byte{}))
	assert.Panics(t, func() { Ptr(42) })
}

func TestBoolByte(t *testing.T) {
	assert.Equal(t, uint8(1), boolByte(true))
	assert.Equal(t, uint8(0), boolByte(false))
}
